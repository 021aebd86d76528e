// Package city lays out the buildings of the walkable city scene.
package city

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Params controls the layout
type Params struct {
	// Blocks per side; forced even so the axes through the origin are streets
	Blocks      int     `yaml:"blocks"`
	BlockSize   float32 `yaml:"block_size"`
	StreetWidth float32 `yaml:"street_width"`
	MinHeight   float32 `yaml:"min_height"`
	MaxHeight   float32 `yaml:"max_height"`
	// Inset of a building from its block edge
	Setback float32 `yaml:"setback"`
	Seed    int64   `yaml:"seed"`
}

// DefaultParams returns a small downtown grid
func DefaultParams() Params {
	return Params{
		Blocks:      8,
		BlockSize:   14,
		StreetWidth: 6,
		MinHeight:   4,
		MaxHeight:   28,
		Setback:     1,
		Seed:        1,
	}
}

// Building is an axis aligned box standing on the ground
type Building struct {
	Center mgl32.Vec3
	Size   mgl32.Vec3
	Color  mgl32.Vec3
}

// Layout is a generated city
type Layout struct {
	Params    Params
	Buildings []Building
	half      float32
}

var palette = []mgl32.Vec3{
	{0.78, 0.80, 0.84},
	{0.62, 0.66, 0.74},
	{0.85, 0.76, 0.64},
	{0.55, 0.60, 0.58},
	{0.90, 0.88, 0.82},
	{0.46, 0.52, 0.66},
}

// Generate builds a deterministic layout for p
func Generate(p Params) *Layout {
	if p.Blocks < 2 {
		p.Blocks = 2
	}
	if p.Blocks%2 != 0 {
		p.Blocks++
	}
	if p.MaxHeight < p.MinHeight {
		p.MaxHeight = p.MinHeight
	}

	rng := rand.New(rand.NewSource(p.Seed))
	pitch := p.BlockSize + p.StreetWidth
	half := float32(p.Blocks) * pitch / 2

	l := &Layout{
		Params:    p,
		Buildings: make([]Building, 0, p.Blocks*p.Blocks),
		half:      half,
	}

	footprint := p.BlockSize - 2*p.Setback
	for i := 0; i < p.Blocks; i++ {
		for j := 0; j < p.Blocks; j++ {
			// Streets run along every multiple of pitch, blocks sit between them
			cx := -half + (float32(i)+0.5)*pitch
			cz := -half + (float32(j)+0.5)*pitch
			h := p.MinHeight + rng.Float32()*(p.MaxHeight-p.MinHeight)
			l.Buildings = append(l.Buildings, Building{
				Center: mgl32.Vec3{cx, h / 2, cz},
				Size:   mgl32.Vec3{footprint, h, footprint},
				Color:  palette[rng.Intn(len(palette))],
			})
		}
	}
	return l
}

// Bounds returns the half extent of the city on X and Z
func (l *Layout) Bounds() float32 {
	return l.half
}

// OnStreet reports whether the ground point (x, z) lies outside every building footprint
func (l *Layout) OnStreet(x, z float32) bool {
	for _, b := range l.Buildings {
		if math32.Abs(x-b.Center[0]) < b.Size[0]/2 && math32.Abs(z-b.Center[2]) < b.Size[2]/2 {
			return false
		}
	}
	return true
}
