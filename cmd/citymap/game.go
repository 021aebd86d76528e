package main

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leterax/citywalk/pkg/city"
	"github.com/leterax/citywalk/pkg/control"
	"github.com/leterax/citywalk/pkg/host/ebitenhost"
	"github.com/leterax/citywalk/pkg/signal"
)

var (
	streetColor = color.RGBA{60, 62, 68, 255}
	playerColor = color.RGBA{255, 140, 50, 255}
)

// game is a top-down view of the city with the controller's camera drawn on it
type game struct {
	layout     *city.Layout
	controller *control.Controller
	host       *ebitenhost.Host

	width, height int
	hint          string
}

func newGame(layout *city.Layout, controller *control.Controller, h *ebitenhost.Host) *game {
	return &game{
		layout:     layout,
		controller: controller,
		host:       h,
		hint:       controller.Phase().Hint(),
	}
}

// follow keeps the hint line in sync with the controller phase
func (g *game) follow(bus *signal.Bus) {
	bus.Subscribe(signal.TopicCaptureChanged, func(any) {
		bus.Publish(signal.TopicHint, g.controller.Phase().Hint())
	})
	bus.Subscribe(signal.TopicHint, func(payload any) {
		if hint, ok := payload.(string); ok {
			g.hint = hint
		}
	})
}

func (g *game) Update() error {
	g.host.Update()
	g.controller.Update(1 / float32(ebiten.TPS()))
	return nil
}

// scale maps world units to screen pixels so the whole city fits
func (g *game) scale() float32 {
	side := float32(min(g.width, g.height))
	return side / (2 * g.layout.Bounds() * 1.1)
}

// toScreen projects a ground point; -Z is up on screen
func (g *game) toScreen(x, z float32) (float32, float32) {
	s := g.scale()
	return float32(g.width)/2 + x*s, float32(g.height)/2 + z*s
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(streetColor)

	s := g.scale()
	for _, b := range g.layout.Buildings {
		x, y := g.toScreen(b.Center[0]-b.Size[0]/2, b.Center[2]-b.Size[2]/2)
		vector.FillRect(screen, x, y, b.Size[0]*s, b.Size[2]*s, shade(b), false)
	}

	pos := g.controller.Position()
	yaw, _ := g.controller.Orientation()
	px, py := g.toScreen(pos[0], pos[2])
	heading := mgl32.Vec2{-math32.Sin(yaw), -math32.Cos(yaw)}.Mul(24)
	vector.StrokeLine(screen, px, py, px+heading[0], py+heading[1], 2, playerColor, true)
	vector.DrawFilledCircle(screen, px, py, 5, playerColor, true)

	status := g.controller.Phase().String()
	if g.controller.Sprinting() {
		status += ", running"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\n[%s] x=%.1f z=%.1f", g.hint, status, pos[0], pos[2]))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	g.host.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// shade darkens taller buildings so height reads from above
func shade(b city.Building) color.RGBA {
	f := 1 - mgl32.Clamp(b.Size[1]/60, 0, 0.5)
	return color.RGBA{
		R: uint8(b.Color[0] * f * 255),
		G: uint8(b.Color[1] * f * 255),
		B: uint8(b.Color[2] * f * 255),
		A: 255,
	}
}
