package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/citywalk/internal/openglhelper"
	"github.com/leterax/citywalk/pkg/city"
)

func appendInstance(dst []float32, offset, scale, color mgl32.Vec3) []float32 {
	return append(dst,
		offset[0], offset[1], offset[2],
		scale[0], scale[1], scale[2],
		color[0], color[1], color[2],
	)
}

// buildingInstances packs one instance record per building. The cube mesh
// stands on y=0, so the offset is the footprint center on the ground.
func buildingInstances(l *city.Layout) []float32 {
	data := make([]float32, 0, len(l.Buildings)*openglhelper.InstanceFloats)
	for _, b := range l.Buildings {
		base := mgl32.Vec3{b.Center[0], b.Center[1] - b.Size[1]/2, b.Center[2]}
		data = appendInstance(data, base, b.Size, b.Color)
	}
	return data
}

func groundInstance(l *city.Layout, color mgl32.Vec3) []float32 {
	side := 2 * (l.Bounds() + groundMargin)
	return appendInstance(nil, mgl32.Vec3{}, mgl32.Vec3{side, 1, side}, color)
}

// mascotRest places the mascot on the ground in front of the spawn point,
// facing back toward it
func mascotRest(spawn mgl32.Vec3, yaw float32) mgl32.Mat4 {
	ahead := mgl32.Rotate3DY(yaw).Mul3x1(mgl32.Vec3{0, 0, -mascotDistance})
	p := mgl32.Vec3{spawn[0] + ahead[0], 0, spawn[2] + ahead[2]}
	return mgl32.Translate3D(p[0], p[1], p[2]).Mul4(mgl32.HomogRotate3DY(yaw + mgl32.DegToRad(180)))
}
