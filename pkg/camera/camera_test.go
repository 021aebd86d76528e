package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestViewMatrixMovesEyeToOrigin(t *testing.T) {
	c := NewCamera(mgl32.Vec3{3, 1.8, -7})
	c.SetOrientation(mgl32.QuatRotate(0.9, mgl32.Vec3{0, 1, 0}))

	eye := c.ViewMatrix().Mul4x1(c.Position().Vec4(1))
	if !eye.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, 1e-5) {
		t.Fatalf("eye should map to the origin, got %v", eye)
	}

	ahead := c.Position().Add(c.FrontVector())
	view := c.ViewMatrix().Mul4x1(ahead.Vec4(1)).Vec3()
	if !view.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Fatalf("front should map to -Z in view space, got %v", view)
	}
}

func TestBasisFollowsOrientation(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	if !c.FrontVector().ApproxEqual(mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("identity camera should look down -Z, got %v", c.FrontVector())
	}

	c.SetOrientation(mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 1, 0}))
	if !c.FrontVector().ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, 1e-5) {
		t.Fatalf("quarter turn left should look down -X, got %v", c.FrontVector())
	}
	if !c.UpVector().ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5) {
		t.Fatalf("yaw must not tilt the up vector, got %v", c.UpVector())
	}
}

func TestHandleMouseScrollClampsFOV(t *testing.T) {
	testCases := map[string]struct {
		scroll   []float64
		expected float32
	}{
		"ZoomIn":   {scroll: []float64{10}, expected: DefaultFOV - 10},
		"ZoomMax":  {scroll: []float64{100}, expected: MinFOV},
		"ZoomOut":  {scroll: []float64{-100}, expected: MaxFOV},
		"NoChange": {scroll: []float64{5, -5}, expected: DefaultFOV},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			c := NewCamera(mgl32.Vec3{})
			for _, s := range tt.scroll {
				c.HandleMouseScroll(s)
			}
			if c.FOV() != tt.expected {
				t.Errorf("Expected: %f, got: %f", tt.expected, c.FOV())
			}
		})
	}
}

func TestUpdateProjectionIgnoresZeroSize(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	before := c.ProjectionMatrix()
	c.UpdateProjectionMatrix(0, 0)
	if c.ProjectionMatrix() != before {
		t.Fatal("zero-size resize should not change the projection")
	}
	c.UpdateProjectionMatrix(1600, 600)
	if c.ProjectionMatrix() == before {
		t.Fatal("resize should change the projection")
	}
}
