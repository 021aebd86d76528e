package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds a pose and a perspective projection
type Camera struct {
	// Pose
	position    mgl32.Vec3
	orientation mgl32.Quat

	// Derived basis vectors
	front mgl32.Vec3
	up    mgl32.Vec3
	right mgl32.Vec3

	// Projection
	fov        float32
	near       float32
	far        float32
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a camera at position looking down -Z
func NewCamera(position mgl32.Vec3) *Camera {
	camera := &Camera{
		position:    position,
		orientation: mgl32.QuatIdent(),
		fov:         DefaultFOV,
		near:        DefaultNear,
		far:         DefaultFar,
		width:       DefaultWidth,
		height:      DefaultHeight,
	}

	camera.updateCameraVectors()
	camera.updateProjectionMatrix()

	return camera
}

// updateCameraVectors recalculates the basis vectors from the orientation
func (c *Camera) updateCameraVectors() {
	c.front = c.orientation.Rotate(mgl32.Vec3{0, 0, -1}).Normalize()
	c.right = c.orientation.Rotate(mgl32.Vec3{1, 0, 0}).Normalize()
	c.up = c.orientation.Rotate(mgl32.Vec3{0, 1, 0}).Normalize()
}

// updateProjectionMatrix recalculates the projection matrix
func (c *Camera) updateProjectionMatrix() {
	aspect := float32(c.width) / float32(c.height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, c.near, c.far)
}

// UpdateProjectionMatrix updates the projection matrix with new dimensions.
// Zero sizes (minimized window) are ignored.
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return c.orientation.Inverse().Mat4().Mul4(mgl32.Translate3D(-c.position[0], -c.position[1], -c.position[2]))
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// ViewProjection returns projection * view
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.projection.Mul4(c.ViewMatrix())
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current camera orientation
func (c *Camera) Orientation() mgl32.Quat {
	return c.orientation
}

// SetOrientation sets the camera orientation
func (c *Camera) SetOrientation(q mgl32.Quat) {
	c.orientation = q.Normalize()
	c.updateCameraVectors()
}

// FrontVector returns the camera's front direction vector
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.front
}

// RightVector returns the camera's right direction vector
func (c *Camera) RightVector() mgl32.Vec3 {
	return c.right
}

// UpVector returns the camera's up direction vector
func (c *Camera) UpVector() mgl32.Vec3 {
	return c.up
}

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float32 {
	return c.fov
}

// HandleMouseScroll handles mouse scroll for zoom
func (c *Camera) HandleMouseScroll(yoffset float64) {
	c.fov = mgl32.Clamp(c.fov-float32(yoffset), MinFOV, MaxFOV)
	c.updateProjectionMatrix()
}
