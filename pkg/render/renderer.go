// Package render draws the city scene with OpenGL and drives the frame loop.
package render

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/citywalk/internal/config"
	"github.com/leterax/citywalk/internal/openglhelper"
	"github.com/leterax/citywalk/pkg/camera"
	"github.com/leterax/citywalk/pkg/city"
	"github.com/leterax/citywalk/pkg/control"
	"github.com/leterax/citywalk/pkg/signal"
	"github.com/sirupsen/logrus"
)

var (
	//go:embed shaders/city.vert
	vertexSource string
	//go:embed shaders/city.frag
	fragmentSource string
)

// Poller is polled once per frame after window events, e.g. for gamepads
type Poller interface {
	Poll()
}

// Renderer handles rendering logic and the frame loop
type Renderer struct {
	window     *openglhelper.Window
	layout     *city.Layout
	controller *control.Controller
	camera     *camera.Camera

	log    logrus.FieldLogger
	bus    *signal.Bus
	poller Poller

	shader    *openglhelper.Shader
	buildings *openglhelper.Mesh
	ground    *openglhelper.Mesh
	cube      *openglhelper.Mesh
	mascot    *mascot

	skyColor    mgl32.Vec4
	groundColor mgl32.Vec3

	lastFrameTime float64
	closed        bool
}

// Option configures a Renderer
type Option func(*Renderer)

// WithLogger sets the renderer logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Renderer) {
		r.log = log
	}
}

// WithBus publishes scene notifications on bus
func WithBus(bus *signal.Bus) Option {
	return func(r *Renderer) {
		r.bus = bus
	}
}

// WithPoller polls p every frame before the controller update
func WithPoller(p Poller) Option {
	return func(r *Renderer) {
		r.poller = p
	}
}

// WithMascot shows the mascot in front of the street spawn
func WithMascot(params config.Mascot, spawn mgl32.Vec3, yaw float32) Option {
	return func(r *Renderer) {
		if params.Enabled {
			r.mascot = newMascot(params, spawn, yaw)
		}
	}
}

// WithColors overrides the sky and ground colors
func WithColors(sky mgl32.Vec4, ground mgl32.Vec3) Option {
	return func(r *Renderer) {
		r.skyColor = sky
		r.groundColor = ground
	}
}

// NewRenderer uploads the layout and prepares the shaders. The window's GL
// context must be current.
func NewRenderer(window *openglhelper.Window, layout *city.Layout, controller *control.Controller, cam *camera.Camera, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		window:      window,
		layout:      layout,
		controller:  controller,
		camera:      cam,
		log:         logrus.StandardLogger(),
		skyColor:    DefaultSkyColor,
		groundColor: DefaultGroundColor,
	}
	for _, opt := range opts {
		opt(r)
	}

	shader, err := openglhelper.NewShader(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	r.shader = shader

	r.buildings = openglhelper.NewCube()
	r.buildings.SetInstances(buildingInstances(layout))

	r.ground = openglhelper.NewPlane()
	r.ground.SetInstances(groundInstance(layout, r.groundColor))

	if r.mascot != nil {
		r.cube = openglhelper.NewCube()
		r.cube.SetInstances(appendInstance(nil,
			mgl32.Vec3{},
			mgl32.Vec3{mascotSize, mascotSize, mascotSize},
			DefaultMascotColor,
		))
	}

	w, h := window.Size()
	cam.UpdateProjectionMatrix(w, h)

	r.log.WithFields(logrus.Fields{
		"buildings": r.buildings.Instances(),
		"bounds":    layout.Bounds(),
	}).Info("scene uploaded")
	return r, nil
}

// Run drives the frame loop until the window closes or ctx is done
func (r *Renderer) Run(ctx context.Context) error {
	if r.bus != nil {
		r.bus.Publish(signal.TopicSceneReady, nil)
	}

	r.lastFrameTime = glfw.GetTime()
	for !r.window.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}

		currentTime := glfw.GetTime()
		dt := float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime
		if dt > maxFrameStep {
			dt = maxFrameStep
		}

		if r.poller != nil {
			r.poller.Poll()
		}
		r.controller.Update(dt)

		r.render(dt)

		r.window.SwapBuffers()
		r.window.PollEvents()
	}
	return nil
}

func (r *Renderer) render(dt float32) {
	r.window.Clear(r.skyColor)

	r.shader.Use()
	r.shader.SetMat4("view", r.camera.ViewMatrix())
	r.shader.SetMat4("projection", r.camera.ProjectionMatrix())
	r.shader.SetVec3("viewPos", r.camera.Position())
	r.shader.SetVec3("lightDir", DefaultLightDir)
	r.shader.SetVec3("fogColor", r.skyColor.Vec3())
	r.shader.SetFloat("fogDensity", DefaultFogDensity)

	r.shader.SetMat4("model", mgl32.Ident4())
	r.ground.Draw()
	r.buildings.Draw()

	if r.mascot != nil {
		gw := r.window.GLFWWindow()
		cx, cy := gw.GetCursorPos()
		ww, wh := gw.GetSize()
		captured := r.controller.Phase() == control.PhaseCaptured
		r.shader.SetMat4("model", r.mascot.update(dt, float32(cx), float32(cy), ww, wh, captured))
		r.cube.Draw()
	}
}

// OnResize updates the viewport and projection after a framebuffer resize
func (r *Renderer) OnResize(width, height int) {
	r.window.OnResize(width, height)
	r.camera.UpdateProjectionMatrix(width, height)
}

// Cleanup frees all resources and detaches the controller from its host
func (r *Renderer) Cleanup() {
	if r.closed {
		return
	}
	r.closed = true

	r.controller.Detach()

	for _, m := range []*openglhelper.Mesh{r.buildings, r.ground, r.cube} {
		if m != nil {
			m.Delete()
		}
	}
	if r.shader != nil {
		r.shader.Delete()
	}

	r.window.Close()
}
