package main

import (
	"context"
	"flag"
	"os"
	ossignal "os/signal"
	"runtime"
	"syscall"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/citywalk/internal/config"
	"github.com/leterax/citywalk/internal/openglhelper"
	"github.com/leterax/citywalk/pkg/camera"
	"github.com/leterax/citywalk/pkg/city"
	"github.com/leterax/citywalk/pkg/control"
	"github.com/leterax/citywalk/pkg/host/glfwhost"
	"github.com/leterax/citywalk/pkg/render"
	"github.com/leterax/citywalk/pkg/signal"
	"github.com/sirupsen/logrus"
)

func init() {
	// OpenGL calls must come from the thread that owns the context
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	seed := flag.Int64("seed", 0, "City layout seed (0 keeps the configured seed)")
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	log.SetLevel(cfg.Level())
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}
	if *seed != 0 {
		cfg.City.Seed = *seed
	}

	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := signal.Init()
	defer signal.Teardown()

	window, err := openglhelper.NewWindow(openglhelper.WindowConfig{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		VSync:  cfg.Window.VSync,
		Logger: log,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create window")
	}

	layout := city.Generate(cfg.City)
	cam := camera.NewCamera(mgl32.Vec3(cfg.Controller.Overview.Position))

	controller := control.NewController(append(cfg.Controller.Options(),
		control.WithLogger(log.WithField("component", "controller")),
		control.WithCamera(cam),
		control.WithCaptureListener(func(captured bool) {
			bus.Publish(signal.TopicCaptureChanged, captured)
		}),
	)...)

	var renderer *render.Renderer
	h := glfwhost.New(window.GLFWWindow(),
		glfwhost.WithLogger(log.WithField("component", "glfwhost")),
		glfwhost.WithCloseOnEscape(),
		glfwhost.WithScrollHandler(cam.HandleMouseScroll),
		glfwhost.WithResizeHandler(func(width, height int) {
			if renderer != nil {
				renderer.OnResize(width, height)
			}
		}),
	)

	subscribeHUD(bus, window, cfg.Window.Title, controller, log)

	renderer, err = render.NewRenderer(window, layout, controller, cam,
		render.WithLogger(log.WithField("component", "render")),
		render.WithBus(bus),
		render.WithPoller(h),
		render.WithMascot(cfg.Mascot, mgl32.Vec3(cfg.Controller.Street.Position), cfg.Controller.Street.Yaw),
	)
	if err != nil {
		window.Close()
		log.WithError(err).Fatal("failed to initialize renderer")
	}
	defer renderer.Cleanup()

	if !controller.Attach(h) {
		log.Fatal("failed to attach controller")
	}

	log.WithFields(logrus.Fields{
		"seed":      cfg.City.Seed,
		"buildings": len(layout.Buildings),
	}).Info("starting city walk")

	if err := renderer.Run(ctx); err != nil {
		log.WithError(err).Info("render loop stopped")
	}
}

// subscribeHUD keeps the window title and the hint log line in sync with the controller phase
func subscribeHUD(bus *signal.Bus, window *openglhelper.Window, title string, controller *control.Controller, log logrus.FieldLogger) {
	show := func() {
		hint := controller.Phase().Hint()
		window.SetTitle(title + " - " + hint)
		bus.Publish(signal.TopicHint, hint)
	}

	bus.Subscribe(signal.TopicSceneReady, func(any) { show() })
	bus.Subscribe(signal.TopicCaptureChanged, func(any) { show() })
	bus.Subscribe(signal.TopicHint, func(payload any) {
		if hint, ok := payload.(string); ok {
			log.WithField("hint", hint).Info("hint")
		}
	})
}
