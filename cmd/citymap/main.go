package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leterax/citywalk/internal/config"
	"github.com/leterax/citywalk/pkg/city"
	"github.com/leterax/citywalk/pkg/control"
	"github.com/leterax/citywalk/pkg/host/ebitenhost"
	"github.com/leterax/citywalk/pkg/signal"
	"github.com/sirupsen/logrus"
)

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

	bus := signal.Init()
	defer signal.Teardown()

	layout := city.Generate(cfg.City)
	h := ebitenhost.New(cfg.Window.Width, cfg.Window.Height, log.WithField("component", "ebitenhost"))
	controller := control.NewController(append(cfg.Controller.Options(),
		control.WithLogger(log.WithField("component", "controller")),
		control.WithCaptureListener(func(captured bool) {
			bus.Publish(signal.TopicCaptureChanged, captured)
		}),
	)...)

	g := newGame(layout, controller, h)
	g.follow(bus)
	if !controller.Attach(h) {
		log.Fatal("failed to attach controller")
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title + " - map")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.WithField("seed", cfg.City.Seed).Info("starting city map")
	bus.Publish(signal.TopicSceneReady, nil)

	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("game stopped")
	}
}
