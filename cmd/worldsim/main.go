package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/OCharnyshevich/sidescroll/internal/engine"
	"github.com/OCharnyshevich/sidescroll/internal/engine/config"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world"
)

func main() {
	cfg := config.DefaultConfig()

	var (
		configSrc   = flag.String("config", "", "config file path or go-getter URL")
		writeConfig = flag.String("write-config", "", "write the effective config to this path and exit")
		ticks       = flag.Int("ticks", 600, "ticks to simulate, 0 runs until interrupted")
		speed       = flag.Float64("speed", 0.1, "player speed in blocks per tick")
		digEvery    = flag.Int("dig-every", 30, "dig under the player every n ticks, 0 disables")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.IntVar(&cfg.WorldHeight, "height", cfg.WorldHeight, "blocks per column")
	flag.IntVar(&cfg.WindowChunks, "window", cfg.WindowChunks, "loaded chunks")
	flag.StringVar(&cfg.GeneratorType, "generator", cfg.GeneratorType, "terrain generator: terrain or flat")
	flag.StringVar(&cfg.WaterPockets, "pockets", cfg.WaterPockets, "initial water: none, demo or noise")
	flag.IntVar(&cfg.TickRateHz, "tick-rate", cfg.TickRateHz, "ticks per second")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *configSrc != "" {
		path, err := config.Fetch(ctx, *configSrc, filepath.Join(os.TempDir(), "worldsim"))
		if err != nil {
			log.Error("fetch config", "error", err)
			os.Exit(1)
		}
		fromFile, err := config.Load(path)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}

		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
		log.Info("config loaded", "source", *configSrc)
	}

	if *writeConfig != "" {
		if err := config.Save(*writeConfig, cfg); err != nil {
			log.Error("write config", "error", err)
			os.Exit(1)
		}
		log.Info("config written", "path", *writeConfig)
		return
	}

	eng, err := engine.New(cfg, log)
	if err != nil {
		log.Error("engine error", "error", err)
		os.Exit(1)
	}

	p := newWalker(*speed, *digEvery)
	frame := func(tick int, inv world.Invalidations) {
		if tick%cfg.TickRateHz != 0 {
			return
		}
		s := eng.Stats()
		log.Info("tick",
			"tick", tick,
			"playerX", p.pos.X(),
			"firstChunk", s.FirstChunk,
			"activeWater", s.ActiveWater,
			"water", s.TotalWater,
			"redrawCells", len(inv.Cells),
			"redrawChunks", len(inv.Loaded),
		)
		log.Debug("camera", "feet", p.screen(1280, 720))
	}

	if err := eng.Run(ctx, p, *ticks, frame); err != nil {
		log.Error("simulation error", "error", err)
		os.Exit(1)
	}
}
