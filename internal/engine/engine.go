package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/OCharnyshevich/sidescroll/internal/engine/config"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/gen"
)

// Player is the part of the player subsystem the engine drives each tick.
type Player interface {
	// Move advances the player and returns its horizontal world position.
	Move(q world.BlockQuerier) float64
	// Act applies the player's edits to the grid, if any.
	Act(m *world.Map)
}

// Frame is called after every tick with what must be redrawn.
type Frame func(tick int, inv world.Invalidations)

// Engine owns the block grid and runs the per-tick simulation. All grid access
// goes through the engine's lock, so a tick is never observed half done.
type Engine struct {
	mu    sync.Mutex
	cfg   *config.Config
	log   *slog.Logger
	world *world.Map
	ticks int
}

// New creates an Engine with the given config and logger and generates the
// initial window.
func New(cfg *config.Config, log *slog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var pockets gen.PocketSeeder
	switch cfg.WaterPockets {
	case config.PocketsDemo:
		pockets = gen.DemoPockets{}
	case config.PocketsNoise:
		pockets = gen.NewNoisePockets(cfg.PocketSeed, cfg.PocketThreshold, cfg.PocketAmount)
	}

	var generator gen.Generator
	switch cfg.GeneratorType {
	case config.GeneratorFlat:
		generator = gen.NewFlatGenerator(cfg.WorldHeight, cfg.FlatSurface)
	default:
		generator = gen.NewTerrainGenerator(cfg.WorldHeight, pockets, log)
	}

	m, err := world.NewMap(cfg, generator, log)
	if err != nil {
		log.Error("create world", "error", err)
		return nil, fmt.Errorf("create world: %w", err)
	}

	log.Info("world created",
		"generator", cfg.GeneratorType,
		"pockets", cfg.WaterPockets,
		"height", cfg.WorldHeight,
		"chunks", m.Len(),
		"firstChunk", m.FirstChunk(),
	)
	return &Engine{cfg: cfg, log: log, world: m}, nil
}

// Tick runs one simulation step: the player moves, the window follows it,
// the player edits the grid, then water flows and light settles. A diverged
// engine aborts the tick and the error is returned.
func (e *Engine) Tick(p Player) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ticks++
	x := p.Move(e.world)
	e.world.UpdateChunks(x)
	p.Act(e.world)

	if err := e.world.FlowWater(); err != nil {
		e.log.Error("water simulation diverged", "tick", e.ticks, "error", err)
		return fmt.Errorf("tick %d: %w", e.ticks, err)
	}
	if err := e.world.SpreadLights(); err != nil {
		e.log.Error("light simulation diverged", "tick", e.ticks, "error", err)
		return fmt.Errorf("tick %d: %w", e.ticks, err)
	}
	return nil
}

// Do runs fn with exclusive access to the grid. Light and water queued by fn
// are processed by the next Tick.
func (e *Engine) Do(fn func(m *world.Map) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.world)
}

// Drain returns everything queued for redraw since the last call.
func (e *Engine) Drain() world.Invalidations {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.world.Drain()
}

// Ticks returns the number of ticks run so far.
func (e *Engine) Ticks() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ticks
}

// Run ticks at the configured rate until the context is cancelled, maxTicks
// ticks have run (0 means no limit) or a tick fails. frame may be nil.
func (e *Engine) Run(ctx context.Context, p Player, maxTicks int, frame Frame) error {
	interval := time.Second / time.Duration(max(1, e.cfg.TickRateHz))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.log.Info("simulation started", "tickRate", e.cfg.TickRateHz, "maxTicks", maxTicks)

	for n := 1; maxTicks == 0 || n <= maxTicks; n++ {
		select {
		case <-ctx.Done():
			e.log.Info("simulation stopped", "ticks", n-1)
			return nil
		case <-ticker.C:
		}

		if err := e.Tick(p); err != nil {
			return err
		}
		inv := e.Drain()
		if frame != nil {
			frame(n, inv)
		}
	}

	e.log.Info("simulation finished", "ticks", maxTicks)
	return nil
}

// Stats is a snapshot of the simulation for logging.
type Stats struct {
	FirstChunk    int
	Chunks        int
	ActiveWater   int
	TotalWater    float64
	PendingLights int
}

// Stats returns a snapshot of the grid.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Stats{
		FirstChunk:    e.world.FirstChunk(),
		Chunks:        e.world.Len(),
		ActiveWater:   e.world.ActiveWater(),
		TotalWater:    e.world.TotalWater(),
		PendingLights: e.world.PendingLights(),
	}
}
