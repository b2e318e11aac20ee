package config

import (
	"errors"
	"fmt"
)

// Generator types.
const (
	GeneratorTerrain = "terrain"
	GeneratorFlat    = "flat"
)

// Water pocket seeding modes.
const (
	PocketsNone  = "none"
	PocketsDemo  = "demo"
	PocketsNoise = "noise"
)

// Config holds the engine configuration.
type Config struct {
	WorldHeight       int     `json:"world_height" yaml:"world_height"`
	WindowChunks      int     `json:"window_chunks" yaml:"window_chunks"`
	InitialFirstChunk int     `json:"initial_first_chunk" yaml:"initial_first_chunk"`
	TrailingMargin    int     `json:"trailing_margin" yaml:"trailing_margin"` // chunks kept loaded behind the player
	GeneratorType     string  `json:"generator" yaml:"generator"`             // "terrain" or "flat"
	FlatSurface       int     `json:"flat_surface" yaml:"flat_surface"`
	InitialHeight     float64 `json:"initial_height" yaml:"initial_height"`
	InitialSlope      float64 `json:"initial_slope" yaml:"initial_slope"`

	WaterPockets    string  `json:"water_pockets" yaml:"water_pockets"` // "none", "demo" or "noise"
	PocketSeed      int64   `json:"pocket_seed" yaml:"pocket_seed"`
	PocketThreshold float64 `json:"pocket_threshold" yaml:"pocket_threshold"`
	PocketAmount    float64 `json:"pocket_amount" yaml:"pocket_amount"`

	LightIterationCap int       `json:"light_iteration_cap" yaml:"light_iteration_cap"`
	WaterIterationCap int       `json:"water_iteration_cap" yaml:"water_iteration_cap"`
	DryThreshold      float64   `json:"dry_threshold" yaml:"dry_threshold"`
	MaxFlow           float64   `json:"max_flow" yaml:"max_flow"`             // water moved down per cell per pass
	PressureBands     []float64 `json:"pressure_bands" yaml:"pressure_bands"` // ascending ceilings for the cell below

	RenderBacklogWarn int `json:"render_backlog_warn" yaml:"render_backlog_warn"`
	TickRateHz        int `json:"tick_rate_hz" yaml:"tick_rate_hz"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		WorldHeight:       2048,
		WindowChunks:      10,
		InitialFirstChunk: -5,
		TrailingMargin:    4,
		GeneratorType:     GeneratorTerrain,
		FlatSurface:       32,
		InitialHeight:     20,
		InitialSlope:      0.2,
		WaterPockets:      PocketsNone,
		PocketThreshold:   0.6,
		PocketAmount:      4,
		LightIterationCap: 100_000,
		WaterIterationCap: 100_000,
		DryThreshold:      0.1,
		MaxFlow:           1.0,
		PressureBands:     []float64{16, 17, 18, 19, 20, 21},
		RenderBacklogWarn: 4096,
		TickRateHz:        60,
	}
}

// Validate reports the first setting the engine cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.WorldHeight < 2:
		return fmt.Errorf("world_height %d: must be at least 2", c.WorldHeight)
	case c.WindowChunks < 1:
		return fmt.Errorf("window_chunks %d: must be positive", c.WindowChunks)
	case c.TrailingMargin < 0 || c.TrailingMargin >= c.WindowChunks:
		return fmt.Errorf("trailing_margin %d: must be in [0, window_chunks)", c.TrailingMargin)
	case c.LightIterationCap < 1 || c.WaterIterationCap < 1:
		return errors.New("iteration caps must be positive")
	case c.DryThreshold < 0 || c.MaxFlow <= 0:
		return errors.New("dry_threshold must be non-negative and max_flow positive")
	case len(c.PressureBands) == 0:
		return errors.New("pressure_bands must not be empty")
	case c.TickRateHz < 1:
		return fmt.Errorf("tick_rate_hz %d: must be positive", c.TickRateHz)
	}
	for i := 1; i < len(c.PressureBands); i++ {
		if c.PressureBands[i] < c.PressureBands[i-1] {
			return fmt.Errorf("pressure_bands must ascend, got %v", c.PressureBands)
		}
	}
	switch c.GeneratorType {
	case GeneratorTerrain, GeneratorFlat:
	default:
		return fmt.Errorf("unknown generator %q", c.GeneratorType)
	}
	switch c.WaterPockets {
	case PocketsNone, PocketsDemo, PocketsNoise:
	default:
		return fmt.Errorf("unknown water_pockets mode %q", c.WaterPockets)
	}
	return nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["height"] {
		cfg.WorldHeight = fromFile.WorldHeight
	}
	if !explicitFlags["window"] {
		cfg.WindowChunks = fromFile.WindowChunks
	}
	if !explicitFlags["generator"] {
		cfg.GeneratorType = fromFile.GeneratorType
	}
	if !explicitFlags["pockets"] {
		cfg.WaterPockets = fromFile.WaterPockets
	}
	if !explicitFlags["tick-rate"] {
		cfg.TickRateHz = fromFile.TickRateHz
	}
	cfg.InitialFirstChunk = fromFile.InitialFirstChunk
	cfg.TrailingMargin = fromFile.TrailingMargin
	cfg.FlatSurface = fromFile.FlatSurface
	cfg.InitialHeight = fromFile.InitialHeight
	cfg.InitialSlope = fromFile.InitialSlope
	cfg.PocketSeed = fromFile.PocketSeed
	cfg.PocketThreshold = fromFile.PocketThreshold
	cfg.PocketAmount = fromFile.PocketAmount
	cfg.LightIterationCap = fromFile.LightIterationCap
	cfg.WaterIterationCap = fromFile.WaterIterationCap
	cfg.DryThreshold = fromFile.DryThreshold
	cfg.MaxFlow = fromFile.MaxFlow
	cfg.PressureBands = append([]float64(nil), fromFile.PressureBands...)
	cfg.RenderBacklogWarn = fromFile.RenderBacklogWarn
}
