package world

import (
	"fmt"
	"log/slog"

	"github.com/OCharnyshevich/sidescroll/internal/engine/config"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/block"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/coords"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/gen"
)

// BlockQuerier is the read-only view of the grid used by the player and the renderer.
type BlockQuerier interface {
	Get(x, y int) block.Block
}

// Map is the block grid: a contiguous window of loaded chunks that slides to
// follow the player. Coordinates outside the window read as air.
//
// A Map is not safe for concurrent use.
type Map struct {
	cfg       *config.Config
	log       *slog.Logger
	generator gen.Generator

	chunks     []*gen.Chunk // ordered left to right, no gaps
	firstChunk int
	firstBlock int // vertical scroll offset, 0 until vertical scrolling exists
	height     int

	// Light work is split by kind; retractions drain first.
	retract *workList[Cell]
	relax   *workList[Cell]
	water   *workList[Cell]
	dirty   *invalidationQueue
}

// NewMap generates the initial window and lights it.
func NewMap(cfg *config.Config, generator gen.Generator, log *slog.Logger) (*Map, error) {
	m := &Map{
		cfg:        cfg,
		log:        log,
		generator:  generator,
		firstChunk: cfg.InitialFirstChunk,
		height:     cfg.WorldHeight,
		retract:    newWorkList[Cell](),
		relax:      newWorkList[Cell](),
		water:      newWorkList[Cell](),
		dirty:      newInvalidationQueue(cfg.RenderBacklogWarn, log),
	}

	s := gen.State{Height: cfg.InitialHeight, Slope: cfg.InitialSlope}
	for i := range cfg.WindowChunks {
		var c *gen.Chunk
		c, s = generator.Generate(s, true, coords.ChunkOrigin(cfg.InitialFirstChunk+i))
		m.chunks = append(m.chunks, c)
		m.activateWater(c)
		m.dirty.markChunk(c.Index)
	}

	if err := m.InitLights(); err != nil {
		return nil, fmt.Errorf("initialize lights: %w", err)
	}
	return m, nil
}

// locate returns the owned cell at (x, y), or nil outside the window.
func (m *Map) locate(x, y int) *block.Block {
	if y < 0 || y >= m.height {
		return nil
	}
	chunk, column := coords.WorldToChunkAndColumn(x)
	idx := chunk - m.firstChunk
	if idx < 0 || idx >= len(m.chunks) {
		return nil
	}
	return &m.chunks[idx].Columns[column][y]
}

// Get returns the block at (x, y), or a synthetic air block outside the window.
func (m *Map) Get(x, y int) block.Block {
	if b := m.locate(x, y); b != nil {
		return *b
	}
	return block.AirBlock
}

// Set replaces the block at (x, y) and queues the cell and its neighbors for
// redraw. Writes outside the window are dropped. Solid blocks never keep water.
func (m *Map) Set(x, y int, b block.Block) {
	p := m.locate(x, y)
	if p == nil {
		return
	}
	if !b.HoldsWater() {
		b.Water = 0
	}
	*p = b
	m.Touch(x, y)
}

// Cell returns a pointer to the block at (x, y) for field-level mutation, or nil
// outside the window. Callers should Touch the cell after changing it.
func (m *Map) Cell(x, y int) *block.Block {
	return m.locate(x, y)
}

// Touch queues (x, y) and its four neighbors for redraw; neighbor textures
// depend on whether this cell is open.
func (m *Map) Touch(x, y int) {
	m.dirty.markCell(Cell{x, y})
	for _, n := range neighbors(x, y) {
		if m.inWindow(n.X, n.Y) {
			m.dirty.markCell(n)
		}
	}
}

// Drain returns and clears everything queued for redraw.
func (m *Map) Drain() Invalidations {
	return m.dirty.drain()
}

func (m *Map) inWindow(x, y int) bool {
	return m.locate(x, y) != nil
}

// FirstChunk returns the index of the leftmost loaded chunk.
func (m *Map) FirstChunk() int { return m.firstChunk }

// Len returns the number of loaded chunks.
func (m *Map) Len() int { return len(m.chunks) }

// FirstBlock returns the vertical offset of the loaded rows.
func (m *Map) FirstBlock() int { return m.firstBlock }

// Height returns the number of rows per column.
func (m *Map) Height() int { return m.height }

// Bounds returns the loaded global x range [minX, maxX).
func (m *Map) Bounds() (minX, maxX int) {
	return coords.ChunkOrigin(m.firstChunk), coords.ChunkOrigin(m.firstChunk + len(m.chunks))
}

// ChunkIndices returns the indices of the loaded chunks, left to right.
func (m *Map) ChunkIndices() []int {
	out := make([]int, len(m.chunks))
	for i, c := range m.chunks {
		out[i] = c.Index
	}
	return out
}

// Chunk returns the loaded chunk with the given index, or nil.
func (m *Map) Chunk(index int) *gen.Chunk {
	idx := index - m.firstChunk
	if idx < 0 || idx >= len(m.chunks) {
		return nil
	}
	return m.chunks[idx]
}

func neighbors(x, y int) [4]Cell {
	return [4]Cell{{x + 1, y}, {x - 1, y}, {x, y - 1}, {x, y + 1}}
}
