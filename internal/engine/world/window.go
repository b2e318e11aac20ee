package world

import (
	"math"

	"github.com/OCharnyshevich/sidescroll/internal/engine/world/block"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/coords"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/gen"
)

// UpdateChunks re-centers the window on the player's horizontal position.
func (m *Map) UpdateChunks(playerX float64) {
	m.SlideWindow(coords.WorldToChunk(int(math.Floor(playerX))))
}

// SlideWindow moves the window one chunk at a time until exactly
// TrailingMargin chunks are loaded left of target.
func (m *Map) SlideWindow(target int) {
	for {
		want := target - m.cfg.TrailingMargin
		switch {
		case m.firstChunk > want:
			m.shiftLeft()
		case m.firstChunk < want:
			m.shiftRight()
		default:
			return
		}
	}
}

// shiftLeft evicts the rightmost chunk and generates a new leftmost one.
func (m *Map) shiftLeft() {
	s := m.chunks[0].Left
	evicted := m.chunks[len(m.chunks)-1]

	m.chunks = m.chunks[:len(m.chunks)-1]
	m.dirty.markEvicted(evicted.Index)

	m.firstChunk--
	c, _ := m.generator.Generate(s, false, coords.ChunkOrigin(m.firstChunk))
	m.chunks = append([]*gen.Chunk{c}, m.chunks...)

	m.log.Debug("window slid left", "loaded", c.Index, "evicted", evicted.Index)
	m.chunkLoaded(c)
	if len(m.chunks) > 1 {
		minX, maxX := m.Bounds()
		m.retractEdge(maxX - 1)
		m.relaxEdge(minX + coords.ChunkWidth)
	}
}

// shiftRight evicts the leftmost chunk and generates a new rightmost one.
func (m *Map) shiftRight() {
	s := m.chunks[len(m.chunks)-1].Right
	evicted := m.chunks[0]

	m.chunks = m.chunks[1:]
	m.dirty.markEvicted(evicted.Index)

	m.firstChunk++
	c, _ := m.generator.Generate(s, true, coords.ChunkOrigin(m.firstChunk+len(m.chunks)))
	m.chunks = append(m.chunks, c)

	m.log.Debug("window slid right", "loaded", c.Index, "evicted", evicted.Index)
	m.chunkLoaded(c)
	if len(m.chunks) > 1 {
		minX, maxX := m.Bounds()
		m.retractEdge(minX)
		m.relaxEdge(maxX - coords.ChunkWidth - 1)
	}
}

// chunkLoaded lights a fresh chunk, wakes its water and queues it for drawing.
func (m *Map) chunkLoaded(c *gen.Chunk) {
	m.dirty.markChunk(c.Index)
	m.activateWater(c)
	m.seedLights(c)
}

// retractEdge withdraws light in column x that may have been fed by the chunk
// that just left the window. The cells relight from what is still loaded.
func (m *Map) retractEdge(x int) {
	for y := 1; y < m.height; y++ {
		if m.Get(x, y).Light > 0 {
			m.QueueLight(x, y, true)
		}
	}
}

// relaxEdge re-relaxes the lit cells of column x, which borders a freshly
// loaded chunk, so their light reaches into it.
func (m *Map) relaxEdge(x int) {
	for y := 1; y < m.height; y++ {
		if m.Get(x, y).Light > 0 {
			m.QueueLight(x, y, false)
		}
	}
}

// activateWater queues every wet cell of c for the water engine.
func (m *Map) activateWater(c *gen.Chunk) {
	origin := c.Origin()
	for col, column := range c.Columns {
		for y, b := range column {
			if b.Water > 0 && b.Material == block.Air {
				m.water.Push(Cell{origin + col, y})
			}
		}
	}
}
