package gen

import (
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/block"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/coords"
)

// FlatGenerator generates a level world: air above Surface, grass at Surface,
// dirt below. It ignores and returns the walk state unchanged.
type FlatGenerator struct {
	Height  int
	Surface int
}

// NewFlatGenerator creates a FlatGenerator.
func NewFlatGenerator(height, surface int) *FlatGenerator {
	return &FlatGenerator{Height: height, Surface: clampRow(float64(surface), height)}
}

func (g *FlatGenerator) Generate(s State, _ bool, originX int) (*Chunk, State) {
	var columns [coords.ChunkWidth][]block.Block
	for i := range columns {
		columns[i] = fillColumn(g.Height, g.Surface, false)
	}
	c := newChunk(originX, columns)
	c.Left, c.Right = s, s
	return c, s
}
