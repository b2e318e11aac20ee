package gen

import (
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/block"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/coords"
)

// State is the random walk carried from one chunk boundary to the next.
type State struct {
	Height float64 `json:"height" yaml:"height"` // surface row, measured down from the top
	Slope  float64 `json:"slope" yaml:"slope"`
}

// Chunk holds ChunkWidth columns of blocks, stored in increasing x order.
type Chunk struct {
	Index   int
	Columns [coords.ChunkWidth][]block.Block

	// Walk state at the left and right boundary, used to continue generation
	// into a neighbor without a seam.
	Left  State
	Right State
}

// Generator produces chunks deterministically from the carry-over state.
type Generator interface {
	// Generate builds the chunk whose leftmost column is originX, walking from
	// the left edge when leftToRight is set and from the right edge otherwise.
	// It returns the chunk and the walk state at the far boundary.
	Generate(s State, leftToRight bool, originX int) (*Chunk, State)
}

// Origin returns the global x of the chunk's leftmost column.
func (c *Chunk) Origin() int {
	return coords.ChunkOrigin(c.Index)
}

// Column returns the blocks of local column col, top to bottom.
func (c *Chunk) Column(col int) []block.Block {
	return c.Columns[col]
}

// SurfaceRow returns the row of the topmost non-air, non-tree block of a
// column, or -1 when the column is empty.
func SurfaceRow(column []block.Block) int {
	for y, b := range column {
		if b.Material == block.Grass || b.Material == block.Dirt {
			return y
		}
	}
	return -1
}

func newChunk(originX int, columns [coords.ChunkWidth][]block.Block) *Chunk {
	return &Chunk{
		Index:   coords.WorldToChunk(originX),
		Columns: columns,
	}
}

// fillColumn builds a column whose grass surface is at row surface.
func fillColumn(height, surface int, tree bool) []block.Block {
	col := make([]block.Block, height)
	for y := range col {
		switch {
		case y < surface:
			col[y] = block.Block{Material: block.Air, Background: block.Sky}
		case y == surface:
			col[y] = block.Block{Material: block.Grass, Background: block.DirtWall}
		default:
			col[y] = block.Block{Material: block.Dirt, Background: block.DirtWall}
		}
	}
	if tree && surface > 0 {
		col[surface-1] = block.Block{Material: block.Tree, Background: block.DirtWall}
	}
	return col
}
