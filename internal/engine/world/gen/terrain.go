package gen

import (
	"log/slog"
	"math"
	"slices"

	"github.com/OCharnyshevich/sidescroll/internal/engine/world/block"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/coords"
)

// TerrainGenerator produces rolling hills from a hash-driven 1D random walk.
type TerrainGenerator struct {
	height  int
	pockets PocketSeeder
	log     *slog.Logger
}

// NewTerrainGenerator creates a TerrainGenerator for columns of the given height.
// pockets may be nil.
func NewTerrainGenerator(height int, pockets PocketSeeder, log *slog.Logger) *TerrainGenerator {
	return &TerrainGenerator{
		height:  height,
		pockets: pockets,
		log:     log,
	}
}

func (g *TerrainGenerator) Generate(s State, leftToRight bool, originX int) (*Chunk, State) {
	begin := s
	biome := BiomeForChunk(coords.WorldToChunk(originX), g.log)

	x, step := originX, 1
	if !leftToRight {
		x, step = originX+coords.ChunkWidth-1, -1
	}

	columns := make([][]block.Block, 0, coords.ChunkWidth)
	for range coords.ChunkWidth {
		var tree bool
		s, tree = walk(s, biome, x)

		surface := clampRow(s.Height, g.height)
		col := fillColumn(g.height, surface, tree)
		if g.pockets != nil {
			g.pockets.Stamp(x, col)
		}
		columns = append(columns, col)
		x += step
	}
	if !leftToRight {
		slices.Reverse(columns)
	}

	c := newChunk(originX, [coords.ChunkWidth][]block.Block(columns))
	if leftToRight {
		c.Left, c.Right = begin, s
	} else {
		c.Left, c.Right = s, begin
	}

	g.log.Debug("generate chunk", "chunk", c.Index, "biome", biome, "leftToRight", leftToRight,
		"height", s.Height, "slope", s.Slope)
	return c, s
}

// walk advances the random walk by one column at x and reports whether a tree
// stands on that column.
func walk(s State, biome Biome, x int) (State, bool) {
	h := Hash(TerrainSeed, x)
	freq := biome.Frequency()
	maxSlope := biome.MaxSlope()
	lo, hi := biome.HeightBand()

	s.Slope += unitRandom(h) * freq
	s.Slope = math.Max(-maxSlope, math.Min(maxSlope, s.Slope))

	// Pull the walk back into the biome band; a steep descent far below the
	// band triggers the correction earlier.
	if (s.Height < lo-10 && s.Slope < -0.4) || s.Height < lo {
		s.Slope += freq / 3
	}
	if (s.Height > hi+10 && s.Slope > 0.4) || s.Height > hi {
		s.Slope -= freq / 3
	}

	// Suppresses a tree when the column to the left hashes to a tree as well.
	// This looks at hashes, not at placed blocks, so it is approximate.
	prob := biome.TreeProb()
	tree := h%prob == 0 && Hash(TerrainSeed, x-1)%prob != 0

	s.Height += s.Slope
	return s, tree
}

// clampRow converts a walk height into a valid row index.
func clampRow(height float64, rows int) int {
	r := int(math.Floor(height))
	if r < 0 {
		return 0
	}
	if r >= rows {
		return rows - 1
	}
	return r
}
