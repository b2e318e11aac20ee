// Package coords maps global block coordinates to chunk slots and to screen pixels.
package coords

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// ChunkWidth is the number of columns in a chunk.
	ChunkWidth = 32
	// BiomeGroupSize is the number of consecutive chunks sharing one biome.
	BiomeGroupSize = 8
	// TileSize is the on-screen size of one block in pixels.
	TileSize = 16.0
)

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// WorldToChunkAndColumn splits a global x into its chunk index and in-chunk column.
// The column is always in [0, ChunkWidth), including for negative x.
func WorldToChunkAndColumn(x int) (chunk, column int) {
	chunk = floorDiv(x, ChunkWidth)
	column = ((x % ChunkWidth) + ChunkWidth) % ChunkWidth
	return chunk, column
}

// WorldToChunk returns the index of the chunk containing global x.
func WorldToChunk(x int) int {
	return floorDiv(x, ChunkWidth)
}

// ChunkOrigin returns the global x of a chunk's leftmost column.
func ChunkOrigin(chunk int) int {
	return chunk * ChunkWidth
}

// ChunkGroup returns the biome group a chunk belongs to.
func ChunkGroup(chunk int) int {
	return floorDiv(chunk, BiomeGroupSize)
}

// WorldToScreen returns the pixel position of block (x, y) for a camera centered on player.
func WorldToScreen(x, y int, player, screenCenter mgl64.Vec2) mgl64.Vec2 {
	diff := player.Sub(mgl64.Vec2{float64(x), float64(y)})
	return screenCenter.Sub(diff.Mul(TileSize))
}

// ScreenToWorld returns the block under a pixel position. Inverse of WorldToScreen.
func ScreenToWorld(screen, player, screenCenter mgl64.Vec2) (x, y int) {
	w := player.Sub(screenCenter.Sub(screen).Mul(1 / TileSize))
	return int(math.Floor(w.X())), int(math.Floor(w.Y()))
}
