package gen

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// TerrainSeed is the fixed seed of every coordinate hash used by generation.
const TerrainSeed = 42

// Hash returns a stable 32-bit hash of v under seed. The value depends only on
// its inputs, never on process state, so the same x always yields the same terrain.
func Hash(seed uint64, v int) uint32 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(v)))
	h := xxhash.Sum64(buf[:])
	return uint32(h) ^ uint32(h>>32)
}

// unitRandom maps a 32-bit hash onto a symmetric value in [-1, 1].
func unitRandom(h uint32) float64 {
	const half = 2_147_483_647.0
	r := (float64(h) - half) / half
	if r > 1 {
		r = 1
	}
	return r
}
