package gen

import (
	"log/slog"

	"github.com/OCharnyshevich/sidescroll/internal/engine/world/coords"
)

// Biome selects the generation constants of an 8-chunk group.
type Biome uint8

const (
	Hills Biome = iota
	Grassland
	TemperateBroadleafForest

	biomeCount = 3
)

// biomeParams are the per-biome random walk constants.
type biomeParams struct {
	frequency float64 // slope perturbation scale
	maxSlope  float64
	minHeight float64 // target band, rows from the top
	maxHeight float64
	treeProb  uint32 // one tree every treeProb columns on average
}

var biomeTable = [biomeCount]biomeParams{
	Hills:                    {frequency: 0.2, maxSlope: 0.9, minHeight: 30, maxHeight: 40, treeProb: 50},
	Grassland:                {frequency: 0.06, maxSlope: 0.5, minHeight: 30, maxHeight: 40, treeProb: 32},
	TemperateBroadleafForest: {frequency: 0.08, maxSlope: 0.7, minHeight: 30, maxHeight: 40, treeProb: 10},
}

func (b Biome) params() biomeParams { return biomeTable[b] }

// Frequency returns how strongly the hash perturbs the slope per column.
func (b Biome) Frequency() float64 { return b.params().frequency }

// MaxSlope returns the absolute slope limit.
func (b Biome) MaxSlope() float64 { return b.params().maxSlope }

// HeightBand returns the surface row range the walk is pulled back into.
func (b Biome) HeightBand() (lo, hi float64) {
	p := b.params()
	return p.minHeight, p.maxHeight
}

// TreeProb returns the tree probability divisor.
func (b Biome) TreeProb() uint32 { return b.params().treeProb }

func (b Biome) String() string {
	switch b {
	case Hills:
		return "hills"
	case Grassland:
		return "grassland"
	case TemperateBroadleafForest:
		return "temperate_broadleaf_forest"
	default:
		return "unknown"
	}
}

// BiomeForChunk returns the biome of the 8-chunk group containing chunk.
func BiomeForChunk(chunk int, log *slog.Logger) Biome {
	group := coords.ChunkGroup(chunk)
	b, ok := biomeFromIndex(Hash(TerrainSeed, group) % biomeCount)
	if !ok {
		log.Error("biome selection out of range, falling back to hills", "chunk", chunk, "group", group)
	}
	return b
}

func biomeFromIndex(i uint32) (Biome, bool) {
	switch i {
	case 0:
		return Hills, true
	case 1:
		return Grassland, true
	case 2:
		return TemperateBroadleafForest, true
	default:
		return Hills, false
	}
}
