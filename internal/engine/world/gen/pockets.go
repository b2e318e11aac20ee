package gen

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/OCharnyshevich/sidescroll/internal/engine/world/block"
)

// PocketSeeder stamps initial water into a freshly generated column.
// Water is only ever written into air cells.
type PocketSeeder interface {
	Stamp(x int, column []block.Block)
}

// DemoPockets places a handful of fixed water cells near the origin. Useful to
// watch the water engine from the first frame.
type DemoPockets struct{}

var demoPockets = map[int][2]float64{
	8:  {5, 16},
	9:  {10, 16},
	10: {4, 10},
}

func (DemoPockets) Stamp(x int, column []block.Block) {
	w, ok := demoPockets[x]
	if !ok {
		return
	}
	addWater(column, 9, w[0])
	addWater(column, 10, w[1])
}

// NoisePockets fills the air cell resting on the surface with water wherever
// a 1D simplex noise track rises above a threshold, producing puddles.
type NoisePockets struct {
	noise     opensimplex.Noise
	threshold float64
	amount    float64
	scale     float64
}

// NewNoisePockets creates a NoisePockets seeder.
func NewNoisePockets(seed int64, threshold, amount float64) *NoisePockets {
	return &NoisePockets{
		noise:     opensimplex.New(seed),
		threshold: threshold,
		amount:    amount,
		scale:     0.07,
	}
}

func (p *NoisePockets) Stamp(x int, column []block.Block) {
	if p.noise.Eval2(float64(x)*p.scale, 0) <= p.threshold {
		return
	}
	surface := SurfaceRow(column)
	if surface <= 0 {
		return
	}
	addWater(column, surface-1, p.amount)
}

func addWater(column []block.Block, y int, amount float64) {
	if y < 0 || y >= len(column) || !column[y].HoldsWater() {
		return
	}
	column[y].Water = amount
}
