package world

import "github.com/OCharnyshevich/sidescroll/internal/engine/world/block"

// PlaceMaterial changes the material at (x, y), keeping its background, and
// schedules the light and water engines for the change. It reports whether
// the cell is loaded.
func (m *Map) PlaceMaterial(x, y int, mat block.Material) bool {
	p := m.locate(x, y)
	if p == nil {
		return false
	}
	b := *p
	if b.Material == mat {
		return true
	}
	b.Material = mat
	if mat != block.Air {
		b.Water = 0
	}
	m.Set(x, y, b)
	m.RefreshLight(x, y)

	// Opening a cell lets adjacent water in; closing one may leave water
	// above it with nowhere to go but sideways.
	m.QueueWater(x, y)
	for _, n := range neighbors(x, y) {
		if m.Get(n.X, n.Y).Water > 0 {
			m.QueueWater(n.X, n.Y)
		}
	}
	return true
}

// PourWater adds water to an air cell and activates it.
func (m *Map) PourWater(x, y int, amount float64) bool {
	p := m.locate(x, y)
	if p == nil || !p.HoldsWater() || amount <= 0 {
		return false
	}
	m.addWater(Cell{x, y}, amount)
	return true
}
