package world

import (
	"fmt"

	"github.com/OCharnyshevich/sidescroll/internal/engine/world/block"
)

// QueueWater marks (x, y) as active for the water engine. Call it after
// wetting a cell or opening space next to water.
func (m *Map) QueueWater(x, y int) {
	if !m.inWindow(x, y) {
		return
	}
	m.water.Push(Cell{x, y})
}

// ActiveWater returns the number of cells the water engine will visit next pass.
func (m *Map) ActiveWater() int {
	return m.water.Len()
}

// WaterActive reports whether (x, y) is on the water work-list.
func (m *Map) WaterActive(x, y int) bool {
	return m.water.Contains(Cell{x, y})
}

// TotalWater sums the water held by all loaded cells.
func (m *Map) TotalWater() float64 {
	var total float64
	for _, c := range m.chunks {
		for _, column := range c.Columns {
			for _, b := range column {
				total += b.Water
			}
		}
	}
	return total
}

// FlowWater runs one pass of the water simulation over the active cells, in
// list order. Cells stay active while they hold water; cells that receive
// water are activated for the next pass.
func (m *Map) FlowWater() error {
	active := m.water.Take()
	limit := m.cfg.WaterIterationCap
	for i, c := range active {
		if i >= limit {
			for _, rest := range active[i:] {
				m.water.Push(rest)
			}
			return fmt.Errorf("%w: water pass exceeded %d cells (%d active)",
				ErrSimulationDiverged, limit, len(active))
		}
		m.flowCell(c)
	}
	return nil
}

// pressureCeiling returns how full the cell below may get when fed by a cell
// holding water. A fuller source pushes harder.
func (m *Map) pressureCeiling(water float64) float64 {
	bands := m.cfg.PressureBands
	for _, b := range bands {
		if water <= b {
			return b
		}
	}
	return bands[len(bands)-1]
}

func (m *Map) flowCell(c Cell) {
	b := m.locate(c.X, c.Y)
	if b == nil {
		return
	}
	if !b.HoldsWater() || b.Water < m.cfg.DryThreshold {
		if b.Water != 0 {
			b.Water = 0
			m.dirty.markCell(c)
		}
		return
	}

	lateral := true
	below := Cell{c.X, c.Y + 1}
	if nb := m.Get(below.X, below.Y); nb.HoldsWater() {
		want := min(m.cfg.MaxFlow, b.Water)
		moved := min(want, m.pressureCeiling(b.Water)-nb.Water)
		if moved > 0 {
			b.Water -= moved
			m.addWater(below, moved)
			m.dirty.markCell(c)
			// Falling water keeps the lateral pass for the next tick unless
			// the cell below refused part of it.
			if moved >= want {
				lateral = false
			}
		}
	}
	if lateral {
		m.equalize(c, b)
	}
	m.water.Push(c)
}

// equalize averages the cell's water with its open left and right neighbors.
func (m *Map) equalize(c Cell, b *block.Block) {
	sides := make([]Cell, 0, 2)
	total := b.Water
	for _, dx := range [2]int{-1, 1} {
		n := Cell{c.X + dx, c.Y}
		if nb := m.Get(n.X, n.Y); nb.HoldsWater() {
			sides = append(sides, n)
			total += nb.Water
		}
	}
	if len(sides) == 0 {
		return
	}

	avg := total / float64(len(sides)+1)
	if b.Water != avg {
		b.Water = avg
		m.dirty.markCell(c)
	}
	for _, n := range sides {
		p := m.locate(n.X, n.Y)
		if p == nil {
			// Open boundary: whatever flows past the window is gone.
			continue
		}
		if p.Water != avg {
			p.Water = avg
			m.dirty.markCell(n)
			m.water.Push(n)
		}
	}
}

// addWater pours amount into an air cell and activates it. Water poured
// outside the window is lost.
func (m *Map) addWater(c Cell, amount float64) {
	p := m.locate(c.X, c.Y)
	if p == nil {
		return
	}
	p.Water += amount
	m.dirty.markCell(c)
	m.water.Push(c)
}
