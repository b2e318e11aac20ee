package world

import (
	"fmt"

	"github.com/OCharnyshevich/sidescroll/internal/engine/world/block"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/gen"
)

// skyRow is the row whose cells are fixed light sources.
const skyRow = 0

// QueueLight schedules (x, y) for a relax pass, or a retraction when retract is set.
func (m *Map) QueueLight(x, y int, retract bool) {
	if !m.inWindow(x, y) {
		return
	}
	if retract {
		m.retract.Push(Cell{x, y})
		return
	}
	m.relax.Push(Cell{x, y})
}

// RefreshLight schedules the light around (x, y) to be recomputed after the
// block there changed. The cell and everything it lit are torn down and then
// relit from the remaining sources.
func (m *Map) RefreshLight(x, y int) {
	if y == skyRow {
		m.QueueLight(x, y, false)
		return
	}
	m.QueueLight(x, y, true)
}

// PendingLights returns the number of queued light updates.
func (m *Map) PendingLights() int {
	return m.retract.Len() + m.relax.Len()
}

// InitLights recomputes lighting for the whole window from the sky row.
func (m *Map) InitLights() error {
	m.log.Info("initializing lights", "chunks", len(m.chunks))

	m.retract.Reset()
	m.relax.Reset()
	for _, c := range m.chunks {
		for col := range c.Columns {
			column := c.Columns[col]
			for y := range column {
				column[y].Light = 0
			}
		}
		m.dirty.markChunk(c.Index)
		m.seedLights(c)
	}

	if err := m.SpreadLights(); err != nil {
		return err
	}
	m.log.Info("lights initialized")
	return nil
}

// seedLights lights the sky row of c and queues the row below it.
func (m *Map) seedLights(c *gen.Chunk) {
	origin := c.Origin()
	for col := range c.Columns {
		column := c.Columns[col]
		if len(column) == 0 {
			continue
		}
		column[skyRow].Light = block.MaxLight
		m.QueueLight(origin+col, skyRow+1, false)
	}
}

// SpreadLights drains the light work-list. Pending retractions always run
// before relaxations, so a relax never reads a supplier that is about to be
// withdrawn. Every retracted cell is queued to relax again afterwards.
func (m *Map) SpreadLights() error {
	limit := m.cfg.LightIterationCap
	for n := 1; ; n++ {
		if m.PendingLights() == 0 {
			return nil
		}
		if n > limit {
			return fmt.Errorf("%w: %d light updates without settling (%d pending)",
				ErrSimulationDiverged, limit, m.PendingLights())
		}
		if c, ok := m.retract.Pop(); ok {
			if b := m.locate(c.X, c.Y); b != nil {
				m.retractLight(c.X, c.Y, b)
			}
			continue
		}
		c, _ := m.relax.Pop()
		if b := m.locate(c.X, c.Y); b != nil {
			m.relaxLight(c.X, c.Y, b)
		}
	}
}

// relaxLight sets the cell to the brightest neighbor minus its own loss and
// queues any neighbor that this makes too dark.
func (m *Map) relaxLight(x, y int, b *block.Block) {
	var light int
	if y == skyRow {
		light = int(block.MaxLight)
	} else {
		brightest := 0
		for _, n := range neighbors(x, y) {
			brightest = max(brightest, int(m.Get(n.X, n.Y).Light))
		}
		light = max(0, brightest-int(b.LightLoss()))
	}

	for _, n := range neighbors(x, y) {
		nb := m.Get(n.X, n.Y)
		if int(nb.Light)+int(nb.LightLoss()) < light {
			m.QueueLight(n.X, n.Y, false)
		}
	}

	if int(b.Light) != light {
		b.Light = uint8(light)
		m.dirty.markCell(Cell{x, y})
	}
}

// retractLight zeroes the cell and queues the neighbors whose light it was
// supplying. Sky sources are never withdrawn.
func (m *Map) retractLight(x, y int, b *block.Block) {
	if y == skyRow {
		return
	}
	light := int(b.Light)
	if light > 0 {
		for _, n := range neighbors(x, y) {
			nb := m.Get(n.X, n.Y)
			if int(nb.Light)+int(nb.LightLoss()) == light {
				m.QueueLight(n.X, n.Y, true)
			}
		}
		b.Light = 0
		m.dirty.markCell(Cell{x, y})
	}
	m.QueueLight(x, y, false)
}
