package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/sidescroll/internal/engine/world"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/block"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/coords"
)

// walker stands in for the interactive player: it walks at a constant speed
// and, every digEvery ticks, digs out the ground under its feet.
type walker struct {
	pos      mgl64.Vec2
	speed    float64
	digEvery int
	ticks    int
}

func newWalker(speed float64, digEvery int) *walker {
	return &walker{pos: mgl64.Vec2{3, 0}, speed: speed, digEvery: digEvery}
}

func (w *walker) Move(world.BlockQuerier) float64 {
	w.ticks++
	w.pos[0] += w.speed
	return w.pos.X()
}

func (w *walker) Act(m *world.Map) {
	if w.digEvery <= 0 || w.ticks%w.digEvery != 0 {
		return
	}

	x := int(math.Floor(w.pos.X()))
	for y := 0; y < m.Height(); y++ {
		if !m.Get(x, y).CanPassThrough() {
			w.pos[1] = float64(y)
			m.PlaceMaterial(x, y, block.Air)
			return
		}
	}
}

// screen returns where the walker's feet are drawn on a screen of the given size.
func (w *walker) screen(width, height float64) mgl64.Vec2 {
	center := mgl64.Vec2{width / 2, height / 2}
	return coords.WorldToScreen(int(math.Floor(w.pos.X())), int(w.pos.Y()), w.pos, center)
}
