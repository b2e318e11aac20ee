package world

import (
	"slices"
	"testing"

	"github.com/OCharnyshevich/sidescroll/internal/engine/world/block"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/coords"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/gen"
)

func checkWindow(t *testing.T, m *Map, target int) {
	t.Helper()
	if got, want := m.FirstChunk(), target-4; got != want {
		t.Fatalf("FirstChunk() = %d, want %d", got, want)
	}
	if m.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", m.Len())
	}
	for i, idx := range m.ChunkIndices() {
		if idx != m.FirstChunk()+i {
			t.Fatalf("window has a gap: slot %d holds chunk %d", i, idx)
		}
	}
}

func checkSeams(t *testing.T, m *Map) {
	t.Helper()
	idx := m.ChunkIndices()
	for i := 1; i < len(idx); i++ {
		prev, c := m.Chunk(idx[i-1]), m.Chunk(idx[i])
		if c.Left != prev.Right {
			t.Fatalf("seam %d|%d: left state %+v, previous right state %+v",
				prev.Index, c.Index, c.Left, prev.Right)
		}
	}
}

func TestSlideWindowSequence(t *testing.T) {
	m := newTerrainMap(t, testConfig())

	for _, target := range []int{-1, 0, 1, 2, 5, 4, 3, -2, -7, -6, 0, 12} {
		m.SlideWindow(target)
		checkWindow(t, m, target)
		checkSeams(t, m)
	}
}

func TestSlideWindowNoOpAtTarget(t *testing.T) {
	m := newFlatMap(t, testConfig(), 10)
	m.Drain()

	// The initial window starts at -5, so target -1 leaves it in place.
	m.SlideWindow(-1)
	checkWindow(t, m, -1)
	if inv := m.Drain(); !inv.Empty() {
		t.Errorf("idle slide produced invalidations: %+v", inv)
	}
}

func TestSlideWindowInvalidations(t *testing.T) {
	m := newFlatMap(t, testConfig(), 10)
	m.Drain()

	m.SlideWindow(1)
	inv := m.Drain()
	if !slices.Equal(inv.Evicted, []int{-5, -4}) {
		t.Errorf("Evicted = %v, want [-5 -4]", inv.Evicted)
	}
	if !slices.Equal(inv.Loaded, []int{5, 6}) {
		t.Errorf("Loaded = %v, want [5 6]", inv.Loaded)
	}
	for _, c := range inv.Cells {
		if chunk := coords.WorldToChunk(c.X); chunk == 5 || chunk == 6 {
			t.Errorf("cell %v not folded into its loaded chunk", c)
		}
	}

	m.SlideWindow(0)
	inv = m.Drain()
	if !slices.Equal(inv.Evicted, []int{6}) || !slices.Equal(inv.Loaded, []int{-4}) {
		t.Errorf("slide back: Evicted = %v, Loaded = %v, want [6] and [-4]", inv.Evicted, inv.Loaded)
	}
}

func TestSlideWindowLargeJump(t *testing.T) {
	m := newTerrainMap(t, testConfig())

	m.SlideWindow(1000)
	checkWindow(t, m, 1000)
	checkSeams(t, m)

	m.SlideWindow(-1000)
	checkWindow(t, m, -1000)
	checkSeams(t, m)
}

func TestUpdateChunksFollowsPlayer(t *testing.T) {
	m := newFlatMap(t, testConfig(), 10)

	tests := []struct {
		playerX float64
		target  int
	}{
		{0, 0},
		{31.9, 0},
		{32, 1},
		{-0.1, -1},
		{-32, -1},
		{-32.5, -2},
		{330, 10},
	}
	for _, tt := range tests {
		m.UpdateChunks(tt.playerX)
		if got, want := m.FirstChunk(), tt.target-4; got != want {
			t.Errorf("UpdateChunks(%v): FirstChunk() = %d, want %d", tt.playerX, got, want)
		}
	}
}

func TestLightsRelaxedAfterSliding(t *testing.T) {
	m := newTerrainMap(t, testConfig())

	for _, target := range []int{2, 3, 9, 1, -8} {
		m.SlideWindow(target)
		if err := m.SpreadLights(); err != nil {
			t.Fatalf("SpreadLights after sliding to %d: %v", target, err)
		}
		checkLightRelaxed(t, m)
	}
}

func TestLightRetractedAtTrailingEdge(t *testing.T) {
	m := newFlatMap(t, testConfig(), 30)

	// A thick roof over the whole window with a single shaft in the
	// rightmost chunk. Everything under the roof is lit through the shaft.
	minX, maxX := m.Bounds()
	for x := minX; x < maxX; x++ {
		if x == 150 {
			continue
		}
		for y := 2; y <= 12; y++ {
			m.Set(x, y, block.Block{Material: block.Dirt, Background: block.DirtWall})
		}
	}
	if err := m.InitLights(); err != nil {
		t.Fatalf("InitLights: %v", err)
	}
	if got := m.Get(120, 20).Light; got != 50 {
		t.Fatalf("light under the roof = %d, want 50", got)
	}

	// Evict the chunk holding the shaft.
	m.SlideWindow(-2)
	if err := m.SpreadLights(); err != nil {
		t.Fatalf("SpreadLights: %v", err)
	}
	if got := m.Get(120, 20).Light; got != 0 {
		t.Errorf("light under the roof after eviction = %d, want 0", got)
	}
	checkLightRelaxed(t, m)
}

func TestLoadedChunkWaterIsActive(t *testing.T) {
	cfg := testConfig()
	g := gen.NewTerrainGenerator(cfg.WorldHeight, gen.DemoPockets{}, discardLogger())
	m, err := NewMap(cfg, g, discardLogger())
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	if !m.WaterActive(8, 9) || m.Get(8, 9).Water != 5 {
		t.Fatalf("pocket at (8,9): active %v, water %f", m.WaterActive(8, 9), m.Get(8, 9).Water)
	}

	m.SlideWindow(20)
	if err := m.FlowWater(); err != nil {
		t.Fatalf("FlowWater: %v", err)
	}
	if m.ActiveWater() != 0 {
		t.Errorf("ActiveWater() = %d after the pockets left the window", m.ActiveWater())
	}

	// Coming back regenerates the chunk with its pockets and wakes them.
	m.SlideWindow(0)
	if !m.WaterActive(8, 9) || !m.WaterActive(10, 10) {
		t.Error("regenerated pockets are not active")
	}
}
