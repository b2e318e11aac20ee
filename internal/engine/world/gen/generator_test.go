package gen

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/OCharnyshevich/sidescroll/internal/engine/world/block"
	"github.com/OCharnyshevich/sidescroll/internal/engine/world/coords"
)

const testHeight = 256

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTerrain() *TerrainGenerator {
	return NewTerrainGenerator(testHeight, nil, discardLogger())
}

func TestTerrainGeneratorDeterministic(t *testing.T) {
	g1 := newTestTerrain()
	g2 := newTestTerrain()

	c1, s1 := g1.Generate(State{Height: 20, Slope: 0.2}, true, 64)
	c2, s2 := g2.Generate(State{Height: 20, Slope: 0.2}, true, 64)

	if s1 != s2 {
		t.Fatalf("end state differs: %+v vs %+v", s1, s2)
	}
	for col := range c1.Columns {
		for y := range c1.Columns[col] {
			if c1.Columns[col][y] != c2.Columns[col][y] {
				t.Fatalf("block (%d,%d) differs", col, y)
			}
		}
	}
}

func TestTerrainGeneratorColumnLayout(t *testing.T) {
	g := newTestTerrain()
	c, _ := g.Generate(State{Height: 20, Slope: 0.2}, true, 0)

	if c.Index != 0 {
		t.Fatalf("chunk index = %d, want 0", c.Index)
	}
	for col, column := range c.Columns {
		if len(column) != testHeight {
			t.Fatalf("column %d has %d rows, want %d", col, len(column), testHeight)
		}
		grass := -1
		for y, b := range column {
			if b.Material == block.Grass {
				if grass != -1 {
					t.Fatalf("column %d has two grass cells (%d and %d)", col, grass, y)
				}
				grass = y
			}
		}
		if grass == -1 {
			t.Fatalf("column %d has no grass", col)
		}
		for y := 0; y < grass; y++ {
			m := column[y].Material
			if m == block.Tree && y == grass-1 {
				continue
			}
			if m != block.Air {
				t.Errorf("column %d row %d above grass is %s, want air", col, y, m)
			}
		}
		for y := grass + 1; y < len(column); y++ {
			if column[y].Material != block.Dirt {
				t.Errorf("column %d row %d below grass is %s, want dirt", col, y, column[y].Material)
			}
		}
	}
}

func TestTerrainGeneratorSeamContinuity(t *testing.T) {
	g := newTestTerrain()

	s := State{Height: 20, Slope: 0.2}
	var prev *Chunk
	for i := -6; i < 12; i++ {
		var c *Chunk
		c, s = g.Generate(s, true, coords.ChunkOrigin(i))
		if prev != nil {
			if c.Left != prev.Right {
				t.Fatalf("chunk %d left config %+v != chunk %d right config %+v", i, c.Left, i-1, prev.Right)
			}
			a := SurfaceRow(prev.Column(coords.ChunkWidth - 1))
			b := SurfaceRow(c.Column(0))
			if d := a - b; d > 1 || d < -1 {
				t.Errorf("seam between chunk %d and %d jumps %d rows", i-1, i, d)
			}
		}
		for col := 1; col < coords.ChunkWidth; col++ {
			a := SurfaceRow(c.Column(col - 1))
			b := SurfaceRow(c.Column(col))
			if d := a - b; d > 1 || d < -1 {
				t.Errorf("chunk %d columns %d/%d jump %d rows", i, col-1, col, d)
			}
		}
		prev = c
	}
}

func TestTerrainGeneratorRightToLeft(t *testing.T) {
	g := newTestTerrain()

	right, _ := g.Generate(State{Height: 33, Slope: 0}, true, 0)
	left, end := g.Generate(right.Left, false, -coords.ChunkWidth)

	if left.Index != -1 {
		t.Fatalf("chunk index = %d, want -1", left.Index)
	}
	if left.Right != right.Left {
		t.Errorf("right config %+v, want neighbor's left config %+v", left.Right, right.Left)
	}
	if left.Left != end {
		t.Errorf("left config %+v, want returned state %+v", left.Left, end)
	}

	a := SurfaceRow(left.Column(coords.ChunkWidth - 1))
	b := SurfaceRow(right.Column(0))
	if d := a - b; d > 1 || d < -1 {
		t.Errorf("seam jumps %d rows", d)
	}
}

func TestTerrainGeneratorSlopeBounded(t *testing.T) {
	s := State{Height: 20, Slope: 0.2}
	for x := -2000; x < 2000; x++ {
		biome := BiomeForChunk(coords.WorldToChunk(x), discardLogger())
		s, _ = walk(s, biome, x)
		limit := biome.MaxSlope() + biome.Frequency()/3
		if math.Abs(s.Slope) > limit+1e-9 {
			t.Fatalf("x=%d: slope %f exceeds %f", x, s.Slope, limit)
		}
	}
}

func TestTerrainGeneratorStaysNearBand(t *testing.T) {
	g := newTestTerrain()
	s := State{Height: 20, Slope: 0.2}
	for i := 0; i < 50; i++ {
		_, s = g.Generate(s, true, coords.ChunkOrigin(i))
	}
	if s.Height < 0 || s.Height > 80 {
		t.Errorf("height drifted to %f after 50 chunks", s.Height)
	}
}

func TestClampRow(t *testing.T) {
	tests := []struct {
		h    float64
		want int
	}{
		{-3.5, 0},
		{0.99, 0},
		{20.4, 20},
		{1e9, testHeight - 1},
	}
	for _, tt := range tests {
		if got := clampRow(tt.h, testHeight); got != tt.want {
			t.Errorf("clampRow(%f) = %d, want %d", tt.h, got, tt.want)
		}
	}
}

func TestFlatGenerator(t *testing.T) {
	g := NewFlatGenerator(64, 4)
	in := State{Height: 7, Slope: 0.3}
	c, out := g.Generate(in, false, -96)

	if out != in || c.Left != in || c.Right != in {
		t.Errorf("flat generator altered walk state: %+v", out)
	}
	if c.Index != -3 {
		t.Errorf("chunk index = %d, want -3", c.Index)
	}

	tests := []struct {
		y    int
		want block.Material
	}{
		{0, block.Air},
		{3, block.Air},
		{4, block.Grass},
		{5, block.Dirt},
		{63, block.Dirt},
	}
	for col := range c.Columns {
		for _, tt := range tests {
			if got := c.Columns[col][tt.y].Material; got != tt.want {
				t.Errorf("column %d y=%d: got %s, want %s", col, tt.y, got, tt.want)
			}
		}
	}
}
