package gen

import "testing"

func TestHashDeterministic(t *testing.T) {
	for x := -100; x <= 100; x++ {
		if Hash(TerrainSeed, x) != Hash(TerrainSeed, x) {
			t.Fatalf("Hash(%d) not deterministic", x)
		}
	}
}

func TestHashSeedMatters(t *testing.T) {
	different := false
	for x := 0; x < 100; x++ {
		if Hash(1, x) != Hash(2, x) {
			different = true
			break
		}
	}
	if !different {
		t.Error("different seeds should produce different hashes")
	}
}

func TestUnitRandomRange(t *testing.T) {
	for _, h := range []uint32{0, 1, 1 << 31, 1<<32 - 1} {
		r := unitRandom(h)
		if r < -1 || r > 1 {
			t.Errorf("unitRandom(%d) = %f, out of [-1,1]", h, r)
		}
	}
	for x := -1000; x < 1000; x++ {
		r := unitRandom(Hash(TerrainSeed, x))
		if r < -1 || r > 1 {
			t.Fatalf("unitRandom(Hash(%d)) = %f", x, r)
		}
	}
}
