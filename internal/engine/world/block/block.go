package block

// MaxLight is the light level of a sky-exposed source cell.
const MaxLight uint8 = 100

// Material is the solid (or not) content of a cell.
type Material uint8

const (
	Air Material = iota
	Dirt
	Grass
	Tree
)

// Background selects what renders behind a cell.
type Background uint8

const (
	Sky Background = iota
	DirtWall
)

// Block is a single grid cell. Light and water are independent scalar fields.
type Block struct {
	Material   Material
	Background Background
	Light      uint8
	Water      float64
}

// AirBlock is the synthetic block returned for coordinates outside the loaded window.
var AirBlock = Block{Material: Air, Background: Sky}

// LightLoss returns how much light the material absorbs per cell traversed.
func (m Material) LightLoss() uint8 {
	switch m {
	case Grass:
		return 6
	case Dirt:
		return 10
	default: // Air, Tree
		return 1
	}
}

// CanPassThrough reports whether entities (and the renderer's edge detection)
// treat the material as open space.
func (m Material) CanPassThrough() bool {
	return m == Air || m == Tree
}

func (m Material) String() string {
	switch m {
	case Air:
		return "air"
	case Dirt:
		return "dirt"
	case Grass:
		return "grass"
	case Tree:
		return "tree"
	default:
		return "unknown"
	}
}

// LightLoss is a shorthand for b.Material.LightLoss().
func (b Block) LightLoss() uint8 { return b.Material.LightLoss() }

// CanPassThrough is a shorthand for b.Material.CanPassThrough().
func (b Block) CanPassThrough() bool { return b.Material.CanPassThrough() }

// HoldsWater reports whether the cell can contain fluid.
func (b Block) HoldsWater() bool { return b.Material == Air }
