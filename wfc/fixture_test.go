package wfc

import "math/rand"

func newSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// gridDir is a direction vocabulary big enough for 2D and 3D test
// boards: North/South/East/West plus Up/Down across layers.
type gridDir int

const (
	dirNorth gridDir = iota
	dirSouth
	dirEast
	dirWest
	dirUp
	dirDown
)

func gridDirections() []gridDir {
	return []gridDir{dirNorth, dirSouth, dirEast, dirWest, dirUp, dirDown}
}

func gridOpposite(d gridDir) gridDir {
	switch d {
	case dirNorth:
		return dirSouth
	case dirSouth:
		return dirNorth
	case dirEast:
		return dirWest
	case dirWest:
		return dirEast
	case dirUp:
		return dirDown
	default:
		return dirUp
	}
}

func gridNeighbour(d gridDir, row, col, layer, width, length, height int) (int, int, int, bool) {
	switch d {
	case dirNorth:
		row--
	case dirSouth:
		row++
	case dirEast:
		col++
	case dirWest:
		col--
	case dirUp:
		layer++
	case dirDown:
		layer--
	}
	if row < 0 || row >= length || col < 0 || col >= width || layer < 0 || layer >= height {
		return 0, 0, 0, false
	}
	return row, col, layer, true
}

// gridRuleset is a fully configurable Ruleset[string, gridDir] for tests:
// each scenario supplies its own alphabet-per-layer and permit/weight
// functions rather than this package growing a bespoke type per test.
type gridRuleset struct {
	possibles func(layer int) []string
	permit    func(a, b string, d gridDir) bool
	weight    func(t string, layer int) int
}

func (g *gridRuleset) Directions() []gridDir { return gridDirections() }
func (g *gridRuleset) Opposite(d gridDir) gridDir { return gridOpposite(d) }
func (g *gridRuleset) Neighbour(d gridDir, row, col, layer, width, length, height int) (int, int, int, bool) {
	return gridNeighbour(d, row, col, layer, width, length, height)
}
func (g *gridRuleset) Possibles(layer int) []string { return g.possibles(layer) }
func (g *gridRuleset) Permits(a, b string, d gridDir) bool { return g.permit(a, b, d) }
func (g *gridRuleset) Weight(t string, layer int) int {
	if g.weight == nil {
		return 0
	}
	return g.weight(t, layer)
}

// checkerRuleset is spec.md S1/S2's two-tile alphabet: each tile forbids
// itself in every direction and permits the other.
func checkerRuleset() *gridRuleset {
	alphabet := []string{"Black", "White"}
	return &gridRuleset{
		possibles: func(int) []string { return alphabet },
		permit:    func(a, b string, d gridDir) bool { return a != b },
	}
}

// threeTileRuleset is S3: A permits only B, B permits only A, C permits
// nothing.
func threeTileRuleset() *gridRuleset {
	alphabet := []string{"A", "B", "C"}
	return &gridRuleset{
		possibles: func(int) []string { return alphabet },
		permit: func(a, b string, d gridDir) bool {
			switch a {
			case "A":
				return b == "B"
			case "B":
				return b == "A"
			default: // "C"
				return false
			}
		},
	}
}

// impossibleRuleset is S4: both tiles permit nothing, in any direction.
func impossibleRuleset() *gridRuleset {
	alphabet := []string{"X", "Y"}
	return &gridRuleset{
		possibles: func(int) []string { return alphabet },
		permit:    func(a, b string, d gridDir) bool { return false },
	}
}

// layeredRuleset is S5: layer 0 is {ground, water}, layer 1 is {air}, and
// nothing constrains anything.
func layeredRuleset() *gridRuleset {
	return &gridRuleset{
		possibles: func(layer int) []string {
			if layer == 0 {
				return []string{"ground", "water"}
			}
			return []string{"air"}
		},
		permit: func(a, b string, d gridDir) bool { return true },
	}
}
