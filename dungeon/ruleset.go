package dungeon

import "github.com/lawnchairsociety/wfc/wfc"

// canConnect is the room-type adjacency table, ported from the teacher's
// internal/wfc/rules.go DefaultRules().CanConnect. Unlike the teacher's
// growth-based solver, this package only needs pairwise compatibility —
// the teacher's per-tile min/max connection counts describe a global
// fan-out constraint the CORE solver's bidirectional adjacency model has
// no notion of, so they are not carried here.
var canConnect = buildCanConnect()

func buildCanConnect() map[Kind]map[Kind]bool {
	m := make(map[Kind]map[Kind]bool, len(allKinds))
	for _, k := range allKinds {
		m[k] = make(map[Kind]bool, len(allKinds))
	}
	set := func(a, b Kind, allowed bool) {
		m[a][b] = allowed
		m[b][a] = allowed
	}

	set(Corridor, Corridor, true)
	set(Corridor, Room, true)
	set(Corridor, DeadEnd, true)
	set(Corridor, StairsUp, true)
	set(Corridor, StairsDown, true)
	set(Corridor, Treasure, true)
	set(Corridor, Boss, true)

	set(Room, Room, true)
	set(Room, DeadEnd, true)
	set(Room, StairsUp, true)
	set(Room, StairsDown, true)
	set(Room, Treasure, true)
	set(Room, Boss, true)

	set(DeadEnd, DeadEnd, false)
	set(StairsUp, StairsUp, false)
	set(StairsUp, StairsDown, false)
	set(StairsUp, DeadEnd, false)
	set(StairsUp, Treasure, false)
	set(StairsUp, Boss, false)
	set(StairsDown, StairsDown, false)
	set(StairsDown, DeadEnd, false)
	set(StairsDown, Treasure, false)
	set(StairsDown, Boss, false)
	set(Treasure, Treasure, false)
	set(Treasure, DeadEnd, false)
	set(Treasure, Boss, false)
	set(Boss, Boss, false)
	set(Boss, DeadEnd, false)

	return m
}

// weight is the relative sampling frequency of each kind: corridors and
// rooms should dominate a floor, specials should be rare, echoing the
// teacher's DefaultFloorConfig (1-3 treasure rooms, one boss per ten
// floors, exactly one of each stairs) without hard-coding a count the
// adjacency-only CORE can't enforce directly; Generator.placeSpecials
// (generator.go) tops each required special up to its count after
// generation. Surplus specials the solver placed stay in the grid.
var weight = map[Kind]int{
	Corridor:   40,
	Room:       30,
	DeadEnd:    15,
	Treasure:   3,
	Boss:       2,
	StairsUp:   1,
	StairsDown: 1,
}

// Ruleset implements wfc.Ruleset[Tile, Direction] for a single-layer
// tower floor.
type Ruleset struct{}

var _ wfc.Ruleset[Tile, Direction] = Ruleset{}

var alphabet = func() []Tile {
	out := make([]Tile, len(allKinds))
	for i, k := range allKinds {
		out[i] = Tile{Kind: k}
	}
	return out
}()

func (Ruleset) Directions() []Direction { return []Direction{North, East, South, West} }

func (Ruleset) Opposite(d Direction) Direction { return d.Opposite() }

func (Ruleset) Neighbour(d Direction, row, col, layer, width, length, height int) (int, int, int, bool) {
	switch d {
	case North:
		row--
	case South:
		row++
	case East:
		col++
	case West:
		col--
	}
	if row < 0 || row >= length || col < 0 || col >= width {
		return 0, 0, 0, false
	}
	return row, col, layer, true
}

// Possibles ignores layer: a floor is always a single layer (height 1).
func (Ruleset) Possibles(int) []Tile {
	out := make([]Tile, len(alphabet))
	copy(out, alphabet)
	return out
}

// Permits is direction-independent: room-type compatibility doesn't
// depend on which way the neighbour sits, matching the teacher's
// CanTypesConnect.
func (Ruleset) Permits(a, b Tile, _ Direction) bool {
	return canConnect[a.Kind][b.Kind]
}

func (Ruleset) Weight(t Tile, _ int) int { return weight[t.Kind] }
