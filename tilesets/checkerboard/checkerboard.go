// Package checkerboard is the two-tile, four-direction alphabet used by
// spec.md's S1-S2 scenarios: each tile forbids itself in every direction
// and permits the other, producing a strict checkerboard pattern once
// generation completes.
package checkerboard

import (
	"github.com/lawnchairsociety/wfc/display"
	"github.com/lawnchairsociety/wfc/wfc"
)

// Tile is the alphabet: Black or White.
type Tile string

const (
	Black Tile = "Black"
	White Tile = "White"
)

// Direction is the four-neighbour compass vocabulary on a single layer.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Direction(?)"
	}
}

// Ruleset implements wfc.Ruleset[Tile, Direction]. It is stateless: a
// single zero-value Ruleset is shared by every board.
type Ruleset struct{}

var alphabet = []Tile{Black, White}

func (Ruleset) Directions() []Direction { return []Direction{North, South, East, West} }

func (Ruleset) Opposite(d Direction) Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default: // West
		return East
	}
}

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

// Possibles ignores layer: the alphabet is the same on every layer, and
// the scenarios that use this tileset are always single-layer (height 1).
func (Ruleset) Possibles(int) []Tile {
	out := make([]Tile, len(alphabet))
	copy(out, alphabet)
	return out
}

// Permits forbids a tile from neighbouring itself in any direction.
func (Ruleset) Permits(a, b Tile, _ Direction) bool { return a != b }

// Weight reports 0 for every tile, so selection falls back to uniform
// sampling: a checkerboard has no reason to prefer one colour over the
// other.
func (Ruleset) Weight(Tile, int) int { return 0 }

// New builds a single-layer board over this alphabet. seed drives every
// random draw the solver makes.
func New(width, length int, seed int64) *wfc.Board[Tile, Direction] {
	return wfc.New[Tile, Direction](Ruleset{}, width, length, 1, seed)
}

// Symbol renders a cell as display.Symbol expects: "B" or "W" for a
// decided tile, "?" for anything still undecided.
func Symbol(cell wfc.Cell[Tile]) string {
	if !cell.Decided() {
		return "?"
	}
	if cell.Tile() == Black {
		return "B"
	}
	return "W"
}

// Legend describes every symbol Symbol can render.
func Legend() []display.LegendEntry {
	return []display.LegendEntry{
		{Symbol: "B", Description: "black"},
		{Symbol: "W", Description: "white"},
		{Symbol: "?", Description: "undecided"},
	}
}
