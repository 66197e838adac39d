// Package terrain is a multi-layer ground/air alphabet grounded on the
// original Rust predecessor's TileKind rule table
// (_examples/original_source/src/lib.rs). Layer 0 carries the full
// ground-level alphabet, including a House tile whose adjacency rule
// depends on which way it faces; layer 1 is a single "air" tile that
// permits everything, satisfying spec.md's S5 scenario shape (ground
// layer has no vertical constraints, the layer above is uniform and
// permits anything below it).
package terrain

import (
	"github.com/lawnchairsociety/wfc/display"
	"github.com/lawnchairsociety/wfc/wfc"
)

// Kind is the ground-level tile vocabulary. House is the only kind whose
// rule depends on orientation; Air only ever appears on layer 1.
type Kind int

const (
	Water Kind = iota
	Ground
	Tree
	House
	Road
	Hut
	Mountain
	Sand
	Air
)

func (k Kind) String() string {
	switch k {
	case Water:
		return "water"
	case Ground:
		return "ground"
	case Tree:
		return "tree"
	case House:
		return "house"
	case Road:
		return "road"
	case Hut:
		return "hut"
	case Mountain:
		return "mountain"
	case Sand:
		return "sand"
	case Air:
		return "air"
	default:
		return "Kind(?)"
	}
}

// Direction is the four compass directions on a layer, plus Up/Down to
// cross between layers.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Direction(?)"
	}
}

func opposite(d Direction) Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	default: // Down
		return Up
	}
}

func isOpposite(a, b Direction) bool { return opposite(a) == b }

// Tile is a ground-level tile kind plus the facing House needs; Facing is
// the zero value (North) and ignored for every Kind other than House. Go
// has no enum-with-payload, so a comparable struct is the natural
// analogue of the original's `TileKind::House(Direction)` variant.
type Tile struct {
	Kind   Kind
	Facing Direction
}

// Ruleset implements wfc.Ruleset[Tile, Direction].
type Ruleset struct{}

var groundAlphabet = []Tile{
	{Kind: Water},
	{Kind: Ground},
	{Kind: Tree},
	{Kind: House, Facing: North},
	{Kind: House, Facing: East},
	{Kind: House, Facing: South},
	{Kind: House, Facing: West},
	{Kind: Road},
	{Kind: Hut},
	{Kind: Mountain},
	{Kind: Sand},
}

var airAlphabet = []Tile{{Kind: Air}}

func (Ruleset) Directions() []Direction {
	return []Direction{North, East, South, West, Up, Down}
}

func (Ruleset) Opposite(d Direction) Direction { return opposite(d) }

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
	case Up:
		layer++
	case Down:
		layer--
	}
	if row < 0 || row >= length || col < 0 || col >= width || layer < 0 || layer >= height {
		return 0, 0, 0, false
	}
	return row, col, layer, true
}

// Possibles returns the ground alphabet on layer 0 and the single Air
// tile on every layer above it.
func (Ruleset) Possibles(layer int) []Tile {
	var alphabet []Tile
	if layer == 0 {
		alphabet = groundAlphabet
	} else {
		alphabet = airAlphabet
	}
	out := make([]Tile, len(alphabet))
	copy(out, alphabet)
	return out
}

// Permits is permits(a, b, d): whether a cell holding a allows b in the
// neighbour reached by direction d. Vertical directions (Up/Down) carry
// no constraint, matching spec.md S5's "ground/water have no vertical
// constraints; air permits everything". Horizontal rules are ported
// directly from TileKind::get_rules in the original, where `direction`
// there is the direction from self (a) to the neighbour (b), exactly
// this function's d.
func (Ruleset) Permits(a, b Tile, d Direction) bool {
	if d == Up || d == Down {
		return true
	}
	switch a.Kind {
	case Water:
		return b.Kind == Water || b.Kind == Sand
	case Ground:
		if b.Kind == Water {
			return false
		}
		if b.Kind == House {
			return isOpposite(d, b.Facing)
		}
		return true
	case Tree:
		switch b.Kind {
		case Ground, Tree, Hut, Mountain:
			return true
		default:
			return false
		}
	case House:
		switch b.Kind {
		case Ground:
			return a.Facing != d
		case House:
			return a.Facing != d && !isOpposite(d, b.Facing)
		case Road:
			return true
		case Mountain:
			return isOpposite(a.Facing, d)
		default:
			return false
		}
	case Road:
		switch b.Kind {
		case Ground, House, Road, Sand:
			return true
		default:
			return false
		}
	case Hut:
		return b.Kind == Tree || b.Kind == Mountain
	case Mountain:
		switch b.Kind {
		case Ground, Tree, Hut, Mountain:
			return true
		case House:
			return b.Facing == d
		default:
			return false
		}
	case Sand:
		switch b.Kind {
		case Water, Ground, Tree, Road, Sand:
			return true
		default:
			return false
		}
	case Air:
		return true
	default:
		return false
	}
}

// Weight reports 0 for every tile: the original carries no sampling
// bias, so selection falls back to uniform sampling within whatever
// remains possible.
func (Ruleset) Weight(Tile, int) int { return 0 }

// New builds a two-layer board (ground + air) over this alphabet.
func New(width, length int, seed int64) *wfc.Board[Tile, Direction] {
	return wfc.New[Tile, Direction](Ruleset{}, width, length, 2, seed)
}

// Symbol renders a cell as a single character for display.RenderLayer.
func Symbol(cell wfc.Cell[Tile]) string {
	if !cell.Decided() {
		return "?"
	}
	return kindSymbol(cell.Tile().Kind)
}

func kindSymbol(k Kind) string {
	switch k {
	case Water:
		return "~"
	case Ground:
		return "."
	case Tree:
		return "T"
	case House:
		return "H"
	case Road:
		return "R"
	case Hut:
		return "h"
	case Mountain:
		return "^"
	case Sand:
		return "s"
	case Air:
		return " "
	default:
		return "?"
	}
}

// Legend describes every symbol Symbol renders for a decided cell, on
// both the ground layer and the air layer.
func Legend() []display.LegendEntry {
	return []display.LegendEntry{
		{Symbol: "~", Description: "water"},
		{Symbol: ".", Description: "ground"},
		{Symbol: "T", Description: "tree"},
		{Symbol: "H", Description: "house"},
		{Symbol: "R", Description: "road"},
		{Symbol: "h", Description: "hut"},
		{Symbol: "^", Description: "mountain"},
		{Symbol: "s", Description: "sand"},
		{Symbol: " ", Description: "air"},
	}
}
