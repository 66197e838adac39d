package dungeon

import (
	"github.com/lawnchairsociety/wfc/display"
	"github.com/lawnchairsociety/wfc/wfc"
)

// Symbol renders a cell as a single character, grounded on the
// teacher's cmd/mapgen/main.go getRoomSymbol switch over room type.
func Symbol(cell wfc.Cell[Tile]) string {
	if !cell.Decided() {
		return "?"
	}
	switch cell.Tile().Kind {
	case Corridor:
		return "."
	case Room:
		return "#"
	case DeadEnd:
		return "x"
	case Treasure:
		return "$"
	case Boss:
		return "B"
	case StairsUp:
		return "^"
	case StairsDown:
		return "v"
	default:
		return "?"
	}
}

// Legend describes every symbol Symbol can render.
func Legend() []display.LegendEntry {
	return []display.LegendEntry{
		{Symbol: ".", Description: "corridor"},
		{Symbol: "#", Description: "room"},
		{Symbol: "x", Description: "dead end"},
		{Symbol: "$", Description: "treasure room"},
		{Symbol: "B", Description: "boss room"},
		{Symbol: "^", Description: "stairs up"},
		{Symbol: "v", Description: "stairs down"},
	}
}
