// Package display is a terminal pretty-printer for a solved wfc.Board.
// It is out of the CORE solver's scope (spec.md §1 names "terminal
// pretty-printing / display formatting" explicitly) and purely
// illustrative, grounded on the teacher's cmd/mapgen/main.go grid
// renderer and legend.
package display

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/wfc/wfc"
)

// Symbol maps a cell to the one or two characters that represent it in
// the rendered grid. An Undecided cell (the renderer's caller will
// usually only call this once a board is Complete, but nothing
// requires it) gets its own placeholder.
type Symbol[T comparable] func(cell wfc.Cell[T]) string

// LegendEntry is one line of a rendered legend: a symbol and what it
// means.
type LegendEntry struct {
	Symbol      string
	Description string
}

// RenderLayer renders a single layer of board as a grid, one cell per
// symbol, bounds-scanned row by row the way the teacher's
// renderGridFloor walks a floor's room grid.
func RenderLayer[T comparable, D comparable](board *wfc.Board[T, D], layer int, symbol Symbol[T]) (string, error) {
	var out strings.Builder
	for row := 0; row < board.Length(); row++ {
		for col := 0; col < board.Width(); col++ {
			cell, err := board.Get(row, col, layer)
			if err != nil {
				return "", err
			}
			out.WriteString(symbol(cell))
		}
		out.WriteByte('\n')
	}
	return out.String(), nil
}

// Render renders every layer of board in order, each preceded by a
// "Layer N" header when the board has more than one layer.
func Render[T comparable, D comparable](board *wfc.Board[T, D], symbol Symbol[T]) (string, error) {
	var out strings.Builder
	for layer := 0; layer < board.Height(); layer++ {
		if board.Height() > 1 {
			fmt.Fprintf(&out, "Layer %d\n", layer)
		}
		grid, err := RenderLayer(board, layer, symbol)
		if err != nil {
			return "", err
		}
		out.WriteString(grid)
		if layer < board.Height()-1 {
			out.WriteByte('\n')
		}
	}
	return out.String(), nil
}

// Legend renders a list of symbol/description pairs as a "Legend:"
// block, the way the teacher's getLegend does for its fixed room
// symbols.
func Legend(entries []LegendEntry) string {
	var out strings.Builder
	out.WriteString("Legend:\n")
	for _, e := range entries {
		fmt.Fprintf(&out, "  [%s] %s\n", e.Symbol, e.Description)
	}
	return out.String()
}
