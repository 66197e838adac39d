// Package stream is a small websocket server that steps a wfc.Board and
// pushes JSON snapshots of the decided grid to connected viewers — the
// outbound "iteration over the decided grid" contract spec.md names,
// made concrete over the wire. 3D rendering of the feed is explicitly
// out of scope (spec.md §1); this package only produces the feed.
package stream

import "github.com/lawnchairsociety/wfc/wfc"

// CellView is one cell's wire representation.
type CellView struct {
	Decided bool   `json:"decided"`
	Tile    string `json:"tile,omitempty"`
	Options int    `json:"options,omitempty"`
}

// Snapshot is one board state pushed to viewers.
type Snapshot struct {
	Width  int           `json:"width"`
	Length int           `json:"length"`
	Height int           `json:"height"`
	Status string        `json:"status"`
	Cells  [][][]CellView `json:"cells"` // [layer][row][col]
}

// TileString renders a decided tile as the string the wire format
// carries; the caller supplies this since only it knows how to print T.
type TileString[T comparable] func(t T) string

// BuildSnapshot walks every cell of board and renders it into a
// Snapshot, using tileString for decided tiles.
func BuildSnapshot[T comparable, D comparable](board *wfc.Board[T, D], tileString TileString[T]) Snapshot {
	snap := Snapshot{
		Width:  board.Width(),
		Length: board.Length(),
		Height: board.Height(),
		Status: board.GetStatus().String(),
		Cells:  make([][][]CellView, board.Height()),
	}
	for layer := 0; layer < board.Height(); layer++ {
		snap.Cells[layer] = make([][]CellView, board.Length())
		for row := 0; row < board.Length(); row++ {
			snap.Cells[layer][row] = make([]CellView, board.Width())
			for col := 0; col < board.Width(); col++ {
				cell, _ := board.Get(row, col, layer) // in-bounds by construction
				if cell.Decided() {
					snap.Cells[layer][row][col] = CellView{Decided: true, Tile: tileString(cell.Tile())}
				} else {
					snap.Cells[layer][row][col] = CellView{Options: cell.Len()}
				}
			}
		}
	}
	return snap
}
