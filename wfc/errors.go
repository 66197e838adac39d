package wfc

import "errors"

// ErrImpossibleBoard is returned by Generate, Generate1 and GenerateN when
// the decision stack has been exhausted and no branch remains to try: the
// ruleset admits no solution for this board's dimensions.
var ErrImpossibleBoard = errors.New("wfc: no solution exists for this board")

// ErrOutOfBoard is returned by Board.Get and Board.Set for an out-of-range
// coordinate.
var ErrOutOfBoard = errors.New("wfc: coordinate out of board bounds")

// BadPlacementKind distinguishes the ways Board.Set can refuse a placement.
type BadPlacementKind int

const (
	// TileOccupied: the target cell is already Decided with a different tile.
	TileOccupied BadPlacementKind = iota
	// TileAlreadyPlaced: the target cell is already Decided with this exact tile.
	TileAlreadyPlaced
	// ImpossibleTile: a single-tile placement names a tile not in the cell's
	// current possibility set.
	ImpossibleTile
	// NotAllPossible: a possibility-set placement is not a subset of the
	// cell's current possibility set.
	NotAllPossible
)

func (k BadPlacementKind) String() string {
	switch k {
	case TileOccupied:
		return "TileOccupied"
	case TileAlreadyPlaced:
		return "TileAlreadyPlaced"
	case ImpossibleTile:
		return "ImpossibleTile"
	case NotAllPossible:
		return "NotAllPossible"
	default:
		return "unknown"
	}
}

// BadPlacementError is returned by Board.Set when the requested placement is
// not a legal reduction of the cell's current state. The board is left
// unmodified.
type BadPlacementError struct {
	Kind BadPlacementKind
}

func (e *BadPlacementError) Error() string {
	return "wfc: bad placement: " + e.Kind.String()
}

// IsBadPlacement reports whether err is a BadPlacementError of the given
// kind.
func IsBadPlacement(err error, kind BadPlacementKind) bool {
	var bp *BadPlacementError
	if errors.As(err, &bp) {
		return bp.Kind == kind
	}
	return false
}
