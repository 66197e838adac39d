package wfc

// Cell is the state of one board position: either Undecided with a set of
// still-possible tiles, or Decided with the single tile that was chosen
// for it.
//
// The possibility set is kept as an ordered slice rather than a Go map.
// This is not a style choice: Go's map iteration order is randomized per
// process, and every random draw the solver makes (entropy ties, weighted
// tile sampling) must be reproducible given a fixed seed. Iterating the
// possibility set in the stable order Ruleset.Possibles first returned it
// in keeps every rand.Rand draw a pure function of the seed.
type Cell[T comparable] struct {
	decided  bool
	tile     T
	possible []T
}

// Decided reports whether the cell has been assigned a tile.
func (c Cell[T]) Decided() bool {
	return c.decided
}

// Tile returns the assigned tile. It is only meaningful when Decided
// returns true.
func (c Cell[T]) Tile() T {
	return c.tile
}

// Possible returns a copy of the cell's possibility set, in the stable
// order it was derived from. It is only meaningful when Decided returns
// false.
func (c Cell[T]) Possible() []T {
	out := make([]T, len(c.possible))
	copy(out, c.possible)
	return out
}

// Len returns the size of the possibility set (0 for a decided cell).
func (c Cell[T]) Len() int {
	if c.decided {
		return 0
	}
	return len(c.possible)
}

// NewDecidedCell builds a Decided cell holding tile. It is the only way
// a caller outside this package can construct the argument Board.Set needs
// to pin a cell to a specific tile (Cell's fields are unexported).
func NewDecidedCell[T comparable](tile T) Cell[T] {
	return decidedCell(tile)
}

// NewUndecidedCell builds an Undecided cell with the given possibility
// set, in the order given. Passing a strict subset of a target cell's
// current possibilities is how a caller narrows it without deciding it
// outright; see Board.Set.
func NewUndecidedCell[T comparable](possible []T) Cell[T] {
	return undecidedCell(possible)
}

func undecidedCell[T comparable](possibles []T) Cell[T] {
	set := make([]T, len(possibles))
	copy(set, possibles)
	return Cell[T]{possible: set}
}

func decidedCell[T comparable](t T) Cell[T] {
	return Cell[T]{decided: true, tile: t}
}

// filterPossible returns the subset of possible for which keep returns
// true, preserving order.
func filterPossible[T comparable](possible []T, keep func(T) bool) []T {
	out := make([]T, 0, len(possible))
	for _, t := range possible {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func containsTile[T comparable](possible []T, t T) bool {
	for _, x := range possible {
		if x == t {
			return true
		}
	}
	return false
}
