package wfc

// Ruleset is the contract a caller implements to describe its tile and
// direction alphabets. T is the tile alphabet, D the direction alphabet;
// both must be comparable so a tile or direction can be used as a map key
// and compared for equality when pruning possibility sets.
//
// The solver never calls a tile's adjacency rule as a per-tile closure; it
// always goes through Permits, a direct three-argument function, per the
// design note in spec §9 ("Closure per rule").
type Ruleset[T comparable, D comparable] interface {
	// Directions returns every direction in D, in a stable order.
	Directions() []D

	// Opposite returns the direction that undoes d: walking d then
	// Opposite(d) returns to the origin cell.
	Opposite(d D) D

	// Neighbour returns the coordinate reached from (row, col, layer) by
	// walking one step in direction d, within a board of the given
	// dimensions. ok is false if the step would leave the board.
	Neighbour(d D, row, col, layer, width, length, height int) (r, c, l int, ok bool)

	// Possibles returns the tile alphabet admitted at the given layer.
	// The union over all layers in [0, height) is the board's full
	// alphabet.
	Possibles(layer int) []T

	// Permits is permits(a, b, d): true if a cell containing a allows b
	// in the neighbour reached by direction d. The caller is responsible
	// for the bidirectionality invariant (see Validate); the solver does
	// not enforce it.
	Permits(a, b T, d D) bool

	// Weight returns the relative sampling weight of t at the given
	// layer. A return of 0 means "use uniform weight within this cell's
	// remaining possibilities" — see pickTile in select.go.
	Weight(t T, layer int) int
}
