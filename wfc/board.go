package wfc

import "math/rand"

// Board is a generic constraint-propagation solver over a 3-dimensional
// grid of cells, each holding a tile from alphabet T. Layers are solved
// independently of the tile/direction vocabulary through Ruleset, so a
// caller can plug in a 2D checkerboard, a layered dungeon, or anything
// else that fits the Cell/Ruleset contract.
//
// A Board is not safe for concurrent use: it is single-threaded and
// cooperatively driven, one Generate1 step at a time (see doc.go).
type Board[T comparable, D comparable] struct {
	rules  Ruleset[T, D]
	width  int // columns
	length int // rows
	height int // layers

	cells [][][]Cell[T] // [layer][row][col]

	stack    []*branch[T]
	deadEnds map[Coord]struct{}
	cursor   int

	// layerUndecided[l] is the number of cells on layer l that are not
	// yet Decided. zeroCount is the number of Undecided cells, on any
	// layer, whose possibility set has shrunk to empty: a contradiction
	// that forces a DeadEnd regardless of cursor or stack state. Both
	// are maintained incrementally by setDecided/setReduced/
	// setUndecidedFresh so GetStatus never has to rescan the board.
	layerUndecided []int
	zeroCount      int

	rng    *rand.Rand
	logger Logger
}

// New allocates a width x length x height board. Every cell starts
// Undecided with the full possibility set rules.Possibles returns for its
// layer. seed drives every random draw the solver makes; the same seed
// with the same ruleset and dimensions reproduces an identical run.
func New[T comparable, D comparable](rules Ruleset[T, D], width, length, height int, seed int64) *Board[T, D] {
	b := &Board[T, D]{
		rules:  rules,
		width:  width,
		length: length,
		height: height,
		rng:    rand.New(rand.NewSource(seed)),
		logger: noopLogger{},
	}
	b.Clean()
	return b
}

// SetLogger installs a diagnostic sink. Passing nil restores the default
// no-op logger.
func (b *Board[T, D]) SetLogger(logger Logger) {
	if logger == nil {
		logger = noopLogger{}
	}
	b.logger = logger
}

func (b *Board[T, D]) Width() int  { return b.width }
func (b *Board[T, D]) Length() int { return b.length }
func (b *Board[T, D]) Height() int { return b.height }

// Clean resets the board to New's post-condition without reallocating the
// handle itself: every cell goes back to Undecided(possibles(its layer)),
// the decision stack and board-level dead ends are cleared, and the layer
// cursor resets to 0.
func (b *Board[T, D]) Clean() {
	b.cells = make([][][]Cell[T], b.height)
	b.layerUndecided = make([]int, b.height)
	for l := 0; l < b.height; l++ {
		possibles := b.rules.Possibles(l)
		b.cells[l] = make([][]Cell[T], b.length)
		for row := 0; row < b.length; row++ {
			b.cells[l][row] = make([]Cell[T], b.width)
			for col := 0; col < b.width; col++ {
				b.cells[l][row][col] = undecidedCell(possibles)
			}
		}
		b.layerUndecided[l] = b.length * b.width
	}
	b.stack = nil
	b.deadEnds = make(map[Coord]struct{})
	b.cursor = 0
	b.zeroCount = 0
}

func (b *Board[T, D]) inBounds(row, col, layer int) bool {
	return row >= 0 && row < b.length &&
		col >= 0 && col < b.width &&
		layer >= 0 && layer < b.height
}

// cellAt is the internal, unchecked read used by every other file in this
// package: coord is always produced by the selector, the propagator, or
// the neighbour function, never by a caller, so it is always in bounds.
func (b *Board[T, D]) cellAt(coord Coord) Cell[T] {
	return b.cells[coord.Layer][coord.Row][coord.Col]
}

// Tiles returns a deep copy of the entire board, indexed [layer][row][col].
// It is meant for a caller that has already reached Complete and wants to
// walk the whole decided grid without a bounds-checked call per cell; the
// cells returned are still whatever Get would return for that coordinate,
// Decided or not.
func (b *Board[T, D]) Tiles() [][][]Cell[T] {
	out := make([][][]Cell[T], b.height)
	for l := range b.cells {
		out[l] = make([][]Cell[T], b.length)
		for row := range b.cells[l] {
			out[l][row] = make([]Cell[T], b.width)
			copy(out[l][row], b.cells[l][row])
		}
	}
	return out
}

// Get is the bounds-checked public read.
func (b *Board[T, D]) Get(row, col, layer int) (Cell[T], error) {
	if !b.inBounds(row, col, layer) {
		return Cell[T]{}, ErrOutOfBoard
	}
	return b.cellAt(Coord{Row: row, Col: col, Layer: layer}), nil
}

func (b *Board[T, D]) setDecided(coord Coord, t T) {
	old := b.cells[coord.Layer][coord.Row][coord.Col]
	if !old.decided {
		b.layerUndecided[coord.Layer]--
		if len(old.possible) == 0 {
			b.zeroCount--
		}
	}
	b.cells[coord.Layer][coord.Row][coord.Col] = decidedCell(t)
}

func (b *Board[T, D]) setReduced(coord Coord, newSet []T) {
	old := b.cells[coord.Layer][coord.Row][coord.Col]
	if old.decided {
		panic("wfc: setReduced called on a Decided cell")
	}
	oldZero := len(old.possible) == 0
	newZero := len(newSet) == 0
	switch {
	case !oldZero && newZero:
		b.zeroCount++
	case oldZero && !newZero:
		b.zeroCount--
	}
	b.cells[coord.Layer][coord.Row][coord.Col] = Cell[T]{possible: newSet}
}

// setUndecidedFresh resets coord to Undecided(possibles(its layer)), the
// state restoreBranch puts origin and side-effect cells back into before
// recalculation runs.
func (b *Board[T, D]) setUndecidedFresh(coord Coord) {
	old := b.cells[coord.Layer][coord.Row][coord.Col]
	if old.decided {
		b.layerUndecided[coord.Layer]++
	} else if len(old.possible) == 0 {
		b.zeroCount--
	}
	b.cells[coord.Layer][coord.Row][coord.Col] = undecidedCell(b.rules.Possibles(coord.Layer))
}

// layerHasUndecided reports whether any cell on layer l is still
// Undecided, decided or not from zero-length contradictions.
func (b *Board[T, D]) layerHasUndecided(l int) bool {
	return b.layerUndecided[l] > 0
}

// stepKind is the internal, five-way refinement of Status: it
// distinguishes the two ways a board can be Incomplete so Generate1 knows
// which action to dispatch, without forcing that distinction onto the
// public Status a caller observes.
type stepKind int

const (
	stepComplete stepKind = iota
	stepCompleteLayer
	stepBranchContinue
	stepOpenBranch
	stepDeadEnd
)

func (b *Board[T, D]) computeStep() stepKind {
	if b.zeroCount > 0 {
		return stepDeadEnd
	}
	if len(b.stack) > 0 && !b.cellAt(b.stack[len(b.stack)-1].origin).decided {
		return stepBranchContinue
	}
	if !b.layerHasUndecided(b.cursor) {
		for l := b.cursor + 1; l < b.height; l++ {
			if b.layerHasUndecided(l) {
				return stepCompleteLayer
			}
		}
		return stepComplete
	}
	if len(b.candidates(b.cursor)) == 0 {
		return stepDeadEnd
	}
	return stepOpenBranch
}

// GetStatus reports the board's current position in the generation state
// machine, collapsing the two Incomplete rows of the state table into one
// public value: a caller who only wants to know "is there more work"
// doesn't need to know whether the next step will open a new branch or
// continue the current one.
func (b *Board[T, D]) GetStatus() Status {
	switch b.computeStep() {
	case stepComplete:
		return Complete
	case stepCompleteLayer:
		return CompleteLayer
	case stepDeadEnd:
		return DeadEnd
	default:
		return Incomplete
	}
}

// Generate1 executes exactly one state-machine transition and reports
// whether the board is now fully Decided. A caller can interleave other
// work between calls; nothing is held beyond the board and its stack.
func (b *Board[T, D]) Generate1() (bool, error) {
	switch b.computeStep() {
	case stepComplete:
		return true, nil
	case stepCompleteLayer:
		b.cursor++
		return false, nil
	case stepBranchContinue:
		b.advanceBranch()
		return false, nil
	case stepOpenBranch:
		if err := b.openBranch(); err != nil {
			return false, err
		}
		return false, nil
	default: // stepDeadEnd
		if err := b.handleDeadEnd(); err != nil {
			return false, err
		}
		return false, nil
	}
}

// Generate runs Generate1 until the board is complete or a step returns
// an error.
func (b *Board[T, D]) Generate() error {
	for {
		done, err := b.Generate1()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// GenerateN runs up to n steps, stopping early if the board completes.
// It reports whether the board is complete when it returns.
func (b *Board[T, D]) GenerateN(n int) (bool, error) {
	for i := 0; i < n; i++ {
		done, err := b.Generate1()
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
	}
	return b.GetStatus() == Complete, nil
}

// Set lets a caller pre-seed the board. The only legal placements are
// reductions of the target cell's current state; see BadPlacementKind for
// the ways a placement can be refused.
func (b *Board[T, D]) Set(cell Cell[T], row, col, layer int) error {
	if !b.inBounds(row, col, layer) {
		return ErrOutOfBoard
	}
	coord := Coord{Row: row, Col: col, Layer: layer}
	cur := b.cellAt(coord)

	if cur.decided {
		if cell.decided && cell.tile == cur.tile {
			return &BadPlacementError{Kind: TileAlreadyPlaced}
		}
		return &BadPlacementError{Kind: TileOccupied}
	}

	if cell.decided {
		if !containsTile(cur.possible, cell.tile) {
			return &BadPlacementError{Kind: ImpossibleTile}
		}
		return b.pushDecision(coord, cell.tile)
	}

	for _, t := range cell.possible {
		if !containsTile(cur.possible, t) {
			return &BadPlacementError{Kind: NotAllPossible}
		}
	}
	if len(cell.possible) == 1 {
		return b.pushDecision(coord, cell.possible[0])
	}
	return b.pushReduction(coord, cell.possible)
}

// pushReduction implements the Undecided(S_cur) -> Undecided(S_new) branch
// of Set: replace, propagate as a possibility-set reduction, and open
// a new decision branch rooted here so a later dead end can restore it.
func (b *Board[T, D]) pushReduction(coord Coord, newSet []T) error {
	br := newBranch[T](coord)
	reduced := make([]T, len(newSet))
	copy(reduced, newSet)
	b.setReduced(coord, reduced)
	touched := b.propagateFrom(coord)
	br.addSideEffects(touched)
	b.stack = append(b.stack, br)
	return nil
}
