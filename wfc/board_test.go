package wfc

import (
	"errors"
	"fmt"
	"testing"
)

// S1: a 10x10 single-layer checkerboard always has a solution, and every
// decided 4-neighbour pair differs.
func TestGenerateCheckerboard(t *testing.T) {
	b := New[string, gridDir](checkerRuleset(), 10, 10, 1, 1)
	if err := b.Generate(); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if b.GetStatus() != Complete {
		t.Fatalf("GetStatus() = %v, want Complete", b.GetStatus())
	}
	assertCheckerboardValid(t, b)
}

func assertCheckerboardValid(t *testing.T, b *Board[string, gridDir]) {
	t.Helper()
	for row := 0; row < b.Length(); row++ {
		for col := 0; col < b.Width(); col++ {
			cell, err := b.Get(row, col, 0)
			if err != nil {
				t.Fatalf("Get(%d,%d,0) failed: %v", row, col, err)
			}
			if !cell.Decided() {
				t.Fatalf("cell (%d,%d) is not Decided after Complete", row, col)
			}
			if col+1 < b.Width() {
				east, _ := b.Get(row, col+1, 0)
				if east.Tile() == cell.Tile() {
					t.Errorf("(%d,%d)=%s and its east neighbour are both %s", row, col, cell.Tile(), cell.Tile())
				}
			}
			if row+1 < b.Length() {
				south, _ := b.Get(row+1, col, 0)
				if south.Tile() == cell.Tile() {
					t.Errorf("(%d,%d)=%s and its south neighbour are both %s", row, col, cell.Tile(), cell.Tile())
				}
			}
		}
	}
}

// S2: pre-seeding the top-left corner pins the whole checkerboard's parity.
func TestSetTileDecidedPinsCorner(t *testing.T) {
	b := New[string, gridDir](checkerRuleset(), 10, 10, 1, 7)
	if err := b.Set(decidedCell("Black"), 0, 0, 0); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := b.Generate(); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	corner, _ := b.Get(0, 0, 0)
	if corner.Tile() != "Black" {
		t.Fatalf("(0,0,0) = %s, want Black", corner.Tile())
	}
	assertCheckerboardValid(t, b)
}

// S3: A/B/C alphabet where C permits nothing; a valid board never places C.
func TestGenerateNeverPlacesDeadTile(t *testing.T) {
	b := New[string, gridDir](threeTileRuleset(), 3, 3, 1, 99)
	if err := b.Generate(); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell, _ := b.Get(row, col, 0)
			if cell.Tile() == "C" {
				t.Fatalf("cell (%d,%d) decided C, which permits no neighbour", row, col)
			}
		}
	}
}

// S4: a ruleset where both tiles permit nothing has no solution at all.
func TestGenerateImpossibleBoard(t *testing.T) {
	b := New[string, gridDir](impossibleRuleset(), 2, 1, 1, 5)
	err := b.Generate()
	if !errors.Is(err, ErrImpossibleBoard) {
		t.Fatalf("Generate() err = %v, want ErrImpossibleBoard", err)
	}
}

// S5: layer 0 is ground/water, layer 1 is air-only; air should end up
// entirely filling layer 1.
func TestGenerateLayeredAirFill(t *testing.T) {
	b := New[string, gridDir](layeredRuleset(), 5, 5, 2, 3)
	if err := b.Generate(); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			cell, _ := b.Get(row, col, 1)
			if !cell.Decided() || cell.Tile() != "air" {
				t.Errorf("(%d,%d,1) = %+v, want Decided(air)", row, col, cell)
			}
		}
	}
}

// S6 / idempotent clean: clean(); clean() behaves the same as clean().
func TestCleanIsIdempotent(t *testing.T) {
	b := New[string, gridDir](checkerRuleset(), 4, 4, 1, 1)
	if err := b.Generate(); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b.Clean()
	snapshotOnce := cleanSnapshot(b)
	b.Clean()
	snapshotTwice := cleanSnapshot(b)
	if snapshotOnce != snapshotTwice {
		t.Fatalf("clean(); clean() diverged from clean(): %q vs %q", snapshotOnce, snapshotTwice)
	}
}

func cleanSnapshot(b *Board[string, gridDir]) string {
	out := ""
	for layer := 0; layer < b.Height(); layer++ {
		for row := 0; row < b.Length(); row++ {
			for col := 0; col < b.Width(); col++ {
				cell, _ := b.Get(row, col, layer)
				if cell.Decided() {
					out += fmt.Sprintf("D(%v)|", cell.Tile())
				} else {
					out += fmt.Sprintf("U(%v)|", cell.Possible())
				}
			}
		}
	}
	return out
}

// Deterministic under fixed seed: the same ruleset, dimensions, and seed
// always produce the same board.
func TestGenerateIsDeterministicUnderSeed(t *testing.T) {
	a := New[string, gridDir](checkerRuleset(), 8, 8, 1, 42)
	if err := a.Generate(); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b := New[string, gridDir](checkerRuleset(), 8, 8, 1, 42)
	if err := b.Generate(); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if cleanSnapshot(a) != cleanSnapshot(b) {
		t.Fatalf("two boards with the same seed diverged")
	}
}

// S6 continued: a fresh seed after clean is allowed (not required) to
// differ, and both runs must still be internally valid.
func TestCleanThenRegenerateWithFreshSeedStaysValid(t *testing.T) {
	rules := threeTileRuleset()
	b := New[string, gridDir](rules, 6, 6, 1, 1)
	assertRulesHold := func(run string) {
		t.Helper()
		for row := 0; row < 6; row++ {
			for col := 0; col < 6; col++ {
				cell, _ := b.Get(row, col, 0)
				if !cell.Decided() {
					t.Fatalf("%s run: (%d,%d) is not Decided", run, row, col)
				}
				if col+1 < 6 {
					east, _ := b.Get(row, col+1, 0)
					if !rules.Permits(cell.Tile(), east.Tile(), dirEast) || !rules.Permits(east.Tile(), cell.Tile(), dirWest) {
						t.Errorf("%s run: (%d,%d)=%s and its east neighbour %s break the rules", run, row, col, cell.Tile(), east.Tile())
					}
				}
				if row+1 < 6 {
					south, _ := b.Get(row+1, col, 0)
					if !rules.Permits(cell.Tile(), south.Tile(), dirSouth) || !rules.Permits(south.Tile(), cell.Tile(), dirNorth) {
						t.Errorf("%s run: (%d,%d)=%s and its south neighbour %s break the rules", run, row, col, cell.Tile(), south.Tile())
					}
				}
			}
		}
	}

	if err := b.Generate(); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	assertRulesHold("first")
	b.Clean()
	b.rng = newSeededRand(2)
	if err := b.Generate(); err != nil {
		t.Fatalf("second Generate() failed: %v", err)
	}
	if b.GetStatus() != Complete {
		t.Fatalf("GetStatus() = %v, want Complete", b.GetStatus())
	}
	assertRulesHold("second")
}

// Completeness: on Complete, no cell is Undecided.
func TestCompleteLeavesNoUndecidedCell(t *testing.T) {
	b := New[string, gridDir](checkerRuleset(), 5, 5, 1, 11)
	if err := b.Generate(); err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			cell, _ := b.Get(row, col, 0)
			if !cell.Decided() {
				t.Errorf("(%d,%d) still Undecided after Complete", row, col)
			}
		}
	}
}

func TestGetOutOfBoundsReturnsError(t *testing.T) {
	b := New[string, gridDir](checkerRuleset(), 3, 3, 1, 1)
	if _, err := b.Get(-1, 0, 0); !errors.Is(err, ErrOutOfBoard) {
		t.Errorf("Get(-1,0,0) err = %v, want ErrOutOfBoard", err)
	}
	if _, err := b.Get(0, 3, 0); !errors.Is(err, ErrOutOfBoard) {
		t.Errorf("Get(0,3,0) err = %v, want ErrOutOfBoard", err)
	}
	if _, err := b.Get(0, 0, 1); !errors.Is(err, ErrOutOfBoard) {
		t.Errorf("Get(0,0,1) err = %v, want ErrOutOfBoard", err)
	}
}

func TestSetTileAlreadyPlacedAndOccupied(t *testing.T) {
	b := New[string, gridDir](checkerRuleset(), 3, 3, 1, 1)
	if err := b.Set(decidedCell("Black"), 0, 0, 0); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	err := b.Set(decidedCell("Black"), 0, 0, 0)
	if !IsBadPlacement(err, TileAlreadyPlaced) {
		t.Errorf("re-placing the same tile: err = %v, want TileAlreadyPlaced", err)
	}
	err = b.Set(decidedCell("White"), 0, 0, 0)
	if !IsBadPlacement(err, TileOccupied) {
		t.Errorf("placing a different tile on a Decided cell: err = %v, want TileOccupied", err)
	}
}

func TestSetTileImpossibleAndNotAllPossible(t *testing.T) {
	b := New[string, gridDir](threeTileRuleset(), 3, 3, 1, 1)
	err := b.Set(decidedCell("nonexistent"), 1, 1, 0)
	if !IsBadPlacement(err, ImpossibleTile) {
		t.Errorf("placing an out-of-alphabet tile: err = %v, want ImpossibleTile", err)
	}
	err = b.Set(undecidedCell([]string{"A", "B", "C", "D"}), 1, 1, 0)
	if !IsBadPlacement(err, NotAllPossible) {
		t.Errorf("enlarging the possibility set: err = %v, want NotAllPossible", err)
	}
}
