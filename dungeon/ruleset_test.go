package dungeon

import (
	"testing"

	"github.com/lawnchairsociety/wfc/wfc"
)

func TestRuleset_Bidirectional(t *testing.T) {
	violations := wfc.Validate[Tile, Direction](Ruleset{}, 1)
	if len(violations) != 0 {
		t.Fatalf("expected no bidirectionality violations, got %+v", violations)
	}
}

func TestRuleset_CorridorConnectsToEverything(t *testing.T) {
	r := Ruleset{}
	for _, k := range allKinds {
		if !r.Permits(Tile{Kind: Corridor}, Tile{Kind: k}, North) {
			t.Errorf("expected Corridor to permit %s", k)
		}
	}
}

func TestRuleset_DeadEndsDontChain(t *testing.T) {
	r := Ruleset{}
	if r.Permits(Tile{Kind: DeadEnd}, Tile{Kind: DeadEnd}, North) {
		t.Error("expected DeadEnd to forbid DeadEnd")
	}
}

func TestRuleset_StairsDontConnectDirectly(t *testing.T) {
	r := Ruleset{}
	if r.Permits(Tile{Kind: StairsUp}, Tile{Kind: StairsDown}, North) {
		t.Error("expected StairsUp to forbid StairsDown")
	}
}

func TestRuleset_NeighbourBounds(t *testing.T) {
	r := Ruleset{}
	if _, _, _, ok := r.Neighbour(North, 0, 0, 0, 5, 5, 1); ok {
		t.Error("expected North from row 0 to be out of bounds")
	}
	row, col, layer, ok := r.Neighbour(East, 1, 1, 0, 5, 5, 1)
	if !ok || row != 1 || col != 2 || layer != 0 {
		t.Errorf("unexpected neighbour: row=%d col=%d layer=%d ok=%v", row, col, layer, ok)
	}
}

func TestRuleset_OppositeInvolutive(t *testing.T) {
	r := Ruleset{}
	for _, d := range r.Directions() {
		if r.Opposite(r.Opposite(d)) != d {
			t.Errorf("Opposite not involutive for %v", d)
		}
	}
}
