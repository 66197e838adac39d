package dungeon

import "testing"

func TestGenerator_ProducesFullyDecidedFloor(t *testing.T) {
	cfg := &FloorConfig{
		FloorNumber:   1,
		TowerSeed:     7,
		Width:         8,
		Length:        8,
		TreasureCount: 1,
		HasStairsUp:   true,
		HasStairsDown: false,
	}
	floor, err := NewGenerator(cfg).Generate()
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(floor.Grid) != cfg.Length {
		t.Fatalf("expected %d rows, got %d", cfg.Length, len(floor.Grid))
	}
	for _, row := range floor.Grid {
		if len(row) != cfg.Width {
			t.Fatalf("expected %d cols, got %d", cfg.Width, len(row))
		}
	}
	if floor.StairsUp == nil {
		t.Error("expected stairs up to be placed")
	}
	if floor.StairsDown != nil {
		t.Error("expected no stairs down when HasStairsDown is false")
	}
	if len(floor.Treasure) < cfg.TreasureCount {
		t.Errorf("expected at least %d treasure rooms, got %d", cfg.TreasureCount, len(floor.Treasure))
	}
}

func TestGenerator_BossFloorPlacesBoss(t *testing.T) {
	cfg := DefaultFloorConfig(10, 3)
	floor, err := NewGenerator(cfg).Generate()
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if floor.Boss == nil {
		t.Error("expected boss room on a boss floor")
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	cfg := DefaultFloorConfig(2, 99)
	a, err := NewGenerator(cfg).Generate()
	if err != nil {
		t.Fatalf("first generate failed: %v", err)
	}
	b, err := NewGenerator(cfg).Generate()
	if err != nil {
		t.Fatalf("second generate failed: %v", err)
	}
	for row := range a.Grid {
		for col := range a.Grid[row] {
			if a.Grid[row][col] != b.Grid[row][col] {
				t.Fatalf("expected identical grids for same config, differ at (%d,%d)", row, col)
			}
		}
	}
}

func TestDefaultFloorConfig_CapsTreasureAtThree(t *testing.T) {
	cfg := DefaultFloorConfig(50, 1)
	if cfg.TreasureCount > 3 {
		t.Errorf("expected treasure count capped at 3, got %d", cfg.TreasureCount)
	}
}

func TestDefaultFloorConfig_BossEveryTenthFloor(t *testing.T) {
	if !DefaultFloorConfig(10, 1).IsBossFloor {
		t.Error("expected floor 10 to be a boss floor")
	}
	if DefaultFloorConfig(9, 1).IsBossFloor {
		t.Error("expected floor 9 to not be a boss floor")
	}
}
