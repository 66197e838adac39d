package cmd

import (
	"fmt"

	"github.com/lawnchairsociety/wfc/display"
	"github.com/lawnchairsociety/wfc/dungeon"
	"github.com/lawnchairsociety/wfc/internal/config"
	"github.com/lawnchairsociety/wfc/tilesets/checkerboard"
	"github.com/lawnchairsociety/wfc/tilesets/terrain"
	"github.com/lawnchairsociety/wfc/wfc"
)

// generated is what runTileset hands back to any subcommand that needs
// the rendered board, its legend, and a tile count for the summary line.
type generated struct {
	rendered string
	legend   string
	tiles    int
	floor    *dungeon.GeneratedFloor // non-nil only for the dungeon tileset
	seed     int64
}

// runTileset builds and generates a board for cfg.Tileset and renders it.
// Each tileset has a distinct (Tile, Direction) pair, so this is a plain
// switch rather than a generic dispatch — the three branches share no
// type parameter a Go function could abstract over without an interface
// boundary heavier than three tileset names warrant.
func runTileset(cfg *config.Config) (*generated, error) {
	seed := cfg.Seed

	switch cfg.Tileset {
	case "checkerboard":
		board := checkerboard.New(cfg.Board.Width, cfg.Board.Length, seed)
		board.SetLogger(logAdapter{})
		if err := board.Generate(); err != nil {
			return nil, fmt.Errorf("generating checkerboard: %w", err)
		}
		rendered, err := display.Render(board, checkerboard.Symbol)
		if err != nil {
			return nil, err
		}
		return &generated{
			rendered: rendered,
			legend:   display.Legend(checkerboard.Legend()),
			tiles:    cfg.Board.Width * cfg.Board.Length,
			seed:     seed,
		}, nil

	case "terrain":
		board := terrain.New(cfg.Board.Width, cfg.Board.Length, seed)
		board.SetLogger(logAdapter{})
		if err := board.Generate(); err != nil {
			return nil, fmt.Errorf("generating terrain: %w", err)
		}
		rendered, err := display.Render(board, terrain.Symbol)
		if err != nil {
			return nil, err
		}
		return &generated{
			rendered: rendered,
			legend:   display.Legend(terrain.Legend()),
			tiles:    cfg.Board.Width * cfg.Board.Length * board.Height(),
			seed:     seed,
		}, nil

	case "dungeon":
		fc := dungeon.DefaultFloorConfig(cfg.Dungeon.FloorNumber, cfg.Dungeon.TowerSeed)
		fc.Width = cfg.Board.Width
		fc.Length = cfg.Board.Length
		if cfg.Dungeon.TreasureCount > 0 {
			fc.TreasureCount = cfg.Dungeon.TreasureCount
		}
		fc.IsBossFloor = cfg.Dungeon.BossFloor

		gen := dungeon.NewGenerator(fc)
		gen.SetLogger(logAdapter{})
		floor, err := gen.Generate()
		if err != nil {
			return nil, fmt.Errorf("generating dungeon floor: %w", err)
		}

		rendered := renderDungeonGrid(floor)
		return &generated{
			rendered: rendered,
			legend:   display.Legend(dungeon.Legend()),
			tiles:    floor.Width * floor.Length,
			floor:    floor,
			seed:     fc.TowerSeed,
		}, nil

	default:
		return nil, fmt.Errorf("unknown tileset %q (want checkerboard, terrain, or dungeon)", cfg.Tileset)
	}
}

// renderDungeonGrid renders an already-generated floor's grid without
// going through wfc.Board: a GeneratedFloor's cells are all Decided by
// construction, so display.Render's undecided-cell handling has no use
// here.
func renderDungeonGrid(floor *dungeon.GeneratedFloor) string {
	out := ""
	for _, row := range floor.Grid {
		for _, tile := range row {
			out += dungeon.Symbol(wfc.NewDecidedCell(tile))
		}
		out += "\n"
	}
	return out
}
