package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/lawnchairsociety/wfc/wfc"
)

// FloorConfig contains parameters for one floor's generation, ported
// from the teacher's internal/wfc/generator.go FloorConfig.
type FloorConfig struct {
	FloorNumber   int   // 1-indexed; 0 is unused by this package (no city floor)
	TowerSeed     int64 // base tower seed; floor seed is derived from it
	Width, Length int
	TreasureCount int
	IsBossFloor   bool
	HasStairsUp   bool // false only for the topmost floor
	HasStairsDown bool // false only for the bottommost floor (floor 1)
}

// DefaultFloorConfig returns reasonable defaults for a floor, mirroring
// the teacher's treasure/boss scaling (more treasure on higher floors,
// capped at 3; a boss floor every 10th floor).
func DefaultFloorConfig(floorNumber int, towerSeed int64) *FloorConfig {
	cfg := &FloorConfig{
		FloorNumber:   floorNumber,
		TowerSeed:     towerSeed,
		Width:         12,
		Length:        12,
		TreasureCount: 1 + floorNumber/5,
		IsBossFloor:   floorNumber > 0 && floorNumber%10 == 0,
		HasStairsUp:   true,
		HasStairsDown: floorNumber > 1,
	}
	if cfg.TreasureCount > 3 {
		cfg.TreasureCount = 3
	}
	return cfg
}

// GeneratedFloor is the output of one floor's generation: a fully
// Decided grid of Tile plus the coordinates of its special rooms.
type GeneratedFloor struct {
	FloorNumber   int
	Width, Length int
	Grid          [][]Tile // [row][col]
	StairsUp      *wfc.Coord
	StairsDown    *wfc.Coord
	Boss          *wfc.Coord
	Treasure      []wfc.Coord
}

// Logger is the minimal diagnostic sink Generator accepts for its retry
// loop, satisfied by internal/logger's package-level functions via a
// thin adapter (see cmd/wfcgen).
type Logger interface {
	Debugf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}

// Generator drives wfc.Board to lay out one tower floor, retrying with a
// fresh derived seed on ErrImpossibleBoard, then force-placing the
// special rooms the adjacency-only ruleset can't guarantee a count for.
type Generator struct {
	config     *FloorConfig
	maxRetries int
	logger     Logger
}

// NewGenerator creates a Generator for the given floor configuration.
func NewGenerator(config *FloorConfig) *Generator {
	return &Generator{config: config, maxRetries: 50, logger: noopLogger{}}
}

// SetLogger installs a diagnostic sink. Passing nil restores the
// default no-op logger.
func (g *Generator) SetLogger(logger Logger) {
	if logger == nil {
		logger = noopLogger{}
	}
	g.logger = logger
}

// ErrNoSolution is returned when every retry attempt fails to produce a
// floor with the required special rooms.
var ErrNoSolution = fmt.Errorf("dungeon: no floor layout satisfies the configuration after all retries")

// Generate lays out one floor. Each retry re-seeds the board
// deterministically from TowerSeed, FloorNumber and the attempt index,
// so a given (TowerSeed, FloorNumber) pair always explores the same
// sequence of attempts.
func (g *Generator) Generate() (*GeneratedFloor, error) {
	baseSeed := g.config.TowerSeed + int64(g.config.FloorNumber)*1000

	var lastErr error
	for attempt := 0; attempt < g.maxRetries; attempt++ {
		seed := baseSeed + int64(attempt)
		board := wfc.New[Tile, Direction](Ruleset{}, g.config.Width, g.config.Length, 1, seed)

		if err := board.Generate(); err != nil {
			lastErr = err
			g.logger.Debugf("dungeon: floor %d attempt %d failed: %v", g.config.FloorNumber, attempt, err)
			continue
		}

		floor := g.extractFloor(board)
		if err := g.placeSpecials(floor, seed); err != nil {
			lastErr = err
			g.logger.Debugf("dungeon: floor %d attempt %d couldn't place specials: %v", g.config.FloorNumber, attempt, err)
			continue
		}
		return floor, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: failed after %d attempts: %w", ErrNoSolution, g.maxRetries, lastErr)
	}
	return nil, ErrNoSolution
}

func (g *Generator) extractFloor(board *wfc.Board[Tile, Direction]) *GeneratedFloor {
	tiles := board.Tiles()
	grid := make([][]Tile, g.config.Length)
	for row := range tiles[0] {
		grid[row] = make([]Tile, g.config.Width)
		for col, cell := range tiles[0][row] {
			grid[row][col] = cell.Tile()
		}
	}
	return &GeneratedFloor{
		FloorNumber: g.config.FloorNumber,
		Width:       g.config.Width,
		Length:      g.config.Length,
		Grid:        grid,
	}
}

// placeSpecials ensures stairs, boss, and treasure rooms exist, per the
// teacher's placeSpecialTiles/convertToType: scan for tiles that already
// decided to the wanted kind; if too few did, convert a preferred-kind
// candidate (DeadEnd over Room over Corridor, same preference order the
// teacher used) directly. Like the teacher, this does not re-check the
// converted cell's neighbours against the new kind's adjacency rules —
// the floor has already reached Complete, and the conversion is a
// presentation-level relabelling of an already-valid topology, not a
// fresh solve.
func (g *Generator) placeSpecials(floor *GeneratedFloor, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	preferred := []Kind{DeadEnd, Room, Corridor}

	byKind := make(map[Kind][]wfc.Coord)
	for row := range floor.Grid {
		for col, t := range floor.Grid[row] {
			c := wfc.Coord{Row: row, Col: col, Layer: 0}
			byKind[t.Kind] = append(byKind[t.Kind], c)
		}
	}

	convert := func(kind Kind) (wfc.Coord, bool) {
		for _, pref := range preferred {
			candidates := byKind[pref]
			if len(candidates) == 0 {
				continue
			}
			idx := rng.Intn(len(candidates))
			chosen := candidates[idx]
			byKind[pref] = append(candidates[:idx], candidates[idx+1:]...)
			floor.Grid[chosen.Row][chosen.Col] = Tile{Kind: kind}
			byKind[kind] = append(byKind[kind], chosen)
			return chosen, true
		}
		return wfc.Coord{}, false
	}

	if g.config.HasStairsUp {
		if len(byKind[StairsUp]) == 0 {
			c, ok := convert(StairsUp)
			if !ok {
				return fmt.Errorf("dungeon: failed to place stairs up")
			}
			floor.StairsUp = &c
		} else {
			c := byKind[StairsUp][0]
			floor.StairsUp = &c
		}
	}

	if g.config.HasStairsDown {
		if len(byKind[StairsDown]) == 0 {
			c, ok := convert(StairsDown)
			if !ok {
				return fmt.Errorf("dungeon: failed to place stairs down")
			}
			floor.StairsDown = &c
		} else {
			c := byKind[StairsDown][0]
			floor.StairsDown = &c
		}
	}

	if g.config.IsBossFloor {
		if len(byKind[Boss]) == 0 {
			c, ok := convert(Boss)
			if !ok {
				return fmt.Errorf("dungeon: failed to place boss room")
			}
			floor.Boss = &c
		} else {
			c := byKind[Boss][0]
			floor.Boss = &c
		}
	}

	floor.Treasure = append([]wfc.Coord(nil), byKind[Treasure]...)
	for len(floor.Treasure) < g.config.TreasureCount {
		c, ok := convert(Treasure)
		if !ok {
			break
		}
		floor.Treasure = append(floor.Treasure, c)
	}

	return nil
}
