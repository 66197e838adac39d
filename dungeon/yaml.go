package dungeon

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/wfc/wfc"
)

// RoomYAML is one room's exported shape, grounded on the teacher's
// utilities/floorgen/yaml_writer.go RoomYAML.
type RoomYAML struct {
	ID       string            `yaml:"id"`
	Type     string            `yaml:"type"`
	Features []string          `yaml:"features,omitempty"`
	Exits    map[string]string `yaml:"exits,omitempty"`
}

// FloorYAML is the top-level exported shape of a generated floor.
type FloorYAML struct {
	Floor      int        `yaml:"floor"`
	Seed       int64      `yaml:"generated_seed"`
	Width      int        `yaml:"width"`
	Length     int        `yaml:"length"`
	StairsUp   string     `yaml:"stairs_up,omitempty"`
	StairsDown string     `yaml:"stairs_down,omitempty"`
	Rooms      []RoomYAML `yaml:"rooms"`
}

func roomID(row, col int) string {
	return fmt.Sprintf("r%d_%d", row, col)
}

// toFloorYAML flattens a GeneratedFloor's grid into the exported shape:
// one room per cell, with exits computed from which neighbours the
// adjacency ruleset actually permits (i.e. which directions this cell's
// kind and the neighbour's kind are mutually compatible in).
func toFloorYAML(floor *GeneratedFloor, seed int64) *FloorYAML {
	out := &FloorYAML{
		Floor:  floor.FloorNumber,
		Seed:   seed,
		Width:  floor.Width,
		Length: floor.Length,
	}
	if floor.StairsUp != nil {
		out.StairsUp = roomID(floor.StairsUp.Row, floor.StairsUp.Col)
	}
	if floor.StairsDown != nil {
		out.StairsDown = roomID(floor.StairsDown.Row, floor.StairsDown.Col)
	}

	rules := Ruleset{}
	for row := range floor.Grid {
		for col, tile := range floor.Grid[row] {
			room := RoomYAML{
				ID:   roomID(row, col),
				Type: tile.Kind.String(),
			}
			room.Features = featuresFor(floor, wfc.Coord{Row: row, Col: col, Layer: 0})

			exits := make(map[string]string)
			for _, d := range rules.Directions() {
				nr, nc, _, ok := rules.Neighbour(d, row, col, 0, floor.Width, floor.Length, 1)
				if !ok {
					continue
				}
				neighbour := floor.Grid[nr][nc]
				if rules.Permits(tile, neighbour, d) {
					exits[d.String()] = roomID(nr, nc)
				}
			}
			if len(exits) > 0 {
				room.Exits = exits
			}
			out.Rooms = append(out.Rooms, room)
		}
	}
	return out
}

func featuresFor(floor *GeneratedFloor, c wfc.Coord) []string {
	var features []string
	if floor.Boss != nil && *floor.Boss == c {
		features = append(features, "boss")
	}
	for _, t := range floor.Treasure {
		if t == c {
			features = append(features, "treasure")
		}
	}
	return features
}

// WriteFloorYAML writes a generated floor to path as YAML, grounded on
// the teacher's utilities/floorgen/yaml_writer.go: a header comment
// followed by rooms sorted by ID for stable, diffable output.
func WriteFloorYAML(floor *GeneratedFloor, seed int64, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dungeon: creating %s: %w", path, err)
	}
	defer f.Close()

	data := toFloorYAML(floor, seed)
	sort.Slice(data.Rooms, func(i, j int) bool { return data.Rooms[i].ID < data.Rooms[j].ID })

	fmt.Fprintf(f, "# Floor %d\n", data.Floor)
	fmt.Fprintf(f, "# Generated with seed: %d\n", data.Seed)
	fmt.Fprintf(f, "# Room count: %d\n\n", len(data.Rooms))

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("dungeon: encoding YAML: %w", err)
	}
	return nil
}
