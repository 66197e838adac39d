package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/wfc/dungeon"
	"github.com/lawnchairsociety/wfc/tilesets/checkerboard"
	"github.com/lawnchairsociety/wfc/tilesets/terrain"
	"github.com/lawnchairsociety/wfc/wfc"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configured tileset's ruleset for bidirectionality violations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		switch cfg.Tileset {
		case "checkerboard":
			violations := wfc.Validate[checkerboard.Tile, checkerboard.Direction](checkerboard.Ruleset{}, 1)
			for _, v := range violations {
				fmt.Printf("%v -> %v via %v: forward=%v, reverse=%v\n", v.A, v.B, v.Direction, v.AtoB, v.BtoA)
			}
			return reportViolations(len(violations))
		case "terrain":
			violations := wfc.Validate[terrain.Tile, terrain.Direction](terrain.Ruleset{}, 2)
			for _, v := range violations {
				fmt.Printf("%+v -> %+v via %v: forward=%v, reverse=%v\n", v.A, v.B, v.Direction, v.AtoB, v.BtoA)
			}
			return reportViolations(len(violations))
		case "dungeon":
			violations := wfc.Validate[dungeon.Tile, dungeon.Direction](dungeon.Ruleset{}, 1)
			for _, v := range violations {
				fmt.Printf("%v -> %v via %v: forward=%v, reverse=%v\n", v.A.Kind, v.B.Kind, v.Direction, v.AtoB, v.BtoA)
			}
			return reportViolations(len(violations))
		default:
			return fmt.Errorf("unknown tileset %q (want checkerboard, terrain, or dungeon)", cfg.Tileset)
		}
	},
}

func reportViolations(count int) error {
	if count == 0 {
		fmt.Println("ruleset is bidirectional: no violations found")
		return nil
	}
	return fmt.Errorf("ruleset has %d bidirectionality violation(s)", count)
}
