package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Generate a tile grid and print it to stdout, ignoring output config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		result, err := runTileset(cfg)
		if err != nil {
			return err
		}

		fmt.Print(result.rendered)
		fmt.Println()
		fmt.Print(result.legend)
		return nil
	},
}
