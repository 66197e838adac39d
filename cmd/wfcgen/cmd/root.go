// Package cmd implements the wfcgen command tree, grounded on
// eng618-parable-bloom/tools/level-builder/cmd/root.go's shape:
// persistent flags on the root command, one file per subcommand.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/wfc/internal/config"
	"github.com/lawnchairsociety/wfc/internal/logger"
)

var (
	configPath    string
	logConfigPath string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "wfcgen",
	Short: "Generate, render, validate, and serve wfc tile grids",
	Long: `wfcgen drives the wfc constraint solver over one of its tile
alphabets (checkerboard, terrain, or dungeon) and exposes the result as
ASCII art, a YAML export, a validation report, or a live websocket feed.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logCfg, err := logger.LoadConfig(logConfigPath)
		if err != nil {
			return fmt.Errorf("loading log config: %w", err)
		}
		if verbose {
			logCfg.Level = "DEBUG"
		}
		if err := logger.Initialize(logCfg); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
}

// Execute runs the root command. It is called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "wfcgen.yaml", "path to the board/tileset config file")
	rootCmd.PersistentFlags().StringVar(&logConfigPath, "log-config", "", "path to the logging config file (empty: built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the board/tileset config and resolves a seed of 0
// into a time-derived one, the way the teacher's cmd/mud/main.go picks a
// world seed when none is given on the command line: "0" in the config
// file means "pick one and tell me what it was," not "use 0."
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		logger.Infof("wfcgen: seed not set, using time-derived seed %d", cfg.Seed)
	}
	return cfg, nil
}
