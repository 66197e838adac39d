package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/wfc/internal/config"
	"github.com/lawnchairsociety/wfc/stream"
	"github.com/lawnchairsociety/wfc/tilesets/checkerboard"
	"github.com/lawnchairsociety/wfc/tilesets/terrain"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live websocket feed of a board as it generates",
	Long: `serve starts an HTTP server exposing a single websocket endpoint,
/ws, that streams a JSON snapshot of the board after every solver step
until generation completes. The dungeon tileset cannot be served this
way: its Generator only exposes a completed floor, never an
in-progress wfc.Board.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		srv := stream.NewServer(cfg.Serve.IsOriginAllowed)
		srv.SetLogger(logAdapter{})

		mux := http.NewServeMux()
		mux.HandleFunc("/ws", srv.HandleWS)

		interval := time.Duration(cfg.Serve.StepIntervalMS) * time.Millisecond

		errCh := make(chan error, 1)
		go func() {
			errCh <- http.ListenAndServe(cfg.Serve.Addr, mux)
		}()

		fmt.Printf("serving %s feed on %s/ws\n", cfg.Tileset, cfg.Serve.Addr)

		if err := driveTileset(srv, cfg, interval); err != nil {
			return fmt.Errorf("driving board: %w", err)
		}

		return <-errCh
	},
}

// driveTileset steps the configured tileset's board and pushes snapshots
// to srv until generation completes.
func driveTileset(srv *stream.Server, cfg *config.Config, interval time.Duration) error {
	switch cfg.Tileset {
	case "checkerboard":
		board := checkerboard.New(cfg.Board.Width, cfg.Board.Length, cfg.Seed)
		board.SetLogger(logAdapter{})
		return stream.StepAndBroadcast(srv, board, func(t checkerboard.Tile) string { return string(t) }, interval)
	case "terrain":
		board := terrain.New(cfg.Board.Width, cfg.Board.Length, cfg.Seed)
		board.SetLogger(logAdapter{})
		return stream.StepAndBroadcast(srv, board, func(t terrain.Tile) string {
			return fmt.Sprintf("%s/%s", t.Kind, t.Facing)
		}, interval)
	case "dungeon":
		return fmt.Errorf("serve: the dungeon tileset has no steppable board; use generate --tileset dungeon instead")
	default:
		return fmt.Errorf("unknown tileset %q (want checkerboard or terrain)", cfg.Tileset)
	}
}
