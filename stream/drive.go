package stream

import (
	"fmt"
	"time"

	"github.com/lawnchairsociety/wfc/wfc"
)

// StepAndBroadcast steps board one decision at a time via Generate1,
// broadcasting a Snapshot to server's viewers after every step, until
// the board reaches wfc.Complete or returns an error. It blocks for the
// duration of generation; callers that want this running alongside an
// HTTP listener should invoke it in its own goroutine.
func StepAndBroadcast[T comparable, D comparable](server *Server, board *wfc.Board[T, D], tileString TileString[T], interval time.Duration) error {
	for {
		done, err := board.Generate1()
		if err != nil {
			if bcErr := server.Broadcast(BuildSnapshot(board, tileString)); bcErr != nil {
				return fmt.Errorf("stream: generation failed: %w (and broadcasting the failure snapshot also failed: %v)", err, bcErr)
			}
			return fmt.Errorf("stream: generation failed: %w", err)
		}

		if err := server.Broadcast(BuildSnapshot(board, tileString)); err != nil {
			return fmt.Errorf("stream: broadcast failed: %w", err)
		}

		if done {
			return nil
		}

		if interval > 0 {
			time.Sleep(interval)
		}
	}
}
