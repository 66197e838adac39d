package cmd

import "github.com/lawnchairsociety/wfc/internal/logger"

// logAdapter satisfies wfc.Logger, dungeon.Logger, and stream.Logger —
// all three are the same one-method shape — by forwarding to
// internal/logger's package-level functions.
type logAdapter struct{}

func (logAdapter) Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}
