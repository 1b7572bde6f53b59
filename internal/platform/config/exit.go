package config

import (
	"log/slog"
	"os"
)

// Fatal logs err at error level and exits with code 1.
// A nil logger falls back to the default slog logger.
func Fatal(logger *slog.Logger, msg string, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error(msg, "error", err)
	os.Exit(1)
}
