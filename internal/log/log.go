// Package log wires the default slog logger. The TUI owns the terminal, so
// logs never go to stderr: debug runs log to a rotating file in the data
// directory and everything else is discarded.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the process-wide logger.
func Setup(dataDir string, debug bool) error {
	var w io.Writer = io.Discard
	level := log.WarnLevel
	if debug {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return err
		}
		w = &lumberjack.Logger{
			Filename:   filepath.Join(dataDir, "lineup.log"),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		}
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}
