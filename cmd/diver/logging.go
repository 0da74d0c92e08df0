package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// logFile is kept open for the life of the process.
var logFile *os.File

// newLogger builds the process logger. An empty path logs to
// ~/.diver/diver.log, because stderr belongs to the game screen; "-" logs
// to stderr.
func newLogger(level, path string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = os.Stderr
	if path != "-" {
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return log.NewWithOptions(io.Discard, log.Options{}), nil
			}
			path = filepath.Join(home, ".diver", "diver.log")
		}
		path = expandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "diver",
		Level:           lvl,
	}), nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
