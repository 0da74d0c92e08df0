package storage

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-diver/internal/config"
)

// HighScores is implemented by every backend. It matches the simulation's
// record port: reads never fail and writes keep only strictly greater
// scores.
type HighScores interface {
	HighScore(tier config.Tier) int
	SetHighScore(tier config.Tier, score int) bool
}

var (
	_ HighScores = (*Store)(nil)
	_ HighScores = (*KVStore)(nil)
	_ HighScores = (*MemoryStore)(nil)
)

var errNegativeScore = errors.New("negative score")

// PersistenceReadError describes a stored record that could not be parsed.
// Backends recover by reading it as 0.
type PersistenceReadError struct {
	Tier config.Tier
	Raw  string
	Err  error
}

func (e *PersistenceReadError) Error() string {
	return fmt.Sprintf("storage: malformed high score %q for tier %s: %v", e.Raw, e.Tier, e.Err)
}

func (e *PersistenceReadError) Unwrap() error {
	return e.Err
}

// parseStoredScore reads a record stored as decimal text. Anything else,
// including negative numbers, is a *PersistenceReadError and reads as 0.
func parseStoredScore(tier config.Tier, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err == nil && n < 0 {
		err = errNegativeScore
	}
	if err != nil {
		return 0, &PersistenceReadError{Tier: tier, Raw: raw, Err: err}
	}
	return n, nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
