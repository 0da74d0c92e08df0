package main

import (
	"fmt"

	"github.com/vovakirdan/tui-diver/internal/games/diver/sim"
	"github.com/vovakirdan/tui-diver/internal/storage"
)

// stores are the persistence backends for one run. history may be nil when
// the scores database cannot be opened; the game still works without it.
type stores struct {
	records sim.HighScoreStore
	history *storage.Store
}

func (s stores) Close() {
	if s.history != nil {
		s.history.Close()
	}
}

// openStores opens the high score backend named by --store and the scores
// database named by --db. A sqlite backend that cannot be opened falls back
// to memory.
func openStores() (stores, error) {
	var s stores

	db, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
	} else {
		db.SetLogger(logger.WithPrefix("sqlite"))
		s.history = db
	}

	switch flagStore {
	case "sqlite":
		if s.history == nil {
			logger.Warn("keeping records in memory for this run")
			s.records = storage.NewMemoryStore()
			break
		}
		s.records = s.history
	case "gdata":
		kv, err := storage.OpenKV("diver")
		if err != nil {
			s.Close()
			return stores{}, fmt.Errorf("cannot open gdata store: %w", err)
		}
		kv.SetLogger(logger.WithPrefix("gdata"))
		s.records = kv
	case "memory":
		mem := storage.NewMemoryStore()
		mem.SetLogger(logger.WithPrefix("memory"))
		s.records = mem
	default:
		s.Close()
		return stores{}, fmt.Errorf("unknown store %q (want sqlite, gdata or memory)", flagStore)
	}
	return s, nil
}
