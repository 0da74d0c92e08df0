package storage

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"

	"github.com/vovakirdan/tui-diver/internal/config"
)

const (
	kvObject    = "diver"
	kvKeyPrefix = "highscore_"
)

// KVStore keeps one decimal string per tier in the platform's per-user data
// directory, under the keys highscore_easy, highscore_medium and
// highscore_hard.
type KVStore struct {
	mu     sync.Mutex
	m      *gdata.Manager
	logger *log.Logger
}

// OpenKV opens the data directory for appName.
func OpenKV(appName string) (*KVStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open data dir for %s: %w", appName, err)
	}
	return &KVStore{m: m, logger: discardLogger()}, nil
}

// SetLogger directs read-recovery diagnostics to l.
func (s *KVStore) SetLogger(l *log.Logger) {
	s.logger = l
}

func kvKey(tier config.Tier) string {
	return kvKeyPrefix + tier.LegacyName()
}

func (s *KVStore) HighScore(tier config.Tier) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(tier)
}

func (s *KVStore) SetHighScore(tier config.Tier, score int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.read(tier) {
		return false
	}
	if err := s.m.SaveObjectProp(kvObject, kvKey(tier), []byte(strconv.Itoa(score))); err != nil {
		s.logger.Warn("cannot save high score", "tier", tier, "err", err)
		return false
	}
	return true
}

func (s *KVStore) read(tier config.Tier) int {
	key := kvKey(tier)
	if !s.m.ObjectPropExists(kvObject, key) {
		return 0
	}
	data, err := s.m.LoadObjectProp(kvObject, key)
	if err != nil {
		s.logger.Warn("cannot load high score", "tier", tier, "err", err)
		return 0
	}
	n, err := parseStoredScore(tier, string(data))
	if err != nil {
		s.logger.Debug("recovered unreadable high score", "err", err)
	}
	return n
}
