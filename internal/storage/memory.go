package storage

import (
	"strconv"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-diver/internal/config"
)

// MemoryStore keeps records for the lifetime of the process. It is the
// fallback when no persistent backend can be opened.
type MemoryStore struct {
	mu     sync.Mutex
	values map[config.Tier]string
	logger *log.Logger
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[config.Tier]string),
		logger: discardLogger(),
	}
}

// SetLogger directs read-recovery diagnostics to l.
func (m *MemoryStore) SetLogger(l *log.Logger) {
	m.logger = l
}

func (m *MemoryStore) HighScore(tier config.Tier) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.read(tier)
}

func (m *MemoryStore) SetHighScore(tier config.Tier, score int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if score <= m.read(tier) {
		return false
	}
	m.values[tier] = strconv.Itoa(score)
	return true
}

func (m *MemoryStore) read(tier config.Tier) int {
	raw, ok := m.values[tier]
	if !ok {
		return 0
	}
	n, err := parseStoredScore(tier, raw)
	if err != nil {
		m.logger.Debug("recovered unreadable high score", "err", err)
	}
	return n
}
