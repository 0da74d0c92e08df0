package sim

import (
	"testing"

	"github.com/vovakirdan/tui-diver/internal/config"
)

func newTestWorld(t *testing.T, tier config.Tier) *World {
	t.Helper()
	cfg := config.DefaultDiverConfig()
	profile, err := cfg.Profile(tier)
	if err != nil {
		t.Fatalf("Profile(%s) error = %v", tier, err)
	}
	return NewWorld(cfg, profile, 42)
}

// clearEntities empties every pool so tests can place entities by hand.
func clearEntities(w *World) {
	for k := range w.Collectibles {
		w.Collectibles[k].Reset()
	}
	for k := range w.Hazards {
		w.Hazards[k].Reset()
	}
}

type memStore struct {
	scores map[config.Tier]int
	sets   []int
}

func newMemStore() *memStore {
	return &memStore{scores: make(map[config.Tier]int)}
}

func (m *memStore) HighScore(t config.Tier) int {
	return m.scores[t]
}

func (m *memStore) SetHighScore(t config.Tier, score int) bool {
	m.sets = append(m.sets, score)
	if score > m.scores[t] {
		m.scores[t] = score
		return true
	}
	return false
}

type recordingUI struct {
	huds      []HUD
	summaries []Summary
}

func (r *recordingUI) UpdateHUD(h HUD)       { r.huds = append(r.huds, h) }
func (r *recordingUI) ShowSummary(s Summary) { r.summaries = append(r.summaries, s) }

type countingRenderer struct {
	frames int
	last   Snapshot
}

func (c *countingRenderer) Present(s Snapshot) {
	c.frames++
	c.last = s
}
