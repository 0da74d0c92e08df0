package sim

import (
	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/core"
)

// InputSource exposes the held state of the control keys. core.InputFrame
// satisfies it.
type InputSource interface {
	Has(a core.Action) bool
}

// Renderer receives every tick's snapshot. It must not block the loop.
type Renderer interface {
	Present(s Snapshot)
}

// HighScoreStore persists the best score per tier. HighScore never returns a
// negative value and reads unreadable entries as 0. SetHighScore stores the
// score only if it is strictly greater than the current value and reports
// whether it did.
type HighScoreStore interface {
	HighScore(tier config.Tier) int
	SetHighScore(tier config.Tier, score int) bool
}

// UIBinding receives the HUD every tick and the summary once per game over.
type UIBinding interface {
	UpdateHUD(h HUD)
	ShowSummary(s Summary)
}

// HUD is the live scoreboard.
type HUD struct {
	Score  int
	Lives  int
	Pearls int
	Tier   config.Tier
}

// Label is the tier name for display.
func (h HUD) Label() string {
	return h.Tier.Label()
}

// Summary is the end-of-game report.
type Summary struct {
	Tier         config.Tier
	Score        int
	Pearls       int
	NewRecord    bool
	PreviousHigh int // best score before this game
	HighScore    int // best score after this game
}
