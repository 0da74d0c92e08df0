// Package diver adapts the diving simulation to the arcade platform: a tier
// menu with the stored records, the running game, pause, and the end-of-game
// summary, all drawn into a character screen.
package diver

import (
	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/core"
	"github.com/vovakirdan/tui-diver/internal/games/diver/sim"
	"github.com/vovakirdan/tui-diver/internal/registry"
)

// ID is the registry name of the game.
const ID = "diver"

var (
	configPath string
	presetTier config.Tier
)

// SetConfigPath sets the YAML file New loads instead of the search path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset makes new games skip the tier menu and start at the
// named tier. An empty or unknown name keeps the menu.
func SetDifficultyPreset(name string) {
	t, err := config.ParseTier(name)
	if err != nil {
		presetTier = ""
		return
	}
	presetTier = t
}

// Game drives one sim.Session from platform input. It is the session's
// Renderer and UIBinding, keeping the latest snapshot, HUD and summary.
type Game struct {
	cfg     config.DiverConfig
	rt      core.RuntimeConfig
	store   sim.HighScoreStore
	session *sim.Session

	cursor int // index into config.Tiers()
	paused bool
	prev   core.InputFrame

	last    sim.Snapshot
	hud     sim.HUD
	summary *sim.Summary
	events  []sim.Event
	err     error

	// records caches the store for the menu; it is read on entering the
	// menu and after each game over.
	records map[config.Tier]int
}

// New creates a game with the configuration from SetConfigPath or the
// default search path. A broken file falls back to the built-in defaults;
// callers that care validate the file with config.LoadDiver first.
func New() *Game {
	cfg, err := config.LoadDiver(configPath)
	if err != nil {
		cfg = config.DefaultDiverConfig()
	}
	return &Game{cfg: cfg, cursor: 1, prev: core.NewInputFrame()}
}

// UseHighScores attaches the record store. It takes effect on the next Reset.
func (g *Game) UseHighScores(store sim.HighScoreStore) {
	g.store = store
}

// Config returns the tuning the game was created with.
func (g *Game) Config() config.DiverConfig {
	return g.cfg
}

func (g *Game) ID() string {
	return ID
}

func (g *Game) Title() string {
	return "Deep Diver"
}

// Reset builds a new session in the tier menu, or straight into a game when
// a difficulty preset is set. A zero seed is replaced by a fresh one.
func (g *Game) Reset(rt core.RuntimeConfig) {
	rt.Seed = core.ResolveSeed(rt.Seed)
	g.rt = rt
	g.session = sim.NewSession(g.cfg, sim.Options{
		Seed:     rt.Seed,
		Store:    g.store,
		UI:       g,
		Renderer: g,
	})
	g.paused = false
	g.prev = core.NewInputFrame()
	g.summary = nil
	g.events = nil
	g.err = nil
	g.hud = sim.HUD{}
	g.last = g.session.Snapshot()
	g.refreshRecords()

	if presetTier != "" {
		for i, t := range config.Tiers() {
			if t == presetTier {
				g.cursor = i
			}
		}
		g.start(presetTier)
	}
}

// Step advances one tick. Menu and lifecycle keys act on press, not while
// held, because terminal input is latched for several ticks.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	pressed := func(a core.Action) bool {
		return in.Has(a) && !g.prev.Has(a)
	}
	defer func() { g.prev = in.Clone() }()
	g.events = g.events[:0]

	switch g.session.State() {
	case sim.StateMenu:
		tiers := config.Tiers()
		switch {
		case pressed(core.ActionUp):
			g.cursor = (g.cursor - 1 + len(tiers)) % len(tiers)
		case pressed(core.ActionDown):
			g.cursor = (g.cursor + 1) % len(tiers)
		case pressed(core.ActionConfirm), pressed(core.ActionBoost):
			g.start(tiers[g.cursor])
		}

	case sim.StateRunning:
		switch {
		case pressed(core.ActionPause):
			g.paused = !g.paused
		case pressed(core.ActionBack):
			g.toMenu()
		case pressed(core.ActionRestart):
			g.replay()
		case !g.paused:
			snap := g.session.Tick(in)
			g.events = append(g.events, snap.Events...)
		}

	case sim.StateGameOver:
		switch {
		case pressed(core.ActionRestart), pressed(core.ActionConfirm):
			g.replay()
		case pressed(core.ActionBack):
			g.toMenu()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) start(t config.Tier) {
	g.summary = nil
	g.paused = false
	if err := g.session.Start(t); err != nil {
		g.err = err
		return
	}
	g.err = nil
	g.last = g.session.Snapshot()
	g.hud = g.last.HUD
}

func (g *Game) toMenu() {
	if err := g.session.Restart(); err != nil {
		g.err = err
		return
	}
	g.paused = false
	g.summary = nil
	g.last = g.session.Snapshot()
	g.refreshRecords()
}

// replay tears the session down and starts again at the same tier.
func (g *Game) replay() {
	tier := g.session.Tier()
	g.toMenu()
	g.start(tier)
}

// Present keeps the snapshot of the last tick for Render.
func (g *Game) Present(s sim.Snapshot) {
	g.last = s
}

// UpdateHUD keeps the live scoreboard.
func (g *Game) UpdateHUD(h sim.HUD) {
	g.hud = h
}

// ShowSummary keeps the end-of-game report.
func (g *Game) ShowSummary(s sim.Summary) {
	g.summary = &s
	g.refreshRecords()
}

// Events returns what happened during the last Step. The slice is reused.
func (g *Game) Events() []sim.Event {
	return g.events
}

// Phase returns the session state.
func (g *Game) Phase() sim.State {
	return g.session.State()
}

// Summary returns the last end-of-game report.
func (g *Game) Summary() (sim.Summary, bool) {
	if g.summary == nil {
		return sim.Summary{}, false
	}
	return *g.summary, true
}

// SelectedTier is the tier under the menu cursor.
func (g *Game) SelectedTier() config.Tier {
	return config.Tiers()[g.cursor]
}

// Snapshot returns the most recently presented world.
func (g *Game) Snapshot() sim.Snapshot {
	return g.last
}

func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.hud.Score,
		GameOver: g.session != nil && g.session.State() == sim.StateGameOver,
		Paused:   g.paused,
	}
}

// Record returns the cached best score of a tier.
func (g *Game) Record(t config.Tier) int {
	return g.records[t]
}

func (g *Game) refreshRecords() {
	if g.records == nil {
		g.records = make(map[config.Tier]int, len(config.Tiers()))
	}
	for _, t := range config.Tiers() {
		if g.store == nil {
			g.records[t] = 0
			continue
		}
		g.records[t] = g.store.HighScore(t)
	}
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}
