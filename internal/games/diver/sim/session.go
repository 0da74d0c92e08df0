package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-diver/internal/config"
)

// ErrInvalidTransition is returned for a state change the session does not
// allow from its current state.
var ErrInvalidTransition = errors.New("invalid state transition")

// State is the session lifecycle.
type State int

const (
	StateMenu State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StateRunning:
		return "RUNNING"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Options wires a session to its collaborators. Every port is optional.
type Options struct {
	Seed     int64
	Store    HighScoreStore
	UI       UIBinding
	Renderer Renderer
}

// Session owns one player's world and drives it through
// MENU -> RUNNING -> GAME_OVER -> MENU. It is not safe for concurrent use;
// the goroutine that ticks it owns it.
type Session struct {
	cfg  config.DiverConfig
	rand *rand.Rand

	store    HighScoreStore
	ui       UIBinding
	renderer Renderer

	state   State
	tier    config.Tier
	world   *World
	tick    uint64
	events  []Event
	summary *Summary
}

// NewSession returns a session in MENU.
func NewSession(cfg config.DiverConfig, opts Options) *Session {
	return &Session{
		cfg:      cfg,
		rand:     rand.New(rand.NewSource(opts.Seed)),
		store:    opts.Store,
		ui:       opts.UI,
		renderer: opts.Renderer,
		state:    StateMenu,
	}
}

// Start begins a play-through at the given tier. The world is rebuilt from
// scratch: empty pools, full lives, zero score and tick.
func (s *Session) Start(tier config.Tier) error {
	if s.state != StateMenu {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, s.state)
	}
	profile, err := s.cfg.Profile(tier)
	if err != nil {
		return err
	}

	s.world = NewWorld(s.cfg, profile, s.rand.Int63())
	seedWorld(s.world)
	s.tier = tier
	s.tick = 0
	s.events = s.events[:0]
	s.summary = nil
	s.state = StateRunning
	return nil
}

// Restart tears the session down to MENU. It is legal after a game over and
// as a cancellation of a running game.
func (s *Session) Restart() error {
	if s.state == StateMenu {
		return fmt.Errorf("%w: restart from %s", ErrInvalidTransition, s.state)
	}
	s.world = nil
	s.tick = 0
	s.events = s.events[:0]
	s.summary = nil
	s.state = StateMenu
	return nil
}

// Tick advances a running session by one fixed step and returns the
// snapshot that was presented. Outside RUNNING it changes nothing.
func (s *Session) Tick(in InputSource) Snapshot {
	if s.state != StateRunning {
		return s.Snapshot()
	}
	w := s.world
	s.events = s.events[:0]

	Move(w, Sample(in))

	var depleted bool
	s.events, depleted = Collide(w, s.events)

	Spawn(w, s.tick)

	if every := w.Cfg.Particles.TrailEvery; every > 0 && s.tick%uint64(every) == 0 {
		emitTrail(w)
	}
	w.Particles.Decay()

	snap := buildSnapshot(w, s.tick, s.state, s.tier, s.events)
	if s.renderer != nil {
		s.renderer.Present(snap)
	}
	if s.ui != nil {
		s.ui.UpdateHUD(snap.HUD)
	}

	s.tick++

	if depleted {
		s.finish()
	}
	return snap
}

// finish moves to GAME_OVER and settles the high score exactly once.
func (s *Session) finish() {
	score := s.world.Score
	sum := Summary{
		Tier:   s.tier,
		Score:  score.Score,
		Pearls: score.Pearls,
	}
	if s.store != nil {
		sum.PreviousHigh = s.store.HighScore(s.tier)
		sum.NewRecord = s.store.SetHighScore(s.tier, score.Score)
		sum.HighScore = s.store.HighScore(s.tier)
	} else {
		sum.HighScore = score.Score
		sum.NewRecord = score.Score > 0
	}
	s.summary = &sum
	s.state = StateGameOver

	if s.ui != nil {
		s.ui.ShowSummary(sum)
	}
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Tier returns the tier of the current or last play-through.
func (s *Session) Tier() config.Tier {
	return s.tier
}

// TickCount returns how many ticks the current play-through has run.
func (s *Session) TickCount() uint64 {
	return s.tick
}

// World exposes the live world. It is nil in MENU.
func (s *Session) World() *World {
	return s.world
}

// Summary returns the end-of-game report once in GAME_OVER.
func (s *Session) Summary() (Summary, bool) {
	if s.summary == nil {
		return Summary{}, false
	}
	return *s.summary, true
}

// Snapshot returns a view of the current state without advancing it.
func (s *Session) Snapshot() Snapshot {
	if s.world == nil {
		return Snapshot{
			State:  s.state,
			Width:  s.cfg.World.Width,
			Height: s.cfg.World.Height,
		}
	}
	snap := buildSnapshot(s.world, s.tick, s.state, s.tier, nil)
	if s.summary != nil {
		sum := *s.summary
		snap.Summary = &sum
	}
	return snap
}
