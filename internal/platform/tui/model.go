package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/core"
	"github.com/vovakirdan/tui-diver/internal/games/diver/sim"
	"github.com/vovakirdan/tui-diver/internal/registry"
)

// History records finished games.
type History interface {
	SaveScore(tier config.Tier, score, pearls int) (int64, error)
}

// EventSink reacts to simulation events, for example with sound.
type EventSink interface {
	Handle(events []sim.Event)
}

// Games may implement these to receive records and report what happened.
type (
	recordKeeper interface {
		UseHighScores(store sim.HighScoreStore)
	}
	eventSource interface {
		Events() []sim.Event
	}
	summarizer interface {
		Summary() (sim.Summary, bool)
	}
)

// Options wires a Model to its collaborators. Every field is optional.
type Options struct {
	Records       sim.HighScoreStore
	History       History
	Sound         EventSink
	Logger        *log.Logger
	HoldTicks     int
	ScreenshotDir string
}

// movement actions stay held between terminal key repeats; everything
// else is delivered for exactly one tick.
var movement = map[core.Action]bool{
	core.ActionUp:    true,
	core.ActionDown:  true,
	core.ActionBoost: true,
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	logger    *log.Logger
	keys      *KeyMapper
	held      *core.HeldKeys
	pulse     *core.InputFrame
	gameState core.GameState
	quitting  bool
}

// NewModel creates a model for game. The game is reset with cfg; a zero
// seed is replaced by a fresh one.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	cfg.Seed = core.ResolveSeed(cfg.Seed)
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rk, ok := game.(recordKeeper); ok && opts.Records != nil {
		rk.UseHighScores(opts.Records)
	}
	game.Reset(cfg)

	pulse := core.NewInputFrame()
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		opts:   opts,
		logger: logger,
		keys:   NewKeyMapper(),
		held:   core.NewHeldKeys(opts.HoldTicks),
		pulse:  &pulse,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	switch {
	case action == core.ActionNone:
	case movement[action]:
		m.held.Press(action)
	default:
		m.pulse.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.held.Frame()
	for a := range m.pulse.Actions {
		in.Set(a)
	}
	m.pulse.Clear()

	wasOver := m.gameState.GameOver
	m.gameState = m.game.Step(in).State

	if es, ok := m.game.(eventSource); ok {
		events := es.Events()
		if m.opts.Sound != nil && len(events) > 0 {
			m.opts.Sound.Handle(events)
		}
		for _, e := range events {
			m.logger.Debug("event", "kind", e.Kind, "value", e.Value)
		}
	}

	if m.gameState.GameOver && !wasOver {
		m.recordGame()
	}
	return m, tickCmd(m.config.TickRate)
}

// recordGame logs the finished game and appends it to the history.
func (m Model) recordGame() {
	s, ok := m.game.(summarizer)
	if !ok {
		return
	}
	sum, ok := s.Summary()
	if !ok {
		return
	}
	m.logger.Info("dive over", "tier", sum.Tier, "score", sum.Score, "pearls", sum.Pearls, "record", sum.NewRecord)
	if m.opts.History == nil {
		return
	}
	if _, err := m.opts.History.SaveScore(sum.Tier, sum.Score, sum.Pearls); err != nil {
		m.logger.Warn("cannot save score", "err", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".diver", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run plays game in the local terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
