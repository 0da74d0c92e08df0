// Package window runs the diver in a desktop window with Ebitengine. The
// world is drawn at its native resolution; the adapter state machine is the
// same one the terminal frontend drives.
package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/core"
	"github.com/vovakirdan/tui-diver/internal/games/diver"
	"github.com/vovakirdan/tui-diver/internal/games/diver/sim"
)

// Options wires the window to its collaborators. Every field is optional.
type Options struct {
	Records sim.HighScoreStore
	History interface {
		SaveScore(tier config.Tier, score, pearls int) (int64, error)
	}
	Sound interface {
		Handle(events []sim.Event)
	}
	Logger   *log.Logger
	TickRate int
	Seed     int64
	Scale    float64
}

// keys maps physical keys to actions. Ebitengine reports real key state,
// so no latching is needed.
var keys = map[ebiten.Key]core.Action{
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyD:          core.ActionBoost,
	ebiten.KeyArrowRight: core.ActionBoost,
	ebiten.KeySpace:      core.ActionBoost,
	ebiten.KeyEnter:      core.ActionConfirm,
	ebiten.KeyB:          core.ActionBack,
	ebiten.KeyEscape:     core.ActionBack,
	ebiten.KeyR:          core.ActionRestart,
	ebiten.KeyP:          core.ActionPause,
}

// Window implements ebiten.Game around a diver.Game.
type Window struct {
	game    *diver.Game
	cfg     config.DiverConfig
	opts    Options
	logger  *log.Logger
	in      core.InputFrame
	wasOver bool
}

// New creates a window for game. The game is reset with the given seed.
func New(game *diver.Game, opts Options) *Window {
	cfg := game.Config()
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Records != nil {
		game.UseHighScores(opts.Records)
	}
	game.Reset(core.RuntimeConfig{
		ScreenW:  int(cfg.World.Width),
		ScreenH:  int(cfg.World.Height),
		TickRate: opts.TickRate,
		Seed:     core.ResolveSeed(opts.Seed),
	})
	return &Window{
		game:   game,
		cfg:    cfg,
		opts:   opts,
		logger: logger.WithPrefix("window"),
		in:     core.NewInputFrame(),
	}
}

// Update advances the game one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	w.in.Clear()
	for k, a := range keys {
		if ebiten.IsKeyPressed(k) {
			w.in.Set(a)
		}
	}

	state := w.game.Step(w.in).State
	if events := w.game.Events(); len(events) > 0 && w.opts.Sound != nil {
		w.opts.Sound.Handle(events)
	}
	if state.GameOver && !w.wasOver {
		w.record()
	}
	w.wasOver = state.GameOver
	return nil
}

func (w *Window) record() {
	sum, ok := w.game.Summary()
	if !ok {
		return
	}
	w.logger.Info("dive over", "tier", sum.Tier, "score", sum.Score, "pearls", sum.Pearls, "record", sum.NewRecord)
	if w.opts.History == nil {
		return
	}
	if _, err := w.opts.History.SaveScore(sum.Tier, sum.Score, sum.Pearls); err != nil {
		w.logger.Warn("cannot save score", "err", err)
	}
}

// Layout keeps the world resolution regardless of the window size.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.cfg.World.Width), int(w.cfg.World.Height)
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(game *diver.Game, opts Options) error {
	w := New(game, opts)
	cfg := w.cfg
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(cfg.World.Width*w.opts.Scale), int(cfg.World.Height*w.opts.Scale))
	ebiten.SetTPS(w.opts.TickRate)
	return ebiten.RunGame(w)
}
