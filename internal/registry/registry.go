// Package registry maps game IDs to factories. Game packages register from
// init(), so frontends (terminal, SSH, window) can create a game by name
// without importing it directly.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-diver/internal/core"
)

// Game is what every frontend drives. Implementations hold pure logic; the
// frontend owns timing, key mapping and drawing of the screen buffer.
type Game interface {
	// ID is the stable name used on the command line and in storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset prepares a fresh game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions held this tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a game instance.
type Factory func() Game

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	info GameInfo
	new  Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id. The title is taken from one throwaway
// instance. Registering an id twice is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: f().Title()}, new: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create returns a fresh instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.new(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
