package core

// Action is a semantic input intent, decoupled from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow: swim up / menu up
	ActionDown           // S, Down arrow: swim down / menu down
	ActionBoost          // D, Right arrow, Space: forward boost
	ActionConfirm        // Enter: start with the selected tier
	ActionBack           // B, Escape: back to the tier menu
	ActionRestart        // R: play the same tier again after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionBoost:
		return "Boost"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions active during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// HeldKeys derives continuous hold state from discrete key presses.
// Terminals report presses and auto-repeats but never releases, so each
// press keeps its action held for a fixed number of ticks; auto-repeat
// refreshes the latch before it runs out.
type HeldKeys struct {
	ttl  int
	left map[Action]int
}

// NewHeldKeys creates a latch that holds each press for ttl ticks.
func NewHeldKeys(ttl int) *HeldKeys {
	if ttl < 1 {
		ttl = 1
	}
	return &HeldKeys{ttl: ttl, left: make(map[Action]int)}
}

// Press marks an action as held, refreshing its latch.
func (h *HeldKeys) Press(a Action) {
	h.left[a] = h.ttl
}

// Release drops an action immediately.
func (h *HeldKeys) Release(a Action) {
	delete(h.left, a)
}

// Reset drops every held action.
func (h *HeldKeys) Reset() {
	clear(h.left)
}

// Frame returns the actions held for the current tick and ages every latch
// by one tick. Call it exactly once per tick.
func (h *HeldKeys) Frame() InputFrame {
	f := NewInputFrame()
	for a, n := range h.left {
		f.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
	return f
}
