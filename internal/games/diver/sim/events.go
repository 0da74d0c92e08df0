package sim

import "github.com/vovakirdan/tui-diver/internal/core"

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventCollected EventKind = iota
	EventDamaged
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventCollected:
		return "collected"
	case EventDamaged:
		return "damaged"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by a tick for frontends (sound, logging). Collectible is
// set for EventCollected, Hazard for EventDamaged.
type Event struct {
	Kind        EventKind
	Collectible CollectibleKind
	Hazard      HazardKind
	Value       int
	Pos         core.Vec
}
