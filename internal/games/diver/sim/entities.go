package sim

import "github.com/vovakirdan/tui-diver/internal/core"

// CollectibleKind distinguishes reward entities.
type CollectibleKind int

const (
	Pearl CollectibleKind = iota
	Treasure
	numCollectibleKinds
)

func (k CollectibleKind) String() string {
	switch k {
	case Pearl:
		return "pearl"
	case Treasure:
		return "treasure"
	default:
		return "unknown"
	}
}

// HazardKind distinguishes dangerous entities.
type HazardKind int

const (
	Shark HazardKind = iota
	Jellyfish
	numHazardKinds
)

func (k HazardKind) String() string {
	switch k {
	case Shark:
		return "shark"
	case Jellyfish:
		return "jellyfish"
	default:
		return "unknown"
	}
}

// DecorationKind distinguishes cosmetic entities.
type DecorationKind int

const (
	Bubble DecorationKind = iota
	Fish
	Coral
)

// Diver is the player avatar. Pos is the centre of its bounding box.
type Diver struct {
	Pos      core.Vec
	W, H     float64
	Vel      core.Vec
	Boosting bool
}

// Collectible is a pearl or treasure. Pos is its centre.
type Collectible struct {
	Kind   CollectibleKind
	Pos    core.Vec
	W, H   float64
	Radius float64 // non-zero for circular collectibles
	Speed  float64 // leftward, autoscroll included
	Value  int
}

// Reach is the centre distance below which the collectible touches the diver.
func (c Collectible) Reach(d Diver) float64 {
	if c.Radius > 0 {
		return c.Radius + d.W/2
	}
	return c.W/2 + d.W/2
}

// Hazard is a shark or jellyfish. Pos is its centre.
type Hazard struct {
	Kind      HazardKind
	Pos       core.Vec
	W, H      float64
	Speed     float64
	Dangerous bool
}

// Reach is the centre distance below which the hazard touches the diver.
func (h Hazard) Reach(d Diver) float64 {
	return h.W/2 + d.W/2
}

// Decoration is scenery: it never collides and wraps instead of despawning.
type Decoration struct {
	Kind  DecorationKind
	Pos   core.Vec
	W, H  float64
	Speed float64
	Dir   float64 // +1 or -1 for fish
}

// Particle is a short-lived visual effect.
type Particle struct {
	Pos    core.Vec
	Vel    core.Vec
	Radius float64
	Life   int
	Color  core.Color
}
