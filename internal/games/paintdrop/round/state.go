package round

import "time"

// State is the controller's lifecycle state.
type State int

const (
	StateIdle          State = iota // No game started yet
	StateSpawning                   // Drops are being produced and caught
	StateLevelComplete              // Every drop of the level was caught
	StateGameOver                   // A drop hit the ground
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSpawning:
		return "Spawning"
	case StateLevelComplete:
		return "LevelComplete"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Paint is the colour of a bucket. It has no effect on the rules.
type Paint int

const (
	PaintNone Paint = iota
	PaintRed
	PaintBlue
	PaintYellow
	PaintGray

	paintCount
)

// String returns the paint name.
func (p Paint) String() string {
	switch p {
	case PaintRed:
		return "red"
	case PaintBlue:
		return "blue"
	case PaintYellow:
		return "yellow"
	case PaintGray:
		return "gray"
	default:
		return "none"
	}
}

// Drop describes one bucket to spawn.
type Drop struct {
	X     float64       // Horizontal position in field units
	Label int           // Countdown shown on the bucket
	Speed time.Duration // Time to fall from spawn height to the floor
	Paint Paint
}

// Snapshot is a copy of the controller's state.
type Snapshot struct {
	State      State
	Level      int
	Score      int
	Planned    int
	Spawned    int
	Collected  int
	Cadence    time.Duration
	LastDropX  float64
	HasLastX   bool
	InProgress bool
}
