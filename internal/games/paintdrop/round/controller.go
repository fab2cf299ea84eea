package round

import (
	"fmt"
	"time"
)

// DefaultFallDuration is how long a bucket takes to reach the floor.
const DefaultFallDuration = time.Second

// Config holds field geometry and timing supplied by the host.
type Config struct {
	MinX, MaxX   float64       // Horizontal bounds of the play field
	Margin       float64       // Distance kept from each edge
	MinCadence   time.Duration // Shortest allowed spawn interval
	MaxCadence   time.Duration // Longest allowed spawn interval
	FallDuration time.Duration // Speed assigned to every drop
}

// Validate checks that the placement band and cadence bounds are usable.
func (c Config) Validate() error {
	if c.Margin < 0 {
		return fmt.Errorf("round: negative margin %v", c.Margin)
	}
	if c.MinX+c.Margin > c.MaxX-c.Margin {
		return fmt.Errorf("round: empty placement band [%v, %v]", c.MinX+c.Margin, c.MaxX-c.Margin)
	}
	if c.MinCadence <= 0 || c.MaxCadence < c.MinCadence {
		return fmt.Errorf("round: invalid cadence bounds [%v, %v]", c.MinCadence, c.MaxCadence)
	}
	if c.FallDuration <= 0 {
		return fmt.Errorf("round: invalid fall duration %v", c.FallDuration)
	}
	return nil
}

// Controller runs the level, score and drop bookkeeping of one game.
// It is not safe for concurrent use.
type Controller struct {
	cfg    Config
	rng    Rand
	walker *Walker

	state     State
	level     int
	score     int
	planned   int
	spawned   int
	collected int
	cadence   time.Duration
}

// New creates a controller in the Idle state.
func New(cfg Config, rng Rand) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("round: nil random source")
	}
	c := &Controller{
		cfg:    cfg,
		rng:    rng,
		walker: NewWalker(cfg.MinX+cfg.Margin, cfg.MaxX-cfg.Margin),
		state:  StateIdle,
		level:  1,
	}
	c.planLevel()
	return c, nil
}

// planLevel derives the drop count and cadence for the current level and
// clears per-level counters.
func (c *Controller) planLevel() {
	c.planned = PlannedDrops(c.level)
	c.cadence = Cadence(c.level, c.planned, c.cfg.MinCadence, c.cfg.MaxCadence)
	c.spawned = 0
	c.collected = 0
	c.walker.Reset()
}

// StartNewGame resets score and level and begins spawning level 1.
func (c *Controller) StartNewGame() error {
	if c.state != StateIdle && c.state != StateGameOver {
		return contractErr("StartNewGame", c.state, "")
	}
	c.score = 0
	c.level = 1
	c.planLevel()
	c.state = StateSpawning
	return nil
}

// NextDrop produces the next bucket of the level.
func (c *Controller) NextDrop() (Drop, error) {
	if c.state != StateSpawning {
		return Drop{}, contractErr("NextDrop", c.state, "")
	}
	if c.spawned >= c.planned {
		return Drop{}, contractErr("NextDrop", c.state,
			fmt.Sprintf("all %d drops already spawned", c.planned))
	}

	x := c.walker.Next(c.rng, c.level)
	paint := Paint(int(c.rng.Float64() * float64(paintCount)))
	if paint >= paintCount {
		paint = paintCount - 1
	}

	d := Drop{
		X:     x,
		Label: c.planned - c.spawned,
		Speed: c.cfg.FallDuration,
		Paint: paint,
	}
	c.spawned++
	return d, nil
}

// ReportCollected records a caught bucket. It returns true when this catch
// completed the level; the caller should then wait its between-level delay
// and call AdvanceLevel.
func (c *Controller) ReportCollected() (bool, error) {
	if c.state != StateSpawning {
		return false, contractErr("ReportCollected", c.state, "")
	}
	if c.collected >= c.spawned {
		return false, contractErr("ReportCollected", c.state, "no drop in flight")
	}

	c.collected++
	c.score += c.level

	if c.collected == c.planned {
		c.state = StateLevelComplete
		return true, nil
	}
	return false, nil
}

// ReportMissed records a bucket reaching the floor and ends the game.
// Drops not yet spawned or still falling are abandoned.
func (c *Controller) ReportMissed() error {
	if c.state != StateSpawning {
		return contractErr("ReportMissed", c.state, "")
	}
	if c.collected >= c.spawned {
		return contractErr("ReportMissed", c.state, "no drop in flight")
	}
	c.state = StateGameOver
	return nil
}

// AdvanceLevel moves to the next level after a completed one.
func (c *Controller) AdvanceLevel() error {
	if c.state != StateLevelComplete {
		return contractErr("AdvanceLevel", c.state, "")
	}
	c.level++
	c.planLevel()
	c.state = StateSpawning
	return nil
}

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Level returns the current level, starting at 1.
func (c *Controller) Level() int { return c.level }

// Score returns the cumulative score of the current or last game.
func (c *Controller) Score() int { return c.score }

// Cadence returns the interval between spawns for the current level.
func (c *Controller) Cadence() time.Duration { return c.cadence }

// InProgress reports whether a game is running (spawning or between levels).
func (c *Controller) InProgress() bool {
	return c.state == StateSpawning || c.state == StateLevelComplete
}

// Planned returns the number of drops planned for the current level.
func (c *Controller) Planned() int { return c.planned }

// Spawned returns how many drops of the current level were produced.
func (c *Controller) Spawned() int { return c.spawned }

// Collected returns how many drops of the current level were caught.
func (c *Controller) Collected() int { return c.collected }

// Remaining returns how many drops are still to be spawned this level.
func (c *Controller) Remaining() int { return c.planned - c.spawned }

// LastDropX returns the previous drop position of this level, if any.
func (c *Controller) LastDropX() (float64, bool) { return c.walker.Last() }

// Band returns the placement band.
func (c *Controller) Band() (lo, hi float64) { return c.walker.Lo, c.walker.Hi }

// Snapshot returns a copy of the full state.
func (c *Controller) Snapshot() Snapshot {
	x, ok := c.walker.Last()
	return Snapshot{
		State:      c.state,
		Level:      c.level,
		Score:      c.score,
		Planned:    c.planned,
		Spawned:    c.spawned,
		Collected:  c.collected,
		Cadence:    c.cadence,
		LastDropX:  x,
		HasLastX:   ok,
		InProgress: c.InProgress(),
	}
}
