package round

import "github.com/vovakirdan/paintdrop/internal/core"

// Step bounds for the random walk.
const (
	stepBase    = 50.0
	stepPerLvl  = 60.0
	stepCeiling = 400.0
)

// Rand is the random source used for placement and paint selection.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// uniform draws from [lo, hi].
func uniform(r Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Walker places consecutive drops with a bounded random walk inside
// [Lo, Hi]. Each drop moves from the previous one by a level-dependent step
// toward a freshly sampled candidate.
type Walker struct {
	Lo, Hi  float64
	last    float64
	hasLast bool
}

// NewWalker creates a walker over the placement band [lo, hi].
func NewWalker(lo, hi float64) *Walker {
	return &Walker{Lo: lo, Hi: hi}
}

// Reset forgets the previous position so the next drop may land anywhere.
func (w *Walker) Reset() {
	w.last = 0
	w.hasLast = false
}

// Last returns the previous drop position, if any.
func (w *Walker) Last() (float64, bool) {
	return w.last, w.hasLast
}

// StepRange returns the bounds the step is drawn from at a level.
func StepRange(level int) (lo, hi float64) {
	l := float64(level)
	return stepBase + l, stepPerLvl * l
}

// Next returns the next drop position for the given level.
func (w *Walker) Next(r Rand, level int) float64 {
	candidate := uniform(r, w.Lo, w.Hi)

	lo, hi := StepRange(level)
	step := uniform(r, lo, hi)
	if step > stepCeiling {
		step = stepCeiling
	}

	if !w.hasLast {
		w.last = candidate
		w.hasLast = true
		return candidate
	}

	x := w.last - step
	if w.last < candidate {
		x = w.last + step
	}
	x = core.ClampF(x, w.Lo, w.Hi)

	w.last = x
	return x
}
