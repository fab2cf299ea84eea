package round

import (
	"time"

	"github.com/vovakirdan/paintdrop/internal/core"
)

// Default cadence bounds.
const (
	DefaultMinCadence = 120 * time.Millisecond
	DefaultMaxCadence = time.Second
)

// dropTable lists planned drops for levels 1..7. Level 8 and above use
// maxPlannedDrops.
var dropTable = [...]int{10, 20, 30, 40, 50, 75, 100}

const maxPlannedDrops = 150

// PlannedDrops returns how many buckets fall in the given level.
// Levels below 1 are treated as level 1.
func PlannedDrops(level int) int {
	if level < 1 {
		level = 1
	}
	if level > len(dropTable) {
		return maxPlannedDrops
	}
	return dropTable[level-1]
}

// Cadence returns the interval between spawns for a level:
// 1 / (level + level/planned) seconds, clamped to [minCadence, maxCadence].
func Cadence(level, planned int, minCadence, maxCadence time.Duration) time.Duration {
	if planned < 1 {
		planned = 1
	}
	l := float64(level)
	secs := 1 / (l + l/float64(planned))
	secs = core.ClampF(secs, minCadence.Seconds(), maxCadence.Seconds())
	d := time.Duration(secs * float64(time.Second))

	// Float rounding can land a nanosecond outside the band.
	if d < minCadence {
		d = minCadence
	}
	if d > maxCadence {
		d = maxCadence
	}
	return d
}
