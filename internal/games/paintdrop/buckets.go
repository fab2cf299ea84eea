package paintdrop

import (
	"time"

	"github.com/vovakirdan/paintdrop/internal/games/paintdrop/round"
)

// Bucket is a drop that is currently on screen.
type Bucket struct {
	Drop   round.Drop
	Age    time.Duration // Time since spawn
	Missed bool          // Hit the ground; drawn as a splat until it pops
	popAt  time.Duration // When a frozen bucket disappears
}

// Progress returns how far the bucket has fallen, from 0 at spawn to 1 at
// the floor.
func (b Bucket) Progress() float64 {
	if b.Drop.Speed <= 0 {
		return 1
	}
	p := float64(b.Age) / float64(b.Drop.Speed)
	if p > 1 {
		return 1
	}
	return p
}

// BucketManager handles falling, removal and the post-game-over pop of
// buckets. It knows nothing about catching; the game decides that.
type BucketManager struct {
	buckets []Bucket
	frozen  bool
	clock   time.Duration // Time since Freeze
}

// NewBucketManager creates an empty bucket manager.
func NewBucketManager() *BucketManager {
	return &BucketManager{
		buckets: make([]Bucket, 0, 16),
	}
}

// Clear removes all buckets and unfreezes.
func (bm *BucketManager) Clear() {
	bm.buckets = bm.buckets[:0]
	bm.frozen = false
	bm.clock = 0
}

// Spawn adds a bucket for a drop.
func (bm *BucketManager) Spawn(d round.Drop) {
	bm.buckets = append(bm.buckets, Bucket{Drop: d})
}

// Update advances falling buckets by dt. When frozen, buckets stay in place
// and are removed one by one as their pop time passes.
func (bm *BucketManager) Update(dt time.Duration) {
	if !bm.frozen {
		for i := range bm.buckets {
			bm.buckets[i].Age += dt
		}
		return
	}

	bm.clock += dt
	remaining := bm.buckets[:0]
	for _, b := range bm.buckets {
		if bm.clock < b.popAt {
			remaining = append(remaining, b)
		}
	}
	bm.buckets = remaining
}

// Freeze stops every bucket and schedules its removal after delay plus
// stagger times its position in the list.
func (bm *BucketManager) Freeze(delay, stagger time.Duration) {
	bm.frozen = true
	bm.clock = 0
	for i := range bm.buckets {
		bm.buckets[i].popAt = delay + time.Duration(i)*stagger
	}
}

// Frozen reports whether buckets are stopped.
func (bm *BucketManager) Frozen() bool {
	return bm.frozen
}

// MarkMissed flags the bucket at index i as having hit the ground.
func (bm *BucketManager) MarkMissed(i int) {
	if i < 0 || i >= len(bm.buckets) {
		return
	}
	bm.buckets[i].Missed = true
}

// Remove deletes the bucket at index i, keeping order.
func (bm *BucketManager) Remove(i int) {
	if i < 0 || i >= len(bm.buckets) {
		return
	}
	bm.buckets = append(bm.buckets[:i], bm.buckets[i+1:]...)
}

// Buckets returns the buckets on screen, oldest first.
func (bm *BucketManager) Buckets() []Bucket {
	return bm.buckets
}

// Len returns the number of buckets on screen.
func (bm *BucketManager) Len() int {
	return len(bm.buckets)
}
