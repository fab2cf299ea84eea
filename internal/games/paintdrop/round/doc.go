// Package round implements the drop-pacing and placement rules of Paint Drop.
//
// A Controller owns level and score state, plans how many buckets fall in a
// level and how often, places each bucket with a bounded random walk and
// decides when a level is complete or the game is over. It is synchronous and
// does no timing of its own: the host calls NextDrop on its own timer and
// reports catches and misses as they happen.
package round
