// Package placement samples trap and spawn cells on the walkable part of a
// level.
//
// Traps: every walkable cell is visited once, in order. Cells within
// SafeRadius (Manhattan) of the start or the exit are skipped without a
// draw; every other cell becomes a trap when its draw falls below
// Probability.
//
// Spawns: uniform random walkable cells are drawn under a bounded budget of
// max(200, 40×Count) attempts. A cell is rejected when it is the start or
// the exit, closer than MinDistance to either, avoided (for example a trap),
// already taken, or closer than MinSeparation to an accepted spawn. An
// accepted spawn draws its jitter offsets and its kind. Running out of
// budget is not an error: the partial set is returned with a shortfall.
package placement
