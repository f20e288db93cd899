// Package roguemaze generates deterministic roguelike levels: rectangular
// rooms joined by corridors, some rooms rewritten as mazes, with a start,
// an exit, traps and enemy spawn points. The same seed and configuration
// always produce the same level.
//
// 🚀 What does a level run look like?
//
//	rng/        one seeded Source per run; every random decision draws from it
//	grid/       passable/wall cells, BFS distances, connected components
//	rooms/      padded non-overlapping rooms with a guaranteed fallback
//	corridor/   L-shaped corridors between two cells
//	connect/    k-nearest candidates, random spanning tree, extra loops, repair
//	maze/       recursive-backtracker mazes carved inside chosen rooms
//	endpoints/  start and exit as the two ends of a BFS double sweep
//	placement/  traps near the path and spaced enemy spawns
//	level/      configuration, the full pipeline, snapshots and level runs
//	world/      grid to world-space frames, spawn positions and wall pieces
//	netsync/    an authority that shares seeds so peers rebuild the same level
//
// ✨ Guarantees
//
//   - Determinism: a (seed, config) pair maps to exactly one level
//   - Connectivity: every floor cell is reachable from the start
//   - Bounded work: every retry loop has a fixed attempt budget
//
// Quick ASCII example (S start, E exit, ^ trap, m spawn):
//
//	##########
//	#S...#..E#
//	#.##.#.#.#
//	#..^...m.#
//	##########
//
// See cmd/roguemaze for a command-line front end.
package roguemaze
