// Package level runs the full generation pipeline and hands out immutable
// snapshots of the result.
//
// What:
//
//   - Config carries every knob of a run. It loads from YAML, has
//     documented defaults and is clamped into a valid range before use.
//   - Generate builds one level: rooms, corridors, mini-mazes, start and
//     exit, traps and spawns, all from one seeded source in that fixed
//     order.
//   - Snapshot is the read-only result. Accessors return copies, so a
//     snapshot can be handed to renderers, spawners or network code
//     without further coordination.
//   - Run tracks level progression: each Advance discards the previous
//     snapshot and generates the next level.
//   - FarthestRoom picks a goal room by BFS distance.
//
// Why:
//
//   - The caller owns the snapshot and passes it explicitly to whatever
//     consumes it. There is no global "current level".
//   - The resolved seed is stored in the snapshot's config, so a snapshot
//     can always be regenerated bit for bit, locally or on another peer.
//
// Logging:
//
//	Generate reports degenerate outcomes (fallback room, degenerate or
//	border-bound endpoints, spawn shortfall) through the logger configured
//	with WithLogger. Nothing here is fatal.
package level
