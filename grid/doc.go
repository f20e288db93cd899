// Package grid is the passability model shared by every step of a level
// generation run.
//
// What:
//
//   - Grid wraps a width×height boolean matrix (true = floor, false = wall)
//     stored as one row-major buffer.
//   - Cell and Rect provide the integer geometry used by rooms, corridors
//     and mazes: Manhattan distance, centres, padding, overlap tests.
//   - BFS walks the 4-connected passable cells from a start cell and reports
//     distances, visit order and the farthest cell.
//   - ConnectedComponents groups passable cells into 4-connected regions.
//   - WallEdges lists every side of a passable cell that faces a wall or the
//     outside of the grid.
//
// Why:
//
//   - A flat buffer owned by one run is cheap to rebuild on every level and
//     trivially comparable between peers.
//   - Size is always available through explicit accessors; callers never
//     need to inspect generator internals for bounds.
//
// Determinism:
//
//	Every enumeration (Walkable, BFS neighbours, components, wall edges) uses
//	a fixed order: rows by ascending y, cells by ascending x, neighbours
//	N, E, S, W.
//
// Complexity:
//
//   - BFS, ConnectedComponents, WallEdges: O(W×H) time and memory.
//   - Passable, Set, InBounds: O(1).
package grid
