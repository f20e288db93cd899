// Package endpoints picks a start and an exit cell that are far apart.
//
// Select uses the double-BFS diameter heuristic: from a random walkable
// cell A, B is the farthest cell; from B, C is the farthest cell. B becomes
// the start and C the exit. A farthest cell is the first one reached at the
// maximum distance, so ties follow BFS visit order.
//
// Endpoints on the grid border are pushed one step inward when the inward
// neighbour is passable; otherwise they are kept and the result says so.
// The heuristic approximates the diameter, it does not guarantee it.
package endpoints
