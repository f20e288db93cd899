// Package rooms places non-overlapping rectangular rooms on a grid by
// rejection sampling.
//
// Algorithm:
//
//  1. For each attempt (up to MaxAttempts) while fewer than MaxRooms are
//     placed, draw width, height, x and y from the run's rng.Source.
//  2. Reject the candidate if it does not fit inside the grid inset by one
//     cell, or if the candidate grown by Padding overlaps an accepted room.
//  3. Carve each accepted room into the grid immediately.
//  4. If nothing was accepted, carve one fallback room centred on the grid,
//     so at least one room always exists.
//
// Every attempt consumes exactly four draws, accepted or not, which keeps
// the draw sequence independent of the grid contents.
//
// Complexity: O(MaxAttempts × MaxRooms) overlap tests plus the carved area.
package rooms
