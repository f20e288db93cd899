// Package maze turns the interior of selected rooms into small perfect
// mazes.
//
// For each room, in order, one draw decides whether the room is converted
// (draw <= Ratio). A converted room has its interior (the room inset by one
// cell) reset to walls; a lattice of nodes spaced Step apart is laid out
// from the interior's min corner; a depth-first search from a random node
// carves a straight connector to every unvisited neighbour node, visiting
// directions in shuffled order. Finally the room's outer ring is carved
// again so corridors that ended on the room keep their junction.
//
// Rooms whose interior is smaller than 3×3 are left untouched.
package maze
