package connect

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roguemaze/grid"
)

// Repair returns the edges that must be added to carved so that every
// centre ends up in one component.
//
// Steps:
//  1. Union the endpoints of every carved edge.
//  2. While more than one group remains, scan every pair of groups (ordered
//     by smallest member) and every room pair across them; keep the first
//     pair with strictly smallest Manhattan distance.
//  3. Append that edge and union its rooms.
//
// Returns ErrDisconnected if a carved edge names an unknown room or no
// cross-group pair can be found.
// Complexity: O(n²) per added edge.
func Repair(centers []grid.Cell, carved []Edge) ([]Edge, error) {
	n := len(centers)
	if n <= 1 {
		return nil, nil
	}

	d := newDSU(n)
	for _, e := range carved {
		if !valid(e, n) {
			return nil, fmt.Errorf("%w: edge %v outside %d rooms", ErrDisconnected, e, n)
		}
		d.union(e.U, e.V)
	}

	var added []Edge
	for {
		groups := d.groups()
		if len(groups) <= 1 {
			return added, nil
		}

		best, ai, bi := math.MaxInt, -1, -1
		for g1 := 0; g1 < len(groups); g1++ {
			for g2 := g1 + 1; g2 < len(groups); g2++ {
				for _, i := range groups[g1] {
					for _, j := range groups[g2] {
						if dist := centers[i].Manhattan(centers[j]); dist < best {
							best, ai, bi = dist, i, j
						}
					}
				}
			}
		}
		if ai < 0 {
			return nil, fmt.Errorf("%w: %d groups left", ErrDisconnected, len(groups))
		}

		added = append(added, Edge{U: ai, V: bi, A: centers[ai], B: centers[bi]})
		d.union(ai, bi)
	}
}
