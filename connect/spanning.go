package connect

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/roguemaze/rng"
)

// SpanningTree shuffles edges in place and grows a tree over rooms
// [0,n) starting from room 0. Each round takes the first edge, in shuffled
// order, with exactly one endpoint already in the tree. It stops when all
// n rooms are in the tree or a full scan adds nothing; in the latter case
// the returned tree spans only part of the rooms.
//
// The shuffle consumes len(edges)-1 draws; nothing else draws.
// Complexity: O(n × len(edges)).
func SpanningTree(n int, edges []Edge, src *rng.Source) []Edge {
	rng.ShuffleSlice(src, edges)
	if n <= 1 {
		return nil
	}

	in := make([]bool, n)
	in[0] = true
	size := 1
	tree := make([]Edge, 0, n-1)

	for progressed := true; size < n && progressed; {
		progressed = false
		for _, e := range edges {
			if !valid(e, n) || in[e.U] == in[e.V] {
				continue
			}
			if in[e.U] {
				in[e.V] = true
			} else {
				in[e.U] = true
			}
			size++
			tree = append(tree, e)
			progressed = true

			break
		}
	}

	return tree
}

// Extras copies pool, shuffles the copy and returns its first limit edges
// that are not part of tree. The shuffle always runs, so the draw count
// does not depend on limit.
func Extras(pool, tree []Edge, limit int, src *rng.Source) []Edge {
	shuffled := append([]Edge(nil), pool...)
	rng.ShuffleSlice(src, shuffled)

	inTree := mapset.New[key]()
	for _, e := range tree {
		inTree.Put(e.key())
	}

	var out []Edge
	for _, e := range shuffled {
		if len(out) >= limit {
			break
		}
		if inTree.Has(e.key()) {
			continue
		}
		out = append(out, e)
	}

	return out
}

func valid(e Edge, n int) bool {
	return e.U >= 0 && e.U < n && e.V >= 0 && e.V < n
}
