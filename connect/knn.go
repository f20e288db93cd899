package connect

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/roguemaze/grid"
)

// Candidates returns, for every centre i, edges to its k nearest other
// centres by Manhattan distance. k is clamped to [1, n-1]. Distance ties
// are broken by the lower index. The union is deduplicated and kept in
// discovery order: all edges proposed by centre 0, then centre 1, and so on.
//
// Complexity: O(n² log n).
func Candidates(centers []grid.Cell, k int) []Edge {
	n := len(centers)
	if n < 2 {
		return nil
	}
	k = min(max(k, 1), n-1)

	seen := mapset.New[key]()
	out := make([]Edge, 0, n*k)
	others := make([]int, 0, n-1)
	for i, a := range centers {
		others = others[:0]
		for j := range centers {
			if j != i {
				others = append(others, j)
			}
		}
		sort.SliceStable(others, func(x, y int) bool {
			return a.Manhattan(centers[others[x]]) < a.Manhattan(centers[others[y]])
		})

		for _, j := range others[:k] {
			e := Edge{U: i, V: j, A: a, B: centers[j]}
			if seen.Has(e.key()) {
				continue
			}
			seen.Put(e.key())
			out = append(out, e)
		}
	}

	return out
}
