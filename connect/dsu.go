package connect

// dsu is a disjoint-set forest over room indices with path compression and
// union by rank.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the root of u, pointing every visited node at its
// grandparent on the way up.
func (d *dsu) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (d *dsu) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	// Attach the shallower tree under the deeper one.
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}

	return true
}

// groups lists the members of every set. Groups are ordered by their
// smallest member and members ascend within a group.
func (d *dsu) groups() [][]int {
	slot := make([]int, len(d.parent))
	for i := range slot {
		slot[i] = -1
	}

	var out [][]int
	for i := range d.parent {
		r := d.find(i)
		if slot[r] < 0 {
			slot[r] = len(out)
			out = append(out, nil)
		}
		out[slot[r]] = append(out[slot[r]], i)
	}

	return out
}
