package connect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSU_UnionFind(t *testing.T) {
	d := newDSU(6)
	assert.True(t, d.union(0, 1))
	assert.True(t, d.union(4, 5))
	assert.True(t, d.union(5, 1))
	assert.False(t, d.union(0, 4), "already joined")

	assert.Equal(t, d.find(0), d.find(4))
	assert.NotEqual(t, d.find(0), d.find(2))
	assert.Equal(t, [][]int{{0, 1, 4, 5}, {2}, {3}}, d.groups())
}

func TestEdge_KeyIsUndirected(t *testing.T) {
	a := Edge{U: 3, V: 1}
	b := Edge{U: 1, V: 3}
	assert.Equal(t, a.key(), b.key())
	assert.True(t, a.Same(b))
	assert.False(t, a.Same(Edge{U: 3, V: 2}))
}
