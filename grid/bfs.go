package grid

import "fmt"

// Option configures BFS behaviour via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS
// is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customise a BFS walk.
type BFSOptions struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// OnVisit is called when a cell is dequeued. Returning an error aborts
	// the walk and the error is propagated.
	OnVisit func(c Cell, depth int) error

	// FilterNeighbor can skip a step curr→next by returning false.
	FilterNeighbor func(curr, next Cell) bool

	err error
}

// DefaultBFSOptions returns options with no depth limit, no filtering and
// a no-op visit hook.
func DefaultBFSOptions() BFSOptions {
	return BFSOptions{
		MaxDepth:       0,
		OnVisit:        func(Cell, int) error { return nil },
		FilterNeighbor: func(_, _ Cell) bool { return true },
	}
}

// WithMaxDepth stops the search at depth d.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run on every visited cell.
func WithOnVisit(fn func(c Cell, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips steps for which fn returns false.
func WithFilterNeighbor(fn func(curr, next Cell) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a walk.
//   - Order: cells in visit sequence (non-decreasing depth).
//   - Farthest: the first visited cell at the maximum depth.
//   - MaxDepth: depth of Farthest.
type BFSResult struct {
	Order    []Cell
	Farthest Cell
	MaxDepth int

	width  int
	depth  []int // -1 for unreached cells
	parent []int // -1 for the root and unreached cells
}

// Depth returns the step distance from the start to c, or -1 if c was not
// reached.
func (r *BFSResult) Depth(c Cell) int {
	if c.X < 0 || c.Y < 0 || c.X >= r.width {
		return -1
	}
	i := c.Y*r.width + c.X
	if i >= len(r.depth) {
		return -1
	}

	return r.depth[i]
}

// Reached reports whether c was visited.
func (r *BFSResult) Reached(c Cell) bool { return r.Depth(c) >= 0 }

// PathTo reconstructs the shortest path from the start cell to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest Cell) ([]Cell, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("grid: no path to %v", dest)
	}
	path := []Cell{}
	for i := dest.Y*r.width + dest.X; i >= 0; i = r.parent[i] {
		path = append(path, Cell{i % r.width, i / r.width})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// walker encapsulates mutable BFS state.
type walker struct {
	g     *Grid
	opts  BFSOptions
	queue []int
	res   *BFSResult
}

// BFS walks the 4-connected passable cells reachable from start.
// Returns ErrStartNotPassable when start is a wall or out of bounds,
// ErrOptionViolation for bad options, or the error of an OnVisit hook.
// Complexity: O(W×H) time and memory.
func BFS(g *Grid, start Cell, opts ...Option) (*BFSResult, error) {
	o := DefaultBFSOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.IsPassable(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotPassable, start)
	}

	n := g.width * g.height
	w := &walker{
		g:     g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Farthest: start,
			width:    g.width,
			depth:    make([]int, n),
			parent:   make([]int, n),
		},
	}
	for i := range w.res.depth {
		w.res.depth[i] = -1
		w.res.parent[i] = -1
	}

	w.enqueue(g.index(start.X, start.Y), 0, -1)

	return w.res, w.loop()
}

// enqueue marks i reached at depth d with the given parent.
func (w *walker) enqueue(i, d, parent int) {
	w.res.depth[i] = d
	w.res.parent[i] = parent
	w.queue = append(w.queue, i)
}

// loop processes the queue until it is empty or a hook fails.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		i := w.queue[head]
		c := w.g.Coordinate(i)
		d := w.res.depth[i]

		w.res.Order = append(w.res.Order, c)
		if d > w.res.MaxDepth {
			w.res.MaxDepth = d
			w.res.Farthest = c
		}
		if err := w.opts.OnVisit(c, d); err != nil {
			return fmt.Errorf("grid: OnVisit error at %v: %w", c, err)
		}

		if w.opts.MaxDepth > 0 && d+1 > w.opts.MaxDepth {
			continue
		}
		for _, dir := range Dirs {
			n := c.Add(dir.Offset())
			if !w.g.IsPassable(n) || !w.opts.FilterNeighbor(c, n) {
				continue
			}
			ni := w.g.index(n.X, n.Y)
			if w.res.depth[ni] < 0 {
				w.enqueue(ni, d+1, i)
			}
		}
	}

	return nil
}

// FarthestFrom returns the first cell at maximum BFS distance from start
// together with that distance.
func FarthestFrom(g *Grid, start Cell) (Cell, int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return start, 0, err
	}

	return res.Farthest, res.MaxDepth, nil
}
