package level

import "github.com/katalvlaran/roguemaze/rng"

// Run owns the snapshot of the level being played and regenerates it on
// every advance. A Run is not safe for concurrent use.
type Run struct {
	cfg  Config
	opts []Option
	cur  *Snapshot
}

// NewRun generates level 1 from cfg.
func NewRun(cfg Config, opts ...Option) (*Run, error) {
	r := &Run{cfg: cfg, opts: opts}
	s, err := r.generate(cfg, 1)
	if err != nil {
		return nil, err
	}
	r.cur = s

	return r, nil
}

// Current returns the snapshot of the current level.
func (r *Run) Current() *Snapshot { return r.cur }

// Level returns the current level index.
func (r *Run) Level() int { return r.cur.Level() }

// Advance discards the current level and generates the next one from seed.
// On error the current level is kept.
func (r *Run) Advance(seed int32) (*Snapshot, error) {
	s, err := r.generate(r.cfg.WithSeed(seed), r.cur.Level()+1)
	if err != nil {
		return nil, err
	}
	r.cur = s

	return s, nil
}

// AdvanceRandom advances with a fresh non-deterministic seed.
func (r *Run) AdvanceRandom() (*Snapshot, error) {
	return r.Advance(rng.NewSeed())
}

func (r *Run) generate(cfg Config, level int) (*Snapshot, error) {
	opts := append(append([]Option(nil), r.opts...), WithLevel(level))

	return Generate(cfg, opts...)
}
