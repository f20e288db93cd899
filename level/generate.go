package level

import (
	"fmt"

	"github.com/katalvlaran/roguemaze/connect"
	"github.com/katalvlaran/roguemaze/endpoints"
	"github.com/katalvlaran/roguemaze/grid"
	"github.com/katalvlaran/roguemaze/maze"
	"github.com/katalvlaran/roguemaze/placement"
	"github.com/katalvlaran/roguemaze/rng"
	"github.com/katalvlaran/roguemaze/rooms"
)

// Report summarises how a level was built and flags degenerate outcomes.
type Report struct {
	Rooms        int  // rooms placed
	RoomAttempts int  // sampling attempts used
	Fallback     bool // the fallback room was inserted

	CandidateEdges int
	TreeEdges      int
	ExtraEdges     int
	RepairEdges    int
	CorridorCells  int // cells opened by corridors

	MazeRooms int

	Degenerate bool // fewer than two walkable cells, or start == exit
	BorderKept bool // an endpoint stayed on the border
	Distance   int  // BFS steps between the two diameter endpoints

	Walkable int
	Traps    int

	Spawns         int
	SpawnShortfall int
	SpawnAttempts  int

	Draws int // values consumed from the source
}

// Warnings lists the degenerate outcomes in r, in a fixed order.
func (r Report) Warnings() []string {
	var out []string
	if r.Fallback {
		out = append(out, fmt.Sprintf("no room fit in %d attempts, fallback room used", r.RoomAttempts))
	}
	if r.Degenerate {
		out = append(out, "degenerate endpoints: start and exit coincide")
	}
	if r.BorderKept {
		out = append(out, "endpoint kept on the border: no passable inward neighbour")
	}
	if r.SpawnShortfall > 0 {
		out = append(out, fmt.Sprintf("spawned %d/%d after %d attempts",
			r.Spawns, r.Spawns+r.SpawnShortfall, r.SpawnAttempts))
	}

	return out
}

// Generate clamps cfg, resolves the seed and builds one level.
//
// Pipeline, all on one rng.Source:
//  1. rooms.Place
//  2. connect.Connect
//  3. maze.Carve
//  4. endpoints.Select
//  5. placement.Traps, then placement.Spawns
//
// The snapshot's Config has the resolved seed pinned, so
// Generate(s.Config()) rebuilds the same level.
func Generate(cfg Config, opts ...Option) (*Snapshot, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cfg = cfg.Clamp()
	if !cfg.FixedSeed {
		cfg = cfg.WithSeed(rng.NewSeed())
	}
	src := rng.New(cfg.Seed)

	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	placed, err := rooms.Place(g, src,
		rooms.WithMaxRooms(cfg.MaxRooms),
		rooms.WithMaxAttempts(cfg.MaxRoomAttempts),
		rooms.WithSize(cfg.RoomMinW, cfg.RoomMinH, cfg.RoomMaxW, cfg.RoomMaxH),
	)
	if err != nil {
		return nil, fmt.Errorf("level: place rooms: %w", err)
	}

	links, err := connect.Connect(g, src, placed.Centers(),
		connect.WithNeighbors(cfg.Neighbors),
		connect.WithExtraConnections(cfg.ExtraConnections),
	)
	if err != nil {
		return nil, fmt.Errorf("level: connect rooms: %w", err)
	}

	mazes, err := maze.Carve(g, src, placed.Rooms,
		maze.WithRatio(cfg.MazeRoomRatio),
		maze.WithStep(cfg.MazeGridStep),
	)
	if err != nil {
		return nil, fmt.Errorf("level: carve mazes: %w", err)
	}

	ends, err := endpoints.Select(g, src)
	if err != nil {
		return nil, fmt.Errorf("level: select endpoints: %w", err)
	}

	walkable := g.Walkable()
	traps, err := placement.Traps(walkable, ends.Start, ends.Exit, src,
		placement.WithProbability(cfg.TrapProbability),
		placement.WithSafeRadius(cfg.TrapSafeRadius),
	)
	if err != nil {
		return nil, fmt.Errorf("level: place traps: %w", err)
	}

	spawnOpts := []placement.SpawnOption{
		placement.WithCount(cfg.TotalEnemies),
		placement.WithMinDistance(cfg.SpawnMinDistance),
		placement.WithMinSeparation(cfg.SpawnSeparation),
		placement.WithKinds(cfg.EnemyKinds),
		placement.WithJitter(cfg.EnemyJitter),
	}
	if cfg.AvoidTraps {
		spawnOpts = append(spawnOpts, placement.WithAvoid(traps))
	}
	spawns, err := placement.Spawns(walkable, ends.Start, ends.Exit, src, spawnOpts...)
	if err != nil {
		return nil, fmt.Errorf("level: place spawns: %w", err)
	}

	s := &Snapshot{
		level:      o.level,
		cfg:        cfg,
		grid:       g,
		rooms:      placed.Rooms,
		candidates: links.Candidates,
		edges:      links.Carved,
		mazeRooms:  mazes.Rooms(),
		start:      ends.Start,
		exit:       ends.Exit,
		traps:      traps,
		spawns:     spawns.Spawns,
		report: Report{
			Rooms:          len(placed.Rooms),
			RoomAttempts:   placed.Attempts,
			Fallback:       placed.Fallback,
			CandidateEdges: len(links.Candidates),
			TreeEdges:      len(links.Tree),
			ExtraEdges:     len(links.Extra),
			RepairEdges:    len(links.Repair),
			CorridorCells:  links.Opened,
			MazeRooms:      len(mazes.Mazes),
			Degenerate:     ends.Degenerate,
			BorderKept:     ends.BorderKept,
			Distance:       ends.Distance,
			Walkable:       len(walkable),
			Traps:          traps.Len(),
			Spawns:         len(spawns.Spawns),
			SpawnShortfall: spawns.Shortfall,
			SpawnAttempts:  spawns.Attempts,
			Draws:          src.Draws(),
		},
	}

	for _, w := range s.report.Warnings() {
		o.logger.Printf("level %d (seed %d): %s", s.level, cfg.Seed, w)
	}

	return s, nil
}
