package level

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/roguemaze/connect"
	"github.com/katalvlaran/roguemaze/grid"
	"github.com/katalvlaran/roguemaze/placement"
)

// Snapshot is the immutable result of one generation run. All accessors
// return copies.
type Snapshot struct {
	level      int
	cfg        Config
	grid       *grid.Grid
	rooms      []grid.Rect
	candidates []connect.Edge
	edges      []connect.Edge
	mazeRooms  []int
	start      grid.Cell
	exit       grid.Cell
	traps      *placement.TrapSet
	spawns     []placement.Spawn
	report     Report
}

// Level returns the level index, starting at 1.
func (s *Snapshot) Level() int { return s.level }

// Seed returns the seed the level was generated from.
func (s *Snapshot) Seed() int32 { return s.cfg.Seed }

// Config returns the clamped configuration with the seed pinned.
func (s *Snapshot) Config() Config { return s.cfg }

// Width returns the grid width.
func (s *Snapshot) Width() int { return s.grid.Width() }

// Height returns the grid height.
func (s *Snapshot) Height() int { return s.grid.Height() }

// Grid returns a copy of the passability grid.
func (s *Snapshot) Grid() *grid.Grid { return s.grid.Clone() }

// Passable reports whether c is floor.
func (s *Snapshot) Passable(c grid.Cell) bool { return s.grid.IsPassable(c) }

// Walkable lists the floor cells in row-major order.
func (s *Snapshot) Walkable() []grid.Cell { return s.grid.Walkable() }

// Rooms returns the placed rooms in placement order.
func (s *Snapshot) Rooms() []grid.Rect { return append([]grid.Rect(nil), s.rooms...) }

// Candidates returns the candidate room edges.
func (s *Snapshot) Candidates() []connect.Edge {
	return append([]connect.Edge(nil), s.candidates...)
}

// Edges returns the carved room edges in carve order.
func (s *Snapshot) Edges() []connect.Edge { return append([]connect.Edge(nil), s.edges...) }

// MazeRooms returns the indices of rooms converted into mini-mazes.
func (s *Snapshot) MazeRooms() []int { return append([]int(nil), s.mazeRooms...) }

// Start returns the start cell.
func (s *Snapshot) Start() grid.Cell { return s.start }

// Exit returns the exit cell.
func (s *Snapshot) Exit() grid.Cell { return s.exit }

// Traps returns the trap cells in placement order.
func (s *Snapshot) Traps() []grid.Cell { return s.traps.Cells() }

// IsTrap reports whether c holds a trap.
func (s *Snapshot) IsTrap(c grid.Cell) bool { return s.traps.Has(c) }

// Spawns returns the entity spawns in placement order.
func (s *Snapshot) Spawns() []placement.Spawn {
	return append([]placement.Spawn(nil), s.spawns...)
}

// Report returns the generation summary.
func (s *Snapshot) Report() Report { return s.report }

// Map glyphs used by String.
const (
	glyphStart = 'S'
	glyphExit  = 'E'
	glyphTrap  = '^'
	glyphSpawn = 'm'
)

// String renders the level as ASCII with the +Y axis pointing up:
// '#' wall, '.' floor, 'S' start, 'E' exit, '^' trap, 'm' spawn.
func (s *Snapshot) String() string {
	spawnAt := make(map[grid.Cell]bool, len(s.spawns))
	for _, sp := range s.spawns {
		spawnAt[sp.Cell] = true
	}

	return s.grid.Render(func(c grid.Cell) (rune, bool) {
		switch {
		case c == s.start:
			return glyphStart, true
		case c == s.exit:
			return glyphExit, true
		case spawnAt[c]:
			return glyphSpawn, true
		case s.traps.Has(c):
			return glyphTrap, true
		}

		return 0, false
	})
}

// Summary is a one-line description for logs and CLIs.
func (s *Snapshot) Summary() string {
	r := s.report
	var b strings.Builder
	fmt.Fprintf(&b, "level %d seed %d %dx%d: ", s.level, s.cfg.Seed, s.Width(), s.Height())
	fmt.Fprintf(&b, "rooms=%d mazes=%d edges=%d(+%d repair) ", r.Rooms, r.MazeRooms, len(s.edges), r.RepairEdges)
	fmt.Fprintf(&b, "start=%v exit=%v dist=%d traps=%d spawns=%d", s.start, s.exit, r.Distance, r.Traps, r.Spawns)
	if r.SpawnShortfall > 0 {
		fmt.Fprintf(&b, " shortfall=%d", r.SpawnShortfall)
	}

	return b.String()
}
