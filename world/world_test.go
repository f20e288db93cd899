package world_test

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roguemaze/grid"
	"github.com/katalvlaran/roguemaze/level"
	"github.com/katalvlaran/roguemaze/placement"
	"github.com/katalvlaran/roguemaze/world"
)

func TestPosition_CornerFrame(t *testing.T) {
	f := world.Frame{CellSize: 3, Origin: world.Vec3{X: 1, Y: 2, Z: 3}}
	assert.Equal(t, world.Vec3{X: 1, Y: 2, Z: 3}, f.Position(grid.Cell{}))
	assert.Equal(t, world.Vec3{X: 13, Y: 2, Z: 9}, f.Position(grid.Cell{X: 4, Y: 2}))
}

func TestPosition_CenteredFrame(t *testing.T) {
	f := world.Frame{CellSize: 2, Centered: true, Width: 4, Height: 2}
	// The grid spans [-4,4] × [-2,2]; cell centres sit one unit in.
	assert.Equal(t, world.Vec3{X: -3, Z: -1}, f.Position(grid.Cell{X: 0, Y: 0}))
	assert.Equal(t, world.Vec3{X: 3, Z: 1}, f.Position(grid.Cell{X: 3, Y: 1}))
}

func TestSpawnPosition(t *testing.T) {
	f := world.Frame{CellSize: 1}
	sp := placement.Spawn{Cell: grid.Cell{X: 2, Y: 5}, JitterX: 0.25, JitterZ: -0.25}
	assert.Equal(t, world.Vec3{X: 2.25, Z: 4.75}, f.SpawnPosition(sp))
}

func TestWalls_SingleCell(t *testing.T) {
	g, err := grid.FromRows(
		"###",
		"#.#",
		"###",
	)
	require.NoError(t, err)

	walls := world.Frame{CellSize: 2}.Walls(g)
	require.Len(t, walls, 4)

	want := []world.Wall{
		{Cell: grid.Cell{X: 1, Y: 1}, Side: grid.North, Position: world.Vec3{X: 2, Z: 3}, Yaw: 0},
		{Cell: grid.Cell{X: 1, Y: 1}, Side: grid.East, Position: world.Vec3{X: 3, Z: 2}, Yaw: 90},
		{Cell: grid.Cell{X: 1, Y: 1}, Side: grid.South, Position: world.Vec3{X: 2, Z: 1}, Yaw: 0},
		{Cell: grid.Cell{X: 1, Y: 1}, Side: grid.West, Position: world.Vec3{X: 1, Z: 2}, Yaw: 90},
	}
	assert.Equal(t, want, walls)
}

func TestWalls_Corridor(t *testing.T) {
	g, err := grid.FromRows(
		"#####",
		"#...#",
		"#####",
	)
	require.NoError(t, err)
	// Three cells: two sides each along the length plus the two ends.
	assert.Len(t, world.Frame{CellSize: 1}.Walls(g), 8)
}

func TestForSnapshot(t *testing.T) {
	cfg := level.DefaultConfig().WithSeed(1)
	cfg.Width, cfg.Height, cfg.CellSize = 30, 20, 2.5
	snap, err := level.Generate(cfg, level.WithLogger(log.New(io.Discard, "", 0)))
	require.NoError(t, err)

	f := world.ForSnapshot(snap, world.Vec3{}, true)
	assert.Equal(t, 2.5, f.CellSize)
	assert.Equal(t, 30, f.Width)
	assert.Equal(t, 20, f.Height)

	walls := f.Walls(snap.Grid())
	assert.Len(t, walls, len(snap.Grid().WallEdges()))
	assert.NotEmpty(t, walls)
}
