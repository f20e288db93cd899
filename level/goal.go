package level

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roguemaze/grid"
)

// ErrNoRoom is returned when a room index is out of range or no room can be
// reached.
var ErrNoRoom = errors.New("level: no such room")

// RoomAnchor returns the cell that stands for room i in distance queries:
// its centre when passable, otherwise its first floor cell in row-major
// order. Mini-maze rooms can wall over their centre; their outer ring is
// always floor.
func (s *Snapshot) RoomAnchor(i int) (grid.Cell, error) {
	if i < 0 || i >= len(s.rooms) {
		return grid.Cell{}, fmt.Errorf("%w: %d", ErrNoRoom, i)
	}
	r := s.rooms[i]
	if c := r.Center(); s.grid.IsPassable(c) {
		return c, nil
	}
	for y := r.MinY(); y < r.MaxY(); y++ {
		for x := r.MinX(); x < r.MaxX(); x++ {
			if s.grid.Passable(x, y) {
				return grid.Cell{X: x, Y: y}, nil
			}
		}
	}

	return grid.Cell{}, fmt.Errorf("%w: room %d has no floor", ErrNoRoom, i)
}

// FarthestRoom returns the room whose anchor is farthest, in BFS steps,
// from the floor cell from, together with that distance. Ties go to the
// lower room index. A typical goal room is FarthestRoom(s, s.Start()).
func FarthestRoom(s *Snapshot, from grid.Cell) (room, dist int, err error) {
	res, err := grid.BFS(s.grid, from)
	if err != nil {
		return -1, 0, fmt.Errorf("level: farthest room: %w", err)
	}

	room, dist = -1, -1
	for i := range s.rooms {
		a, err := s.RoomAnchor(i)
		if err != nil {
			continue
		}
		if d := res.Depth(a); d > dist {
			room, dist = i, d
		}
	}
	if room < 0 {
		return -1, 0, fmt.Errorf("%w: none reachable from %v", ErrNoRoom, from)
	}

	return room, dist, nil
}
