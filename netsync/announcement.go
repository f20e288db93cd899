package netsync

import "github.com/katalvlaran/roguemaze/level"

// Announcement names one level: its index, seed and configuration.
type Announcement struct {
	Level  int          `json:"level"`
	Seed   int32        `json:"seed"`
	Config level.Config `json:"config"`
}

// NewAnnouncement describes s.
func NewAnnouncement(s *level.Snapshot) Announcement {
	return Announcement{Level: s.Level(), Seed: s.Seed(), Config: s.Config()}
}

// Generate builds the announced level locally.
func (a Announcement) Generate(opts ...level.Option) (*level.Snapshot, error) {
	opts = append(append([]level.Option(nil), opts...), level.WithLevel(a.Level))

	return level.Generate(a.Config.WithSeed(a.Seed), opts...)
}
