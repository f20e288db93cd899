package level

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults of a level.
const (
	DefaultWidth            = 80
	DefaultHeight           = 60
	DefaultCellSize         = 3.0
	DefaultMaxRoomAttempts  = 60
	DefaultMaxRooms         = 12
	DefaultRoomMinW         = 6
	DefaultRoomMinH         = 6
	DefaultRoomMaxW         = 14
	DefaultRoomMaxH         = 12
	DefaultNeighbors        = 3
	DefaultExtraConnections = 3
	DefaultMazeRoomRatio    = 0.5
	DefaultMazeGridStep     = 2
	DefaultTrapProbability  = 0.08
	DefaultTrapSafeRadius   = 2
	DefaultTotalEnemies     = 8
	DefaultEnemyKinds       = 1
	DefaultSeed             = 12345
)

// Lower bounds enforced by Clamp.
const (
	minGridSide    = 10
	minRoomSide    = 3
	minMazeStep    = 2
	maxJitterShare = 0.45 // of CellSize
)

// Config holds the inputs of one generation run.
type Config struct {
	Width    int     `yaml:"width" json:"width"`
	Height   int     `yaml:"height" json:"height"`
	CellSize float64 `yaml:"cellSize" json:"cellSize"`

	MaxRoomAttempts int `yaml:"maxRoomAttempts" json:"maxRoomAttempts"`
	MaxRooms        int `yaml:"maxRooms" json:"maxRooms"`
	RoomMinW        int `yaml:"roomMinW" json:"roomMinW"`
	RoomMinH        int `yaml:"roomMinH" json:"roomMinH"`
	RoomMaxW        int `yaml:"roomMaxW" json:"roomMaxW"`
	RoomMaxH        int `yaml:"roomMaxH" json:"roomMaxH"`

	Neighbors        int `yaml:"neighbors" json:"neighbors"`
	ExtraConnections int `yaml:"extraConnections" json:"extraConnections"`

	MazeRoomRatio float64 `yaml:"mazeRoomRatio" json:"mazeRoomRatio"`
	MazeGridStep  int     `yaml:"mazeGridStep" json:"mazeGridStep"`

	TrapProbability float64 `yaml:"trapProbability" json:"trapProbability"`
	TrapSafeRadius  int     `yaml:"trapSafeRadius" json:"trapSafeRadius"`

	TotalEnemies     int     `yaml:"totalEnemies" json:"totalEnemies"`
	EnemyKinds       int     `yaml:"enemyKinds" json:"enemyKinds"`
	EnemyJitter      float64 `yaml:"enemyJitter" json:"enemyJitter"`
	SpawnMinDistance int     `yaml:"spawnMinDistance" json:"spawnMinDistance"`
	SpawnSeparation  int     `yaml:"spawnSeparation" json:"spawnSeparation"`
	AvoidTraps       bool    `yaml:"avoidTraps" json:"avoidTraps"`

	// FixedSeed selects Seed; otherwise every run draws a fresh seed.
	FixedSeed bool  `yaml:"fixedSeed" json:"fixedSeed"`
	Seed      int32 `yaml:"seed" json:"seed"`
}

// DefaultConfig returns the classic 80×60 layout with a random seed.
func DefaultConfig() Config {
	return Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		CellSize:         DefaultCellSize,
		MaxRoomAttempts:  DefaultMaxRoomAttempts,
		MaxRooms:         DefaultMaxRooms,
		RoomMinW:         DefaultRoomMinW,
		RoomMinH:         DefaultRoomMinH,
		RoomMaxW:         DefaultRoomMaxW,
		RoomMaxH:         DefaultRoomMaxH,
		Neighbors:        DefaultNeighbors,
		ExtraConnections: DefaultExtraConnections,
		MazeRoomRatio:    DefaultMazeRoomRatio,
		MazeGridStep:     DefaultMazeGridStep,
		TrapProbability:  DefaultTrapProbability,
		TrapSafeRadius:   DefaultTrapSafeRadius,
		TotalEnemies:     DefaultTotalEnemies,
		EnemyKinds:       DefaultEnemyKinds,
		AvoidTraps:       true,
		Seed:             DefaultSeed,
	}
}

// WithSeed returns a copy of c pinned to seed.
func (c Config) WithSeed(seed int32) Config {
	c.FixedSeed, c.Seed = true, seed
	return c
}

// Clamp returns c with every field forced into its valid range. Inverted
// room bounds are put back in order rather than rejected.
func (c Config) Clamp() Config {
	c.Width = max(c.Width, minGridSide)
	c.Height = max(c.Height, minGridSide)
	if !(c.CellSize > 0) || math.IsInf(c.CellSize, 0) {
		c.CellSize = 1
	}

	c.RoomMinW = clampInt(c.RoomMinW, minRoomSide, max(minRoomSide, c.RoomMaxW))
	c.RoomMinH = clampInt(c.RoomMinH, minRoomSide, max(minRoomSide, c.RoomMaxH))
	c.RoomMaxW = max(c.RoomMaxW, c.RoomMinW)
	c.RoomMaxH = max(c.RoomMaxH, c.RoomMinH)
	c.MaxRooms = max(c.MaxRooms, 1)
	c.MaxRoomAttempts = max(c.MaxRoomAttempts, c.MaxRooms)

	c.Neighbors = max(c.Neighbors, 1)
	c.ExtraConnections = max(c.ExtraConnections, 0)

	c.MazeRoomRatio = clamp01(c.MazeRoomRatio)
	c.MazeGridStep = max(c.MazeGridStep, minMazeStep)

	c.TrapProbability = clamp01(c.TrapProbability)
	c.TrapSafeRadius = max(c.TrapSafeRadius, 0)

	c.TotalEnemies = max(c.TotalEnemies, 0)
	c.EnemyKinds = max(c.EnemyKinds, 1)
	c.SpawnMinDistance = max(c.SpawnMinDistance, 0)
	c.SpawnSeparation = max(c.SpawnSeparation, 0)
	if math.IsNaN(c.EnemyJitter) {
		c.EnemyJitter = 0
	}
	c.EnemyJitter = math.Min(math.Max(c.EnemyJitter, 0), maxJitterShare*c.CellSize)

	return c
}

// ParseConfig decodes YAML over DefaultConfig, so omitted keys keep their
// defaults. The result is not clamped.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return ParseConfig(data)
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clamp01(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}

	return math.Min(math.Max(p, 0), 1)
}
