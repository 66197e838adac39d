package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI's board, tileset and output configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Tileset string        `yaml:"tileset"` // "checkerboard", "terrain", or "dungeon"
	Seed    int64         `yaml:"seed"`    // 0 = random seed based on time
	Output  OutputConfig  `yaml:"output"`
	Serve   ServeConfig   `yaml:"serve"`
	Dungeon DungeonConfig `yaml:"dungeon"`
}

// BoardConfig holds the board dimensions. Width and Length are passed to
// the tileset's board constructor; Height is not read by any tileset,
// since each one fixes its own layer count.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Length int `yaml:"length"`
	Height int `yaml:"height"`
}

// OutputConfig controls where and how a generated board is written.
type OutputConfig struct {
	// Path is the file a generated board is written to. Empty means stdout.
	Path string `yaml:"path"`
	// Format is "ascii" or "yaml" (dungeon tileset only).
	Format string `yaml:"format"`
}

// ServeConfig holds settings for the `serve` subcommand's websocket feed.
type ServeConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
	// AllowedOrigins mirrors a same-origin-by-default websocket policy.
	// Empty enforces same-origin; "*" allows any origin.
	AllowedOrigins []string `yaml:"allowed_origins"`
	// StepIntervalMS is the delay between Generate1 steps while serving,
	// so a connected viewer can watch cells resolve instead of receiving
	// one final snapshot.
	StepIntervalMS int `yaml:"step_interval_ms"`
}

// DungeonConfig holds parameters specific to the dungeon tileset's
// per-floor retry generator.
type DungeonConfig struct {
	FloorNumber   int  `yaml:"floor_number"`
	TowerSeed     int64 `yaml:"tower_seed"`
	TreasureCount int  `yaml:"treasure_count"`
	BossFloor     bool `yaml:"boss_floor"`
}

// DefaultConfig returns a Config with reasonable defaults for a single
// 2D checkerboard board.
func DefaultConfig() *Config {
	return &Config{
		Board: BoardConfig{
			Width:  10,
			Length: 10,
			Height: 1,
		},
		Tileset: "checkerboard",
		Seed:    0,
		Output: OutputConfig{
			Path:   "",
			Format: "ascii",
		},
		Serve: ServeConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{},
			StepIntervalMS: 50,
		},
		Dungeon: DungeonConfig{
			FloorNumber:   1,
			TowerSeed:     0,
			TreasureCount: 1,
			BossFloor:     false,
		},
	}
}

// LoadConfig loads configuration from a YAML file, merging over the
// defaults. If the file doesn't exist, the defaults are returned as-is.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return config, nil
}

// IsOriginAllowed reports whether origin may open a websocket connection,
// given the request's Host header for a same-origin fallback.
func (c *ServeConfig) IsOriginAllowed(origin, requestHost string) bool {
	if len(c.AllowedOrigins) == 0 {
		return isSameOrigin(origin, requestHost)
	}
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

func isSameOrigin(origin, requestHost string) bool {
	if origin == "" {
		return true
	}
	host := origin
	for i := 0; i+2 < len(host); i++ {
		if host[i] == ':' && host[i+1] == '/' && host[i+2] == '/' {
			host = host[i+3:]
			break
		}
	}
	for len(host) > 0 && host[len(host)-1] == '/' {
		host = host[:len(host)-1]
	}
	return host == requestHost
}
