// Package config loads server settings from the environment and world
// tuning from an optional yaml file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Server holds process-level settings read from the environment.
type Server struct {
	Port      string
	StaticDir string
	WorldPath string
}

// LoadServer reads server settings, falling back to defaults when unset.
func LoadServer() Server {
	s := Server{
		Port:      os.Getenv("PORT"),
		StaticDir: os.Getenv("STATIC_DIR"),
		WorldPath: os.Getenv("WORLD_CONFIG"),
	}
	if s.Port == "" {
		s.Port = "8080"
	}
	if s.StaticDir == "" {
		s.StaticDir = "./static"
	}
	return s
}

// Topology selects how the world edge behaves. A world is either
// toroidal (coordinates wrap) or walled (crossing the edge is death),
// never both.
type Topology string

const (
	TopologyWrap  Topology = "wrap"
	TopologyWalls Topology = "walls"
)

// World holds the tunable simulation parameters. The tick interval is
// written as whole milliseconds in the yaml file (tick_ms) and carried
// as a time.Duration everywhere else.
type World struct {
	Width          float64  `yaml:"width"`
	Height         float64  `yaml:"height"`
	TickMS         int      `yaml:"tick_ms"`
	TargetFood     int      `yaml:"target_food"`
	Topology       Topology `yaml:"topology"`
	Seed           int64    `yaml:"seed"`
	SnapshotEvery  int      `yaml:"snapshot_every"`
	LeaderboardTop int      `yaml:"leaderboard_top"`

	TickInterval time.Duration `yaml:"-"`
}

// DefaultWorld returns the tuning used when no yaml file is provided.
func DefaultWorld() World {
	return World{
		Width:          4000,
		Height:         4000,
		TickInterval:   16 * time.Millisecond,
		TargetFood:     300,
		Topology:       TopologyWrap,
		Seed:           0, // 0 = seed from wall clock
		SnapshotEvery:  1,
		LeaderboardTop: 10,
	}
}

// LoadWorld reads world tuning from path, layered over the defaults.
// An empty path returns the defaults unchanged.
func LoadWorld(path string) (World, error) {
	w := DefaultWorld()
	if path == "" {
		return w, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read world config: %w", err)
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return w, fmt.Errorf("parse world config: %w", err)
	}
	if w.TickMS > 0 {
		w.TickInterval = time.Duration(w.TickMS) * time.Millisecond
	}
	if err := w.Validate(); err != nil {
		return w, err
	}
	return w, nil
}

// Validate rejects tunings the simulation cannot run with.
func (w World) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %gx%g", w.Width, w.Height)
	}
	if w.TickMS < 0 {
		return fmt.Errorf("tick_ms must be positive, got %d", w.TickMS)
	}
	if w.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", w.TickInterval)
	}
	if w.TargetFood < 0 {
		return fmt.Errorf("target food must be non-negative, got %d", w.TargetFood)
	}
	switch w.Topology {
	case TopologyWrap, TopologyWalls:
	default:
		return fmt.Errorf("unknown topology %q", w.Topology)
	}
	return nil
}
