// Package config handles simulation configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Config holds all settings.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Rig        RigConfig        `yaml:"rig"`
	Combat     CombatConfig     `yaml:"combat"`
	Debug      DebugConfig      `yaml:"debug"`
	Record     RecordConfig     `yaml:"record"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig holds frame loop settings.
type SimulationConfig struct {
	Frames     int     `yaml:"frames"`     // 0 runs until interrupted
	TickRate   int     `yaml:"tick_rate"`  // Frames per simulated second
	Realtime   bool    `yaml:"realtime"`   // Sleep between frames
	Characters int     `yaml:"characters"` // Characters spawned at start
	Spacing    float32 `yaml:"spacing"`    // Distance between spawned characters
}

// RigConfig holds skeleton asset settings.
type RigConfig struct {
	Path  string `yaml:"path"`  // Empty uses the embedded biped
	Watch bool   `yaml:"watch"` // Reload the rig when the file changes
}

// CombatConfig holds shooter settings.
type CombatConfig struct {
	ShotInterval int     `yaml:"shot_interval"` // Frames between shots, 0 disables
	Range        float64 `yaml:"range"`
}

// DebugConfig holds debug visualization settings.
type DebugConfig struct {
	ShowCollisionBoxes bool `yaml:"show_collision_boxes"`
	DumpGizmos         bool `yaml:"dump_gizmos"` // Log gizmo counts each second
}

// RecordConfig holds snapshot recording settings.
type RecordConfig struct {
	Path string `yaml:"path"` // Empty disables recording
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// FrameDuration returns the simulated time of one frame.
func (s SimulationConfig) FrameDuration() time.Duration {
	if s.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(s.TickRate)
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	s := c.Simulation
	switch {
	case s.Frames < 0:
		return fmt.Errorf("simulation.frames must be >= 0, got %d", s.Frames)
	case s.TickRate < 0:
		return fmt.Errorf("simulation.tick_rate must be >= 0, got %d", s.TickRate)
	case s.Characters < 0:
		return fmt.Errorf("simulation.characters must be >= 0, got %d", s.Characters)
	case c.Combat.ShotInterval < 0:
		return fmt.Errorf("combat.shot_interval must be >= 0, got %d", c.Combat.ShotInterval)
	}
	return nil
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Frames:     600,
			TickRate:   60,
			Realtime:   false,
			Characters: 2,
			Spacing:    3,
		},
		Rig: RigConfig{
			Path:  "",
			Watch: false,
		},
		Combat: CombatConfig{
			ShotInterval: 30,
			Range:        100,
		},
		Debug: DebugConfig{
			ShowCollisionBoxes: false,
			DumpGizmos:         false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
