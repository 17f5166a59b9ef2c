// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// MinRadius is the smallest radius a randomly spawned ball can have.
const MinRadius = 5.0

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Arena     ArenaConfig     `yaml:"arena"`
	Balls     BallsConfig     `yaml:"balls"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Gravity   GravityConfig   `yaml:"gravity"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// ArenaConfig holds the arena extents. The window is sized to match.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BallsConfig holds population and spawn bounds.
type BallsConfig struct {
	Count       int     `yaml:"count"`
	MaxRadius   float64 `yaml:"max_radius"`   // exclusive upper bound, lower bound is MinRadius
	MaxVelocity float64 `yaml:"max_velocity"` // per component
}

// PhysicsConfig holds per-tick physics parameters.
type PhysicsConfig struct {
	AirResistance      float64 `yaml:"air_resistance"`      // velocity decay fraction per tick
	DampingWall        float64 `yaml:"damping_wall"`        // energy loss on wall impact
	DampingBall        float64 `yaml:"damping_ball"`        // energy loss on ball impact
	CollisionTolerance float64 `yaml:"collision_tolerance"` // widens the colliding test
}

// GravityConfig holds the initial gravity and the magnitude a toggle applies.
type GravityConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Step float64 `yaml:"step"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // ticks per stats window
	PerfWindow  int `yaml:"perf_window"`  // ticks in the rolling perf window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WidthF  float64 // Arena.Width as float64
	HeightF float64 // Arena.Height as float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate checks the invariants the physics relies on. A maximally sized
// ball must fit inside the arena on both axes.
func (c *Config) Validate() error {
	var errs []error

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena must be positive, got %dx%d", c.Arena.Width, c.Arena.Height))
	}
	if c.Balls.Count < 0 {
		errs = append(errs, fmt.Errorf("balls.count must be >= 0, got %d", c.Balls.Count))
	}
	if c.Balls.MaxRadius <= MinRadius {
		errs = append(errs, fmt.Errorf("balls.max_radius must be > %g, got %g", MinRadius, c.Balls.MaxRadius))
	}
	if 2*c.Balls.MaxRadius >= float64(min(c.Arena.Width, c.Arena.Height)) {
		errs = append(errs, fmt.Errorf("balls.max_radius %g does not fit arena %dx%d", c.Balls.MaxRadius, c.Arena.Width, c.Arena.Height))
	}
	if c.Balls.MaxVelocity <= 0 {
		errs = append(errs, fmt.Errorf("balls.max_velocity must be > 0, got %g", c.Balls.MaxVelocity))
	}
	if c.Physics.AirResistance < 0 || c.Physics.AirResistance >= 1 {
		errs = append(errs, fmt.Errorf("physics.air_resistance must be in [0,1), got %g", c.Physics.AirResistance))
	}
	if c.Physics.DampingWall < 0 || c.Physics.DampingWall > 1 {
		errs = append(errs, fmt.Errorf("physics.damping_wall must be in [0,1], got %g", c.Physics.DampingWall))
	}
	if c.Physics.DampingBall < 0 || c.Physics.DampingBall > 1 {
		errs = append(errs, fmt.Errorf("physics.damping_ball must be in [0,1], got %g", c.Physics.DampingBall))
	}
	if c.Physics.CollisionTolerance < 0 {
		errs = append(errs, fmt.Errorf("physics.collision_tolerance must be >= 0, got %g", c.Physics.CollisionTolerance))
	}
	if c.Gravity.Step <= 0 {
		errs = append(errs, fmt.Errorf("gravity.step must be > 0, got %g", c.Gravity.Step))
	}

	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.WidthF = float64(c.Arena.Width)
	c.Derived.HeightF = float64(c.Arena.Height)

	if c.Screen.TargetFPS <= 0 {
		c.Screen.TargetFPS = 60
	}
	if c.Telemetry.StatsWindow <= 0 {
		c.Telemetry.StatsWindow = c.Screen.TargetFPS
	}
	if c.Telemetry.PerfWindow <= 0 {
		c.Telemetry.PerfWindow = c.Screen.TargetFPS
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
