// Package config provides configuration loading and access for the
// simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/calder-hay/plenia/components"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Creature  CreatureConfig  `yaml:"creature"`
	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds scene-construction parameters. Creature and particle
// counts are fixed at startup; nothing is spawned or destroyed during a
// run.
type WorldConfig struct {
	Creatures       int     `yaml:"creatures"`        // Number of independent creatures
	Particles       int     `yaml:"particles"`        // Particles per creature
	SpawnRadius     float64 `yaml:"spawn_radius"`     // Disc radius for initial positions
	CreatureSpacing float64 `yaml:"creature_spacing"` // Distance between creature centers
}

// PhysicsConfig holds integration parameters.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"` // Euler step size
}

// CreatureConfig holds the kernel parameters shared by every particle of
// a creature. Immutable for the run.
type CreatureConfig struct {
	MuK    float64 `yaml:"mu_k"`    // Attraction kernel center
	SigmaK float64 `yaml:"sigma_k"` // Attraction kernel width
	WK     float64 `yaml:"w_k"`     // Attraction kernel weight
	MuG    float64 `yaml:"mu_g"`    // Growth kernel center
	SigmaG float64 `yaml:"sigma_g"` // Growth kernel width
	CRep   float64 `yaml:"c_rep"`   // Repulsion strength
}

// RenderConfig holds presentation settings.
type RenderConfig struct {
	Zoom      float64 `yaml:"zoom"`       // Pixels per world unit
	MinRadius float64 `yaml:"min_radius"` // Particle marker clamp, world units
	MaxRadius float64 `yaml:"max_radius"`
}

// TelemetryConfig holds stats collection settings.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Window size in seconds of sim time
}

// DerivedConfig holds float32 copies of hot-path values, computed once
// after loading.
type DerivedConfig struct {
	DT32        float32
	Zoom32      float32
	MinRadius32 float32
	MaxRadius32 float32
}

var cfg *Config

// Init loads configuration from the embedded defaults, then overlays the
// YAML file at path if path is non-empty. Must be called before Cfg.
func Init(path string) error {
	c := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, c); err != nil {
		return fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return err
	}
	c.computeDerived()
	cfg = c
	return nil
}

// Cfg returns the loaded configuration. Panics if Init was not called.
func Cfg() *Config {
	if cfg == nil {
		panic("config.Cfg called before config.Init")
	}
	return cfg
}

func (c *Config) validate() error {
	if c.World.Creatures < 1 {
		return fmt.Errorf("world.creatures must be >= 1, got %d", c.World.Creatures)
	}
	if c.World.Particles < 1 {
		return fmt.Errorf("world.particles must be >= 1, got %d", c.World.Particles)
	}
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be > 0, got %g", c.Physics.DT)
	}
	if c.Creature.SigmaK == 0 || c.Creature.SigmaG == 0 {
		return fmt.Errorf("creature kernel widths must be non-zero")
	}
	if c.Creature.CRep < 0 {
		return fmt.Errorf("creature.c_rep must be >= 0, got %g", c.Creature.CRep)
	}
	if c.Render.Zoom <= 0 {
		return fmt.Errorf("render.zoom must be > 0, got %g", c.Render.Zoom)
	}
	return nil
}

func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.Zoom32 = float32(c.Render.Zoom)
	c.Derived.MinRadius32 = float32(c.Render.MinRadius)
	c.Derived.MaxRadius32 = float32(c.Render.MaxRadius)
}

// CreatureParams converts the configured kernel parameters to the
// component form used by the solver.
func (c *Config) CreatureParams() components.Params {
	return components.Params{
		MuK:    float32(c.Creature.MuK),
		SigmaK: float32(c.Creature.SigmaK),
		WK:     float32(c.Creature.WK),
		MuG:    float32(c.Creature.MuG),
		SigmaG: float32(c.Creature.SigmaG),
		CRep:   float32(c.Creature.CRep),
	}
}
