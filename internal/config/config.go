// Package config loads the dicebox server configuration from a YAML file,
// falling back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pefman/dicebox/internal/engine"
)

// Config is the structure of dicebox.yaml.
type Config struct {
	Listen string     `yaml:"listen"`
	TickHz float64    `yaml:"tick_hz"`
	Dice   DiceConfig `yaml:"dice"`
	Settle Settle     `yaml:"settle"`
	Force  Range      `yaml:"force"`
	Torque Range      `yaml:"torque"`
}

// DiceConfig describes the dice set the server hosts.
type DiceConfig struct {
	Count      int     `yaml:"count"`
	HalfExtent float64 `yaml:"half_extent"`
	Mass       float64 `yaml:"mass"`
	// Faces optionally overrides the conventional 1..6 layout. Keys are the
	// face names (forward, up, left, right, down, back); values need not be
	// 1..6 but must be distinct.
	Faces map[string]int `yaml:"faces"`
}

// Settle tunes roll-end detection.
type Settle struct {
	Policy           string  `yaml:"policy"` // "delta" or "sleep"
	LinearThreshold  float64 `yaml:"linear_threshold"`
	AngularThreshold float64 `yaml:"angular_threshold"`
}

// Range is a component-wise uniform range for default impulses.
type Range struct {
	Min [3]float64 `yaml:"min"`
	Max [3]float64 `yaml:"max"`
}

// Default returns the configuration used when no file is present: three
// conventional dice on a 60Hz step with delta settle detection.
func Default() Config {
	sc := engine.DefaultSettleConfig()
	ir := engine.DefaultImpulseRange()
	return Config{
		Listen: ":8081",
		TickHz: 60,
		Dice:   DiceConfig{Count: 3, HalfExtent: 0.5, Mass: 1},
		Settle: Settle{
			Policy:           "delta",
			LinearThreshold:  sc.LinearThreshold,
			AngularThreshold: sc.AngularThreshold,
		},
		Force:  Range{Min: ir.MinForce, Max: ir.MaxForce},
		Torque: Range{Min: ir.MinTorque, Max: ir.MaxTorque},
	}
}

// Load reads a YAML config from path. A missing file is not an error: the
// defaults apply, so a bare `dicebox` run works out of the box.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Dice.Count < 1 {
		return cfg, fmt.Errorf("config %s: dice count must be at least 1", path)
	}
	if cfg.TickHz <= 0 {
		return cfg, fmt.Errorf("config %s: tick_hz must be positive", path)
	}
	return cfg, nil
}

// SettleConfig converts the settle section to engine terms.
func (c Config) SettleConfig() (engine.SettleConfig, error) {
	sc := engine.SettleConfig{
		LinearThreshold:  c.Settle.LinearThreshold,
		AngularThreshold: c.Settle.AngularThreshold,
	}
	switch strings.ToLower(c.Settle.Policy) {
	case "", "delta":
		sc.Policy = engine.SettleByDelta
	case "sleep":
		sc.Policy = engine.SettleBySleep
	default:
		return sc, fmt.Errorf("unknown settle policy %q", c.Settle.Policy)
	}
	return sc, nil
}

// ImpulseRange converts the force/torque sections to engine terms.
func (c Config) ImpulseRange() engine.ImpulseRange {
	return engine.ImpulseRange{
		MinForce:  c.Force.Min,
		MaxForce:  c.Force.Max,
		MinTorque: c.Torque.Min,
		MaxTorque: c.Torque.Max,
	}
}

// FaceValues resolves the configured face table, defaulting to the
// conventional layout when the faces section is empty.
func (c Config) FaceValues() (map[engine.Face]int, error) {
	if len(c.Dice.Faces) == 0 {
		return engine.DefaultFaceValues(), nil
	}
	names := map[string]engine.Face{
		"forward": engine.FaceForward,
		"up":      engine.FaceUp,
		"left":    engine.FaceLeft,
		"right":   engine.FaceRight,
		"down":    engine.FaceDown,
		"back":    engine.FaceBack,
	}
	out := make(map[engine.Face]int, len(c.Dice.Faces))
	for name, v := range c.Dice.Faces {
		f, ok := names[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown face name %q", name)
		}
		out[f] = v
	}
	return out, nil
}
