// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/opd-ai/go-thrust/pkg/physics"
)

// SimConfig contains configuration for a thrust simulation
type SimConfig struct {
	Start       StartConfig   `json:"start"`
	Levels      []LevelConfig `json:"levels"`
	TetherIndex int           `json:"tetherIndex"`
}

// StartConfig contains the initial ship placement
type StartConfig struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle int     `json:"angle"`
}

// LevelConfig contains per-level physics configuration
type LevelConfig struct {
	Name    string  `json:"name"`
	Gravity float64 `json:"gravity"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*SimConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SimConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *SimConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that a configuration describes a runnable
// simulation. The defaults always pass.
func (c *SimConfig) Validate() error {
	if len(c.Levels) != len(physics.DefaultGravityTable) {
		return fmt.Errorf("expected %d levels, got %d",
			len(physics.DefaultGravityTable), len(c.Levels))
	}
	for i, level := range c.Levels {
		if level.Gravity < 0 {
			return fmt.Errorf("level %d (%s): gravity must not be negative, got %f",
				i, level.Name, level.Gravity)
		}
	}
	if c.TetherIndex < 1 || c.TetherIndex > physics.DefaultTetherIndex {
		return fmt.Errorf("tetherIndex must be in [1,%d], got %d",
			physics.DefaultTetherIndex, c.TetherIndex)
	}
	return nil
}

// DefaultConfig returns a default simulation configuration with the
// canonical fixed-point gravity constants.
func DefaultConfig() *SimConfig {
	config := &SimConfig{
		Start: StartConfig{
			X:     100,
			Y:     100,
			Angle: 0,
		},
		TetherIndex: physics.DefaultTetherIndex,
	}
	names := []string{"Training", "Caverns", "Deep Caverns", "Reactor", "Core", "Escape"}
	for i, gravity := range physics.DefaultGravityTable {
		config.Levels = append(config.Levels, LevelConfig{
			Name:    names[i],
			Gravity: gravity,
		})
	}
	return config
}
