package config

import (
	_ "embed"
)

//go:embed defaults/tetrion.yaml
var defaultTetrionYAML []byte

// DefaultConfig returns the default guideline-style configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Width:      10,
			Height:     20,
			BufferRows: 2,
		},
		Timing: TimingConfig{
			LockDelayMS:   500,
			MaxLockResets: 15,
			SpawnDelayMS:  500,
		},
		Queue: QueueConfig{
			Preview: 5,
		},
		Pieces:     []string{"I", "J", "L", "O", "S", "T", "Z"},
		StartLevel: 0,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrionYAML
}
