// Package config provides YAML-based game configuration loading for the
// Tetrion engine.
package config

// GameConfig contains all tunable parameters for a Tetrion session.
type GameConfig struct {
	Board      BoardConfig  `yaml:"board"`
	Timing     TimingConfig `yaml:"timing"`
	Queue      QueueConfig  `yaml:"queue"`
	Pieces     []string     `yaml:"pieces"`
	StartLevel int          `yaml:"start_level"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	BufferRows int `yaml:"buffer_rows"`
}

// TimingConfig defines lock and spawn timing in milliseconds.
type TimingConfig struct {
	LockDelayMS   int `yaml:"lock_delay_ms"`
	MaxLockResets int `yaml:"max_lock_resets"`
	SpawnDelayMS  int `yaml:"spawn_delay_ms"`
}

// QueueConfig defines the next-piece preview.
type QueueConfig struct {
	Preview int `yaml:"preview"`
}
