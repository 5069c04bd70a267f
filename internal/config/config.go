// Package config provides configuration loading and management for taskstack.
package config

import (
	"github.com/metalagman/taskstack/internal/tracker"
)

// Store drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Table renderers.
const (
	TableBox      = "box"
	TableMarkdown = "markdown"
)

// Config is the root configuration.
type Config struct {
	Store  StoreConfig  `json:"store"  mapstructure:"store"  yaml:"store"`
	Urgent UrgentConfig `json:"urgent" mapstructure:"urgent" yaml:"urgent"`
	Render RenderConfig `json:"render" mapstructure:"render" yaml:"render"`
	Log    LogConfig    `json:"log"    mapstructure:"log"    yaml:"log"`
}

// StoreConfig selects the task backend. Both drivers keep data in memory.
type StoreConfig struct {
	Driver string `json:"driver" mapstructure:"driver" yaml:"driver"`
}

// UrgentConfig configures the urgent stack.
type UrgentConfig struct {
	Duplicates tracker.DuplicatePolicy `json:"duplicates" mapstructure:"duplicates" yaml:"duplicates"`
}

// RenderConfig controls how the task table is printed.
type RenderConfig struct {
	Table string `json:"table" mapstructure:"table" yaml:"table"`
	Style string `json:"style" mapstructure:"style" yaml:"style"`
}

// LogConfig sets the log level when --debug is not given.
type LogConfig struct {
	Level string `json:"level" mapstructure:"level" yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Store:  StoreConfig{Driver: DriverMemory},
		Urgent: UrgentConfig{Duplicates: tracker.DuplicatesAllow},
		Render: RenderConfig{Table: TableBox, Style: "notty"},
		Log:    LogConfig{Level: "info"},
	}
}
