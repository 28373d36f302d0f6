package config

import "github.com/me/seeksim/pkg/sched"

// ServerConfig holds configuration for the seeksim server.
type ServerConfig struct {
	Addr             string  // Listen address (default ":8080")
	LogLevel         string  // Log level: debug, info, warn, error
	LogFormat        string  // Log format: text, json
	MinTrack         int     // Innermost track of the simulated disk
	MaxTrack         int     // Outermost track of the simulated disk
	SeekTimePerTrack float64 // Time units to cross one track
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	geo := sched.DefaultConfig()
	return ServerConfig{
		Addr:             ":8080",
		LogLevel:         "info",
		LogFormat:        "text",
		MinTrack:         geo.MinTrack,
		MaxTrack:         geo.MaxTrack,
		SeekTimePerTrack: geo.SeekTimePerTrack,
	}
}

// Geometry returns the disk geometry portion of the config.
func (c ServerConfig) Geometry() sched.Config {
	return sched.Config{
		MinTrack:         c.MinTrack,
		MaxTrack:         c.MaxTrack,
		SeekTimePerTrack: c.SeekTimePerTrack,
	}
}
