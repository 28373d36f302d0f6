package sched

import "fmt"

// Config describes the simulated disk geometry and the time scale used to
// derive throughput.
type Config struct {
	MinTrack         int     // lowest addressable track, inclusive
	MaxTrack         int     // highest addressable track, inclusive
	SeekTimePerTrack float64 // time units spent crossing one track
}

// DefaultConfig returns the textbook 200-track disk with a unit time scale.
func DefaultConfig() Config {
	return Config{
		MinTrack:         0,
		MaxTrack:         199,
		SeekTimePerTrack: 1.0,
	}
}

// Validate checks that the geometry is usable. The engine itself assumes a
// valid Config; callers building custom geometries should validate first.
func (c Config) Validate() error {
	if c.MinTrack < 0 {
		return fmt.Errorf("min track must not be negative, got %d", c.MinTrack)
	}
	if c.MinTrack >= c.MaxTrack {
		return fmt.Errorf("min track %d must be below max track %d", c.MinTrack, c.MaxTrack)
	}
	if c.SeekTimePerTrack <= 0 {
		return fmt.Errorf("seek time per track must be positive, got %g", c.SeekTimePerTrack)
	}
	return nil
}

// Contains reports whether track lies on the disk.
func (c Config) Contains(track int) bool {
	return track >= c.MinTrack && track <= c.MaxTrack
}
