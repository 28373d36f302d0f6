package sched

import (
	"fmt"
	"strings"
)

// Algorithm identifies a disk scheduling policy.
type Algorithm string

const (
	FCFS  Algorithm = "FCFS"   // first-come, first-served
	SSTF  Algorithm = "SSTF"   // shortest seek time first
	SCAN  Algorithm = "SCAN"   // elevator
	CSCAN Algorithm = "C-SCAN" // circular scan
)

// Algorithms returns the supported algorithms in canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{FCFS, SSTF, SCAN, CSCAN}
}

// String returns the string representation of the algorithm.
func (a Algorithm) String() string {
	return string(a)
}

// Directional returns true if the sweep direction changes the outcome.
// FCFS and SSTF ignore direction entirely.
func (a Algorithm) Directional() bool {
	return a == SCAN || a == CSCAN
}

// Description returns a one-line summary used by listings.
func (a Algorithm) Description() string {
	switch a {
	case FCFS:
		return "services requests strictly in arrival order"
	case SSTF:
		return "always services the request closest to the head"
	case SCAN:
		return "sweeps to one disk edge, then reverses and sweeps back"
	case CSCAN:
		return "sweeps to one disk edge, wraps to the other, and keeps sweeping"
	}
	return ""
}

// ParseAlgorithm resolves a user-supplied algorithm name. Matching is
// case-insensitive and accepts the hyphen-free "CSCAN" spelling.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FCFS":
		return FCFS, nil
	case "SSTF":
		return SSTF, nil
	case "SCAN":
		return SCAN, nil
	case "C-SCAN", "CSCAN":
		return CSCAN, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Direction selects which disk edge a SCAN or C-SCAN sweep heads toward
// first.
type Direction string

const (
	Up   Direction = "UP"   // toward MaxTrack
	Down Direction = "DOWN" // toward MinTrack
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	return string(d)
}

// ParseDirection resolves a user-supplied direction. The empty string maps
// to Up, the simulator's historical default.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "UP":
		return Up, nil
	case "DOWN":
		return Down, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// normalize collapses anything that is not Down to Up, so the engine treats
// unset directions as upward sweeps. Strict checking of raw input happens in
// ParseDirection before the engine is involved.
func (d Direction) normalize() Direction {
	if d == Down {
		return Down
	}
	return Up
}
