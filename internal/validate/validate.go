// Package validate rejects malformed simulation inputs before they reach the
// scheduling engine. The CLI and the API server share it, so both surfaces
// enforce the same rules and report the same messages.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/me/seeksim/pkg/model"
	"github.com/me/seeksim/pkg/sched"
)

// ParseTrackList parses a comma-separated list of track numbers, the input
// format the interactive simulator always used. Blank entries are skipped;
// anything else that is not an integer is rejected with the offending token.
func ParseTrackList(s string) ([]int, error) {
	var tracks []int
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("track %q is not a valid integer", tok)
		}
		tracks = append(tracks, n)
	}
	return tracks, nil
}

// TrackList checks that the request list is non-empty and that every track
// lies on the disk described by cfg.
func TrackList(tracks []int, cfg sched.Config) error {
	if len(tracks) == 0 {
		return fmt.Errorf("request list cannot be empty")
	}
	for _, t := range tracks {
		if !cfg.Contains(t) {
			return fmt.Errorf("track %d is outside the valid range [%d-%d]", t, cfg.MinTrack, cfg.MaxTrack)
		}
	}
	return nil
}

// Head checks that the initial head position lies on the disk.
func Head(head int, cfg sched.Config) error {
	if !cfg.Contains(head) {
		return fmt.Errorf("head position %d must be between %d and %d", head, cfg.MinTrack, cfg.MaxTrack)
	}
	return nil
}

// Request validates a whole simulation request against def, the caller's
// default disk geometry, resolving a per-request geometry override when one
// is present. It returns the geometry the run should use, or a
// VALIDATION_ERROR carrying one detail per offending field.
//
// The algorithm name is deliberately not checked here: resolving it is the
// engine boundary's job, and a failure there is an UNKNOWN_ALGORITHM error,
// not an invalid-input error.
func Request(req *model.SimulationRequest, def sched.Config) (sched.Config, *model.APIError) {
	cfg := def
	if req.Geometry != nil {
		cfg = req.Geometry.Config()
		if err := cfg.Validate(); err != nil {
			// Range checks against a broken geometry would only mislead.
			return def, model.NewValidationError("invalid simulation input",
				model.FieldError{Field: "geometry", Message: err.Error()})
		}
	}

	var fields []model.FieldError
	if _, err := sched.ParseDirection(req.Direction); err != nil {
		fields = append(fields, model.FieldError{Field: "direction", Message: err.Error()})
	}
	if err := Head(req.Head, cfg); err != nil {
		fields = append(fields, model.FieldError{Field: "head", Message: err.Error()})
	}
	if err := TrackList(req.Requests, cfg); err != nil {
		fields = append(fields, model.FieldError{Field: "requests", Message: err.Error()})
	}
	if len(fields) > 0 {
		return cfg, model.NewValidationError("invalid simulation input", fields...)
	}
	return cfg, nil
}
