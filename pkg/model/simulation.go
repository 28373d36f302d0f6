package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/me/seeksim/pkg/sched"
)

// Geometry describes the simulated disk a run executes against. It mirrors
// sched.Config with the field names the API and scenario files use. An
// override must specify the whole geometry, including the time scale.
type Geometry struct {
	MinTrack         int     `json:"min_track"`
	MaxTrack         int     `json:"max_track"`
	SeekTimePerTrack float64 `json:"time_per_track"`
}

// DefaultGeometry returns the engine's default disk geometry.
func DefaultGeometry() Geometry {
	return GeometryFor(sched.DefaultConfig())
}

// GeometryFor converts an engine config into its API representation.
func GeometryFor(cfg sched.Config) Geometry {
	return Geometry{
		MinTrack:         cfg.MinTrack,
		MaxTrack:         cfg.MaxTrack,
		SeekTimePerTrack: cfg.SeekTimePerTrack,
	}
}

// Config converts the geometry back into an engine config.
func (g Geometry) Config() sched.Config {
	return sched.Config{
		MinTrack:         g.MinTrack,
		MaxTrack:         g.MaxTrack,
		SeekTimePerTrack: g.SeekTimePerTrack,
	}
}

// SimulationRequest is the input to one simulation or comparison run.
// Algorithm is ignored by comparisons, which always run every algorithm.
// A nil Geometry selects the receiving side's default geometry.
type SimulationRequest struct {
	Requests  []int     `json:"requests"`
	Head      int       `json:"head"`
	Algorithm string    `json:"algorithm,omitempty"`
	Direction string    `json:"direction,omitempty"`
	Geometry  *Geometry `json:"geometry,omitempty"`
}

// SimulationReport is the full outcome of one run: the inputs echoed back,
// the head movement sequence, and the derived metrics. Direction is empty
// for algorithms that ignore it.
type SimulationReport struct {
	ID         string    `json:"id"`
	Algorithm  string    `json:"algorithm"`
	Direction  string    `json:"direction,omitempty"`
	Requests   []int     `json:"requests"`
	Head       int       `json:"head"`
	Geometry   Geometry  `json:"geometry"`
	Sequence   []int     `json:"sequence"`
	Steps      int       `json:"steps"`
	TotalSeek  float64   `json:"total_seek"`
	AvgSeek    float64   `json:"avg_seek"`
	Throughput float64   `json:"throughput"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewSimulationReport assembles a report from an engine result. The request
// list is copied so the report stays stable if the caller reuses its slice.
func NewSimulationReport(geo Geometry, requests []int, head int, res *sched.Result) SimulationReport {
	return SimulationReport{
		ID:         "sim_" + uuid.New().String(),
		Algorithm:  res.Algorithm.String(),
		Direction:  res.Direction.String(),
		Requests:   append([]int(nil), requests...),
		Head:       head,
		Geometry:   geo,
		Sequence:   res.Sequence,
		Steps:      res.Steps(),
		TotalSeek:  res.TotalSeek,
		AvgSeek:    res.AvgSeek,
		Throughput: res.Throughput,
		CreatedAt:  time.Now().UTC(),
	}
}

// ComparisonReport holds one report per algorithm over the same workload,
// plus the winner by total seek distance.
type ComparisonReport struct {
	ID        string             `json:"id"`
	Requests  []int              `json:"requests"`
	Head      int                `json:"head"`
	Direction string             `json:"direction"`
	Geometry  Geometry           `json:"geometry"`
	Reports   []SimulationReport `json:"reports"`
	Best      string             `json:"best"`
	CreatedAt time.Time          `json:"created_at"`
}

// NewComparisonReport assembles a comparison from per-algorithm reports.
// Best is the algorithm with the lowest total seek distance; a tie goes to
// the earliest report.
func NewComparisonReport(geo Geometry, requests []int, head int, dir string, reports []SimulationReport) ComparisonReport {
	best := ""
	bestSeek := 0.0
	for i, r := range reports {
		if i == 0 || r.TotalSeek < bestSeek {
			best = r.Algorithm
			bestSeek = r.TotalSeek
		}
	}
	return ComparisonReport{
		ID:        "cmp_" + uuid.New().String(),
		Requests:  append([]int(nil), requests...),
		Head:      head,
		Direction: dir,
		Geometry:  geo,
		Reports:   reports,
		Best:      best,
		CreatedAt: time.Now().UTC(),
	}
}
