package sched

// Result is the outcome of one simulation run: the full head movement
// sequence plus the derived metrics. Direction is set only for directional
// algorithms.
//
// TotalSeek is a whole number of tracks but is typed float64 so the three
// metrics stay uniform for callers and JSON consumers.
type Result struct {
	Algorithm  Algorithm `json:"algorithm"`
	Direction  Direction `json:"direction,omitempty"`
	Sequence   []int     `json:"sequence"`
	TotalSeek  float64   `json:"total_seek"`
	AvgSeek    float64   `json:"avg_seek"`
	Throughput float64   `json:"throughput"`
}

// Steps returns the number of head movements in the run, excluding the
// starting position.
func (r *Result) Steps() int {
	if len(r.Sequence) == 0 {
		return 0
	}
	return len(r.Sequence) - 1
}
