// Package sched simulates the classic disk-head scheduling algorithms FCFS,
// SSTF, SCAN and C-SCAN over a single-platter disk model.
//
// A Scheduler captures one workload: a request list and an initial head
// position. Simulate replays any algorithm over that workload; every call
// resets the run state first, so results never depend on what ran before.
// The engine assumes in-range inputs and performs no validation of its own;
// callers are expected to reject malformed workloads up front (see
// internal/validate). A Scheduler is not safe for concurrent use.
package sched

import "fmt"

// Scheduler holds one simulation workload and the movement state of the
// current run.
type Scheduler struct {
	cfg      Config
	requests []int // original arrival order, private copy
	initial  int

	head     int   // current head position during a run
	seek     int   // accumulated seek distance in tracks
	sequence []int // every track visited, starting at the initial head
}

// New creates a Scheduler over a private copy of requests, so later changes
// to the caller's slice do not leak into the simulation. The request list
// may be empty; tracks and head must already lie within cfg's bounds.
func New(cfg Config, requests []int, head int) *Scheduler {
	s := &Scheduler{
		cfg:      cfg,
		requests: append([]int(nil), requests...),
		initial:  head,
	}
	s.reset()
	return s
}

// Simulate runs one algorithm over the workload and returns the movement
// sequence together with the derived metrics. Run state is reset before the
// algorithm starts, so calls are independent and order does not matter.
// An unrecognized algorithm yields ErrUnknownAlgorithm and no result.
func (s *Scheduler) Simulate(algo Algorithm, dir Direction) (*Result, error) {
	s.reset()

	switch algo {
	case FCFS:
		s.fcfs()
	case SSTF:
		s.sstf()
	case SCAN, CSCAN:
		s.sweep(algo, dir)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}

	return s.result(algo, dir), nil
}

// reset returns the engine to idle: head back at the initial position, no
// accumulated seek, and a fresh one-entry movement sequence. The sequence
// slice is reallocated so Results handed out earlier stay intact.
func (s *Scheduler) reset() {
	s.head = s.initial
	s.seek = 0
	s.sequence = []int{s.initial}
}

// move services next: the head travels the full distance, the cost accrues,
// and the stop is recorded in the movement sequence.
func (s *Scheduler) move(next int) {
	s.seek += abs(next - s.head)
	s.head = next
	s.sequence = append(s.sequence, next)
}

// result assembles the outcome of the completed run. Average seek divides by
// the request count and throughput by the elapsed seek time; both collapse
// to zero instead of dividing by zero on empty or stationary runs.
func (s *Scheduler) result(algo Algorithm, dir Direction) *Result {
	r := &Result{
		Algorithm: algo,
		Sequence:  s.sequence,
		TotalSeek: float64(s.seek),
	}
	if algo.Directional() {
		r.Direction = dir.normalize()
	}
	n := len(s.requests)
	if n > 0 {
		r.AvgSeek = r.TotalSeek / float64(n)
	}
	if elapsed := r.TotalSeek * s.cfg.SeekTimePerTrack; elapsed > 0 {
		r.Throughput = float64(n) / elapsed
	}
	return r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
