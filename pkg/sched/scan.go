package sched

import "sort"

// edge names a physical disk boundary without fixing its track number, which
// depends on the configured geometry.
type edge int

const (
	edgeMin edge = iota
	edgeMax
)

// sweepOrder is the service order of the return leg of a sweep.
type sweepOrder int

const (
	ascending sweepOrder = iota
	descending
)

// sweepRule captures what actually differs between the four SCAN and C-SCAN
// variants: which boundary tracks the head visits after the outbound leg,
// and how the return leg is ordered. The outbound leg is implied by the
// sweep direction (up services the upper partition ascending, down services
// the lower partition descending).
//
// SCAN reverses at its single boundary, so its return leg runs nearest to
// the boundary first. C-SCAN crosses both boundaries and keeps sweeping the
// same way, so its return leg preserves the outbound order.
type sweepRule struct {
	edges  []edge
	second sweepOrder
}

var sweepRules = map[Algorithm]map[Direction]sweepRule{
	SCAN: {
		Up:   {edges: []edge{edgeMax}, second: descending},
		Down: {edges: []edge{edgeMin}, second: ascending},
	},
	CSCAN: {
		Up:   {edges: []edge{edgeMax, edgeMin}, second: ascending},
		Down: {edges: []edge{edgeMin, edgeMax}, second: descending},
	},
}

// sweep runs SCAN or C-SCAN. Requests strictly below the starting head form
// the lower partition and everything at or above it the upper; the head
// first travels dir-ward servicing its own partition, visits the boundary
// track (both boundaries for C-SCAN), then services the opposite partition
// per the rule table. Boundary visits are always recorded, even when a
// request already sits on the boundary.
func (s *Scheduler) sweep(algo Algorithm, dir Direction) {
	dir = dir.normalize()
	rule := sweepRules[algo][dir]

	lower, upper := s.partition()

	var outbound, ret []int
	if dir == Up {
		outbound, ret = upper, lower
	} else {
		outbound, ret = reversed(lower), upper
	}
	if rule.second == descending {
		ret = reversed(ret)
	}

	step := s.move
	if algo == CSCAN {
		step = s.moveWrap
	}

	for _, t := range outbound {
		step(t)
	}
	for _, e := range rule.edges {
		step(s.edgeTrack(e))
	}
	for _, t := range ret {
		step(t)
	}
}

// moveWrap is move with the C-SCAN exception: a hop spanning the two
// boundary tracks in either order is the wrap stroke and costs nothing,
// whatever the distance between them. The rule is by track value, exactly
// as the classic formulation states it, so a run starting with the head on
// one boundary and a request on the other also crosses for free.
func (s *Scheduler) moveWrap(next int) {
	if (s.head == s.cfg.MaxTrack && next == s.cfg.MinTrack) ||
		(s.head == s.cfg.MinTrack && next == s.cfg.MaxTrack) {
		s.head = next
		s.sequence = append(s.sequence, next)
		return
	}
	s.move(next)
}

// partition splits the requests around the starting head: tracks strictly
// below it form lower, tracks at or above it form upper. Both halves come
// back sorted ascending.
func (s *Scheduler) partition() (lower, upper []int) {
	for _, t := range s.requests {
		if t < s.head {
			lower = append(lower, t)
		} else {
			upper = append(upper, t)
		}
	}
	sort.Ints(lower)
	sort.Ints(upper)
	return lower, upper
}

// edgeTrack maps a boundary name to its track number under the current
// geometry.
func (s *Scheduler) edgeTrack(e edge) int {
	if e == edgeMax {
		return s.cfg.MaxTrack
	}
	return s.cfg.MinTrack
}

// reversed returns a reversed copy, leaving the input untouched.
func reversed(xs []int) []int {
	out := make([]int, len(xs))
	for i, v := range xs {
		out[len(xs)-1-i] = v
	}
	return out
}
