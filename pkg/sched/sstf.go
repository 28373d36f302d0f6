package sched

// sstf greedily services whichever pending request is closest to the current
// head. Distance ties go to the earlier entry in the pending pool, so runs
// with duplicate or equidistant tracks stay reproducible. The pool is a
// working copy; the original request order is preserved for the next run.
func (s *Scheduler) sstf() {
	pending := append([]int(nil), s.requests...)
	for len(pending) > 0 {
		best := 0
		for i := 1; i < len(pending); i++ {
			if abs(pending[i]-s.head) < abs(pending[best]-s.head) {
				best = i
			}
		}
		s.move(pending[best])
		pending = append(pending[:best], pending[best+1:]...)
	}
}
