package sched

// fcfs services requests strictly in arrival order. It is the baseline the
// other algorithms are measured against.
func (s *Scheduler) fcfs() {
	for _, t := range s.requests {
		s.move(t)
	}
}
