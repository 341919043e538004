package asteroids

// Scheduler runs deferred actions on simulation time.
// Every task is tagged with the generation current when it was scheduled;
// tasks from an earlier generation are dropped instead of run.
type Scheduler struct {
	now        float64
	generation uint64
	tasks      []scheduledTask
}

type scheduledTask struct {
	due        float64
	generation uint64
	run        func()
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once delayMs of simulation time has passed.
func (s *Scheduler) After(delayMs float64, fn func()) {
	s.tasks = append(s.tasks, scheduledTask{
		due:        s.now + delayMs,
		generation: s.generation,
		run:        fn,
	})
}

// Advance moves the clock forward and runs every task that came due,
// in the order they were scheduled.
func (s *Scheduler) Advance(dtMs float64) {
	s.now += dtMs

	var due []func()
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.generation != s.generation:
			// Stale session, drop
		case t.due <= s.now:
			due = append(due, t.run)
		default:
			kept = append(kept, t)
		}
	}
	clear(s.tasks[len(kept):])
	s.tasks = kept

	// Tasks may schedule more work, so run them after the list is settled
	for _, fn := range due {
		fn()
	}
}

// NextGeneration starts a new session. Pending tasks become stale.
func (s *Scheduler) NextGeneration() uint64 {
	s.generation++
	s.now = 0
	return s.generation
}

// Generation returns the current session generation.
func (s *Scheduler) Generation() uint64 {
	return s.generation
}

// Pending returns the number of tasks waiting for the current generation.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.generation == s.generation {
			n++
		}
	}
	return n
}
