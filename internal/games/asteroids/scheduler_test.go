package asteroids

import "testing"

func TestSchedulerRunsWhenDue(t *testing.T) {
	s := NewScheduler()
	s.NextGeneration()

	var order []int
	s.After(200, func() { order = append(order, 2) })
	s.After(100, func() { order = append(order, 1) })

	s.Advance(99)
	if len(order) != 0 {
		t.Fatalf("tasks ran early: %v", order)
	}

	s.Advance(1)
	if len(order) != 1 || order[0] != 1 {
		t.Fatalf("order = %v, expected [1]", order)
	}

	s.Advance(100)
	if len(order) != 2 || order[1] != 2 {
		t.Errorf("order = %v, expected [1 2]", order)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestSchedulerDropsStaleGeneration(t *testing.T) {
	s := NewScheduler()
	gen := s.NextGeneration()

	fired := false
	s.After(2000, func() { fired = true })
	if s.Pending() != 1 {
		t.Fatalf("Pending() = %d, expected 1", s.Pending())
	}

	if next := s.NextGeneration(); next != gen+1 {
		t.Errorf("NextGeneration() = %d, expected %d", next, gen+1)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after new generation, expected 0", s.Pending())
	}

	s.Advance(5000)
	if fired {
		t.Error("task from a previous generation fired")
	}
}

func TestSchedulerTaskCanReschedule(t *testing.T) {
	s := NewScheduler()
	count := 0

	var tick func()
	tick = func() {
		count++
		s.After(100, tick)
	}
	s.After(100, tick)

	for i := 0; i < 5; i++ {
		s.Advance(100)
	}
	if count != 5 {
		t.Errorf("count = %d, expected 5", count)
	}
}

func TestSchedulerReleasesFinishedTasks(t *testing.T) {
	s := NewScheduler()
	s.After(100, func() {})
	s.After(100, func() {})
	s.After(500, func() {})

	s.Advance(100)
	if len(s.tasks) != 1 {
		t.Fatalf("len(tasks) = %d, expected 1", len(s.tasks))
	}

	// Slots past the live tasks must not pin finished closures.
	for i, task := range s.tasks[len(s.tasks):cap(s.tasks)] {
		if task.run != nil {
			t.Errorf("tasks[%d].run still set after Advance", len(s.tasks)+i)
		}
	}
}
