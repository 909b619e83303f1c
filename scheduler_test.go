package scrollframe

import "testing"

func TestManualSchedulerOrder(t *testing.T) {
	s := NewManualScheduler()
	var got []int
	for i := range 3 {
		s.RequestNextFrame(func() { got = append(got, i) })
	}
	if n := s.Tick(); n != 3 {
		t.Fatalf("Tick() = %d, want 3", n)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Errorf("order = %v, want [0 1 2]", got)
	}
	if s.Tick() != 0 {
		t.Error("requests ran twice")
	}
}

func TestManualSchedulerCancel(t *testing.T) {
	s := NewManualScheduler()
	ran := false
	cancel := s.RequestNextFrame(func() { ran = true })
	cancel()
	cancel()
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
	s.Tick()
	if ran {
		t.Error("cancelled request ran")
	}
}

func TestManualSchedulerDefersNestedRequests(t *testing.T) {
	s := NewManualScheduler()
	count := 0
	var loop func()
	loop = func() {
		count++
		s.RequestNextFrame(loop)
	}
	s.RequestNextFrame(loop)

	for i := 1; i <= 4; i++ {
		if n := s.Tick(); n != 1 {
			t.Fatalf("tick %d ran %d requests, want 1", i, n)
		}
		if count != i {
			t.Fatalf("count = %d after tick %d", count, i)
		}
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}
}
