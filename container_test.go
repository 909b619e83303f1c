package scrollframe

import "testing"

func TestManualContainerListeners(t *testing.T) {
	c := NewManualContainer(1000, 100)
	calls := 0
	release := c.OnScroll(func() { calls++ })

	c.SetOffset(10)
	c.ScrollBy(5)
	c.Resize(2000, 100)
	c.SetMounted(false)
	if calls != 4 {
		t.Errorf("calls = %d, want 4", calls)
	}

	release()
	release()
	c.SetOffset(20)
	if calls != 4 || c.ListenerCount() != 0 {
		t.Errorf("calls = %d listeners = %d after release", calls, c.ListenerCount())
	}
}

func TestManualContainerSelfRelease(t *testing.T) {
	c := NewManualContainer(1000, 100)
	var release func()
	calls := 0
	release = c.OnScroll(func() {
		calls++
		release()
	})
	c.SetOffset(1)
	c.SetOffset(2)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestManualContainerMetrics(t *testing.T) {
	c := NewManualContainer(1100, 100)
	c.SetProgress(0.3)
	m, ok := c.Metrics()
	if !ok || m.Offset != 300 {
		t.Errorf("Metrics() = %+v, %v; want offset 300", m, ok)
	}
	c.SetMounted(false)
	if _, ok := c.Metrics(); ok {
		t.Error("unmounted container reports metrics")
	}
}
