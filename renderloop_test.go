package infinicanvas

import "testing"

func TestFrameQueueTickRunsPendingOnly(t *testing.T) {
	q := NewFrameQueue()
	var ran []int
	q.RequestFrame(func() {
		ran = append(ran, 1)
		q.RequestFrame(func() { ran = append(ran, 3) })
	})
	q.RequestFrame(func() { ran = append(ran, 2) })

	if n := q.Tick(); n != 2 {
		t.Errorf("first Tick ran %d, want 2", n)
	}
	if len(ran) != 2 {
		t.Fatalf("ran = %v", ran)
	}
	if q.Pending() != 1 {
		t.Errorf("pending = %d, want 1", q.Pending())
	}
	q.Tick()
	if len(ran) != 3 || ran[2] != 3 {
		t.Errorf("ran = %v", ran)
	}
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	called := false
	id := q.RequestFrame(func() { called = true })
	q.CancelFrame(id)
	q.CancelFrame(id + 100)
	q.Tick()
	if called {
		t.Error("cancelled frame ran")
	}
}

func TestRenderLoopDrawsOnlyWhenDirty(t *testing.T) {
	e, s := newRecordingEngine(t)
	q := NewFrameQueue()
	stop := StartRenderLoop(q, e)
	defer stop()

	q.Tick()
	if e.Frames() != 1 {
		t.Fatalf("frames = %d, want 1", e.Frames())
	}
	s.reset()
	q.Tick()
	q.Tick()
	if e.Frames() != 1 || len(s.calls) != 0 {
		t.Errorf("clean ticks drew: frames=%d calls=%d", e.Frames(), len(s.calls))
	}

	e.PanByScreenDelta(Vec2{5, 5})
	q.Tick()
	if e.Frames() != 2 {
		t.Errorf("frames = %d, want 2", e.Frames())
	}
	if q.Pending() != 1 {
		t.Errorf("loop should keep exactly one frame scheduled, got %d", q.Pending())
	}
}

func TestRenderLoopStop(t *testing.T) {
	e := newTestEngine(t)
	q := NewFrameQueue()
	stop := StartRenderLoop(q, e)
	stop()
	stop()

	if q.Pending() != 0 {
		t.Errorf("pending = %d after stop", q.Pending())
	}
	q.Tick()
	if e.Frames() != 0 {
		t.Error("stopped loop drew")
	}
}

func TestRenderLoopStopFromInsideFrame(t *testing.T) {
	e := newTestEngine(t)
	q := NewFrameQueue()
	var stop func()
	e.AddLayer(LayerFunc(func(Surface, *Camera, ViewportSize) { stop() }))
	stop = StartRenderLoop(q, e)

	q.Tick()
	if q.Pending() != 0 {
		t.Errorf("pending = %d, loop rescheduled after stop", q.Pending())
	}
	e.RequestDraw()
	q.Tick()
	if e.Frames() != 1 {
		t.Errorf("frames = %d, want 1", e.Frames())
	}
}
