package infinicanvas

import "testing"

func TestFPSWidgetThrottle(t *testing.T) {
	w := &fpsWidget{stale: true}
	if !w.tick(0) {
		t.Fatal("stale widget should refresh immediately")
	}

	steps := []struct {
		dt   float64
		want bool
	}{
		{0.2, false},
		{0.2, false},
		{0.2, true}, // 0.6s accumulated
		{0.1, false},
		{0.5, true},
	}
	for i, st := range steps {
		if got := w.tick(st.dt); got != st.want {
			t.Errorf("step %d: tick(%v) = %v, want %v", i, st.dt, got, st.want)
		}
	}
}

func TestFPSWidgetStaleForcesRefresh(t *testing.T) {
	w := &fpsWidget{}
	if w.tick(0.1) {
		t.Fatal("fresh widget refreshed before the interval")
	}
	w.stale = true
	if !w.tick(0) {
		t.Error("stale flag should force a refresh")
	}
	if w.lastUpdate != 0 || w.stale {
		t.Errorf("tick did not reset state: %+v", w)
	}
}
