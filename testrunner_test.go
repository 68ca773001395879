package infinicanvas

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"invalid json", `{`, "parse input script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `unknown action "jump"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestScriptRunnerWaitsForQueue(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "click", "x": 1, "y": 1},
		{"action": "snapshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	h := NewInputHub()
	var labels []string
	snap := func(label string) error { labels = append(labels, label); return nil }

	r.Step(h, snap) // queues press+release
	if h.Pending() != 2 {
		t.Fatalf("pending = %d", h.Pending())
	}
	r.Step(h, snap) // blocked by queue
	if len(labels) != 0 {
		t.Fatal("snapshot ran before the click drained")
	}
	h.PollInjected()
	h.PollInjected()
	r.Step(h, snap)
	if len(labels) != 1 || labels[0] != "after" {
		t.Errorf("labels = %v", labels)
	}
	if !r.Done() {
		t.Error("runner should be done")
	}
}

func TestScriptRunnerWait(t *testing.T) {
	r, _ := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	h := NewInputHub()
	steps := 0
	for !r.Done() && steps < 10 {
		r.Step(h, nil)
		steps++
	}
	if steps != 4 {
		t.Errorf("wait 3 took %d steps, want 4", steps)
	}
}

func TestScriptRunnerSnapshotError(t *testing.T) {
	r, _ := LoadScript([]byte(`{"steps": [{"action": "snapshot", "label": "x"}, {"action": "wait", "frames": 1}]}`))
	boom := errors.New("boom")
	err := r.Step(NewInputHub(), func(string) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if !r.Done() {
		t.Error("runner should stop after a snapshot error")
	}
}

func TestRunScriptPanZoomAndDrag(t *testing.T) {
	e := newTestEngine(t)
	e.AddNode(Node{ID: "a", Radius: Vec2{50, 50}})
	h := NewInputHub()
	q := NewFrameQueue()
	defer Attach(e, h, q)()

	r, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 400, "fromY": 300, "toX": 450, "toY": 300, "frames": 4},
		{"action": "drag", "fromX": 100, "fromY": 100, "toX": 80, "toY": 100, "frames": 3},
		{"action": "move", "x": 420, "y": 300},
		{"action": "wheel", "x": 400, "y": 300, "deltaY": -1},
		{"action": "snapshot", "label": "end"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	var snapped []uint64
	snap := func(string) error {
		e.DrawFrame()
		snapped = append(snapped, e.Frames())
		return nil
	}
	frames, err := RunScript(r, e, h, q, snap, 1.0/60, 200)
	if err != nil {
		t.Fatal(err)
	}
	if frames == 0 || len(snapped) != 1 {
		t.Fatalf("frames = %d, snapshots = %d", frames, len(snapped))
	}

	n, _ := e.Node("a")
	assertVec(t, "node", n.Center, Vec2{50, 0})
	cam := e.Camera()
	if !approxEqual(cam.Scale, DefaultZoomIn, epsilon) {
		t.Errorf("scale = %v", cam.Scale)
	}
	if h, ok := e.HoveredNode(); !ok || h.ID != "a" {
		t.Error("node should be hovered after the move step")
	}
}

func TestRunScriptDragWithoutFrames(t *testing.T) {
	e := newTestEngine(t)
	e.AddNode(Node{ID: "a", Radius: Vec2{50, 50}})
	h := NewInputHub()
	q := NewFrameQueue()
	defer Attach(e, h, q)()

	r, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 400, "fromY": 300, "toX": 500, "toY": 300}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := RunScript(r, e, h, q, nil, 1.0/60, 50); err != nil {
		t.Fatal(err)
	}
	n, _ := e.Node("a")
	assertVec(t, "node", n.Center, Vec2{100, 0})
}

func TestRunScriptFrameLimit(t *testing.T) {
	e := newTestEngine(t)
	r, _ := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 50}]}`))
	_, err := RunScript(r, e, NewInputHub(), NewFrameQueue(), nil, 1.0/60, 5)
	if err == nil {
		t.Error("expected a frame-limit error")
	}
}
