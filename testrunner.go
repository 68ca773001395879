package infinicanvas

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DeltaY float64 `json:"deltaY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "leave": true,
	"click": true, "drag": true, "wheel": true, "wait": true, "snapshot": true,
}

// SnapshotFunc captures the current frame under label.
type SnapshotFunc func(label string) error

// ScriptRunner sequences injected input and snapshots across frames for
// automated visual testing. Call Step once per frame before polling the hub.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
//
//	{"steps": [
//	  {"action": "drag", "fromX": 400, "fromY": 300, "toX": 500, "toY": 300, "frames": 10},
//	  {"action": "wheel", "x": 400, "y": 300, "deltaY": -1},
//	  {"action": "snapshot", "label": "after"}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether every step has executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, queuing input on hub. snap may be
// nil, in which case snapshot steps are skipped. The first snapshot error
// stops the runner and is returned.
func (r *ScriptRunner) Step(hub *InputHub, snap SnapshotFunc) error {
	if r.done {
		return nil
	}
	// Wait for pending injections to drain before advancing.
	if hub.Pending() > 0 {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "snapshot":
		if snap != nil {
			if err := snap(st.Label); err != nil {
				r.done = true
				return fmt.Errorf("snapshot %q: %w", st.Label, err)
			}
		}
	case "press":
		hub.InjectPress(st.X, st.Y)
	case "move":
		hub.InjectMove(st.X, st.Y)
	case "release":
		hub.InjectRelease(st.X, st.Y)
	case "leave":
		hub.InjectLeave()
	case "click":
		hub.InjectClick(st.X, st.Y)
	case "drag":
		hub.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wheel":
		hub.InjectWheel(st.X, st.Y, st.DeltaY)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && hub.Pending() == 0 {
		r.done = true
	}
	return nil
}

// RunScript drives e headlessly until r finishes or maxFrames elapse. Each
// frame steps the runner, dispatches one injected event, advances camera
// animations by dt seconds and ticks frames. e must already be attached to
// hub and frames. Returns the number of frames run.
func RunScript(r *ScriptRunner, e *Engine, hub *InputHub, frames *FrameQueue, snap SnapshotFunc, dt float64, maxFrames int) (int, error) {
	n := 0
	for !r.Done() {
		if maxFrames > 0 && n >= maxFrames {
			return n, fmt.Errorf("input script: not finished after %d frames", maxFrames)
		}
		if err := r.Step(hub, snap); err != nil {
			return n, err
		}
		hub.PollInjected()
		e.Update(dt)
		frames.Tick()
		n++
	}
	return n, nil
}
