package infinicanvas

import (
	"reflect"
	"testing"
)

func down(x, y float64, target string) PointerEvent {
	return PointerEvent{Kind: PointerDown, Local: Vec2{x, y}, Client: Vec2{x + 1000, y + 1000}, Target: target}
}

func move(x, y float64, target string) PointerEvent {
	return PointerEvent{Kind: PointerMove, Local: Vec2{x, y}, Client: Vec2{x + 1000, y + 1000}, Target: target}
}

func up(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerUp, Local: Vec2{x, y}, Client: Vec2{x + 1000, y + 1000}}
}

func TestReduceDownOnNodeStartsDrag(t *testing.T) {
	st, fx := ReducePointer(PointerState{}, down(10, 20, "a"))
	if st.Mode != ModeDraggingNode || st.NodeID != "a" {
		t.Fatalf("state = %+v", st)
	}
	if st.Last != (Vec2{10, 20}) {
		t.Errorf("drag anchor = %v, want local point", st.Last)
	}
	want := []Effect{{Kind: EffectSelect, NodeID: "a"}}
	if !reflect.DeepEqual(fx, want) {
		t.Errorf("effects = %+v, want %+v", fx, want)
	}
}

func TestReduceDownOnEmptyStartsPan(t *testing.T) {
	st, fx := ReducePointer(PointerState{}, down(10, 20, ""))
	if st.Mode != ModePanning {
		t.Fatalf("mode = %v", st.Mode)
	}
	if st.Last != (Vec2{1010, 1020}) {
		t.Errorf("pan anchor = %v, want client point", st.Last)
	}
	if len(fx) != 0 {
		t.Errorf("effects = %+v, want none", fx)
	}
}

func TestReducePanMoveUsesClientDelta(t *testing.T) {
	st, _ := ReducePointer(PointerState{}, down(10, 20, ""))
	st, fx := ReducePointer(st, move(15, 18, ""))
	want := []Effect{{Kind: EffectPan, Delta: Vec2{5, -2}}}
	if !reflect.DeepEqual(fx, want) {
		t.Errorf("effects = %+v, want %+v", fx, want)
	}
	if st.Last != (Vec2{1015, 1018}) {
		t.Errorf("anchor not advanced: %v", st.Last)
	}
}

func TestReduceDragMoveUsesLocalDelta(t *testing.T) {
	st, _ := ReducePointer(PointerState{}, down(10, 20, "a"))
	st, fx := ReducePointer(st, move(30, 25, "ignored"))
	want := []Effect{{Kind: EffectMoveNode, NodeID: "a", Delta: Vec2{20, 5}}}
	if !reflect.DeepEqual(fx, want) {
		t.Errorf("effects = %+v, want %+v", fx, want)
	}
	if st.NodeID != "a" || st.Last != (Vec2{30, 25}) {
		t.Errorf("state = %+v", st)
	}
}

func TestReduceZeroDeltaMoveHasNoEffect(t *testing.T) {
	st, _ := ReducePointer(PointerState{}, down(10, 20, ""))
	if _, fx := ReducePointer(st, move(10, 20, "")); len(fx) != 0 {
		t.Errorf("effects = %+v, want none", fx)
	}
}

func TestReduceUpReturnsToIdleAndClearsSelection(t *testing.T) {
	for _, target := range []string{"a", ""} {
		st, _ := ReducePointer(PointerState{}, down(0, 0, target))
		st, fx := ReducePointer(st, up(0, 0))
		if st.Mode != ModeIdle || st.NodeID != "" || st.Last != (Vec2{}) {
			t.Errorf("target %q: state = %+v, want cleared idle", target, st)
		}
		want := []Effect{{Kind: EffectSelect}}
		if !reflect.DeepEqual(fx, want) {
			t.Errorf("target %q: effects = %+v, want %+v", target, fx, want)
		}
	}
}

func TestReduceLeaveClearsSelectionAndHover(t *testing.T) {
	st := PointerState{Mode: ModeDraggingNode, NodeID: "a", Last: Vec2{1, 1}, Hovered: "a"}
	st, fx := ReducePointer(st, PointerEvent{Kind: PointerLeave})
	if st != (PointerState{}) {
		t.Errorf("state = %+v, want zero", st)
	}
	want := []Effect{{Kind: EffectSelect}, {Kind: EffectHover}}
	if !reflect.DeepEqual(fx, want) {
		t.Errorf("effects = %+v, want %+v", fx, want)
	}
}

func TestReduceIgnoresSecondaryButtons(t *testing.T) {
	for _, b := range []MouseButton{MouseButtonRight, MouseButtonMiddle} {
		ev := down(10, 10, "a")
		ev.Button = b
		st, fx := ReducePointer(PointerState{}, ev)
		if st.Mode != ModeIdle || len(fx) != 0 {
			t.Errorf("button %d: down started a gesture", b)
		}

		panning, _ := ReducePointer(PointerState{}, down(0, 0, ""))
		rel := up(0, 0)
		rel.Button = b
		st, fx = ReducePointer(panning, rel)
		if st.Mode != ModePanning || len(fx) != 0 {
			t.Errorf("button %d: release ended the gesture", b)
		}
	}
}

func TestReduceDownDuringGestureIgnored(t *testing.T) {
	st, _ := ReducePointer(PointerState{}, down(0, 0, ""))
	st2, fx := ReducePointer(st, down(50, 50, "a"))
	if st2 != st || len(fx) != 0 {
		t.Errorf("second down changed state: %+v %+v", st2, fx)
	}
}

func TestReduceHoverOnlyWhenChanged(t *testing.T) {
	st, fx := ReducePointer(PointerState{}, move(0, 0, "a"))
	if !reflect.DeepEqual(fx, []Effect{{Kind: EffectHover, NodeID: "a"}}) {
		t.Errorf("first hover effects = %+v", fx)
	}
	st, fx = ReducePointer(st, move(1, 1, "a"))
	if len(fx) != 0 {
		t.Errorf("repeat hover effects = %+v", fx)
	}
	_, fx = ReducePointer(st, move(500, 500, ""))
	if !reflect.DeepEqual(fx, []Effect{{Kind: EffectHover}}) {
		t.Errorf("hover-out effects = %+v", fx)
	}
}

// --- PointerController ---

func TestPointerControllerDragsNode(t *testing.T) {
	e := newTestEngine(t)
	e.AddNode(Node{ID: "a", Radius: Vec2{120, 60}})
	c := NewPointerController(e)

	c.HandlePointer(PointerEvent{Kind: PointerDown, Local: Vec2{400, 300}, Client: Vec2{400, 300}})
	if c.State().Mode != ModeDraggingNode {
		t.Fatalf("mode = %v", c.State().Mode)
	}
	if n, ok := e.SelectedNode(); !ok || n.ID != "a" {
		t.Error("dragged node should be selected")
	}

	c.HandlePointer(PointerEvent{Kind: PointerMove, Local: Vec2{450, 280}, Client: Vec2{450, 280}})
	n, _ := e.Node("a")
	assertVec(t, "center", n.Center, Vec2{50, -20})

	c.HandlePointer(PointerEvent{Kind: PointerUp, Local: Vec2{450, 280}, Client: Vec2{450, 280}})
	if c.State().Mode != ModeIdle {
		t.Errorf("mode = %v", c.State().Mode)
	}
	if _, ok := e.SelectedNode(); ok {
		t.Error("selection should clear on release")
	}
}

func TestPointerControllerPansEmptyCanvas(t *testing.T) {
	e := newTestEngine(t)
	c := NewPointerController(e)

	c.HandlePointer(PointerEvent{Kind: PointerDown, Local: Vec2{100, 100}, Client: Vec2{100, 100}})
	c.HandlePointer(PointerEvent{Kind: PointerMove, Local: Vec2{130, 90}, Client: Vec2{130, 90}})
	assertVec(t, "camera", e.Camera().Position, Vec2{-30, 10})
}

func TestPointerControllerDragAtScale(t *testing.T) {
	e := newTestEngine(t)
	e.AddNode(Node{ID: "a", Radius: Vec2{50, 50}})
	e.SetView(Vec2{}, 2)
	c := NewPointerController(e)

	c.HandlePointer(PointerEvent{Kind: PointerDown, Local: Vec2{400, 300}})
	c.HandlePointer(PointerEvent{Kind: PointerMove, Local: Vec2{440, 300}})
	n, _ := e.Node("a")
	assertVec(t, "center", n.Center, Vec2{20, 0})
}

func TestPointerControllerHover(t *testing.T) {
	e := newTestEngine(t)
	e.AddNode(Node{ID: "a", Radius: Vec2{50, 50}})
	c := NewPointerController(e)

	c.HandlePointer(PointerEvent{Kind: PointerMove, Local: Vec2{400, 300}})
	if n, ok := e.HoveredNode(); !ok || n.ID != "a" {
		t.Error("node under pointer should be hovered")
	}
	c.HandlePointer(PointerEvent{Kind: PointerLeave})
	if _, ok := e.HoveredNode(); ok {
		t.Error("hover should clear on leave")
	}
}

func TestPointerControllerNodeRemovedMidDrag(t *testing.T) {
	e := newTestEngine(t)
	e.AddNode(Node{ID: "a", Radius: Vec2{50, 50}})
	c := NewPointerController(e)

	c.HandlePointer(PointerEvent{Kind: PointerDown, Local: Vec2{400, 300}})
	e.RemoveNode("a")
	c.HandlePointer(PointerEvent{Kind: PointerMove, Local: Vec2{410, 300}})
	c.HandlePointer(PointerEvent{Kind: PointerUp, Local: Vec2{410, 300}})
	if c.State().Mode != ModeIdle {
		t.Errorf("mode = %v", c.State().Mode)
	}
}
