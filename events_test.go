package infinicanvas

import "testing"

func TestInputHubDispatchOrder(t *testing.T) {
	h := NewInputHub()
	var got []string
	h.OnPointer(func(PointerEvent) { got = append(got, "p1") })
	h.OnPointer(func(PointerEvent) { got = append(got, "p2") })
	h.OnWheel(func(WheelEvent) { got = append(got, "w") })
	h.OnResize(func(ViewportSize) { got = append(got, "r") })

	h.DispatchPointer(PointerEvent{})
	h.DispatchWheel(WheelEvent{})
	h.DispatchResize(ViewportSize{})

	want := []string{"p1", "p2", "w", "r"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	h := NewInputHub()
	calls := 0
	handle := h.OnPointer(func(PointerEvent) { calls++ })
	h.OnWheel(func(WheelEvent) {})

	h.DispatchPointer(PointerEvent{})
	handle.Remove()
	handle.Remove()
	h.DispatchPointer(PointerEvent{})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if h.Subscribers() != 1 {
		t.Errorf("subscribers = %d, want 1", h.Subscribers())
	}
	CallbackHandle{}.Remove()
}

func TestHandlerRemovingItselfDuringDispatch(t *testing.T) {
	h := NewInputHub()
	var first CallbackHandle
	secondCalled := false
	first = h.OnPointer(func(PointerEvent) { first.Remove() })
	h.OnPointer(func(PointerEvent) { secondCalled = true })

	h.DispatchPointer(PointerEvent{})
	if !secondCalled {
		t.Error("removing a handler mid-dispatch skipped the next one")
	}
}

func TestPointerPositionTracksLocal(t *testing.T) {
	h := NewInputHub()
	h.DispatchPointer(PointerEvent{Local: Vec2{3, 4}, Client: Vec2{100, 100}})
	if h.PointerPosition() != (Vec2{3, 4}) {
		t.Errorf("PointerPosition = %v", h.PointerPosition())
	}
}
