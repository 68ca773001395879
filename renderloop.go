package infinicanvas

import "sync"

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// FrameSource schedules one-shot callbacks on the host's next animation tick.
type FrameSource interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue is a FrameSource driven by an explicit Tick, for hosts whose
// loop is already periodic (Ebitengine's Draw, a headless script).
type FrameQueue struct {
	next    FrameID
	pending []frameRequest
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame schedules fn for the next Tick. IDs start at 1.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	q.pending = append(q.pending, frameRequest{id: q.next, fn: fn})
	return q.next
}

// CancelFrame removes a pending callback. Unknown IDs are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i := range q.pending {
		if q.pending[i].id == id {
			copy(q.pending[i:], q.pending[i+1:])
			q.pending[len(q.pending)-1] = frameRequest{}
			q.pending = q.pending[:len(q.pending)-1]
			return
		}
	}
}

// Pending returns the number of scheduled callbacks.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Tick runs every callback scheduled before the call. Callbacks requested
// during Tick wait for the next one. Returns how many ran.
func (q *FrameQueue) Tick() int {
	batch := q.pending
	q.pending = nil
	for _, r := range batch {
		r.fn()
	}
	return len(batch)
}

// StartRenderLoop draws e once per frame from src until the returned stop
// function is called. Each tick calls DrawFrame, which is a no-op while the
// engine is clean, then reschedules itself. stop cancels the pending frame
// and is safe to call more than once.
func StartRenderLoop(src FrameSource, e *Engine) (stop func()) {
	var (
		id      FrameID
		stopped bool
		tick    func()
	)
	tick = func() {
		if stopped {
			return
		}
		e.DrawFrame()
		if stopped {
			return
		}
		id = src.RequestFrame(tick)
	}
	id = src.RequestFrame(tick)

	var once sync.Once
	return func() {
		once.Do(func() {
			stopped = true
			src.CancelFrame(id)
		})
	}
}
