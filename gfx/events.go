package gfx

// EventType discriminates touch events.
type EventType uint8

const (
	EventTouch EventType = iota
	EventDrag
	EventRelease
)

func (t EventType) String() string {
	switch t {
	case EventTouch:
		return "touch"
	case EventDrag:
		return "drag"
	case EventRelease:
		return "release"
	default:
		return "unknown"
	}
}

// TouchEvent is a single input event at a screen position.
type TouchEvent struct {
	Type EventType
	X, Y int
}

// EventHandler consumes one event. A non-nil error stops the drain.
type EventHandler func(TouchEvent) error

// DefaultEventQueueSize is used when a backend is not told otherwise.
const DefaultEventQueueSize = 32

// EventQueue is a fixed-capacity FIFO of touch events. It never blocks and
// never grows. It is not safe for concurrent use.
type EventQueue struct {
	buf       []TouchEvent
	head      int
	count     int
	overflows uint64
}

// NewEventQueue allocates a queue holding up to capacity events.
func NewEventQueue(capacity int) *EventQueue {
	if capacity <= 0 {
		capacity = DefaultEventQueueSize
	}
	return &EventQueue{buf: make([]TouchEvent, capacity)}
}

// Push appends an event. When the queue is full the event is dropped, the
// overflow counter is incremented and false is returned.
func (q *EventQueue) Push(t EventType, x, y int) bool {
	if q.count == len(q.buf) {
		q.overflows++
		return false
	}
	q.buf[(q.head+q.count)%len(q.buf)] = TouchEvent{Type: t, X: x, Y: y}
	q.count++
	return true
}

// Poll delivers every queued event in arrival order. If h fails, the events
// not yet delivered are discarded and the error is returned.
func (q *EventQueue) Poll(h EventHandler) error {
	for q.count > 0 {
		ev := q.buf[q.head]
		q.head = (q.head + 1) % len(q.buf)
		q.count--
		if h == nil {
			continue
		}
		if err := h(ev); err != nil {
			q.Reset()
			return err
		}
	}
	q.head = 0
	return nil
}

// Reset empties the queue. The overflow counter is kept.
func (q *EventQueue) Reset() {
	q.head = 0
	q.count = 0
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int { return q.count }

// Cap returns the queue capacity.
func (q *EventQueue) Cap() int { return len(q.buf) }

// Overflows returns how many events have been dropped since creation.
func (q *EventQueue) Overflows() uint64 { return q.overflows }
