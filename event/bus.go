package event

// Type identifies a host event.
type Type string

const (
	Resize       Type = "resize"
	PointerMove  Type = "pointer_move"
	PointerLeave Type = "pointer_leave"
	Visibility   Type = "visibility"
	Scroll       Type = "scroll"
	ThemeChanged Type = "theme_changed"
)

// Event is a host event payload. X/Y carry sizes for Resize, pointer
// coordinates for PointerMove and the scroll delta for Scroll.
type Event struct {
	Type    Type
	X, Y    float64
	Visible bool
	Data    any
}

// Handler receives dispatched events.
type Handler func(Event)

// Subscription is a registered handler. Close removes it from the bus.
type Subscription struct {
	bus     *Bus
	typ     Type
	id      uint64
	handler Handler
	closed  bool
}

// Close unsubscribes. Calling it more than once is safe.
func (s *Subscription) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	if s.bus != nil {
		s.bus.remove(s)
	}
}

// Bus is a FIFO event queue with typed subscribers. It is not safe for
// concurrent use; the host pushes and dispatches from its frame callback.
type Bus struct {
	items    []Event
	handlers map[Type][]*Subscription
	nextID   uint64
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[Type][]*Subscription)}
}

// Subscribe registers fn for events of type t.
func (b *Bus) Subscribe(t Type, fn Handler) *Subscription {
	if b == nil || fn == nil {
		return nil
	}
	if b.handlers == nil {
		b.handlers = make(map[Type][]*Subscription)
	}
	b.nextID++
	sub := &Subscription{bus: b, typ: t, id: b.nextID, handler: fn}
	b.handlers[t] = append(b.handlers[t], sub)
	return sub
}

// Push adds an event.
func (b *Bus) Push(evt Event) {
	if b == nil {
		return
	}
	b.items = append(b.items, evt)
}

// Drain returns all events and clears the queue.
func (b *Bus) Drain() []Event {
	if b == nil || len(b.items) == 0 {
		return nil
	}
	out := b.items
	b.items = nil
	return out
}

// Dispatch delivers every queued event to its subscribers in push order
// and returns the number of events delivered. Events pushed by handlers
// are delivered on the next Dispatch.
func (b *Bus) Dispatch() int {
	events := b.Drain()
	for _, evt := range events {
		// copy so handlers may unsubscribe while we iterate
		subs := append([]*Subscription(nil), b.handlers[evt.Type]...)
		for _, sub := range subs {
			if sub.closed {
				continue
			}
			sub.handler(evt)
		}
	}
	return len(events)
}

// Subscribers reports how many live handlers are registered for t.
func (b *Bus) Subscribers(t Type) int {
	if b == nil {
		return 0
	}
	return len(b.handlers[t])
}

func (b *Bus) remove(sub *Subscription) {
	subs := b.handlers[sub.typ]
	for i, s := range subs {
		if s.id == sub.id {
			b.handlers[sub.typ] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.handlers[sub.typ]) == 0 {
		delete(b.handlers, sub.typ)
	}
}
