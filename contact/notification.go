package contact

import "time"

// Kind selects a notification's styling.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

const (
	notifyShowAfter = 100 * time.Millisecond
	notifyHideAfter = notifyShowAfter + 3*time.Second
	notifyRemove    = notifyHideAfter + 300*time.Millisecond
)

// Notification is a transient toast. It slides in shortly after creation,
// stays three seconds and is removed after its exit transition.
type Notification struct {
	Message string
	Kind    Kind
	age     time.Duration
}

func NewNotification(msg string, kind Kind) *Notification {
	if kind == "" {
		kind = Info
	}
	return &Notification{Message: msg, Kind: kind}
}

func (n *Notification) Advance(dt time.Duration) {
	n.age += dt
}

// Visible reports whether the toast is on screen.
func (n *Notification) Visible() bool {
	return n.age >= notifyShowAfter && n.age < notifyHideAfter
}

// Expired reports whether the toast can be dropped.
func (n *Notification) Expired() bool {
	return n.age >= notifyRemove
}
