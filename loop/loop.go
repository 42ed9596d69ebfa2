package loop

import (
	"errors"
	"fmt"
)

// System is advanced once per frame while the loop runs.
type System interface {
	Update() error
}

// State is the loop's run state.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	default:
		return "stopped"
	}
}

// ErrReentrant is returned when Step is called from inside a system.
var ErrReentrant = errors.New("loop: step already in progress")

// Loop drives its systems from the host's frame callback. It has two
// states; frames are only advanced while Running.
type Loop struct {
	systems       []System
	state         State
	reducedMotion bool
	stepping      bool
	frames        uint64
	onChange      func(State)
}

// New creates a stopped loop. With reducedMotion set the loop refuses to
// start.
func New(reducedMotion bool, systems ...System) *Loop {
	copied := append([]System(nil), systems...)
	return &Loop{systems: copied, reducedMotion: reducedMotion}
}

func (l *Loop) Add(system System) {
	if l == nil || system == nil {
		return
	}
	l.systems = append(l.systems, system)
}

// OnChange registers fn to be called after every state transition.
func (l *Loop) OnChange(fn func(State)) {
	if l == nil {
		return
	}
	l.onChange = fn
}

// Start moves the loop to Running and reports whether it is running.
func (l *Loop) Start() bool {
	if l == nil || l.reducedMotion {
		return false
	}
	l.transition(Running)
	return true
}

// Stop moves the loop to Stopped. It is idempotent.
func (l *Loop) Stop() {
	if l == nil {
		return
	}
	l.transition(Stopped)
}

// SetReducedMotion toggles the reduced-motion preference. Enabling it
// stops a running loop.
func (l *Loop) SetReducedMotion(on bool) {
	if l == nil {
		return
	}
	l.reducedMotion = on
	if on {
		l.Stop()
	}
}

func (l *Loop) ReducedMotion() bool {
	return l != nil && l.reducedMotion
}

func (l *Loop) State() State {
	if l == nil {
		return Stopped
	}
	return l.state
}

func (l *Loop) Running() bool {
	return l.State() == Running
}

// Frames returns how many frames have been stepped.
func (l *Loop) Frames() uint64 {
	if l == nil {
		return 0
	}
	return l.frames
}

// Step runs every system once if the loop is running. It returns the
// first system error, wrapped with the system's position.
func (l *Loop) Step() error {
	if l == nil || l.state != Running {
		return nil
	}
	if l.stepping {
		return ErrReentrant
	}
	l.stepping = true
	defer func() { l.stepping = false }()

	for i, system := range l.systems {
		if err := system.Update(); err != nil {
			return fmt.Errorf("loop: system %d: %w", i, err)
		}
	}
	l.frames++
	return nil
}

func (l *Loop) transition(to State) {
	if l.state == to {
		return
	}
	l.state = to
	if l.onChange != nil {
		l.onChange(to)
	}
}
