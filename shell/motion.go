// Package shell holds the window host's state that does not depend on the
// windowing backend: when the particle loop runs and which palette is on
// screen.
package shell

import (
	"github.com/milk9111/folio/config"
	"github.com/milk9111/folio/event"
	"github.com/milk9111/folio/loop"
	"github.com/milk9111/folio/particle"
)

// Motion decides when the particle background runs. The field is built on
// first use and kept for the life of the window; reduced motion and a
// hidden window only stop the loop.
type Motion struct {
	cfg     config.MotionConfig
	bus     *event.Bus
	surface particle.Surface
	loop    *loop.Loop
	field   *particle.Field
	palette particle.Palette
	visible bool
	drawn   uint64

	width, height float64
}

// NewMotion prepares the background for a w×h window. visible is the
// window's focus state at startup.
func NewMotion(cfg config.MotionConfig, surface particle.Surface, bus *event.Bus, w, h float64, visible bool) *Motion {
	m := &Motion{
		cfg:     cfg,
		bus:     bus,
		surface: surface,
		loop:    loop.New(cfg.Reduced),
		palette: particle.DefaultPalette,
		visible: visible,
		width:   w,
		height:  h,
	}
	if !cfg.Reduced {
		m.enable()
	}
	return m
}

func (m *Motion) Loop() *loop.Loop { return m.loop }

func (m *Motion) Field() *particle.Field { return m.field }

func (m *Motion) Visible() bool { return m.visible }

func (m *Motion) Config() config.MotionConfig { return m.cfg }

// enable builds the field on first use and starts the loop unless the
// window is hidden and hidden windows pause.
func (m *Motion) enable() {
	if m.field == nil {
		var rng particle.Rand
		if m.cfg.Seed != 0 {
			rng = particle.Seeded(m.cfg.Seed)
		}
		m.field = particle.NewField(m.surface, m.width, m.height, rng)
		if m.field == nil {
			return
		}
		m.field.SetPalette(m.palette)
		m.field.Attach(m.bus)
		m.loop.Add(m.field)
	}
	if m.visible || !m.cfg.PauseHidden {
		m.loop.Start()
	}
}

// SetVisible records the window's focus and, with PauseHidden, stops or
// restarts the loop.
func (m *Motion) SetVisible(v bool) {
	m.visible = v
	if !m.cfg.PauseHidden {
		return
	}
	if v {
		if !m.cfg.Reduced && m.field != nil {
			m.loop.Start()
		}
		return
	}
	m.loop.Stop()
}

// Apply switches to a reloaded motion config. The seed only matters
// before the field exists.
func (m *Motion) Apply(cfg config.MotionConfig) {
	m.cfg = cfg
	m.loop.SetReducedMotion(cfg.Reduced)
	if cfg.Reduced {
		return
	}
	if !m.visible && cfg.PauseHidden {
		m.loop.Stop()
	}
	m.enable()
}

// Resize follows the window. Once the field exists it resizes the
// surface itself from the bus.
func (m *Motion) Resize(w, h float64) {
	m.width, m.height = w, h
	if m.field == nil && m.surface != nil {
		m.surface.Resize(w, h)
	}
}

func (m *Motion) SetPalette(p particle.Palette) {
	m.palette = p
	m.field.SetPalette(p)
}

// Shown reports whether the particle surface belongs on screen.
func (m *Motion) Shown() bool {
	return !m.loop.ReducedMotion() && m.field != nil
}

// Redraw reports whether the loop produced a frame since the last call.
// The surface keeps its trails, so only new frames are drawn.
func (m *Motion) Redraw() bool {
	if !m.Shown() {
		return false
	}
	frames := m.loop.Frames()
	if frames == m.drawn {
		return false
	}
	m.drawn = frames
	return true
}

func (m *Motion) Step() error {
	return m.loop.Step()
}

func (m *Motion) Close() {
	m.loop.Stop()
	m.field.Close()
}
