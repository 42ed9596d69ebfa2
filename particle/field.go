package particle

import (
	"math"

	"github.com/milk9111/folio/common"
	"github.com/milk9111/folio/event"
)

const (
	maxParticles     = 100
	areaPerParticle  = 10000.0
	linkDistance     = 120.0
	linkAlpha        = 0.2
	fadeAlpha        = 0.05
	cursorRadius     = 50.0
	cursorFillAlpha  = 0.03
	cursorRingAlpha  = 0.1
	cursorRingWidth  = 2.0
	connectionWidth  = 1.0
	offSurfaceCoord  = -1000.0
	initialLinkSlots = 256
)

// Connection is an edge between two particles closer than the link
// distance. A < B always.
type Connection struct {
	A, B    int
	Opacity float64
}

// Field owns a fixed population of particles and the last known pointer.
// All methods are no-ops on a nil Field, which is what NewField returns
// when there is no surface to draw on.
type Field struct {
	surface     Surface
	rng         Rand
	palette     Palette
	width       float64
	height      float64
	particles   []Particle
	pointer     common.Vec
	connections []Connection
	subs        []*event.Subscription
}

// Count returns the population for a w×h surface: one particle per
// 10000 square pixels, at most 100.
func Count(w, h float64) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	return int(math.Min(maxParticles, math.Floor(w*h/areaPerParticle)))
}

// NewField sizes surface to the w×h viewport and seeds it with particles.
// A nil rng uses a clock-seeded source.
func NewField(surface Surface, w, h float64, rng Rand) *Field {
	if surface == nil {
		return nil
	}
	if rng == nil {
		rng = defaultRand()
	}

	surface.Resize(w, h)
	f := &Field{
		surface:     surface,
		rng:         rng,
		palette:     DefaultPalette,
		width:       w,
		height:      h,
		connections: make([]Connection, 0, initialLinkSlots),
	}

	n := Count(w, h)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = newParticle(w, h, rng)
	}
	return f
}

// Attach subscribes the field to the host's resize and pointer events.
func (f *Field) Attach(bus *event.Bus) {
	if f == nil || bus == nil {
		return
	}
	f.subs = append(f.subs,
		bus.Subscribe(event.Resize, func(e event.Event) { f.Resize(e.X, e.Y) }),
		bus.Subscribe(event.PointerMove, func(e event.Event) { f.PointerMove(e.X, e.Y) }),
		bus.Subscribe(event.PointerLeave, func(event.Event) { f.PointerLeave() }),
	)
}

// Close drops every subscription made by Attach.
func (f *Field) Close() {
	if f == nil {
		return
	}
	for _, sub := range f.subs {
		sub.Close()
	}
	f.subs = nil
}

// Resize changes the surface dimensions. The population is not re-seeded.
func (f *Field) Resize(w, h float64) {
	if f == nil {
		return
	}
	f.width, f.height = w, h
	f.surface.Resize(w, h)
}

func (f *Field) PointerMove(x, y float64) {
	if f == nil {
		return
	}
	f.pointer = common.Vec{X: x, Y: y}
}

// PointerLeave parks the pointer far off the surface so no particle is
// within repulsion range.
func (f *Field) PointerLeave() {
	if f == nil {
		return
	}
	f.pointer = common.Vec{X: offSurfaceCoord, Y: offSurfaceCoord}
}

func (f *Field) SetPalette(p Palette) {
	if f == nil {
		return
	}
	f.palette = p
}

// Update advances the field one frame.
func (f *Field) Update() error {
	f.Tick()
	return nil
}

// Tick advances every particle and rebuilds the connection list.
func (f *Field) Tick() {
	if f == nil {
		return
	}

	for i := range f.particles {
		f.particles[i].Advance(f.width, f.height, f.pointer, f.rng)
	}

	f.connections = f.connections[:0]
	for i := 0; i < len(f.particles); i++ {
		for j := i + 1; j < len(f.particles); j++ {
			d := f.particles[i].Pos.Dist(f.particles[j].Pos)
			if d < linkDistance {
				f.connections = append(f.connections, Connection{A: i, B: j, Opacity: 1 - d/linkDistance})
			}
		}
	}
}

// Draw renders the current frame onto the surface.
func (f *Field) Draw() {
	if f == nil {
		return
	}
	s := f.surface
	pal := f.palette

	s.FillRect(0, 0, f.width, f.height, WithAlpha(pal.Background, fadeAlpha))

	for _, c := range f.connections {
		a, b := f.particles[c.A].Pos, f.particles[c.B].Pos
		s.StrokeLine(a.X, a.Y, b.X, b.Y, connectionWidth, WithAlpha(pal.Accent, c.Opacity*linkAlpha))
	}

	for i := range f.particles {
		f.particles[i].Draw(s, pal)
	}

	if f.pointerInside() {
		s.FillCircle(f.pointer.X, f.pointer.Y, cursorRadius, WithAlpha(pal.Accent, cursorFillAlpha))
		s.StrokeCircle(f.pointer.X, f.pointer.Y, cursorRadius, cursorRingWidth, WithAlpha(pal.Accent, cursorRingAlpha))
	}
}

func (f *Field) pointerInside() bool {
	p := f.pointer
	return p.X > 0 && p.Y > 0 && p.X <= f.width && p.Y <= f.height
}

// Len returns the particle count.
func (f *Field) Len() int {
	if f == nil {
		return 0
	}
	return len(f.particles)
}

// Particles returns a copy of the current particle state.
func (f *Field) Particles() []Particle {
	if f == nil {
		return nil
	}
	return append([]Particle(nil), f.particles...)
}

// Connections returns a copy of the connections computed by the last Tick.
func (f *Field) Connections() []Connection {
	if f == nil {
		return nil
	}
	return append([]Connection(nil), f.connections...)
}

func (f *Field) Pointer() common.Vec {
	if f == nil {
		return common.Vec{}
	}
	return f.pointer
}

func (f *Field) Size() (w, h float64) {
	if f == nil {
		return 0, 0
	}
	return f.width, f.height
}
