package burst

import (
	"errors"
	"image/color"
	"log"
	"math"
	"math/rand/v2"
)

// Rand is the random source used to spawn particles. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// FrameHandle identifies a pending frame request. Zero is never issued.
type FrameHandle uint64

// Scheduler is the host's request-next-frame primitive.
type Scheduler interface {
	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
}

// Surface is a 2-D drawing target sized to the viewport.
type Surface interface {
	Size() (w, h int)
	Resize(w, h int)
	Clear()
	// DrawGlyph draws one heart centred on (x, y).
	DrawGlyph(x, y, size float64, c color.NRGBA, alpha float64)
	Release()
}

// Allocator hands out surfaces.
type Allocator interface {
	Allocate(w, h int) (Surface, error)
}

// ErrNoSurface is returned by allocators that cannot provide a surface.
var ErrNoSurface = errors.New("burst: drawing surface unavailable")

type Option func(*Renderer)

// WithRand replaces the default random source.
func WithRand(r Rand) Option {
	return func(rd *Renderer) { rd.rng = r }
}

// Renderer owns a single burst: its particles, its surface and its
// pending frame. Independent renderers never share state.
//
// All methods must be called from the goroutine that runs the scheduler's
// callbacks.
type Renderer struct {
	cfg   Config
	live  Config // cfg as of the running burst's Start
	sched Scheduler
	alloc Allocator
	rng   Rand

	surface   Surface
	particles []Particle
	handle    FrameHandle
	gen       uint64
	active    bool
	frames    int
}

func New(cfg Config, sched Scheduler, alloc Allocator, opts ...Option) *Renderer {
	r := &Renderer{
		cfg:   cfg,
		sched: sched,
		alloc: alloc,
		rng:   globalRand{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetConfig replaces the configuration used by the next Start. A running
// burst keeps the configuration it started with.
func (r *Renderer) SetConfig(cfg Config) { r.cfg = cfg }

func (r *Renderer) Config() Config { return r.cfg }

// Start spawns a burst centred on a w×h surface and schedules its first
// frame. It returns false, without side effects, when a burst is already
// running, the config is invalid or no surface can be allocated.
func (r *Renderer) Start(w, h int) bool {
	if r.active {
		return false
	}
	if err := r.cfg.Validate(); err != nil {
		log.Printf("burst: not starting: %v", err)
		return false
	}
	s, err := r.alloc.Allocate(w, h)
	if err != nil {
		log.Printf("burst: not starting: %v", err)
		return false
	}

	r.surface = s
	r.live = r.cfg
	r.spawn(float64(w)/2, float64(h)/2)
	r.frames = 0
	r.active = true
	r.gen++
	r.schedule()
	return true
}

func (r *Renderer) spawn(ox, oy float64) {
	c := r.live
	if cap(r.particles) >= c.Count {
		r.particles = r.particles[:c.Count]
	} else {
		r.particles = make([]Particle, c.Count)
	}
	for i := range r.particles {
		angle := r.rng.Float64() * 2 * math.Pi
		speed := c.MinSpeed + r.rng.Float64()*(c.MaxSpeed-c.MinSpeed)
		r.particles[i] = Particle{
			X:       ox,
			Y:       oy,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Size:    c.MinSize + r.rng.Float64()*(c.MaxSize-c.MinSize),
			Color:   c.Palette[r.rng.IntN(len(c.Palette))],
			Life:    1,
			Decay:   c.MinDecay + r.rng.Float64()*(c.MaxDecay-c.MinDecay),
			Gravity: c.Gravity,
		}
	}
}

func (r *Renderer) schedule() {
	gen := r.gen
	r.handle = r.sched.RequestFrame(func() {
		if !r.active || r.gen != gen {
			return
		}
		r.handle = 0
		r.frame()
	})
}

func (r *Renderer) frame() {
	r.frames++
	alive := 0
	for i := range r.particles {
		p := &r.particles[i]
		if !p.Alive() {
			continue
		}
		p.step(r.live.Damping)
		if p.Alive() {
			alive++
		}
	}

	r.surface.Clear()
	for i := range r.particles {
		p := &r.particles[i]
		if p.Alive() {
			r.surface.DrawGlyph(p.X, p.Y, p.Size, p.Color, p.Life)
		}
	}

	if alive > 0 {
		r.schedule()
		return
	}
	r.finish()
}

// Cancel stops the burst and releases its surface. Calling it on an idle
// renderer is a no-op.
func (r *Renderer) Cancel() {
	if !r.active {
		return
	}
	if r.handle != 0 {
		r.sched.CancelFrame(r.handle)
	}
	r.finish()
}

func (r *Renderer) finish() {
	r.handle = 0
	r.active = false
	r.gen++
	if r.surface != nil {
		r.surface.Release()
		r.surface = nil
	}
}

// Resize resizes the surface of a running burst. Particle positions are
// kept as they are.
func (r *Renderer) Resize(w, h int) {
	if !r.active || r.surface == nil {
		return
	}
	if cw, ch := r.surface.Size(); cw == w && ch == h {
		return
	}
	r.surface.Resize(w, h)
}

// Active reports whether a burst is running.
func (r *Renderer) Active() bool { return r.active }

// Surface returns the surface of the running burst, or nil.
func (r *Renderer) Surface() Surface { return r.surface }

// Frames returns the number of frames stepped by the current or last burst.
func (r *Renderer) Frames() int { return r.frames }

// Particles returns a copy of the current or last burst's particles.
func (r *Renderer) Particles() []Particle {
	out := make([]Particle, len(r.particles))
	copy(out, r.particles)
	return out
}

// Alive returns the number of particles still drawn.
func (r *Renderer) Alive() int {
	n := 0
	for i := range r.particles {
		if r.particles[i].Alive() {
			n++
		}
	}
	return n
}
