package burst

import (
	"errors"
	"image/color"
)

// lifeEpsilon absorbs the float drift of repeated decay subtraction so a
// particle with decay 1/k is expired after exactly k steps.
const lifeEpsilon = 1e-9

// Particle is one glyph of a burst. Coordinates are absolute surface pixels.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Color   color.NRGBA
	Life    float64
	Decay   float64
	Gravity float64
}

// Alive reports whether the particle is still drawn.
func (p *Particle) Alive() bool { return p.Life > 0 }

func (p *Particle) step(damping float64) {
	p.X += p.VX
	p.Y += p.VY
	p.VY += p.Gravity
	p.VX *= damping
	p.VY *= damping
	p.Life -= p.Decay
	if p.Life < lifeEpsilon {
		p.Life = 0
	}
}

// Config holds the tunables of a burst. The defaults reproduce the
// hand-tuned look of the card and carry no correctness meaning.
type Config struct {
	Count    int
	MinSpeed float64
	MaxSpeed float64
	MinSize  float64
	MaxSize  float64
	MinDecay float64
	MaxDecay float64
	Gravity  float64
	Damping  float64
	Palette  []color.NRGBA
}

func DefaultConfig() Config {
	return Config{
		Count:    2000,
		MinSpeed: 5,
		MaxSpeed: 50,
		MinSize:  10,
		MaxSize:  45,
		MinDecay: 0.002,
		MaxDecay: 0.01,
		Gravity:  0.25,
		Damping:  0.98,
		Palette:  DefaultPalette(),
	}
}

// DefaultPalette returns a fresh copy of the red and pink heart colours.
func DefaultPalette() []color.NRGBA {
	return []color.NRGBA{
		{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
		{R: 0xff, G: 0x69, B: 0xb4, A: 0xff},
		{R: 0xff, G: 0x14, B: 0x93, A: 0xff},
		{R: 0xe1, G: 0x1d, B: 0x48, A: 0xff},
		{R: 0xfb, G: 0x71, B: 0x85, A: 0xff},
	}
}

var (
	ErrCount   = errors.New("burst: particle count must be positive")
	ErrRange   = errors.New("burst: range minimum exceeds maximum")
	ErrDecay   = errors.New("burst: decay must be positive")
	ErrDamping = errors.New("burst: damping must be in (0, 1]")
	ErrPalette = errors.New("burst: palette is empty")
)

// Validate reports the first problem with c, or nil.
func (c Config) Validate() error {
	switch {
	case c.Count <= 0:
		return ErrCount
	case c.MinSpeed > c.MaxSpeed, c.MinSize > c.MaxSize, c.MinDecay > c.MaxDecay:
		return ErrRange
	case c.MinDecay <= 0:
		return ErrDecay
	case c.Damping <= 0 || c.Damping > 1:
		return ErrDamping
	case len(c.Palette) == 0:
		return ErrPalette
	}
	return nil
}
