package card

import (
	"image/color"
	"math"

	"github.com/iburimskiy/heart-burst/internal/burst"
)

// FloaterConfig describes the background hearts that rise forever behind
// the card.
type FloaterConfig struct {
	Count       int
	MinDuration float64 // seconds per rise
	MaxDuration float64
	MaxDelay    float64
	MinSize     float64
	MaxSize     float64
	Colors      []color.NRGBA
}

func DefaultFloaterConfig() FloaterConfig {
	return FloaterConfig{
		Count:       30,
		MinDuration: 10,
		MaxDuration: 25,
		MaxDelay:    5,
		MinSize:     10,
		MaxSize:     30,
		Colors: []color.NRGBA{
			{R: 0xfd, G: 0xa4, B: 0xaf, A: 0xff},
			{R: 0xf4, G: 0x3f, B: 0x5e, A: 0xff},
		},
	}
}

type Floater struct {
	Left     float64 // fraction of the viewport width
	Duration float64
	Delay    float64
	Size     float64
	Color    color.NRGBA
}

// FloaterState is where a floater is at a given time.
type FloaterState struct {
	X, Y    float64
	Opacity float64
	Visible bool
}

// NewFloaters rolls cfg.Count floaters from rng.
func NewFloaters(cfg FloaterConfig, rng burst.Rand) []Floater {
	out := make([]Floater, cfg.Count)
	for i := range out {
		f := Floater{
			Left:     rng.Float64(),
			Duration: cfg.MinDuration + rng.Float64()*(cfg.MaxDuration-cfg.MinDuration),
			Delay:    rng.Float64() * cfg.MaxDelay,
			Size:     cfg.MinSize + rng.Float64()*(cfg.MaxSize-cfg.MinSize),
		}
		if len(cfg.Colors) > 0 {
			f.Color = cfg.Colors[rng.IntN(len(cfg.Colors))]
		}
		out[i] = f
	}
	return out
}

// At places the floater t seconds after the scene started. A floater rises
// from below the bottom edge to above the top edge, fading in over the
// first tenth of its rise and out over the last tenth, then loops.
func (f Floater) At(t float64, w, h int) FloaterState {
	if t < f.Delay || f.Duration <= 0 {
		return FloaterState{}
	}
	phase := math.Mod(t-f.Delay, f.Duration) / f.Duration

	var opacity float64
	switch {
	case phase < 0.1:
		opacity = phase / 0.1
	case phase > 0.9:
		opacity = (1 - phase) / 0.1
	default:
		opacity = 1
	}
	opacity *= 0.7

	travel := float64(h) + 2*f.Size
	return FloaterState{
		X:       f.Left * float64(w),
		Y:       float64(h) + f.Size - phase*travel,
		Opacity: opacity,
		Visible: opacity > 0,
	}
}
