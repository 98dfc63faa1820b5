package game

import (
	"image/color"
	"math"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// lerpColor blends two opaque colours.
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	return color.NRGBA{
		R: uint8(lerp(float64(a.R), float64(b.R), t)),
		G: uint8(lerp(float64(a.G), float64(b.G), t)),
		B: uint8(lerp(float64(a.B), float64(b.B), t)),
		A: 0xff,
	}
}

// easeOut is a cubic ease-out on [0, 1].
func easeOut(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// heartbeat returns a scale factor around 1 with a double beat per second,
// pushed further by the music level.
func heartbeat(t, level float64) float64 {
	phase := math.Mod(t, 1)
	var beat float64
	switch {
	case phase < 0.15:
		beat = math.Sin(phase / 0.15 * math.Pi)
	case phase >= 0.3 && phase < 0.45:
		beat = 0.6 * math.Sin((phase-0.3)/0.15*math.Pi)
	}
	return 1 + 0.08*beat + 0.12*clamp01(level)
}

type rect struct {
	x, y, w, h float64
}

func centeredRect(cx, cy, w, h float64) rect {
	return rect{x: cx - w/2, y: cy - h/2, w: w, h: h}
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x <= r.x+r.w && y >= r.y && y <= r.y+r.h
}
