package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := centeredRect(100, 50, 40, 20)
	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centre", 100, 50, true},
		{"top left edge", 80, 40, true},
		{"bottom right edge", 120, 60, true},
		{"left of", 79, 50, false},
		{"below", 100, 61, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, r.contains(c.x, c.y))
		})
	}
}

func TestLayoutRects(t *testing.T) {
	env := envelopeRect(1024, 768)
	assert.True(t, env.contains(512, 384))
	assert.False(t, env.contains(10, 10))

	btn := loveButtonRect(1024, 768)
	assert.True(t, btn.contains(758, 553))
	assert.False(t, btn.contains(512, 384))
}

func TestHeartbeat(t *testing.T) {
	assert.Equal(t, 1.0, heartbeat(0.2, 0))
	assert.InDelta(t, 1.08, heartbeat(0.075, 0), 1e-9)
	assert.InDelta(t, 1.12, heartbeat(0.2, 1), 1e-9)
	assert.InDelta(t, 1.12, heartbeat(0.2, 5), 1e-9)
	for ts := 0.0; ts < 3; ts += 0.01 {
		assert.GreaterOrEqual(t, heartbeat(ts, 0), 1.0)
	}
}

func TestEaseOut(t *testing.T) {
	assert.Zero(t, easeOut(-1))
	assert.Equal(t, 1.0, easeOut(2))
	assert.InDelta(t, 0.875, easeOut(0.5), 1e-9)
}

func TestLerpColor(t *testing.T) {
	a := color.NRGBA{R: 0, G: 100, B: 200, A: 0xff}
	b := color.NRGBA{R: 100, G: 100, B: 0, A: 0xff}
	assert.Equal(t, color.NRGBA{R: 50, G: 100, B: 100, A: 0xff}, lerpColor(a, b, 0.5))
	assert.Equal(t, b, lerpColor(a, b, 3))
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, uint8(127), withAlpha(rose500, 0.5).A)
	assert.Equal(t, uint8(0), withAlpha(rose500, -1).A)
}
