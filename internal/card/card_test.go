package card

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = time.Second / 60

func advance(c *Card, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		c.Update(tick)
	}
}

func TestOpeningSequence(t *testing.T) {
	c := New(DefaultTimings(), 0)
	assert.Equal(t, Closed, c.Stage())

	c.Update(time.Minute)
	assert.Equal(t, Closed, c.Stage(), "closed card has no timers")

	require.True(t, c.Open())
	assert.False(t, c.Open())
	assert.Equal(t, Opening, c.Stage())
	assert.False(t, c.GiantHeart())

	advance(c, 900*time.Millisecond)
	assert.False(t, c.GiantHeart())

	advance(c, 200*time.Millisecond)
	assert.True(t, c.GiantHeart())
	assert.Equal(t, Opening, c.Stage())

	advance(c, 3*time.Second)
	assert.False(t, c.GiantHeart())
	assert.Equal(t, Opened, c.Stage())
	assert.False(t, c.Open())
}

func TestSendLove(t *testing.T) {
	c := New(DefaultTimings(), 0)

	assert.Equal(t, 1, c.SendLove(10, 20))
	c.Update(500 * time.Millisecond)
	assert.Equal(t, 2, c.SendLove(30, 40))
	assert.Equal(t, 2, c.LoveCount())

	pops := c.Pops()
	require.Len(t, pops, 2)
	assert.Equal(t, 10.0, pops[0].X)
	assert.InDelta(t, 0.5, pops[0].Progress(), 1e-9)
	assert.Zero(t, pops[1].Progress())
	assert.NotEqual(t, pops[0].ID, pops[1].ID)

	c.Update(500 * time.Millisecond)
	require.Len(t, c.Pops(), 1)
	assert.Equal(t, 30.0, c.Pops()[0].X)

	c.Update(time.Second)
	assert.Empty(t, c.Pops())
	assert.Equal(t, 2, c.LoveCount())
}

func TestTimingsAccessor(t *testing.T) {
	tm := Timings{GiantHeartAt: 2 * time.Second, OpenedAt: 5 * time.Second, PopLifetime: time.Second}
	c := New(tm, 0)
	assert.Equal(t, tm, c.Timings())
}

func TestLightbox(t *testing.T) {
	c := New(DefaultTimings(), 3)

	assert.False(t, c.ShowPhoto(0), "closed card has no gallery")
	require.True(t, c.Open())
	advance(c, time.Second)
	assert.False(t, c.ShowPhoto(0), "gallery appears once opened")

	advance(c, 3*time.Second)
	require.Equal(t, Opened, c.Stage())
	assert.False(t, c.ShowPhoto(-1))
	assert.False(t, c.ShowPhoto(3))
	_, ok := c.ShownPhoto()
	assert.False(t, ok)

	require.True(t, c.ShowPhoto(2))
	i, ok := c.ShownPhoto()
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	require.True(t, c.ShowPhoto(1))
	i, _ = c.ShownPhoto()
	assert.Equal(t, 1, i)

	assert.True(t, c.HidePhoto())
	assert.False(t, c.HidePhoto())
	_, ok = c.ShownPhoto()
	assert.False(t, ok)
}

func TestDefaultGallery(t *testing.T) {
	photos := DefaultPhotos()
	assert.Len(t, photos, 9)
	for _, p := range photos {
		assert.Empty(t, p.Path)
		assert.NotEmpty(t, p.Caption)
	}
	assert.NotEmpty(t, DefaultReasons())
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "opening", Opening.String())
	assert.Equal(t, "unknown", Stage(9).String())
}

func TestNewFloaters(t *testing.T) {
	cfg := DefaultFloaterConfig()
	fs := NewFloaters(cfg, rand.New(rand.NewPCG(7, 7)))
	require.Len(t, fs, cfg.Count)
	for _, f := range fs {
		assert.GreaterOrEqual(t, f.Duration, cfg.MinDuration)
		assert.LessOrEqual(t, f.Duration, cfg.MaxDuration)
		assert.LessOrEqual(t, f.Delay, cfg.MaxDelay)
		assert.GreaterOrEqual(t, f.Size, cfg.MinSize)
		assert.Contains(t, cfg.Colors, f.Color)
	}
}

func TestFloaterAt(t *testing.T) {
	f := Floater{Left: 0.5, Duration: 10, Delay: 2, Size: 20}

	cases := []struct {
		name    string
		t       float64
		visible bool
		y       float64
		opacity float64
	}{
		{"before delay", 1, false, 0, 0},
		{"fading in", 2.5, true, 520 - 0.05*540, 0.35},
		{"mid rise", 7, true, 520 - 0.5*540, 0.7},
		{"fading out", 11.5, true, 520 - 0.95*540, 0.35},
		{"looped", 17, true, 520 - 0.5*540, 0.7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := f.At(c.t, 800, 500)
			assert.Equal(t, c.visible, s.Visible)
			if !c.visible {
				return
			}
			assert.Equal(t, 400.0, s.X)
			assert.InDelta(t, c.y, s.Y, 1e-6)
			assert.InDelta(t, c.opacity, s.Opacity, 1e-6)
		})
	}
}
