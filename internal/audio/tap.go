package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap wraps a beep.Streamer and keeps the last N samples in a ring
// buffer so the renderer can read a loudness level from recently played audio.
type levelTap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func newLevelTap(src beep.Streamer, ringSize int) *levelTap {
	return &levelTap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.filled = min(t.filled+n, len(t.buffer))
		t.mu.Unlock()
	}
	return n, ok
}

func (t *levelTap) Err() error { return t.Source.Err() }

// level returns the compressed RMS of the last n mono samples, in [0, 1].
func (t *levelTap) level(n int) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, t.filled)
	if n == 0 {
		return 0
	}
	var sumSquares float64
	idx := t.nextIndex
	for i := 0; i < n; i++ {
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		mono := (t.buffer[idx][0] + t.buffer[idx][1]) * 0.5
		sumSquares += mono * mono
	}
	rms := math.Sqrt(sumSquares / float64(n))
	return math.Min(1, math.Pow(rms, 0.3))
}
