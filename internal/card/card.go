// Package card holds the timer-driven state of the greeting card: the
// envelope stages, the giant heart overlay, the send-love counter and the
// photo lightbox.
package card

import "time"

type Stage int

const (
	Closed Stage = iota
	Opening
	Opened
)

func (s Stage) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Opened:
		return "opened"
	}
	return "unknown"
}

// Timings are measured from the moment the envelope is opened.
type Timings struct {
	GiantHeartAt time.Duration
	OpenedAt     time.Duration
	PopLifetime  time.Duration
}

func DefaultTimings() Timings {
	return Timings{
		GiantHeartAt: time.Second,
		OpenedAt:     4 * time.Second,
		PopLifetime:  time.Second,
	}
}

// Pop is a small heart floating up from a send-love click.
type Pop struct {
	ID   int
	X, Y float64
	Age  time.Duration

	lifetime time.Duration
}

// Progress is the pop's age as a fraction of its lifetime, in [0, 1].
func (p Pop) Progress() float64 {
	if p.lifetime <= 0 {
		return 1
	}
	f := float64(p.Age) / float64(p.lifetime)
	if f > 1 {
		return 1
	}
	return f
}

type Card struct {
	timings    Timings
	stage      Stage
	sinceOpen  time.Duration
	giantHeart bool
	loveCount  int
	pops       []Pop
	nextPopID  int

	photos  int
	shown   int
	showing bool
}

// New returns a closed card whose gallery holds the given number of photos.
func New(t Timings, photos int) *Card {
	return &Card{timings: t, photos: photos}
}

// Timings returns the timings the card was created with.
func (c *Card) Timings() Timings { return c.timings }

func (c *Card) Stage() Stage { return c.stage }

// GiantHeart reports whether the "Love You!" overlay is visible.
func (c *Card) GiantHeart() bool { return c.giantHeart }

// SinceOpen is the time elapsed since Open, zero while closed.
func (c *Card) SinceOpen() time.Duration { return c.sinceOpen }

func (c *Card) LoveCount() int { return c.loveCount }

// Pops returns the live send-love pops, oldest first.
func (c *Card) Pops() []Pop { return c.pops }

// Open starts the opening sequence. It returns false unless the card is
// closed.
func (c *Card) Open() bool {
	if c.stage != Closed {
		return false
	}
	c.stage = Opening
	c.sinceOpen = 0
	return true
}

// SendLove counts a click and spawns a pop at (x, y).
func (c *Card) SendLove(x, y float64) int {
	c.loveCount++
	c.nextPopID++
	c.pops = append(c.pops, Pop{ID: c.nextPopID, X: x, Y: y, lifetime: c.timings.PopLifetime})
	return c.loveCount
}

// Update advances the opening sequence and ages pops by dt.
func (c *Card) Update(dt time.Duration) {
	if c.stage == Opening {
		c.sinceOpen += dt
		if c.sinceOpen >= c.timings.GiantHeartAt {
			c.giantHeart = true
		}
		if c.sinceOpen >= c.timings.OpenedAt {
			c.giantHeart = false
			c.stage = Opened
		}
	} else if c.stage == Opened {
		c.sinceOpen += dt
	}

	live := c.pops[:0]
	for _, p := range c.pops {
		p.Age += dt
		if p.Age < p.lifetime {
			live = append(live, p)
		}
	}
	c.pops = live
}
