// Package frame provides a request-next-frame scheduler for tick-driven hosts
// such as an ebiten Update loop.
package frame

import (
	"sort"

	"github.com/iburimskiy/heart-burst/internal/burst"
)

// Loop queues frame callbacks and runs them on the following Tick.
// It is not safe for concurrent use; the owner calls it from its update loop.
type Loop struct {
	next    burst.FrameHandle
	pending map[burst.FrameHandle]func()
}

func NewLoop() *Loop {
	return &Loop{pending: map[burst.FrameHandle]func(){}}
}

func (l *Loop) RequestFrame(fn func()) burst.FrameHandle {
	l.next++
	l.pending[l.next] = fn
	return l.next
}

// CancelFrame drops a pending callback. Unknown handles are ignored.
func (l *Loop) CancelFrame(h burst.FrameHandle) {
	delete(l.pending, h)
}

// Tick runs every callback requested before the call, in request order.
// Callbacks requested while ticking wait for the next Tick; a callback may
// cancel a sibling that is still due.
func (l *Loop) Tick() int {
	if len(l.pending) == 0 {
		return 0
	}
	due := make([]burst.FrameHandle, 0, len(l.pending))
	for h := range l.pending {
		due = append(due, h)
	}
	sort.Slice(due, func(i, j int) bool { return due[i] < due[j] })

	ran := 0
	for _, h := range due {
		fn, ok := l.pending[h]
		if !ok {
			continue
		}
		delete(l.pending, h)
		fn()
		ran++
	}
	return ran
}

func (l *Loop) Pending() int { return len(l.pending) }
