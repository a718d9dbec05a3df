package pursuer

import (
	"context"
	"time"

	"github.com/jakecoffman/cp"
)

type fakeClock struct {
	now    time.Time
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Time
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(0, 0)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{at: c.now.Add(d), seq: c.seq, f: f}
	c.seq++
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves time forward, firing due timers in deadline order.
func (c *fakeClock) Advance(d time.Duration) {
	end := c.now.Add(d)
	for {
		next := c.nextDue(end)
		if next == nil {
			break
		}
		c.now = next.at
		next.fired = true
		next.f()
	}
	c.now = end
}

func (c *fakeClock) nextDue(end time.Time) *fakeTimer {
	var best *fakeTimer
	for _, t := range c.timers {
		if t.stopped || t.fired || t.at.After(end) {
			continue
		}
		if best == nil || t.at.Before(best.at) || (t.at.Equal(best.at) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// Pending counts timers that are armed and not yet fired.
func (c *fakeClock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// queue collects dispatched closures until drained, like the frame loop does.
type queue struct {
	items []func()
}

func (q *queue) post(f func()) { q.items = append(q.items, f) }

func (q *queue) drain() int {
	items := q.items
	q.items = nil
	for _, f := range items {
		f()
	}
	return len(items)
}

type stubVisual struct {
	released int
}

func (v *stubVisual) Release() { v.released++ }

type stubTemplate struct {
	w, h    float64
	visuals []*stubVisual
}

func (t *stubTemplate) Footprint() (float64, float64) { return t.w, t.h }

func (t *stubTemplate) Instantiate() Visual {
	v := &stubVisual{}
	t.visuals = append(t.visuals, v)
	return v
}

func loaderFor(tpl Template) TemplateLoader {
	return func(context.Context) (Template, error) { return tpl, nil }
}

type stubAvatar struct {
	pos    cp.Vector
	radius float64
}

func (a *stubAvatar) Position() cp.Vector { return a.pos }
func (a *stubAvatar) Radius() float64     { return a.radius }

// fixedRand always picks the same edge and fraction.
type fixedRand struct {
	edge Edge
	r    float64
}

func (f fixedRand) IntN(n int) int   { return int(f.edge) % n }
func (f fixedRand) Float64() float64 { return f.r }

func vec(x, y float64) cp.Vector { return cp.Vector{X: x, Y: y} }
