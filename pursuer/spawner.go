package pursuer

import "time"

// Spawner fires a callback every interval. At most one timer is outstanding at
// any time; all state is touched only from the loop goroutine, timer callbacks
// reach it through dispatch.
type Spawner struct {
	clock    Clock
	dispatch func(func())
	interval time.Duration
	fire     func()

	timer   Timer
	next    time.Time
	gen     uint64
	running bool
}

// NewSpawner creates a stopped spawner.
func NewSpawner(clock Clock, dispatch func(func()), interval time.Duration, fire func()) *Spawner {
	if clock == nil {
		clock = SystemClock()
	}
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	return &Spawner{
		clock:    clock,
		dispatch: dispatch,
		interval: interval,
		fire:     fire,
	}
}

// Start begins periodic firing. It reports false if the spawner is already
// running or has no valid interval.
func (s *Spawner) Start() bool {
	if s == nil || s.running || s.interval <= 0 {
		return false
	}
	s.running = true
	s.gen++
	s.next = s.clock.Now().Add(s.interval)
	s.arm(s.gen, s.interval)
	return true
}

// Stop cancels the pending trigger. Firings already queued on the loop are
// discarded. Safe to call when not running.
func (s *Spawner) Stop() {
	if s == nil || !s.running {
		return
	}
	s.running = false
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Running reports whether a timer is active.
func (s *Spawner) Running() bool {
	return s != nil && s.running
}

// Interval returns the current period.
func (s *Spawner) Interval() time.Duration {
	if s == nil {
		return 0
	}
	return s.interval
}

// SetInterval changes the period. Non-positive values are ignored. A running
// spawner is restarted as stop-then-start so the new cadence begins now.
func (s *Spawner) SetInterval(d time.Duration) bool {
	if s == nil || d <= 0 {
		return false
	}
	s.interval = d
	if s.running {
		s.Stop()
		s.Start()
	}
	return true
}

func (s *Spawner) arm(gen uint64, d time.Duration) {
	s.timer = s.clock.AfterFunc(d, func() {
		s.dispatch(func() { s.tick(gen) })
	})
}

func (s *Spawner) tick(gen uint64) {
	if !s.running || gen != s.gen {
		return
	}

	now := s.clock.Now()
	s.next = s.next.Add(s.interval)
	if !s.next.After(now) {
		// fell behind: skip missed deadlines instead of bursting
		s.next = now.Add(s.interval)
	}
	s.arm(gen, s.next.Sub(now))

	if s.fire != nil {
		s.fire()
	}
}
