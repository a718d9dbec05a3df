// Package difficulty runs a tengo script that retunes the spawn cadence as a
// session goes on.
package difficulty

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pursuit/prefabs"
	"github.com/milk9111/pursuit/pursuer"
)

// Ramp evaluates a compiled script every Every of play time. The script sees
// population, elapsed_ms and interval_ms, and may assign interval.
type Ramp struct {
	Name  string
	Every time.Duration

	compiled *tengo.Compiled
	elapsed  time.Duration
	pending  time.Duration
}

// New compiles src. every <= 0 means once per second.
func New(name string, src []byte, every time.Duration) (*Ramp, error) {
	if strings.TrimSpace(string(src)) == "" {
		return nil, fmt.Errorf("difficulty: script %s is empty", name)
	}
	if every <= 0 {
		every = time.Second
	}

	script := tengo.NewScript(src)
	_ = script.Add("population", 0)
	_ = script.Add("elapsed_ms", int64(0))
	_ = script.Add("interval_ms", int64(0))
	_ = script.Add("interval", nil)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("difficulty: compile %s: %w", name, err)
	}

	return &Ramp{Name: name, Every: every, compiled: compiled}, nil
}

// Load compiles a script from the prefabs scripts directory.
func Load(name string, every time.Duration) (*Ramp, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("difficulty: load %s: %w", name, err)
	}
	return New(name, src, every)
}

// Elapsed is the play time accumulated through Advance.
func (r *Ramp) Elapsed() time.Duration {
	if r == nil {
		return 0
	}
	return r.elapsed
}

// Continue carries prev's play clock over, so a reloaded script keeps its
// elapsed_ms.
func (r *Ramp) Continue(prev *Ramp) {
	if r == nil || prev == nil {
		return
	}
	r.elapsed = prev.elapsed
	r.pending = prev.pending
}

// Advance adds dt of play time and evaluates the script each time another
// Every has passed, or another second when Every is not positive. It reports a new interval only when the script produced a
// valid value different from current.
func (r *Ramp) Advance(dt time.Duration, population int, current time.Duration) (time.Duration, bool) {
	if r == nil || dt <= 0 {
		return 0, false
	}
	every := r.Every
	if every <= 0 {
		every = time.Second
	}
	r.elapsed += dt
	r.pending += dt
	if r.pending < every {
		return 0, false
	}
	r.pending %= every
	return r.Evaluate(population, r.elapsed, current)
}

// Evaluate runs the script once.
func (r *Ramp) Evaluate(population int, elapsed, current time.Duration) (time.Duration, bool) {
	if r == nil || r.compiled == nil {
		return 0, false
	}

	if err := r.set(population, elapsed, current); err != nil {
		log.Printf("difficulty: %s: %v", r.Name, err)
		return 0, false
	}
	if err := r.compiled.Run(); err != nil {
		log.Printf("difficulty: %s: run: %v", r.Name, err)
		return 0, false
	}
	if !r.compiled.IsDefined("interval") {
		return 0, false
	}

	var ms float64
	switch v := r.compiled.Get("interval").Value().(type) {
	case int64:
		ms = float64(v)
	case float64:
		ms = v
	default:
		log.Printf("difficulty: %s: ignoring non-numeric interval %v", r.Name, v)
		return 0, false
	}

	d, ok := pursuer.IntervalFromMillis(ms)
	if !ok {
		log.Printf("difficulty: %s: ignoring interval %vms", r.Name, ms)
		return 0, false
	}
	if d == current {
		return 0, false
	}
	return d, true
}

func (r *Ramp) set(population int, elapsed, current time.Duration) error {
	if err := r.compiled.Set("population", population); err != nil {
		return err
	}
	if err := r.compiled.Set("elapsed_ms", elapsed.Milliseconds()); err != nil {
		return err
	}
	if err := r.compiled.Set("interval_ms", current.Milliseconds()); err != nil {
		return err
	}
	return r.compiled.Set("interval", nil)
}
