package pursuer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"time"
)

const (
	DefaultSpeed         = 2.0
	DefaultSpawnInterval = 1000 * time.Millisecond

	maxIntervalMillis = float64(math.MaxInt64 / int64(time.Millisecond))
)

var (
	ErrDestroyed          = errors.New("pursuer: controller destroyed")
	ErrAlreadyInitialized = errors.New("pursuer: controller already initialized")
	ErrNoAvatar           = errors.New("pursuer: avatar is nil")
	ErrBadFootprint       = errors.New("pursuer: template footprint width must be positive and finite")
)

// Config wires a Controller to its collaborators. Zero fields get defaults.
type Config struct {
	Viewport      Viewport
	Avatar        Avatar
	Speed         float64
	SpawnInterval time.Duration
	Clock         Clock
	Rand          Random
	// Dispatch runs f on the goroutine that calls Update. Spawn timers fire
	// through it. Defaults to calling f directly, which is only safe with a
	// Clock that fires synchronously.
	Dispatch func(f func())
}

// Controller owns the pursuer population.
type Controller struct {
	viewport Viewport
	avatar   Avatar
	rng      Random
	speed    float64

	spawner   *Spawner
	template  Template
	radius    float64
	pursuers  []*Pursuer
	nextID    int
	destroyed bool
}

// NewController creates a controller. Spawning starts after Init.
func NewController(cfg Config) *Controller {
	if cfg.Speed <= 0 {
		cfg.Speed = DefaultSpeed
	}
	if cfg.SpawnInterval <= 0 {
		cfg.SpawnInterval = DefaultSpawnInterval
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(1, 1))
	}
	if cfg.Viewport == nil {
		cfg.Viewport = FixedViewport{}
	}

	c := &Controller{
		viewport: cfg.Viewport,
		avatar:   cfg.Avatar,
		rng:      cfg.Rand,
		speed:    cfg.Speed,
	}
	c.spawner = NewSpawner(cfg.Clock, cfg.Dispatch, cfg.SpawnInterval, func() { c.SpawnOne() })
	return c
}

// Init awaits the template loader once, then starts the spawner.
func (c *Controller) Init(ctx context.Context, load TemplateLoader) error {
	if c.destroyed {
		return ErrDestroyed
	}
	if c.template != nil {
		return ErrAlreadyInitialized
	}
	if c.avatar == nil {
		return ErrNoAvatar
	}

	tpl, err := load(ctx)
	if err != nil {
		return fmt.Errorf("pursuer: load template: %w", err)
	}
	w, _ := tpl.Footprint()
	if !(w > 0) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: got %v", ErrBadFootprint, w)
	}

	c.template = tpl
	c.radius = w / 2
	c.spawner.Start()
	log.Printf("pursuer: template ready, radius=%.1f interval=%s", c.radius, c.spawner.Interval())
	return nil
}

// Update runs one steering pass over the population present when it is called.
func (c *Controller) Update() {
	if c.destroyed || len(c.pursuers) == 0 || c.avatar == nil {
		return
	}
	pop := c.pursuers[:len(c.pursuers):len(c.pursuers)]
	Steer(pop, c.avatar.Position(), c.avatar.Radius())
}

// SpawnOne places a pursuer on a random viewport edge. It is a no-op before the
// template is loaded and after Destroy.
func (c *Controller) SpawnOne() (*Pursuer, bool) {
	if c.template == nil || c.destroyed {
		return nil, false
	}
	edge := Edge(c.rng.IntN(edgeCount))
	return c.SpawnAt(edge, c.rng.Float64())
}

// SpawnAt places a pursuer at fraction r along edge.
func (c *Controller) SpawnAt(edge Edge, r float64) (*Pursuer, bool) {
	if c.template == nil || c.destroyed {
		return nil, false
	}
	w, h := c.viewport.Size()
	c.nextID++
	p := &Pursuer{
		ID:       c.nextID,
		Position: EdgePoint(edge, r, w, h),
		Radius:   c.radius,
		Speed:    c.speed,
		Visual:   c.template.Instantiate(),
	}
	c.pursuers = append(c.pursuers, p)
	return p, true
}

// Population returns the live pursuers in spawn order. Callers must not
// modify the pursuers or the returned slice.
func (c *Controller) Population() []*Pursuer {
	return c.pursuers[:len(c.pursuers):len(c.pursuers)]
}

// Len returns the population size.
func (c *Controller) Len() int {
	return len(c.pursuers)
}

// SpawnInterval returns the spawn cadence.
func (c *Controller) SpawnInterval() time.Duration {
	return c.spawner.Interval()
}

// SetSpawnInterval changes the spawn cadence. Non-positive values are ignored
// and leave the current timer untouched.
func (c *Controller) SetSpawnInterval(d time.Duration) bool {
	if !c.spawner.SetInterval(d) {
		return false
	}
	log.Printf("pursuer: spawn interval set to %s", d)
	return true
}

// Speed returns the speed given to newly spawned pursuers.
func (c *Controller) Speed() float64 {
	return c.speed
}

// SetSpeed changes the speed of future spawns. Existing pursuers keep theirs.
func (c *Controller) SetSpeed(v float64) bool {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	c.speed = v
	return true
}

// Spawning reports whether the spawn timer is active.
func (c *Controller) Spawning() bool {
	return c.spawner.Running()
}

// Pause stops the spawn timer.
func (c *Controller) Pause() {
	c.spawner.Stop()
}

// Resume restarts the spawn timer after Pause.
func (c *Controller) Resume() {
	if c.template == nil || c.destroyed {
		return
	}
	c.spawner.Start()
}

// Destroy stops spawning, releases every visual and clears the population.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.spawner.Stop()
	for _, p := range c.pursuers {
		if p.Visual != nil {
			p.Visual.Release()
		}
	}
	c.pursuers = nil
	c.template = nil
}

// IntervalFromMillis converts a tuning value in milliseconds to a duration.
// NaN, infinities and non-positive values are rejected.
func IntervalFromMillis(v float64) (time.Duration, bool) {
	if math.IsNaN(v) || v <= 0 || v > maxIntervalMillis {
		return 0, false
	}
	d := time.Duration(v * float64(time.Millisecond))
	if d <= 0 {
		return 0, false
	}
	return d, true
}
