// Command pursuitsim runs the pursuer controller headless on a manual clock
// and prints population statistics once per simulated second. It is used to
// tune arena specs and ramp scripts without opening a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/avatar"
	"github.com/milk9111/pursuit/difficulty"
	"github.com/milk9111/pursuit/loop"
	"github.com/milk9111/pursuit/prefabs"
	"github.com/milk9111/pursuit/pursuer"
)

const footprint = 32

func main() {
	configPath := flag.String("config", "", "arena YAML file (default prefabs/arena.yaml, falling back to the embedded copy)")
	seconds := flag.Int("seconds", 60, "simulated seconds")
	tps := flag.Int("tps", 60, "simulated ticks per second")
	seed := flag.Uint64("seed", 0, "random seed (0 uses the arena seed)")
	orbit := flag.Float64("orbit", 0, "avatar orbit radius around the centre (0 keeps it still)")
	dump := flag.Bool("dump", false, "print a YAML snapshot at the end")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("pursuitsim: ")

	spec, err := prefabs.LoadArenaSpec(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		spec.Seed = *seed
	}

	sim, err := newSim(spec, *tps, *orbit)
	if err != nil {
		log.Fatal(err)
	}
	defer sim.close()

	fmt.Printf("%6s %6s %10s %9s %9s\n", "t(s)", "pop", "interval", "overlaps", "min_gap")
	for s := 1; s <= *seconds; s++ {
		sim.runSecond()
		st := measure(sim.pursuers.Population(), sim.avatar.Position(), sim.avatar.Radius())
		fmt.Printf("%6d %6d %10s %9d %9.2f\n", s, sim.pursuers.Len(), sim.pursuers.SpawnInterval(), st.overlaps, st.minGap)
	}

	if *dump {
		b, err := prefabs.NewSnapshot(sim.pursuers, sim.avatar).Encode()
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(b)
	}
}

type headlessTemplate struct{}

func (headlessTemplate) Footprint() (float64, float64) { return footprint, footprint }
func (headlessTemplate) Instantiate() pursuer.Visual  { return nil }

type sim struct {
	tps    int
	orbit  float64
	w, h   float64
	tick   int
	clock  *loop.ManualClock
	queue  *loop.Queue
	avatar *avatar.Avatar

	pursuers *pursuer.Controller
	ramp     *difficulty.Ramp
}

func newSim(spec *prefabs.ArenaSpec, tps int, orbit float64) (*sim, error) {
	if tps <= 0 {
		return nil, fmt.Errorf("tps must be positive, got %d", tps)
	}
	s := &sim{
		tps:   tps,
		orbit: orbit,
		w:     spec.Viewport.Width,
		h:     spec.Viewport.Height,
		clock: loop.NewManualClock(time.Unix(0, 0)),
		queue: loop.NewQueue(),
	}
	s.avatar = avatar.New(cp.Vector{X: s.w / 2, Y: s.h/2 - orbit}, footprint, footprint, spec.Avatar.Speed, spec.Avatar.Health)

	interval, _ := spec.SpawnInterval()
	s.pursuers = pursuer.NewController(pursuer.Config{
		Viewport:      pursuer.FixedViewport{W: s.w, H: s.h},
		Avatar:        s.avatar,
		SpawnInterval: interval,
		Clock:         s.clock,
		Rand:          rand.New(rand.NewPCG(spec.Seed, spec.Seed)),
		Dispatch:      s.queue.Dispatch,
	})
	if v := spec.Pursuer.Speed; v != 0 && !s.pursuers.SetSpeed(v) {
		log.Printf("ignoring pursuer speed %v", v)
	}
	load := func(context.Context) (pursuer.Template, error) { return headlessTemplate{}, nil }
	if err := s.pursuers.Init(context.Background(), load); err != nil {
		return nil, err
	}

	if spec.Difficulty.Script != "" {
		r, err := difficulty.Load(spec.Difficulty.Script, spec.RampEvery())
		if err != nil {
			log.Printf("difficulty ramp disabled: %v", err)
		} else {
			s.ramp = r
		}
	}
	return s, nil
}

func (s *sim) runSecond() {
	dt := time.Second / time.Duration(s.tps)
	for i := 0; i < s.tps; i++ {
		s.step(dt)
	}
}

func (s *sim) step(dt time.Duration) {
	s.tick++
	s.clock.Advance(dt)
	s.queue.Drain()

	if s.orbit > 0 {
		// Tangent of a circle around the centre, clockwise.
		rel := s.avatar.Position().Sub(cp.Vector{X: s.w / 2, Y: s.h / 2})
		s.avatar.Move(cp.Vector{X: -rel.Y, Y: rel.X}.Normalize(), s.w, s.h)
	}

	s.pursuers.Update()
	if d, ok := s.ramp.Advance(dt, s.pursuers.Len(), s.pursuers.SpawnInterval()); ok {
		s.pursuers.SetSpawnInterval(d)
	}
}

func (s *sim) close() {
	s.pursuers.Destroy()
	s.queue.Close()
}

type stats struct {
	overlaps int
	minGap   float64
}

// measure counts overlapping pursuer pairs and the smallest distance between
// any pursuer's edge and the avatar's edge.
func measure(pop []*pursuer.Pursuer, target cp.Vector, targetRadius float64) stats {
	st := stats{minGap: math.Inf(1)}
	for i, p := range pop {
		if gap := p.Position.Distance(target) - p.Radius - targetRadius; gap < st.minGap {
			st.minGap = gap
		}
		for _, q := range pop[i+1:] {
			if p.Position.Distance(q.Position) < p.Radius+q.Radius {
				st.overlaps++
			}
		}
	}
	return st
}
