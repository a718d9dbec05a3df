package pursuer

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"pgregory.net/rapid"
)

func TestSteer(t *testing.T) {
	cases := []struct {
		name         string
		target       cp.Vector
		targetRadius float64
		start        []Pursuer
		want         []cp.Vector
		moved        int
	}{
		{
			name:         "single_moves_speed_toward_target",
			target:       vec(400, 300),
			targetRadius: 16,
			start:        []Pursuer{{Position: vec(0, 300), Radius: 16, Speed: 2}},
			want:         []cp.Vector{vec(2, 300)},
			moved:        1,
		},
		{
			name:         "held_inside_target_personal_space",
			target:       vec(400, 300),
			targetRadius: 16,
			start:        []Pursuer{{Position: vec(420, 300), Radius: 16, Speed: 2}},
			want:         []cp.Vector{vec(420, 300)},
		},
		{
			name:         "earlier_moves_later_held_when_already_overlapping",
			target:       vec(10000, 300),
			targetRadius: 16,
			start: []Pursuer{
				{Position: vec(100, 300), Radius: 16, Speed: 2},
				{Position: vec(104, 300), Radius: 16, Speed: 2},
			},
			want:  []cp.Vector{vec(102, 300), vec(104, 300)},
			moved: 1,
		},
		{
			name:         "converging_on_same_gap_earlier_wins",
			target:       vec(20, 0),
			targetRadius: 1,
			start: []Pursuer{
				{Position: vec(0, 0), Radius: 16, Speed: 5},
				{Position: vec(40, 0), Radius: 16, Speed: 5},
			},
			want:  []cp.Vector{vec(5, 0), vec(40, 0)},
			moved: 1,
		},
		{
			name:         "converging_on_same_gap_order_swapped",
			target:       vec(20, 0),
			targetRadius: 1,
			start: []Pursuer{
				{Position: vec(40, 0), Radius: 16, Speed: 5},
				{Position: vec(0, 0), Radius: 16, Speed: 5},
			},
			want:  []cp.Vector{vec(35, 0), vec(0, 0)},
			moved: 1,
		},
		{
			name:         "zero_distance_zero_radii_stays_finite",
			target:       vec(50, 50),
			targetRadius: 0,
			start:        []Pursuer{{Position: vec(50, 50), Radius: 0, Speed: 3}},
			want:         []cp.Vector{vec(50, 50)},
		},
		{
			name:         "far_apart_both_move",
			target:       vec(400, 300),
			targetRadius: 16,
			start: []Pursuer{
				{Position: vec(0, 300), Radius: 16, Speed: 2},
				{Position: vec(800, 300), Radius: 16, Speed: 2},
			},
			want:  []cp.Vector{vec(2, 300), vec(798, 300)},
			moved: 2,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pop := make([]*Pursuer, len(c.start))
			for i := range c.start {
				p := c.start[i]
				pop[i] = &p
			}

			moved := Steer(pop, c.target, c.targetRadius)
			if moved != c.moved {
				t.Fatalf("moved = %d, want %d", moved, c.moved)
			}
			for i, p := range pop {
				if !near(p.Position, c.want[i]) {
					t.Fatalf("pursuer %d at %v, want %v", i, p.Position, c.want[i])
				}
			}
		})
	}
}

func near(a, b cp.Vector) bool {
	return a.Distance(b) < 1e-9
}

// An overlapping pair does not separate in place: the earlier pursuer walks
// through the later one, which stays held until the gap opens behind it.
func TestSteerEarlierPassesThroughLater(t *testing.T) {
	p := &Pursuer{ID: 1, Position: vec(100, 300), Radius: 16, Speed: 2}
	q := &Pursuer{ID: 2, Position: vec(105, 300), Radius: 16, Speed: 2}
	pop := []*Pursuer{p, q}
	target := vec(10000, 300)

	crossed := false
	released := 0
	for tick := 1; tick <= 40; tick++ {
		Steer(pop, target, 16)
		if p.Position.X > q.Position.X {
			crossed = true
		}
		if released == 0 && q.Position.X > 105+1e-6 {
			released = tick
		}
	}

	if !crossed {
		t.Fatalf("p never passed q: p=%v q=%v", p.Position, q.Position)
	}
	if released != 20 {
		t.Fatalf("q first moved on tick %d, want 20", released)
	}
	if p.Position.Distance(vec(180, 300)) > 1e-6 || q.Position.Distance(vec(147, 300)) > 1e-6 {
		t.Fatalf("final p=%v q=%v, want (180, 300) and (147, 300)", p.Position, q.Position)
	}
	if overlaps(p.Position, p.Radius, q.Position, q.Radius) {
		t.Fatalf("pair still overlaps after separating: p=%v q=%v", p.Position, q.Position)
	}
}

func TestSteerEmpty(t *testing.T) {
	if moved := Steer(nil, vec(0, 0), 10); moved != 0 {
		t.Fatalf("moved = %d, want 0", moved)
	}
}

func drawPopulation(t *rapid.T) ([]*Pursuer, cp.Vector, float64) {
	n := rapid.IntRange(1, 12).Draw(t, "n")
	pop := make([]*Pursuer, n)
	for i := range pop {
		pop[i] = &Pursuer{
			ID: i + 1,
			Position: vec(
				rapid.Float64Range(0, 400).Draw(t, "x"),
				rapid.Float64Range(0, 300).Draw(t, "y"),
			),
			Radius: rapid.Float64Range(1, 24).Draw(t, "radius"),
			Speed:  rapid.Float64Range(0.1, 8).Draw(t, "speed"),
		}
	}
	target := vec(
		rapid.Float64Range(0, 400).Draw(t, "tx"),
		rapid.Float64Range(0, 300).Draw(t, "ty"),
	)
	return pop, target, rapid.Float64Range(0, 24).Draw(t, "targetRadius")
}

func TestSteerKeepsTargetPersonalSpace(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pop, target, targetRadius := drawPopulation(t)
		inside := make(map[int]cp.Vector)
		for i, p := range pop {
			if p.Position.Distance(target) < p.Radius+targetRadius {
				inside[i] = p.Position
			}
		}

		Steer(pop, target, targetRadius)

		for i, pos := range inside {
			if pop[i].Position != pos {
				t.Fatalf("pursuer %d inside personal space moved from %v to %v", i, pos, pop[i].Position)
			}
		}
	})
}

func TestSteerCreatesNoNewOverlap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pop, target, targetRadius := drawPopulation(t)
		start := make([]cp.Vector, len(pop))
		for i, p := range pop {
			start[i] = p.Position
		}

		Steer(pop, target, targetRadius)

		for i := range pop {
			for j := i + 1; j < len(pop); j++ {
				sum := pop[i].Radius + pop[j].Radius
				if start[i].Distance(start[j]) < sum {
					continue
				}
				if d := pop[i].Position.Distance(pop[j].Position); d < sum {
					t.Fatalf("pursuers %d and %d overlap after tick: dist %v < %v", i, j, d, sum)
				}
			}
		}
	})
}

func TestSteerNeverProducesNaN(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pop, target, targetRadius := drawPopulation(t)
		if rapid.Bool().Draw(t, "onTarget") {
			pop[0].Position = target
			pop[0].Radius = 0
			targetRadius = 0
		}

		for tick := 0; tick < 5; tick++ {
			Steer(pop, target, targetRadius)
		}

		for i, p := range pop {
			if math.IsNaN(p.Position.X) || math.IsNaN(p.Position.Y) {
				t.Fatalf("pursuer %d position is NaN", i)
			}
		}
	})
}

func TestSteerMovesAtMostSpeed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pop, target, targetRadius := drawPopulation(t)
		start := make([]cp.Vector, len(pop))
		for i, p := range pop {
			start[i] = p.Position
		}

		Steer(pop, target, targetRadius)

		for i, p := range pop {
			if d := p.Position.Distance(start[i]); d > p.Speed+1e-9 {
				t.Fatalf("pursuer %d moved %v, speed %v", i, d, p.Speed)
			}
		}
	})
}
