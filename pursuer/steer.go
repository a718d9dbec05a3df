package pursuer

import "github.com/jakecoffman/cp"

// Steer moves every pursuer in pop up to its speed toward target, in order.
// A pursuer holds position when it is inside the target's personal space or
// when its candidate position would overlap another pursuer. It returns the
// number of pursuers that moved.
//
// Earlier pursuers have priority: a candidate is checked against the positions
// earlier pursuers committed this tick and the start-of-tick positions of
// later ones, ignoring a later pursuer it already overlapped at tick start.
// The first conflict found holds the pursuer.
func Steer(pop []*Pursuer, target cp.Vector, targetRadius float64) int {
	if len(pop) == 0 {
		return 0
	}

	start := make([]cp.Vector, len(pop))
	for i, p := range pop {
		start[i] = p.Position
	}

	moved := 0
	for i, p := range pop {
		delta := target.Sub(p.Position)
		dist := delta.Length()
		if dist < p.Radius+targetRadius {
			continue
		}

		denom := dist
		if denom == 0 {
			denom = 1
		}
		candidate := p.Position.Add(delta.Mult(p.Speed / denom))

		if dist == 0 || blocked(pop, start, i, candidate) {
			continue
		}
		p.Position = candidate
		moved++
	}
	return moved
}

func blocked(pop []*Pursuer, start []cp.Vector, i int, candidate cp.Vector) bool {
	p := pop[i]
	for j, q := range pop {
		if j == i {
			continue
		}
		if j > i && overlaps(start[i], p.Radius, start[j], q.Radius) {
			continue
		}
		if overlaps(candidate, p.Radius, q.Position, q.Radius) {
			return true
		}
	}
	return false
}
