// Package avatar is the player-controlled entity the pursuers chase.
package avatar

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	DefaultSpeed  = 5.0
	DefaultHealth = 100
)

// Avatar holds position, footprint and health. Its position is mutated only
// by Move; everything else reads it.
type Avatar struct {
	pos          cp.Vector
	halfW, halfH float64
	speed        float64

	Health *Health
}

// New creates an avatar centred at pos with a w x h footprint.
func New(pos cp.Vector, w, h, speed float64, health int) *Avatar {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	if health <= 0 {
		health = DefaultHealth
	}
	return &Avatar{
		pos:    pos,
		halfW:  w / 2,
		halfH:  h / 2,
		speed:  speed,
		Health: NewHealth(health),
	}
}

// Position returns the avatar centre.
func (a *Avatar) Position() cp.Vector {
	if a == nil {
		return cp.Vector{}
	}
	return a.pos
}

// Radius is half the rendered width.
func (a *Avatar) Radius() float64 {
	if a == nil {
		return 0
	}
	return a.halfW
}

// Speed returns the distance moved per tick at full input.
func (a *Avatar) Speed() float64 {
	return a.speed
}

// Move steps the avatar along dir and keeps its footprint inside a w x h
// viewport. Inputs longer than 1 (diagonals) are normalised.
func (a *Avatar) Move(dir cp.Vector, w, h float64) {
	if a == nil {
		return
	}
	if l := dir.Length(); l > 1 {
		dir = dir.Mult(1 / l)
	}
	next := a.pos.Add(dir.Mult(a.speed))
	a.pos = cp.Vector{
		X: clampLow(next.X, a.halfW, w-a.halfW),
		Y: clampLow(next.Y, a.halfH, h-a.halfH),
	}
}

// clampLow clamps v to [lo, hi]; lo wins when the range is empty.
func clampLow(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
