// Package pursuer owns the population of agents that chase the avatar: the
// spawn scheduler, the per-tick steering pass and population lifecycle.
package pursuer

import (
	"context"

	"github.com/jakecoffman/cp"
)

// Pursuer is a spawned agent that steers toward the avatar every tick.
type Pursuer struct {
	// ID is assigned in spawn order, starting at 1.
	ID       int
	Position cp.Vector
	Radius   float64
	Speed    float64
	Visual   Visual
}

// Avatar is the single externally-controlled entity pursuers chase.
type Avatar interface {
	Position() cp.Vector
	Radius() float64
}

// Viewport reports the simulation bounds used for edge placement.
type Viewport interface {
	Size() (w, h float64)
}

// Template is the loaded visual resource pursuers are instantiated from.
type Template interface {
	// Footprint is the rendered size of one instance.
	Footprint() (w, h float64)
	Instantiate() Visual
}

// Visual is the per-pursuer presentation handle owned by the renderer.
type Visual interface {
	Release()
}

// TemplateLoader loads the visual template. It is awaited once by Init.
type TemplateLoader func(ctx context.Context) (Template, error)

// overlaps reports whether two circles are closer than the sum of their radii.
func overlaps(a cp.Vector, ra float64, b cp.Vector, rb float64) bool {
	return a.Distance(b) < ra+rb
}

// FixedViewport is a Viewport of constant size.
type FixedViewport struct {
	W, H float64
}

func (v FixedViewport) Size() (float64, float64) { return v.W, v.H }
