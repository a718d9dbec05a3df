package pursuer

import "github.com/jakecoffman/cp"

// Edge is one side of the viewport.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft

	edgeCount = 4
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return "unknown"
	}
}

// EdgePoint places r in [0,1) along edge of a w x h viewport.
func EdgePoint(edge Edge, r, w, h float64) cp.Vector {
	switch edge {
	case EdgeTop:
		return cp.Vector{X: r * w, Y: 0}
	case EdgeRight:
		return cp.Vector{X: w, Y: r * h}
	case EdgeBottom:
		return cp.Vector{X: r * w, Y: h}
	default:
		return cp.Vector{X: 0, Y: r * h}
	}
}
