package main

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
)

func TestMoveVector(t *testing.T) {
	cases := []struct {
		name                  string
		left, right, up, down bool
		sx, sy                float64
		want                  cp.Vector
	}{
		{name: "idle"},
		{name: "left", left: true, want: cp.Vector{X: -1}},
		{name: "opposed_keys_cancel", left: true, right: true},
		{name: "diagonal", right: true, down: true, want: cp.Vector{X: 1, Y: 1}},
		{name: "stick_in_deadzone", up: true, sx: 0.1, sy: 0.1, want: cp.Vector{Y: -1}},
		{name: "stick_wins", left: true, sx: 0.5, sy: -0.25, want: cp.Vector{X: 0.5, Y: -0.25}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := moveVector(c.left, c.right, c.up, c.down, c.sx, c.sy)
			if got != c.want {
				t.Fatalf("moveVector = %v, want %v", got, c.want)
			}
		})
	}
}

func TestReadouts(t *testing.T) {
	if got, want := statusLine(750*time.Millisecond, 12, 2), "Spawn: 750ms  Pursuers: 12  Speed: 2.0"; got != want {
		t.Fatalf("statusLine = %q, want %q", got, want)
	}
	if got, want := intervalText(time.Second), "Spawn every 1000ms"; got != want {
		t.Fatalf("intervalText = %q, want %q", got, want)
	}
}
