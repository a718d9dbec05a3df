package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

const stickDeadzone = 0.2

// Input is one frame of player intent.
type Input struct {
	Move     cp.Vector
	Pause    bool
	Damage   bool
	Snapshot bool
}

func readInput() Input {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	in := Input{
		Pause:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Damage:   inpututil.IsKeyJustPressed(ebiten.KeyH),
		Snapshot: inpututil.IsKeyJustPressed(ebiten.KeyF9),
	}

	var sx, sy float64
	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		sx = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		sy = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		in.Pause = in.Pause || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}

	in.Move = moveVector(left, right, up, down, sx, sy)
	return in
}

// moveVector combines keyboard directions with a stick. A stick outside the
// deadzone wins over the keys.
func moveVector(left, right, up, down bool, sx, sy float64) cp.Vector {
	if math.Hypot(sx, sy) > stickDeadzone {
		return cp.Vector{X: sx, Y: sy}
	}

	var v cp.Vector
	if left {
		v.X -= 1
	}
	if right {
		v.X += 1
	}
	if up {
		v.Y -= 1
	}
	if down {
		v.Y += 1
	}
	return v
}
