package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes pause, speed, and camera controls for the
// windowed mode.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyUp) && g.speed < 10 {
		g.speed++
	}
	if rl.IsKeyPressed(rl.KeyDown) && g.speed > 1 {
		g.speed--
	}

	// Single step while paused
	if g.paused && rl.IsKeyPressed(rl.KeyPeriod) {
		g.step()
	}

	// Camera pan: drag with the right mouse button
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		delta := rl.GetMouseDelta()
		g.cam.Pan(-delta.X, -delta.Y)
	}

	// Camera zoom: mouse wheel, anchored at the cursor
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		mouse := rl.GetMousePosition()
		factor := float32(1.1)
		if wheel < 0 {
			factor = 1 / 1.1
		}
		g.cam.AdjustZoom(factor, mouse.X, mouse.Y)
	}

	// Reset camera to the scene center
	if rl.IsKeyPressed(rl.KeyR) {
		g.cam.X = 0
		g.cam.Y = 0
	}
}
