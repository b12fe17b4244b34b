// Kernel preview tool - interactive visualization with sliders.
//
// Plots the repulsion kernel and the attraction/growth kernel over their
// input range so parameter sets can be eyeballed before a run.
//
// Usage: go run ./cmd/kernelpreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/calder-hay/plenia/components"
	"github.com/calder-hay/plenia/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 640
	plotWidth    = 620
	plotHeight   = 280
	panelX       = float32(plotWidth + 30)
	panelWidth   = windowWidth - plotWidth - 60
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Kernel Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := components.DefaultParams()

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawRepulsionPlot(10, 10, params.CRep)
		drawRadialPlot(10, 20+plotHeight, params)

		panelY := float32(10)
		rl.DrawText("Creature Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 40

		params.CRep = slider(&panelY, "c_rep (repulsion strength)", params.CRep, 0, 4)
		params.MuK = slider(&panelY, "mu_k (attraction center)", params.MuK, 0.5, 10)
		params.SigmaK = slider(&panelY, "sigma_k (attraction width)", params.SigmaK, 0.1, 4)
		params.WK = slider(&panelY, "w_k (attraction weight)", params.WK, 0.001, 0.2)
		params.MuG = slider(&panelY, "mu_g (growth center)", params.MuG, 0.05, 2)
		params.SigmaG = slider(&panelY, "sigma_g (growth width)", params.SigmaG, 0.01, 1)

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY + 10, Width: 120, Height: 30}, "Reset All") {
			params = components.DefaultParams()
		}

		rl.EndDrawing()
	}
}

// slider draws one labeled parameter slider and advances the panel cursor.
func slider(panelY *float32, label string, value, minV, maxV float32) float32 {
	rl.DrawText(label, int32(panelX), int32(*panelY), 14, rl.Gray)
	*panelY += 18
	v := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: *panelY, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf("%.3g", minV), fmt.Sprintf("%.3g", maxV),
		value, minV, maxV,
	)
	rl.DrawText(fmt.Sprintf("%.3f", v), int32(panelX+float32(panelWidth-70)), int32(*panelY+2), 16, rl.DarkGray)
	*panelY += 35
	return v
}

// drawRepulsionPlot plots repulsion(r) for r in [0, 1.5]. The hard cutoff
// at r = 1 shows as the curve pinning to zero.
func drawRepulsionPlot(x, y int32, cRep float32) {
	rl.DrawRectangleLines(x, y, plotWidth, plotHeight, rl.DarkGray)
	rl.DrawText("repulsion(r)", x+8, y+8, 16, rl.DarkGray)

	maxVal, _ := systems.Repulsion(0, cRep)
	if maxVal <= 0 {
		maxVal = 1
	}

	const samples = 256
	var prevX, prevY int32
	for i := 0; i <= samples; i++ {
		r := 1.5 * float32(i) / samples
		v, _ := systems.Repulsion(r, cRep)

		px := x + int32(float32(plotWidth)*r/1.5)
		py := y + plotHeight - int32(float32(plotHeight-20)*v/maxVal) - 10
		if i > 0 {
			rl.DrawLine(prevX, prevY, px, py, rl.Maroon)
		}
		prevX, prevY = px, py
	}

	// Cutoff marker at r = 1
	cutX := x + int32(float32(plotWidth)/1.5)
	rl.DrawLine(cutX, y, cutX, y+plotHeight, rl.LightGray)
	rl.DrawText("r=1", cutX+4, y+plotHeight-20, 14, rl.Gray)
}

// drawRadialPlot plots the attraction kernel over distance and the growth
// kernel over potential, normalized to their peaks.
func drawRadialPlot(x, y int32, p components.Params) {
	rl.DrawRectangleLines(x, y, plotWidth, plotHeight, rl.DarkGray)
	rl.DrawText("attraction K(r) [blue], growth G(u) [green]", x+8, y+8, 16, rl.DarkGray)

	const samples = 256
	var prevX, prevY int32
	for i := 0; i <= samples; i++ {
		r := 12 * float32(i) / samples
		v, _ := systems.Radial(r, p.MuK, p.SigmaK, p.WK)

		px := x + int32(float32(plotWidth)*r/12)
		py := y + plotHeight - int32(float32(plotHeight-20)*v/p.WK) - 10
		if i > 0 {
			rl.DrawLine(prevX, prevY, px, py, rl.DarkBlue)
		}
		prevX, prevY = px, py
	}

	for i := 0; i <= samples; i++ {
		u := 2 * float32(i) / samples
		v, _ := systems.Radial(u, p.MuG, p.SigmaG, 1.0)

		px := x + int32(float32(plotWidth)*u/2)
		py := y + plotHeight - int32(float32(plotHeight-20)*v) - 10
		if i > 0 {
			rl.DrawLine(prevX, prevY, px, py, rl.DarkGreen)
		}
		prevX, prevY = px, py
	}
}
