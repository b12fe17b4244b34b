package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/calder-hay/plenia/config"
	"github.com/calder-hay/plenia/systems"
	"github.com/calder-hay/plenia/ui"
)

// Draw renders the current frame: every particle as a circle whose radius
// follows its accumulated repulsion, plus the HUD.
func (g *Game) Draw() {
	cfg := config.Cfg()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	particleCount := 0
	for ci := range g.creatures {
		c := &g.creatures[ci]
		particleCount += len(c.positions)

		for i := range c.positions {
			pos := c.positions[i]

			// Marker radius tracks local crowding. The clamp lives here,
			// not in the solver: near-zero RVal is a valid field state.
			radius := systems.DisplayRadius(
				c.params.CRep, c.fields[i].RVal,
				cfg.Derived.MinRadius32, cfg.Derived.MaxRadius32,
			)

			if !g.cam.IsVisible(pos.X, pos.Y, radius) {
				continue
			}

			sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)
			rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, radius*g.cam.Zoom, rl.White)
		}
	}

	g.drawHUD(particleCount)
	rl.EndDrawing()
}

func (g *Game) drawHUD(particleCount int) {
	ui.DrawHUD(ui.HUDData{
		Title:     "Particle Creature",
		Tick:      g.tick,
		FPS:       rl.GetFPS(),
		Creatures: len(g.creatures),
		Particles: particleCount,
		Speed:     g.speed,
		Paused:    g.paused,
	})
	ui.DrawControls(
		int32(config.Cfg().Screen.Height),
		"space pause | . step | up/down speed | wheel zoom | right-drag pan | r recenter",
	)
}
