package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/calder-hay/plenia/components"
	"github.com/calder-hay/plenia/config"
	"github.com/calder-hay/plenia/systems"
	"github.com/calder-hay/plenia/telemetry"
)

// spawnCreatures builds the fixed scene: each creature gets the
// configured particle count spawned uniformly inside a disc around its
// center. Creature centers are spread along the x axis so multiple
// creatures stay visually separate; they never interact regardless.
func (g *Game) spawnCreatures(cfg *config.Config) {
	n := cfg.World.Creatures
	spacing := float32(cfg.World.CreatureSpacing)
	params := cfg.CreatureParams()

	g.creatures = make([]creature, 0, n)
	for ci := 0; ci < n; ci++ {
		cx := (float32(ci) - float32(n-1)/2) * spacing
		g.creatures = append(g.creatures, g.spawnCreature(cfg, params, cx, 0))
	}
	g.samples = make([]telemetry.CreatureSample, n)
}

// spawnCreature creates one creature's particles as ECS entities with
// zeroed field state. Initial positions come from the injected seeded
// rng, keeping scene construction reproducible.
func (g *Game) spawnCreature(cfg *config.Config, params components.Params, cx, cy float32) creature {
	positions := systems.SpawnDisc(g.rng, cfg.World.Particles, cx, cy, float32(cfg.World.SpawnRadius))

	c := creature{
		params:    params,
		entities:  make([]ecs.Entity, 0, len(positions)),
		positions: positions,
		fields:    make([]components.Fields, len(positions)),
	}
	for i := range positions {
		e := g.particleMapper.NewEntity(&positions[i], &components.Fields{})
		c.entities = append(c.entities, e)
	}
	return c
}
