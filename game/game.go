// Package game wires the field solver, integrator, and presentation into
// a running simulation.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/calder-hay/plenia/camera"
	"github.com/calder-hay/plenia/components"
	"github.com/calder-hay/plenia/config"
	"github.com/calder-hay/plenia/systems"
	"github.com/calder-hay/plenia/telemetry"
)

// Options configures a new game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// creature is one isolated simulation domain: a parameter set and the
// particles it owns. Particle counts are fixed for the run.
type creature struct {
	params   components.Params
	entities []ecs.Entity

	// Working copies synced with the ECS each step. positions feeds the
	// solver; fields holds its output for rendering and telemetry.
	positions []components.Position
	fields    []components.Fields
}

// Game holds the complete simulation state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	particleMapper *ecs.Map2[components.Position, components.Fields]
	posMap         *ecs.Map1[components.Position]
	fieldsMap      *ecs.Map1[components.Fields]

	solver    *systems.FieldSolver
	creatures []creature
	samples   []telemetry.CreatureSample

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	perf      *perfStats

	cam *camera.Camera

	tick           int32
	paused         bool
	speed          int // steps per frame multiplier (1-10)
	stepsPerUpdate int
}

// NewGameWithOptions creates a game, builds the scene, and prepares
// telemetry output. Config must be initialized first.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world:          world,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		particleMapper: ecs.NewMap2[components.Position, components.Fields](world),
		posMap:         ecs.NewMap1[components.Position](world),
		fieldsMap:      ecs.NewMap1[components.Fields](world),
		solver:         systems.NewFieldSolver(),
		perf:           newPerfStats(),
		speed:          1,
		stepsPerUpdate: max(opts.StepsPerUpdate, 1),
	}

	if !opts.Headless {
		g.cam = camera.New(
			float32(cfg.Screen.Width),
			float32(cfg.Screen.Height),
			cfg.Derived.Zoom32,
		)
	}

	g.spawnCreatures(cfg)

	out, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry output disabled", "error", err)
	} else if out != nil {
		if err := out.WriteConfig(cfg); err != nil {
			slog.Error("writing config snapshot", "error", err)
		}
		g.output = out
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindow, cfg.Physics.DT, opts.LogStats, g.output)

	slog.Info("scene ready",
		"creatures", len(g.creatures),
		"particles_per_creature", cfg.World.Particles,
		"seed", opts.Seed,
	)
	return g
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 { return g.tick }

// step advances every creature one simulation step: snapshot positions
// from the ECS, solve fields, integrate, and write the results back.
// Creatures never couple, so each runs its pipeline independently.
func (g *Game) step() {
	dt := config.Cfg().Derived.DT32

	solveStart := time.Now()
	for ci := range g.creatures {
		c := &g.creatures[ci]
		for i, e := range c.entities {
			pos := g.posMap.Get(e)
			if pos == nil {
				// A particle without a position means the scene graph is
				// corrupt; there is no recovering mid-step.
				panic(fmt.Sprintf("particle entity %v of creature %d has no position", e, ci))
			}
			c.positions[i] = *pos
		}

		fields := g.solver.Solve(c.params, c.positions)
		copy(c.fields, fields)
	}
	integrateStart := time.Now()

	for ci := range g.creatures {
		c := &g.creatures[ci]
		systems.IntegratePositions(c.positions, c.fields, dt)

		for i, e := range c.entities {
			pos := g.posMap.Get(e)
			fields := g.fieldsMap.Get(e)
			if pos == nil || fields == nil {
				panic(fmt.Sprintf("particle entity %v of creature %d lost its components", e, ci))
			}
			*pos = c.positions[i]
			*fields = c.fields[i]
		}
	}
	g.perf.record(integrateStart.Sub(solveStart), time.Since(integrateStart))

	g.tick++

	for ci := range g.creatures {
		g.samples[ci] = telemetry.CreatureSample{
			Positions: g.creatures[ci].positions,
			Fields:    g.creatures[ci].fields,
		}
	}
	g.collector.EndStep(g.tick, g.samples)

	if rec, ok := g.perf.flush(g.tick); ok {
		if g.output != nil {
			if err := g.output.AppendPerf(&rec); err != nil {
				slog.Error("writing perf record", "error", err)
			}
		}
		slog.Debug("step timing",
			"tick", rec.Tick,
			"solve_us", rec.SolveUs,
			"integrate_us", rec.IntegrateUs,
		)
	}
}

// Update runs one frame of the windowed mode: input, then simulation
// steps according to speed and pause state.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate*g.speed; i++ {
		g.step()
	}
}

// UpdateHeadless runs simulation steps without any input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// Unload releases the solver workers and closes telemetry output.
func (g *Game) Unload() {
	g.solver.Close()
	if g.output != nil {
		if err := g.output.Close(); err != nil {
			slog.Error("closing telemetry output", "error", err)
		}
	}
}
