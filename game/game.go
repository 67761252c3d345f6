// Package game assembles the simulation: it loads data, builds registries,
// spawns the player and stage, wires the system pipeline, and steps the
// world on a fixed timestep. The presentation layer only ever talks to
// Game: feed input frames in, read snapshots out.
package game

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/star1sakura/MajoSaipan-KontonSei/common"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/systems"
	"github.com/star1sakura/MajoSaipan-KontonSei/pattern"
	"github.com/star1sakura/MajoSaipan-KontonSei/prefabs"
	"github.com/star1sakura/MajoSaipan-KontonSei/script"
)

// Input is the raw button state for one display frame.
type Input struct {
	Left, Right, Up, Down bool
	Focus                 bool
	Shoot                 bool
	Bomb                  bool
}

// Config sets up a run.
type Config struct {
	Width, Height float64
	Character     string
	Stage         StageFunc
	Tunables      *components.Tunables
	// Seed drives the shared script RNG; the same seed and inputs replay
	// the same run. Zero means seed 1.
	Seed int64
	Log  *zap.Logger
}

// Game is one run of the simulation.
type Game struct {
	world *ecs.World
	log   *zap.Logger

	accumulator float64
	prevBomb    bool
	prevShoot   bool
}

// New builds a ready-to-step game. It fails loudly on bad data: a missing
// character preset or unreadable prefab file is a startup error, not a
// runtime fallback.
func New(cfg Config) (*Game, error) {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 384, 448
	}
	if cfg.Stage == nil {
		cfg.Stage = Stage1
	}

	characters, err := prefabs.LoadCharacters()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	archetypes, err := prefabs.LoadArchetypes()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	bullets, err := prefabs.LoadBullets()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	character, err := findCharacter(characters, cfg.Character)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	w := ecs.NewWorld(cfg.Width, cfg.Height)

	tun := components.DefaultTunables()
	if cfg.Tunables != nil {
		tun = *cfg.Tunables
	}
	ecs.SetResource(w, tun)
	ecs.SetResource(w, &components.StageStats{})
	ecs.SetResource(w, pattern.NewTable(log))
	ecs.SetResource(w, components.HudData{})
	ecs.SetResource(w, components.BossHudData{})

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	ecs.SetResource(w, rand.New(rand.NewSource(seed)))

	registry := NewRegistry(archetypes, bullets, log)
	registerBoss1(registry, log)
	registry.install(w)
	ecs.SetResource(w, script.SpawnFunc(registry.SpawnEnemy))

	spawnPlayer(w, character)
	newStageController(w, cfg.Stage, log)

	addSystems(w, log)

	return &Game{world: w, log: log}, nil
}

// addSystems wires the pipeline. Order is load-bearing: collision runs
// after all movement, and every event consumer runs after collision.
func addSystems(w *ecs.World, log *zap.Logger) {
	w.AddSystem(systems.NewTaskSystem())
	w.AddSystem(systems.NewPlayerMovementSystem())
	w.AddSystem(systems.NewOptionSystem())
	w.AddSystem(systems.NewPlayerShootSystem())
	w.AddSystem(systems.NewPoCSystem())
	w.AddSystem(systems.NewGravitySystem())
	w.AddSystem(systems.NewItemMagnetSystem())
	w.AddSystem(systems.NewEnemyShootSystem())
	w.AddSystem(systems.NewDelayedShotSystem())
	w.AddSystem(systems.NewMotionProgramSystem())
	w.AddSystem(systems.NewHomingSystem())
	w.AddSystem(systems.NewPathSystem())
	w.AddSystem(systems.NewMovementSystem())
	w.AddSystem(systems.NewBoundarySystem())
	w.AddSystem(systems.NewLifetimeSystem())
	w.AddSystem(systems.NewCollisionSystem())
	w.AddSystem(systems.NewDamageSystem())
	w.AddSystem(systems.NewGrazeSystem())
	w.AddSystem(systems.NewPickupSystem(log))
	w.AddSystem(systems.NewPlayerDamageSystem())
	w.AddSystem(systems.NewBombSystem())
	w.AddSystem(systems.NewBombHitSystem())
	w.AddSystem(systems.NewEnemyDeathSystem())
	w.AddSystem(systems.NewBossHudSystem())
	w.AddSystem(systems.NewHudSystem())
}

// Advance consumes one display frame's worth of time, running as many
// fixed ticks as fit. After a long stall it runs at most MaxTicksPerFrame
// ticks and drops the leftover time, trading slowdown for stability.
func (g *Game) Advance(frameDT float64, in Input) {
	if g == nil {
		return
	}
	g.accumulator += frameDT
	ticks := 0
	for g.accumulator >= common.FixedDT {
		g.Tick(in)
		g.accumulator -= common.FixedDT
		ticks++
		if ticks >= common.MaxTicksPerFrame {
			g.accumulator = 0
			break
		}
	}
}

// Tick runs exactly one simulation step with the given input.
func (g *Game) Tick(in Input) {
	if g == nil {
		return
	}
	frame := components.InputFrame{
		Focus:        in.Focus,
		Shoot:        in.Shoot,
		ShootPressed: in.Shoot && !g.prevShoot,
		Bomb:         in.Bomb && !g.prevBomb,
	}
	g.prevBomb = in.Bomb
	g.prevShoot = in.Shoot
	if in.Left {
		frame.MoveX--
	}
	if in.Right {
		frame.MoveX++
	}
	if in.Up {
		frame.MoveY--
	}
	if in.Down {
		frame.MoveY++
	}
	ecs.SetResource(g.world, frame)
	g.world.Update(common.FixedDT)
}

// ReloadPrefabs re-reads the editable data files and swaps the data-driven
// registry entries into the running game. Enemies already on screen keep
// the stats they spawned with; anything spawned afterwards uses the new
// data. Call it from the simulation's own goroutine only.
func (g *Game) ReloadPrefabs() error {
	if g == nil {
		return nil
	}
	archetypes, err := prefabs.LoadArchetypes()
	if err != nil {
		return err
	}
	bullets, err := prefabs.LoadBullets()
	if err != nil {
		return err
	}
	registry := ecs.MustResource[*Registry](g.world)
	registry.Reload(archetypes, bullets)
	registry.install(g.world)
	return nil
}

// World exposes the underlying store, mainly for tests and tools.
func (g *Game) World() *ecs.World {
	if g == nil {
		return nil
	}
	return g.world
}
