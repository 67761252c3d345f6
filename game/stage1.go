package game

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/script"
)

// StageFunc is a stage timeline run as a task on the stage controller
// entity.
type StageFunc func(ctx *script.Context)

// Stage1 is the full first stage: fairy waves, a midboss, then the boss.
// The stage finishes when the boss dies.
func Stage1(ctx *script.Context) {
	w := ctx.World
	width, _ := w.Bounds()

	ctx.PlayMusic("stage1_theme")
	ctx.WaitSeconds(1.5)

	RunWave(ctx, LineWave("fairy_small", 5, width, 90))
	ctx.WaitSeconds(4)

	RunWave(ctx, ColumnWave("fairy_small", 4, width*0.25, 110, 20))
	RunWave(ctx, ColumnWave("fairy_small", 4, width*0.75, 110, 20))
	ctx.WaitSeconds(4)

	RunWave(ctx, SwayWave("fairy_large", 3, width, 70, 60, 0.4, 45))
	ctx.WaitSeconds(6)

	RunWave(ctx, FanWave("fairy_small", 5, cp.Vector{X: width / 2, Y: -20}, 100, 80))
	ctx.WaitSeconds(5)

	// Midboss: a single tough archetype parked mid-screen for a while.
	if mid, err := ctx.SpawnEnemy("midboss", cp.Vector{X: width / 2, Y: -30}); err == nil {
		runner := script.NewRunner(nil)
		midCtx := script.NewContext(w, mid, runner, nil)
		runner.Start("midboss", midCtx, midbossRoutine)
		w.SetTaskRunner(mid, runner)
	}
	ctx.WaitSeconds(18)

	RunWave(ctx, SwayWave("fairy_large", 4, width, 80, 70, 0.5, 30))
	ctx.WaitSeconds(6)

	// Boss.
	boss, err := ctx.SpawnEnemy(boss1Kind, cp.Vector{X: width / 2, Y: -40})
	if err != nil {
		w.SetStageFinished()
		return
	}
	for w.IsAlive(boss) {
		ctx.Wait(30)
	}

	ctx.WaitSeconds(3)
	w.SetStageFinished()
}

// midbossRoutine drops the midboss into position, lets its pattern run,
// then retreats. If it survives the retreat it flies off and despawns via
// the boundary system.
func midbossRoutine(ctx *script.Context) {
	w := ctx.World
	width, _ := w.Bounds()

	ctx.MoveTo(cp.Vector{X: width / 2, Y: 110}, 1.2, nil)
	for i := 0; i < 4; i++ {
		ctx.WaitSeconds(2)
		if !ctx.Alive() {
			return
		}
		ctx.RandomMove(
			cp.Vector{X: width * 0.25, Y: 80},
			cp.Vector{X: width * 0.75, Y: 140},
			1.0, nil)
	}
	if !ctx.Alive() {
		return
	}
	ctx.SetVelocity(cp.Vector{X: 0, Y: -140})
}

// newStageController spins up the entity whose tasks drive the stage.
func newStageController(w *ecs.World, stage StageFunc, log *zap.Logger) ecs.Entity {
	e := w.CreateEntity()
	runner := script.NewRunner(log)
	ctx := script.NewContext(w, e, runner, log)
	runner.Start("stage", ctx, stage)
	w.SetTaskRunner(e, runner)
	return e
}
