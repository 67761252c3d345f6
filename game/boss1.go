package game

import (
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/pattern"
	"github.com/star1sakura/MajoSaipan-KontonSei/script"
)

const (
	boss1Kind   = "stage1_boss"
	boss1Name   = "Sango"
	boss1Radius = 26
)

// registerBoss1 adds the stage 1 boss factory. The boss is script-driven:
// its factory starts the fight task, and the task owns phases, spell card,
// and death. HP hitting zero never kills it directly; the task notices and
// moves on.
func registerBoss1(r *Registry, log *zap.Logger) {
	r.RegisterEnemy(boss1Kind, func(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
		e := w.CreateEntity()
		w.SetPosition(e, &components.Position{Pos: pos})
		w.SetVelocity(e, &components.Velocity{})
		w.SetCollider(e, &components.Collider{
			Radius: boss1Radius,
			Layer:  components.LayerEnemy,
			Mask:   components.LayerPlayerBullet | components.LayerPlayer,
		})
		w.SetHealth(e, &components.Health{HP: 1, MaxHP: 1})
		w.SetBossTag(e)
		w.SetSpellCard(e, &components.SpellCard{})
		w.SetBossHud(e, &components.BossHud{Name: boss1Name})
		w.SetDropTable(e, &components.DropTable{Power: 6, Point: 8, Life: 1})

		runner := script.NewRunner(log)
		ctx := script.NewContext(w, e, runner, log)
		runner.Start("boss1", ctx, boss1Fight)
		w.SetTaskRunner(e, runner)
		return e, nil
	})
}

// boss1Fight is the whole stage 1 boss timeline, top to bottom.
func boss1Fight(ctx *script.Context) {
	width, _ := ctx.World.Bounds()
	center := cp.Vector{X: width / 2, Y: 120}

	ctx.PlayMusic("boss1_theme")
	ctx.MoveTo(center, 1.5, ease.OutQuad)
	if !ctx.Alive() {
		return
	}

	// Phase 1: a fanned barrage while sliding side to side.
	script.RunPhase(ctx, script.Phase{
		HP:       250,
		Duration: 40,
		Pattern: pattern.Repeat{
			Base: pattern.Config{
				Kind:        pattern.KindNWay,
				BulletSpeed: 150,
				Count:       5,
				SpreadDeg:   70,
			},
			Times:     2,
			Interval:  0.12,
			RotateDeg: 8,
		},
		FireInterval: 0.9,
		Bullet:       "rice",
		SlidePoints: []cp.Vector{
			{X: width * 0.3, Y: 120},
			{X: width * 0.7, Y: 120},
		},
		SlideTime:  1.2,
		SlidePause: 1.5,
	})
	if !ctx.Alive() {
		return
	}

	script.PhaseTransition(ctx, 1.5)

	// Phase 2: spell card. Spiral rings with delayed trailing shots; the
	// bonus pays out only if the card times out completely untouched.
	script.RunSpellCard(ctx, script.Spell{
		Name:          "Chaos Sign - Scattering Stars",
		Multiplier:    1.5,
		Bonus:         100000,
		BombDamageCap: 30,
		Phase: script.Phase{
			HP:       320,
			Duration: 50,
			Pattern: pattern.Stagger{
				Base: pattern.Config{
					Kind:         pattern.KindSpiral,
					BulletSpeed:  120,
					Count:        10,
					SpinSpeedDeg: 13,
				},
				DelayPerBullet: 0.03,
			},
			FireInterval: 0.35,
			Bullet:       "star",
			Motion: pattern.NewMotion().
				Wait(1.2).
				AimAtPlayer().
				AccelerateTo(220, 0.5).
				Build(),
			SlidePoints: []cp.Vector{
				{X: width * 0.5, Y: 100},
				{X: width * 0.35, Y: 150},
				{X: width * 0.65, Y: 150},
			},
			SlideTime:  1.6,
			SlidePause: 2.5,
		},
	})
	if !ctx.Alive() {
		return
	}

	script.KillBoss(ctx)
}
