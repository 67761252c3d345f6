package script

import (
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/star1sakura/MajoSaipan-KontonSei/common"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/pattern"
)

// Phase is one boss health bar segment: an HP pool, a time limit, an attack
// pattern, and an idle slide between anchor points. RunPhase drives all of
// it tick by tick from the boss's task.
type Phase struct {
	HP       int
	Duration float64

	Pattern      pattern.Source
	FireInterval float64
	Bullet       string
	Damage       int
	BulletRadius float64
	Motion       []pattern.MotionPhase
	State        *pattern.State

	// SlidePoints are cycled in order; the boss pauses SlidePause seconds
	// at each, then eases to the next over SlideTime.
	SlidePoints []cp.Vector
	SlideTime   float64
	SlidePause  float64
}

// RunPhase runs a phase to completion. It returns true if the timer ran
// out and false if the phase HP was depleted first. The boss's HUD bar and
// countdown track the phase while it runs.
func RunPhase(ctx *Context, p Phase) (timedOut bool) {
	ctx.SetHP(p.HP)

	hud := ctx.World.BossHud(ctx.Entity)
	if hud == nil {
		hud = &components.BossHud{}
		ctx.World.SetBossHud(ctx.Entity, hud)
	}
	hud.Visible = true
	hud.HP = p.HP
	hud.MaxHP = p.HP
	hud.Countdown = p.Duration

	st := p.State
	if st == nil {
		st = &pattern.State{}
	}

	var (
		elapsed      float64
		fireCooldown = p.FireInterval
		slideIdx     int
		pause        = p.SlidePause
		tx, ty       *gween.Tween
		slideTarget  cp.Vector
	)

	for {
		ctx.Wait(1)
		if !ctx.Alive() {
			return false
		}
		elapsed += common.FixedDT

		hud.HP = ctx.HP()
		hud.Countdown = p.Duration - elapsed
		if hud.Countdown < 0 {
			hud.Countdown = 0
		}

		if p.Pattern != nil {
			fireCooldown -= common.FixedDT
			if fireCooldown <= 0 {
				opts := []FireOption{WithMotion(p.Motion), WithState(st)}
				if p.Bullet != "" {
					opts = append(opts, WithArchetype(p.Bullet))
				}
				if p.Damage > 0 {
					opts = append(opts, WithDamage(p.Damage))
				}
				if p.BulletRadius > 0 {
					opts = append(opts, WithRadius(p.BulletRadius))
				}
				ctx.Fire(p.Pattern, opts...)
				fireCooldown += p.FireInterval
				if p.FireInterval <= 0 {
					fireCooldown = common.FixedDT
				}
			}
		}

		if len(p.SlidePoints) > 0 {
			if tx != nil {
				x, doneX := tx.Update(float32(common.FixedDT))
				y, doneY := ty.Update(float32(common.FixedDT))
				if doneX && doneY {
					ctx.SetPosition(slideTarget)
					tx, ty = nil, nil
					pause = p.SlidePause
				} else {
					ctx.SetPosition(cp.Vector{X: float64(x), Y: float64(y)})
				}
			} else {
				pause -= common.FixedDT
				if pause <= 0 {
					slideTarget = p.SlidePoints[slideIdx%len(p.SlidePoints)]
					slideIdx++
					from := ctx.Position()
					dur := float32(p.SlideTime)
					if dur <= 0 {
						dur = 1
					}
					tx = gween.New(float32(from.X), float32(slideTarget.X), dur, ease.InOutQuad)
					ty = gween.New(float32(from.Y), float32(slideTarget.Y), dur, ease.InOutQuad)
				}
			}
		}

		if ctx.HP() <= 0 {
			return false
		}
		if elapsed >= p.Duration {
			return true
		}
	}
}

// Spell wraps a phase in a spell card: a name on the HUD, a damage
// multiplier, a capture bonus, and optionally bomb damage capping or full
// invulnerability (survival cards).
type Spell struct {
	Phase

	Name          string
	Multiplier    float64
	Bonus         int
	BombDamageCap int
	Survival      bool
}

// RunSpellCard declares the card, runs its phase, and settles the bonus.
// The bonus pays out only when the card runs its full time without the
// player ever landing a hit, bombing, or dying; any of those forfeits it
// the moment it happens. Ending the card clears the field.
func RunSpellCard(ctx *Context, s Spell) (timedOut bool) {
	sc := ctx.World.SpellCard(ctx.Entity)
	if sc == nil {
		sc = &components.SpellCard{}
		ctx.World.SetSpellCard(ctx.Entity, sc)
	}
	sc.Active = true
	sc.Name = s.Name
	sc.Multiplier = s.Multiplier
	sc.Invulnerable = s.Survival
	sc.BonusAvailable = true
	sc.Bonus = s.Bonus
	sc.BombDamageCap = s.BombDamageCap

	hud := ctx.World.BossHud(ctx.Entity)
	if hud == nil {
		hud = &components.BossHud{}
		ctx.World.SetBossHud(ctx.Entity, hud)
	}
	hud.SpellName = s.Name

	ctx.PlaySound("spell_declare")
	timedOut = RunPhase(ctx, s.Phase)
	if !ctx.Alive() {
		return timedOut
	}

	if timedOut && sc.BonusAvailable && s.Bonus > 0 {
		if player := ctx.World.Player(); player.Valid() {
			if stats := ctx.World.PlayerStatsOf(player); stats != nil {
				stats.Score += s.Bonus
			}
		}
		ctx.PlaySound("spell_bonus")
	}

	sc.Active = false
	sc.Name = ""
	sc.Invulnerable = false
	sc.Multiplier = 0
	sc.BombDamageCap = 0
	hud.SpellName = ""

	ctx.ClearEnemyBullets()
	cancelPendingShots(ctx)
	return timedOut
}

// PhaseTransition is the beat between phases: the field is wiped, the boss
// sits invulnerable for the given time, then fighting resumes.
func PhaseTransition(ctx *Context, seconds float64) {
	ctx.ClearEnemyBullets()
	cancelPendingShots(ctx)
	ctx.SetInvulnerable(true)
	ctx.WaitSeconds(seconds)
	ctx.SetInvulnerable(false)
}

// KillBoss commits the boss's death: hides the bar, wipes the field, and
// hands the corpse to the death system for drops and destruction.
func KillBoss(ctx *Context) {
	if !ctx.Alive() {
		return
	}
	if hud := ctx.World.BossHud(ctx.Entity); hud != nil {
		hud.Visible = false
	}
	ctx.ClearEnemyBullets()
	cancelPendingShots(ctx)
	ctx.PlaySound("boss_death")
	ctx.World.MarkJustDied(ctx.Entity)
}

func cancelPendingShots(ctx *Context) {
	if q := ctx.World.PendingShotQueue(ctx.Entity); q != nil {
		q.Shots = nil
	}
}
