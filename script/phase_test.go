package script

import (
	"testing"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/star1sakura/MajoSaipan-KontonSei/common"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/systems"
)

func newBossFixture(t *testing.T) (*ecs.World, *Runner, *Context, *components.PlayerStats) {
	t.Helper()
	w := ecs.NewWorld(384, 448)

	player := w.CreateEntity()
	w.SetPosition(player, &components.Position{Pos: cp.Vector{X: 192, Y: 400}})
	stats := &components.PlayerStats{}
	w.SetPlayerStats(player, stats)
	w.SetPlayer(player)

	boss := w.CreateEntity()
	w.SetPosition(boss, &components.Position{Pos: cp.Vector{X: 192, Y: 120}})
	w.SetBossTag(boss)
	r := NewRunner(zap.NewNop())
	w.SetTaskRunner(boss, r)
	return w, r, NewContext(w, boss, r, zap.NewNop()), stats
}

// hitBoss routes one player-bullet hit through the damage system, the same
// path a real collision takes.
func hitBoss(w *ecs.World, boss ecs.Entity, damage int) {
	bullet := w.CreateEntity()
	w.Events().EnemyHits = append(w.Events().EnemyHits, ecs.EnemyHit{
		Bullet: bullet,
		Enemy:  boss,
		Damage: damage,
	})
	systems.NewDamageSystem().Update(w, common.FixedDT)
	w.Events().Clear()
}

func TestSpellCardBonusSettlement(t *testing.T) {
	card := Spell{
		Phase: Phase{HP: 100, Duration: 0.1},
		Name:  "test sign",
		Bonus: 5000,
	}

	run := func(t *testing.T, r *Runner) {
		t.Helper()
		for i := 0; i < 60 && r.Active() > 0; i++ {
			r.Tick()
		}
		if r.Active() != 0 {
			t.Fatalf("card never settled")
		}
	}

	t.Run("timeout_untouched_awards_full_bonus", func(t *testing.T) {
		_, r, ctx, stats := newBossFixture(t)
		var timedOut bool
		r.Start("card", ctx, func(ctx *Context) {
			timedOut = RunSpellCard(ctx, card)
		})
		run(t, r)

		if !timedOut {
			t.Fatalf("untouched card must run out the clock")
		}
		if stats.Score != card.Bonus {
			t.Fatalf("score = %d, want the full bonus %d", stats.Score, card.Bonus)
		}
	})

	t.Run("first_hit_forfeits_bonus", func(t *testing.T) {
		w, r, ctx, stats := newBossFixture(t)
		var timedOut bool
		r.Start("card", ctx, func(ctx *Context) {
			timedOut = RunSpellCard(ctx, card)
		})
		r.Tick()
		hitBoss(w, ctx.Entity, 1)
		run(t, r)

		if !timedOut {
			t.Fatalf("a single scratch must not end the card early")
		}
		if stats.Score != 0 {
			t.Fatalf("score = %d after a hit, want 0", stats.Score)
		}
		if sc := w.SpellCard(ctx.Entity); sc == nil || sc.BonusAvailable {
			t.Fatalf("one hit must forfeit the bonus for the rest of the card")
		}
	})

	t.Run("kill_before_timeout_pays_nothing", func(t *testing.T) {
		w, r, ctx, stats := newBossFixture(t)
		var timedOut bool
		r.Start("card", ctx, func(ctx *Context) {
			timedOut = RunSpellCard(ctx, card)
		})
		r.Tick()
		hitBoss(w, ctx.Entity, 200)
		run(t, r)

		if timedOut {
			t.Fatalf("depleted card must report a capture, not a timeout")
		}
		if stats.Score != 0 {
			t.Fatalf("score = %d after breaking the card, want 0", stats.Score)
		}
	})
}
