package script

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/pattern"
	"github.com/star1sakura/MajoSaipan-KontonSei/spawn"
)

func driveUntil(t *testing.T, r *Runner, done *bool) {
	t.Helper()
	for i := 0; i < 120 && !*done; i++ {
		r.Tick()
	}
	if !*done {
		t.Fatalf("task never finished")
	}
}

func TestMoveToLandsOnExactTarget(t *testing.T) {
	_, _, r, ctx := newTestContext(t)
	target := cp.Vector{X: 123.456, Y: 78.9}
	done := false
	r.Start("glide", ctx, func(ctx *Context) {
		ctx.MoveTo(target, 0.5, nil)
		done = true
	})
	driveUntil(t, r, &done)

	if got := ctx.Position(); got.X != target.X || got.Y != target.Y {
		t.Fatalf("final position %v, want exactly %v", got, target)
	}
}

func TestRandomRange(t *testing.T) {
	w, _, _, ctx := newTestContext(t)
	ecs.SetResource(w, rand.New(rand.NewSource(7)))

	for i := 0; i < 200; i++ {
		v := ctx.RandomRange(5, 9)
		if v < 5 || v >= 9 {
			t.Fatalf("draw %d: %v out of [5, 9)", i, v)
		}
	}
	if got := ctx.RandomRange(3, 3); got != 3 {
		t.Fatalf("empty range returned %v, want min", got)
	}
	if got := ctx.RandomRange(4, 2); got != 4 {
		t.Fatalf("inverted range returned %v, want min", got)
	}
}

func TestRandomIsSeedDeterministic(t *testing.T) {
	draw := func(seed int64) [8]float64 {
		w, _, _, ctx := newTestContext(t)
		ecs.SetResource(w, rand.New(rand.NewSource(seed)))
		var out [8]float64
		for i := range out {
			out[i] = ctx.Random()
		}
		return out
	}

	if draw(99) != draw(99) {
		t.Fatalf("identical seeds must produce identical sequences")
	}
	if draw(99) == draw(100) {
		t.Fatalf("different seeds produced the same sequence")
	}
}

func TestRandomMovePicksPointInRect(t *testing.T) {
	w, _, r, ctx := newTestContext(t)
	ecs.SetResource(w, rand.New(rand.NewSource(3)))

	lo := cp.Vector{X: 40, Y: 60}
	hi := cp.Vector{X: 200, Y: 120}
	var target cp.Vector
	done := false
	r.Start("wander", ctx, func(ctx *Context) {
		target = ctx.RandomMove(lo, hi, 0.25, nil)
		done = true
	})
	driveUntil(t, r, &done)

	if target.X < lo.X || target.X >= hi.X || target.Y < lo.Y || target.Y >= hi.Y {
		t.Fatalf("target %v outside [%v, %v)", target, lo, hi)
	}
	if got := ctx.Position(); got != target {
		t.Fatalf("ended at %v, want the chosen point %v", got, target)
	}
}

func newFireContext(t *testing.T) (*ecs.World, *Context) {
	t.Helper()
	w, _, _, ctx := newTestContext(t)
	ecs.SetResource(w, pattern.NewTable(zap.NewNop()))
	ecs.SetResource(w, spawn.NewBulletTable([]spawn.BulletArchetype{
		{ID: "rice", Damage: 2, Radius: 4, Sprite: "rice_blue"},
		{ID: "ember", Damage: 1, Radius: 3, Sprite: "ember_orange", Lifetime: 2.5},
	}, zap.NewNop()))
	return w, ctx
}

func TestFireReturnsSpawnedBullets(t *testing.T) {
	w, ctx := newFireContext(t)

	spawned := ctx.Fire(pattern.Config{Kind: pattern.KindRing, Count: 6, BulletSpeed: 100})
	if len(spawned) != 6 {
		t.Fatalf("Fire returned %d entities, want 6", len(spawned))
	}
	for i, e := range spawned {
		if !w.IsAlive(e) {
			t.Fatalf("returned bullet %d is not alive", i)
		}
	}
}

func TestFireArchetypes(t *testing.T) {
	down := pattern.Config{Kind: pattern.KindStraightDown, BulletSpeed: 80}

	t.Run("archetype_supplies_defaults", func(t *testing.T) {
		w, ctx := newFireContext(t)
		spawned := ctx.Fire(down, WithArchetype("rice"))
		if len(spawned) != 1 {
			t.Fatalf("spawned %d bullets, want 1", len(spawned))
		}
		b := w.BulletComp(spawned[0])
		col := w.Collider(spawned[0])
		if b == nil || b.Damage != 2 || b.Sprite != "rice_blue" {
			t.Fatalf("bullet = %+v, want damage 2 sprite rice_blue", b)
		}
		if col == nil || col.Radius != 4 {
			t.Fatalf("collider = %+v, want radius 4", col)
		}
	})

	t.Run("option_overrides_archetype_field", func(t *testing.T) {
		w, ctx := newFireContext(t)
		spawned := ctx.Fire(down, WithArchetype("rice"), WithDamage(9))
		b := w.BulletComp(spawned[0])
		col := w.Collider(spawned[0])
		if b == nil || b.Damage != 9 {
			t.Fatalf("bullet = %+v, want overridden damage 9", b)
		}
		if col == nil || col.Radius != 4 {
			t.Fatalf("collider = %+v, radius must still come from the archetype", col)
		}
	})

	t.Run("unknown_archetype_falls_back_to_default", func(t *testing.T) {
		w, ctx := newFireContext(t)
		spawned := ctx.Fire(down, WithArchetype("nonesuch"))
		b := w.BulletComp(spawned[0])
		col := w.Collider(spawned[0])
		if b == nil || b.Damage != 1 {
			t.Fatalf("bullet = %+v, want the default damage 1", b)
		}
		if col == nil || col.Radius != spawn.DefaultBulletRadius {
			t.Fatalf("collider = %+v, want the default radius", col)
		}
	})

	t.Run("archetype_lifetime_attached", func(t *testing.T) {
		w, ctx := newFireContext(t)
		spawned := ctx.Fire(down, WithArchetype("ember"))
		l, _ := w.Lifetimes().Get(spawned[0].ID).(*components.Lifetime)
		if l == nil || l.Remaining != 2.5 {
			t.Fatalf("lifetime = %+v, want 2.5 seconds", l)
		}
	})
}
