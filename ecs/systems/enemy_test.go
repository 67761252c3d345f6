package systems

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/star1sakura/MajoSaipan-KontonSei/common"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/pattern"
)

func newShootingWorld() (*ecs.World, ecs.Entity) {
	w := newTestWorld()
	ecs.SetResource(w, pattern.NewTable(zap.NewNop()))
	shooter := w.CreateEntity()
	w.SetPosition(shooter, &components.Position{Pos: cp.Vector{X: 192, Y: 80}})
	w.SetCollider(shooter, &components.Collider{Radius: 10, Layer: components.LayerEnemy})
	w.SetEnemyTag(shooter)
	return w, shooter
}

func enemyBulletCount(w *ecs.World) int {
	count := 0
	for _, id := range w.Bullets().Entities() {
		col, _ := w.Colliders().Get(id).(*components.Collider)
		if col != nil && col.Layer == components.LayerEnemyBullet {
			count++
		}
	}
	return count
}

func TestEnemyShootsOnInterval(t *testing.T) {
	w, shooter := newShootingWorld()
	w.SetEnemyShooting(shooter, &components.EnemyShooting{
		Pattern:  pattern.Config{Kind: pattern.KindStraightDown, BulletSpeed: 100},
		Interval: 0.5,
		Damage:   1,
		Enabled:  true,
	})

	sys := NewEnemyShootSystem()
	sys.Update(w, dt)
	if got := enemyBulletCount(w); got != 1 {
		t.Fatalf("first tick bullets = %d, want 1", got)
	}

	// Half a second later the next volley comes out, not before.
	ticksPerVolley := int(0.5 / dt)
	for i := 0; i < ticksPerVolley-2; i++ {
		sys.Update(w, dt)
	}
	if got := enemyBulletCount(w); got != 1 {
		t.Fatalf("fired early, bullets = %d", got)
	}
	for i := 0; i < 3; i++ {
		sys.Update(w, dt)
	}
	if got := enemyBulletCount(w); got != 2 {
		t.Fatalf("second volley missing, bullets = %d", got)
	}
}

func TestDisabledShooterStaysQuiet(t *testing.T) {
	w, shooter := newShootingWorld()
	w.SetEnemyShooting(shooter, &components.EnemyShooting{
		Pattern:  pattern.Config{Kind: pattern.KindStraightDown, BulletSpeed: 100},
		Interval: 0.1,
		Enabled:  false,
	})
	sys := NewEnemyShootSystem()
	for i := 0; i < 30; i++ {
		sys.Update(w, dt)
	}
	if got := enemyBulletCount(w); got != 0 {
		t.Fatalf("disabled shooter fired %d bullets", got)
	}
}

func TestSpiralStateCarriesAcrossVolleys(t *testing.T) {
	w, shooter := newShootingWorld()
	w.SetEnemyShooting(shooter, &components.EnemyShooting{
		Pattern:  pattern.Config{Kind: pattern.KindSpiral, BulletSpeed: 100, Count: 1, SpinSpeedDeg: 20},
		Interval: dt / 2, // fire every tick
		Enabled:  true,
	})
	sys := NewEnemyShootSystem()
	sys.Update(w, dt)
	sys.Update(w, dt)

	ids := w.Bullets().Entities()
	if len(ids) != 2 {
		t.Fatalf("bullets = %d, want 2", len(ids))
	}
	var angles []float64
	for _, id := range ids {
		vel, _ := w.Velocities().Get(id).(*components.Velocity)
		angles = append(angles, common.AngleDeg(vel.Vel))
	}
	diff := math.Abs(angles[0] - angles[1])
	if diff < 1 {
		t.Fatalf("spiral did not sweep, angles %v", angles)
	}
}

// delayedSource emits one straight-down shot with a fixed fire delay.
type delayedSource struct {
	delay float64
}

func (d delayedSource) Shots(_ *pattern.Table, _ pattern.Context, _ *pattern.State) []pattern.ShotData {
	return []pattern.ShotData{{Velocity: cp.Vector{Y: 100}, Delay: d.delay}}
}

func TestDelayedShotsTrackMovingShooter(t *testing.T) {
	w, shooter := newShootingWorld()
	w.SetEnemyShooting(shooter, &components.EnemyShooting{
		Pattern:  delayedSource{delay: 0.2},
		Interval: 100,
		Enabled:  true,
	})

	NewEnemyShootSystem().Update(w, dt)
	if got := enemyBulletCount(w); got != 0 {
		t.Fatalf("delayed shot spawned immediately")
	}
	q := w.PendingShotQueue(shooter)
	if q == nil || len(q.Shots) != 1 {
		t.Fatalf("pending queue missing")
	}

	// Move the shooter before the delay expires.
	w.Position(shooter).Pos = cp.Vector{X: 50, Y: 200}

	delayed := NewDelayedShotSystem()
	for i := 0; i < int(0.2/dt)+1; i++ {
		delayed.Update(w, dt)
	}
	if got := enemyBulletCount(w); got != 1 {
		t.Fatalf("delayed shot never spawned, bullets = %d", got)
	}
	for _, id := range w.Bullets().Entities() {
		pos, _ := w.Positions().Get(id).(*components.Position)
		if pos.Pos.X != 50 || pos.Pos.Y != 200 {
			t.Fatalf("delayed shot spawned at %v, want the shooter's current position", pos.Pos)
		}
	}
}

func TestPendingShotsDieWithShooter(t *testing.T) {
	w, shooter := newShootingWorld()
	w.SetPendingShotQueue(shooter, &components.PendingShotQueue{
		Shots: []components.PendingShot{{
			Timer: 0.05,
			Shot:  pattern.ShotData{Velocity: cp.Vector{Y: 100}},
			Layer: components.LayerEnemyBullet,
		}},
	})

	w.DestroyEntity(shooter)

	delayed := NewDelayedShotSystem()
	for i := 0; i < 10; i++ {
		delayed.Update(w, dt)
	}
	if got := enemyBulletCount(w); got != 0 {
		t.Fatalf("dead shooter's queue fired %d bullets", got)
	}
}

func TestHomingTurnsTowardPlayerClamped(t *testing.T) {
	w := newTestWorld()
	addTestPlayer(w, cp.Vector{X: 0, Y: 300})

	b := w.CreateEntity()
	w.SetPosition(b, &components.Position{Pos: cp.Vector{X: 200, Y: 100}})
	w.SetVelocity(b, &components.Velocity{Vel: cp.Vector{Y: 100}}) // heading 90°
	w.SetHoming(b, &components.Homing{TurnRateDeg: 60})

	sys := NewHomingSystem()
	sys.Update(w, dt)

	vel := w.Velocity(b).Vel
	if math.Abs(vel.Length()-100) > 1e-6 {
		t.Fatalf("homing changed speed: %f", vel.Length())
	}
	turned := math.Abs(common.AngleDeg(vel) - 90)
	maxTurn := 60 * dt
	if turned > maxTurn+1e-9 {
		t.Fatalf("turned %f degrees, clamp is %f", turned, maxTurn)
	}
	if turned < 1e-9 {
		t.Fatalf("homing bullet did not turn at all")
	}
}

func TestHomingExpires(t *testing.T) {
	w := newTestWorld()
	addTestPlayer(w, cp.Vector{X: 0, Y: 300})

	b := w.CreateEntity()
	w.SetPosition(b, &components.Position{Pos: cp.Vector{X: 200, Y: 100}})
	w.SetVelocity(b, &components.Velocity{Vel: cp.Vector{Y: 100}})
	w.SetHoming(b, &components.Homing{TurnRateDeg: 360, Duration: 2 * dt})

	sys := NewHomingSystem()
	for i := 0; i < 5; i++ {
		sys.Update(w, dt)
	}
	frozen := w.Velocity(b).Vel
	sys.Update(w, dt)
	after := w.Velocity(b).Vel
	if frozen != after {
		t.Fatalf("expired homing still steering: %v -> %v", frozen, after)
	}
}

func TestPathHandlers(t *testing.T) {
	t.Run("straight_keeps_base_velocity", func(t *testing.T) {
		w := newTestWorld()
		e := w.CreateEntity()
		w.SetPosition(e, &components.Position{})
		w.SetVelocity(e, &components.Velocity{})
		w.SetPathFollower(e, &components.PathFollower{Kind: "straight", BaseVel: cp.Vector{Y: 60}})

		NewPathSystem().Update(w, dt)
		if vel := w.Velocity(e).Vel; vel.Y != 60 || vel.X != 0 {
			t.Fatalf("straight path velocity = %v", vel)
		}
	})

	t.Run("sine_sway_oscillates", func(t *testing.T) {
		w := newTestWorld()
		e := w.CreateEntity()
		w.SetPosition(e, &components.Position{})
		w.SetVelocity(e, &components.Velocity{})
		w.SetPathFollower(e, &components.PathFollower{
			Kind: "sine_sway", BaseVel: cp.Vector{Y: 60}, Amplitude: 50, Frequency: 1,
		})

		sys := NewPathSystem()
		var xs []float64
		for i := 0; i < 60; i++ {
			sys.Update(w, dt)
			xs = append(xs, w.Velocity(e).Vel.X)
		}
		minX, maxX := xs[0], xs[0]
		for _, x := range xs {
			minX = math.Min(minX, x)
			maxX = math.Max(maxX, x)
		}
		if minX >= 0 || maxX <= 0 {
			t.Fatalf("sway never crossed zero: [%f, %f]", minX, maxX)
		}
	})

	t.Run("unknown_path_keeps_velocity", func(t *testing.T) {
		w := newTestWorld()
		e := w.CreateEntity()
		w.SetPosition(e, &components.Position{})
		w.SetVelocity(e, &components.Velocity{Vel: cp.Vector{X: 5}})
		w.SetPathFollower(e, &components.PathFollower{Kind: "corkscrew"})

		NewPathSystem().Update(w, dt)
		if vel := w.Velocity(e).Vel; vel.X != 5 {
			t.Fatalf("unknown path rewrote velocity to %v", vel)
		}
	})
}

func TestMovementSkipsPlayer(t *testing.T) {
	w := newTestWorld()
	p := addTestPlayer(w, cp.Vector{X: 192, Y: 400})
	w.SetVelocity(p, &components.Velocity{Vel: cp.Vector{X: 1000}})

	e := w.CreateEntity()
	w.SetPosition(e, &components.Position{Pos: cp.Vector{X: 100, Y: 100}})
	w.SetVelocity(e, &components.Velocity{Vel: cp.Vector{X: 60}})

	NewMovementSystem().Update(w, dt)

	if pos := w.Position(p).Pos; pos.X != 192 {
		t.Fatalf("movement system moved the player to %v", pos)
	}
	if pos := w.Position(e).Pos; pos.X <= 100 {
		t.Fatalf("enemy did not integrate, x = %f", pos.X)
	}
}

func TestBoundaryCullsWithMargin(t *testing.T) {
	cases := []struct {
		name     string
		pos      cp.Vector
		margin   float64
		wantDead bool
	}{
		{"inside", cp.Vector{X: 100, Y: 100}, 32, false},
		{"just_past_edge", cp.Vector{X: -10, Y: 100}, 32, false},
		{"past_margin", cp.Vector{X: -40, Y: 100}, 32, true},
		{"below_field", cp.Vector{X: 100, Y: 500}, 32, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld()
			e := w.CreateEntity()
			w.SetPosition(e, &components.Position{Pos: c.pos})
			w.SetOffscreenCull(e, &components.OffscreenCull{Margin: c.margin})

			NewBoundarySystem().Update(w, dt)
			if alive := w.IsAlive(e); alive == c.wantDead {
				t.Fatalf("alive = %v, wantDead = %v", alive, c.wantDead)
			}
		})
	}
}

func TestLifetimeExpires(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()
	w.SetLifetime(e, &components.Lifetime{Remaining: 3 * dt})

	sys := NewLifetimeSystem()
	sys.Update(w, dt)
	sys.Update(w, dt)
	if !w.IsAlive(e) {
		t.Fatalf("expired early")
	}
	sys.Update(w, dt)
	if w.IsAlive(e) {
		t.Fatalf("lifetime never expired")
	}
}

func TestGravitySkipsCollectingItems(t *testing.T) {
	w := newTestWorld()

	falling := w.CreateEntity()
	w.SetVelocity(falling, &components.Velocity{})
	w.SetGravity(falling, &components.Gravity{Accel: 220, MaxSpeed: 140})
	w.SetItem(falling, &components.Item{Kind: components.ItemPower})

	magnet := w.CreateEntity()
	w.SetVelocity(magnet, &components.Velocity{Vel: cp.Vector{Y: -200}})
	w.SetGravity(magnet, &components.Gravity{Accel: 220, MaxSpeed: 140})
	w.SetItem(magnet, &components.Item{Kind: components.ItemPower, Collecting: true})

	sys := NewGravitySystem()
	sys.Update(w, dt)

	if w.Velocity(falling).Vel.Y <= 0 {
		t.Fatalf("free item did not accelerate down")
	}
	if w.Velocity(magnet).Vel.Y != -200 {
		t.Fatalf("gravity fought the magnet")
	}

	// Terminal velocity holds.
	for i := 0; i < 600; i++ {
		sys.Update(w, dt)
	}
	if v := w.Velocity(falling).Vel.Y; v > 140 {
		t.Fatalf("fall speed %f exceeds terminal 140", v)
	}
}

func TestHudSystems(t *testing.T) {
	w := newTestWorld()
	p := addTestPlayer(w, cp.Vector{X: 192, Y: 400})
	stats := w.PlayerStatsOf(p)
	stats.Score = 12345
	stats.Power = 2.35

	NewHudSystem().Update(w, dt)
	hud := ecs.MustResource[components.HudData](w)
	if hud.Score != 12345 || hud.Power != 2.35 || hud.Lives != 2 {
		t.Fatalf("hud = %+v", hud)
	}

	boss := addEnemy(w, cp.Vector{X: 192, Y: 60}, 300)
	w.SetBossTag(boss)
	w.SetBossHud(boss, &components.BossHud{
		Visible: true, Name: "Konton", HP: 250, MaxHP: 300,
		SpellName: "Chaos Sign", Countdown: 31.5,
	})

	NewBossHudSystem().Update(w, dt)
	bh := ecs.MustResource[components.BossHudData](w)
	if !bh.Visible || bh.Name != "Konton" || bh.HP != 250 || bh.SpellName != "Chaos Sign" {
		t.Fatalf("boss hud = %+v", bh)
	}

	// Hiding the bar blanks the resource.
	w.BossHud(boss).Visible = false
	NewBossHudSystem().Update(w, dt)
	if bh := ecs.MustResource[components.BossHudData](w); bh.Visible {
		t.Fatalf("hidden boss still on the hud: %+v", bh)
	}
}
