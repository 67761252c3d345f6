package systems

import (
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/spawn"
)

// EnemyShootSystem fires each enemy's attached pattern on its interval.
// Bosses do not use this path; their phase scripts fire directly.
type EnemyShootSystem struct{}

func NewEnemyShootSystem() *EnemyShootSystem {
	return &EnemyShootSystem{}
}

func (s *EnemyShootSystem) Update(w *ecs.World, dt float64) {
	if w == nil || w.GameOver() {
		return
	}
	shootings := w.EnemyShootings()
	for _, id := range shootings.Entities() {
		sh, _ := shootings.Get(id).(*components.EnemyShooting)
		if sh == nil || !sh.Enabled || sh.Pattern == nil {
			continue
		}
		sh.Cooldown -= dt
		if sh.Cooldown > 0 {
			continue
		}
		sh.Cooldown += sh.Interval
		if sh.Interval <= 0 {
			sh.Cooldown = dt
		}
		spawn.FirePattern(w, w.Entity(id), sh.Pattern, &sh.State, spawn.ShotParams{
			Damage:   sh.Damage,
			Radius:   sh.Radius,
			Sprite:   sh.Sprite,
			Lifetime: sh.Lifetime,
			Motion:   sh.Motion,
		})
	}
}

// DelayedShotSystem expires pending shots. An expired shot spawns at the
// shooter's position now plus the shot's original relative offset, so
// queued fire follows a moving shooter. Destroying the shooter destroys
// its queue, which silently cancels everything in it.
type DelayedShotSystem struct{}

func NewDelayedShotSystem() *DelayedShotSystem {
	return &DelayedShotSystem{}
}

func (s *DelayedShotSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	queues := w.PendingShots()
	for _, id := range queues.Entities() {
		q, _ := queues.Get(id).(*components.PendingShotQueue)
		pos, _ := w.Positions().Get(id).(*components.Position)
		if q == nil || len(q.Shots) == 0 || pos == nil {
			continue
		}
		remaining := q.Shots[:0]
		for i := range q.Shots {
			p := &q.Shots[i]
			p.Timer -= dt
			if p.Timer > 0 {
				remaining = append(remaining, *p)
				continue
			}
			at := pos.Pos.Add(p.Shot.Offset)
			if p.Layer == components.LayerPlayerBullet {
				spawn.PlayerBullet(w, at, p.Shot.Velocity, p.Damage, p.Radius)
				continue
			}
			spawn.EnemyBullet(w, at, p.Shot.Velocity, spawn.ShotParams{
				Damage:   p.Damage,
				Radius:   p.Radius,
				Sprite:   p.Sprite,
				Lifetime: p.Lifetime,
				Motion:   p.Shot.Motion,
			})
		}
		q.Shots = remaining
	}
}
