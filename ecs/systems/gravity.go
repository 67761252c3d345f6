package systems

import (
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
)

// GravitySystem accelerates falling entities, clamped to their terminal
// speed. Only items carry gravity; collecting items are skipped because the
// magnet owns their velocity.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

func (s *GravitySystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	gravs := w.Gravities()
	for _, id := range gravs.Entities() {
		g, _ := gravs.Get(id).(*components.Gravity)
		vel, _ := w.Velocities().Get(id).(*components.Velocity)
		if g == nil || vel == nil {
			continue
		}
		if item, ok := w.Items().Get(id).(*components.Item); ok && item != nil && item.Collecting {
			continue
		}
		vel.Vel.Y += g.Accel * dt
		if g.MaxSpeed > 0 && vel.Vel.Y > g.MaxSpeed {
			vel.Vel.Y = g.MaxSpeed
		}
	}
}
