package systems

import (
	"github.com/star1sakura/MajoSaipan-KontonSei/common"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
)

// HomingSystem bends homing bullets toward the player, clamped to the
// bullet's turn rate. Steering preserves speed; it only rotates heading.
type HomingSystem struct{}

func NewHomingSystem() *HomingSystem {
	return &HomingSystem{}
}

func (s *HomingSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	player := w.Player()
	if !player.Valid() {
		return
	}
	target := w.Position(player)
	if target == nil {
		return
	}

	homings := w.Homings()
	for _, id := range homings.Entities() {
		h, _ := homings.Get(id).(*components.Homing)
		pos, _ := w.Positions().Get(id).(*components.Position)
		vel, _ := w.Velocities().Get(id).(*components.Velocity)
		if h == nil || pos == nil || vel == nil {
			continue
		}
		if h.Duration > 0 {
			h.Elapsed += dt
			if h.Elapsed > h.Duration {
				continue
			}
		}
		speed := vel.Vel.Length()
		if speed < 1e-9 {
			continue
		}
		to := target.Pos.Sub(pos.Pos)
		if to.LengthSq() < 1e-9 {
			continue
		}

		current := common.AngleDeg(vel.Vel)
		desired := common.AngleDeg(to)
		maxTurn := h.TurnRateDeg * dt
		next := common.AngleLerpDeg(current, desired, 1)
		diff := next - current
		if diff > maxTurn {
			diff = maxTurn
		} else if diff < -maxTurn {
			diff = -maxTurn
		}
		vel.Vel = common.VelocityFromAngle(speed, current+diff)
	}
}
