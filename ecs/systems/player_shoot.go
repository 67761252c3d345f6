package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/star1sakura/MajoSaipan-KontonSei/common"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/spawn"
)

// PlayerShootSystem fires the forward shot and the option shots while the
// shoot button is held. Focusing tightens the forward spread; options
// always fire straight up from their own positions.
type PlayerShootSystem struct{}

func NewPlayerShootSystem() *PlayerShootSystem {
	return &PlayerShootSystem{}
}

func (s *PlayerShootSystem) Update(w *ecs.World, dt float64) {
	if w == nil || w.GameOver() {
		return
	}
	player := w.Player()
	if !player.Valid() {
		return
	}
	shot := w.ShotState(player)
	cfg := w.ShotConfig(player)
	pos := w.Position(player)
	if shot == nil || cfg == nil || pos == nil {
		return
	}

	if shot.Cooldown > 0 {
		shot.Cooldown -= dt
	}

	input, _ := ecs.GetResource[components.InputFrame](w)
	if !input.Shoot || shot.Cooldown > 0 {
		return
	}
	if dmg := w.PlayerDamage(player); dmg != nil && dmg.PendingDeath {
		return
	}
	shot.Cooldown = cfg.Interval

	fired := s.fireForward(w, player, cfg, pos.Pos)
	fired += s.fireOptions(w, player)

	if stats, ok := ecs.GetResource[*components.StageStats](w); ok && stats != nil {
		stats.BulletsFired += fired
	}
}

func (s *PlayerShootSystem) fireForward(w *ecs.World, player ecs.Entity, cfg *components.ShotConfig, origin cp.Vector) int {
	count := cfg.Count
	if count < 1 {
		count = 1
	}
	spread := cfg.SpreadDeg
	if focus := w.FocusState(player); focus != nil && focus.Focused {
		spread = cfg.FocusSpreadDeg
	}

	up := cp.Vector{Y: -1}
	for i := 0; i < count; i++ {
		angle := 0.0
		if count > 1 {
			t := float64(i) / float64(count-1)
			angle = -spread/2 + spread*t
		}
		vel := common.RotateDeg(up, angle).Mult(cfg.Speed)
		spawn.PlayerBullet(w, origin, vel, cfg.Damage, spawn.DefaultBulletRadius)
	}
	return count
}

func (s *PlayerShootSystem) fireOptions(w *ecs.World, player ecs.Entity) int {
	cfg := w.OptionConfig(player)
	state := w.OptionState(player)
	if cfg == nil || state == nil || state.Count == 0 {
		return 0
	}
	fired := 0
	for i := 0; i < state.Count && i < len(state.Positions); i++ {
		vel := cp.Vector{Y: -cfg.ShotSpeed}
		spawn.PlayerBullet(w, state.Positions[i], vel, cfg.Damage, spawn.DefaultBulletRadius)
		fired++
	}
	return fired
}
