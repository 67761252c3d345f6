package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/star1sakura/MajoSaipan-KontonSei/common"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
)

// PlayerMovementSystem applies the tick's input to the player: focus mode,
// movement clamped to the playfield. The player moves by direct position
// writes, not through the shared movement system.
type PlayerMovementSystem struct{}

func NewPlayerMovementSystem() *PlayerMovementSystem {
	return &PlayerMovementSystem{}
}

func (s *PlayerMovementSystem) Update(w *ecs.World, dt float64) {
	if w == nil || w.GameOver() {
		return
	}
	player := w.Player()
	if !player.Valid() {
		return
	}

	input, _ := ecs.GetResource[components.InputFrame](w)

	if focus := w.FocusState(player); focus != nil {
		focus.Focused = input.Focus
	}

	if dmg := w.PlayerDamage(player); dmg != nil && dmg.PendingDeath {
		return
	}

	pos := w.Position(player)
	cfg := w.PlayerConfig(player)
	if pos == nil || cfg == nil {
		return
	}

	speed := cfg.Speed
	if input.Focus {
		speed = cfg.FocusSpeed
	}

	dir := cp.Vector{X: input.MoveX, Y: input.MoveY}
	if dir.LengthSq() > 1 {
		dir = dir.Normalize()
	}
	pos.Pos = pos.Pos.Add(dir.Mult(speed * dt))

	margin := 0.0
	if col := w.Collider(player); col != nil {
		margin = col.Radius
	}
	width, height := w.Bounds()
	pos.Pos.X = common.Clamp(pos.Pos.X, margin, width-margin)
	pos.Pos.Y = common.Clamp(pos.Pos.Y, margin, height-margin)
}
