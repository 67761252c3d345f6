package systems

import (
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
)

// OptionSystem keeps the player's satellite options in formation. The
// active count follows power (one option per whole power level, capped),
// and positions lerp toward the layout the current focus mode asks for.
type OptionSystem struct{}

func NewOptionSystem() *OptionSystem {
	return &OptionSystem{}
}

func (s *OptionSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	player := w.Player()
	if !player.Valid() {
		return
	}
	cfg := w.OptionConfig(player)
	state := w.OptionState(player)
	stats := w.PlayerStatsOf(player)
	pos := w.Position(player)
	if cfg == nil || state == nil || stats == nil || pos == nil {
		return
	}

	count := int(stats.Power)
	if count > cfg.MaxOptions {
		count = cfg.MaxOptions
	}
	if count < 0 {
		count = 0
	}
	state.Count = count

	offsets := cfg.Offsets
	if focus := w.FocusState(player); focus != nil && focus.Focused && len(cfg.FocusOffsets) > 0 {
		offsets = cfg.FocusOffsets
	}

	for len(state.Positions) < count {
		state.Positions = append(state.Positions, pos.Pos)
	}
	if len(state.Positions) > count {
		state.Positions = state.Positions[:count]
	}

	t := cfg.TransitionSpeed * dt
	if t > 1 {
		t = 1
	}
	for i := 0; i < count && i < len(offsets); i++ {
		target := pos.Pos.Add(offsets[i])
		state.Positions[i] = state.Positions[i].Lerp(target, t)
	}
}
