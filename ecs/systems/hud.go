package systems

import (
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
)

// BossHudSystem mirrors the visible boss bar into the BossHudData resource.
// With no visible boss the resource goes blank.
type BossHudSystem struct{}

func NewBossHudSystem() *BossHudSystem {
	return &BossHudSystem{}
}

func (s *BossHudSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	var data components.BossHudData
	huds := w.BossHuds()
	for _, id := range huds.Entities() {
		hud, _ := huds.Get(id).(*components.BossHud)
		if hud == nil || !hud.Visible {
			continue
		}
		data = components.BossHudData{
			Visible:   true,
			Name:      hud.Name,
			HP:        hud.HP,
			MaxHP:     hud.MaxHP,
			SpellName: hud.SpellName,
			Countdown: hud.Countdown,
		}
		break
	}
	ecs.SetResource(w, data)
}

// HudSystem rebuilds the player HUD resource from the player's stats.
type HudSystem struct{}

func NewHudSystem() *HudSystem {
	return &HudSystem{}
}

func (s *HudSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	data := components.HudData{GameOver: w.GameOver()}
	if player := w.Player(); player.Valid() {
		if stats := w.PlayerStatsOf(player); stats != nil {
			data.Lives = stats.Lives
			data.Bombs = stats.Bombs
			data.Power = stats.Power
			data.Score = stats.Score
			data.Graze = stats.Graze
		}
	}
	ecs.SetResource(w, data)
}
