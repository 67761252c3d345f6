package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
)

// PlayerDamageSystem resolves hits on the player. A hit never kills
// outright: it opens the deathbomb window, and only when that expires
// without a bomb does the death commit. Committing costs a life, drains
// power, respawns the player invincible at the bottom center, and ends the
// run when no lives remain.
type PlayerDamageSystem struct{}

func NewPlayerDamageSystem() *PlayerDamageSystem {
	return &PlayerDamageSystem{}
}

func (s *PlayerDamageSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	player := w.Player()
	if !player.Valid() {
		return
	}
	dmg := w.PlayerDamage(player)
	if dmg == nil {
		return
	}

	if dmg.Invincible > 0 {
		dmg.Invincible -= dt
	}

	if dmg.PendingDeath {
		dmg.DeathTimer -= dt
		if dmg.DeathTimer <= 0 {
			s.commitDeath(w, player, dmg)
		}
		return
	}

	if len(w.Events().PlayerHits) == 0 {
		return
	}
	if dmg.Invincible > 0 {
		return
	}
	if bomb := w.BombState(player); bomb != nil && bomb.Active {
		return
	}

	tun := ecs.MustResource[components.Tunables](w)
	dmg.PendingDeath = true
	dmg.DeathTimer = tun.DeathBombWindow
	w.RequestSound("player_hit")
	revokeSpellBonuses(w)
}

func (s *PlayerDamageSystem) commitDeath(w *ecs.World, player ecs.Entity, dmg *components.PlayerDamage) {
	tun := ecs.MustResource[components.Tunables](w)
	stats := w.PlayerStatsOf(player)
	if stats == nil {
		return
	}

	dmg.PendingDeath = false

	if sstats, ok := ecs.GetResource[*components.StageStats](w); ok && sstats != nil {
		sstats.Deaths++
	}

	if stats.Lives <= 0 {
		w.SetGameOver()
		w.RequestSound("game_over")
		return
	}
	stats.Lives--
	stats.Power -= tun.DeathPowerLoss
	if stats.Power < 0 {
		stats.Power = 0
	}

	dmg.Invincible = tun.RespawnInvuln
	width, height := w.Bounds()
	if pos := w.Position(player); pos != nil {
		pos.Pos = cp.Vector{X: width / 2, Y: height * 0.9}
	}
	w.RequestSound("respawn")
}

// revokeSpellBonuses forfeits the capture bonus of every active spell card.
func revokeSpellBonuses(w *ecs.World) {
	cards := w.SpellCards()
	for _, id := range cards.Entities() {
		if sc, ok := cards.Get(id).(*components.SpellCard); ok && sc != nil && sc.Active {
			sc.BonusAvailable = false
		}
	}
}
