package systems

import (
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
)

// DamageSystem applies player-bullet hits. The bullet dies on impact. An
// active spell card multiplies damage; an invulnerable target ignores it.
// Regular enemies die at zero HP; a boss at zero HP just sits there until
// its phase script notices and moves on.
type DamageSystem struct{}

func NewDamageSystem() *DamageSystem {
	return &DamageSystem{}
}

func (s *DamageSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	for _, hit := range w.Events().EnemyHits {
		if w.IsAlive(hit.Bullet) {
			w.DestroyEntity(hit.Bullet)
		}
		if !w.IsAlive(hit.Enemy) {
			continue
		}

		damage := hit.Damage
		if sc := w.SpellCard(hit.Enemy); sc != nil {
			if sc.Invulnerable {
				continue
			}
			if sc.Active {
				if sc.Multiplier > 0 {
					damage = int(float64(damage) * sc.Multiplier)
					if damage < 1 {
						damage = 1
					}
				}
				// The capture bonus only survives a card the player never
				// damaged; the first connecting hit forfeits it for good.
				sc.BonusAvailable = false
			}
		}

		health := w.Health(hit.Enemy)
		if health == nil {
			continue
		}
		health.HP -= damage
		if health.HP <= 0 && !w.IsBoss(hit.Enemy) {
			w.MarkJustDied(hit.Enemy)
		}
	}
}

// GrazeSystem scores graze events.
type GrazeSystem struct{}

func NewGrazeSystem() *GrazeSystem {
	return &GrazeSystem{}
}

func (s *GrazeSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	grazes := w.Events().Grazes
	if len(grazes) == 0 {
		return
	}
	player := w.Player()
	if !player.Valid() {
		return
	}
	stats := w.PlayerStatsOf(player)
	if stats == nil {
		return
	}
	tun := ecs.MustResource[components.Tunables](w)
	for range grazes {
		stats.Graze++
		stats.Score += tun.GrazeScore
		w.RequestSound("graze")
	}
}
