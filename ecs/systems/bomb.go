package systems

import (
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
)

// BombSystem handles bomb activation and the active bomb's field effects.
// Pressing bomb inside the deathbomb window cancels the pending death.
// While active, the player is untouchable, enemy bullets inside the radius
// are wiped, items magnet in, and enemies take periodic bomb hits.
type BombSystem struct{}

func NewBombSystem() *BombSystem {
	return &BombSystem{}
}

func (s *BombSystem) Update(w *ecs.World, dt float64) {
	if w == nil || w.GameOver() {
		return
	}
	player := w.Player()
	if !player.Valid() {
		return
	}
	state := w.BombState(player)
	cfg := w.BombConfig(player)
	stats := w.PlayerStatsOf(player)
	if state == nil || cfg == nil || stats == nil {
		return
	}

	input, _ := ecs.GetResource[components.InputFrame](w)
	if input.Bomb && !state.Active && stats.Bombs > 0 {
		s.activate(w, player, state, cfg, stats)
	}

	if !state.Active {
		return
	}

	state.Timer -= dt
	if state.Timer <= 0 {
		state.Active = false
		return
	}

	s.fieldEffects(w, player, state, cfg, dt)
}

func (s *BombSystem) activate(w *ecs.World, player ecs.Entity, state *components.BombState, cfg *components.BombConfig, stats *components.PlayerStats) {
	stats.Bombs--
	state.Active = true
	state.Timer = cfg.Duration
	state.TickTimer = 0

	if dmg := w.PlayerDamage(player); dmg != nil && dmg.PendingDeath {
		// Deathbomb: the death is cancelled outright.
		dmg.PendingDeath = false
		dmg.DeathTimer = 0
	}

	if sstats, ok := ecs.GetResource[*components.StageStats](w); ok && sstats != nil {
		sstats.BombsUsed++
	}
	revokeSpellBonuses(w)
	w.RequestSound("bomb")
}

func (s *BombSystem) fieldEffects(w *ecs.World, player ecs.Entity, state *components.BombState, cfg *components.BombConfig, dt float64) {
	pos := w.Position(player)
	if pos == nil {
		return
	}

	// Wipe enemy bullets inside the radius every tick.
	colliders := w.Colliders()
	ids := colliders.Entities()
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		col, _ := colliders.Get(id).(*components.Collider)
		bpos, _ := w.Positions().Get(id).(*components.Position)
		if col == nil || bpos == nil {
			continue
		}
		switch col.Layer {
		case components.LayerEnemyBullet:
			if bpos.Pos.Near(pos.Pos, cfg.Radius) {
				w.DestroyEntity(w.Entity(id))
			}
		case components.LayerItem:
			if item, ok := w.Items().Get(id).(*components.Item); ok && item != nil {
				if bpos.Pos.Near(pos.Pos, cfg.Radius) {
					item.Collecting = true
				}
			}
		}
	}

	// Damage pulses on the configured interval.
	state.TickTimer -= dt
	if state.TickTimer > 0 {
		return
	}
	state.TickTimer += cfg.DamageInterval
	if cfg.DamageInterval <= 0 {
		state.TickTimer = dt
	}

	events := w.Events()
	for _, id := range w.Healths().Entities() {
		col, _ := colliders.Get(id).(*components.Collider)
		epos, _ := w.Positions().Get(id).(*components.Position)
		if col == nil || epos == nil || col.Layer != components.LayerEnemy {
			continue
		}
		if !epos.Pos.Near(pos.Pos, cfg.Radius+col.Radius) {
			continue
		}
		events.BombHits = append(events.BombHits, ecs.BombHit{
			Enemy:  w.Entity(id),
			Damage: cfg.Damage,
		})
	}
}

// BombHitSystem applies bomb damage pulses. Spell cards can cap how much a
// single pulse hurts a boss, and an invulnerable card ignores bombs
// entirely. Bomb hits on an active card also revoke its capture bonus.
type BombHitSystem struct{}

func NewBombHitSystem() *BombHitSystem {
	return &BombHitSystem{}
}

func (s *BombHitSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	for _, hit := range w.Events().BombHits {
		if !w.IsAlive(hit.Enemy) {
			continue
		}
		damage := hit.Damage
		if sc := w.SpellCard(hit.Enemy); sc != nil {
			if sc.Invulnerable {
				continue
			}
			if sc.Active {
				sc.BonusAvailable = false
				if sc.BombDamageCap > 0 && damage > sc.BombDamageCap {
					damage = sc.BombDamageCap
				}
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
