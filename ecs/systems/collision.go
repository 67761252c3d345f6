package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
)

// CollisionSystem runs all circle overlap tests and emits events for the
// systems downstream of it. It never mutates gameplay state itself except
// for the per-bullet grazed flag, which is what makes graze fire at most
// once per bullet.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

type circle struct {
	id     int
	pos    cp.Vector
	radius float64
	layer  components.Layer
	mask   components.Layer
}

// wants reports whether the initiating collider's mask includes the
// target's layer. Bullets, ramming enemies, and items are the initiators
// of their pairs; a collider whose mask excludes a layer is invisible to
// it.
func wants(initiator circle, target circle) bool {
	return initiator.mask&target.layer != 0
}

func (s *CollisionSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	events := w.Events()

	var enemies, enemyBullets, playerBullets, items []circle
	colliders := w.Colliders()
	for _, id := range colliders.Entities() {
		col, _ := colliders.Get(id).(*components.Collider)
		pos, _ := w.Positions().Get(id).(*components.Position)
		if col == nil || pos == nil {
			continue
		}
		c := circle{id: id, pos: pos.Pos, radius: col.Radius, layer: col.Layer, mask: col.Mask}
		switch col.Layer {
		case components.LayerEnemy:
			enemies = append(enemies, c)
		case components.LayerEnemyBullet:
			enemyBullets = append(enemyBullets, c)
		case components.LayerPlayerBullet:
			playerBullets = append(playerBullets, c)
		case components.LayerItem:
			items = append(items, c)
		}
	}

	s.playerBulletsVsEnemies(w, events, playerBullets, enemies)
	s.playerVs(w, events, enemyBullets, enemies, items)
}

func (s *CollisionSystem) playerBulletsVsEnemies(w *ecs.World, events *ecs.Events, bullets, enemies []circle) {
	for _, b := range bullets {
		for _, e := range enemies {
			if !wants(b, e) || !overlap(b, e, 0) {
				continue
			}
			damage := 0
			if bc, ok := w.Bullets().Get(b.id).(*components.Bullet); ok && bc != nil {
				damage = bc.Damage
			}
			events.EnemyHits = append(events.EnemyHits, ecs.EnemyHit{
				Bullet: w.Entity(b.id),
				Enemy:  w.Entity(e.id),
				Damage: damage,
			})
			// One hit per bullet per tick; the bullet dies on impact.
			break
		}
	}
}

func (s *CollisionSystem) playerVs(w *ecs.World, events *ecs.Events, enemyBullets, enemies, items []circle) {
	player := w.Player()
	if !player.Valid() {
		return
	}
	ppos := w.Position(player)
	pcol := w.Collider(player)
	if ppos == nil || pcol == nil {
		return
	}
	pc := circle{id: player.ID, pos: ppos.Pos, radius: pcol.Radius, layer: pcol.Layer, mask: pcol.Mask}

	if dmg := w.PlayerDamage(player); dmg != nil && dmg.PendingDeath {
		return
	}

	grazeExtra := ecs.MustResource[components.Tunables](w).GrazeExtraRadius
	if cfg := w.PlayerConfig(player); cfg != nil && cfg.GrazeRadius > 0 {
		grazeExtra = cfg.GrazeRadius
	}

	for _, b := range enemyBullets {
		if !wants(b, pc) {
			continue
		}
		if overlap(b, pc, 0) {
			events.PlayerHits = append(events.PlayerHits, ecs.PlayerHit{Source: w.Entity(b.id)})
			continue
		}
		if !overlap(b, pc, grazeExtra) {
			continue
		}
		gs, _ := w.GrazeStates().Get(b.id).(*components.GrazeState)
		if gs == nil || gs.Grazed {
			continue
		}
		gs.Grazed = true
		events.Grazes = append(events.Grazes, ecs.Graze{Bullet: w.Entity(b.id)})
	}

	for _, e := range enemies {
		if wants(e, pc) && overlap(e, pc, 0) {
			events.PlayerHits = append(events.PlayerHits, ecs.PlayerHit{Source: w.Entity(e.id)})
		}
	}

	pickupRadius := ecs.MustResource[components.Tunables](w).PickupRadius
	for _, it := range items {
		if wants(it, pc) && overlap(it, pc, pickupRadius-pc.radius) {
			events.Pickups = append(events.Pickups, ecs.Pickup{Item: w.Entity(it.id), Player: player})
		}
	}
}

func overlap(a, b circle, extra float64) bool {
	r := a.radius + b.radius + extra
	return a.pos.Near(b.pos, r)
}
