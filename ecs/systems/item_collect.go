package systems

import (
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
)

// PoCSystem flips every item into collect mode while the player sits above
// the point-of-collection line. PoC-collected point items score their
// maximum value, which the flag records.
type PoCSystem struct{}

func NewPoCSystem() *PoCSystem {
	return &PoCSystem{}
}

func (s *PoCSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	player := w.Player()
	if !player.Valid() {
		return
	}
	pos := w.Position(player)
	if pos == nil {
		return
	}
	tun := ecs.MustResource[components.Tunables](w)
	_, height := w.Bounds()
	if pos.Pos.Y > height*tun.PoCRatio {
		return
	}

	items := w.Items()
	for _, id := range items.Entities() {
		item, _ := items.Get(id).(*components.Item)
		if item == nil || item.Collecting {
			continue
		}
		item.Collecting = true
		item.PoC = true
	}
}

// ItemMagnetSystem pulls collecting items toward the player. If the player
// dies mid-flight the items drop back to gravity.
type ItemMagnetSystem struct{}

func NewItemMagnetSystem() *ItemMagnetSystem {
	return &ItemMagnetSystem{}
}

func (s *ItemMagnetSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	items := w.Items()
	if items.Len() == 0 {
		return
	}

	player := w.Player()
	var playerAlive bool
	var target *components.Position
	if player.Valid() {
		if dmg := w.PlayerDamage(player); dmg == nil || !dmg.PendingDeath {
			target = w.Position(player)
			playerAlive = target != nil
		}
	}
	tun := ecs.MustResource[components.Tunables](w)

	for _, id := range items.Entities() {
		item, _ := items.Get(id).(*components.Item)
		if item == nil || !item.Collecting {
			continue
		}
		vel, _ := w.Velocities().Get(id).(*components.Velocity)
		pos, _ := w.Positions().Get(id).(*components.Position)
		if vel == nil || pos == nil {
			continue
		}
		if !playerAlive {
			item.Collecting = false
			item.PoC = false
			continue
		}
		to := target.Pos.Sub(pos.Pos)
		if to.LengthSq() < 1e-9 {
			continue
		}
		vel.Vel = to.Normalize().Mult(tun.CollectSpeed)
	}
}
