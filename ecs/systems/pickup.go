package systems

import (
	"go.uber.org/zap"

	"github.com/star1sakura/MajoSaipan-KontonSei/common"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
)

// ItemEffect applies one collected item to the player.
type ItemEffect func(w *ecs.World, player ecs.Entity, item *components.Item, itemY float64)

// ItemEffects is the item effect registry, set as a world resource at
// startup. Unknown kinds log a warning and award nothing.
type ItemEffects map[string]ItemEffect

// BuiltinItemEffects returns the standard item set.
func BuiltinItemEffects() ItemEffects {
	return ItemEffects{
		components.ItemPower: func(w *ecs.World, player ecs.Entity, _ *components.Item, _ float64) {
			stats := w.PlayerStatsOf(player)
			tun := ecs.MustResource[components.Tunables](w)
			if stats == nil {
				return
			}
			stats.Power += tun.PowerStep
			if stats.Power > tun.MaxPower {
				stats.Power = tun.MaxPower
			}
			stats.Score += tun.PowerScore
		},
		components.ItemPoint: func(w *ecs.World, player ecs.Entity, item *components.Item, itemY float64) {
			stats := w.PlayerStatsOf(player)
			tun := ecs.MustResource[components.Tunables](w)
			if stats == nil {
				return
			}
			// Value scales with collection height; point-of-collection
			// grabs always pay the maximum.
			_, height := w.Bounds()
			t := 1.0
			if height > 0 && !item.PoC {
				t = common.Clamp(1-itemY/height, 0, 1)
			}
			stats.Score += int(common.Lerp(float64(tun.PointValueMin), float64(tun.PointValueMax), t))
		},
		components.ItemBomb: func(w *ecs.World, player ecs.Entity, _ *components.Item, _ float64) {
			stats := w.PlayerStatsOf(player)
			tun := ecs.MustResource[components.Tunables](w)
			if stats != nil && stats.Bombs < tun.MaxBombs {
				stats.Bombs++
			}
		},
		components.ItemLife: func(w *ecs.World, player ecs.Entity, _ *components.Item, _ float64) {
			stats := w.PlayerStatsOf(player)
			tun := ecs.MustResource[components.Tunables](w)
			if stats != nil && stats.Lives < tun.MaxLives {
				stats.Lives++
			}
		},
	}
}

// PickupSystem consumes pickup events: applies the item's effect, counts
// it, and destroys the item.
type PickupSystem struct {
	log *zap.Logger
}

func NewPickupSystem(log *zap.Logger) *PickupSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &PickupSystem{log: log}
}

func (s *PickupSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	effects, _ := ecs.GetResource[ItemEffects](w)
	for _, pickup := range w.Events().Pickups {
		if !w.IsAlive(pickup.Item) || !w.IsAlive(pickup.Player) {
			continue
		}
		item := w.Item(pickup.Item)
		pos := w.Position(pickup.Item)
		if item == nil || pos == nil {
			continue
		}

		if effect, ok := effects[item.Kind]; ok {
			effect(w, pickup.Player, item, pos.Pos.Y)
		} else {
			s.log.Warn("unknown item kind", zap.String("kind", item.Kind))
		}

		if stats, ok := ecs.GetResource[*components.StageStats](w); ok && stats != nil {
			stats.ItemsCollected++
		}
		w.RequestSound("item")
		w.DestroyEntity(pickup.Item)
	}
}
