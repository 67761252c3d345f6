package game

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/prefabs"
	"github.com/star1sakura/MajoSaipan-KontonSei/spawn"
)

const enemyCullMargin = 48

// enemyFactory closes over one archetype definition. Its shot defaults
// come from the named bullet archetype, with the pattern's own fields
// winning where set.
func enemyFactory(a prefabs.ArchetypeSpec, bullets *spawn.BulletTable, log *zap.Logger) EnemyFactory {
	shot := bullets.Lookup(a.Pattern.Bullet)
	damage := a.Pattern.Damage
	if damage == 0 {
		damage = shot.Damage
	}
	radius := a.Pattern.BulletRadius
	if radius <= 0 {
		radius = shot.Radius
	}
	return func(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
		e := w.CreateEntity()
		w.SetPosition(e, &components.Position{Pos: pos})
		w.SetVelocity(e, &components.Velocity{})
		w.SetCollider(e, &components.Collider{
			Radius: a.Radius,
			Layer:  components.LayerEnemy,
			Mask:   components.LayerPlayerBullet | components.LayerPlayer,
		})
		w.SetHealth(e, &components.Health{HP: a.HP, MaxHP: a.HP})
		w.SetEnemyTag(e)
		w.SetOffscreenCull(e, &components.OffscreenCull{Margin: enemyCullMargin})
		w.SetDropTable(e, &components.DropTable{
			Power: a.Drops.Power,
			Point: a.Drops.Point,
			Bomb:  a.Drops.Bomb,
			Life:  a.Drops.Life,
		})
		w.SetEnemyShooting(e, &components.EnemyShooting{
			Pattern:  patternFromSpec(a.Pattern, log),
			Interval: a.Pattern.Interval,
			Cooldown: a.Pattern.Interval,
			Damage:   damage,
			Radius:   radius,
			Sprite:   shot.Sprite,
			Lifetime: shot.Lifetime,
			Enabled:  true,
		})
		return e, nil
	}
}
