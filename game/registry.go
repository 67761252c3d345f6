package game

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/systems"
	"github.com/star1sakura/MajoSaipan-KontonSei/pattern"
	"github.com/star1sakura/MajoSaipan-KontonSei/prefabs"
	"github.com/star1sakura/MajoSaipan-KontonSei/spawn"
)

// ErrUnknownKind is wrapped by registry lookups that miss.
var ErrUnknownKind = errors.New("unknown kind")

// EnemyFactory spawns one enemy of a registered kind.
type EnemyFactory func(w *ecs.World, pos cp.Vector) (ecs.Entity, error)

// Registry holds everything resolved by name at runtime: enemy factories,
// item effects, path handlers. It is built once at startup, explicitly;
// nothing registers itself from package init.
type Registry struct {
	enemies map[string]EnemyFactory
	bullets *spawn.BulletTable
	items   systems.ItemEffects
	paths   systems.PathHandlers
	log     *zap.Logger
}

// NewRegistry builds the registry from the loaded archetype data.
func NewRegistry(archetypes *prefabs.ArchetypesSpec, bullets *prefabs.BulletsSpec, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		enemies: make(map[string]EnemyFactory),
		items:   systems.BuiltinItemEffects(),
		paths:   systems.BuiltinPaths(),
		log:     log,
	}
	r.Reload(archetypes, bullets)
	return r
}

// Reload replaces the data-driven entries: archetype enemy factories and
// the bullet table. Code-registered factories (bosses) are untouched, and
// entities already on screen keep the stats they spawned with.
func (r *Registry) Reload(archetypes *prefabs.ArchetypesSpec, bullets *prefabs.BulletsSpec) {
	if bullets != nil || r.bullets == nil {
		r.bullets = spawn.NewBulletTable(bulletArchetypes(bullets), r.log)
	}
	if archetypes != nil {
		for _, a := range archetypes.Archetypes {
			r.enemies[a.ID] = enemyFactory(a, r.bullets, r.log)
		}
	}
}

func bulletArchetypes(spec *prefabs.BulletsSpec) []spawn.BulletArchetype {
	if spec == nil {
		return nil
	}
	out := make([]spawn.BulletArchetype, 0, len(spec.Bullets))
	for _, b := range spec.Bullets {
		out = append(out, spawn.BulletArchetype{
			ID:       b.ID,
			Damage:   b.Damage,
			Radius:   b.Radius,
			Sprite:   b.Sprite,
			Lifetime: b.Lifetime,
		})
	}
	return out
}

// SpawnEnemy resolves kind and spawns. Unknown kinds are a hard error; a
// stage script naming a missing enemy should fail loudly, not quietly spawn
// nothing.
func (r *Registry) SpawnEnemy(w *ecs.World, kind string, pos cp.Vector) (ecs.Entity, error) {
	factory, ok := r.enemies[kind]
	if !ok {
		return ecs.Entity{}, fmt.Errorf("spawn enemy %q: %w", kind, ErrUnknownKind)
	}
	return factory(w, pos)
}

// RegisterEnemy adds or replaces a factory. Bosses register through this.
func (r *Registry) RegisterEnemy(kind string, factory EnemyFactory) {
	if factory == nil {
		return
	}
	r.enemies[kind] = factory
}

// install binds the registry into the world's resources.
func (r *Registry) install(w *ecs.World) {
	ecs.SetResource(w, r)
	ecs.SetResource(w, r.bullets)
	ecs.SetResource(w, r.items)
	ecs.SetResource(w, r.paths)
}

// patternFromSpec translates a data-form pattern into a config. An unknown
// kind name degrades to straight-down with a warning, mirroring how the
// evaluator table treats unknown kinds.
func patternFromSpec(spec prefabs.PatternSpec, log *zap.Logger) pattern.Config {
	cfg := pattern.Config{
		BulletSpeed:   spec.BulletSpeed,
		Count:         spec.Count,
		SpreadDeg:     spec.SpreadDeg,
		StartAngleDeg: spec.StartAngleDeg,
		SpinSpeedDeg:  spec.SpinSpeedDeg,
		Script:        spec.Script,
	}
	switch spec.Kind {
	case "aim_player":
		cfg.Kind = pattern.KindAimPlayer
	case "straight_down", "":
		cfg.Kind = pattern.KindStraightDown
	case "n_way":
		cfg.Kind = pattern.KindNWay
	case "ring":
		cfg.Kind = pattern.KindRing
	case "spiral":
		cfg.Kind = pattern.KindSpiral
	case "script":
		cfg.Kind = pattern.KindScript
	default:
		if log != nil {
			log.Warn("unknown pattern kind in data, using straight-down",
				zap.String("kind", spec.Kind))
		}
		cfg.Kind = pattern.KindStraightDown
	}
	return cfg
}
