// Package spawn builds the common entity shapes: bullets, items, delayed
// shots. Both the systems and the script layer spawn through here so the
// component sets stay consistent.
package spawn

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/pattern"
)

const (
	// DefaultBulletRadius is used when a pattern does not specify one.
	DefaultBulletRadius = 4.0
	// CullMargin is how far past the playfield edge bullets survive.
	CullMargin = 32.0
	// ItemGravity and friends tune drop physics.
	ItemGravity      = 220.0
	ItemMaxFallSpeed = 140.0
	ItemLaunchSpeed  = 90.0
	ItemRadius       = 8.0
)

// ShotParams bundles the per-bullet values a spawn needs beyond position
// and velocity. A bullet archetype fills it with defaults; call sites
// override individual fields.
type ShotParams struct {
	Damage   int
	Radius   float64
	Sprite   string
	Lifetime float64
	Motion   []pattern.MotionPhase
}

// BulletArchetype is a named bundle of bullet defaults loaded from data.
type BulletArchetype struct {
	ID       string
	Damage   int
	Radius   float64
	Sprite   string
	Lifetime float64
}

// BulletTable resolves archetype names. An unknown name degrades to the
// default archetype with a warning, so a typo in content data fires ugly
// bullets instead of crashing a stage script.
type BulletTable struct {
	byID map[string]BulletArchetype
	def  BulletArchetype
	log  *zap.Logger
}

// NewBulletTable indexes the archetypes. The entry named "default" becomes
// the fallback; without one a built-in plain bullet is used.
func NewBulletTable(archetypes []BulletArchetype, log *zap.Logger) *BulletTable {
	if log == nil {
		log = zap.NewNop()
	}
	t := &BulletTable{
		byID: make(map[string]BulletArchetype, len(archetypes)),
		def:  BulletArchetype{ID: "default", Damage: 1, Radius: DefaultBulletRadius},
		log:  log,
	}
	for _, a := range archetypes {
		t.byID[a.ID] = a
		if a.ID == "default" {
			t.def = a
		}
	}
	return t
}

// Lookup resolves id; the empty id silently resolves to the default.
func (t *BulletTable) Lookup(id string) BulletArchetype {
	if id == "" {
		return t.def
	}
	if a, ok := t.byID[id]; ok {
		return a
	}
	t.log.Warn("unknown bullet archetype, using default", zap.String("id", id))
	return t.def
}

// Params turns an archetype into spawn parameters.
func (a BulletArchetype) Params() ShotParams {
	return ShotParams{
		Damage:   a.Damage,
		Radius:   a.Radius,
		Sprite:   a.Sprite,
		Lifetime: a.Lifetime,
	}
}

// EnemyBullet spawns a bullet on the enemy-bullet layer. Motion, when
// non-nil, becomes the bullet's own copy of the phase list.
func EnemyBullet(w *ecs.World, pos, vel cp.Vector, p ShotParams) ecs.Entity {
	if p.Radius <= 0 {
		p.Radius = DefaultBulletRadius
	}
	e := w.CreateEntity()
	w.SetPosition(e, &components.Position{Pos: pos})
	w.SetVelocity(e, &components.Velocity{Vel: vel})
	w.SetCollider(e, &components.Collider{
		Radius: p.Radius,
		Layer:  components.LayerEnemyBullet,
		Mask:   components.LayerPlayer,
	})
	w.SetBullet(e, &components.Bullet{Damage: p.Damage, Sprite: p.Sprite})
	w.SetGrazeState(e, &components.GrazeState{})
	w.SetOffscreenCull(e, &components.OffscreenCull{Margin: CullMargin})
	if p.Lifetime > 0 {
		w.SetLifetime(e, &components.Lifetime{Remaining: p.Lifetime})
	}
	if len(p.Motion) > 0 {
		w.SetMotion(e, &components.Motion{Phases: pattern.ClonePhases(p.Motion)})
	}
	return e
}

// PlayerBullet spawns a bullet on the player-bullet layer.
func PlayerBullet(w *ecs.World, pos, vel cp.Vector, damage int, radius float64) ecs.Entity {
	if radius <= 0 {
		radius = DefaultBulletRadius
	}
	e := w.CreateEntity()
	w.SetPosition(e, &components.Position{Pos: pos})
	w.SetVelocity(e, &components.Velocity{Vel: vel})
	w.SetCollider(e, &components.Collider{
		Radius: radius,
		Layer:  components.LayerPlayerBullet,
		Mask:   components.LayerEnemy,
	})
	w.SetBullet(e, &components.Bullet{Damage: damage})
	w.SetOffscreenCull(e, &components.OffscreenCull{Margin: CullMargin})
	return e
}

// HomingEnemyBullet spawns an enemy bullet that steers toward the player,
// clamped to turnRateDeg per second, for duration seconds (zero = forever).
func HomingEnemyBullet(w *ecs.World, pos, vel cp.Vector, p ShotParams, turnRateDeg, duration float64) ecs.Entity {
	p.Motion = nil
	e := EnemyBullet(w, pos, vel, p)
	w.SetHoming(e, &components.Homing{TurnRateDeg: turnRateDeg, Duration: duration})
	return e
}

// Item spawns a collectible drop with a small upward launch and gravity.
func Item(w *ecs.World, pos cp.Vector, kind string) ecs.Entity {
	e := w.CreateEntity()
	w.SetPosition(e, &components.Position{Pos: pos})
	w.SetVelocity(e, &components.Velocity{Vel: cp.Vector{Y: -ItemLaunchSpeed}})
	w.SetGravity(e, &components.Gravity{Accel: ItemGravity, MaxSpeed: ItemMaxFallSpeed})
	w.SetCollider(e, &components.Collider{
		Radius: ItemRadius,
		Layer:  components.LayerItem,
		Mask:   components.LayerPlayer,
	})
	w.SetItem(e, &components.Item{Kind: kind})
	w.SetOffscreenCull(e, &components.OffscreenCull{Margin: CullMargin})
	return e
}

// FirePattern evaluates src from the shooter's position and spawns the
// resulting shots. Shots with a fire delay are queued on the shooter and
// materialize later at the shooter's then-current position plus the shot's
// original relative offset. Returns the entities spawned this call and the
// number of shots queued for later.
func FirePattern(w *ecs.World, shooter ecs.Entity, src pattern.Source, st *pattern.State, p ShotParams) (spawned []ecs.Entity, queued int) {
	if w == nil || src == nil {
		return nil, 0
	}
	pos := w.Position(shooter)
	if pos == nil {
		return nil, 0
	}

	table := ecs.MustResource[*pattern.Table](w)
	ctx := pattern.Context{ShooterPos: pos.Pos}
	if player := w.Player(); player.Valid() {
		if pp := w.Position(player); pp != nil {
			ctx.PlayerPos = pp.Pos
			ctx.HasPlayer = true
		}
	}

	shots := src.Shots(table, ctx, st)
	for _, shot := range shots {
		shotParams := p
		if len(shot.Motion) > 0 {
			shotParams.Motion = shot.Motion
		}
		if shot.Delay > 0 {
			queueShot(w, shooter, shot, shotParams)
			queued++
			continue
		}
		spawned = append(spawned, EnemyBullet(w, pos.Pos.Add(shot.Offset), shot.Velocity, shotParams))
	}
	return spawned, queued
}

func queueShot(w *ecs.World, shooter ecs.Entity, shot pattern.ShotData, p ShotParams) {
	q := w.PendingShotQueue(shooter)
	if q == nil {
		q = &components.PendingShotQueue{}
		w.SetPendingShotQueue(shooter, q)
	}
	shot.Motion = p.Motion
	q.Shots = append(q.Shots, components.PendingShot{
		Timer:    shot.Delay,
		Shot:     shot,
		Damage:   p.Damage,
		Layer:    components.LayerEnemyBullet,
		Radius:   p.Radius,
		Sprite:   p.Sprite,
		Lifetime: p.Lifetime,
	})
}
