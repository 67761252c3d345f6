package script

import (
	"fmt"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/star1sakura/MajoSaipan-KontonSei/common"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/pattern"
	"github.com/star1sakura/MajoSaipan-KontonSei/spawn"
)

// SpawnFunc resolves an enemy kind to a spawned entity. The game layer sets
// it as a world resource at startup; scripts reach it through
// Context.SpawnEnemy.
type SpawnFunc func(w *ecs.World, kind string, pos cp.Vector) (ecs.Entity, error)

// Context is the API a task body sees. Every blocking primitive suspends
// the task until the runner resumes it, so a body reads top to bottom like
// a timeline.
type Context struct {
	World  *ecs.World
	Entity ecs.Entity
	Runner *Runner

	task *task
	log  *zap.Logger
}

// NewContext builds a context bound to an entity. The runner fills in the
// task when Start launches a body.
func NewContext(w *ecs.World, e ecs.Entity, r *Runner, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{World: w, Entity: e, Runner: r, log: log}
}

func (c *Context) withTask(t *task) *Context {
	bound := *c
	bound.task = t
	return &bound
}

// Wait suspends the task for the given number of ticks. Zero or negative
// still waits one tick, so a Wait in a loop can never spin the runner.
func (c *Context) Wait(frames int) {
	t := c.task
	if t == nil {
		return
	}
	if frames <= 0 {
		frames = 1
	}
	select {
	case <-t.kill:
		panic(errKilled)
	default:
	}
	t.yielded <- frames - 1
	select {
	case <-t.resume:
	case <-t.kill:
		panic(errKilled)
	}
}

// WaitSeconds suspends for roughly the given wall time in ticks.
func (c *Context) WaitSeconds(seconds float64) {
	c.Wait(int(seconds*common.TicksPerSecond + 0.5))
}

// Alive reports whether the bound entity still exists.
func (c *Context) Alive() bool {
	return c.World.IsAlive(c.Entity)
}

// Position returns the entity's current position.
func (c *Context) Position() cp.Vector {
	if p := c.World.Position(c.Entity); p != nil {
		return p.Pos
	}
	return cp.Vector{}
}

// SetPosition teleports the entity.
func (c *Context) SetPosition(pos cp.Vector) {
	if p := c.World.Position(c.Entity); p != nil {
		p.Pos = pos
		return
	}
	c.World.SetPosition(c.Entity, &components.Position{Pos: pos})
}

// SetVelocity sets the entity's velocity directly.
func (c *Context) SetVelocity(vel cp.Vector) {
	if v := c.World.Velocity(c.Entity); v != nil {
		v.Vel = vel
		return
	}
	c.World.SetVelocity(c.Entity, &components.Velocity{Vel: vel})
}

// rng returns the world's shared random source. All scripts draw from the
// one seeded source, so a run replays identically for a given seed.
func (c *Context) rng() *rand.Rand {
	if r, ok := ecs.GetResource[*rand.Rand](c.World); ok && r != nil {
		return r
	}
	r := rand.New(rand.NewSource(1))
	ecs.SetResource(c.World, r)
	return r
}

// Random returns a float in [0, 1).
func (c *Context) Random() float64 {
	return c.rng().Float64()
}

// RandomRange returns a float in [min, max).
func (c *Context) RandomRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + c.rng().Float64()*(max-min)
}

// PlayerPosition returns the player's position if the player is alive.
func (c *Context) PlayerPosition() (cp.Vector, bool) {
	player := c.World.Player()
	if !player.Valid() {
		return cp.Vector{}, false
	}
	p := c.World.Position(player)
	if p == nil {
		return cp.Vector{}, false
	}
	return p.Pos, true
}

// MoveTo slides the entity to target over the given duration with the given
// easing, blocking until it arrives. The position is driven directly; any
// velocity is zeroed first so the movement system does not fight the tween.
func (c *Context) MoveTo(target cp.Vector, seconds float64, easing ease.TweenFunc) {
	if easing == nil {
		easing = ease.InOutQuad
	}
	c.SetVelocity(cp.Vector{})
	start := c.Position()
	tx := gween.New(float32(start.X), float32(target.X), float32(seconds), easing)
	ty := gween.New(float32(start.Y), float32(target.Y), float32(seconds), easing)
	for {
		c.Wait(1)
		if !c.Alive() {
			return
		}
		x, doneX := tx.Update(float32(common.FixedDT))
		y, doneY := ty.Update(float32(common.FixedDT))
		if doneX && doneY {
			// The float32 tween lands a hair off; finish on the exact
			// target.
			c.SetPosition(target)
			return
		}
		c.SetPosition(cp.Vector{X: float64(x), Y: float64(y)})
	}
}

// RandomMove slides the entity to a random point inside the min/max
// rectangle over the given duration, blocking until it arrives. It returns
// the chosen target.
func (c *Context) RandomMove(min, max cp.Vector, seconds float64, easing ease.TweenFunc) cp.Vector {
	target := cp.Vector{
		X: c.RandomRange(min.X, max.X),
		Y: c.RandomRange(min.Y, max.Y),
	}
	c.MoveTo(target, seconds, easing)
	return target
}

// FireOption tweaks a single Fire call.
type FireOption func(*fireParams)

type fireParams struct {
	archetype string

	damage      int
	damageSet   bool
	radius      float64
	radiusSet   bool
	sprite      string
	spriteSet   bool
	lifetime    float64
	lifetimeSet bool

	motion []pattern.MotionPhase
	state  *pattern.State
	offset cp.Vector
}

// WithArchetype picks the bullet archetype supplying the shot defaults.
// Field options applied alongside it override individual fields.
func WithArchetype(id string) FireOption {
	return func(p *fireParams) { p.archetype = id }
}

// WithDamage sets the contact damage of the fired bullets.
func WithDamage(damage int) FireOption {
	return func(p *fireParams) { p.damage = damage; p.damageSet = true }
}

// WithRadius sets the bullet hitbox radius.
func WithRadius(radius float64) FireOption {
	return func(p *fireParams) { p.radius = radius; p.radiusSet = true }
}

// WithSprite sets the bullet sprite.
func WithSprite(sprite string) FireOption {
	return func(p *fireParams) { p.sprite = sprite; p.spriteSet = true }
}

// WithLifetime gives the bullets a time to live in seconds.
func WithLifetime(seconds float64) FireOption {
	return func(p *fireParams) { p.lifetime = seconds; p.lifetimeSet = true }
}

// WithMotion attaches a motion program to every fired bullet.
func WithMotion(phases []pattern.MotionPhase) FireOption {
	return func(p *fireParams) { p.motion = phases }
}

// WithState threads a persistent pattern state through repeated fires, so
// spirals keep sweeping across calls.
func WithState(st *pattern.State) FireOption {
	return func(p *fireParams) { p.state = st }
}

// WithOffset shifts the fire origin relative to the entity.
func WithOffset(offset cp.Vector) FireOption {
	return func(p *fireParams) { p.offset = offset }
}

// Fire evaluates a pattern from the entity's position and spawns the
// shots, returning the bullets created this call so the caller can attach
// extra behavior. Delayed shots are queued, not returned. Fire does not
// block; combine with Wait for rhythm.
func (c *Context) Fire(src pattern.Source, opts ...FireOption) []ecs.Entity {
	params := fireParams{}
	for _, opt := range opts {
		opt(&params)
	}

	arc := spawn.BulletArchetype{Damage: 1}
	if table, ok := ecs.GetResource[*spawn.BulletTable](c.World); ok && table != nil {
		arc = table.Lookup(params.archetype)
	}
	p := arc.Params()
	p.Motion = params.motion
	if params.damageSet {
		p.Damage = params.damage
	}
	if params.radiusSet {
		p.Radius = params.radius
	}
	if params.spriteSet {
		p.Sprite = params.sprite
	}
	if params.lifetimeSet {
		p.Lifetime = params.lifetime
	}

	shooter := c.Entity
	if params.offset != (cp.Vector{}) {
		// Offset fires still track the shooter through the pending queue,
		// so shift the evaluated shots rather than faking an entity.
		if pos := c.World.Position(shooter); pos != nil {
			orig := pos.Pos
			pos.Pos = orig.Add(params.offset)
			spawned, _ := spawn.FirePattern(c.World, shooter, src, params.state, p)
			pos.Pos = orig
			return spawned
		}
	}
	spawned, _ := spawn.FirePattern(c.World, shooter, src, params.state, p)
	return spawned
}

// SpawnEnemy creates an enemy through the registered factory.
func (c *Context) SpawnEnemy(kind string, pos cp.Vector) (ecs.Entity, error) {
	fn, ok := ecs.GetResource[SpawnFunc](c.World)
	if !ok || fn == nil {
		return ecs.Entity{}, fmt.Errorf("no enemy spawner registered")
	}
	return fn(c.World, kind, pos)
}

// PlaySound queues a sound effect request.
func (c *Context) PlaySound(name string) {
	c.World.RequestSound(name)
}

// PlayMusic requests a background track change.
func (c *Context) PlayMusic(name string) {
	c.World.RequestMusic(name)
}

// HP returns the entity's current hit points.
func (c *Context) HP() int {
	if h := c.World.Health(c.Entity); h != nil {
		return h.HP
	}
	return 0
}

// SetHP resets the entity's hit points and maximum.
func (c *Context) SetHP(hp int) {
	if h := c.World.Health(c.Entity); h != nil {
		h.HP = hp
		h.MaxHP = hp
		return
	}
	c.World.SetHealth(c.Entity, &components.Health{HP: hp, MaxHP: hp})
}

// SetInvulnerable toggles damage immunity on the entity's spell card state.
func (c *Context) SetInvulnerable(on bool) {
	sc := c.World.SpellCard(c.Entity)
	if sc == nil {
		sc = &components.SpellCard{}
		c.World.SetSpellCard(c.Entity, sc)
	}
	sc.Invulnerable = on
}

// ClearEnemyBullets destroys every live enemy bullet. Shots still waiting
// in pending queues are not touched; they cancel with their shooter.
func (c *Context) ClearEnemyBullets() {
	w := c.World
	ids := w.Bullets().Entities()
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		col, _ := w.Colliders().Get(id).(*components.Collider)
		if col == nil || col.Layer != components.LayerEnemyBullet {
			continue
		}
		w.DestroyEntity(w.Entity(id))
	}
}

// DestroySelf removes the entity. The calling task keeps running until its
// next Wait, which terminates it.
func (c *Context) DestroySelf() {
	c.World.DestroyEntity(c.Entity)
}
