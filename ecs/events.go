package ecs

import "github.com/jakecoffman/cp"

// Collision and gameplay events for one tick. The collision system fills
// these lists; the systems ordered after it consume them in the same tick.
// World.Update clears the board before the systems run, so events never
// survive into the next tick.

// EnemyHit is a player bullet striking an enemy.
type EnemyHit struct {
	Bullet Entity
	Enemy  Entity
	Damage int
}

// PlayerHit is an enemy bullet or an enemy body touching the player hitbox.
type PlayerHit struct {
	Source Entity
}

// Graze is an enemy bullet passing through the player's graze ring without
// touching the hitbox. Emitted at most once per bullet.
type Graze struct {
	Bullet Entity
}

// BombHit is an active bomb overlapping an enemy.
type BombHit struct {
	Enemy  Entity
	Damage int
}

// Pickup is the player touching an item.
type Pickup struct {
	Item   Entity
	Player Entity
}

// EnemyDeath is an enemy whose death was committed this tick. Pos is
// captured before the entity is destroyed so drop spawns do not need the
// dead entity.
type EnemyDeath struct {
	Enemy  Entity
	Pos    cp.Vector
	IsBoss bool
}

// Events is the per-tick event board.
type Events struct {
	EnemyHits   []EnemyHit
	PlayerHits  []PlayerHit
	Grazes      []Graze
	BombHits    []BombHit
	Pickups     []Pickup
	EnemyDeaths []EnemyDeath
}

func (ev *Events) Clear() {
	if ev == nil {
		return
	}
	ev.EnemyHits = ev.EnemyHits[:0]
	ev.PlayerHits = ev.PlayerHits[:0]
	ev.Grazes = ev.Grazes[:0]
	ev.BombHits = ev.BombHits[:0]
	ev.Pickups = ev.Pickups[:0]
	ev.EnemyDeaths = ev.EnemyDeaths[:0]
}
