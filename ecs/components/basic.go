// Package components holds the plain data structs attached to entities.
// Components carry no behavior beyond trivial helpers; the systems package
// owns all logic.
package components

import "github.com/jakecoffman/cp"

// Layer is a collision layer bitmask.
type Layer uint8

const (
	LayerPlayer Layer = 1 << iota
	LayerEnemy
	LayerPlayerBullet
	LayerEnemyBullet
	LayerItem
)

// Position is an entity's center in playfield coordinates. +Y is down.
type Position struct {
	Pos cp.Vector
}

// Velocity is in units per second.
type Velocity struct {
	Vel cp.Vector
}

// Collider is a circle hitbox on a collision layer. Mask lists the layers
// this entity wants to be tested against.
type Collider struct {
	Radius float64
	Layer  Layer
	Mask   Layer
}

// Health is hit points. Enemies die when HP reaches zero; bosses only die
// when their phase script says so.
type Health struct {
	HP    int
	MaxHP int
}

// Lifetime destroys the entity when Remaining reaches zero.
type Lifetime struct {
	Remaining float64
}

// Gravity pulls the entity down, units per second squared. Items use it.
type Gravity struct {
	Accel    float64
	MaxSpeed float64
}

// OffscreenCull destroys the entity once it leaves the playfield by more
// than Margin on any side.
type OffscreenCull struct {
	Margin float64
}
