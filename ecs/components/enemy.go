package components

import (
	"github.com/jakecoffman/cp"

	"github.com/star1sakura/MajoSaipan-KontonSei/pattern"
)

// EnemyTag marks a non-boss enemy.
type EnemyTag struct{}

// EnemyShooting fires the attached pattern every Interval seconds while
// Enabled. State carries spiral angles and compiled scripts across shots.
type EnemyShooting struct {
	Pattern  pattern.Source
	State    pattern.State
	Interval float64
	Cooldown float64
	Damage   int
	Radius   float64
	Sprite   string
	Lifetime float64
	Motion   []pattern.MotionPhase
	Enabled  bool
}

// PathFollower moves the enemy along a named path. The handler registry in
// the game package resolves Kind to a velocity function.
type PathFollower struct {
	Kind      string
	BaseVel   cp.Vector
	Amplitude float64
	Frequency float64
	Age       float64
}

// DropTable is what an enemy scatters on death.
type DropTable struct {
	Power int
	Point int
	Bomb  int
	Life  int
}

// JustDied marks an enemy whose death was committed this tick. The death
// system consumes the marker, spawns drops, and destroys the entity.
type JustDied struct{}
