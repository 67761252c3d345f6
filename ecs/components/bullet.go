package components

import "github.com/star1sakura/MajoSaipan-KontonSei/pattern"

// Bullet marks a projectile and carries its contact damage and sprite.
// Ownership is expressed through the collider layer, not a separate flag.
type Bullet struct {
	Damage int
	Sprite string
}

// GrazeState tracks whether an enemy bullet has already been grazed. A
// bullet awards graze at most once no matter how long it stays inside the
// graze ring.
type GrazeState struct {
	Grazed bool
}

// Homing steers a bullet toward the player, clamped to TurnRateDeg per
// second. Duration limits how long the steering stays active; zero means
// forever.
type Homing struct {
	TurnRateDeg float64
	Duration    float64
	Elapsed     float64
}

// Motion is the per-bullet runtime state of a motion program. Phases is the
// bullet's own copy; index and timers never leak between bullets.
type Motion struct {
	Phases []pattern.MotionPhase
	Index  int

	// Phase-entry capture, used for interpolating turns and accelerations.
	Timer      float64
	StartSpeed float64
	StartAngle float64
	Waypoint   int
	Entered    bool
}

// PendingShot is a bullet waiting for its fire delay. It spawns at the
// shooter's position at expiry time plus the original relative offset, so a
// moving shooter drags its queued shots along.
type PendingShot struct {
	Timer    float64
	Shot     pattern.ShotData
	Damage   int
	Layer    Layer
	Radius   float64
	Sprite   string
	Lifetime float64
}

// PendingShotQueue holds a shooter's delayed shots. Destroying the shooter
// destroys the queue, which is what cancels a dead boss's pending fire.
type PendingShotQueue struct {
	Shots []PendingShot
}
