package components

import "github.com/jakecoffman/cp"

// PlayerTag marks the player entity.
type PlayerTag struct{}

// PlayerStats is the run-scoped player state shown on the HUD.
type PlayerStats struct {
	Lives int
	Bombs int
	Power float64
	Score int
	Graze int
}

// PlayerConfig holds the character's movement tunables.
type PlayerConfig struct {
	Speed       float64
	FocusSpeed  float64
	GrazeRadius float64
}

// PlayerDamage tracks death resolution. A hit does not kill immediately:
// PendingDeath opens a short window in which a bomb cancels the death.
type PlayerDamage struct {
	Invincible   float64
	PendingDeath bool
	DeathTimer   float64
}

// FocusState is true while the player holds focus (slow, tight movement).
type FocusState struct {
	Focused bool
}

// ShotConfig describes the character's forward shot.
type ShotConfig struct {
	Interval  float64
	Speed     float64
	Damage    int
	Count     int
	SpreadDeg float64
	// Focused shots tighten to this spread.
	FocusSpreadDeg float64
}

// ShotState is the forward-shot cooldown.
type ShotState struct {
	Cooldown float64
}

// OptionConfig describes the satellite options that scale with power.
type OptionConfig struct {
	MaxOptions      int
	Damage          int
	ShotSpeed       float64
	TransitionSpeed float64
	Offsets         []cp.Vector
	FocusOffsets    []cp.Vector
}

// OptionState is the live option positions, lerped toward the layout the
// current focus mode asks for.
type OptionState struct {
	Count     int
	Positions []cp.Vector
}

// BombConfig describes the character's bomb.
type BombConfig struct {
	Duration       float64
	Radius         float64
	Damage         int
	DamageInterval float64
}

// BombState is the live bomb. While active the player is invincible and the
// bomb clears enemy bullets inside its radius.
type BombState struct {
	Active    bool
	Timer     float64
	TickTimer float64
}
