package components

// Tunables is the game balance knob set, stored as a world resource. The
// zero value is unplayable; use DefaultTunables.
type Tunables struct {
	GrazeExtraRadius float64
	GrazeScore       int

	PowerStep  float64
	MaxPower   float64
	PowerScore int

	PointValueMin int
	PointValueMax int

	MaxBombs int
	MaxLives int

	DeathBombWindow float64
	RespawnInvuln   float64
	DeathPowerLoss  float64

	// PoCRatio is the point-of-collection line as a fraction of playfield
	// height from the top. Above it, all items magnet to the player.
	PoCRatio     float64
	CollectSpeed float64
	PickupRadius float64

	KillScore int
}

func DefaultTunables() Tunables {
	return Tunables{
		GrazeExtraRadius: 24,
		GrazeScore:       500,
		PowerStep:        0.05,
		MaxPower:         4.0,
		PowerScore:       100,
		PointValueMin:    1000,
		PointValueMax:    1500,
		MaxBombs:         8,
		MaxLives:         8,
		DeathBombWindow:  0.1,
		RespawnInvuln:    2.0,
		DeathPowerLoss:   1.0,
		PoCRatio:         0.25,
		CollectSpeed:     320,
		PickupRadius:     24,
		KillScore:        100,
	}
}
