package components

// BossTag marks a boss. Bosses never die from reaching zero HP; their phase
// script decides when a phase ends and when the boss is killed.
type BossTag struct{}

// SpellCard is a boss's active spell card state. While Invulnerable the
// boss takes no damage (survival cards). BonusAvailable starts true and is
// revoked if the player bombs or gets hit during the card; capturing the
// card with the bonus intact awards Bonus points.
type SpellCard struct {
	Active         bool
	Name           string
	Multiplier     float64
	Invulnerable   bool
	BonusAvailable bool
	Bonus          int
	// BombDamageCap limits how much a single bomb tick can hurt the boss.
	// Zero means uncapped.
	BombDamageCap int
}

// BossHud is the boss health bar and spell timer shown at the top of the
// playfield.
type BossHud struct {
	Visible   bool
	Name      string
	HP        int
	MaxHP     int
	SpellName string
	Countdown float64
}
