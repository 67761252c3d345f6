package components

// HudData is a world resource rebuilt every tick from the player's state.
// The presentation layer reads it instead of walking component storages.
type HudData struct {
	Lives    int
	Bombs    int
	Power    float64
	Score    int
	Graze    int
	GameOver bool
}

// BossHudData mirrors the visible boss's BossHud component into a resource.
type BossHudData struct {
	Visible   bool
	Name      string
	HP        int
	MaxHP     int
	SpellName string
	Countdown float64
}

// StageStats is a world resource of running stage counters.
type StageStats struct {
	EnemiesKilled  int
	BulletsFired   int
	ItemsCollected int
	BombsUsed      int
	Deaths         int
}
