package ecs

import "github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"

// Storage accessors. Each lazily creates its sparse set on first use and
// registers it for the destroy sweep.

func (w *World) Positions() *SparseSet      { return w.storage(&w.positions) }
func (w *World) Velocities() *SparseSet     { return w.storage(&w.velocities) }
func (w *World) Colliders() *SparseSet      { return w.storage(&w.colliders) }
func (w *World) Healths() *SparseSet        { return w.storage(&w.healths) }
func (w *World) Lifetimes() *SparseSet      { return w.storage(&w.lifetimes) }
func (w *World) Gravities() *SparseSet      { return w.storage(&w.gravities) }
func (w *World) OffscreenCulls() *SparseSet { return w.storage(&w.culls) }
func (w *World) Bullets() *SparseSet        { return w.storage(&w.bullets) }
func (w *World) GrazeStates() *SparseSet    { return w.storage(&w.grazeStates) }
func (w *World) Homings() *SparseSet        { return w.storage(&w.homings) }
func (w *World) Motions() *SparseSet        { return w.storage(&w.motions) }
func (w *World) PendingShots() *SparseSet   { return w.storage(&w.pendingShots) }
func (w *World) PlayerTags() *SparseSet     { return w.storage(&w.playerTags) }
func (w *World) PlayerStats() *SparseSet    { return w.storage(&w.playerStats) }
func (w *World) PlayerConfigs() *SparseSet  { return w.storage(&w.playerConfigs) }
func (w *World) PlayerDamages() *SparseSet  { return w.storage(&w.playerDamages) }
func (w *World) FocusStates() *SparseSet    { return w.storage(&w.focusStates) }
func (w *World) ShotConfigs() *SparseSet    { return w.storage(&w.shotConfigs) }
func (w *World) ShotStates() *SparseSet     { return w.storage(&w.shotStates) }
func (w *World) OptionConfigs() *SparseSet  { return w.storage(&w.optionConfigs) }
func (w *World) OptionStates() *SparseSet   { return w.storage(&w.optionStates) }
func (w *World) BombConfigs() *SparseSet    { return w.storage(&w.bombConfigs) }
func (w *World) BombStates() *SparseSet     { return w.storage(&w.bombStates) }
func (w *World) EnemyTags() *SparseSet      { return w.storage(&w.enemyTags) }
func (w *World) EnemyShootings() *SparseSet { return w.storage(&w.enemyShooting) }
func (w *World) PathFollowers() *SparseSet  { return w.storage(&w.pathFollowers) }
func (w *World) DropTables() *SparseSet     { return w.storage(&w.dropTables) }
func (w *World) JustDied() *SparseSet       { return w.storage(&w.justDied) }
func (w *World) BossTags() *SparseSet       { return w.storage(&w.bossTags) }
func (w *World) SpellCards() *SparseSet     { return w.storage(&w.spellCards) }
func (w *World) BossHuds() *SparseSet       { return w.storage(&w.bossHuds) }
func (w *World) Items() *SparseSet          { return w.storage(&w.items) }
func (w *World) TaskRunners() *SparseSet    { return w.storage(&w.taskRunners) }

// Typed helpers. Get variants return nil when the component is missing or
// holds the wrong type.

func (w *World) SetPosition(e Entity, p *components.Position) {
	w.Positions().Set(e.ID, p)
}

func (w *World) Position(e Entity) *components.Position {
	p, _ := w.Positions().Get(e.ID).(*components.Position)
	return p
}

func (w *World) SetVelocity(e Entity, v *components.Velocity) {
	w.Velocities().Set(e.ID, v)
}

func (w *World) Velocity(e Entity) *components.Velocity {
	v, _ := w.Velocities().Get(e.ID).(*components.Velocity)
	return v
}

func (w *World) SetCollider(e Entity, c *components.Collider) {
	w.Colliders().Set(e.ID, c)
}

func (w *World) Collider(e Entity) *components.Collider {
	c, _ := w.Colliders().Get(e.ID).(*components.Collider)
	return c
}

func (w *World) SetHealth(e Entity, h *components.Health) {
	w.Healths().Set(e.ID, h)
}

func (w *World) Health(e Entity) *components.Health {
	h, _ := w.Healths().Get(e.ID).(*components.Health)
	return h
}

func (w *World) SetLifetime(e Entity, l *components.Lifetime) {
	w.Lifetimes().Set(e.ID, l)
}

func (w *World) SetGravity(e Entity, g *components.Gravity) {
	w.Gravities().Set(e.ID, g)
}

func (w *World) SetOffscreenCull(e Entity, c *components.OffscreenCull) {
	w.OffscreenCulls().Set(e.ID, c)
}

func (w *World) SetBullet(e Entity, b *components.Bullet) {
	w.Bullets().Set(e.ID, b)
}

func (w *World) BulletComp(e Entity) *components.Bullet {
	b, _ := w.Bullets().Get(e.ID).(*components.Bullet)
	return b
}

func (w *World) SetGrazeState(e Entity, g *components.GrazeState) {
	w.GrazeStates().Set(e.ID, g)
}

func (w *World) SetHoming(e Entity, h *components.Homing) {
	w.Homings().Set(e.ID, h)
}

func (w *World) SetMotion(e Entity, m *components.Motion) {
	w.Motions().Set(e.ID, m)
}

func (w *World) Motion(e Entity) *components.Motion {
	m, _ := w.Motions().Get(e.ID).(*components.Motion)
	return m
}

func (w *World) SetPendingShotQueue(e Entity, q *components.PendingShotQueue) {
	w.PendingShots().Set(e.ID, q)
}

func (w *World) PendingShotQueue(e Entity) *components.PendingShotQueue {
	q, _ := w.PendingShots().Get(e.ID).(*components.PendingShotQueue)
	return q
}

func (w *World) SetPlayerTag(e Entity) {
	w.PlayerTags().Set(e.ID, &components.PlayerTag{})
}

func (w *World) SetPlayerStats(e Entity, s *components.PlayerStats) {
	w.PlayerStats().Set(e.ID, s)
}

func (w *World) PlayerStatsOf(e Entity) *components.PlayerStats {
	s, _ := w.PlayerStats().Get(e.ID).(*components.PlayerStats)
	return s
}

func (w *World) SetPlayerConfig(e Entity, c *components.PlayerConfig) {
	w.PlayerConfigs().Set(e.ID, c)
}

func (w *World) PlayerConfig(e Entity) *components.PlayerConfig {
	c, _ := w.PlayerConfigs().Get(e.ID).(*components.PlayerConfig)
	return c
}

func (w *World) SetPlayerDamage(e Entity, d *components.PlayerDamage) {
	w.PlayerDamages().Set(e.ID, d)
}

func (w *World) PlayerDamage(e Entity) *components.PlayerDamage {
	d, _ := w.PlayerDamages().Get(e.ID).(*components.PlayerDamage)
	return d
}

func (w *World) SetFocusState(e Entity, f *components.FocusState) {
	w.FocusStates().Set(e.ID, f)
}

func (w *World) FocusState(e Entity) *components.FocusState {
	f, _ := w.FocusStates().Get(e.ID).(*components.FocusState)
	return f
}

func (w *World) SetShotConfig(e Entity, c *components.ShotConfig) {
	w.ShotConfigs().Set(e.ID, c)
}

func (w *World) ShotConfig(e Entity) *components.ShotConfig {
	c, _ := w.ShotConfigs().Get(e.ID).(*components.ShotConfig)
	return c
}

func (w *World) SetShotState(e Entity, s *components.ShotState) {
	w.ShotStates().Set(e.ID, s)
}

func (w *World) ShotState(e Entity) *components.ShotState {
	s, _ := w.ShotStates().Get(e.ID).(*components.ShotState)
	return s
}

func (w *World) SetOptionConfig(e Entity, c *components.OptionConfig) {
	w.OptionConfigs().Set(e.ID, c)
}

func (w *World) OptionConfig(e Entity) *components.OptionConfig {
	c, _ := w.OptionConfigs().Get(e.ID).(*components.OptionConfig)
	return c
}

func (w *World) SetOptionState(e Entity, s *components.OptionState) {
	w.OptionStates().Set(e.ID, s)
}

func (w *World) OptionState(e Entity) *components.OptionState {
	s, _ := w.OptionStates().Get(e.ID).(*components.OptionState)
	return s
}

func (w *World) SetBombConfig(e Entity, c *components.BombConfig) {
	w.BombConfigs().Set(e.ID, c)
}

func (w *World) BombConfig(e Entity) *components.BombConfig {
	c, _ := w.BombConfigs().Get(e.ID).(*components.BombConfig)
	return c
}

func (w *World) SetBombState(e Entity, s *components.BombState) {
	w.BombStates().Set(e.ID, s)
}

func (w *World) BombState(e Entity) *components.BombState {
	s, _ := w.BombStates().Get(e.ID).(*components.BombState)
	return s
}

func (w *World) SetEnemyTag(e Entity) {
	w.EnemyTags().Set(e.ID, &components.EnemyTag{})
}

func (w *World) SetEnemyShooting(e Entity, s *components.EnemyShooting) {
	w.EnemyShootings().Set(e.ID, s)
}

func (w *World) EnemyShooting(e Entity) *components.EnemyShooting {
	s, _ := w.EnemyShootings().Get(e.ID).(*components.EnemyShooting)
	return s
}

func (w *World) SetPathFollower(e Entity, p *components.PathFollower) {
	w.PathFollowers().Set(e.ID, p)
}

func (w *World) SetDropTable(e Entity, d *components.DropTable) {
	w.DropTables().Set(e.ID, d)
}

func (w *World) DropTable(e Entity) *components.DropTable {
	d, _ := w.DropTables().Get(e.ID).(*components.DropTable)
	return d
}

func (w *World) MarkJustDied(e Entity) {
	w.JustDied().Set(e.ID, &components.JustDied{})
}

func (w *World) SetBossTag(e Entity) {
	w.BossTags().Set(e.ID, &components.BossTag{})
}

func (w *World) IsBoss(e Entity) bool {
	return w.BossTags().Has(e.ID)
}

func (w *World) SetSpellCard(e Entity, s *components.SpellCard) {
	w.SpellCards().Set(e.ID, s)
}

func (w *World) SpellCard(e Entity) *components.SpellCard {
	s, _ := w.SpellCards().Get(e.ID).(*components.SpellCard)
	return s
}

func (w *World) SetBossHud(e Entity, h *components.BossHud) {
	w.BossHuds().Set(e.ID, h)
}

func (w *World) BossHud(e Entity) *components.BossHud {
	h, _ := w.BossHuds().Get(e.ID).(*components.BossHud)
	return h
}

func (w *World) SetItem(e Entity, i *components.Item) {
	w.Items().Set(e.ID, i)
}

func (w *World) Item(e Entity) *components.Item {
	i, _ := w.Items().Get(e.ID).(*components.Item)
	return i
}

func (w *World) SetTaskRunner(e Entity, r Terminator) {
	w.TaskRunners().Set(e.ID, r)
}
