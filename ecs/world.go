package ecs

import "reflect"

// System updates a world once per fixed tick.
type System interface {
	Update(w *World, dt float64)
}

// Terminator is implemented by the script task runner. World.DestroyEntity
// calls it so a destroyed entity's coroutines stop in the same call; a dead
// boss never fires another shot.
type Terminator interface {
	TerminateAll()
}

// World owns entities, components, resources, and system order.
type World struct {
	entities  entityStore
	systems   []System
	events    Events
	resources map[reflect.Type]any
	all       []*SparseSet

	player        Entity
	width, height float64
	frame         int
	elapsed       float64
	gameOver      bool
	stageFinished bool
	sounds        []string
	music         *string

	positions     *SparseSet
	velocities    *SparseSet
	colliders     *SparseSet
	healths       *SparseSet
	lifetimes     *SparseSet
	gravities     *SparseSet
	culls         *SparseSet
	bullets       *SparseSet
	grazeStates   *SparseSet
	homings       *SparseSet
	motions       *SparseSet
	pendingShots  *SparseSet
	playerTags    *SparseSet
	playerStats   *SparseSet
	playerConfigs *SparseSet
	playerDamages *SparseSet
	focusStates   *SparseSet
	shotConfigs   *SparseSet
	shotStates    *SparseSet
	optionConfigs *SparseSet
	optionStates  *SparseSet
	bombConfigs   *SparseSet
	bombStates    *SparseSet
	enemyTags     *SparseSet
	enemyShooting *SparseSet
	pathFollowers *SparseSet
	dropTables    *SparseSet
	justDied      *SparseSet
	bossTags      *SparseSet
	spellCards    *SparseSet
	bossHuds      *SparseSet
	items         *SparseSet
	taskRunners   *SparseSet
}

// NewWorld creates an empty world with the given playfield size.
func NewWorld(width, height float64) *World {
	return &World{width: width, height: height}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity stops the entity's script tasks, strips its components, and
// retires the handle. Destroying an already-dead handle is a no-op.
func (w *World) DestroyEntity(e Entity) {
	if w == nil || !w.entities.isAlive(e) {
		return
	}
	if v := w.TaskRunners().Get(e.ID); v != nil {
		if t, ok := v.(Terminator); ok && t != nil {
			t.TerminateAll()
		}
	}
	for _, s := range w.all {
		s.Remove(e.ID)
	}
	if w.player == e {
		w.player = Entity{}
	}
	w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entity resolves a live handle from a raw storage id.
func (w *World) Entity(id int) Entity {
	if w == nil {
		return Entity{}
	}
	return w.entities.entity(id)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update clears last tick's events and runs all systems once in order.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.events.Clear()
	w.frame++
	w.elapsed += dt
	for _, s := range w.systems {
		if s != nil {
			s.Update(w, dt)
		}
	}
}

// Events returns the per-tick event board.
func (w *World) Events() *Events {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPlayer records the player entity so systems can find it directly.
func (w *World) SetPlayer(e Entity) {
	if w == nil {
		return
	}
	w.player = e
}

// Player returns the player entity; Valid() is false when the player is
// dead or was never spawned.
func (w *World) Player() Entity {
	if w == nil || !w.entities.isAlive(w.player) {
		return Entity{}
	}
	return w.player
}

// Bounds returns the playfield size.
func (w *World) Bounds() (width, height float64) {
	if w == nil {
		return 0, 0
	}
	return w.width, w.height
}

// Frame is the number of completed-or-running ticks.
func (w *World) Frame() int {
	if w == nil {
		return 0
	}
	return w.frame
}

// Elapsed is the simulated time in seconds.
func (w *World) Elapsed() float64 {
	if w == nil {
		return 0
	}
	return w.elapsed
}

// SetGameOver latches the game-over flag. It never unlatches.
func (w *World) SetGameOver() {
	if w != nil {
		w.gameOver = true
	}
}

func (w *World) GameOver() bool {
	return w != nil && w.gameOver
}

// SetStageFinished latches stage completion.
func (w *World) SetStageFinished() {
	if w != nil {
		w.stageFinished = true
	}
}

func (w *World) StageFinished() bool {
	return w != nil && w.stageFinished
}

// RequestSound queues a sound-effect name for the presentation layer.
func (w *World) RequestSound(name string) {
	if w == nil || name == "" {
		return
	}
	w.sounds = append(w.sounds, name)
}

// DrainSounds returns and clears the queued sound requests.
func (w *World) DrainSounds() []string {
	if w == nil || len(w.sounds) == 0 {
		return nil
	}
	out := w.sounds
	w.sounds = nil
	return out
}

// RequestMusic asks the presentation layer to switch the background track.
// Only one request is held at a time; the latest wins.
func (w *World) RequestMusic(name string) {
	if w == nil || name == "" {
		return
	}
	w.music = &name
}

// TakeMusic returns and clears the pending track request, if any.
func (w *World) TakeMusic() (string, bool) {
	if w == nil || w.music == nil {
		return "", false
	}
	name := *w.music
	w.music = nil
	return name, true
}

func (w *World) storage(p **SparseSet) *SparseSet {
	if w == nil {
		return nil
	}
	if *p == nil {
		*p = &SparseSet{}
		w.all = append(w.all, *p)
	}
	return *p
}
