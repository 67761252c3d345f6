// Package systems holds the fixed-tick update pipeline. Systems are added
// to the world in a specific order; several of them consume events emitted
// by the collision system earlier in the same tick.
package systems

import "github.com/star1sakura/MajoSaipan-KontonSei/ecs"

type ticker interface {
	Tick()
}

// TaskSystem advances every entity's script tasks by one frame. Runners
// tick in storage order, tasks within a runner in start order, so behavior
// is deterministic for a given spawn history.
type TaskSystem struct{}

func NewTaskSystem() *TaskSystem {
	return &TaskSystem{}
}

func (s *TaskSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	runners := w.TaskRunners()
	ids := runners.Entities()
	// Runners can destroy entities (including themselves) mid-tick, which
	// swaps ids around; walk a snapshot and re-check liveness.
	snapshot := make([]int, len(ids))
	copy(snapshot, ids)
	for _, id := range snapshot {
		if !runners.Has(id) {
			continue
		}
		r, ok := runners.Get(id).(ticker)
		if !ok || r == nil {
			continue
		}
		r.Tick()
	}
}
