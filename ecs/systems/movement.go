package systems

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
)

// PathSystem resolves named movement paths into velocities. Handlers come
// from the registry resource; an enemy with an unknown path keeps whatever
// velocity it already had.
type PathSystem struct{}

// PathHandler computes the velocity of a path follower at its current age.
type PathHandler func(pf *components.PathFollower) cp.Vector

// PathHandlers is the path registry, set as a world resource at startup.
type PathHandlers map[string]PathHandler

// BuiltinPaths returns the standard path library.
func BuiltinPaths() PathHandlers {
	return PathHandlers{
		"straight": func(pf *components.PathFollower) cp.Vector {
			return pf.BaseVel
		},
		"sine_sway": func(pf *components.PathFollower) cp.Vector {
			lateral := pf.Amplitude * math.Cos(pf.Age*pf.Frequency*2*math.Pi)
			return cp.Vector{X: pf.BaseVel.X + lateral, Y: pf.BaseVel.Y}
		},
	}
}

func NewPathSystem() *PathSystem {
	return &PathSystem{}
}

func (s *PathSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	handlers, _ := ecs.GetResource[PathHandlers](w)
	if handlers == nil {
		return
	}
	followers := w.PathFollowers()
	for _, id := range followers.Entities() {
		pf, _ := followers.Get(id).(*components.PathFollower)
		vel, _ := w.Velocities().Get(id).(*components.Velocity)
		if pf == nil || vel == nil {
			continue
		}
		pf.Age += dt
		handler, ok := handlers[pf.Kind]
		if !ok {
			continue
		}
		vel.Vel = handler(pf)
	}
}

// MovementSystem integrates velocity into position for everything that has
// both. The player is excluded; its movement system already moved it.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	vels := w.Velocities()
	for _, id := range vels.Entities() {
		if w.PlayerTags().Has(id) {
			continue
		}
		vel, _ := vels.Get(id).(*components.Velocity)
		pos, _ := w.Positions().Get(id).(*components.Position)
		if vel == nil || pos == nil {
			continue
		}
		pos.Pos = pos.Pos.Add(vel.Vel.Mult(dt))
	}
}
