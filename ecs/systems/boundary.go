package systems

import (
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
)

// BoundarySystem destroys culled entities once they leave the playfield by
// more than their margin.
type BoundarySystem struct{}

func NewBoundarySystem() *BoundarySystem {
	return &BoundarySystem{}
}

func (s *BoundarySystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	width, height := w.Bounds()
	culls := w.OffscreenCulls()
	ids := culls.Entities()
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		c, _ := culls.Get(id).(*components.OffscreenCull)
		pos, _ := w.Positions().Get(id).(*components.Position)
		if c == nil || pos == nil {
			continue
		}
		p := pos.Pos
		if p.X < -c.Margin || p.X > width+c.Margin || p.Y < -c.Margin || p.Y > height+c.Margin {
			w.DestroyEntity(w.Entity(id))
		}
	}
}

// LifetimeSystem expires entities with a time to live.
type LifetimeSystem struct{}

// Accumulated dt subtraction leaves ulp-sized residue, so an N-tick
// lifetime must not survive to tick N+1 on a rounding error.
const lifetimeEpsilon = 1e-9

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	lifetimes := w.Lifetimes()
	ids := lifetimes.Entities()
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		l, _ := lifetimes.Get(id).(*components.Lifetime)
		if l == nil {
			continue
		}
		l.Remaining -= dt
		if l.Remaining <= lifetimeEpsilon {
			w.DestroyEntity(w.Entity(id))
		}
	}
}
