package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/spawn"
)

// EnemyDeathSystem commits marked deaths: scatters the drop table, scores
// the kill, emits the death event, and destroys the entity. Destruction
// also terminates the entity's tasks and pending shots, so a dead enemy
// can never fire again.
type EnemyDeathSystem struct{}

func NewEnemyDeathSystem() *EnemyDeathSystem {
	return &EnemyDeathSystem{}
}

func (s *EnemyDeathSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	died := w.JustDied()
	ids := died.Entities()
	if len(ids) == 0 {
		return
	}
	snapshot := make([]int, len(ids))
	copy(snapshot, ids)

	tun := ecs.MustResource[components.Tunables](w)
	for _, id := range snapshot {
		e := w.Entity(id)
		if !e.Valid() {
			continue
		}
		var pos cp.Vector
		if p := w.Position(e); p != nil {
			pos = p.Pos
		}

		if drops := w.DropTable(e); drops != nil {
			scatterDrops(w, pos, drops)
		}

		player := w.Player()
		if player.Valid() {
			if stats := w.PlayerStatsOf(player); stats != nil {
				stats.Score += tun.KillScore
			}
		}
		if sstats, ok := ecs.GetResource[*components.StageStats](w); ok && sstats != nil {
			sstats.EnemiesKilled++
		}

		w.Events().EnemyDeaths = append(w.Events().EnemyDeaths, ecs.EnemyDeath{
			Enemy:  e,
			Pos:    pos,
			IsBoss: w.IsBoss(e),
		})
		w.RequestSound("enemy_death")
		w.DestroyEntity(e)
	}
}

// scatterDrops spreads an enemy's items in a small arc above the corpse.
func scatterDrops(w *ecs.World, pos cp.Vector, drops *components.DropTable) {
	kinds := make([]string, 0, drops.Power+drops.Point+drops.Bomb+drops.Life)
	for i := 0; i < drops.Power; i++ {
		kinds = append(kinds, components.ItemPower)
	}
	for i := 0; i < drops.Point; i++ {
		kinds = append(kinds, components.ItemPoint)
	}
	for i := 0; i < drops.Bomb; i++ {
		kinds = append(kinds, components.ItemBomb)
	}
	for i := 0; i < drops.Life; i++ {
		kinds = append(kinds, components.ItemLife)
	}
	if len(kinds) == 0 {
		return
	}
	spreadStep := 14.0
	start := -spreadStep * float64(len(kinds)-1) / 2
	for i, kind := range kinds {
		offset := cp.Vector{X: start + spreadStep*float64(i)}
		spawn.Item(w, pos.Add(offset), kind)
	}
}
