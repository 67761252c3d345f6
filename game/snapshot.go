package game

import (
	"github.com/jakecoffman/cp"

	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
)

// Snapshot is a read-only view of one tick, built for rendering. It copies
// everything it exposes; holding a snapshot across ticks is safe.
type Snapshot struct {
	Frame         int
	Time          float64
	GameOver      bool
	StageFinished bool

	Hud  components.HudData
	Boss components.BossHudData

	Player  *PlayerView
	Options []cp.Vector
	Bullets []BulletView
	Enemies []EnemyView
	Items   []ItemView

	Sounds []string
	// Music is the pending track-change request; nil means keep playing
	// whatever is on.
	Music *string
}

type PlayerView struct {
	Pos        cp.Vector
	Radius     float64
	Focused    bool
	Invincible bool
	BombActive bool
}

type BulletView struct {
	Pos    cp.Vector
	Radius float64
	Sprite string
	Player bool
}

type EnemyView struct {
	Pos    cp.Vector
	Radius float64
	HP     int
	MaxHP  int
	IsBoss bool
}

type ItemView struct {
	Pos  cp.Vector
	Kind string
}

// Snapshot captures the current tick. Draining the sound queue is part of
// the capture; call it once per rendered frame.
func (g *Game) Snapshot() Snapshot {
	if g == nil {
		return Snapshot{}
	}
	w := g.world
	snap := Snapshot{
		Frame:         w.Frame(),
		Time:          w.Elapsed(),
		GameOver:      w.GameOver(),
		StageFinished: w.StageFinished(),
		Hud:           ecs.MustResource[components.HudData](w),
		Boss:          ecs.MustResource[components.BossHudData](w),
		Sounds:        w.DrainSounds(),
	}
	if track, ok := w.TakeMusic(); ok {
		snap.Music = &track
	}

	if player := w.Player(); player.Valid() {
		pos := w.Position(player)
		col := w.Collider(player)
		if pos != nil && col != nil {
			view := &PlayerView{Pos: pos.Pos, Radius: col.Radius}
			if focus := w.FocusState(player); focus != nil {
				view.Focused = focus.Focused
			}
			if dmg := w.PlayerDamage(player); dmg != nil {
				view.Invincible = dmg.Invincible > 0 || dmg.PendingDeath
			}
			if bomb := w.BombState(player); bomb != nil {
				view.BombActive = bomb.Active
			}
			snap.Player = view
		}
		if opts := w.OptionState(player); opts != nil {
			n := opts.Count
			if n > len(opts.Positions) {
				n = len(opts.Positions)
			}
			snap.Options = append(snap.Options, opts.Positions[:n]...)
		}
	}

	colliders := w.Colliders()
	for _, id := range colliders.Entities() {
		col, _ := colliders.Get(id).(*components.Collider)
		pos, _ := w.Positions().Get(id).(*components.Position)
		if col == nil || pos == nil {
			continue
		}
		switch col.Layer {
		case components.LayerPlayerBullet, components.LayerEnemyBullet:
			view := BulletView{
				Pos:    pos.Pos,
				Radius: col.Radius,
				Player: col.Layer == components.LayerPlayerBullet,
			}
			if b, ok := w.Bullets().Get(id).(*components.Bullet); ok && b != nil {
				view.Sprite = b.Sprite
			}
			snap.Bullets = append(snap.Bullets, view)
		case components.LayerEnemy:
			view := EnemyView{Pos: pos.Pos, Radius: col.Radius, IsBoss: w.BossTags().Has(id)}
			if h, ok := w.Healths().Get(id).(*components.Health); ok && h != nil {
				view.HP = h.HP
				view.MaxHP = h.MaxHP
			}
			snap.Enemies = append(snap.Enemies, view)
		case components.LayerItem:
			if item, ok := w.Items().Get(id).(*components.Item); ok && item != nil {
				snap.Items = append(snap.Items, ItemView{Pos: pos.Pos, Kind: item.Kind})
			}
		}
	}
	return snap
}
