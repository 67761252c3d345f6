package game

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/prefabs"
)

// findCharacter resolves a preset id from loaded character data.
func findCharacter(specs *prefabs.CharactersSpec, id string) (prefabs.CharacterSpec, error) {
	if specs != nil {
		if id == "" && len(specs.Characters) > 0 {
			return specs.Characters[0], nil
		}
		for _, c := range specs.Characters {
			if c.ID == id {
				return c, nil
			}
		}
	}
	return prefabs.CharacterSpec{}, fmt.Errorf("character %q: %w", id, ErrUnknownKind)
}

// spawnPlayer builds the player entity from a character preset, parked at
// the bottom center of the playfield.
func spawnPlayer(w *ecs.World, c prefabs.CharacterSpec) ecs.Entity {
	width, height := w.Bounds()
	e := w.CreateEntity()
	w.SetPosition(e, &components.Position{Pos: cp.Vector{X: width / 2, Y: height * 0.9}})
	w.SetCollider(e, &components.Collider{
		Radius: c.HitboxRadius,
		Layer:  components.LayerPlayer,
		Mask:   components.LayerEnemyBullet | components.LayerEnemy | components.LayerItem,
	})
	w.SetPlayerTag(e)
	w.SetPlayerStats(e, &components.PlayerStats{
		Lives: c.Lives,
		Bombs: c.Bombs,
		Power: c.Power,
	})
	w.SetPlayerConfig(e, &components.PlayerConfig{
		Speed:       c.MoveSpeed,
		FocusSpeed:  c.FocusSpeed,
		GrazeRadius: c.GrazeRadius,
	})
	w.SetPlayerDamage(e, &components.PlayerDamage{})
	w.SetFocusState(e, &components.FocusState{})
	w.SetShotConfig(e, &components.ShotConfig{
		Interval:       c.Shot.Interval,
		Speed:          c.Shot.Speed,
		Damage:         c.Shot.Damage,
		Count:          c.Shot.Count,
		SpreadDeg:      c.Shot.SpreadDeg,
		FocusSpreadDeg: c.Shot.FocusSpreadDeg,
	})
	w.SetShotState(e, &components.ShotState{})
	w.SetOptionConfig(e, &components.OptionConfig{
		MaxOptions:      c.Options.Max,
		Damage:          c.Options.Damage,
		ShotSpeed:       c.Options.ShotSpeed,
		TransitionSpeed: c.Options.TransitionSpeed,
		Offsets:         vecsFromSpecs(c.Options.Offsets),
		FocusOffsets:    vecsFromSpecs(c.Options.FocusOffsets),
	})
	w.SetOptionState(e, &components.OptionState{})
	w.SetBombConfig(e, &components.BombConfig{
		Duration:       c.Bomb.Duration,
		Radius:         c.Bomb.Radius,
		Damage:         c.Bomb.Damage,
		DamageInterval: c.Bomb.DamageInterval,
	})
	w.SetBombState(e, &components.BombState{})
	w.SetPlayer(e)
	return e
}

func vecsFromSpecs(specs []prefabs.VecSpec) []cp.Vector {
	if len(specs) == 0 {
		return nil
	}
	out := make([]cp.Vector, len(specs))
	for i, v := range specs {
		out[i] = cp.Vector{X: v.X, Y: v.Y}
	}
	return out
}
