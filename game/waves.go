package game

import (
	"github.com/jakecoffman/cp"

	"github.com/star1sakura/MajoSaipan-KontonSei/common"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/script"
)

// WaveEntry is one enemy in a wave: what to spawn, where, how it moves,
// and how many ticks after the wave start it appears.
type WaveEntry struct {
	Kind       string
	Pos        cp.Vector
	Path       components.PathFollower
	DelayTicks int
}

// LineWave spawns count enemies in a horizontal row across the top,
// descending together.
func LineWave(kind string, count int, width, speed float64) []WaveEntry {
	entries := make([]WaveEntry, 0, count)
	for i := 0; i < count; i++ {
		t := (float64(i) + 1) / (float64(count) + 1)
		entries = append(entries, WaveEntry{
			Kind: kind,
			Pos:  cp.Vector{X: width * t, Y: -20},
			Path: components.PathFollower{Kind: "straight", BaseVel: cp.Vector{Y: speed}},
		})
	}
	return entries
}

// ColumnWave spawns count enemies one after another at the same x, each a
// beat behind the last.
func ColumnWave(kind string, count int, x, speed float64, gapTicks int) []WaveEntry {
	entries := make([]WaveEntry, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, WaveEntry{
			Kind:       kind,
			Pos:        cp.Vector{X: x, Y: -20},
			Path:       components.PathFollower{Kind: "straight", BaseVel: cp.Vector{Y: speed}},
			DelayTicks: i * gapTicks,
		})
	}
	return entries
}

// FanWave spawns count enemies from one point with spread headings.
func FanWave(kind string, count int, origin cp.Vector, speed, spreadDeg float64) []WaveEntry {
	entries := make([]WaveEntry, 0, count)
	for i := 0; i < count; i++ {
		angle := 90.0
		if count > 1 {
			t := float64(i) / float64(count-1)
			angle = 90 - spreadDeg/2 + spreadDeg*t
		}
		vel := common.VelocityFromAngle(speed, angle)
		entries = append(entries, WaveEntry{
			Kind: kind,
			Pos:  origin,
			Path: components.PathFollower{Kind: "straight", BaseVel: vel},
		})
	}
	return entries
}

// SwayWave spawns count enemies descending with a sine sway, staggered.
func SwayWave(kind string, count int, width, speed, amplitude, frequency float64, gapTicks int) []WaveEntry {
	entries := make([]WaveEntry, 0, count)
	for i := 0; i < count; i++ {
		t := (float64(i) + 1) / (float64(count) + 1)
		entries = append(entries, WaveEntry{
			Kind: kind,
			Pos:  cp.Vector{X: width * t, Y: -20},
			Path: components.PathFollower{
				Kind:      "sine_sway",
				BaseVel:   cp.Vector{Y: speed},
				Amplitude: amplitude,
				Frequency: frequency,
			},
			DelayTicks: i * gapTicks,
		})
	}
	return entries
}

// RunWave spawns a wave from a stage task, honoring per-entry delays. It
// returns once the last entry has spawned.
func RunWave(ctx *script.Context, entries []WaveEntry) {
	elapsed := 0
	for _, entry := range entries {
		if entry.DelayTicks > elapsed {
			ctx.Wait(entry.DelayTicks - elapsed)
			elapsed = entry.DelayTicks
		}
		e, err := ctx.SpawnEnemy(entry.Kind, entry.Pos)
		if err != nil {
			continue
		}
		path := entry.Path
		ctx.World.SetPathFollower(e, &path)
	}
}
