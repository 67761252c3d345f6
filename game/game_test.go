package game

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/star1sakura/MajoSaipan-KontonSei/common"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/script"
)

// quietStage parks the stage controller so tests drive the world alone.
func quietStage(ctx *script.Context) {
	for {
		ctx.Wait(600)
	}
}

func newTestGame(t *testing.T, stage StageFunc) *Game {
	t.Helper()
	if stage == nil {
		stage = quietStage
	}
	g, err := New(Config{Stage: stage})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNewDefaults(t *testing.T) {
	g := newTestGame(t, nil)

	w := g.World()
	width, height := w.Bounds()
	if width != 384 || height != 448 {
		t.Fatalf("bounds = %fx%f, want 384x448", width, height)
	}

	player := w.Player()
	if !player.Valid() {
		t.Fatalf("no player spawned")
	}
	stats := w.PlayerStatsOf(player)
	if stats.Lives != 3 || stats.Bombs != 3 {
		t.Fatalf("default character stats = %+v", stats)
	}
	if w.ShotConfig(player) == nil || w.BombConfig(player) == nil {
		t.Fatalf("player missing loadout components")
	}
}

func TestNewCharacterSelection(t *testing.T) {
	g, err := New(Config{Character: "typeB", Stage: quietStage})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cfg := g.World().PlayerConfig(g.World().Player())
	if cfg.Speed != 300 {
		t.Fatalf("typeB speed = %f, want 300", cfg.Speed)
	}

	if _, err := New(Config{Character: "typeZ", Stage: quietStage}); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("unknown character error = %v, want ErrUnknownKind", err)
	}
}

func TestSnapshotBeforeFirstTick(t *testing.T) {
	g := newTestGame(t, nil)
	snap := g.Snapshot()
	if snap.Player == nil {
		t.Fatalf("snapshot missing player")
	}
	if snap.GameOver || snap.StageFinished {
		t.Fatalf("fresh game flags = %+v", snap)
	}
}

func TestTickAdvancesClock(t *testing.T) {
	g := newTestGame(t, nil)
	for i := 0; i < 10; i++ {
		g.Tick(Input{})
	}
	if got := g.World().Frame(); got != 10 {
		t.Fatalf("frame = %d, want 10", got)
	}
}

func TestAdvanceFixedStep(t *testing.T) {
	cases := []struct {
		name      string
		frameDT   float64
		frames    int
		wantTicks int
	}{
		{"sixty_fps", 1.0 / 60, 60, 60},
		{"thirty_fps", 1.0 / 30, 30, 60},
		{"stall_capped", 1.0, 1, common.MaxTicksPerFrame},
		{"tiny_frames_accumulate", 1.0 / 120, 4, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			for i := 0; i < c.frames; i++ {
				g.Advance(c.frameDT, Input{})
			}
			got := g.World().Frame()
			// Float accumulation may land one tick shy.
			if got != c.wantTicks && got != c.wantTicks-1 {
				t.Fatalf("ticks = %d, want %d", got, c.wantTicks)
			}
		})
	}
}

func TestStallDropsLeftoverTime(t *testing.T) {
	g := newTestGame(t, nil)
	g.Advance(2.0, Input{})
	before := g.World().Frame()
	g.Advance(1.0/60, Input{})
	if got := g.World().Frame(); got != before+1 {
		t.Fatalf("leftover stall time leaked into later frames: %d -> %d", before, got)
	}
}

func TestBombInputIsEdgeTriggered(t *testing.T) {
	g := newTestGame(t, nil)
	player := g.World().Player()
	stats := g.World().PlayerStatsOf(player)

	// Holding the button across many ticks spends exactly one bomb.
	for i := 0; i < 30; i++ {
		g.Tick(Input{Bomb: true})
	}
	if stats.Bombs != 2 {
		t.Fatalf("bombs = %d, want 2 after a held press", stats.Bombs)
	}

	// Release and press again once the first bomb ends.
	for i := 0; i < 240; i++ {
		g.Tick(Input{})
	}
	g.Tick(Input{Bomb: true})
	if stats.Bombs != 1 {
		t.Fatalf("bombs = %d, want 1 after a second press", stats.Bombs)
	}
}

func TestShootInputEdgeFlag(t *testing.T) {
	g := newTestGame(t, nil)
	w := g.World()

	g.Tick(Input{Shoot: true})
	if in := ecs.MustResource[components.InputFrame](w); !in.ShootPressed {
		t.Fatalf("first shoot tick must report a fresh press")
	}
	g.Tick(Input{Shoot: true})
	if in := ecs.MustResource[components.InputFrame](w); in.ShootPressed {
		t.Fatalf("held shoot must not report a press")
	}
	g.Tick(Input{})
	g.Tick(Input{Shoot: true})
	if in := ecs.MustResource[components.InputFrame](w); !in.ShootPressed {
		t.Fatalf("re-press after a release must report a press")
	}
}

func TestStageMusicReachesSnapshot(t *testing.T) {
	g := newTestGame(t, Stage1)

	g.Tick(Input{})
	snap := g.Snapshot()
	if snap.Music == nil || *snap.Music != "stage1_theme" {
		t.Fatalf("first snapshot music = %v, want stage1_theme", snap.Music)
	}

	// A taken request must not repeat on the next snapshot.
	g.Tick(Input{})
	if snap := g.Snapshot(); snap.Music != nil {
		t.Fatalf("consumed track request came back as %q", *snap.Music)
	}
}

func TestShootingProducesBulletsAndScore(t *testing.T) {
	g := newTestGame(t, nil)
	w := g.World()

	// An enemy parked right above the player soaks the stream.
	reg := ecs.MustResource[*Registry](w)
	enemy, err := reg.SpawnEnemy(w, "fairy_small", cp.Vector{X: 192, Y: 300})
	if err != nil {
		t.Fatalf("SpawnEnemy: %v", err)
	}
	if es := w.EnemyShooting(enemy); es != nil {
		es.Enabled = false
	}

	for i := 0; i < 120 && w.IsAlive(enemy); i++ {
		g.Tick(Input{Shoot: true})
	}

	if w.IsAlive(enemy) {
		t.Fatalf("enemy survived two seconds of fire")
	}
	stats := w.PlayerStatsOf(w.Player())
	if stats.Score <= 0 {
		t.Fatalf("kill scored nothing")
	}
	sstats := ecs.MustResource[*components.StageStats](w)
	if sstats.EnemiesKilled != 1 || sstats.BulletsFired == 0 {
		t.Fatalf("stage stats = %+v", sstats)
	}
}

func TestDeterministicReplay(t *testing.T) {
	inputs := make([]Input, 600)
	for i := range inputs {
		inputs[i] = Input{
			Shoot: true,
			Left:  i%120 < 40,
			Right: i%120 >= 60 && i%120 < 100,
			Focus: i%200 < 50,
		}
	}

	run := func() []Snapshot {
		g, err := New(Config{})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		var snaps []Snapshot
		for i, in := range inputs {
			g.Tick(in)
			if i%60 == 59 {
				snaps = append(snaps, g.Snapshot())
			}
		}
		return snaps
	}

	a := run()
	b := run()
	if len(a) != len(b) {
		t.Fatalf("snapshot counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			t.Fatalf("replay diverged at snapshot %d:\n%+v\nvs\n%+v", i, a[i], b[i])
		}
	}
}

func TestStage1Spawns(t *testing.T) {
	g := newTestGame(t, Stage1)
	w := g.World()

	// Two seconds in, the first wave is on screen.
	for i := 0; i < 150; i++ {
		g.Tick(Input{})
	}
	if w.EnemyTags().Len() == 0 {
		t.Fatalf("no enemies two seconds into the stage")
	}
}

func TestRegistryUnknownEnemy(t *testing.T) {
	g := newTestGame(t, nil)
	reg := ecs.MustResource[*Registry](g.World())
	if _, err := reg.SpawnEnemy(g.World(), "dragon", cp.Vector{}); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("unknown enemy error = %v, want ErrUnknownKind", err)
	}
}

func TestWaveShapes(t *testing.T) {
	t.Run("line_spreads_across_width", func(t *testing.T) {
		entries := LineWave("fairy_small", 3, 400, 90)
		if len(entries) != 3 {
			t.Fatalf("entries = %d", len(entries))
		}
		if entries[0].Pos.X >= entries[1].Pos.X || entries[1].Pos.X >= entries[2].Pos.X {
			t.Fatalf("line not ordered across the width: %+v", entries)
		}
		for _, e := range entries {
			if e.DelayTicks != 0 {
				t.Fatalf("line wave must spawn at once")
			}
		}
	})

	t.Run("column_staggers", func(t *testing.T) {
		entries := ColumnWave("fairy_small", 3, 100, 110, 20)
		for i, e := range entries {
			if e.DelayTicks != i*20 {
				t.Fatalf("entry %d delay = %d, want %d", i, e.DelayTicks, i*20)
			}
			if e.Pos.X != 100 {
				t.Fatalf("column drifted to x = %f", e.Pos.X)
			}
		}
	})

	t.Run("fan_spreads_headings", func(t *testing.T) {
		entries := FanWave("fairy_small", 3, cp.Vector{X: 200, Y: -20}, 100, 80)
		first := entries[0].Path.BaseVel
		last := entries[2].Path.BaseVel
		if first.X <= 0 || last.X >= 0 {
			t.Fatalf("fan headings do not spread: %v .. %v", first, last)
		}
		mid := entries[1].Path.BaseVel
		if math.Abs(mid.X) > 1e-9 || mid.Y <= 0 {
			t.Fatalf("fan center must go straight down, got %v", mid)
		}
	})

	t.Run("sway_uses_sine_path", func(t *testing.T) {
		entries := SwayWave("fairy_large", 2, 400, 70, 60, 0.4, 45)
		for _, e := range entries {
			if e.Path.Kind != "sine_sway" {
				t.Fatalf("path kind = %s", e.Path.Kind)
			}
			if e.Path.Amplitude != 60 {
				t.Fatalf("amplitude = %f", e.Path.Amplitude)
			}
		}
	})
}
