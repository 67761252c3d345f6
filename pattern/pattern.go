// Package pattern turns declarative bullet-pattern configs into concrete
// per-bullet shot data (velocity + spawn offset + fire delay + optional
// motion program). Evaluators are pure: the same inputs always produce the
// same shots, which keeps replays and tests deterministic.
package pattern

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/star1sakura/MajoSaipan-KontonSei/common"
)

// Kind identifies a built-in pattern evaluator.
type Kind int

const (
	KindAimPlayer Kind = iota
	KindStraightDown
	KindNWay
	KindRing
	KindSpiral
	KindScript
)

func (k Kind) String() string {
	switch k {
	case KindAimPlayer:
		return "aim_player"
	case KindStraightDown:
		return "straight_down"
	case KindNWay:
		return "n_way"
	case KindRing:
		return "ring"
	case KindSpiral:
		return "spiral"
	case KindScript:
		return "script"
	}
	return "unknown"
}

// ShotData describes a single bullet to be spawned: its velocity, its spawn
// offset relative to the shooter, how long to wait before it materializes,
// and an optional motion program that takes over after spawn.
//
// Offset stays shooter-relative even for delayed shots: a delayed bullet
// spawns at the shooter's position at expiry time, not at fire time.
type ShotData struct {
	Velocity cp.Vector
	Offset   cp.Vector
	Delay    float64
	Motion   []MotionPhase
}

// Config is the declarative description of one pattern.
type Config struct {
	Kind          Kind
	BulletSpeed   float64
	Count         int
	SpreadDeg     float64
	StartAngleDeg float64
	SpinSpeedDeg  float64
	// Script holds tengo source for KindScript. See script.go for the
	// contract between the engine and the snippet.
	Script string
}

// State is the mutable per-shooter pattern state. Spiral patterns keep their
// running angle here; script patterns cache their compiled program.
type State struct {
	CurrentAngle float64

	seeded        bool
	compiled      *scriptRuntime
	compiledSrc   string
	compileFailed bool
}

// Context carries the world inputs an evaluator may read.
type Context struct {
	ShooterPos cp.Vector
	PlayerPos  cp.Vector
	HasPlayer  bool
}

// Source produces shot data. Config is the leaf implementation; the timing
// combinators in combinators.go wrap any Source, so delays and rotations
// layer without touching the base pattern.
type Source interface {
	Shots(t *Table, ctx Context, st *State) []ShotData
}

type evalFunc func(t *Table, ctx Context, cfg Config, st *State) []ShotData

// Table is the fixed kind-to-evaluator dispatch table. It is built once at
// startup; nothing registers into it afterwards.
type Table struct {
	handlers map[Kind]evalFunc
	log      *zap.Logger
}

// NewTable builds the dispatch table with all built-in evaluators.
func NewTable(log *zap.Logger) *Table {
	if log == nil {
		log = zap.NewNop()
	}
	t := &Table{
		handlers: make(map[Kind]evalFunc),
		log:      log,
	}
	t.handlers[KindAimPlayer] = evalAimPlayer
	t.handlers[KindStraightDown] = evalStraightDown
	t.handlers[KindNWay] = evalNWay
	t.handlers[KindRing] = evalRing
	t.handlers[KindSpiral] = evalSpiral
	t.handlers[KindScript] = evalScript
	return t
}

// Evaluate runs the evaluator for cfg.Kind. An unknown kind degrades to a
// single straight-down shot and logs a warning; the simulation keeps going.
func (t *Table) Evaluate(ctx Context, cfg Config, st *State) []ShotData {
	if t == nil {
		return nil
	}
	handler, ok := t.handlers[cfg.Kind]
	if !ok {
		t.log.Warn("unknown bullet pattern kind, falling back to straight-down",
			zap.Int("kind", int(cfg.Kind)))
		return straightDown(cfg)
	}
	return handler(t, ctx, cfg, st)
}

// Shots makes Config a Source so combinators can wrap it directly.
func (c Config) Shots(t *Table, ctx Context, st *State) []ShotData {
	return t.Evaluate(ctx, c, st)
}

func straightDown(cfg Config) []ShotData {
	return []ShotData{{Velocity: cp.Vector{Y: cfg.BulletSpeed}}}
}

// aimDir returns the unit vector from the shooter toward the player, or
// straight down when there is no player to aim at.
func aimDir(ctx Context) cp.Vector {
	if !ctx.HasPlayer {
		return cp.Vector{Y: 1}
	}
	to := ctx.PlayerPos.Sub(ctx.ShooterPos)
	if to.LengthSq() < 1e-9 {
		return cp.Vector{Y: 1}
	}
	return to.Normalize()
}

func evalAimPlayer(_ *Table, ctx Context, cfg Config, _ *State) []ShotData {
	return []ShotData{{Velocity: aimDir(ctx).Mult(cfg.BulletSpeed)}}
}

func evalStraightDown(_ *Table, _ Context, cfg Config, _ *State) []ShotData {
	return straightDown(cfg)
}

// evalNWay fans Count bullets across SpreadDeg, centered on the
// aim-at-player direction.
func evalNWay(_ *Table, ctx Context, cfg Config, _ *State) []ShotData {
	base := aimDir(ctx)
	count := cfg.Count
	if count < 1 {
		count = 1
	}
	if count == 1 {
		return []ShotData{{Velocity: base.Mult(cfg.BulletSpeed)}}
	}

	shots := make([]ShotData, 0, count)
	half := cfg.SpreadDeg / 2.0
	for i := 0; i < count; i++ {
		t := float64(i) / float64(count-1)
		offset := -half + cfg.SpreadDeg*t
		vel := common.RotateDeg(base, offset).Mult(cfg.BulletSpeed)
		shots = append(shots, ShotData{Velocity: vel})
	}
	return shots
}

// evalRing distributes Count bullets evenly over 360°, starting at
// StartAngleDeg.
func evalRing(_ *Table, _ Context, cfg Config, _ *State) []ShotData {
	count := cfg.Count
	if count < 1 {
		count = 1
	}
	step := 360.0 / float64(count)

	shots := make([]ShotData, 0, count)
	for i := 0; i < count; i++ {
		angle := cfg.StartAngleDeg + step*float64(i)
		shots = append(shots, ShotData{Velocity: common.VelocityFromAngle(cfg.BulletSpeed, angle)})
	}
	return shots
}

// evalSpiral emits a ring whose base angle advances by SpinSpeedDeg per
// evaluation when a State is supplied, so repeated fire sweeps around.
func evalSpiral(_ *Table, _ Context, cfg Config, st *State) []ShotData {
	count := cfg.Count
	if count < 1 {
		count = 1
	}
	step := 360.0 / float64(count)

	current := cfg.StartAngleDeg
	if st != nil {
		if !st.seeded {
			st.seeded = true
			st.CurrentAngle = cfg.StartAngleDeg
		}
		current = st.CurrentAngle
	}

	shots := make([]ShotData, 0, count)
	for i := 0; i < count; i++ {
		angle := current + step*float64(i)
		shots = append(shots, ShotData{Velocity: common.VelocityFromAngle(cfg.BulletSpeed, angle)})
	}

	if st != nil {
		st.CurrentAngle += cfg.SpinSpeedDeg
	}
	return shots
}
