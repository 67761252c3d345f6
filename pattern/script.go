package pattern

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	"github.com/star1sakura/MajoSaipan-KontonSei/common"
)

// Script patterns run a tengo snippet top-to-bottom every evaluation. The
// snippet reads its inputs from globals and emits bullets through fire():
//
//	shooter_x, shooter_y   shooter position
//	player_x, player_y     player position (shooter position when absent)
//	speed, count, spread   copied from the pattern config
//	current_angle          persisted across evaluations (spiral state)
//
//	fire(speed, angle_deg)            emit one bullet
//	fire(speed, angle_deg, delay)     emit one delayed bullet
//	aim()                             angle toward the player, degrees
//	set_current_angle(a)              persist the running angle
//
// Compilation happens once per shooter and is cached on the pattern State.
// A snippet that fails to compile or run degrades to a straight-down shot,
// same as an unknown pattern kind.

type scriptRuntime struct {
	compiled *tengo.Compiled
}

func compileScript(src string) (*scriptRuntime, error) {
	script := tengo.NewScript([]byte(src))
	for _, name := range []string{"shooter_x", "shooter_y", "player_x", "player_y", "speed", "spread", "current_angle"} {
		_ = script.Add(name, 0.0)
	}
	_ = script.Add("count", 0)
	noop := &tengo.UserFunction{Value: func(...tengo.Object) (tengo.Object, error) {
		return tengo.UndefinedValue, nil
	}}
	_ = script.Add("fire", noop)
	_ = script.Add("aim", noop)
	_ = script.Add("set_current_angle", noop)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile pattern script: %w", err)
	}
	return &scriptRuntime{compiled: compiled}, nil
}

func (rt *scriptRuntime) run(ctx Context, cfg Config, st *State) ([]ShotData, error) {
	playerPos := ctx.ShooterPos
	if ctx.HasPlayer {
		playerPos = ctx.PlayerPos
	}

	var shots []ShotData

	fire := &tengo.UserFunction{Name: "fire", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		speed, ok := tengo.ToFloat64(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "speed", Expected: "float"}
		}
		angle, ok := tengo.ToFloat64(args[1])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "angle", Expected: "float"}
		}
		delay := 0.0
		if len(args) > 2 {
			if delay, ok = tengo.ToFloat64(args[2]); !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "delay", Expected: "float"}
			}
		}
		shots = append(shots, ShotData{
			Velocity: common.VelocityFromAngle(speed, angle),
			Delay:    delay,
		})
		return tengo.UndefinedValue, nil
	}}

	aim := &tengo.UserFunction{Name: "aim", Value: func(...tengo.Object) (tengo.Object, error) {
		dir := aimDir(ctx)
		return &tengo.Float{Value: common.AngleDeg(dir)}, nil
	}}

	setCurrentAngle := &tengo.UserFunction{Name: "set_current_angle", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		v, ok := tengo.ToFloat64(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "angle", Expected: "float"}
		}
		if st != nil {
			st.CurrentAngle = v
		}
		return tengo.UndefinedValue, nil
	}}

	currentAngle := 0.0
	if st != nil {
		currentAngle = st.CurrentAngle
	}

	c := rt.compiled
	for name, value := range map[string]any{
		"shooter_x":         ctx.ShooterPos.X,
		"shooter_y":         ctx.ShooterPos.Y,
		"player_x":          playerPos.X,
		"player_y":          playerPos.Y,
		"speed":             cfg.BulletSpeed,
		"spread":            cfg.SpreadDeg,
		"current_angle":     currentAngle,
		"count":             cfg.Count,
		"fire":              fire,
		"aim":               aim,
		"set_current_angle": setCurrentAngle,
	} {
		if err := c.Set(name, value); err != nil {
			return nil, fmt.Errorf("set pattern script global %s: %w", name, err)
		}
	}

	if err := c.Run(); err != nil {
		return nil, fmt.Errorf("run pattern script: %w", err)
	}
	return shots, nil
}

func evalScript(t *Table, ctx Context, cfg Config, st *State) []ShotData {
	if cfg.Script == "" {
		return straightDown(cfg)
	}

	var local State
	if st == nil {
		st = &local
	}
	if st.compiled == nil || st.compiledSrc != cfg.Script {
		st.compiled = nil
		st.compiledSrc = cfg.Script
		st.compileFailed = false

		rt, err := compileScript(cfg.Script)
		if err != nil {
			st.compileFailed = true
			t.log.Warn("pattern script compile failed, falling back to straight-down", zap.Error(err))
			return straightDown(cfg)
		}
		st.compiled = rt
	}
	if st.compileFailed {
		return straightDown(cfg)
	}

	shots, err := st.compiled.run(ctx, cfg, st)
	if err != nil {
		t.log.Warn("pattern script run failed, falling back to straight-down", zap.Error(err))
		return straightDown(cfg)
	}
	return shots
}
