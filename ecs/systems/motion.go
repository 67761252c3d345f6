package systems

import (
	"github.com/star1sakura/MajoSaipan-KontonSei/common"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs"
	"github.com/star1sakura/MajoSaipan-KontonSei/ecs/components"
	"github.com/star1sakura/MajoSaipan-KontonSei/pattern"
)

// maxInstantPhases bounds how many zero-duration phases one bullet can
// chain through in a single tick.
const maxInstantPhases = 16

// MotionProgramSystem interprets per-bullet motion phase lists. Each bullet
// owns its copy of the phases, so two bullets from the same pattern never
// share timers or waypoint progress.
type MotionProgramSystem struct{}

func NewMotionProgramSystem() *MotionProgramSystem {
	return &MotionProgramSystem{}
}

func (s *MotionProgramSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	motions := w.Motions()
	for _, id := range motions.Entities() {
		m, _ := motions.Get(id).(*components.Motion)
		pos, _ := w.Positions().Get(id).(*components.Position)
		vel, _ := w.Velocities().Get(id).(*components.Velocity)
		if m == nil || pos == nil || vel == nil {
			continue
		}
		s.step(w, m, pos, vel, dt)
	}
}

func (s *MotionProgramSystem) step(w *ecs.World, m *components.Motion, pos *components.Position, vel *components.Velocity, dt float64) {
	for hops := 0; hops < maxInstantPhases; hops++ {
		if m.Index >= len(m.Phases) {
			return
		}
		phase := &m.Phases[m.Index]

		if !m.Entered {
			m.Entered = true
			m.Timer = 0
			m.Waypoint = 0
			m.StartSpeed = vel.Vel.Length()
			m.StartAngle = common.AngleDeg(vel.Vel)
			if phase.Kind == pattern.MotionTurn && phase.AimPlayer {
				phase.AngleTo = m.StartAngle
				if player := w.Player(); player.Valid() {
					if pp := w.Position(player); pp != nil {
						to := pp.Pos.Sub(pos.Pos)
						if to.LengthSq() > 1e-9 {
							phase.AngleTo = common.AngleDeg(to)
						}
					}
				}
			}
		}

		switch phase.Kind {
		case pattern.MotionLinear:
			if phase.Duration <= 0 {
				// Terminal hold; the program never advances past it.
				return
			}
			m.Timer += dt
			if m.Timer < phase.Duration {
				return
			}

		case pattern.MotionTurn:
			if phase.Duration <= 0 {
				vel.Vel = common.VelocityFromAngle(m.StartSpeed, phase.AngleTo)
				s.advance(m)
				continue
			}
			m.Timer += dt
			t := common.Clamp(m.Timer/phase.Duration, 0, 1)
			angle := common.AngleLerpDeg(m.StartAngle, phase.AngleTo, t)
			vel.Vel = common.VelocityFromAngle(m.StartSpeed, angle)
			if t < 1 {
				return
			}

		case pattern.MotionAccel:
			if phase.Duration <= 0 {
				vel.Vel = common.VelocityFromAngle(phase.SpeedTo, m.StartAngle)
				s.advance(m)
				continue
			}
			m.Timer += dt
			t := common.Clamp(m.Timer/phase.Duration, 0, 1)
			speed := common.Lerp(m.StartSpeed, phase.SpeedTo, t)
			vel.Vel = common.VelocityFromAngle(speed, m.StartAngle)
			if t < 1 {
				return
			}

		case pattern.MotionHover:
			vel.Vel.X, vel.Vel.Y = 0, 0
			m.Timer += dt
			if m.Timer < phase.Duration {
				return
			}
			// Resume the velocity the bullet had before hovering.
			vel.Vel = common.VelocityFromAngle(m.StartSpeed, m.StartAngle)

		case pattern.MotionWaypoint:
			if m.Waypoint >= len(phase.Waypoints) {
				s.advance(m)
				continue
			}
			target := phase.Waypoints[m.Waypoint]
			to := target.Sub(pos.Pos)
			threshold := phase.ArrivalThreshold
			if threshold <= 0 {
				threshold = phase.Speed * dt
			}
			if to.Length() <= threshold {
				m.Waypoint++
				continue
			}
			vel.Vel = to.Normalize().Mult(phase.Speed)
			return

		default:
			s.advance(m)
			continue
		}

		s.advance(m)
	}
}

func (s *MotionProgramSystem) advance(m *components.Motion) {
	m.Index++
	m.Entered = false
}
