package pattern

import "github.com/jakecoffman/cp"

// MotionKind selects how a motion phase drives its bullet.
type MotionKind int

const (
	// MotionLinear keeps the bullet's current velocity. Duration 0 means
	// hold forever; a positive duration advances to the next phase when it
	// elapses.
	MotionLinear MotionKind = iota
	// MotionTurn rotates the bullet's heading toward AngleTo over Duration
	// seconds, preserving speed. Duration 0 snaps instantly. AimPlayer
	// resolves AngleTo toward the player at phase entry.
	MotionTurn
	// MotionAccel interpolates the bullet's speed toward SpeedTo over
	// Duration seconds, preserving heading.
	MotionAccel
	// MotionHover zeroes velocity for Duration seconds.
	MotionHover
	// MotionWaypoint steers through Waypoints at Speed, advancing when the
	// bullet comes within ArrivalThreshold of the current point.
	MotionWaypoint
)

// MotionPhase is one step of a bullet's motion program. Phases are value
// data: each spawned bullet gets its own copy, so runtime progress never
// bleeds between bullets sharing a pattern.
type MotionPhase struct {
	Kind     MotionKind
	Duration float64

	AngleTo   float64
	AimPlayer bool

	SpeedTo float64

	Waypoints        []cp.Vector
	Speed            float64
	ArrivalThreshold float64
}

// ClonePhases deep-copies a phase list for a freshly spawned bullet.
func ClonePhases(phases []MotionPhase) []MotionPhase {
	if len(phases) == 0 {
		return nil
	}
	out := make([]MotionPhase, len(phases))
	copy(out, phases)
	for i := range out {
		if len(phases[i].Waypoints) > 0 {
			out[i].Waypoints = make([]cp.Vector, len(phases[i].Waypoints))
			copy(out[i].Waypoints, phases[i].Waypoints)
		}
	}
	return out
}

// MotionBuilder compiles a fluent sequence of motion commands into a phase
// list. Commands append phases; Build returns the list.
//
//	phases := pattern.NewMotion().
//		Wait(0.5).
//		AimAtPlayer().
//		AccelerateTo(220, 0.3).
//		Build()
type MotionBuilder struct {
	phases []MotionPhase
}

func NewMotion() *MotionBuilder {
	return &MotionBuilder{}
}

// Wait keeps the current velocity for the given number of seconds.
func (b *MotionBuilder) Wait(seconds float64) *MotionBuilder {
	b.phases = append(b.phases, MotionPhase{Kind: MotionLinear, Duration: seconds})
	return b
}

// SetSpeed snaps the bullet's speed immediately.
func (b *MotionBuilder) SetSpeed(speed float64) *MotionBuilder {
	b.phases = append(b.phases, MotionPhase{Kind: MotionAccel, SpeedTo: speed})
	return b
}

// SetAngle snaps the bullet's heading immediately.
func (b *MotionBuilder) SetAngle(angleDeg float64) *MotionBuilder {
	b.phases = append(b.phases, MotionPhase{Kind: MotionTurn, AngleTo: angleDeg})
	return b
}

// TurnTo rotates the heading toward angleDeg over the given duration.
func (b *MotionBuilder) TurnTo(angleDeg, seconds float64) *MotionBuilder {
	b.phases = append(b.phases, MotionPhase{Kind: MotionTurn, AngleTo: angleDeg, Duration: seconds})
	return b
}

// AccelerateTo interpolates the speed toward the target over the duration.
func (b *MotionBuilder) AccelerateTo(speed, seconds float64) *MotionBuilder {
	b.phases = append(b.phases, MotionPhase{Kind: MotionAccel, SpeedTo: speed, Duration: seconds})
	return b
}

// AimAtPlayer snaps the heading toward the player's position at the moment
// this phase begins.
func (b *MotionBuilder) AimAtPlayer() *MotionBuilder {
	b.phases = append(b.phases, MotionPhase{Kind: MotionTurn, AimPlayer: true})
	return b
}

// Hover stops the bullet in place for the given duration.
func (b *MotionBuilder) Hover(seconds float64) *MotionBuilder {
	b.phases = append(b.phases, MotionPhase{Kind: MotionHover, Duration: seconds})
	return b
}

// Waypoints steers through the given points at the given speed.
func (b *MotionBuilder) Waypoints(points []cp.Vector, speed, arrivalThreshold float64) *MotionBuilder {
	b.phases = append(b.phases, MotionPhase{
		Kind:             MotionWaypoint,
		Waypoints:        points,
		Speed:            speed,
		ArrivalThreshold: arrivalThreshold,
	})
	return b
}

func (b *MotionBuilder) Build() []MotionPhase {
	return b.phases
}
