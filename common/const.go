package common

// The simulation advances on a fixed timestep. Rendering interpolation is
// the presentation layer's problem; everything below it counts in ticks.
const (
	TicksPerSecond = 60
	FixedDT        = 1.0 / TicksPerSecond

	// MaxTicksPerFrame caps catch-up after a stall. Past it the
	// accumulator is dropped and the simulation slows instead of spiraling.
	MaxTicksPerFrame = 5
)
