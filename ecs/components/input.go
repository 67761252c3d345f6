package components

// InputFrame is the sampled input for one simulation tick. The game loop
// sets it as a world resource before stepping; systems never read devices.
type InputFrame struct {
	// MoveX/MoveY are -1, 0, or 1 per axis.
	MoveX float64
	MoveY float64
	Focus bool
	Shoot bool
	// ShootPressed and Bomb are edge-triggered: true only on the tick the
	// button went down. Shooting itself repeats while held; the edge is
	// for one-shot reactions like charge starts.
	ShootPressed bool
	Bomb         bool
}
