package pattern

import "github.com/star1sakura/MajoSaipan-KontonSei/common"

// Timing combinators. Each wraps a Source and reshapes the delay or the
// velocity of the shots it produces, so the same base pattern can fire
// staggered, repeated, or chained without any evaluator knowing about
// timing. Combinators nest: Repeat{Base: Stagger{Base: cfg}} works.

// Stagger spreads the shots of a single evaluation out in time: shot i
// gains an extra i*DelayPerBullet seconds of fire delay.
type Stagger struct {
	Base           Source
	DelayPerBullet float64
}

func (s Stagger) Shots(t *Table, ctx Context, st *State) []ShotData {
	shots := s.Base.Shots(t, ctx, st)
	for i := range shots {
		shots[i].Delay += float64(i) * s.DelayPerBullet
	}
	return shots
}

// Repeat evaluates the base pattern Times times, Interval seconds apart,
// rotating every shot of repetition i by i*RotateDeg.
type Repeat struct {
	Base      Source
	Times     int
	Interval  float64
	RotateDeg float64
}

func (r Repeat) Shots(t *Table, ctx Context, st *State) []ShotData {
	times := r.Times
	if times < 1 {
		times = 1
	}
	var out []ShotData
	for i := 0; i < times; i++ {
		delay := float64(i) * r.Interval
		rot := float64(i) * r.RotateDeg
		for _, shot := range r.Base.Shots(t, ctx, st) {
			shot.Delay += delay
			if rot != 0 {
				shot.Velocity = common.RotateDeg(shot.Velocity, rot)
			}
			out = append(out, shot)
		}
	}
	return out
}

// Sequence chains several sources; each entry's shots are offset by the
// accumulated interval of the entries before it. Intervals[i] is the gap
// after entry i; a missing interval means no gap.
type Sequence struct {
	Entries   []Source
	Intervals []float64
}

func (s Sequence) Shots(t *Table, ctx Context, st *State) []ShotData {
	var out []ShotData
	offset := 0.0
	for i, entry := range s.Entries {
		for _, shot := range entry.Shots(t, ctx, st) {
			shot.Delay += offset
			out = append(out, shot)
		}
		if i < len(s.Intervals) {
			offset += s.Intervals[i]
		}
	}
	return out
}
