package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func Rad2Deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// VelocityFromAngle converts polar (speed, angle in degrees) into a velocity
// vector. 0° points right (+X), 90° points down (+Y, screen coordinates),
// angles grow clockwise.
func VelocityFromAngle(speed, angleDeg float64) cp.Vector {
	return cp.ForAngle(Deg2Rad(angleDeg)).Mult(speed)
}

// AngleDeg returns the angle of v in degrees, same convention as
// VelocityFromAngle.
func AngleDeg(v cp.Vector) float64 {
	return Rad2Deg(v.ToAngle())
}

// RotateDeg rotates v by angleDeg degrees clockwise.
func RotateDeg(v cp.Vector, angleDeg float64) cp.Vector {
	return v.Rotate(cp.ForAngle(Deg2Rad(angleDeg)))
}

// AngleLerpDeg interpolates between two headings along the shorter arc.
func AngleLerpDeg(from, to, t float64) float64 {
	diff := math.Mod(to-from, 360)
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}
	return from + diff*t
}
