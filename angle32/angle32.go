// Package angle32 is the single precision counterpart of package angle.
package angle32

import (
	"github.com/chewxy/math32"
	"github.com/soypat/angle"
)

// Unit is a system of angular measurement. See angle.Unit.
type Unit struct {
	Half    float32
	Full    float32
	Quarter float32
}

var (
	// Degrees measures a full turn as 360.
	Degrees = Unit{Half: 180, Full: 360, Quarter: 90}
	// Radians measures a full turn as 2π.
	Radians = Unit{Half: math32.Pi, Full: 2 * math32.Pi, Quarter: math32.Pi / 2}
	// Rotations measures a full turn as 1.
	Rotations = Unit{Half: 0.5, Full: 1, Quarter: 0.25}
)

// FromUnit rounds a double precision unit to single precision.
func FromUnit(u angle.Unit) Unit {
	return Unit{Half: float32(u.Half), Full: float32(u.Full), Quarter: float32(u.Quarter)}
}

// Convert scales angle a measured in u to the unit to.
func (u Unit) Convert(a float32, to Unit) float32 {
	if u == to {
		return a
	}
	return a * (to.Full / u.Full)
}

// SignedNormal reduces a to the range [-u.Half, u.Half).
func SignedNormal(a float32, u Unit) float32 {
	result := math32.Remainder(a, u.Full)
	if result == u.Half {
		result = -u.Half
	}
	return result
}

// UnsignedNormal reduces a to the range [0, u.Full).
func UnsignedNormal(a float32, u Unit) float32 {
	result := SignedNormal(a-u.Half, u) + u.Half
	if result >= u.Full {
		result = 0
	}
	return result
}

// NormalizePolar reduces a polar direction so that azimuth lies in
// [0, u.Full) and altitude in [-u.Quarter, u.Quarter].
func NormalizePolar(azimuth, altitude float32, u Unit) (float32, float32) {
	altitude = SignedNormal(altitude, u)
	if altitude > u.Quarter {
		altitude = u.Half - altitude
		azimuth = -azimuth
	} else if altitude < -u.Quarter {
		altitude = -u.Half - altitude
		azimuth = -azimuth
	}
	return UnsignedNormal(azimuth, u), altitude
}

// Difference returns the shortest signed rotation taking from to to.
func Difference(from, to float32, u Unit) float32 {
	return SignedNormal(to-from, u)
}
