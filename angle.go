// Package angle reduces angles and polar directions to canonical form
// in any unit system where a turn is a fixed quantity, be it degrees,
// radians or rotations.
//
// All functions are pure and safe for concurrent use. Non-finite input is
// not an error: NaN and ±Inf propagate through math.Remainder and come
// out as NaN.
package angle

import "math"

// SignedNormal reduces a to the range [-u.Half, u.Half).
func SignedNormal(a float64, u Unit) float64 {
	result := math.Remainder(a, u.Full)
	if result == u.Half {
		result = -u.Half
	}
	return result
}

// UnsignedNormal reduces a to the range [0, u.Full).
func UnsignedNormal(a float64, u Unit) float64 {
	result := SignedNormal(a-u.Half, u) + u.Half
	if result >= u.Full {
		// The largest float below u.Half plus u.Half rounds up to a full turn.
		result = 0
	}
	return result
}

// NormalizePolar reduces a polar direction so that azimuth lies in
// [0, u.Full) and altitude in [-u.Quarter, u.Quarter]. An altitude past
// either pole is reflected back and the azimuth flipped.
//
// The result is still ambiguous at the poles: any azimuth paired with
// altitude ±u.Quarter describes the same direction.
func NormalizePolar(azimuth, altitude float64, u Unit) (float64, float64) {
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

// Difference returns the shortest signed rotation taking from to to,
// in the range [-u.Half, u.Half).
func Difference(from, to float64, u Unit) float64 {
	return SignedNormal(to-from, u)
}

// Lerp interpolates between from and to along the shortest arc.
// t=0 yields from and t=1 yields to, both in unsigned normal form.
func Lerp(from, to, t float64, u Unit) float64 {
	return UnsignedNormal(from+t*Difference(from, to, u), u)
}
