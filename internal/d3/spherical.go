package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sph is a spherical coordinate. Azimuth is measured in the XY plane from +X
// toward +Y and Altitude from the XY plane toward +Z, both in radians.
type Sph struct {
	R, Azimuth, Altitude float64
}

// SphericalToCartesian converts a spherical to a cartesian coordinate.
func (a Sph) SphericalToCartesian() r3.Vec {
	sinAz, cosAz := math.Sincos(a.Azimuth)
	sinAlt, cosAlt := math.Sincos(a.Altitude)
	return r3.Vec{
		X: a.R * cosAlt * cosAz,
		Y: a.R * cosAlt * sinAz,
		Z: a.R * sinAlt,
	}
}

// CartesianToSpherical converts a cartesian to a spherical coordinate.
// Azimuth lies in [-π, π] and Altitude in [-π/2, π/2].
func CartesianToSpherical(a r3.Vec) Sph {
	return Sph{
		R:        r3.Norm(a),
		Azimuth:  math.Atan2(a.Y, a.X),
		Altitude: math.Atan2(a.Z, math.Hypot(a.X, a.Y)),
	}
}
