package angle

import (
	"github.com/soypat/angle/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Polar is a direction on the sphere given by an azimuth and an altitude
// measured in the same unit.
type Polar struct {
	Azimuth  float64
	Altitude float64
}

// Normalize returns p reduced with NormalizePolar.
func (p Polar) Normalize(u Unit) Polar {
	az, alt := NormalizePolar(p.Azimuth, p.Altitude, u)
	return Polar{Azimuth: az, Altitude: alt}
}

// Direction returns the unit vector p points toward. Azimuth turns from +X
// toward +Y and altitude rises from the XY plane toward +Z.
func (p Polar) Direction(u Unit) r3.Vec {
	return d3.Sph{
		R:        1,
		Azimuth:  u.Convert(p.Azimuth, Radians),
		Altitude: u.Convert(p.Altitude, Radians),
	}.SphericalToCartesian()
}

// PolarFromDirection returns the normalized polar direction of v measured in u.
// The zero vector has no direction and yields the zero Polar.
func PolarFromDirection(v r3.Vec, u Unit) Polar {
	s := d3.CartesianToSpherical(v)
	if s.R == 0 {
		return Polar{}
	}
	return Polar{
		Azimuth:  Radians.Convert(s.Azimuth, u),
		Altitude: Radians.Convert(s.Altitude, u),
	}.Normalize(u)
}
