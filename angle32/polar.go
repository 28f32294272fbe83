package angle32

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// Polar is a direction on the sphere. See angle.Polar.
type Polar struct {
	Azimuth  float32
	Altitude float32
}

// Normalize returns p reduced with NormalizePolar.
func (p Polar) Normalize(u Unit) Polar {
	az, alt := NormalizePolar(p.Azimuth, p.Altitude, u)
	return Polar{Azimuth: az, Altitude: alt}
}

// Direction returns the unit vector p points toward.
func (p Polar) Direction(u Unit) ms3.Vec {
	sinAz, cosAz := math32.Sincos(u.Convert(p.Azimuth, Radians))
	sinAlt, cosAlt := math32.Sincos(u.Convert(p.Altitude, Radians))
	return ms3.Vec{X: cosAlt * cosAz, Y: cosAlt * sinAz, Z: sinAlt}
}

// PolarFromDirection returns the normalized polar direction of v measured in u.
// The zero vector yields the zero Polar.
func PolarFromDirection(v ms3.Vec, u Unit) Polar {
	if v == (ms3.Vec{}) {
		return Polar{}
	}
	return Polar{
		Azimuth:  Radians.Convert(math32.Atan2(v.Y, v.X), u),
		Altitude: Radians.Convert(math32.Atan2(v.Z, math32.Hypot(v.X, v.Y)), u),
	}.Normalize(u)
}

// Heading returns the unit vector in the XY plane pointing toward azimuth.
func Heading(azimuth float32, u Unit) ms3.Vec {
	sin, cos := math32.Sincos(u.Convert(azimuth, Radians))
	return ms3.Vec{X: cos, Y: sin}
}
