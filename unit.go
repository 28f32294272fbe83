package angle

import (
	"fmt"
	"math"
	"runtime"
	"strconv"
	"strings"
)

// Unit is a system of angular measurement. It is fully described by the
// size of a half turn; Full and Quarter are kept alongside so the
// normalization routines need no arithmetic to obtain them.
type Unit struct {
	Half    float64 // π equivalent.
	Full    float64 // 2π equivalent, always 2*Half.
	Quarter float64 // π/2 equivalent, always Half/2.
}

var (
	// Degrees measures a full turn as 360.
	Degrees = Unit{Half: 180, Full: 360, Quarter: 90}
	// Radians measures a full turn as 2π.
	Radians = Unit{Half: pi, Full: tau, Quarter: pi / 2}
	// Rotations measures a full turn as 1.
	Rotations = Unit{Half: 0.5, Full: 1, Quarter: 0.25}
)

// NewUnit returns a unit where a full turn measures full.
// Gradians for example are NewUnit(400).
func NewUnit(full float64) (Unit, error) {
	if !(full > 0) || math.IsInf(full, 1) {
		return Unit{}, errMsg("full turn must be positive and finite, got " + strconv.FormatFloat(full, 'g', -1, 64))
	}
	return Unit{Half: full / 2, Full: full, Quarter: full / 4}, nil
}

// Convert scales angle a measured in u to the unit to.
func (u Unit) Convert(a float64, to Unit) float64 {
	if u == to {
		return a
	}
	return a * (to.Full / u.Full)
}

// String returns the unit name or the size of its full turn for custom units.
func (u Unit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	case Rotations:
		return "rotations"
	}
	return strconv.FormatFloat(u.Full, 'g', -1, 64)
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.valid() {
		return nil, errMsg("invalid unit " + u.String())
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Accepted forms are
// the unit names (and their abbreviations) or a full turn value.
func (u *Unit) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	switch s {
	case "degrees", "degree", "deg":
		*u = Degrees
		return nil
	case "radians", "radian", "rad":
		*u = Radians
		return nil
	case "rotations", "rotation", "rot", "turns", "turn":
		*u = Rotations
		return nil
	}
	full, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errMsg("unknown unit " + strconv.Quote(string(text)))
	}
	v, err := NewUnit(full)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Unit) valid() bool {
	return u.Full > 0 && !math.IsInf(u.Full, 1) && u.Full == 2*u.Half && u.Quarter == u.Half/2
}

// errMsg returns an error with a message function name and line number.
func errMsg(msg string) error {
	pc, _, line, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("?: %s", msg)
	}
	fn := runtime.FuncForPC(pc)
	return fmt.Errorf("%s line %d: %s", fn.Name(), line, msg)
}
