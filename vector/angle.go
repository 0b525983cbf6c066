package vector

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"
)

// Unit selects the unit AngleWith reports in.
type Unit int

const (
	// Radians reports the angle in radians, in [0, π].
	Radians Unit = iota
	// Degrees reports the angle in degrees, in [0, 180].
	Degrees
)

func (u Unit) String() string {
	switch u {
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	default:
		return "unknown"
	}
}

const degreesPerRadian = 180 / math.Pi

/*
AngleWith returns the angle between v and w.

If the cosine of the angle is within the Space's parallel guard of ±1 the
result is exactly 0, for anti-parallel vectors too. IsParallelTo relies on
that snap.

Returns an error matching ErrDegenerateVector if either vector is zero and
ErrDimensionMismatch if the dimensions differ.
*/
func (v Vector) AngleWith(w Vector, unit Unit) (float64, error) {
	if err := v.sameDimension(w); err != nil {
		return 0, err
	}

	u1, err := v.Normalized()
	if err != nil {
		return 0, relabelDegenerate(err)
	}
	u2, err := w.Normalized()
	if err != nil {
		return 0, relabelDegenerate(err)
	}

	dot, err := u1.Dot(u2)
	if err != nil {
		return 0, err
	}
	d := dot.InexactFloat64()

	space := v.Space()
	if math.Abs(math.Abs(d)-1) < space.parallelGuard {
		space.logger.WithFields(logrus.Fields{
			"dimension": v.dimension,
			"dot":       d,
			"guard":     space.parallelGuard,
		}).Debug("angle: stability guard applied")
		return 0, nil
	}

	// Rounding can push |d| marginally past 1 when the guard is disabled.
	d = math.Max(-1, math.Min(1, d))
	radians := math.Acos(d)

	if unit == Degrees {
		return radians * degreesPerRadian, nil
	}
	return radians, nil
}

func relabelDegenerate(err error) error {
	if errors.Is(err, ErrDegenerateVector) {
		return errZeroVectorAngle
	}
	return err
}

// IsZero reports whether the magnitude of v is below the Space's zero tolerance.
func (v Vector) IsZero() bool {
	return v.IsZeroWithin(v.Space().zeroTolerance)
}

// IsZeroWithin reports whether the magnitude of v is below tolerance.
func (v Vector) IsZeroWithin(tolerance float64) bool {
	return v.Magnitude() < tolerance
}

/*
IsOrthogonalTo reports whether |v·w| is below the Space's orthogonal
tolerance. The test is scale sensitive and the zero vector is orthogonal to
every vector.
*/
func (v Vector) IsOrthogonalTo(w Vector) (bool, error) {
	return v.IsOrthogonalToWithin(w, v.Space().orthogonalTolerance)
}

// IsOrthogonalToWithin reports whether |v·w| is below tolerance.
func (v Vector) IsOrthogonalToWithin(w Vector, tolerance float64) (bool, error) {
	dot, err := v.Dot(w)
	if err != nil {
		return false, err
	}
	return dot.Abs().InexactFloat64() < tolerance, nil
}

/*
IsParallelTo reports whether v and w point along the same line.

The zero vector is parallel to every vector. Otherwise the vectors are
parallel when their angle is 0 or π. With the default guard anti-parallel
vectors already snap to 0, so the π case only fires in a Space built with
WithParallelGuard(0).
*/
func (v Vector) IsParallelTo(w Vector) (bool, error) {
	if err := v.sameDimension(w); err != nil {
		return false, err
	}
	tolerance := v.Space().zeroTolerance
	if v.IsZeroWithin(tolerance) || w.IsZeroWithin(tolerance) {
		return true, nil
	}

	angle, err := v.AngleWith(w, Radians)
	if err != nil {
		return false, err
	}
	return angle == 0 || angle == math.Pi, nil
}
