package vector

import (
	"io"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultPrecision is the number of decimal places kept when dividing.
	DefaultPrecision int32 = 30
	// DefaultZeroTolerance is the magnitude below which a vector counts as zero.
	DefaultZeroTolerance = 1e-10
	// DefaultOrthogonalTolerance is the |dot| below which two vectors are orthogonal.
	DefaultOrthogonalTolerance = 1e-10
	// DefaultParallelGuard is how close |cos θ| must be to 1 for the angle to snap to 0.
	DefaultParallelGuard = 1e-4
)

/*
Space holds the numeric settings shared by a family of vectors.

A Space is immutable once built and safe for concurrent use.
*/
type Space struct {
	precision           int32
	zeroTolerance       float64
	orthogonalTolerance float64
	parallelGuard       float64
	logger              logrus.FieldLogger
}

// Option configures a Space.
type Option func(*Space)

// WithPrecision sets the decimal places kept by division. Values below 1 are ignored.
func WithPrecision(places int32) Option {
	return func(s *Space) {
		if places > 0 {
			s.precision = places
		}
	}
}

// WithZeroTolerance sets the tolerance used by IsZero.
func WithZeroTolerance(tol float64) Option {
	return func(s *Space) {
		s.zeroTolerance = tol
	}
}

// WithOrthogonalTolerance sets the tolerance used by IsOrthogonalTo.
func WithOrthogonalTolerance(tol float64) Option {
	return func(s *Space) {
		s.orthogonalTolerance = tol
	}
}

/*
WithParallelGuard sets the width of the angle stability guard.

When |cos θ| is within guard of 1 the angle is reported as exactly 0.
A guard of 0 disables the snap; the cosine is then clamped to [-1, 1]
before acos so anti-parallel unit vectors give exactly π.
*/
func WithParallelGuard(guard float64) Option {
	return func(s *Space) {
		if guard >= 0 {
			s.parallelGuard = guard
		}
	}
}

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Space) {
		if logger != nil {
			s.logger = logger
		}
	}
}

/*
NewSpace creates a Space with the default settings overridden by opts.
*/
func NewSpace(opts ...Option) *Space {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Space{
		precision:           DefaultPrecision,
		zeroTolerance:       DefaultZeroTolerance,
		orthogonalTolerance: DefaultOrthogonalTolerance,
		parallelGuard:       DefaultParallelGuard,
		logger:              discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSpace = NewSpace()

// DefaultSpace returns the Space used by New.
func DefaultSpace() *Space {
	return defaultSpace
}

// Precision returns the decimal places kept by division.
func (s *Space) Precision() int32 { return s.precision }

// ZeroTolerance returns the tolerance used by IsZero.
func (s *Space) ZeroTolerance() float64 { return s.zeroTolerance }

// OrthogonalTolerance returns the tolerance used by IsOrthogonalTo.
func (s *Space) OrthogonalTolerance() float64 { return s.orthogonalTolerance }

// ParallelGuard returns the width of the angle stability guard.
func (s *Space) ParallelGuard() float64 { return s.parallelGuard }

// Logger returns the Space's logger.
func (s *Space) Logger() logrus.FieldLogger { return s.logger }
