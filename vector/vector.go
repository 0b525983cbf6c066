package vector

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

/*
Vector is an immutable point in n-dimensional real space.

The zero value has no coordinates and is not a valid vector; use New or one
of the From constructors. Binary operations reject it with ErrInvalidArgument.
*/
type Vector struct {
	coordinates []decimal.Decimal
	dimension   int
	space       *Space
}

/*
New creates a vector in the default Space.

Each coordinate may be any Go integer or float type, a numeric string,
a json.Number, a *big.Int or a decimal.Decimal.
*/
func New(coordinates ...any) (Vector, error) {
	return defaultSpace.New(coordinates...)
}

// MustNew is like New but panics on error. Intended for tests and literals.
func MustNew(coordinates ...any) Vector {
	v, err := New(coordinates...)
	if err != nil {
		panic(err)
	}
	return v
}

// FromStrings creates a vector in the default Space from numeric strings.
func FromStrings(coordinates []string) (Vector, error) {
	return defaultSpace.FromStrings(coordinates)
}

// FromFloats creates a vector in the default Space from float64 values.
func FromFloats(coordinates []float64) (Vector, error) {
	return defaultSpace.FromFloats(coordinates)
}

// FromDecimals creates a vector in the default Space. The slice is copied.
func FromDecimals(coordinates []decimal.Decimal) (Vector, error) {
	return defaultSpace.FromDecimals(coordinates)
}

// New creates a vector in s. See the package-level New for accepted types.
func (s *Space) New(coordinates ...any) (Vector, error) {
	if len(coordinates) == 0 {
		return Vector{}, errEmptyCoordinates
	}

	values := make([]decimal.Decimal, len(coordinates))
	for i, c := range coordinates {
		d, err := toDecimal(c)
		if err != nil {
			return Vector{}, &CoordinateError{Index: i, Value: c, cause: err}
		}
		values[i] = d
	}
	return s.wrap(values), nil
}

// FromStrings creates a vector in s from numeric strings.
func (s *Space) FromStrings(coordinates []string) (Vector, error) {
	if len(coordinates) == 0 {
		return Vector{}, errEmptyCoordinates
	}

	values := make([]decimal.Decimal, len(coordinates))
	for i, c := range coordinates {
		d, err := decimal.NewFromString(strings.TrimSpace(c))
		if err != nil {
			return Vector{}, &CoordinateError{Index: i, Value: c, cause: err}
		}
		values[i] = d
	}
	return s.wrap(values), nil
}

// FromFloats creates a vector in s from float64 values. NaN and infinities are rejected.
func (s *Space) FromFloats(coordinates []float64) (Vector, error) {
	if len(coordinates) == 0 {
		return Vector{}, errEmptyCoordinates
	}

	values := make([]decimal.Decimal, len(coordinates))
	for i, c := range coordinates {
		d, err := fromFloat(c)
		if err != nil {
			return Vector{}, &CoordinateError{Index: i, Value: c, cause: err}
		}
		values[i] = d
	}
	return s.wrap(values), nil
}

// FromDecimals creates a vector in s. The slice is copied.
func (s *Space) FromDecimals(coordinates []decimal.Decimal) (Vector, error) {
	if len(coordinates) == 0 {
		return Vector{}, errEmptyCoordinates
	}

	values := make([]decimal.Decimal, len(coordinates))
	copy(values, coordinates)
	return s.wrap(values), nil
}

// wrap takes ownership of values.
func (s *Space) wrap(values []decimal.Decimal) Vector {
	return Vector{
		coordinates: values,
		dimension:   len(values),
		space:       s,
	}
}

func toDecimal(c any) (decimal.Decimal, error) {
	switch x := c.(type) {
	case decimal.Decimal:
		return x, nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(x))
	case json.Number:
		return decimal.NewFromString(string(x))
	case *big.Int:
		if x == nil {
			return decimal.Decimal{}, errors.New("nil *big.Int")
		}
		return decimal.NewFromBigInt(x, 0), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int8:
		return decimal.NewFromInt(int64(x)), nil
	case int16:
		return decimal.NewFromInt(int64(x)), nil
	case int32:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case uint8:
		return decimal.NewFromInt(int64(x)), nil
	case uint16:
		return decimal.NewFromInt(int64(x)), nil
	case uint32:
		return decimal.NewFromInt(int64(x)), nil
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(x)), 0), nil
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0), nil
	case float32:
		if err := checkFinite(float64(x)); err != nil {
			return decimal.Decimal{}, err
		}
		return decimal.NewFromFloat32(x), nil
	case float64:
		return fromFloat(x)
	default:
		return decimal.Decimal{}, errors.New("unsupported type")
	}
}

func fromFloat(f float64) (decimal.Decimal, error) {
	if err := checkFinite(f); err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromFloat(f), nil
}

func checkFinite(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.New("non-finite value")
	}
	return nil
}

// Dimension returns the number of coordinates.
func (v Vector) Dimension() int {
	return v.dimension
}

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []decimal.Decimal {
	out := make([]decimal.Decimal, len(v.coordinates))
	copy(out, v.coordinates)
	return out
}

// At returns the i-th coordinate. It panics if i is out of range.
func (v Vector) At(i int) decimal.Decimal {
	return v.coordinates[i]
}

// Space returns the Space the vector belongs to.
func (v Vector) Space() *Space {
	if v.space == nil {
		return defaultSpace
	}
	return v.space
}

/*
Equal reports whether v and w have the same dimension and exactly equal
coordinates. Trailing zeros do not matter: 1.50 equals 1.5.
*/
func (v Vector) Equal(w Vector) bool {
	if v.dimension != w.dimension {
		return false
	}
	for i := range v.coordinates {
		if !v.coordinates[i].Equal(w.coordinates[i]) {
			return false
		}
	}
	return true
}

func (v Vector) String() string {
	parts := make([]string, len(v.coordinates))
	for i, c := range v.coordinates {
		parts[i] = c.String()
	}
	return "Vector: (" + strings.Join(parts, ", ") + ")"
}
