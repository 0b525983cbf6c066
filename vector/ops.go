package vector

import (
	"math"

	"github.com/shopspring/decimal"
)

func (v Vector) sameDimension(w Vector) error {
	if v.dimension == 0 || w.dimension == 0 {
		return errNoCoordinates
	}
	if v.dimension != w.dimension {
		return &DimensionMismatchError{Expected: v.dimension, Actual: w.dimension}
	}
	return nil
}

/*
Plus adds two vectors element-wise

Parameters:
w: Vector - The vector to add, must have the same dimension as v
*/
func (v Vector) Plus(w Vector) (Vector, error) {
	if err := v.sameDimension(w); err != nil {
		return Vector{}, err
	}

	result := make([]decimal.Decimal, v.dimension)
	for i := range v.coordinates {
		result[i] = v.coordinates[i].Add(w.coordinates[i])
	}
	return v.Space().wrap(result), nil
}

/*
Minus subtracts vector w from vector v element-wise

Parameters:
w: Vector - The vector to subtract, must have the same dimension as v
*/
func (v Vector) Minus(w Vector) (Vector, error) {
	if err := v.sameDimension(w); err != nil {
		return Vector{}, err
	}

	result := make([]decimal.Decimal, v.dimension)
	for i := range v.coordinates {
		result[i] = v.coordinates[i].Sub(w.coordinates[i])
	}
	return v.Space().wrap(result), nil
}

/*
TimesScalar multiplies every coordinate by c. Multiplication is exact.
*/
func (v Vector) TimesScalar(c decimal.Decimal) Vector {
	result := make([]decimal.Decimal, v.dimension)
	for i, x := range v.coordinates {
		result[i] = c.Mul(x)
	}
	return v.Space().wrap(result)
}

/*
Dot computes the dot product of two vectors

Returns:
decimal.Decimal - The exact sum of the element-wise products
*/
func (v Vector) Dot(w Vector) (decimal.Decimal, error) {
	if err := v.sameDimension(w); err != nil {
		return decimal.Zero, err
	}

	dot := decimal.Zero
	for i := range v.coordinates {
		dot = dot.Add(v.coordinates[i].Mul(w.coordinates[i]))
	}
	return dot, nil
}

/*
Magnitude computes the Euclidean length of the vector.

The squares are summed exactly; only the final square root is taken in
float64. When the sum leaves the float64 range the coordinates are first
scaled by the largest absolute coordinate.
*/
func (v Vector) Magnitude() float64 {
	sum := decimal.Zero
	for _, x := range v.coordinates {
		sum = sum.Add(x.Mul(x))
	}

	magnitude := math.Sqrt(sum.InexactFloat64())
	if magnitude == 0 || math.IsInf(magnitude, 0) {
		scale, scaled := v.scaledSquares()
		if scale.IsZero() {
			return 0
		}
		return scale.InexactFloat64() * math.Sqrt(scaled.InexactFloat64())
	}
	return magnitude
}

// scaledSquares returns the largest absolute coordinate and the sum of the
// squared coordinates divided by it. scale is zero for the zero vector.
func (v Vector) scaledSquares() (scale, sum decimal.Decimal) {
	for _, x := range v.coordinates {
		if a := x.Abs(); a.GreaterThan(scale) {
			scale = a
		}
	}
	if scale.IsZero() {
		return scale, decimal.Zero
	}

	precision := v.Space().precision
	for _, x := range v.coordinates {
		r := x.DivRound(scale, precision)
		sum = sum.Add(r.Mul(r))
	}
	return scale, sum
}

// norm returns the magnitude as a decimal. It stays finite and non-zero for
// any vector with a non-zero coordinate.
func (v Vector) norm() decimal.Decimal {
	if magnitude := v.Magnitude(); magnitude > 0 && !math.IsInf(magnitude, 0) {
		return decimal.NewFromFloat(magnitude)
	}

	scale, scaled := v.scaledSquares()
	if scale.IsZero() {
		return scale
	}
	return scale.Mul(decimal.NewFromFloat(math.Sqrt(scaled.InexactFloat64())))
}

/*
Normalized returns the unit vector pointing in the direction of v.

Each coordinate is divided by the magnitude and rounded to the Space's
precision. Returns an error matching ErrDegenerateVector for the zero vector.
*/
func (v Vector) Normalized() (Vector, error) {
	norm := v.norm()
	if norm.IsZero() {
		v.Space().logger.WithField("dimension", v.dimension).Debug("normalize: zero vector")
		return Vector{}, errCannotNormalize
	}

	precision := v.Space().precision
	result := make([]decimal.Decimal, v.dimension)
	for i, x := range v.coordinates {
		result[i] = x.DivRound(norm, precision)
	}
	return v.Space().wrap(result), nil
}
