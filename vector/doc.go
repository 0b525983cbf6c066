/*
Package vector implements dense vectors in n-dimensional real space whose
coordinates are stored as arbitrary-precision decimals.

Vectors are immutable: arithmetic returns new vectors and never touches its
operands, so a Vector may be shared freely between goroutines.

The numeric behaviour (division precision, zero and orthogonality
tolerances, the parallel stability guard and the debug logger) lives in a
Space. Vectors built with New use DefaultSpace; vectors built with
Space.New remember that Space and pass it on to every vector they produce.

	v, _ := vector.New("-7.579", "-7.88")
	w, _ := vector.New("22.737", "23.64")
	parallel, _ := v.IsParallelTo(w) // true
*/
package vector
