// Package polyutil provides helpers for generating random polynomials in
// tests.
package polyutil

import (
	"math/rand"

	"github.com/renproject/secp256k1"

	"github.com/Mishanya000/Linal-Lab/field"
	"github.com/Mishanya000/Linal-Lab/poly"
)

// Random returns a random polynomial of exactly the given degree over the
// finite field.
func Random[E any](f field.Finite[E], degree int) poly.Poly[E] {
	elems := f.Elements()
	coeffs := make([]E, degree+1)
	for i := range coeffs {
		coeffs[i] = elems[rand.Intn(len(elems))]
	}

	// Ensure that the leading term is non-zero.
	for f.IsZero(coeffs[degree]) {
		coeffs[degree] = elems[rand.Intn(len(elems))]
	}

	return poly.New(f, coeffs...)
}

// RandomScalars returns a random polynomial of exactly the given degree over
// the secp256k1 scalar field.
func RandomScalars(degree int) poly.Poly[secp256k1.Fn] {
	coeffs := make([]secp256k1.Fn, degree+1)
	for i := range coeffs {
		coeffs[i] = secp256k1.RandomFn()
	}
	for coeffs[degree].IsZero() {
		coeffs[degree] = secp256k1.RandomFn()
	}
	return poly.New[secp256k1.Fn](field.Scalars{}, coeffs...)
}
