// Package eea implements the extended Euclidean algorithm for polynomials
// over a finite field, producing Bezout coefficients and modular inverses.
//
// The algorithm is expressed as elimination between two (remainder, s, t)
// triples rather than quotient-based division steps: at each step one triple
// has a power-of-x multiple of the other subtracted from all three of its
// components. When the two remainders have equal degree, the triple whose
// leading coefficient ranks higher under the field's canonical order is the
// one reduced. The Bezout coefficients depend on the exact elimination
// order, so callers should not assume they match those of the quotient-based
// algorithm, only that the Bezout identity holds.
package eea

import (
	"errors"

	"github.com/Mishanya000/Linal-Lab/field"
	"github.com/Mishanya000/Linal-Lab/poly"
)

// ErrNotInvertible is returned by InverseModulo when the two polynomials
// share a factor of positive degree. This is an expected algebraic outcome,
// not a failure of the algorithm.
var ErrNotInvertible = errors.New("polynomial is not invertible modulo the given modulus")

// triple is one row of the extended Euclidean table. The invariant
// s*a + t*b == r holds at every step, where a and b are the polynomials the
// Stepper was initialised with.
type triple[E any] struct {
	r, s, t poly.Poly[E]
}

// eliminate subtracts v shifted by x^shift from the triple, applying the
// identical operation to the remainder and both coefficient accumulators so
// that the Bezout invariant is preserved.
func (u *triple[E]) eliminate(v triple[E], shift int) {
	u.r = u.r.Sub(v.r.Shift(shift))
	u.s = u.s.Sub(v.s.Shift(shift))
	u.t = u.t.Sub(v.t.Shift(shift))
}

// Stepper encapsulates the state of the extended Euclidean algorithm. It
// allows the algorithm to be stepped, and hence the state to be inspected at
// points before the canonical termination condition.
type Stepper[E any] struct {
	f    field.Ordered[E]
	a, b triple[E]
}

// NewStepper constructs an extended Euclidean algorithm object over the
// given field. Init must be called before stepping.
func NewStepper[E any](f field.Ordered[E]) Stepper[E] {
	return Stepper[E]{f: f}
}

// Init sets the state for the extended Euclidean algorithm on the given
// input polynomials. No steps of the algorithm are performed.
func (st *Stepper[E]) Init(a, b poly.Poly[E]) {
	// (a, 1, 0)
	st.a = triple[E]{r: a, s: poly.One[E](st.f), t: poly.Zero[E](st.f)}
	// (b, 0, 1)
	st.b = triple[E]{r: b, s: poly.Zero[E](st.f), t: poly.One[E](st.f)}
}

// Done returns true once one of the two remainders is zero, at which point
// the other triple holds the GCD and its Bezout coefficients.
func (st *Stepper[E]) Done() bool {
	return st.a.r.IsZero() || st.b.r.IsZero()
}

// Step carries out one elimination step. It returns a boolean that is true
// when the state has reached the termination condition.
//
// The triple with the larger-degree remainder has the other triple, shifted
// by x^(degree difference), subtracted from it. On equal degrees no shift is
// applied and the triple whose leading coefficient ranks higher is reduced.
func (st *Stepper[E]) Step() bool {
	if st.Done() {
		return true
	}

	da, db := st.a.r.Degree(), st.b.r.Degree()
	switch {
	case da > db:
		st.a.eliminate(st.b, da-db)
	case da < db:
		st.b.eliminate(st.a, db-da)
	default:
		if st.f.Cmp(st.a.r.Lead(), st.b.r.Lead()) >= 0 {
			st.a.eliminate(st.b, 0)
		} else {
			st.b.eliminate(st.a, 0)
		}
	}

	return st.Done()
}

// Result returns the surviving triple: the GCD of the two input polynomials
// together with the Bezout coefficients s and t satisfying s*a + t*b = gcd.
// It should only be called once Done reports true; before that it returns
// the in-progress triple with the lower-ranked remainder.
func (st *Stepper[E]) Result() (g, s, t poly.Poly[E]) {
	if st.a.r.IsZero() {
		return st.b.r, st.b.s, st.b.t
	}
	return st.a.r, st.a.s, st.a.t
}

// Decompose runs the extended Euclidean algorithm on a and b, returning
// their GCD g and the Bezout coefficients s and t with s*a + t*b = g. The
// GCD is not normalized to monic form; its unit factor is whatever the
// elimination produced, matching the coefficients. If either input is zero
// the other is returned unchanged with trivial coefficients.
func Decompose[E any](f field.Ordered[E], a, b poly.Poly[E]) (g, s, t poly.Poly[E]) {
	st := NewStepper(f)
	st.Init(a, b)
	for !st.Step() {
	}
	return st.Result()
}

// InverseModulo computes h such that h*f1 = 1 (mod g). The inverse exists
// exactly when gcd(f1, g) is a non-zero constant; in that case h is the
// Bezout coefficient of f1 scaled by the inverse of that constant.
// Otherwise ErrNotInvertible is returned.
func InverseModulo[E any](f field.Ordered[E], f1, g poly.Poly[E]) (poly.Poly[E], error) {
	gcd, s, _ := Decompose(f, f1, g)
	if gcd.IsZero() || gcd.Degree() != 0 {
		return poly.Zero[E](f), ErrNotInvertible
	}
	return s.ScalarMul(f.Inv(gcd.Coefficient(0))), nil
}
