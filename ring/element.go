// Package ring implements the two Euclidean domains that the lab suite
// works in, the ring of integers and rings of univariate polynomials over a
// field, behind a single Element interface. A slice of Elements is treated
// as the generating set of an ideal, and the Euclidean engine computes the
// canonical generator of that ideal.
package ring

import (
	"strconv"

	"github.com/Mishanya000/Linal-Lab/field"
	"github.com/Mishanya000/Linal-Lab/poly"
)

// Element is a value in one of the supported rings. It is a sealed sum type:
// the only implementations are Int and Poly. The unexported methods are the
// domain capabilities that the Euclidean engine is written against, so the
// engine itself never branches on the variant.
type Element interface {
	// Degree returns the polynomial degree for polynomial elements and 0
	// for integers, which are treated as degree-0 constants.
	Degree() int

	// IsZero returns true if the element is the additive identity of its
	// ring.
	IsZero() bool

	// String renders the element: integers in decimal, polynomials as
	// "c0 + c1*x + c2*x^2" with zero terms skipped.
	String() string

	// sameDomain reports whether other belongs to the same ring: the same
	// variant and, for polynomials, the same coefficient field.
	sameDomain(other Element) bool

	// divMod divides the element by div, which the engine guarantees to be
	// a non-zero element of the same domain.
	divMod(div Element) (quo, rem Element)

	// normalize returns the canonical associate: the absolute value for
	// integers, the monic form for polynomials.
	normalize() Element
}

// Int is an element of the ring of integers. The sign is preserved by
// arithmetic but is not meaningful to the GCD engine, which normalizes to
// absolute values.
type Int int64

// NewInt constructs an integer ring element.
func NewInt(v int64) Int { return Int(v) }

// Degree implements the Element interface.
func (n Int) Degree() int { return 0 }

// IsZero implements the Element interface.
func (n Int) IsZero() bool { return n == 0 }

// String implements the Element interface.
func (n Int) String() string { return strconv.FormatInt(int64(n), 10) }

func (n Int) sameDomain(other Element) bool {
	_, ok := other.(Int)
	return ok
}

func (n Int) divMod(div Element) (Element, Element) {
	m := div.(Int)
	return n / m, n % m
}

func (n Int) normalize() Element {
	if n < 0 {
		return -n
	}
	return n
}

// Poly is an element of the ring of polynomials over the coefficient field
// E. Two Poly elements belong to the same domain only if their coefficient
// fields are the same.
type Poly[E any] struct {
	p poly.Poly[E]
}

// NewPoly wraps a polynomial as a ring element.
func NewPoly[E any](p poly.Poly[E]) Poly[E] { return Poly[E]{p: p} }

// NewPolyFromInts constructs a polynomial ring element over f with the given
// integer coefficients, constant term first.
func NewPolyFromInts[E any](f field.Field[E], coeffs ...int) Poly[E] {
	return Poly[E]{p: poly.FromInts(f, coeffs...)}
}

// Poly returns the underlying polynomial.
func (q Poly[E]) Poly() poly.Poly[E] { return q.p }

// Degree implements the Element interface.
func (q Poly[E]) Degree() int { return q.p.Degree() }

// IsZero implements the Element interface.
func (q Poly[E]) IsZero() bool { return q.p.IsZero() }

// String implements the Element interface.
func (q Poly[E]) String() string { return q.p.String() }

func (q Poly[E]) sameDomain(other Element) bool {
	o, ok := other.(Poly[E])
	return ok && q.p.Field().Name() == o.p.Field().Name()
}

func (q Poly[E]) divMod(div Element) (Element, Element) {
	quo, rem, err := poly.Divide(q.p, div.(Poly[E]).p)
	if err != nil {
		// Unreachable: the engine rejects zero divisors before dispatching.
		panic(err)
	}
	return Poly[E]{p: quo}, Poly[E]{p: rem}
}

func (q Poly[E]) normalize() Element {
	return Poly[E]{p: q.p.Monic()}
}
