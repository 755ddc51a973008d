// Package poly implements univariate polynomials over an arbitrary
// coefficient field, along with long division, GCD, root finding and
// factorization over finite fields.
//
// Polynomials are immutable values: every operation returns a fresh
// polynomial and never modifies its operands, so values can be shared freely
// between callers.
package poly

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mishanya000/Linal-Lab/field"
)

// ErrDivisionByZero is returned when the divisor is the zero polynomial.
var ErrDivisionByZero = errors.New("division by zero polynomial")

// Poly is a polynomial over the field F. Index i of the coefficient slice is
// the coefficient of x^i, so index 0 is the constant term. The slice is
// normalized: it has no trailing zero coefficients, except for the zero
// polynomial which is represented by a single zero coefficient.
//
// The zero value of this type is not usable; polynomials must be created
// with one of the constructors.
type Poly[E any] struct {
	f      field.Field[E]
	coeffs []E
}

// New constructs a polynomial over f from the given coefficients, where the
// first coefficient is the constant term. The coefficients are copied and
// trailing zeros are trimmed. Calling New with no coefficients returns the
// zero polynomial.
func New[E any](f field.Field[E], coeffs ...E) Poly[E] {
	if len(coeffs) == 0 {
		return Zero(f)
	}
	cs := make([]E, len(coeffs))
	copy(cs, coeffs)
	return Poly[E]{f: f, coeffs: cs}.norm()
}

// FromInts constructs a polynomial over f with the given integer
// coefficients, mapped into the field. The first value is the constant term.
func FromInts[E any](f field.Field[E], coeffs ...int) Poly[E] {
	cs := make([]E, len(coeffs))
	for i, n := range coeffs {
		cs[i] = f.FromInt(n)
	}
	return New(f, cs...)
}

// Zero returns the zero polynomial over f.
func Zero[E any](f field.Field[E]) Poly[E] {
	return Poly[E]{f: f, coeffs: []E{f.Zero()}}
}

// One returns the constant polynomial 1 over f.
func One[E any](f field.Field[E]) Poly[E] {
	return Poly[E]{f: f, coeffs: []E{f.One()}}
}

// Monomial returns the polynomial c*x^deg over f.
func Monomial[E any](f field.Field[E], c E, deg int) Poly[E] {
	cs := make([]E, deg+1)
	for i := 0; i < deg; i++ {
		cs[i] = f.Zero()
	}
	cs[deg] = c
	return Poly[E]{f: f, coeffs: cs}.norm()
}

// norm trims trailing zero coefficients so that the leading coefficient is
// non-zero, or the polynomial is the single-coefficient zero polynomial.
func (p Poly[E]) norm() Poly[E] {
	cs := p.coeffs
	for len(cs) > 1 && p.f.IsZero(cs[len(cs)-1]) {
		cs = cs[:len(cs)-1]
	}
	p.coeffs = cs
	return p
}

// Field returns the coefficient field of the polynomial.
func (p Poly[E]) Field() field.Field[E] { return p.f }

// Degree returns the degree of the polynomial. The zero polynomial has
// degree 0.
func (p Poly[E]) Degree() int { return len(p.coeffs) - 1 }

// Coefficient returns the coefficient of x^i.
//
// Panics: If i is greater than the degree of the polynomial, this function
// will panic.
func (p Poly[E]) Coefficient(i int) E { return p.coeffs[i] }

// Coeffs returns a copy of the coefficient slice, constant term first.
func (p Poly[E]) Coeffs() []E {
	cs := make([]E, len(p.coeffs))
	copy(cs, p.coeffs)
	return cs
}

// Lead returns the leading (highest-degree) coefficient.
func (p Poly[E]) Lead() E { return p.coeffs[len(p.coeffs)-1] }

// IsZero returns true if the polynomial is the zero polynomial.
func (p Poly[E]) IsZero() bool {
	return len(p.coeffs) == 1 && p.f.IsZero(p.coeffs[0])
}

// Eq returns true if the two polynomials are equal. Equality is defined as
// all coefficients being equal; for real coefficients this is equality
// within the field tolerance.
func (p Poly[E]) Eq(q Poly[E]) bool {
	if p.Degree() != q.Degree() {
		return false
	}
	for i := range p.coeffs {
		if !p.f.Eq(p.coeffs[i], q.coeffs[i]) {
			return false
		}
	}
	return true
}

// String implements the Stringer interface, rendering the polynomial as
// "c0 + c1*x + c2*x^2", skipping zero terms, or "0" for the zero
// polynomial.
func (p Poly[E]) String() string {
	var terms []string
	for i, c := range p.coeffs {
		if p.f.IsZero(c) {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, p.f.Format(c))
		case 1:
			terms = append(terms, fmt.Sprintf("%s*x", p.f.Format(c)))
		default:
			terms = append(terms, fmt.Sprintf("%s*x^%d", p.f.Format(c), i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// mustShareField panics if the two polynomials are over different fields.
// Mixing fields in arithmetic is a programmer error, unlike mixing ring
// domains in a generating set, which is a caller error reported by the ring
// package.
func (p Poly[E]) mustShareField(q Poly[E]) {
	if p.f.Name() != q.f.Name() {
		panic(fmt.Sprintf(
			"cannot operate on polynomials over different fields: %s and %s",
			p.f.Name(), q.f.Name(),
		))
	}
}

// Add returns the sum of the two polynomials.
func (p Poly[E]) Add(q Poly[E]) Poly[E] {
	p.mustShareField(q)
	if q.Degree() > p.Degree() {
		p, q = q, p
	}
	cs := make([]E, len(p.coeffs))
	copy(cs, p.coeffs)
	for i := range q.coeffs {
		cs[i] = p.f.Add(cs[i], q.coeffs[i])
	}
	return Poly[E]{f: p.f, coeffs: cs}.norm()
}

// Sub returns the difference p - q.
func (p Poly[E]) Sub(q Poly[E]) Poly[E] {
	return p.Add(q.Neg())
}

// Neg returns the additive inverse of the polynomial.
func (p Poly[E]) Neg() Poly[E] {
	cs := make([]E, len(p.coeffs))
	for i, c := range p.coeffs {
		cs[i] = p.f.Neg(c)
	}
	return Poly[E]{f: p.f, coeffs: cs}
}

// ScalarMul returns the polynomial scaled by the field element s.
func (p Poly[E]) ScalarMul(s E) Poly[E] {
	cs := make([]E, len(p.coeffs))
	for i, c := range p.coeffs {
		cs[i] = p.f.Mul(c, s)
	}
	return Poly[E]{f: p.f, coeffs: cs}.norm()
}

// Shift returns the polynomial multiplied by x^k.
func (p Poly[E]) Shift(k int) Poly[E] {
	if k == 0 || p.IsZero() {
		return Poly[E]{f: p.f, coeffs: p.Coeffs()}
	}
	cs := make([]E, len(p.coeffs)+k)
	for i := 0; i < k; i++ {
		cs[i] = p.f.Zero()
	}
	copy(cs[k:], p.coeffs)
	return Poly[E]{f: p.f, coeffs: cs}
}

// Mul returns the product of the two polynomials.
func (p Poly[E]) Mul(q Poly[E]) Poly[E] {
	p.mustShareField(q)
	if p.IsZero() || q.IsZero() {
		return Zero(p.f)
	}
	cs := make([]E, p.Degree()+q.Degree()+1)
	for i := range cs {
		cs[i] = p.f.Zero()
	}
	for i, a := range p.coeffs {
		if p.f.IsZero(a) {
			continue
		}
		for j, b := range q.coeffs {
			cs[i+j] = p.f.Add(cs[i+j], p.f.Mul(a, b))
		}
	}
	return Poly[E]{f: p.f, coeffs: cs}.norm()
}

// Evaluate computes the value of the polynomial at the given point using
// Horner's method.
func (p Poly[E]) Evaluate(x E) E {
	res := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		res = p.f.Add(p.f.Mul(res, x), p.coeffs[i])
	}
	return res
}

// Monic returns the polynomial scaled so that its leading coefficient is 1.
// The zero polynomial is returned unchanged. The monic form is the canonical
// generator of the ideal generated by the polynomial: generators are unique
// up to a unit, and requiring a leading coefficient of 1 fixes the unit.
func (p Poly[E]) Monic() Poly[E] {
	if p.IsZero() {
		return Zero(p.f)
	}
	lead := p.Lead()
	if p.f.Eq(lead, p.f.One()) {
		return Poly[E]{f: p.f, coeffs: p.Coeffs()}
	}
	return p.ScalarMul(p.f.Inv(lead))
}

// Divide computes the division of a by b, returning the quotient and the
// remainder. The returned polynomials satisfy a = b*q + r, with deg(r) <
// deg(b) or r = 0. It returns ErrDivisionByZero if b is the zero polynomial.
func Divide[E any](a, b Poly[E]) (Poly[E], Poly[E], error) {
	a.mustShareField(b)
	f := a.f

	if b.IsZero() {
		return Zero(f), Zero(f), ErrDivisionByZero
	}
	if b.Degree() > a.Degree() {
		return Zero(f), New(f, a.coeffs...), nil
	}

	d := b.Degree()
	leadInv := f.Inv(b.Lead())

	q := make([]E, a.Degree()-d+1)
	for i := range q {
		q[i] = f.Zero()
	}
	r := a.Coeffs()

	for len(r)-1 >= d {
		if len(r) == 1 && f.IsZero(r[0]) {
			break
		}

		s := f.Mul(leadInv, r[len(r)-1])
		diff := len(r) - 1 - d
		q[diff] = s

		// r = r - b*s*x^diff. Only the overlapping high-order coefficients
		// change, and the leading term cancels exactly.
		for i := 0; i <= d; i++ {
			r[diff+i] = f.Sub(r[diff+i], f.Mul(s, b.coeffs[i]))
		}
		r = r[:len(r)-1]
		for len(r) > 1 && f.IsZero(r[len(r)-1]) {
			r = r[:len(r)-1]
		}
	}

	if len(r) == 0 {
		r = []E{f.Zero()}
	}
	return Poly[E]{f: f, coeffs: q}.norm(), Poly[E]{f: f, coeffs: r}.norm(), nil
}

// Gcd computes the greatest common divisor of the two polynomials using the
// Euclidean algorithm. The result is monic, which makes it the canonical
// generator of the ideal (a, b). Gcd(0, 0) is the zero polynomial.
func Gcd[E any](a, b Poly[E]) Poly[E] {
	a.mustShareField(b)
	for !b.IsZero() {
		_, r, err := Divide(a, b)
		if err != nil {
			// Unreachable: the loop condition guarantees a non-zero divisor.
			panic(err)
		}
		a, b = b, r
	}
	return a.Monic()
}
