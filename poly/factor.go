package poly

import (
	"errors"
	"fmt"

	"github.com/Mishanya000/Linal-Lab/field"
)

// ErrZeroPolynomial is returned when asked to factor the zero polynomial,
// which has no factorization into irreducibles.
var ErrZeroPolynomial = errors.New("cannot factor the zero polynomial")

// Factor is one monic irreducible factor of a polynomial together with its
// multiplicity.
type Factor[E any] struct {
	P            Poly[E]
	Multiplicity int
}

// Roots returns all elements x of the finite field with p(x) = 0, in the
// enumeration order of the field.
func Roots[E any](f field.Finite[E], p Poly[E]) []E {
	mustMatch(f, p)
	var roots []E
	for _, x := range f.Elements() {
		if f.IsZero(p.Evaluate(x)) {
			roots = append(roots, x)
		}
	}
	return roots
}

// IsIrreducible reports whether p is irreducible over the finite field, i.e.
// whether p has positive degree and no monic divisor of degree between 1 and
// deg(p)/2. Constants are units or zero and are not irreducible.
func IsIrreducible[E any](f field.Finite[E], p Poly[E]) bool {
	mustMatch(f, p)
	if p.Degree() < 1 {
		return false
	}
	found := false
	for d := 1; 2*d <= p.Degree() && !found; d++ {
		eachMonic(f, d, func(g Poly[E]) bool {
			_, r, _ := Divide(p, g)
			if r.IsZero() {
				found = true
			}
			return found
		})
	}
	return !found
}

// Factorize decomposes p into a unit and monic irreducible factors with
// multiplicities, so that p = unit * prod(factors[i].P ^ multiplicity).
// Factors are found by trial division in order of increasing degree, which
// is adequate for the small fields this package targets. It returns
// ErrZeroPolynomial if p is the zero polynomial.
func Factorize[E any](f field.Finite[E], p Poly[E]) (E, []Factor[E], error) {
	mustMatch(f, p)
	if p.IsZero() {
		return f.Zero(), nil, ErrZeroPolynomial
	}

	unit := p.Lead()
	w := p.Monic()
	var factors []Factor[E]

	for d := 1; 2*d <= w.Degree(); d++ {
		eachMonic(f, d, func(g Poly[E]) bool {
			mult := 0
			for {
				q, r, _ := Divide(w, g)
				if !r.IsZero() {
					break
				}
				w = q
				mult++
			}
			if mult > 0 {
				factors = append(factors, Factor[E]{P: g, Multiplicity: mult})
			}
			// Stop scanning this degree once no divisor of it can remain.
			return 2*d > w.Degree()
		})
	}

	if w.Degree() >= 1 {
		factors = append(factors, Factor[E]{P: w, Multiplicity: 1})
	}
	return unit, factors, nil
}

// eachMonic calls visit with every monic polynomial of the given degree over
// the finite field, stopping early if visit returns true.
func eachMonic[E any](f field.Finite[E], deg int, visit func(Poly[E]) bool) {
	elems := f.Elements()
	order := len(elems)

	count := 1
	for i := 0; i < deg; i++ {
		count *= order
	}

	coeffs := make([]E, deg+1)
	for idx := 0; idx < count; idx++ {
		x := idx
		for i := 0; i < deg; i++ {
			coeffs[i] = elems[x%order]
			x /= order
		}
		coeffs[deg] = f.One()
		if visit(New(f, coeffs...)) {
			return
		}
	}
}

func mustMatch[E any](f field.Finite[E], p Poly[E]) {
	if f.Name() != p.Field().Name() {
		panic(fmt.Sprintf(
			"polynomial over %s used with field %s",
			p.Field().Name(), f.Name(),
		))
	}
}
