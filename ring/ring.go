package ring

import (
	"errors"
)

var (
	// ErrDivisionByZero is returned when the divisor is the zero element.
	ErrDivisionByZero = errors.New("division by zero ring element")

	// ErrMixedDomains is returned when elements of different rings, or
	// polynomials over different fields, are combined.
	ErrMixedDomains = errors.New("ring elements belong to different domains")
)

// Div computes the division with remainder of a by b, so that a = b*q + r.
// For polynomials the remainder has degree strictly less than the divisor or
// is zero; for integers the remainder is the machine remainder, which has
// magnitude strictly less than the divisor. It returns ErrDivisionByZero if
// b is zero and ErrMixedDomains if the elements belong to different rings.
func Div(a, b Element) (Element, Element, error) {
	if !a.sameDomain(b) {
		return nil, nil, ErrMixedDomains
	}
	if b.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	q, r := a.divMod(b)
	return q, r, nil
}

// Gcd computes the greatest common divisor of a and b by the Euclidean
// algorithm, replacing the pair (a, b) with (b, a mod b) until the second
// element is zero. The result is normalized to the canonical generator:
// non-negative for integers, monic for polynomials. Gcd(0, 0) is zero.
func Gcd(a, b Element) (Element, error) {
	if !a.sameDomain(b) {
		return nil, ErrMixedDomains
	}
	for !b.IsZero() {
		_, r := a.divMod(b)
		a, b = b, r
	}
	return a.normalize(), nil
}

// GcdAll folds Gcd across the elements from left to right, returning the
// canonical generator of the ideal generated by the set. The empty set
// generates the zero ideal, so GcdAll of no elements is the integer zero.
// It returns ErrMixedDomains if the elements do not all belong to the same
// ring.
func GcdAll(elems []Element) (Element, error) {
	if len(elems) == 0 {
		return Int(0), nil
	}
	acc := elems[0]
	for _, e := range elems[1:] {
		g, err := Gcd(acc, e)
		if err != nil {
			return nil, err
		}
		acc = g
	}
	return acc.normalize(), nil
}

// Contains reports whether x belongs to the principal ideal generated by
// gen, i.e. whether gen divides x with zero remainder. It returns
// ErrDivisionByZero if gen is zero and ErrMixedDomains on mismatched
// domains.
func Contains(x, gen Element) (bool, error) {
	_, r, err := Div(x, gen)
	if err != nil {
		return false, err
	}
	return r.IsZero(), nil
}
