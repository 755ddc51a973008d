package field

import (
	"fmt"
	"strings"

	"github.com/renproject/surge"
)

// Extension is the finite field GF(p^k) for a prime p and k >= 2. Elements
// are coefficient vectors of length k over GF(p), little-endian (index 0 is
// the constant term), representing residues modulo a fixed monic irreducible
// polynomial of degree k. The irreducible modulus is found by search at
// construction time, so the field is only intended for small orders.
type Extension struct {
	base    Prime
	k       int
	order   uint64
	modulus []uint64 // monic, degree k, little-endian, length k+1
}

// NewExtension constructs GF(p^k). It returns an error if p is not prime,
// k < 2, or the field order exceeds 2^20.
func NewExtension(p uint64, k int) (Extension, error) {
	base, err := NewPrime(p)
	if err != nil {
		return Extension{}, err
	}
	if k < 2 {
		return Extension{}, fmt.Errorf("extension degree must be at least 2, got %v", k)
	}
	order := uint64(1)
	for i := 0; i < k; i++ {
		order *= p
		if order > 1<<20 {
			return Extension{}, fmt.Errorf("field order %d^%d is too large", p, k)
		}
	}
	f := Extension{base: base, k: k, order: order}
	f.modulus = f.findIrreducible()
	return f, nil
}

// MustExtension is like NewExtension but panics on invalid parameters.
func MustExtension(p uint64, k int) Extension {
	f, err := NewExtension(p, k)
	if err != nil {
		panic(err)
	}
	return f
}

// findIrreducible returns the lexicographically first monic irreducible
// polynomial of degree k over the base field.
func (f Extension) findIrreducible() []uint64 {
	p := f.base.Modulus()
	mod := make([]uint64, f.k+1)
	mod[f.k] = 1
	for {
		if f.irreducible(mod) {
			return mod
		}
		// Increment the lower coefficients as a base-p counter. The search
		// cannot fail: irreducible polynomials of every degree exist over
		// every finite field.
		for i := 0; i < f.k; i++ {
			mod[i]++
			if mod[i] < p {
				break
			}
			mod[i] = 0
		}
	}
}

// irreducible reports whether the monic polynomial g (little-endian, over
// the base field) has no monic divisor of degree between 1 and deg(g)/2.
func (f Extension) irreducible(g []uint64) bool {
	deg := len(g) - 1
	for d := 1; 2*d <= deg; d++ {
		div := make([]uint64, d+1)
		div[d] = 1
		n := uint64(1)
		for i := 0; i < d; i++ {
			n *= f.base.Modulus()
		}
		for i := uint64(0); i < n; i++ {
			x := i
			for j := 0; j < d; j++ {
				div[j] = x % f.base.Modulus()
				x /= f.base.Modulus()
			}
			if rem := f.polyRem(g, div); allZero(rem) {
				return false
			}
		}
	}
	return true
}

// polyRem returns the remainder of a divided by the monic polynomial b, both
// little-endian over the base field.
func (f Extension) polyRem(a, b []uint64) []uint64 {
	r := make([]uint64, len(a))
	copy(r, a)
	r = trim(r)
	bt := trim(b)
	for len(r) >= len(bt) && !allZero(r) {
		c := r[len(r)-1]
		shift := len(r) - len(bt)
		for i := range bt {
			r[shift+i] = f.base.Sub(r[shift+i], f.base.Mul(c, bt[i]))
		}
		r = trim(r[:len(r)-1])
	}
	return r
}

func trim(a []uint64) []uint64 {
	for len(a) > 1 && a[len(a)-1] == 0 {
		a = a[:len(a)-1]
	}
	return a
}

func allZero(a []uint64) bool {
	for _, c := range a {
		if c != 0 {
			return false
		}
	}
	return true
}

// Modulus returns a copy of the irreducible modulus polynomial,
// little-endian over the base field.
func (f Extension) Modulus() []uint64 {
	mod := make([]uint64, len(f.modulus))
	copy(mod, f.modulus)
	return mod
}

// Name implements the Field interface.
func (f Extension) Name() string {
	return fmt.Sprintf("GF(%d^%d)", f.base.Modulus(), f.k)
}

// Zero implements the Field interface.
func (f Extension) Zero() []uint64 { return make([]uint64, f.k) }

// One implements the Field interface.
func (f Extension) One() []uint64 {
	e := make([]uint64, f.k)
	e[0] = 1
	return e
}

// FromInt implements the Field interface. The magnitude of n is written in
// base p to give the coefficient vector, matching the usual integer
// labelling of extension field elements.
func (f Extension) FromInt(n int) []uint64 {
	neg := n < 0
	if neg {
		n = -n
	}
	e := make([]uint64, f.k)
	x := uint64(n) % f.order
	for i := 0; i < f.k; i++ {
		e[i] = x % f.base.Modulus()
		x /= f.base.Modulus()
	}
	if neg {
		e = f.Neg(e)
	}
	return e
}

// Add implements the Field interface.
func (f Extension) Add(a, b []uint64) []uint64 {
	e := make([]uint64, f.k)
	for i := range e {
		e[i] = f.base.Add(a[i], b[i])
	}
	return e
}

// Sub implements the Field interface.
func (f Extension) Sub(a, b []uint64) []uint64 {
	e := make([]uint64, f.k)
	for i := range e {
		e[i] = f.base.Sub(a[i], b[i])
	}
	return e
}

// Neg implements the Field interface.
func (f Extension) Neg(a []uint64) []uint64 {
	e := make([]uint64, f.k)
	for i := range e {
		e[i] = f.base.Neg(a[i])
	}
	return e
}

// Mul implements the Field interface.
func (f Extension) Mul(a, b []uint64) []uint64 {
	prod := make([]uint64, 2*f.k-1)
	for i := 0; i < f.k; i++ {
		if a[i] == 0 {
			continue
		}
		for j := 0; j < f.k; j++ {
			prod[i+j] = f.base.Add(prod[i+j], f.base.Mul(a[i], b[j]))
		}
	}
	// Reduce modulo the monic modulus.
	for i := len(prod) - 1; i >= f.k; i-- {
		c := prod[i]
		if c == 0 {
			continue
		}
		shift := i - f.k
		for j := 0; j <= f.k; j++ {
			prod[shift+j] = f.base.Sub(prod[shift+j], f.base.Mul(c, f.modulus[j]))
		}
	}
	e := make([]uint64, f.k)
	copy(e, prod[:f.k])
	return e
}

// Inv implements the Field interface via Fermat's little theorem: the
// inverse of a is a^(q-2) where q is the field order. The inverse of zero is
// zero.
func (f Extension) Inv(a []uint64) []uint64 {
	if f.IsZero(a) {
		return f.Zero()
	}
	res := f.One()
	sq := make([]uint64, f.k)
	copy(sq, a)
	for exp := f.order - 2; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			res = f.Mul(res, sq)
		}
		sq = f.Mul(sq, sq)
	}
	return res
}

// IsZero implements the Field interface.
func (f Extension) IsZero(a []uint64) bool { return allZero(a) }

// Eq implements the Field interface.
func (f Extension) Eq(a, b []uint64) bool {
	for i := range a {
		if a[i]%f.base.Modulus() != b[i]%f.base.Modulus() {
			return false
		}
	}
	return true
}

// Format implements the Field interface, rendering elements as polynomials
// in the adjoined root a, e.g. "2 + a^2" in GF(3^3).
func (f Extension) Format(e []uint64) string {
	var terms []string
	for i, c := range e {
		if c == 0 {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, fmt.Sprintf("%d", c))
		case i == 1 && c == 1:
			terms = append(terms, "a")
		case i == 1:
			terms = append(terms, fmt.Sprintf("%d*a", c))
		case c == 1:
			terms = append(terms, fmt.Sprintf("a^%d", i))
		default:
			terms = append(terms, fmt.Sprintf("%d*a^%d", c, i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// Cmp implements the Ordered interface, comparing coefficient vectors from
// the highest-degree coefficient down.
func (f Extension) Cmp(a, b []uint64) int {
	for i := f.k - 1; i >= 0; i-- {
		x, y := a[i]%f.base.Modulus(), b[i]%f.base.Modulus()
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// Order implements the Finite interface.
func (f Extension) Order() int { return int(f.order) }

// Elements implements the Finite interface.
func (f Extension) Elements() [][]uint64 {
	elems := make([][]uint64, f.order)
	for i := range elems {
		elems[i] = f.FromInt(i)
	}
	return elems
}

// ElemSize implements the Codec interface.
func (f Extension) ElemSize() int { return f.k * surge.SizeHintU64 }

// MarshalElem implements the Codec interface.
func (f Extension) MarshalElem(e []uint64, buf []byte, rem int) ([]byte, int, error) {
	var err error
	for i := 0; i < f.k; i++ {
		buf, rem, err = surge.MarshalU64(e[i], buf, rem)
		if err != nil {
			return buf, rem, err
		}
	}
	return buf, rem, nil
}

// UnmarshalElem implements the Codec interface.
func (f Extension) UnmarshalElem(e *[]uint64, buf []byte, rem int) ([]byte, int, error) {
	out := make([]uint64, f.k)
	var err error
	for i := 0; i < f.k; i++ {
		buf, rem, err = surge.UnmarshalU64(&out[i], buf, rem)
		if err != nil {
			return buf, rem, err
		}
		out[i] %= f.base.Modulus()
	}
	*e = out
	return buf, rem, nil
}
