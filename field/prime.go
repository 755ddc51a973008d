package field

import (
	"fmt"
	"strconv"

	"github.com/renproject/surge"
)

// Prime is the finite field GF(p) of integers modulo a prime p. Elements are
// fully reduced residues in [0, p). The modulus must fit in 32 bits so that
// products never overflow a uint64.
type Prime struct {
	p uint64
}

// NewPrime constructs GF(p). It returns an error if p is not a prime or does
// not fit in 32 bits.
func NewPrime(p uint64) (Prime, error) {
	if p >= 1<<32 {
		return Prime{}, fmt.Errorf("modulus %v does not fit in 32 bits", p)
	}
	if !isSmallPrime(p) {
		return Prime{}, fmt.Errorf("modulus %v is not prime", p)
	}
	return Prime{p: p}, nil
}

// MustPrime is like NewPrime but panics on invalid moduli. It is intended
// for fixed moduli known at compile time, e.g. MustPrime(13).
func MustPrime(p uint64) Prime {
	f, err := NewPrime(p)
	if err != nil {
		panic(err)
	}
	return f
}

func isSmallPrime(p uint64) bool {
	if p < 2 {
		return false
	}
	for d := uint64(2); d*d <= p; d++ {
		if p%d == 0 {
			return false
		}
	}
	return true
}

// Modulus returns the prime p.
func (f Prime) Modulus() uint64 { return f.p }

// Name implements the Field interface.
func (f Prime) Name() string { return fmt.Sprintf("GF(%d)", f.p) }

// Zero implements the Field interface.
func (f Prime) Zero() uint64 { return 0 }

// One implements the Field interface.
func (f Prime) One() uint64 { return 1 % f.p }

// FromInt implements the Field interface.
func (f Prime) FromInt(n int) uint64 {
	m := int64(n) % int64(f.p)
	if m < 0 {
		m += int64(f.p)
	}
	return uint64(m)
}

// Add implements the Field interface.
func (f Prime) Add(a, b uint64) uint64 { return (a + b) % f.p }

// Sub implements the Field interface.
func (f Prime) Sub(a, b uint64) uint64 { return (a + f.p - b%f.p) % f.p }

// Neg implements the Field interface.
func (f Prime) Neg(a uint64) uint64 { return (f.p - a%f.p) % f.p }

// Mul implements the Field interface.
func (f Prime) Mul(a, b uint64) uint64 { return (a * b) % f.p }

// Inv implements the Field interface. The inverse of zero is zero.
func (f Prime) Inv(a uint64) uint64 {
	a %= f.p
	if a == 0 {
		return 0
	}
	s, _, _ := extGCD(int64(a), int64(f.p))
	return f.FromInt(int(s))
}

// extGCD returns a, b and d such that a*m + b*n == d == gcd(m, n), per Knuth
// TAOCP Vol 1, Algorithm E.
func extGCD(m, n int64) (a, b, d int64) {
	var a0, b0 int64
	a0, a = 1, 0
	b0, b = 0, 1
	c := m
	d = n
	for {
		q, r := c/d, c%d
		if r == 0 {
			return a, b, d
		}
		c = d
		d = r
		t := a0
		a0 = a
		a = t - q*a
		t = b0
		b0 = b
		b = t - q*b
	}
}

// IsZero implements the Field interface.
func (f Prime) IsZero(a uint64) bool { return a%f.p == 0 }

// Eq implements the Field interface.
func (f Prime) Eq(a, b uint64) bool { return a%f.p == b%f.p }

// Format implements the Field interface.
func (Prime) Format(a uint64) string { return strconv.FormatUint(a, 10) }

// Cmp implements the Ordered interface by comparing residues.
func (f Prime) Cmp(a, b uint64) int {
	a, b = a%f.p, b%f.p
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Order implements the Finite interface.
func (f Prime) Order() int { return int(f.p) }

// Elements implements the Finite interface.
func (f Prime) Elements() []uint64 {
	elems := make([]uint64, f.p)
	for i := range elems {
		elems[i] = uint64(i)
	}
	return elems
}

// ElemSize implements the Codec interface.
func (Prime) ElemSize() int { return surge.SizeHintU64 }

// MarshalElem implements the Codec interface.
func (Prime) MarshalElem(e uint64, buf []byte, rem int) ([]byte, int, error) {
	return surge.MarshalU64(e, buf, rem)
}

// UnmarshalElem implements the Codec interface.
func (f Prime) UnmarshalElem(e *uint64, buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.UnmarshalU64(e, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	*e %= f.p
	return buf, rem, nil
}
