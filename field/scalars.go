package field

import (
	"github.com/renproject/secp256k1"
)

// Scalars is the scalar field of the secp256k1 curve, i.e. the integers
// modulo the group order n. It adapts secp256k1.Fn to the Field interface so
// that the generic polynomial and Euclidean algorithms can run over a
// cryptographically sized prime field.
type Scalars struct{}

// Name implements the Field interface.
func (Scalars) Name() string { return "Fn" }

// Zero implements the Field interface.
func (Scalars) Zero() secp256k1.Fn {
	var x secp256k1.Fn
	x.Clear()
	return x
}

// One implements the Field interface.
func (Scalars) One() secp256k1.Fn {
	var x secp256k1.Fn
	x.SetU16(1)
	return x
}

// FromInt implements the Field interface.
func (f Scalars) FromInt(n int) secp256k1.Fn {
	neg := n < 0
	if neg {
		n = -n
	}

	// Build the value from 16-bit limbs, most significant first.
	var x, limb, radix secp256k1.Fn
	x.Clear()
	radix.SetU16(0xffff)
	one := f.One()
	radix.Add(&radix, &one)
	for shift := 48; shift >= 0; shift -= 16 {
		x.Mul(&x, &radix)
		limb.SetU16(uint16(uint64(n) >> uint(shift)))
		x.Add(&x, &limb)
	}

	if neg {
		x.Negate(&x)
	}
	return x
}

// Add implements the Field interface.
func (Scalars) Add(a, b secp256k1.Fn) secp256k1.Fn {
	var x secp256k1.Fn
	x.Add(&a, &b)
	return x
}

// Sub implements the Field interface.
func (Scalars) Sub(a, b secp256k1.Fn) secp256k1.Fn {
	var x secp256k1.Fn
	x.Negate(&b)
	x.Add(&x, &a)
	return x
}

// Neg implements the Field interface.
func (Scalars) Neg(a secp256k1.Fn) secp256k1.Fn {
	var x secp256k1.Fn
	x.Negate(&a)
	return x
}

// Mul implements the Field interface.
func (Scalars) Mul(a, b secp256k1.Fn) secp256k1.Fn {
	var x secp256k1.Fn
	x.Mul(&a, &b)
	return x
}

// Inv implements the Field interface. The inverse of zero is zero.
func (Scalars) Inv(a secp256k1.Fn) secp256k1.Fn {
	var x secp256k1.Fn
	if a.IsZero() {
		x.Clear()
		return x
	}
	x.Inverse(&a)
	return x
}

// IsZero implements the Field interface.
func (Scalars) IsZero(a secp256k1.Fn) bool { return a.IsZero() }

// Eq implements the Field interface.
func (Scalars) Eq(a, b secp256k1.Fn) bool { return a.Eq(&b) }

// Format implements the Field interface.
func (Scalars) Format(a secp256k1.Fn) string { return a.Int().String() }

// Cmp implements the Ordered interface by comparing the canonical residues
// as integers.
func (Scalars) Cmp(a, b secp256k1.Fn) int { return a.Int().Cmp(b.Int()) }

// ElemSize implements the Codec interface.
func (Scalars) ElemSize() int { return secp256k1.FnSizeMarshalled }

// MarshalElem implements the Codec interface.
func (Scalars) MarshalElem(e secp256k1.Fn, buf []byte, rem int) ([]byte, int, error) {
	return e.Marshal(buf, rem)
}

// UnmarshalElem implements the Codec interface.
func (Scalars) UnmarshalElem(e *secp256k1.Fn, buf []byte, rem int) ([]byte, int, error) {
	return e.Unmarshal(buf, rem)
}
