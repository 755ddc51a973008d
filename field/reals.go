package field

import (
	"math"
	"strconv"

	"github.com/renproject/surge"
)

// Reals is the field of real coefficients represented by float64. Rational
// inputs are handled approximately: every zero test uses the Eps tolerance
// to absorb floating point noise.
type Reals struct{}

// Name implements the Field interface.
func (Reals) Name() string { return "R" }

// Zero implements the Field interface.
func (Reals) Zero() float64 { return 0 }

// One implements the Field interface.
func (Reals) One() float64 { return 1 }

// FromInt implements the Field interface.
func (Reals) FromInt(n int) float64 { return float64(n) }

// Add implements the Field interface.
func (Reals) Add(a, b float64) float64 { return a + b }

// Sub implements the Field interface.
func (Reals) Sub(a, b float64) float64 { return a - b }

// Neg implements the Field interface.
func (Reals) Neg(a float64) float64 { return -a }

// Mul implements the Field interface.
func (Reals) Mul(a, b float64) float64 { return a * b }

// Inv implements the Field interface. The inverse of zero is zero.
func (f Reals) Inv(a float64) float64 {
	if f.IsZero(a) {
		return 0
	}
	return 1 / a
}

// IsZero implements the Field interface using the Eps tolerance.
func (Reals) IsZero(a float64) bool { return math.Abs(a) < Eps }

// Eq implements the Field interface using the Eps tolerance.
func (Reals) Eq(a, b float64) bool { return math.Abs(a-b) < Eps }

// Format implements the Field interface.
func (Reals) Format(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}

// Cmp implements the Ordered interface.
func (Reals) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ElemSize implements the Codec interface.
func (Reals) ElemSize() int { return surge.SizeHintU64 }

// MarshalElem implements the Codec interface.
func (Reals) MarshalElem(e float64, buf []byte, rem int) ([]byte, int, error) {
	return surge.MarshalU64(math.Float64bits(e), buf, rem)
}

// UnmarshalElem implements the Codec interface.
func (Reals) UnmarshalElem(e *float64, buf []byte, rem int) ([]byte, int, error) {
	var bits uint64
	buf, rem, err := surge.UnmarshalU64(&bits, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	*e = math.Float64frombits(bits)
	return buf, rem, nil
}
