// Package field defines the coefficient fields that the polynomial and
// Euclidean algorithm packages are generic over. A field is described by a
// small capability interface rather than by a concrete element type, so that
// the same algorithm code runs over real coefficients, small prime fields,
// their extensions, and the secp256k1 scalar field.
package field

// Eps is the tolerance used for zero tests on real (floating point)
// coefficients. Finite field zero tests are exact and never use it.
const Eps = 1e-10

// Field is the set of operations that the generic algorithms need from a
// coefficient field. The element type E is a plain value; implementations
// must never mutate their arguments.
//
// Inv of the zero element returns the zero element; callers are expected to
// guard divisions with IsZero.
type Field[E any] interface {
	// Name identifies the field. Two Field instances describe the same
	// field if and only if their names are equal.
	Name() string

	Zero() E
	One() E

	// FromInt maps an integer into the field. Negative integers map to the
	// additive inverse of their magnitude.
	FromInt(n int) E

	Add(a, b E) E
	Sub(a, b E) E
	Neg(a E) E
	Mul(a, b E) E
	Inv(a E) E

	IsZero(a E) bool
	Eq(a, b E) bool

	// Format renders an element for display.
	Format(a E) string
}

// Ordered is a field whose elements carry a canonical rank. The rank has no
// algebraic meaning; it exists only so that the extended Euclidean
// elimination can break ties between remainders of equal degree by comparing
// leading coefficients.
type Ordered[E any] interface {
	Field[E]

	// Cmp returns -1, 0 or 1 as a ranks below, equal to or above b.
	Cmp(a, b E) int
}

// Finite is a field with finitely many elements that can be enumerated.
// Root finding and factor search iterate over the full element list, so
// implementations are only expected for small fields.
type Finite[E any] interface {
	Field[E]

	// Order returns the number of elements in the field.
	Order() int

	// Elements returns all field elements. The returned slice is freshly
	// allocated and safe for the caller to modify.
	Elements() []E
}

// Codec is implemented by fields whose elements have a fixed-size binary
// encoding, enabling surge marshaling of polynomials over them.
type Codec[E any] interface {
	// ElemSize returns the marshaled size of one element in bytes.
	ElemSize() int

	MarshalElem(e E, buf []byte, rem int) ([]byte, int, error)
	UnmarshalElem(e *E, buf []byte, rem int) ([]byte, int, error)
}
