package field_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/Mishanya000/Linal-Lab/field"
)

var _ = Describe("Prime fields", func() {
	f := MustPrime(13)

	It("should reject non-prime and oversized moduli", func() {
		_, err := NewPrime(1)
		Expect(err).To(HaveOccurred())
		_, err = NewPrime(12)
		Expect(err).To(HaveOccurred())
		_, err = NewPrime(1 << 33)
		Expect(err).To(HaveOccurred())
		Expect(func() { MustPrime(15) }).To(Panic())
	})

	Context("when doing arithmetic on random elements", func() {
		Specify("the field axioms should hold", func() {
			trials := 1000

			for i := 0; i < trials; i++ {
				a := uint64(rand.Intn(13))
				b := uint64(rand.Intn(13))
				c := uint64(rand.Intn(13))

				// Commutativity and associativity.
				Expect(f.Add(a, b)).To(Equal(f.Add(b, a)))
				Expect(f.Mul(a, b)).To(Equal(f.Mul(b, a)))
				Expect(f.Add(f.Add(a, b), c)).To(Equal(f.Add(a, f.Add(b, c))))
				Expect(f.Mul(f.Mul(a, b), c)).To(Equal(f.Mul(a, f.Mul(b, c))))

				// Distributivity.
				Expect(f.Mul(a, f.Add(b, c))).To(Equal(f.Add(f.Mul(a, b), f.Mul(a, c))))

				// Identities and inverses.
				Expect(f.Add(a, f.Zero())).To(Equal(a))
				Expect(f.Mul(a, f.One())).To(Equal(a))
				Expect(f.IsZero(f.Add(a, f.Neg(a)))).To(BeTrue())
				Expect(f.IsZero(f.Sub(a, a))).To(BeTrue())
			}
		})

		Specify("every non-zero element should have a multiplicative inverse", func() {
			for a := uint64(1); a < 13; a++ {
				Expect(f.Mul(a, f.Inv(a))).To(Equal(uint64(1)))
			}
		})
	})

	Context("when mapping integers into the field", func() {
		It("should reduce negative values into [0, p)", func() {
			Expect(f.FromInt(-1)).To(Equal(uint64(12)))
			Expect(f.FromInt(-13)).To(Equal(uint64(0)))
			Expect(f.FromInt(27)).To(Equal(uint64(1)))
		})
	})

	It("should enumerate all residues in order", func() {
		elems := f.Elements()
		Expect(elems).To(HaveLen(13))
		Expect(f.Order()).To(Equal(13))
		for i, e := range elems {
			Expect(e).To(Equal(uint64(i)))
		}
	})
})

var _ = Describe("Real coefficients", func() {
	f := Reals{}

	It("should treat values within the tolerance as equal", func() {
		Expect(f.Eq(1.0, 1.0+Eps/2)).To(BeTrue())
		Expect(f.Eq(1.0, 1.0+2*Eps)).To(BeFalse())
		Expect(f.IsZero(Eps / 2)).To(BeTrue())
		Expect(f.IsZero(2 * Eps)).To(BeFalse())
	})

	Specify("inversion should be exact up to the tolerance", func() {
		trials := 1000

		for i := 0; i < trials; i++ {
			a := rand.Float64()*100 - 50
			if f.IsZero(a) {
				continue
			}
			Expect(f.Eq(f.Mul(a, f.Inv(a)), f.One())).To(BeTrue())
		}
	})

	It("should invert zero to zero rather than overflowing", func() {
		Expect(f.Inv(0)).To(Equal(0.0))
	})
})

var _ = Describe("Extension fields", func() {
	It("should reject invalid parameters", func() {
		_, err := NewExtension(4, 2)
		Expect(err).To(HaveOccurred())
		_, err = NewExtension(2, 1)
		Expect(err).To(HaveOccurred())
		_, err = NewExtension(2, 64)
		Expect(err).To(HaveOccurred())
	})

	Context("in GF(4)", func() {
		f := MustExtension(2, 2)

		It("should pick x^2 + x + 1 as the modulus", func() {
			// The only irreducible monic quadratic over GF(2).
			Expect(f.Modulus()).To(Equal([]uint64{1, 1, 1}))
		})

		It("should have four elements", func() {
			Expect(f.Order()).To(Equal(4))
			Expect(f.Elements()).To(HaveLen(4))
		})

		Specify("the adjoined root should satisfy a^2 = a + 1", func() {
			a := f.FromInt(2) // the element "a"
			Expect(f.Eq(f.Mul(a, a), f.Add(a, f.One()))).To(BeTrue())
		})
	})

	Context("in GF(9)", func() {
		f := MustExtension(3, 2)

		Specify("the field axioms should hold for all element pairs", func() {
			elems := f.Elements()
			for _, a := range elems {
				for _, b := range elems {
					Expect(f.Eq(f.Add(a, b), f.Add(b, a))).To(BeTrue())
					Expect(f.Eq(f.Mul(a, b), f.Mul(b, a))).To(BeTrue())
					Expect(f.IsZero(f.Sub(a, a))).To(BeTrue())
					if !f.IsZero(b) {
						// b * (a/b) = a
						Expect(f.Eq(f.Mul(b, f.Mul(a, f.Inv(b))), a)).To(BeTrue())
					}
				}
			}
		})

		Specify("every non-zero element should have an inverse", func() {
			for _, a := range f.Elements() {
				if f.IsZero(a) {
					continue
				}
				Expect(f.Eq(f.Mul(a, f.Inv(a)), f.One())).To(BeTrue())
			}
		})

		It("should render elements in the adjoined root", func() {
			Expect(f.Format(f.Zero())).To(Equal("0"))
			Expect(f.Format(f.FromInt(2))).To(Equal("2"))
			Expect(f.Format(f.FromInt(3))).To(Equal("a"))
			Expect(f.Format(f.FromInt(5))).To(Equal("2 + a"))
			Expect(f.Format(f.FromInt(7))).To(Equal("1 + 2*a"))
		})
	})
})

var _ = Describe("Scalar field", func() {
	f := Scalars{}

	Specify("FromInt should agree with repeated addition", func() {
		trials := 100

		for i := 0; i < trials; i++ {
			n := rand.Intn(1000)
			acc := f.Zero()
			for j := 0; j < n; j++ {
				acc = f.Add(acc, f.One())
			}
			Expect(f.Eq(f.FromInt(n), acc)).To(BeTrue())
			Expect(f.IsZero(f.Add(f.FromInt(-n), acc))).To(BeTrue())
		}
	})

	Specify("the canonical order should be total on small values", func() {
		Expect(f.Cmp(f.FromInt(3), f.FromInt(5))).To(Equal(-1))
		Expect(f.Cmp(f.FromInt(5), f.FromInt(3))).To(Equal(1))
		Expect(f.Cmp(f.FromInt(4), f.FromInt(4))).To(Equal(0))
	})
})
