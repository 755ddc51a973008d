package poly_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/Mishanya000/Linal-Lab/poly"
	"github.com/Mishanya000/Linal-Lab/field"
	"github.com/Mishanya000/Linal-Lab/poly/polyutil"
)

var _ = Describe("Factorization", func() {
	f := field.MustPrime(13)

	Context("when finding roots over a finite field", func() {
		It("should find the roots of x^2 + 1 over GF(13)", func() {
			p := FromInts[uint64](f, 1, 0, 1)
			Expect(Roots[uint64](f, p)).To(Equal([]uint64{5, 8}))
		})

		It("should find no roots for an irreducible quadratic", func() {
			// x^2 + 1 has no roots over GF(7): -1 is not a square mod 7.
			g := field.MustPrime(7)
			p := FromInts[uint64](g, 1, 0, 1)
			Expect(Roots[uint64](g, p)).To(BeEmpty())
		})

		Specify("every root should evaluate to zero", func() {
			trials := 100
			maxDegree := 5

			for i := 0; i < trials; i++ {
				p := polyutil.Random[uint64](f, rand.Intn(maxDegree)+1)
				for _, x := range Roots[uint64](f, p) {
					Expect(f.IsZero(p.Evaluate(x))).To(BeTrue())
				}
			}
		})
	})

	Context("when testing irreducibility", func() {
		It("should classify small polynomials over GF(2)", func() {
			g := field.MustPrime(2)

			// x^2 + x + 1 is the only irreducible quadratic over GF(2).
			Expect(IsIrreducible[uint64](g, FromInts[uint64](g, 1, 1, 1))).To(BeTrue())
			Expect(IsIrreducible[uint64](g, FromInts[uint64](g, 0, 0, 1))).To(BeFalse())
			Expect(IsIrreducible[uint64](g, FromInts[uint64](g, 1, 0, 1))).To(BeFalse())

			// x^3 + x + 1 and x^3 + x^2 + 1 are the irreducible cubics.
			Expect(IsIrreducible[uint64](g, FromInts[uint64](g, 1, 1, 0, 1))).To(BeTrue())
			Expect(IsIrreducible[uint64](g, FromInts[uint64](g, 1, 0, 1, 1))).To(BeTrue())
			Expect(IsIrreducible[uint64](g, FromInts[uint64](g, 1, 1, 1, 1))).To(BeFalse())
		})

		It("should not classify constants as irreducible", func() {
			Expect(IsIrreducible[uint64](f, One[uint64](f))).To(BeFalse())
			Expect(IsIrreducible[uint64](f, Zero[uint64](f))).To(BeFalse())
		})

		Specify("linear polynomials should always be irreducible", func() {
			trials := 100

			for i := 0; i < trials; i++ {
				Expect(IsIrreducible[uint64](f, polyutil.Random[uint64](f, 1))).To(BeTrue())
			}
		})
	})

	Context("when factoring polynomials", func() {
		It("should refuse the zero polynomial", func() {
			_, _, err := Factorize[uint64](f, Zero[uint64](f))
			Expect(err).To(Equal(ErrZeroPolynomial))
		})

		It("should factor x^2 + 1 = (x + 8)(x + 5) over GF(13)", func() {
			p := FromInts[uint64](f, 1, 0, 1)
			unit, factors, err := Factorize[uint64](f, p)
			Expect(err).ToNot(HaveOccurred())
			Expect(unit).To(Equal(uint64(1)))
			Expect(factors).To(HaveLen(2))
			// The roots 8 and 5 give the monic linear factors x + 5 and x + 8,
			// found in order of their constant terms.
			Expect(factors[0].P.Eq(FromInts[uint64](f, 5, 1))).To(BeTrue())
			Expect(factors[0].Multiplicity).To(Equal(1))
			Expect(factors[1].P.Eq(FromInts[uint64](f, 8, 1))).To(BeTrue())
			Expect(factors[1].Multiplicity).To(Equal(1))
		})

		It("should report multiplicities of repeated factors", func() {
			// 3 * (x + 1)^2 * (x + 2)
			p := FromInts[uint64](f, 1, 1).Mul(FromInts[uint64](f, 1, 1)).
				Mul(FromInts[uint64](f, 2, 1)).ScalarMul(3)

			unit, factors, err := Factorize[uint64](f, p)
			Expect(err).ToNot(HaveOccurred())
			Expect(unit).To(Equal(uint64(3)))
			Expect(factors).To(HaveLen(2))
			Expect(factors[0].P.Eq(FromInts[uint64](f, 1, 1))).To(BeTrue())
			Expect(factors[0].Multiplicity).To(Equal(2))
			Expect(factors[1].P.Eq(FromInts[uint64](f, 2, 1))).To(BeTrue())
			Expect(factors[1].Multiplicity).To(Equal(1))
		})

		Specify("the product of the factors should reconstruct the input", func() {
			trials := 50
			maxDegree := 6
			g := field.MustPrime(5)

			for i := 0; i < trials; i++ {
				p := polyutil.Random[uint64](g, rand.Intn(maxDegree)+1)

				unit, factors, err := Factorize[uint64](g, p)
				Expect(err).ToNot(HaveOccurred())

				prod := One[uint64](g).ScalarMul(unit)
				for _, fac := range factors {
					Expect(IsIrreducible[uint64](g, fac.P)).To(BeTrue())
					for j := 0; j < fac.Multiplicity; j++ {
						prod = prod.Mul(fac.P)
					}
				}
				Expect(prod.Eq(p)).To(BeTrue())
			}
		})

		It("should also factor over extension fields", func() {
			g := field.MustExtension(2, 2)

			// x^2 + x + 1 splits over GF(4) as (x + a)(x + a + 1).
			p := FromInts[[]uint64](g, 1, 1, 1)
			unit, factors, err := Factorize[[]uint64](g, p)
			Expect(err).ToNot(HaveOccurred())
			Expect(g.Eq(unit, g.One())).To(BeTrue())
			Expect(factors).To(HaveLen(2))

			roots := Roots[[]uint64](g, p)
			Expect(roots).To(HaveLen(2))
			Expect(g.Eq(roots[0], g.FromInt(2))).To(BeTrue())
			Expect(g.Eq(roots[1], g.FromInt(3))).To(BeTrue())
		})
	})
})
