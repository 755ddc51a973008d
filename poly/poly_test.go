package poly_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/Mishanya000/Linal-Lab/poly"
	"github.com/Mishanya000/Linal-Lab/field"
	"github.com/Mishanya000/Linal-Lab/poly/polyutil"
)

var _ = Describe("Polynomials", func() {
	f := field.MustPrime(13)

	It("should implement the Stringer interface", func() {
		r := field.Reals{}
		Expect(Zero[float64](r).String()).To(Equal("0"))
		Expect(FromInts[float64](r, 5).String()).To(Equal("5"))
		Expect(FromInts[float64](r, 1, 2).String()).To(Equal("1 + 2*x"))
		Expect(FromInts[float64](r, 0, 0, 3).String()).To(Equal("3*x^2"))
		Expect(FromInts[float64](r, -1, 0, 1).String()).To(Equal("-1 + 1*x^2"))
	})

	Context("when constructing a polynomial from coefficients", func() {
		Specify("the coefficients should correspond to the arguments", func() {
			trials := 1000
			maxDegree := 20

			for i := 0; i < trials; i++ {
				degree := rand.Intn(maxDegree + 1)
				coeffs := make([]uint64, degree+1)
				for j := range coeffs {
					coeffs[j] = uint64(rand.Intn(13))
				}
				coeffs[degree] = uint64(rand.Intn(12) + 1)
				p := New[uint64](f, coeffs...)

				Expect(p.Degree()).To(Equal(degree))
				for j, c := range coeffs {
					Expect(p.Coefficient(j)).To(Equal(c))
				}
			}
		})

		Specify("trailing zero coefficients should be trimmed", func() {
			p := New[uint64](f, 1, 2, 0, 0)
			Expect(p.Degree()).To(Equal(1))
			Expect(func() { _ = p.Coefficient(2) }).To(Panic())
		})

		Specify("no coefficients should give the zero polynomial", func() {
			Expect(New[uint64](f).IsZero()).To(BeTrue())
			Expect(New[uint64](f).Degree()).To(Equal(0))
		})
	})

	Context("when doing arithmetic on random polynomials", func() {
		Specify("addition should commute and subtraction should invert it", func() {
			trials := 1000
			maxDegree := 10

			for i := 0; i < trials; i++ {
				a := polyutil.Random[uint64](f, rand.Intn(maxDegree+1))
				b := polyutil.Random[uint64](f, rand.Intn(maxDegree+1))

				Expect(a.Add(b).Eq(b.Add(a))).To(BeTrue())
				Expect(a.Add(b).Sub(b).Eq(a)).To(BeTrue())
				Expect(a.Sub(a).IsZero()).To(BeTrue())
			}
		})

		Specify("multiplication should distribute over addition", func() {
			trials := 200
			maxDegree := 10

			for i := 0; i < trials; i++ {
				a := polyutil.Random[uint64](f, rand.Intn(maxDegree+1))
				b := polyutil.Random[uint64](f, rand.Intn(maxDegree+1))
				c := polyutil.Random[uint64](f, rand.Intn(maxDegree+1))

				Expect(a.Mul(b).Eq(b.Mul(a))).To(BeTrue())
				Expect(a.Mul(b.Add(c)).Eq(a.Mul(b).Add(a.Mul(c)))).To(BeTrue())
			}
		})

		Specify("the degree of a product should be the sum of the degrees", func() {
			trials := 200
			maxDegree := 10

			for i := 0; i < trials; i++ {
				da, db := rand.Intn(maxDegree+1), rand.Intn(maxDegree+1)
				a := polyutil.Random[uint64](f, da)
				b := polyutil.Random[uint64](f, db)

				Expect(a.Mul(b).Degree()).To(Equal(da + db))
			}
		})

		Specify("shifting should multiply by a power of x", func() {
			trials := 200
			maxDegree := 10

			x := FromInts[uint64](f, 0, 1)
			for i := 0; i < trials; i++ {
				a := polyutil.Random[uint64](f, rand.Intn(maxDegree+1))
				k := rand.Intn(5)

				xk := One[uint64](f)
				for j := 0; j < k; j++ {
					xk = xk.Mul(x)
				}
				Expect(a.Shift(k).Eq(a.Mul(xk))).To(BeTrue())
			}
		})
	})

	Context("when evaluating polynomials", func() {
		Specify("evaluation should be a ring homomorphism", func() {
			trials := 500
			maxDegree := 10

			for i := 0; i < trials; i++ {
				a := polyutil.Random[uint64](f, rand.Intn(maxDegree+1))
				b := polyutil.Random[uint64](f, rand.Intn(maxDegree+1))
				x := uint64(rand.Intn(13))

				Expect(a.Add(b).Evaluate(x)).To(Equal(f.Add(a.Evaluate(x), b.Evaluate(x))))
				Expect(a.Mul(b).Evaluate(x)).To(Equal(f.Mul(a.Evaluate(x), b.Evaluate(x))))
			}
		})
	})

	Context("when mixing coefficient fields", func() {
		It("should panic", func() {
			a := FromInts[uint64](field.MustPrime(7), 1, 1)
			b := FromInts[uint64](f, 1, 1)
			Expect(func() { a.Add(b) }).To(Panic())
			Expect(func() { a.Mul(b) }).To(Panic())
		})
	})

	Context("when dividing polynomials", func() {
		Specify("the division identity a = b*q + r should hold", func() {
			trials := 500
			maxDegree := 10

			for i := 0; i < trials; i++ {
				a := polyutil.Random[uint64](f, rand.Intn(maxDegree+1))
				b := polyutil.Random[uint64](f, rand.Intn(maxDegree+1))

				q, r, err := Divide(a, b)
				Expect(err).ToNot(HaveOccurred())
				Expect(b.Mul(q).Add(r).Eq(a)).To(BeTrue())
				if !r.IsZero() {
					Expect(r.Degree()).To(BeNumerically("<", b.Degree()))
				}
			}
		})

		It("should return an error on division by zero", func() {
			a := polyutil.Random[uint64](f, 3)
			_, _, err := Divide(a, Zero[uint64](f))
			Expect(err).To(Equal(ErrDivisionByZero))
		})

		It("should return a zero quotient when the divisor has larger degree", func() {
			a := polyutil.Random[uint64](f, 2)
			b := polyutil.Random[uint64](f, 5)

			q, r, err := Divide(a, b)
			Expect(err).ToNot(HaveOccurred())
			Expect(q.IsZero()).To(BeTrue())
			Expect(r.Eq(a)).To(BeTrue())
		})

		Specify("division should also work over the rationals", func() {
			r := field.Reals{}
			// (x^2 - 1) / (2x - 2) = x/2 + 1/2, remainder 0.
			a := FromInts[float64](r, -1, 0, 1)
			b := FromInts[float64](r, -2, 2)

			q, rem, err := Divide(a, b)
			Expect(err).ToNot(HaveOccurred())
			Expect(rem.IsZero()).To(BeTrue())
			Expect(q.Eq(New[float64](r, 0.5, 0.5))).To(BeTrue())
		})
	})

	Context("when computing GCDs", func() {
		Specify("the result should be monic and divide both inputs", func() {
			trials := 200
			maxDegree := 8

			for i := 0; i < trials; i++ {
				a := polyutil.Random[uint64](f, rand.Intn(maxDegree+1))
				b := polyutil.Random[uint64](f, rand.Intn(maxDegree+1))

				g := Gcd(a, b)
				Expect(f.Eq(g.Lead(), f.One())).To(BeTrue())

				_, r, err := Divide(a, g)
				Expect(err).ToNot(HaveOccurred())
				Expect(r.IsZero()).To(BeTrue())
				_, r, err = Divide(b, g)
				Expect(err).ToNot(HaveOccurred())
				Expect(r.IsZero()).To(BeTrue())
			}
		})

		Specify("a common factor should always divide the GCD", func() {
			trials := 200
			maxDegree := 5

			for i := 0; i < trials; i++ {
				c := polyutil.Random[uint64](f, rand.Intn(maxDegree)+1)
				a := polyutil.Random[uint64](f, rand.Intn(maxDegree+1)).Mul(c)
				b := polyutil.Random[uint64](f, rand.Intn(maxDegree+1)).Mul(c)

				g := Gcd(a, b)
				_, r, err := Divide(g, c)
				Expect(err).ToNot(HaveOccurred())
				Expect(r.IsZero()).To(BeTrue())
			}
		})

		It("should compute gcd(x^2 - 1, x^3 - 1) = x - 1", func() {
			a := FromInts[uint64](f, -1, 0, 1)
			b := FromInts[uint64](f, -1, 0, 0, 1)
			Expect(Gcd(a, b).Eq(FromInts[uint64](f, -1, 1))).To(BeTrue())
		})

		It("should define gcd(0, 0) as the zero polynomial", func() {
			Expect(Gcd(Zero[uint64](f), Zero[uint64](f)).IsZero()).To(BeTrue())
		})
	})

	Context("when normalizing to monic form", func() {
		Specify("the result should be a unit multiple with leading coefficient 1", func() {
			trials := 200
			maxDegree := 10

			for i := 0; i < trials; i++ {
				a := polyutil.Random[uint64](f, rand.Intn(maxDegree+1))

				m := a.Monic()
				Expect(f.Eq(m.Lead(), f.One())).To(BeTrue())
				Expect(m.ScalarMul(a.Lead()).Eq(a)).To(BeTrue())
			}
		})
	})
})
