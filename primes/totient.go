package primes

import (
	"time"
)

func gcd64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// PhiDirect computes the Euler totient of n by counting the integers in
// [1, n] coprime to n. Linear in n, suitable only for small inputs.
func PhiDirect(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var count int64
	for k := int64(1); k <= n; k++ {
		if gcd64(k, n) == 1 {
			count++
		}
	}
	return count
}

// PhiFactored computes the Euler totient of n from its prime factorization
// using phi(n) = n * prod(1 - 1/p) over the distinct prime factors p. The
// product is evaluated in integers, so the result is exact.
func PhiFactored(n int64) int64 {
	if n <= 0 {
		return 0
	}
	phi := n
	for p := range Factor(n) {
		phi = phi / p * (p - 1)
	}
	return phi
}

// PhiTiming records the result and per-method running time of one totient
// computation.
type PhiTiming struct {
	N        int64
	Phi      int64
	Direct   time.Duration
	Factored time.Duration
}

// ComparePhi computes the totient of each value with both methods and
// records their running times. It panics if the two methods disagree, since
// that would mean an arithmetic bug rather than a measurement artifact.
func ComparePhi(values []int64) []PhiTiming {
	timings := make([]PhiTiming, 0, len(values))
	for _, n := range values {
		start := time.Now()
		direct := PhiDirect(n)
		dDirect := time.Since(start)

		start = time.Now()
		factored := PhiFactored(n)
		dFactored := time.Since(start)

		if direct != factored {
			panic("totient methods disagree")
		}
		timings = append(timings, PhiTiming{N: n, Phi: direct, Direct: dDirect, Factored: dFactored})
	}
	return timings
}

// Speedups returns the direct/factored running time ratios of the given
// timings, for summarising with RatioSummary.
func Speedups(timings []PhiTiming) []float64 {
	ratios := make([]float64, 0, len(timings))
	for _, t := range timings {
		if t.Factored <= 0 {
			continue
		}
		ratios = append(ratios, float64(t.Direct)/float64(t.Factored))
	}
	return ratios
}
