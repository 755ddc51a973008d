// Package primes provides the prime exploration routines of the lab suite:
// primality testing, integer factorization into prime multisets, searches
// for circular and palindromic primes, twin prime statistics, and the Euler
// totient function.
package primes

import (
	"math/big"
	"sort"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// IsPrime reports whether n is prime. The test is exact for the full int64
// range: math/big's ProbablyPrime with zero extra rounds applies the
// Baillie-PSW test, which has no known composite below 2^64 passing it.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	return big.NewInt(n).ProbablyPrime(0)
}

// IsPrimeBig reports whether n is prime with 20 Miller-Rabin rounds on top
// of Baillie-PSW. For n >= 2^64 the answer is probabilistic.
func IsPrimeBig(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	return n.ProbablyPrime(20)
}

// Factor returns the prime factorization of |n| as a multiset mapping each
// prime factor to its exponent. Factor(0) and Factor(1) return an empty
// multiset.
func Factor(n int64) map[int64]int {
	if n < 0 {
		n = -n
	}
	factors := make(map[int64]int)
	for n%2 == 0 && n != 0 {
		factors[2]++
		n /= 2
	}
	for d := int64(3); d*d <= n; d += 2 {
		for n%d == 0 {
			factors[d]++
			n /= d
		}
	}
	if n > 1 {
		factors[n]++
	}
	return factors
}

// BigFactor is one prime factor of a big integer with its exponent.
type BigFactor struct {
	P   *big.Int
	Exp int
}

// FactorBig returns the prime factorization of n > 1 as a list of factors
// sorted by increasing prime. Small factors are removed by trial division
// and the remainder is split with Pollard's rho, so the running time is
// dominated by the second-largest prime factor.
func FactorBig(n *big.Int) []BigFactor {
	counts := make(map[string]*BigFactor)
	m := new(big.Int).Set(n)

	// Trial division pass for small primes.
	for d := int64(2); d < 10000; d++ {
		dd := big.NewInt(d)
		if new(big.Int).Mul(dd, dd).Cmp(m) > 0 {
			break
		}
		for new(big.Int).Mod(m, dd).Sign() == 0 {
			addFactor(counts, dd)
			m.Div(m, dd)
		}
	}
	if m.Cmp(bigOne) > 0 {
		splitRho(counts, m)
	}

	factors := make([]BigFactor, 0, len(counts))
	for _, f := range counts {
		factors = append(factors, *f)
	}
	sort.Slice(factors, func(i, j int) bool { return factors[i].P.Cmp(factors[j].P) < 0 })
	return factors
}

func addFactor(counts map[string]*BigFactor, p *big.Int) {
	key := p.String()
	if f, ok := counts[key]; ok {
		f.Exp++
		return
	}
	counts[key] = &BigFactor{P: new(big.Int).Set(p), Exp: 1}
}

func splitRho(counts map[string]*BigFactor, n *big.Int) {
	if n.Cmp(bigOne) == 0 {
		return
	}
	if IsPrimeBig(n) {
		addFactor(counts, n)
		return
	}
	d := rho(n)
	splitRho(counts, d)
	splitRho(counts, new(big.Int).Div(n, d))
}

// rho finds a non-trivial factor of the odd composite n using Pollard's rho
// with Floyd cycle detection, retrying with a different polynomial offset
// whenever the walk collapses without finding a factor.
func rho(n *big.Int) *big.Int {
	if new(big.Int).Mod(n, bigTwo).Sign() == 0 {
		return new(big.Int).Set(bigTwo)
	}
	for c := int64(1); ; c++ {
		x := big.NewInt(2)
		y := big.NewInt(2)
		g := big.NewInt(1)
		cc := big.NewInt(c)

		for g.Cmp(bigOne) == 0 {
			x.Mul(x, x).Add(x, cc).Mod(x, n)
			y.Mul(y, y).Add(y, cc).Mod(y, n)
			y.Mul(y, y).Add(y, cc).Mod(y, n)
			g.GCD(nil, nil, new(big.Int).Abs(new(big.Int).Sub(x, y)), n)
		}
		if g.Cmp(n) != 0 {
			return g
		}
	}
}

// FactorialPlusOne computes n!+1 and its prime factorization. Numbers of
// this form are often prime for small n (factorial primes); for larger n
// the factorization cost grows quickly with the smallest hidden factor.
func FactorialPlusOne(n int) (*big.Int, []BigFactor) {
	v := new(big.Int).MulRange(1, int64(n))
	v.Add(v, bigOne)
	return v, FactorBig(v)
}
