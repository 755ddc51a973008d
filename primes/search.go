package primes

import (
	"math/big"
	"strconv"

	"github.com/montanaflynn/stats"
)

// reverseString returns s with its bytes in reverse order. Decimal digit
// strings only.
func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// IsPalindrome reports whether the decimal representation of n reads the
// same forwards and backwards.
func IsPalindrome(n int64) bool {
	if n < 0 {
		return false
	}
	s := strconv.FormatInt(n, 10)
	return s == reverseString(s)
}

// Rotations returns all cyclic rotations of the decimal digits of n,
// starting with n itself. Rotations that begin with zero lose the leading
// digit when parsed back, matching the usual circular prime convention of
// testing the rotated value as a number.
func Rotations(n int64) []int64 {
	s := strconv.FormatInt(n, 10)
	rots := make([]int64, len(s))
	for i := range s {
		v, _ := strconv.ParseInt(s[i:]+s[:i], 10, 64)
		rots[i] = v
	}
	return rots
}

// IsCircular reports whether every cyclic rotation of the digits of n is
// prime. 197 is circular because 197, 971 and 719 are all prime.
func IsCircular(n int64) bool {
	for _, r := range Rotations(n) {
		if !IsPrime(r) {
			return false
		}
	}
	return true
}

// CircularPrimes returns all circular primes below limit in increasing
// order.
func CircularPrimes(limit int64) []int64 {
	var found []int64
	for n := int64(2); n < limit; n++ {
		if IsCircular(n) {
			found = append(found, n)
		}
	}
	return found
}

// PalindromicPrimes returns all primes below limit that are also decimal
// palindromes.
func PalindromicPrimes(limit int64) []int64 {
	var found []int64
	for n := int64(2); n < limit; n++ {
		if IsPalindrome(n) && IsPrime(n) {
			found = append(found, n)
		}
	}
	return found
}

// PalindromicSquares returns all palindromes below limit whose square is
// also a palindrome.
func PalindromicSquares(limit int64) []int64 {
	var found []int64
	for n := int64(1); n < limit; n++ {
		if IsPalindrome(n) && IsPalindrome(n*n) {
			found = append(found, n)
		}
	}
	return found
}

// PalindromicCubes returns all palindromes below limit whose cube is also a
// palindrome.
func PalindromicCubes(limit int64) []int64 {
	var found []int64
	for n := int64(1); n < limit; n++ {
		if IsPalindrome(n) && IsPalindrome(n*n*n) {
			found = append(found, n)
		}
	}
	return found
}

// TwoDigitPrimes returns the first count primes whose decimal digits are
// drawn only from d1 and d2. Candidates are generated breadth-first, so the
// primes come out in increasing digit length. Numbers longer than 20 digits
// are not explored.
func TwoDigitPrimes(d1, d2 int, count int) []*big.Int {
	const maxLen = 20

	var found []*big.Int
	queue := []string{strconv.Itoa(d1), strconv.Itoa(d2)}
	for len(queue) > 0 && len(found) < count {
		s := queue[0]
		queue = queue[1:]

		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			continue
		}
		if n.Cmp(bigOne) > 0 && IsPrimeBig(n) {
			found = append(found, n)
			if len(found) == count {
				break
			}
		}
		if len(s) < maxLen {
			queue = append(queue, s+strconv.Itoa(d1), s+strconv.Itoa(d2))
		}
	}
	return found
}

// Twin is a pair of primes that differ by two.
type Twin struct {
	P, Q int64
}

// TwinPrimes finds the first pairs twin prime pairs, together with the
// series of ratios pi2(x)/pi(x) sampled at the moment each pair is found,
// where pi counts primes and pi2 counts twin pairs. The ratio recorded for
// a pair uses the pair count before that pair is included, so the series
// starts at zero.
func TwinPrimes(pairs int) ([]Twin, []float64) {
	twins := make([]Twin, 0, pairs)
	ratios := make([]float64, 0, pairs)

	var num int64
	pi, pi2 := 0, 0
	for len(twins) < pairs {
		num++
		p := IsPrime(num)
		if p {
			pi++
		}
		if p && IsPrime(num+2) {
			twins = append(twins, Twin{P: num, Q: num + 2})
			ratios = append(ratios, float64(pi2)/float64(pi))
			pi2++
		}
	}
	return twins, ratios
}

// Summary holds descriptive statistics of a ratio series.
type Summary struct {
	Mean   float64
	Median float64
	StdDev float64
}

// RatioSummary summarises a series of ratios, such as the twin prime ratio
// series or totient timing speedups.
func RatioSummary(ratios []float64) (Summary, error) {
	mean, err := stats.Mean(ratios)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(ratios)
	if err != nil {
		return Summary{}, err
	}
	stddev, err := stats.StandardDeviation(ratios)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Mean: mean, Median: median, StdDev: stddev}, nil
}
