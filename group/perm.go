package group

import (
	"fmt"
	"strings"
)

// Perm is a permutation of {0, ..., n-1} in image form: p[i] is the image
// of i. Permutations are immutable values; operations return fresh slices.
type Perm []int

// Identity returns the identity permutation on n points.
func Identity(n int) Perm {
	p := make(Perm, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// NewPerm validates that images is a bijection of {0, ..., n-1} and returns
// it as a permutation. The slice is copied.
func NewPerm(images []int) (Perm, error) {
	seen := make([]bool, len(images))
	for _, v := range images {
		if v < 0 || v >= len(images) || seen[v] {
			return nil, fmt.Errorf("images %v do not form a permutation", images)
		}
		seen[v] = true
	}
	p := make(Perm, len(images))
	copy(p, images)
	return p, nil
}

// Eq returns true if the two permutations are equal.
func (p Perm) Eq(q Perm) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Compose returns the permutation p*q that applies q first and then p, so
// (p*q)(i) = p(q(i)).
func (p Perm) Compose(q Perm) Perm {
	if len(p) != len(q) {
		panic("cannot compose permutations of different degrees")
	}
	r := make(Perm, len(p))
	for i := range r {
		r[i] = p[q[i]]
	}
	return r
}

// Inverse returns the inverse permutation.
func (p Perm) Inverse() Perm {
	r := make(Perm, len(p))
	for i, v := range p {
		r[v] = i
	}
	return r
}

// Pow returns the k-th power of the permutation. Negative exponents give
// powers of the inverse.
func (p Perm) Pow(k int) Perm {
	base := p
	if k < 0 {
		base = p.Inverse()
		k = -k
	}
	r := Identity(len(p))
	sq := base
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			r = r.Compose(sq)
		}
		sq = sq.Compose(sq)
	}
	return r
}

// Order returns the order of the permutation: the least common multiple of
// its cycle lengths.
func (p Perm) Order() int {
	order := 1
	for _, cycle := range p.cycles(true) {
		l := len(cycle)
		order = order / gcdInt(order, l) * l
	}
	return order
}

// Cycles returns the non-trivial cycles of the permutation, each starting
// from its smallest point, ordered by that point.
func (p Perm) Cycles() [][]int {
	return p.cycles(false)
}

func (p Perm) cycles(includeFixed bool) [][]int {
	seen := make([]bool, len(p))
	var cycles [][]int
	for i := range p {
		if seen[i] {
			continue
		}
		cycle := []int{i}
		seen[i] = true
		for j := p[i]; j != i; j = p[j] {
			cycle = append(cycle, j)
			seen[j] = true
		}
		if len(cycle) > 1 || includeFixed {
			cycles = append(cycles, cycle)
		}
	}
	return cycles
}

// String renders the permutation in cycle notation, e.g. "(0 1 2)(3 4)";
// the identity renders as "()".
func (p Perm) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "()"
	}
	var b strings.Builder
	for _, cycle := range cycles {
		b.WriteByte('(')
		for i, v := range cycle {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", v)
		}
		b.WriteByte(')')
	}
	return b.String()
}

// Symmetric returns all n! elements of the symmetric group S_n in
// lexicographic order of their image form.
//
// Panics: The enumeration is exponential, so n larger than 8 panics rather
// than attempting to allocate the group.
func Symmetric(n int) []Perm {
	if n < 0 || n > 8 {
		panic(fmt.Sprintf("refusing to enumerate S_%d", n))
	}
	var perms []Perm
	cur := Identity(n)
	used := make([]bool, n)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == n {
			p := make(Perm, n)
			copy(p, cur)
			perms = append(perms, p)
			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			cur[pos] = v
			rec(pos + 1)
			used[v] = false
		}
	}
	rec(0)
	return perms
}

// OfOrder returns the elements of S_n of order exactly k.
func OfOrder(n, k int) []Perm {
	var found []Perm
	for _, p := range Symmetric(n) {
		if p.Order() == k {
			found = append(found, p)
		}
	}
	return found
}

// PowerSolutions returns the elements sigma of S_n such that some power
// sigma^j with 0 <= j < order(sigma) equals tau, i.e. the elements whose
// generated cyclic group contains tau.
func PowerSolutions(n int, tau Perm) []Perm {
	var found []Perm
	for _, sigma := range Symmetric(n) {
		order := sigma.Order()
		for j := 0; j < order; j++ {
			if sigma.Pow(j).Eq(tau) {
				found = append(found, sigma)
				break
			}
		}
	}
	return found
}
