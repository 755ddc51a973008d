// Package group provides the group-theoretic exploration routines of the
// lab suite: the multiplicative group of residues modulo m, element orders
// and primitive elements of prime fields, and element-level queries over
// symmetric groups. Subgroup lattices and coset decompositions are out of
// scope.
package group

import (
	"fmt"
	"sort"

	"github.com/Mishanya000/Linal-Lab/primes"
)

func gcdInt(a, b int) int {
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

// Units returns the elements of the multiplicative group Z_m^*, i.e. the
// residues in [1, m) coprime to m, in increasing order.
func Units(m int) []int {
	var units []int
	for a := 1; a < m; a++ {
		if gcdInt(a, m) == 1 {
			units = append(units, a)
		}
	}
	return units
}

// OrderMod returns the multiplicative order of a modulo m, the smallest
// k >= 1 with a^k = 1 (mod m). It returns an error if m < 2 or a is not a
// unit modulo m.
func OrderMod(a, m int) (int, error) {
	if m < 2 {
		return 0, fmt.Errorf("modulus must be at least 2, got %v", m)
	}
	a = ((a % m) + m) % m
	if gcdInt(a, m) != 1 {
		return 0, fmt.Errorf("%v is not a unit modulo %v", a, m)
	}
	order := 1
	x := a % m
	for x != 1 {
		x = (x * a) % m
		order++
	}
	return order, nil
}

// Generators returns the primitive elements of Z_m^*: the units whose order
// equals the group order phi(m). The result is empty when the group is not
// cyclic.
func Generators(m int) []int {
	units := Units(m)
	var gens []int
	for _, a := range units {
		order, err := OrderMod(a, m)
		if err != nil {
			continue
		}
		if order == len(units) {
			gens = append(gens, a)
		}
	}
	return gens
}

// CyclicSubgroup returns the cyclic subgroup of Z_m^* generated by g, in
// increasing order. It returns an error if g is not a unit modulo m.
func CyclicSubgroup(g, m int) ([]int, error) {
	order, err := OrderMod(g, m)
	if err != nil {
		return nil, err
	}
	elems := make([]int, 0, order)
	x := 1
	for i := 0; i < order; i++ {
		x = (x * g) % m
		elems = append(elems, x)
	}
	sort.Ints(elems)
	return elems, nil
}

// AdditiveCyclic returns the cyclic subgroup of the additive group Z_m
// generated by t, together with the elements that generate that same
// subgroup. Both slices are in increasing order.
func AdditiveCyclic(t, m int) (elems, gens []int) {
	t = ((t % m) + m) % m
	seen := make(map[int]bool)
	for i := 0; i < m; i++ {
		seen[(t*i)%m] = true
	}
	for e := range seen {
		elems = append(elems, e)
	}
	sort.Ints(elems)

	for _, e := range elems {
		if e == 0 {
			continue
		}
		if m/gcdInt(m, e) == len(elems) {
			gens = append(gens, e)
		}
	}
	return elems, gens
}

// OrderOfPower returns the order of s^r in the multiplicative group of the
// prime field F_p, computed as ord(s)/gcd(ord(s), r). It returns an error
// if p is not prime or s is divisible by p.
func OrderOfPower(s, r, p int) (int, error) {
	if !primes.IsPrime(int64(p)) {
		return 0, fmt.Errorf("%v is not prime", p)
	}
	order, err := OrderMod(s, p)
	if err != nil {
		return 0, err
	}
	return order / gcdInt(order, r), nil
}

// IsPrimitive returns the order of t in F_p^* and whether t generates the
// whole group, i.e. whether its order is p-1. It returns an error if p is
// not prime or t is divisible by p.
func IsPrimitive(t, p int) (int, bool, error) {
	if !primes.IsPrime(int64(p)) {
		return 0, false, fmt.Errorf("%v is not prime", p)
	}
	order, err := OrderMod(t, p)
	if err != nil {
		return 0, false, err
	}
	return order, order == p-1, nil
}
