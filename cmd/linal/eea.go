package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Mishanya000/Linal-Lab/eea"
	"github.com/Mishanya000/Linal-Lab/field"
	"github.com/Mishanya000/Linal-Lab/poly"
)

func parsePrimePolys(cmd *cobra.Command, args []string) (field.Prime, []poly.Poly[uint64], error) {
	mod, _ := cmd.Flags().GetUint64("mod")
	f, err := field.NewPrime(mod)
	if err != nil {
		return field.Prime{}, nil, err
	}
	polys := make([]poly.Poly[uint64], len(args))
	for i, arg := range args {
		coeffs, err := parseInts(arg)
		if err != nil {
			return field.Prime{}, nil, err
		}
		polys[i] = poly.FromInts[uint64](f, coeffs...)
	}
	return f, polys, nil
}

var egcdCmd = &cobra.Command{
	Use:   "egcd --mod p f g",
	Short: "extended Euclidean algorithm for polynomials over GF(p).",
	Long: "Computes gcd(f, g) together with Bezout coefficients s and t such\n" +
		"that s*f + t*g = gcd. Arguments are comma-separated coefficient lists,\n" +
		"constant term first.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, polys, err := parsePrimePolys(cmd, args)
		if err != nil {
			return err
		}
		g, s, t := eea.Decompose[uint64](f, polys[0], polys[1])
		log.Debugf("verifying s*f + t*g = gcd over %s", f.Name())
		fmt.Printf("gcd: %v\n", g)
		fmt.Printf("s:   %v\n", s)
		fmt.Printf("t:   %v\n", t)
		fmt.Printf("(%v) = (%v)*(%v) + (%v)*(%v)\n", g, polys[0], s, polys[1], t)
		return nil
	},
}

var inverseCmd = &cobra.Command{
	Use:   "inverse --mod p f g",
	Short: "invert a polynomial modulo another over GF(p).",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, polys, err := parsePrimePolys(cmd, args)
		if err != nil {
			return err
		}
		h, err := eea.InverseModulo[uint64](f, polys[0], polys[1])
		if errors.Is(err, eea.ErrNotInvertible) {
			fmt.Printf("(%v) is not invertible modulo (%v)\n", polys[0], polys[1])
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("h: %v\n", h)
		fmt.Printf("(%v) * (%v) = 1 mod (%v)\n", h, polys[0], polys[1])
		return nil
	},
}

func init() {
	egcdCmd.Flags().Uint64("mod", 2, "prime modulus of the coefficient field")
	inverseCmd.Flags().Uint64("mod", 2, "prime modulus of the coefficient field")
	rootCmd.AddCommand(egcdCmd)
	rootCmd.AddCommand(inverseCmd)
}
