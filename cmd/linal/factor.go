package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mishanya000/Linal-Lab/poly"
)

var factorPolyCmd = &cobra.Command{
	Use:   "factorpoly --mod p coeffs",
	Short: "factor a polynomial into irreducibles over GF(p).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, polys, err := parsePrimePolys(cmd, args)
		if err != nil {
			return err
		}
		unit, factors, err := poly.Factorize[uint64](f, polys[0])
		if err != nil {
			return err
		}

		parts := make([]string, 0, len(factors)+1)
		if !f.Eq(unit, f.One()) || len(factors) == 0 {
			parts = append(parts, f.Format(unit))
		}
		for _, fac := range factors {
			if fac.Multiplicity == 1 {
				parts = append(parts, fmt.Sprintf("(%v)", fac.P))
			} else {
				parts = append(parts, fmt.Sprintf("(%v)^%d", fac.P, fac.Multiplicity))
			}
		}
		fmt.Printf("f(x) = %s\n", strings.Join(parts, " * "))
		return nil
	},
}

var rootsCmd = &cobra.Command{
	Use:   "roots --mod p coeffs",
	Short: "find the roots of a polynomial in GF(p).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, polys, err := parsePrimePolys(cmd, args)
		if err != nil {
			return err
		}
		roots := poly.Roots[uint64](f, polys[0])
		if len(roots) == 0 {
			fmt.Printf("(%v) has no roots in %s\n", polys[0], f.Name())
			return nil
		}
		rendered := make([]string, len(roots))
		for i, r := range roots {
			rendered[i] = f.Format(r)
		}
		fmt.Printf("roots: %s\n", strings.Join(rendered, ", "))
		return nil
	},
}

func init() {
	factorPolyCmd.Flags().Uint64("mod", 2, "prime modulus of the coefficient field")
	rootsCmd.Flags().Uint64("mod", 2, "prime modulus of the coefficient field")
	rootCmd.AddCommand(factorPolyCmd)
	rootCmd.AddCommand(rootsCmd)
}
