package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Mishanya000/Linal-Lab/field"
	"github.com/Mishanya000/Linal-Lab/poly"
	"github.com/Mishanya000/Linal-Lab/ring"
)

var idealCmd = &cobra.Command{
	Use:   "ideal [flags] integer...",
	Short: "compute the generator of the ideal generated by integers.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		elems := make([]ring.Element, len(args))
		for i, arg := range args {
			v, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return err
			}
			elems[i] = ring.NewInt(v)
		}

		gen, err := ring.GcdAll(elems)
		if err != nil {
			return err
		}
		fmt.Printf("generator: %v\n", gen)

		if cmd.Flags().Changed("check") {
			v, _ := cmd.Flags().GetInt64("check")
			member, err := ring.Contains(ring.NewInt(v), gen)
			if err != nil {
				return err
			}
			fmt.Printf("%v in ideal: %v\n", v, member)
		}
		return nil
	},
}

var idealPolyCmd = &cobra.Command{
	Use:   "idealpoly [flags] coeffs...",
	Short: "compute the monic generator of the ideal generated by polynomials.",
	Long: "Each argument is a comma-separated coefficient list, constant term\n" +
		"first. Coefficients are rational by default, or in GF(p) with --mod p.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mod, _ := cmd.Flags().GetUint64("mod")
		check, _ := cmd.Flags().GetString("check")

		if mod != 0 {
			f, err := field.NewPrime(mod)
			if err != nil {
				return err
			}
			log.Debugf("working over %s", f.Name())
			elems := make([]ring.Element, len(args))
			for i, arg := range args {
				coeffs, err := parseInts(arg)
				if err != nil {
					return err
				}
				elems[i] = ring.NewPolyFromInts(f, coeffs...)
			}
			return reportIdealPoly(elems, func(coeffs string) (ring.Element, error) {
				cs, err := parseInts(coeffs)
				if err != nil {
					return nil, err
				}
				return ring.NewPolyFromInts(f, cs...), nil
			}, check)
		}

		f := field.Reals{}
		elems := make([]ring.Element, len(args))
		for i, arg := range args {
			coeffs, err := parseFloats(arg)
			if err != nil {
				return err
			}
			elems[i] = ring.NewPoly(poly.New[float64](f, coeffs...))
		}
		return reportIdealPoly(elems, func(coeffs string) (ring.Element, error) {
			cs, err := parseFloats(coeffs)
			if err != nil {
				return nil, err
			}
			return ring.NewPoly(poly.New[float64](f, cs...)), nil
		}, check)
	},
}

func reportIdealPoly(elems []ring.Element, parse func(string) (ring.Element, error), check string) error {
	gen, err := ring.GcdAll(elems)
	if err != nil {
		return err
	}
	fmt.Printf("generator: %v\n", gen)

	if check != "" {
		x, err := parse(check)
		if err != nil {
			return err
		}
		member, err := ring.Contains(x, gen)
		if err != nil {
			return err
		}
		fmt.Printf("%v in ideal: %v\n", x, member)
	}
	return nil
}

func init() {
	idealCmd.Flags().Int64("check", 0, "test membership of an integer in the ideal")
	idealPolyCmd.Flags().Uint64("mod", 0, "work over GF(p) instead of the rationals")
	idealPolyCmd.Flags().String("check", "", "test membership of a polynomial in the ideal")
	rootCmd.AddCommand(idealCmd)
	rootCmd.AddCommand(idealPolyCmd)
}
