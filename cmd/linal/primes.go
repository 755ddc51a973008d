package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Mishanya000/Linal-Lab/primes"
)

var circularCmd = &cobra.Command{
	Use:   "circular bound",
	Short: "list the circular primes below a bound.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bound, err := parseInts(args[0])
		if err != nil {
			return err
		}
		found := primes.CircularPrimes(int64(bound[0]))
		fmt.Printf("%d circular primes below %d:\n", len(found), bound[0])
		for _, p := range found {
			fmt.Printf("  %d\n", p)
		}
		return nil
	},
}

var palindromicCmd = &cobra.Command{
	Use:   "palindromic bound",
	Short: "list palindromic primes and those with palindromic squares or cubes.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bound, err := parseInts(args[0])
		if err != nil {
			return err
		}
		n := int64(bound[0])
		fmt.Printf("palindromic primes:          %v\n", primes.PalindromicPrimes(n))
		fmt.Printf("with palindromic squares:    %v\n", primes.PalindromicSquares(n))
		fmt.Printf("with palindromic cubes:      %v\n", primes.PalindromicCubes(n))
		return nil
	},
}

var twinsCmd = &cobra.Command{
	Use:   "twins pairs",
	Short: "list the first twin prime pairs and summarise their density.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := parseInts(args[0])
		if err != nil {
			return err
		}
		twins, ratios := primes.TwinPrimes(count[0])
		for _, t := range twins {
			fmt.Printf("(%d, %d)\n", t.P, t.Q)
		}
		summary, err := primes.RatioSummary(ratios)
		if err != nil {
			return err
		}
		fmt.Printf("twin density: mean %.6f, median %.6f, stddev %.6f\n",
			summary.Mean, summary.Median, summary.StdDev)
		return nil
	},
}

var twoDigitCmd = &cobra.Command{
	Use:   "twodigit d1 d2 count",
	Short: "list primes written with only two given decimal digits.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		vals := make([]int, 3)
		for i, arg := range args {
			ns, err := parseInts(arg)
			if err != nil {
				return err
			}
			vals[i] = ns[0]
		}
		for _, p := range primes.TwoDigitPrimes(vals[0], vals[1], vals[2]) {
			fmt.Printf("  %v\n", p)
		}
		return nil
	},
}

var factorialCmd = &cobra.Command{
	Use:   "factorialplus n",
	Short: "factor n! + 1.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ns, err := parseInts(args[0])
		if err != nil {
			return err
		}
		v, factors := primes.FactorialPlusOne(ns[0])
		log.Debugf("%d! + 1 = %v", ns[0], v)
		if len(factors) == 1 && factors[0].Exp == 1 {
			fmt.Printf("%d! + 1 = %v is prime\n", ns[0], v)
			return nil
		}
		fmt.Printf("%d! + 1 = %v\n", ns[0], v)
		for _, f := range factors {
			fmt.Printf("  %v^%d\n", f.P, f.Exp)
		}
		return nil
	},
}

var totientCmd = &cobra.Command{
	Use:   "totient n...",
	Short: "compute the Euler totient and compare both evaluation methods.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make([]int64, len(args))
		for i, arg := range args {
			ns, err := parseInts(arg)
			if err != nil {
				return err
			}
			values[i] = int64(ns[0])
		}
		timings := primes.ComparePhi(values)
		for _, t := range timings {
			fmt.Printf("phi(%d) = %d (direct %v, factored %v)\n",
				t.N, t.Phi, t.Direct, t.Factored)
		}
		if summary, err := primes.RatioSummary(primes.Speedups(timings)); err == nil {
			fmt.Printf("speedup: mean %.2fx, median %.2fx, stddev %.2f\n",
				summary.Mean, summary.Median, summary.StdDev)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(circularCmd)
	rootCmd.AddCommand(palindromicCmd)
	rootCmd.AddCommand(twinsCmd)
	rootCmd.AddCommand(twoDigitCmd)
	rootCmd.AddCommand(factorialCmd)
	rootCmd.AddCommand(totientCmd)
}
