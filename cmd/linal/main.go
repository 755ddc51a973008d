// Command linal is the demo entry point for the algebra lab suite. Every
// computation lives in the library packages; this binary only parses
// arguments, calls into them, and prints the results.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "linal",
	Short: "Exploratory routines in elementary and abstract algebra.",
	Long: "A toolbox of exploratory routines in elementary and abstract algebra:\n" +
		"ideal generators via the Euclidean algorithm over integers and polynomials,\n" +
		"Bezout coefficients and modular inverses over finite fields, prime searches,\n" +
		"the Euler totient, and cyclic/symmetric group queries.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}

// parseInts parses a comma-separated list of integers, e.g. "-1,0,1".
func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q in %q", p, s)
		}
		out[i] = v
	}
	return out, nil
}

// parseFloats parses a comma-separated list of rational coefficients.
func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q in %q", p, s)
		}
		out[i] = v
	}
	return out, nil
}
