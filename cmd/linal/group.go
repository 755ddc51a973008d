package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mishanya000/Linal-Lab/group"
)

var unitsCmd = &cobra.Command{
	Use:   "units m",
	Short: "list the units modulo m and the generators of the unit group.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ns, err := parseInts(args[0])
		if err != nil {
			return err
		}
		m := ns[0]
		units := group.Units(m)
		fmt.Printf("Z_%d^* has %d elements: %v\n", m, len(units), units)
		gens := group.Generators(m)
		if len(gens) == 0 {
			fmt.Printf("Z_%d^* is not cyclic\n", m)
			return nil
		}
		fmt.Printf("generators: %v\n", gens)
		return nil
	},
}

var orderCmd = &cobra.Command{
	Use:   "order a m",
	Short: "compute the multiplicative order of a modulo m.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		as, err := parseInts(args[0])
		if err != nil {
			return err
		}
		ms, err := parseInts(args[1])
		if err != nil {
			return err
		}
		order, err := group.OrderMod(as[0], ms[0])
		if err != nil {
			return err
		}
		fmt.Printf("ord(%d mod %d) = %d\n", as[0], ms[0], order)

		sub, err := group.CyclicSubgroup(as[0], ms[0])
		if err != nil {
			return err
		}
		fmt.Printf("<%d> = %v\n", as[0], sub)
		return nil
	},
}

var primitiveCmd = &cobra.Command{
	Use:   "primitive t p",
	Short: "test whether t is a primitive element of the prime field F_p.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := parseInts(args[0])
		if err != nil {
			return err
		}
		ps, err := parseInts(args[1])
		if err != nil {
			return err
		}
		order, primitive, err := group.IsPrimitive(ts[0], ps[0])
		if err != nil {
			return err
		}
		fmt.Printf("ord(%d mod %d) = %d, primitive: %v\n", ts[0], ps[0], order, primitive)
		return nil
	},
}

var symmetricCmd = &cobra.Command{
	Use:   "symmetric n [k]",
	Short: "list S_n in cycle notation, or only its elements of order k.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ns, err := parseInts(args[0])
		if err != nil {
			return err
		}
		perms := group.Symmetric(ns[0])
		if len(args) == 2 {
			ks, err := parseInts(args[1])
			if err != nil {
				return err
			}
			perms = group.OfOrder(ns[0], ks[0])
			fmt.Printf("%d elements of S_%d have order %d:\n", len(perms), ns[0], ks[0])
		} else {
			fmt.Printf("S_%d has %d elements:\n", ns[0], len(perms))
		}
		for _, p := range perms {
			fmt.Printf("  %v\n", p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(primitiveCmd)
	rootCmd.AddCommand(symmetricCmd)
}
