package main

import (
	"fmt"

	"github.com/bigcore/bignum"
	"github.com/spf13/cobra"
)

func newAndCmd() *cobra.Command { return twoOperandCmd("and", "Bitwise AND on magnitudes", bignum.And) }
func newOrCmd() *cobra.Command  { return twoOperandCmd("or", "Bitwise OR on magnitudes", bignum.Or) }
func newXorCmd() *cobra.Command { return twoOperandCmd("xor", "Bitwise XOR on magnitudes", bignum.Xor) }

func newNotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "not <x>",
		Short: "Bitwise NOT on the magnitude (extends by one limb; see docs)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			cmd.Println(bignum.ToString(bignum.Not(x), cfg.DefaultBase))
			return nil
		},
	}
}

func shiftCmd(use, short string, op func(x *bignum.BigInt, k uint) *bignum.BigInt) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <x> <bits>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			var k uint
			if _, err := fmt.Sscanf(args[1], "%d", &k); err != nil {
				return fmt.Errorf("parsing shift amount %q: %w", args[1], err)
			}
			cmd.Println(bignum.ToString(op(x, k), cfg.DefaultBase))
			return nil
		},
	}
}

func newShlCmd() *cobra.Command { return shiftCmd("shl", "Logical left shift", bignum.ShiftLeft) }
func newShrCmd() *cobra.Command { return shiftCmd("shr", "Logical right shift", bignum.ShiftRight) }
