package main

import (
	"fmt"

	"github.com/bigcore/bignum"
	"github.com/spf13/cobra"
)

// parseOperand parses a command-line operand in the CLI's configured
// default base, logging and returning an error on parse failure.
func parseOperand(arg string) (*bignum.BigInt, error) {
	v, err := bignum.FromString(arg, cfg.DefaultBase)
	if err != nil {
		logger.Errorw("parse failure", "operand", arg, "base", cfg.DefaultBase)
		return nil, fmt.Errorf("parsing %q in base %d: %w", arg, cfg.DefaultBase, err)
	}
	return v, nil
}

func twoOperandCmd(use, short string, op func(a, b *bignum.BigInt) *bignum.BigInt) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			b, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			result := op(a, b)
			cmd.Println(bignum.ToString(result, cfg.DefaultBase))
			return nil
		},
	}
}

func newAddCmd() *cobra.Command { return twoOperandCmd("add", "Add two integers", bignum.Add) }
func newSubCmd() *cobra.Command { return twoOperandCmd("sub", "Subtract two integers", bignum.Sub) }
func newMulCmd() *cobra.Command { return twoOperandCmd("mul", "Multiply two integers", bignum.Mul) }
func newDivCmd() *cobra.Command {
	return twoOperandCmd("div", "Truncated-division quotient of two integers", bignum.Divide)
}
func newModCmd() *cobra.Command {
	return twoOperandCmd("mod", "Truncated-division remainder of two integers", bignum.Mod)
}

func newPowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow <base> <exp>",
		Short: "Raise an integer to a non-negative 32-bit power",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			var exp uint32
			if _, err := fmt.Sscanf(args[1], "%d", &exp); err != nil {
				return fmt.Errorf("parsing exponent %q: %w", args[1], err)
			}
			cmd.Println(bignum.ToString(bignum.Pow(base, exp), cfg.DefaultBase))
			return nil
		},
	}
}
