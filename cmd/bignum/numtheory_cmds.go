package main

import (
	"fmt"

	"github.com/bigcore/bignum"
	"github.com/spf13/cobra"
)

func newGCDCmd() *cobra.Command { return twoOperandCmd("gcd", "Greatest common divisor", bignum.GCD) }
func newLCMCmd() *cobra.Command { return twoOperandCmd("lcm", "Least common multiple", bignum.LCM) }

func newSqrtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sqrt <n>",
		Short: "Integer square root (floor)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			cmd.Println(bignum.ToString(bignum.Sqrt(n), cfg.DefaultBase))
			return nil
		},
	}
}

func newFactorialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factorial <n>",
		Short: "Factorial of a non-negative 32-bit integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n uint32
			if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil {
				return fmt.Errorf("parsing %q: %w", args[0], err)
			}
			cmd.Println(bignum.ToString(bignum.Factorial(n), cfg.DefaultBase))
			return nil
		},
	}
}

func newModPowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modpow <base> <exp> <mod>",
		Short: "Modular exponentiation",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			exp, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			m, err := parseOperand(args[2])
			if err != nil {
				return err
			}
			cmd.Println(bignum.ToString(bignum.ModPow(base, exp, m), cfg.DefaultBase))
			return nil
		},
	}
}

func newIsPrimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isprime <n>",
		Short: "Deterministic primality test (trial division)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			cmd.Println(bignum.IsPrime(n, 0))
			return nil
		},
	}
}

func newNextPrimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nextprime <n>",
		Short: "Smallest odd prime >= n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			cmd.Println(bignum.ToString(bignum.NextPrime(n), cfg.DefaultBase))
			return nil
		},
	}
}
