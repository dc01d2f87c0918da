package main

import (
	"fmt"
	"math/rand"

	"github.com/bigcore/bignum"
	"github.com/spf13/cobra"
)

func newRandomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random <bits>",
		Short: "Uniformly random non-negative integer below 2^bits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bits uint
			if _, err := fmt.Sscanf(args[0], "%d", &bits); err != nil {
				return fmt.Errorf("parsing bit length %q: %w", args[0], err)
			}
			rnd := rand.New(rand.NewSource(cfg.RandomSeed))
			cmd.Println(bignum.ToString(bignum.Random(bits, rnd), cfg.DefaultBase))
			return nil
		},
	}
}

func newRandomRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random-range <min> <max>",
		Short: "Uniformly random integer in [min, max)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			min, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			max, err := parseOperand(args[1])
			if err != nil {
				return err
			}
			rnd := rand.New(rand.NewSource(cfg.RandomSeed))
			v, err := bignum.RandomRange(min, max, rnd, cfg.Options())
			if err != nil {
				logger.Errorw("random_range exhausted", "min", min.String(), "max", max.String())
				return err
			}
			cmd.Println(bignum.ToString(v, cfg.DefaultBase))
			return nil
		},
	}
}
