package main

import (
	"github.com/bigcore/bignum/internal/config"
	"github.com/spf13/cobra"
)

var cfg config.Config

func newRootCmd() *cobra.Command {
	cfg = config.Load()

	root := &cobra.Command{
		Use:   "bignum",
		Short: "Arbitrary-precision signed integer arithmetic from the command line",
	}

	root.AddCommand(
		newAddCmd(), newSubCmd(), newMulCmd(), newDivCmd(), newModCmd(), newPowCmd(),
		newGCDCmd(), newLCMCmd(), newSqrtCmd(), newFactorialCmd(), newModPowCmd(),
		newIsPrimeCmd(), newNextPrimeCmd(),
		newAndCmd(), newOrCmd(), newXorCmd(), newNotCmd(), newShlCmd(), newShrCmd(),
		newRandomCmd(), newRandomRangeCmd(),
	)
	return root
}
