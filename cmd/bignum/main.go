// Command bignum is a CLI front end over the bignum library: a cobra root
// command with one RunE-bearing subcommand per exposed operation
// (arithmetic, number theory, bitwise and shifts, random). Comparison,
// negate/abs, extended GCD and the fixed-width conversions have no
// subcommand.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

func main() {
	l, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bignum: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer l.Sync()
	logger = l.Sugar()

	if err := newRootCmd().Execute(); err != nil {
		logger.Errorw("command failed", "error", err)
		os.Exit(1)
	}
}
