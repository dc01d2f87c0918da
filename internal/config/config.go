// Package config loads cmd/bignum's runtime-tunable parameters: the
// default numeric base, the PRNG seed, and the random_range retry
// budget, via viper.
package config

import (
	"github.com/bigcore/bignum"
	"github.com/spf13/viper"
)

// Config holds the CLI's runtime options.
type Config struct {
	DefaultBase            int
	RandomSeed             int64
	RandomRangeRetryBudget int
}

// Load reads BIGNUM_* environment variables (and an optional
// $HOME/.bignum.yaml, if present) into a Config, falling back to
// sensible defaults when unset.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("bignum")
	v.AutomaticEnv()
	v.SetConfigName(".bignum")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME")

	v.SetDefault("default_base", 10)
	v.SetDefault("random_seed", int64(1))
	v.SetDefault("random_range_retry_budget", bignum.DefaultOptions().RandomRangeRetryBudget)

	_ = v.ReadInConfig() // absence of a config file is not an error

	return Config{
		DefaultBase:            v.GetInt("default_base"),
		RandomSeed:             v.GetInt64("random_seed"),
		RandomRangeRetryBudget: v.GetInt("random_range_retry_budget"),
	}
}

// Options adapts Config to the bignum.Options the library expects.
func (c Config) Options() bignum.Options {
	return bignum.Options{RandomRangeRetryBudget: c.RandomRangeRetryBudget}
}
