// Package config loads tool configuration for astgen from file, environment
// and defaults. The generation core itself consumes none of this; it only
// shapes the CLI shell (output directory, formatter, grammar file).
package config

import "errors"

// ErrEmptyOutput is returned when the output directory is set to an empty
// string.
var ErrEmptyOutput = errors.New("output directory must not be empty")

// ErrEmptyFormatter is returned when formatting is enabled but no formatter
// binary is configured.
var ErrEmptyFormatter = errors.New("formatter must not be empty when format is enabled")

// Config is the top-level configuration struct for astgen.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Output      string `mapstructure:"output"`
	Formatter   string `mapstructure:"formatter"`
	Format      bool   `mapstructure:"format"`
	GrammarFile string `mapstructure:"grammar_file"`
}

// Validate checks the configuration for values that can never work.
func (c *Config) Validate() error {
	if c.Output == "" {
		return ErrEmptyOutput
	}

	if c.Format && c.Formatter == "" {
		return ErrEmptyFormatter
	}

	return nil
}
