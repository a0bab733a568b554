// Package config holds the tool configuration, loaded through Viper
// from defaults, an optional ts2scala.toml and TS2SCALA_* environment
// variables.
package config

import "fmt"

// Config is the full tool configuration
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Batch  BatchConfig  `mapstructure:"batch"`
}

// OutputConfig controls emitted file naming and package derivation
type OutputConfig struct {
	// Suffix replaces the declaration-file suffix on emitted files
	Suffix string `mapstructure:"suffix"`
	// PackagePrefix is prepended (dotted) to every derived package name
	PackagePrefix string `mapstructure:"package_prefix"`
}

// BatchConfig controls the batch driver and watch mode
type BatchConfig struct {
	// InputSuffix selects which files the batch walk converts
	InputSuffix string `mapstructure:"input_suffix"`
	// WatchDebounceMs coalesces rapid write events on the same file
	WatchDebounceMs int `mapstructure:"watch_debounce_ms"`
}

// PackageFor applies the configured prefix to a derived package name
func (c *Config) PackageFor(derived string) string {
	if c.Output.PackagePrefix == "" {
		return derived
	}
	if derived == "" {
		return c.Output.PackagePrefix
	}
	return c.Output.PackagePrefix + "." + derived
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Output: {Suffix: %s, PackagePrefix: %s}, Batch: {InputSuffix: %s}}",
		c.Output.Suffix, c.Output.PackagePrefix, c.Batch.InputSuffix)
}
