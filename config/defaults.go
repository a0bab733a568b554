package config

import "github.com/spf13/viper"

// DefaultInputSuffix is the declaration-file suffix the batch walk
// converts.
const DefaultInputSuffix = ".d.ts"

// DefaultOutputSuffix replaces the input suffix on emitted files.
const DefaultOutputSuffix = ".scala"

// DefaultWatchDebounceMs coalesces bursts of write events from editors
// that save in multiple syscalls.
const DefaultWatchDebounceMs = 200

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.suffix", DefaultOutputSuffix)
	v.SetDefault("output.package_prefix", "")

	v.SetDefault("batch.input_suffix", DefaultInputSuffix)
	v.SetDefault("batch.watch_debounce_ms", DefaultWatchDebounceMs)
}
