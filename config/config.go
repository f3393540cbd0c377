// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in .gwprime.yaml and those available from the command line.
// It is populated once at startup and read-only afterwards.
type Config struct {
	// the minimum acceptable primer melting temperature (Celsius)
	MinTm float64 `mapstructure:"min-tm"`

	// the maximum acceptable primer melting temperature (Celsius)
	MaxTm float64 `mapstructure:"max-tm"`

	// the maximum Tm difference between the primers of a pair (Celsius)
	MaxTmDiff float64 `mapstructure:"max-tm-diff"`

	// whether to keep only the pair(s) with the smallest Tm difference
	ClosestOnly bool `mapstructure:"closest"`

	// whether the insert is for an N-terminal fusion tag
	NTerminalFusion bool `mapstructure:"n-fusion"`

	// whether the insert is for a C-terminal fusion tag
	CTerminalFusion bool `mapstructure:"c-fusion"`

	// monovalent cation concentration (mM)
	Cation float64 `mapstructure:"cation"`

	// Mg2+ concentration (mM)
	Magnesium float64 `mapstructure:"magnesium"`

	// dNTP concentration (mM)
	DNTP float64 `mapstructure:"dntp"`

	// primer concentration (nM)
	Primer float64 `mapstructure:"primer"`

	// line width of the text report
	LineWidth int `mapstructure:"line-width"`

	// whether to write the text report to stdout
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by Viper settings: defaults
// first, then the local settings file (if there is one), then command
// line arguments.
func New() *Config {
	setDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into config: %v", err)
	}

	return &c
}

// setDefaults registers the default value for each setting with Viper.
func setDefaults() {
	viper.SetDefault("min-tm", 50.0)
	viper.SetDefault("max-tm", 75.0)
	viper.SetDefault("max-tm-diff", 5.0)
	viper.SetDefault("closest", false)
	viper.SetDefault("n-fusion", false)
	viper.SetDefault("c-fusion", false)
	viper.SetDefault("cation", 50.0)
	viper.SetDefault("magnesium", 1.5)
	viper.SetDefault("dntp", 0.2)
	viper.SetDefault("primer", 200.0)
	viper.SetDefault("line-width", 60)
	viper.SetDefault("verbose", false)
}
