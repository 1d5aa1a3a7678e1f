// Package config loads the tunable policy values of the reconciliation
// core: per-origin reliability weights, the weighted-voting acceptance
// threshold, the fuzzy-match similarity threshold, and the bounded-text
// length limits. Values come from defaults, an optional yaml file, and
// FIELDFUSION_-prefixed environment variables, in ascending precedence.
// A loaded Config is never mutated after Load returns.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/normafin/fieldfusion/pkg/errors"
	"github.com/normafin/fieldfusion/pkg/source"
)

// Default policy values, tuned against review fixtures and overridable
// per deployment.
const (
	DefaultAcceptanceThreshold = 0.5
	DefaultFuzzyThreshold      = 85
	DefaultMaxTextLength       = 200
)

// Config holds the immutable policy configuration of the core.
type Config struct {
	// Weights maps origin names (xml, scan, freetext, derived, manual,
	// unknown) to reliability weights in [0,1].
	Weights map[string]float64 `mapstructure:"weights" yaml:"weights"`

	// AcceptanceThreshold is the normalized weight share a voting group
	// must reach for a WeightedVoting decision, in (0,1].
	AcceptanceThreshold float64 `mapstructure:"acceptance_threshold" yaml:"acceptance_threshold"`

	// FuzzyThreshold is the 0-100 similarity score at or above which two
	// name-like values are considered the same.
	FuzzyThreshold int `mapstructure:"fuzzy_threshold" yaml:"fuzzy_threshold"`

	// MaxLengths bounds free-text fields by field name. Fields without
	// an entry use DefaultMaxTextLength.
	MaxLengths map[string]int `mapstructure:"max_lengths" yaml:"max_lengths"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Weights: map[string]float64{
			source.Manual.String():      1.0,
			source.XML.String():         0.9,
			source.FreeText.String():    0.8,
			source.OpticalScan.String(): 0.7,
			source.Derived.String():     0.6,
			source.Unknown.String():     0.1,
		},
		AcceptanceThreshold: DefaultAcceptanceThreshold,
		FuzzyThreshold:      DefaultFuzzyThreshold,
		MaxLengths: map[string]int{
			"nombre":    150,
			"causa":     500,
			"autoridad": 200,
		},
	}
}

// Load reads configuration from the given file path (optional, "" skips
// the file) plus FIELDFUSION_ environment variables, on top of defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FIELDFUSION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("acceptance_threshold", defaults.AcceptanceThreshold)
	v.SetDefault("fuzzy_threshold", defaults.FuzzyThreshold)
	v.SetDefault("weights", defaults.Weights)
	v.SetDefault("max_lengths", defaults.MaxLengths)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("file", path, err.Error())
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.NewConfigError("file", path, err.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every policy value against its documented range.
func (c *Config) Validate() error {
	if c.AcceptanceThreshold <= 0 || c.AcceptanceThreshold > 1 {
		return errors.NewConfigError("acceptance_threshold", c.AcceptanceThreshold, "must be in (0,1]")
	}
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 100 {
		return errors.NewConfigError("fuzzy_threshold", c.FuzzyThreshold, "must be in [0,100]")
	}
	for name, w := range c.Weights {
		if w < 0 || w > 1 {
			return errors.NewConfigError("weights."+name, w, "must be in [0,1]")
		}
	}
	for name, max := range c.MaxLengths {
		if max <= 0 {
			return errors.NewConfigError("max_lengths."+name, max, "must be positive")
		}
	}
	return nil
}

// OriginWeights resolves the string-keyed weight table into a map keyed
// by origin. Origins absent from the table get weight 0.
func (c *Config) OriginWeights() map[source.Origin]float64 {
	weights := make(map[source.Origin]float64, len(source.Origins()))
	for _, o := range source.Origins() {
		weights[o] = c.Weights[o.String()]
	}
	return weights
}

// MaxLength returns the configured length limit for a field, falling
// back to DefaultMaxTextLength.
func (c *Config) MaxLength(field string) int {
	if max, ok := c.MaxLengths[field]; ok {
		return max
	}
	return DefaultMaxTextLength
}
