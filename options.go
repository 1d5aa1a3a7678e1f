package fieldfusion

import (
	"github.com/rs/zerolog"

	"github.com/normafin/fieldfusion/internal/config"
	"github.com/normafin/fieldfusion/pkg/errors"
	"github.com/normafin/fieldfusion/pkg/source"
)

// Option configures a Reconciler.
type Option func(*Reconciler) error

// WithConfigFile loads weights, thresholds, and length limits from a
// yaml file (plus FIELDFUSION_ environment overrides) instead of the
// built-in defaults.
func WithConfigFile(path string) Option {
	return func(r *Reconciler) error {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		r.cfg = cfg
		return nil
	}
}

// WithWeights overrides the per-origin reliability weight table.
func WithWeights(weights map[source.Origin]float64) Option {
	return func(r *Reconciler) error {
		for o, w := range weights {
			if w < 0 || w > 1 {
				return errors.NewConfigError("weights."+o.String(), w, "must be in [0,1]")
			}
			r.cfg.Weights[o.String()] = w
		}
		return nil
	}
}

// WithAcceptanceThreshold overrides the normalized weight share a
// voting group must reach for a WeightedVoting decision.
func WithAcceptanceThreshold(threshold float64) Option {
	return func(r *Reconciler) error {
		if threshold <= 0 || threshold > 1 {
			return errors.NewConfigError("acceptance_threshold", threshold, "must be in (0,1]")
		}
		r.cfg.AcceptanceThreshold = threshold
		return nil
	}
}

// WithFuzzyThreshold overrides the 0-100 similarity score at or above
// which two name-like values are considered the same.
func WithFuzzyThreshold(threshold int) Option {
	return func(r *Reconciler) error {
		if threshold < 0 || threshold > 100 {
			return errors.NewConfigError("fuzzy_threshold", threshold, "must be in [0,100]")
		}
		r.cfg.FuzzyThreshold = threshold
		return nil
	}
}

// WithMandatoryFields names the logical fields whose Conflict or
// AllSourcesNull decisions route the record to mandatory review.
func WithMandatoryFields(fields ...string) Option {
	return func(r *Reconciler) error {
		r.mandatory = append([]string(nil), fields...)
		return nil
	}
}

// WithLogger sets the logger used for audit and diagnostics.
func WithLogger(log *zerolog.Logger) Option {
	return func(r *Reconciler) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		r.log = log
		return nil
	}
}
