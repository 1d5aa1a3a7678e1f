package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/normafin/fieldfusion/pkg/errors"
	"github.com/normafin/fieldfusion/pkg/source"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultAcceptanceThreshold, cfg.AcceptanceThreshold)
	assert.Equal(t, DefaultFuzzyThreshold, cfg.FuzzyThreshold)
	assert.Equal(t, 1.0, cfg.Weights["manual"])
	assert.Equal(t, 0.9, cfg.Weights["xml"])
	assert.Equal(t, 0.8, cfg.Weights["freetext"])
	assert.Equal(t, 0.7, cfg.Weights["scan"])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero threshold", func(c *Config) { c.AcceptanceThreshold = 0 }},
		{"threshold above one", func(c *Config) { c.AcceptanceThreshold = 1.5 }},
		{"negative weight", func(c *Config) { c.Weights["xml"] = -0.1 }},
		{"weight above one", func(c *Config) { c.Weights["xml"] = 1.2 }},
		{"fuzzy threshold above 100", func(c *Config) { c.FuzzyThreshold = 150 }},
		{"non-positive max length", func(c *Config) { c.MaxLengths["nombre"] = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
		})
	}
}

func TestOriginWeights(t *testing.T) {
	cfg := Default()
	weights := cfg.OriginWeights()

	assert.Equal(t, 1.0, weights[source.Manual])
	assert.Equal(t, 0.9, weights[source.XML])
	assert.Equal(t, 0.7, weights[source.OpticalScan])

	cfg.Weights = map[string]float64{"xml": 0.5}
	weights = cfg.OriginWeights()
	assert.Equal(t, 0.5, weights[source.XML])
	assert.Zero(t, weights[source.Manual], "origins absent from the table get weight zero")
}

func TestMaxLength(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 150, cfg.MaxLength("nombre"))
	assert.Equal(t, DefaultMaxTextLength, cfg.MaxLength("sin_limite_propio"))
}

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, DefaultAcceptanceThreshold, cfg.AcceptanceThreshold)
	assert.Equal(t, 0.9, cfg.Weights["xml"])
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldfusion.yaml")
	content := "acceptance_threshold: 0.6\nfuzzy_threshold: 90\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.6, cfg.AcceptanceThreshold)
	assert.Equal(t, 90, cfg.FuzzyThreshold)
	assert.Equal(t, 0.9, cfg.Weights["xml"], "file values layer over defaults")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldfusion.yaml")
	require.NoError(t, os.WriteFile(path, []byte("acceptance_threshold: 2.0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}
