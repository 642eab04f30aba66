package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/inventory/pkg/domain/services"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, services.DefaultABCThresholds(), cfg.Analysis.Thresholds())
	assert.Equal(t, services.DefaultTopN, cfg.Analysis.TopN)
	assert.Equal(t, 30, cfg.Analysis.Periods)
	assert.Equal(t, 0, cfg.Analysis.SeasonalPeriods)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("INVENTORY_ANALYSIS_TOP_N", "3")
	t.Setenv("INVENTORY_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Analysis.TopN)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_FileOverridesEnvironment(t *testing.T) {
	t.Setenv("INVENTORY_ANALYSIS_PERIODS", "14")
	path := writeConfig(t, `
analysis:
  a_threshold: 0.7
  b_threshold: 0.9
  periods: 7
output:
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, services.ABCThresholds{A: 0.7, B: 0.9}, cfg.Analysis.Thresholds())
	assert.Equal(t, 7, cfg.Analysis.Periods)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, services.DefaultTopN, cfg.Analysis.TopN)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"b below a", "analysis:\n  a_threshold: 0.9\n  b_threshold: 0.8\n"},
		{"a out of range", "analysis:\n  a_threshold: 1.2\n"},
		{"b above one", "analysis:\n  b_threshold: 1.5\n"},
		{"zero top n", "analysis:\n  top_n: 0\n"},
		{"seasonal period of one", "analysis:\n  seasonal_periods: 1\n"},
		{"unknown format", "output:\n  format: pdf\n"},
		{"unknown log level", "logging:\n  level: trace\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			require.Error(t, err)

			var validationErrs validator.ValidationErrors
			assert.True(t, errors.As(err, &validationErrs), "expected validation errors, got %v", err)
		})
	}
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = Load(writeConfig(t, "analysis: [1, 2"))
	assert.ErrorContains(t, err, "failed to parse config file")
}
