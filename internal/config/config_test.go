package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-marketing-service/internal/core/domain"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MODEL_URI", "https://example.com/model.zip")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "model", cfg.Model.TargetDir)
	assert.Equal(t, 0.5, cfg.Model.DecisionThreshold)
	assert.Equal(t, 60*time.Second, cfg.Model.FetchTimeout)
	assert.Equal(t, 3, cfg.Model.FetchMaxAttempts)
	assert.False(t, cfg.Model.ForceResolve)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_MissingLocatorFailsFast(t *testing.T) {
	t.Setenv("MODEL_URI", "")

	_, err := Load()

	assert.ErrorIs(t, err, domain.ErrMissingModelLocator)
}

func TestLoad_InvalidThresholdRejected(t *testing.T) {
	t.Setenv("MODEL_URI", "https://example.com/model.zip")
	t.Setenv("DECISION_THRESHOLD", "1.5")

	_, err := Load()

	assert.ErrorIs(t, err, domain.ErrInvalidThreshold)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MODEL_URI", "/srv/models/bank")
	t.Setenv("MODEL_DIR", "/var/lib/predictor/model")
	t.Setenv("DECISION_THRESHOLD", "0.35")
	t.Setenv("FETCH_TIMEOUT", "2m")
	t.Setenv("FETCH_MAX_ATTEMPTS", "5")
	t.Setenv("DATABASE_ENABLED", "true")
	t.Setenv("DATABASE_NAME", "audit")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/models/bank", cfg.Model.Locator)
	assert.Equal(t, "/var/lib/predictor/model", cfg.Model.TargetDir)
	assert.Equal(t, 0.35, cfg.Model.DecisionThreshold)
	assert.Equal(t, 2*time.Minute, cfg.Model.FetchTimeout)
	assert.Equal(t, 5, cfg.Model.FetchMaxAttempts)
	assert.True(t, cfg.Database.Enabled)
	assert.Contains(t, cfg.Database.DSN(), "/audit?")
}

func TestLoad_BadFetchTimeoutFallsBack(t *testing.T) {
	t.Setenv("MODEL_URI", "https://example.com/model.zip")
	t.Setenv("FETCH_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 60*time.Second, cfg.Model.FetchTimeout)
}
