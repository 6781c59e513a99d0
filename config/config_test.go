package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loadTestConfig struct {
	Service struct {
		Port    int           `yaml:"port"`
		Timeout time.Duration `yaml:"timeout"`
		Name    string        `yaml:"name"`
	} `yaml:"service"`
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := "service:\n  port: 8080\n  timeout: 5s\n  name: rewards\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte(content), 0o600))

	t.Chdir(dir)
	t.Setenv("SERVICE_PORT", "9090")

	cfg, err := LoadWithEnv[loadTestConfig]("app")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Service.Port)
	assert.Equal(t, 5*time.Second, cfg.Service.Timeout)
	assert.Equal(t, "rewards", cfg.Service.Name)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[loadTestConfig]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{Metrics: &MetricsConfig{Enabled: true}}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultClaimTimeout, cfg.Offers.ClaimTimeout)
	assert.Equal(t, defaultSweepBatchSize, cfg.Offers.SweepBatchSize)
	assert.Equal(t, defaultCurrency, cfg.Offers.Currency)
	assert.Equal(t, defaultMissionTimezone, cfg.Missions.Timezone)
	assert.Equal(t, defaultPaymentTimeout, cfg.Payment.Timeout)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
	assert.NotNil(t, cfg.Snowflake)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Offers:   &OffersConfig{ClaimTimeout: time.Minute, SweepBatchSize: 5, Currency: "SGD"},
		Missions: &MissionsConfig{Timezone: "Asia/Kuala_Lumpur"},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, time.Minute, cfg.Offers.ClaimTimeout)
	assert.Equal(t, 5, cfg.Offers.SweepBatchSize)
	assert.Equal(t, "SGD", cfg.Offers.Currency)
	assert.Equal(t, "Asia/Kuala_Lumpur", cfg.Missions.Timezone)
}
