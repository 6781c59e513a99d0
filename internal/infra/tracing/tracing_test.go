package tracing

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"rewards/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestSetup_Disabled(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	err := Setup(ProviderParams{
		Lc:     lc,
		Config: &config.Config{Tracing: &config.TracingConfig{Enabled: false}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	lc.RequireStart().RequireStop()
}

func TestNewProvider(t *testing.T) {
	_, err := NewProvider(&config.Config{Tracing: &config.TracingConfig{Enabled: true}})
	assert.Error(t, err)

	provider, err := NewProvider(&config.Config{Tracing: &config.TracingConfig{
		Enabled:     true,
		Endpoint:    "http://localhost:14268/api/traces",
		SampleRatio: 0.5,
	}})
	require.NoError(t, err)
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestSampleRatio(t *testing.T) {
	assert.InDelta(t, 1.0, sampleRatio(0), 1e-9)
	assert.InDelta(t, 1.0, sampleRatio(3), 1e-9)
	assert.InDelta(t, 0.25, sampleRatio(0.25), 1e-9)
}
