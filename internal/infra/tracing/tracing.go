// Package tracing configures the OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"log/slog"

	"rewards/config"
	"rewards/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
)

const defaultServiceName = "rewards"

// ProviderParams holds dependencies for the tracer provider, injected by Fx
type ProviderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Setup installs a Jaeger-backed tracer provider as the global one.
// When tracing is disabled the global no-op provider stays in place.
func Setup(params ProviderParams) error {
	cfg := params.Config.Tracing
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Tracing disabled")

		return nil
	}

	provider, err := NewProvider(params.Config)
	if err != nil {
		return err
	}

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	params.Logger.Info("Tracing enabled",
		slog.String("endpoint", cfg.Endpoint),
		slog.Float64("sample_ratio", cfg.SampleRatio),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(provider.Shutdown(shutdownCtx))
		},
	})

	return nil
}

// NewProvider builds the tracer provider without installing it.
func NewProvider(cfg *config.Config) (*tracesdk.TracerProvider, error) {
	if cfg.Tracing == nil || cfg.Tracing.Endpoint == "" {
		return nil, errors.New("tracing endpoint is required")
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.Tracing.Endpoint)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Jaeger exporter")
	}

	serviceName := cfg.Env.ServiceName
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("deployment.environment", cfg.Env.Env),
	)

	return tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exporter),
		tracesdk.WithResource(res),
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(sampleRatio(cfg.Tracing.SampleRatio)))),
	), nil
}

func sampleRatio(ratio float64) float64 {
	if ratio <= 0 || ratio > 1 {
		return 1
	}

	return ratio
}

// Module provides the tracing FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Invoke(Setup),
)
