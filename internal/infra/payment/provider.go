// Package payment provides the fiat payment gateway clients.
package payment

import (
	"log/slog"

	"rewards/config"
	"rewards/internal/domain/constants"
	"rewards/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GatewayParams holds dependencies for PaymentGateway, injected by Fx
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPaymentGateway creates the configured gateway. Without configuration the sandbox is used.
func NewPaymentGateway(params GatewayParams) (service.PaymentGateway, error) {
	cfg := params.Config.Payment
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PaymentProviderSandbox {
		if params.Config.Env.Env == constants.EnvProduction {
			logger.Warn("Sandbox payment gateway in production, fiat claims will never be charged")
		}

		return NewSandboxGateway(logger), nil
	}

	switch cfg.Provider {
	case constants.PaymentProviderHTTP:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http payment provider")
		}
		logger.Info("Using HTTP payment gateway", slog.String("endpoint", cfg.Endpoint))

		return NewHTTPGateway(cfg.Endpoint, cfg.APIKey, cfg.Timeout, logger), nil

	default:
		return nil, errors.Errorf("unknown payment provider: %s", cfg.Provider)
	}
}

// Module provides the payment FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPaymentGateway),
)
