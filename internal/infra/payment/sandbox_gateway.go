package payment

import (
	"context"
	"log/slog"
	"net/url"

	"rewards/internal/domain/service"

	"github.com/pkg/errors"
)

// sandboxBaseURL is where the sandbox pretends the checkout page lives.
const sandboxBaseURL = "https://sandbox.rewards.local/checkout"

// sandboxGateway accepts every transaction without leaving the process.
// Local runs confirm payments by calling the callback endpoint themselves.
type sandboxGateway struct {
	logger *slog.Logger
}

// NewSandboxGateway creates the development gateway
func NewSandboxGateway(logger *slog.Logger) service.PaymentGateway {
	return &sandboxGateway{logger: logger}
}

// CreateTransaction derives a deterministic reference from the order number
func (g *sandboxGateway) CreateTransaction(ctx context.Context, req *service.PaymentRequest) (*service.PaymentRedirect, error) {
	if req.Reference == "" {
		return nil, errors.New("payment reference is required")
	}
	if req.Amount <= 0 {
		return nil, errors.Errorf("invalid amount %d", req.Amount)
	}

	reference := "SBX-" + req.Reference
	query := url.Values{}
	query.Set("reference", reference)
	query.Set("callback", req.CallbackURL)

	g.logger.Info("[SandboxPayment] Transaction created",
		slog.String("reference", reference),
		slog.Int64("amount", req.Amount),
		slog.String("currency", req.Currency),
	)

	return &service.PaymentRedirect{
		GatewayReference: reference,
		RedirectURL:      sandboxBaseURL + "?" + query.Encode(),
		FormFields: map[string]string{
			"reference": reference,
			"method":    req.Method,
		},
	}, nil
}
