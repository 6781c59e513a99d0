package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"rewards/internal/domain/service"

	"github.com/pkg/errors"
)

// createTransactionRequest is the body of POST {endpoint}/transactions.
type createTransactionRequest struct {
	Amount        int64                  `json:"amount"`
	Currency      string                 `json:"currency"`
	Reference     string                 `json:"reference"`
	CallbackURL   string                 `json:"callback_url"`
	PaymentMethod string                 `json:"payment_method,omitempty"`
	Contact       service.PaymentContact `json:"contact"`
}

type createTransactionResponse struct {
	Reference   string            `json:"reference"`
	RedirectURL string            `json:"redirect_url"`
	FormFields  map[string]string `json:"form_fields,omitempty"`
}

type gatewayErrorResponse struct {
	Message string `json:"message"`
}

// httpGateway talks to a JSON payment API authenticated with a bearer API key
type httpGateway struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPGateway creates a gateway client for the given API base URL
func NewHTTPGateway(endpoint, apiKey string, timeout time.Duration, logger *slog.Logger) service.PaymentGateway {
	return &httpGateway{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// CreateTransaction registers the payment and returns where the user completes it
func (g *httpGateway) CreateTransaction(ctx context.Context, req *service.PaymentRequest) (*service.PaymentRedirect, error) {
	body, err := json.Marshal(createTransactionRequest{
		Amount:        req.Amount,
		Currency:      req.Currency,
		Reference:     req.Reference,
		CallbackURL:   req.CallbackURL,
		PaymentMethod: req.Method,
		Contact:       req.Contact,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+"/transactions", bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if g.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	}
	// The order number makes retries of the same claim idempotent on the gateway side.
	httpReq.Header.Set("Idempotency-Key", req.Reference)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "payment gateway request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var gwErr gatewayErrorResponse
		_ = json.Unmarshal(raw, &gwErr)

		g.logger.Warn("[PaymentGateway] Transaction rejected",
			slog.String("reference", req.Reference),
			slog.Int("status", resp.StatusCode),
			slog.String("message", gwErr.Message),
		)

		return nil, errors.Errorf("payment gateway returned status %d: %s", resp.StatusCode, gwErr.Message)
	}

	var out createTransactionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode payment gateway response")
	}

	if out.Reference == "" {
		return nil, errors.New("payment gateway returned no reference")
	}

	return &service.PaymentRedirect{
		GatewayReference: out.Reference,
		RedirectURL:      out.RedirectURL,
		FormFields:       out.FormFields,
	}, nil
}
