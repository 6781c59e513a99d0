package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"rewards/config"
	"rewards/internal/delivery/api/response"
	"rewards/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderCallbackToken carries the shared secret on gateway callbacks
const HeaderCallbackToken = "X-Callback-Token"

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	ClaimUC usecase.ClaimUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// PaymentHandler receives payment gateway callbacks
type PaymentHandler struct {
	claimUC usecase.ClaimUsecase
	secret  string
	logger  *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	var secret string
	if params.Config.Payment != nil {
		secret = params.Config.Payment.CallbackSecret
	}

	return &PaymentHandler{
		claimUC: params.ClaimUC,
		secret:  secret,
		logger:  params.Logger,
	}
}

// CallbackRequest is the gateway's notification of a payment outcome
type CallbackRequest struct {
	Reference string `json:"gateway_reference" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

// Callback handles POST /payments/callback
func (h *PaymentHandler) Callback(c echo.Context) error {
	if !h.authorized(c.Request().Header.Get(HeaderCallbackToken)) {
		h.logger.Warn("Rejected payment callback with invalid token",
			slog.String("remote_ip", c.RealIP()),
		)

		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid callback token")
	}

	var req CallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid callback payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	claim, err := h.claimUC.ConfirmPayment(c.Request().Context(), &usecase.PaymentConfirmation{
		GatewayReference: req.Reference,
		Success:          isPaid(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newClaimResponse(claim))
}

// authorized compares in constant time; an unset secret rejects every callback.
func (h *PaymentHandler) authorized(token string) bool {
	if h.secret == "" || token == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}

func isPaid(status string) bool {
	switch strings.ToUpper(status) {
	case "SUCCESS", "PAID", "SETTLED":
		return true
	default:
		return false
	}
}
