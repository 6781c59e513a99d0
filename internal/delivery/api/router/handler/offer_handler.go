package handler

import (
	"log/slog"
	"net/http"

	"rewards/internal/delivery/api/response"
	deliverycontext "rewards/internal/delivery/context"
	"rewards/internal/domain/entity"
	"rewards/internal/domain/service"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	ClaimUC      usecase.ClaimUsecase
	RedemptionUC usecase.RedemptionUsecase
	VoucherUC    usecase.VoucherUsecase
	Logger       *slog.Logger
}

// OfferHandler serves claim, cancel, redeem and the user's claimed offers
type OfferHandler struct {
	claimUC      usecase.ClaimUsecase
	redemptionUC usecase.RedemptionUsecase
	voucherUC    usecase.VoucherUsecase
	logger       *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		claimUC:      params.ClaimUC,
		redemptionUC: params.RedemptionUC,
		voucherUC:    params.VoucherUC,
		logger:       params.Logger,
	}
}

// ClaimRequest represents the request body for claiming an offer
type ClaimRequest struct {
	OfferID           uuid.UUID               `json:"offer_id" validate:"required"`
	Quantity          int64                   `json:"quantity"`
	PaymentMethod     string                  `json:"payment_method" validate:"required,oneof=points fiat"`
	FiatPaymentMethod string                  `json:"fiat_payment_method" validate:"required_if=PaymentMethod fiat"`
	Contact           *service.PaymentContact `json:"contact,omitempty"`
}

// ClaimResponseBody is the body of a successful claim
type ClaimResponseBody struct {
	Message string                 `json:"message"`
	Offer   *OfferResponse         `json:"offer"`
	Claim   *ClaimResponse         `json:"claim"`
	Payment *usecase.PaymentOutput `json:"payment,omitempty"`
	Meta    *response.MetaInfo     `json:"meta"`
}

// CancelRequest represents the request body for cancelling an unpaid claim
type CancelRequest struct {
	MerchantOfferID uuid.UUID `json:"merchant_offer_id" validate:"required"`
}

// RedeemRequest represents the request body for redeeming a claim
type RedeemRequest struct {
	ClaimID    uuid.UUID `json:"claim_id" validate:"required"`
	OfferID    uuid.UUID `json:"offer_id" validate:"required"`
	RedeemCode string    `json:"redeem_code" validate:"required"`
	Quantity   int64     `json:"quantity"`
}

// Claim handles POST /offers/claim
func (h *OfferHandler) Claim(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ClaimRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid claim input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := &usecase.ClaimInput{
		OfferID:           req.OfferID,
		UserID:            userID,
		Quantity:          req.Quantity,
		PaymentMethod:     entity.PaymentMethod(req.PaymentMethod),
		FiatPaymentMethod: req.FiatPaymentMethod,
	}
	if req.Contact != nil {
		input.Contact = *req.Contact
	}

	out, err := h.claimUC.Claim(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Offer claimed successfully"
	if out.Payment != nil {
		message = "Complete the payment to receive your voucher"
	}

	return c.JSON(http.StatusOK, ClaimResponseBody{
		Message: message,
		Offer:   newOfferResponse(out.Offer),
		Claim:   newClaimResponse(out.Claim),
		Payment: out.Payment,
		Meta:    response.NewMeta(c),
	})
}

// Cancel handles POST /offers/cancel
func (h *OfferHandler) Cancel(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cancel input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.claimUC.Cancel(c.Request().Context(), req.MerchantOfferID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Claim cancelled")
}

// Redeem handles POST /offers/redeem
func (h *OfferHandler) Redeem(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RedeemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid redeem input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	_, err := h.redemptionUC.Redeem(c.Request().Context(), &usecase.RedeemInput{
		ClaimID:    req.ClaimID,
		OfferID:    req.OfferID,
		RedeemCode: req.RedeemCode,
		Quantity:   req.Quantity,
		ActorID:    userID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Redeemed Successfully")
}

// MyClaimedOffers handles GET /offers/my_claimed_offers
func (h *OfferHandler) MyClaimedOffers(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, limit, window := pageQuery(c)

	rows, total, err := h.claimUC.MyClaimedOffers(c.Request().Context(), userID, window)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	data := make([]*ClaimedOfferResponse, 0, len(rows))
	for _, row := range rows {
		data = append(data, newClaimedOfferResponse(row))
	}

	return response.Paged(c, data, total, page, limit)
}

// VoucherQR handles GET /offers/claims/:id/qr
func (h *OfferHandler) VoucherQR(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	claimID, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid claim ID")
	}

	png, err := h.voucherUC.VoucherQR(c.Request().Context(), userID, claimID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=voucher-qr.png")
	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
