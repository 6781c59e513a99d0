package handler

import (
	"log/slog"
	"net/http"

	"rewards/internal/delivery/api/response"
	deliverycontext "rewards/internal/delivery/context"
	"rewards/internal/domain/entity"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	VoucherUC usecase.VoucherUsecase
	MissionUC usecase.MissionUsecase
	PointUC   usecase.PointUsecase
	Logger    *slog.Logger
}

// AdminHandler serves operator actions
type AdminHandler struct {
	voucherUC usecase.VoucherUsecase
	missionUC usecase.MissionUsecase
	pointUC   usecase.PointUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		voucherUC: params.VoucherUC,
		missionUC: params.MissionUC,
		pointUC:   params.PointUC,
		logger:    params.Logger,
	}
}

// RearmRequest names the user whose mission progress is re-armed
type RearmRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// CreditRequest represents a manual points adjustment
type CreditRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Amount  int64     `json:"amount"`
	Remarks string    `json:"remarks" validate:"max=255"`
}

// VoidVoucher handles POST /admin/vouchers/:id/void
func (h *AdminHandler) VoidVoucher(c echo.Context) error {
	voucherID, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid voucher ID")
	}

	if err := h.voucherUC.Void(c.Request().Context(), voucherID); err != nil {
		return response.HandleAppError(c, err)
	}

	actorID, _ := deliverycontext.GetUserID(c)
	h.logger.Info("Voucher voided",
		slog.String("voucherID", voucherID.String()),
		slog.String("actorID", actorID.String()),
	)

	return response.Message(c, http.StatusOK, "Voucher voided")
}

// RearmMission handles POST /admin/missions/:id/rearm
func (h *AdminHandler) RearmMission(c echo.Context) error {
	missionID, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid mission ID")
	}

	var req RearmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid rearm input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.missionUC.Rearm(c.Request().Context(), req.UserID, missionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Mission re-armed")
}

// CreditPoints handles POST /admin/points/credit
func (h *AdminHandler) CreditPoints(c echo.Context) error {
	actorID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreditRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid credit input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	remarks := req.Remarks
	if remarks == "" {
		remarks = "manual adjustment"
	}

	// The acting operator is recorded as the reference of the adjustment
	entry, err := h.pointUC.Credit(c.Request().Context(), &usecase.LedgerInput{
		UserID:    req.UserID,
		Amount:    req.Amount,
		Reference: entity.LedgerReference{Type: entity.ReferenceAdjustment, ID: actorID},
		Remarks:   remarks,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPointEntryResponse(entry))
}
