package handler

import (
	"log/slog"
	"net/http"

	"rewards/internal/delivery/api/response"
	deliverycontext "rewards/internal/delivery/context"
	"rewards/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PointHandlerParams holds dependencies for PointHandler, injected by Fx.
type PointHandlerParams struct {
	fx.In

	PointUC     usecase.PointUsecase
	ComponentUC usecase.ComponentUsecase
	Logger      *slog.Logger
}

// PointHandler serves the points and component ledgers of the caller
type PointHandler struct {
	pointUC     usecase.PointUsecase
	componentUC usecase.ComponentUsecase
	logger      *slog.Logger
}

// NewPointHandler is the constructor for PointHandler
func NewPointHandler(params PointHandlerParams) *PointHandler {
	return &PointHandler{
		pointUC:     params.PointUC,
		componentUC: params.ComponentUC,
		logger:      params.Logger,
	}
}

// CombineRequest represents the request body for converting components into points
type CombineRequest struct {
	RecipeID uuid.UUID `json:"recipe_id" validate:"required"`
}

// Balance handles GET /points/balance
func (h *PointHandler) Balance(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	balance, err := h.pointUC.BalanceOf(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"balance": balance})
}

// History handles GET /points/history
func (h *PointHandler) History(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, limit, window := pageQuery(c)

	entries, total, err := h.pointUC.History(c.Request().Context(), userID, window)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	data := make([]*LedgerEntryResponse, 0, len(entries))
	for _, entry := range entries {
		data = append(data, newPointEntryResponse(entry))
	}

	return response.Paged(c, data, total, page, limit)
}

// Components handles GET /points/components
func (h *PointHandler) Components(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	balances, err := h.componentUC.ListBalances(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	data := make([]*ComponentBalanceResponse, 0, len(balances))
	for _, balance := range balances {
		data = append(data, &ComponentBalanceResponse{
			ComponentID: balance.Component.ID,
			Code:        balance.Component.Code,
			Name:        balance.Component.Name,
			Balance:     balance.Balance,
		})
	}

	return response.Success(c, http.StatusOK, data)
}

// Combine handles POST /points/components/combine
func (h *PointHandler) Combine(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CombineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid combine input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	out, err := h.componentUC.Combine(c.Request().Context(), userID, req.RecipeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCombineResponse(out))
}
