package handler

import (
	"log/slog"
	"net/http"

	"rewards/internal/delivery/api/response"
	deliverycontext "rewards/internal/delivery/context"
	"rewards/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MissionHandlerParams holds dependencies for MissionHandler, injected by Fx.
type MissionHandlerParams struct {
	fx.In

	MissionUC usecase.MissionUsecase
	Logger    *slog.Logger
}

// MissionHandler serves mission progress and manual reward claims
type MissionHandler struct {
	missionUC usecase.MissionUsecase
	logger    *slog.Logger
}

// NewMissionHandler is the constructor for MissionHandler
func NewMissionHandler(params MissionHandlerParams) *MissionHandler {
	return &MissionHandler{
		missionUC: params.MissionUC,
		logger:    params.Logger,
	}
}

// MissionRewardResponse is the body of a successful manual reward claim
type MissionRewardResponse struct {
	Mission     *MissionResponse     `json:"mission"`
	PointsEntry *LedgerEntryResponse `json:"points_entry,omitempty"`
}

// List handles GET /missions
func (h *MissionHandler) List(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	views, err := h.missionUC.ListUserMissions(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	data := make([]*MissionResponse, 0, len(views))
	for _, view := range views {
		data = append(data, newMissionResponse(view.Mission, view.Progress))
	}

	return response.Success(c, http.StatusOK, data)
}

// Complete handles POST /missions/:id/complete
func (h *MissionHandler) Complete(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	missionID, ok := uuidParam(c, "id")
	if !ok {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid mission ID")
	}

	out, err := h.missionUC.CompleteMission(c.Request().Context(), userID, missionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MissionRewardResponse{
		Mission:     newMissionResponse(out.Mission, out.Progress),
		PointsEntry: newPointEntryResponse(out.PointsEntry),
	})
}
