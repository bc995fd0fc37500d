package schedules

import (
	"net/http"

	"commutesync/internal/models"
	"commutesync/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for route schedules.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new schedule handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) CreateSchedule(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	var req models.CreateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	entry, err := h.svc.CreateSchedule(c.Request().Context(), userID, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusCreated, entry)
}

func (h *Handler) ListSchedules(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	routeID := c.QueryParam("route_id")
	if routeID == "" {
		return utils.RespondWithError(c, http.StatusBadRequest, "route_id query parameter is required")
	}

	entries, err := h.svc.ListForRoute(c.Request().Context(), userID, routeID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, entries)
}
