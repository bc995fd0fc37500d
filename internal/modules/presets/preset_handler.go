package presets

import (
	"net/http"

	"commutesync/internal/models"
	"commutesync/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for presets.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new preset handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) CreatePreset(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	var req models.CreatePresetRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	preset, err := h.svc.CreatePreset(c.Request().Context(), userID, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusCreated, preset)
}

func (h *Handler) ListPresets(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	result, err := h.svc.ListPresets(c.Request().Context(), userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, result)
}

func (h *Handler) DeletePreset(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	presetID := c.Param("presetId")
	if err := h.svc.DeletePreset(c.Request().Context(), userID, presetID); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
