package prediction

import (
	"net/http"

	"commutesync/internal/models"
	"commutesync/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for predictions.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new prediction handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Predict(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	var req models.PredictRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.svc.Predict(c.Request().Context(), userID, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, result)
}
