package logger

import (
	"errors"
	"net/http"

	"commutesync/internal/models"
	"commutesync/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for logger sessions.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new logger handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

// GetSession returns the in-progress session, or a null body when there is
// none. Clients poll this on startup to resume a trip, so no-session is not
// an error.
func (h *Handler) GetSession(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	session, err := h.svc.Current(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return utils.RespondWithJSON(c, http.StatusOK, map[string]any{"session": nil})
		}
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, map[string]any{"session": session})
}

func (h *Handler) SaveSession(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	var req models.UpsertSessionRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	session, created, err := h.svc.Save(c.Request().Context(), userID, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return utils.RespondWithJSON(c, status, map[string]any{"session": session})
}

func (h *Handler) ClearSession(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	if err := h.svc.Clear(c.Request().Context(), userID); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) RecordTimestamp(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	var req models.TimestampRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	session, err := h.svc.RecordTimestamp(c.Request().Context(), userID, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusOK, map[string]any{"session": session})
}

func (h *Handler) CompleteSession(c echo.Context) error {
	userID, _, err := utils.ExtractUserInfo(c)
	if err != nil {
		return err
	}

	var req models.CompleteSessionRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	tripLog, err := h.svc.Complete(c.Request().Context(), userID, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return utils.RespondWithJSON(c, http.StatusCreated, map[string]any{"log": tripLog})
}
