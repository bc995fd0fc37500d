package utils

import (
	"errors"
	"net/http"

	"commutesync/internal/models"

	"github.com/labstack/echo/v4"
)

// RespondWithJSON writes a JSON response with the given status code.
func RespondWithJSON(c echo.Context, status int, payload interface{}) error {
	return c.JSON(status, payload)
}

// RespondWithError writes a JSON error body with the given status code.
func RespondWithError(c echo.Context, status int, message string) error {
	return c.JSON(status, models.ErrorResponse{Message: message})
}

// HandleServiceError maps the service layer's sentinel errors onto HTTP
// statuses. Anything unrecognized becomes a 500 with a generic message.
func HandleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrValidation):
		return RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		return RespondWithError(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, models.ErrConflict):
		return RespondWithError(c, http.StatusConflict, "Resource already exists")
	case errors.Is(err, models.ErrInvalidCredentials):
		return RespondWithError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, models.ErrInvalidToken):
		return RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, models.ErrAccountNotActive):
		return RespondWithError(c, http.StatusForbidden, "Account has not been activated")
	case errors.Is(err, models.ErrRegistrationDisabled):
		return RespondWithError(c, http.StatusForbidden, "Registration is disabled")
	case errors.Is(err, models.ErrNoActiveSession):
		return RespondWithError(c, http.StatusBadRequest, "No active session. Start with an arrived timestamp.")
	default:
		c.Logger().Errorf("unhandled service error: %v", err)
		return RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
