package utils

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ExtractUserInfo pulls the authenticated user's ID and email out of the
// Echo context, where the JWT middleware placed them. Every collaborator call
// takes the user ID explicitly; nothing reads identity from ambient state.
func ExtractUserInfo(c echo.Context) (userID, email string, err error) {
	userID, _ = c.Get("userID").(string)
	email, _ = c.Get("userEmail").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
	}
	return userID, email, nil
}

// GetPageLimit reads ?page and ?limit query params with sane bounds.
func GetPageLimit(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return page, limit
}
