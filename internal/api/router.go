package api

import (
	"net/http"

	appMiddleware "commutesync/internal/api/middleware"
	"commutesync/internal/metrics"
	"commutesync/internal/modules/logger"
	"commutesync/internal/modules/prediction"
	"commutesync/internal/modules/presets"
	"commutesync/internal/modules/routes"
	"commutesync/internal/modules/schedules"
	"commutesync/internal/modules/triplogs"
	"commutesync/internal/modules/users"

	"github.com/labstack/echo/v4"
)

// SetupRoutes registers every endpoint on the Echo instance. Auth endpoints
// and operational probes are public; everything else sits behind JWT.
func SetupRoutes(
	e *echo.Echo,
	jwtSecret string,
	collector *metrics.Collector,
	userHandler *users.Handler,
	routeHandler *routes.Handler,
	tripLogHandler *triplogs.Handler,
	scheduleHandler *schedules.Handler,
	presetHandler *presets.Handler,
	loggerHandler *logger.Handler,
	predictionHandler *prediction.Handler,
) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(collector.Handler()))

	auth := e.Group("/auth")
	auth.POST("/signup", userHandler.Signup)
	auth.POST("/login", userHandler.Login)
	auth.POST("/activate", userHandler.ActivateAccount)
	auth.POST("/resend-activation", userHandler.ResendActivation)
	auth.POST("/request-password-reset", userHandler.RequestPasswordReset)
	auth.POST("/reset-password", userHandler.ResetPassword)

	authed := e.Group("", appMiddleware.JWTAuth(jwtSecret))

	authed.GET("/profile", userHandler.GetProfile)

	authed.POST("/routes", routeHandler.CreateRoute)
	authed.GET("/routes", routeHandler.ListRoutes)
	authed.GET("/routes/analytics", routeHandler.Analytics)

	authed.POST("/logs", tripLogHandler.CreateLog)
	authed.GET("/logs", tripLogHandler.History)
	authed.GET("/logs/benchmark", tripLogHandler.Benchmark)
	authed.GET("/logs/day-stats", tripLogHandler.DayStats)

	authed.POST("/schedules", scheduleHandler.CreateSchedule)
	authed.GET("/schedules", scheduleHandler.ListSchedules)

	authed.POST("/presets", presetHandler.CreatePreset)
	authed.GET("/presets", presetHandler.ListPresets)
	authed.DELETE("/presets/:presetId", presetHandler.DeletePreset)

	authed.GET("/logger/session", loggerHandler.GetSession)
	authed.POST("/logger/session", loggerHandler.SaveSession)
	authed.DELETE("/logger/session", loggerHandler.ClearSession)
	authed.POST("/logger/session/complete", loggerHandler.CompleteSession)
	authed.POST("/logger/timestamp", loggerHandler.RecordTimestamp)

	authed.POST("/predict", predictionHandler.Predict)
}
