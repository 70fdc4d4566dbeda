package routes

import (
	"net/http"
	"time"

	"github.com/CorbanSy/PropDash-sub002/handlers"
	"github.com/CorbanSy/PropDash-sub002/middleware"
	"github.com/CorbanSy/PropDash-sub002/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterScheduleRoutes registers the provider scheduling endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		// The computed holiday calendar is pure and public.
		api.GET("/holidays/:year", hb.ListHolidaysHandler)

		// Everything else belongs to the authenticated provider.
		api.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))

		api.GET("/weekly", hb.GetWeeklyScheduleHandler)
		api.PUT("/weekly", hb.SaveWeeklyScheduleHandler)

		api.GET("/holiday-settings/:year", hb.GetHolidaySettingsHandler)
		api.POST("/holiday-settings/toggle", hb.ToggleHolidayDateHandler)
		api.POST("/holiday-settings/hours", hb.SetHolidayHoursHandler)
		api.DELETE("/holiday-settings/hours", hb.ClearHolidayHoursHandler)
		api.POST("/holiday-settings/:year/block-federal", hb.BlockAllFederalHandler)
		api.DELETE("/holiday-settings/:year", hb.ClearHolidayYearHandler)

		api.GET("/overrides", hb.ListOverridesHandler)
		api.PUT("/overrides", hb.SaveOverrideHandler)
		api.POST("/overrides/bulk-block", hb.BulkBlockHandler)
		api.DELETE("/overrides/:date", hb.DeleteOverrideHandler)

		api.GET("/calendar/:year/:month", hb.GetMonthHandler)
		api.GET("/calendar/day/:date", hb.GetDayHandler)
		api.PATCH("/jobs/:jobID/reschedule", hb.RescheduleJobHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// periodic dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		health := utils.GetHealthStatus()
		status := http.StatusOK
		if !health.Healthy() {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"status":       "Hi, I'm PropDash",
			"dependencies": health,
		})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes wires CORS and every route group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
	RegisterScheduleRoutes(r, hb)
}
