// File: propdash/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CorbanSy/PropDash-sub002/config"
	"github.com/CorbanSy/PropDash-sub002/cron"
	"github.com/CorbanSy/PropDash-sub002/database"
	overrideRepo "github.com/CorbanSy/PropDash-sub002/database/repository/dateoverride"
	holidayRepo "github.com/CorbanSy/PropDash-sub002/database/repository/holidaysettings"
	jobRepo "github.com/CorbanSy/PropDash-sub002/database/repository/job"
	providerRepo "github.com/CorbanSy/PropDash-sub002/database/repository/provider"
	weeklyRepo "github.com/CorbanSy/PropDash-sub002/database/repository/weeklyschedule"
	"github.com/CorbanSy/PropDash-sub002/handlers"
	"github.com/CorbanSy/PropDash-sub002/middleware"
	"github.com/CorbanSy/PropDash-sub002/routes"
	"github.com/CorbanSy/PropDash-sub002/services/schedule"
	"github.com/CorbanSy/PropDash-sub002/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.StartHealthMonitor(time.Minute)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo()
	weeklyScheduleRepo := weeklyRepo.NewMongoWeeklyScheduleRepo()
	holidaySettingsRepo := holidayRepo.NewMongoHolidaySettingsRepo()
	dateOverrideRepo := overrideRepo.NewMongoDateOverrideRepo()
	jobsRepo := jobRepo.NewMongoJobRepo()

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		WeeklyRepo:   weeklyScheduleRepo,
		HolidayRepo:  holidaySettingsRepo,
		OverrideRepo: dateOverrideRepo,
		JobRepo:      jobsRepo,
		Cache:        utils.GetCacheClient(),
		CacheTTL:     time.Duration(config.AppConfig.ScheduleCacheTTL) * time.Second,
	}
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	// Background sweep for expired overrides.
	cron.InitOverridePurgeWorker(dateOverrideRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProviderRepo: provRepo,

		GetWeeklyScheduleHandler:  scheduleHandler.GetWeeklyScheduleHandler,
		SaveWeeklyScheduleHandler: scheduleHandler.SaveWeeklyScheduleHandler,

		ListHolidaysHandler:       scheduleHandler.ListHolidaysHandler,
		GetHolidaySettingsHandler: scheduleHandler.GetHolidaySettingsHandler,
		ToggleHolidayDateHandler:  scheduleHandler.ToggleHolidayDateHandler,
		SetHolidayHoursHandler:    scheduleHandler.SetHolidayHoursHandler,
		ClearHolidayHoursHandler:  scheduleHandler.ClearHolidayHoursHandler,
		BlockAllFederalHandler:    scheduleHandler.BlockAllFederalHandler,
		ClearHolidayYearHandler:   scheduleHandler.ClearHolidayYearHandler,

		ListOverridesHandler:  scheduleHandler.ListOverridesHandler,
		SaveOverrideHandler:   scheduleHandler.SaveOverrideHandler,
		BulkBlockHandler:      scheduleHandler.BulkBlockHandler,
		DeleteOverrideHandler: scheduleHandler.DeleteOverrideHandler,

		GetMonthHandler:      scheduleHandler.GetMonthHandler,
		GetDayHandler:        scheduleHandler.GetDayHandler,
		RescheduleJobHandler: scheduleHandler.RescheduleJobHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
