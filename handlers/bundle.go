package handlers

import (
	providerRepo "github.com/CorbanSy/PropDash-sub002/database/repository/provider"

	"github.com/gin-gonic/gin"
)

// HandlerBundle collects everything the route registration needs.
type HandlerBundle struct {
	ProviderRepo providerRepo.ProviderRepository

	// Weekly recurring hours.
	GetWeeklyScheduleHandler  gin.HandlerFunc
	SaveWeeklyScheduleHandler gin.HandlerFunc

	// Holiday calendar and per-year settings.
	ListHolidaysHandler       gin.HandlerFunc
	GetHolidaySettingsHandler gin.HandlerFunc
	ToggleHolidayDateHandler  gin.HandlerFunc
	SetHolidayHoursHandler    gin.HandlerFunc
	ClearHolidayHoursHandler  gin.HandlerFunc
	BlockAllFederalHandler    gin.HandlerFunc
	ClearHolidayYearHandler   gin.HandlerFunc

	// Per-date overrides.
	ListOverridesHandler  gin.HandlerFunc
	SaveOverrideHandler   gin.HandlerFunc
	BulkBlockHandler      gin.HandlerFunc
	DeleteOverrideHandler gin.HandlerFunc

	// Calendar views and job actions.
	GetMonthHandler      gin.HandlerFunc
	GetDayHandler        gin.HandlerFunc
	RescheduleJobHandler gin.HandlerFunc
}
