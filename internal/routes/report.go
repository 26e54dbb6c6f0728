package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fiber-service/internal/controllers"
	"fiber-service/internal/services"
)

func runReportRouter(
	api *echo.Group,
	reportService services.ReportServiceInterface,
	dashboardService services.DashboardServiceInterface,
	calendarService services.CalendarServiceInterface,
	logger *zap.Logger,
) {
	reportCtrl := controllers.NewReportController(reportService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, calendarService, logger)

	api.GET("/reports", reportCtrl.GetReport)
	api.GET("/dashboard", dashboardCtrl.GetDashboard)
	api.GET("/calendar", dashboardCtrl.GetCalendar)
}
