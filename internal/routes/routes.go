package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fiber-service/internal/repositories"
	"fiber-service/internal/services"
	"fiber-service/pkg/metrics"
)

// Dependencies - всё, что нужно роутеру для сборки сервисов и контроллеров.
type Dependencies struct {
	Store   *repositories.Store
	Events  services.EventPublisher
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

func InitRouter(e *echo.Echo, deps Dependencies) {
	logger := deps.Logger
	logger.Info("InitRouter: Начало создания маршрутов")

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(deps.Metrics.Handler()))

	api := e.Group("/api")
	store := deps.Store

	// --- СЕРВИСЫ ---
	clientService := services.NewClientService(store.Clients, logger)
	catalogService := services.NewServiceCatalogService(store.Services, logger)
	technicianService := services.NewTechnicianService(store.Technicians, logger)
	equipmentService := services.NewEquipmentService(store.Equipment, logger)
	orderService := services.NewOrderService(store, deps.Events, deps.Metrics, logger)
	reportService := services.NewReportService(store, logger)
	dashboardService := services.NewDashboardService(store, logger)
	calendarService := services.NewCalendarService(store, logger)
	statusService := services.NewStatusService()

	// --- МАРШРУТЫ ---
	runCatalogRouter(api, clientService, catalogService, technicianService, logger)
	runEquipmentRouter(api, equipmentService, logger)
	runOrderRouter(api, orderService, logger)
	runReportRouter(api, reportService, dashboardService, calendarService, logger)
	runStatusRouter(api, statusService, logger)

	logger.Info("InitRouter: Создание маршрутов завершено")
}
