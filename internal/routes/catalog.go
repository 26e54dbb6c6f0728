package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fiber-service/internal/controllers"
	"fiber-service/internal/services"
)

func runCatalogRouter(
	api *echo.Group,
	clientService services.ClientServiceInterface,
	catalogService services.ServiceCatalogServiceInterface,
	technicianService services.TechnicianServiceInterface,
	logger *zap.Logger,
) {
	clientCtrl := controllers.NewClientController(clientService, logger)
	serviceCtrl := controllers.NewServiceCatalogController(catalogService, logger)
	technicianCtrl := controllers.NewTechnicianController(technicianService, logger)

	api.GET("/clients", clientCtrl.GetClients)
	api.POST("/clients", clientCtrl.CreateClient)

	api.GET("/services", serviceCtrl.GetServices)
	api.POST("/services", serviceCtrl.CreateService)

	api.GET("/technicians", technicianCtrl.GetTechnicians)
	api.POST("/technicians", technicianCtrl.CreateTechnician)
}

func runEquipmentRouter(api *echo.Group, equipmentService services.EquipmentServiceInterface, logger *zap.Logger) {
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)

	api.GET("/equipment", equipmentCtrl.GetEquipment)
	api.POST("/equipment", equipmentCtrl.CreateEquipment)
	api.POST("/equipment/import", equipmentCtrl.ImportEquipment)
}

func runStatusRouter(api *echo.Group, statusService services.StatusServiceInterface, logger *zap.Logger) {
	statusCtrl := controllers.NewStatusController(statusService, logger)
	api.GET("/statuses", statusCtrl.GetStatuses)
}
