package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fiber-service/internal/controllers"
	"fiber-service/internal/services"
)

func runOrderRouter(api *echo.Group, orderService services.OrderServiceInterface, logger *zap.Logger) {
	orderCtrl := controllers.NewOrderController(orderService, logger)
	{
		api.GET("/orders", orderCtrl.GetOrders)
		api.GET("/orders/number/:number", orderCtrl.FindByNumber)
		api.GET("/orders/:id", orderCtrl.FindOrder)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		api.DELETE("/orders/:id", orderCtrl.DeleteOrder)
	}
}
