package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fiber-service/internal/dto"
	"fiber-service/internal/services"
	"fiber-service/pkg/utils"
)

type ClientController struct {
	clientService services.ClientServiceInterface
	logger        *zap.Logger
}

func NewClientController(clientService services.ClientServiceInterface, logger *zap.Logger) *ClientController {
	return &ClientController{clientService: clientService, logger: logger}
}

func (c *ClientController) GetClients(ctx echo.Context) error {
	clients, err := c.clientService.List(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, clients, "Список клиентов получен", http.StatusOK, uint64(len(clients)))
}

func (c *ClientController) CreateClient(ctx echo.Context) error {
	var payload dto.CreateClientDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	client, err := c.clientService.Create(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, client, "Клиент успешно создан", http.StatusCreated)
}

type ServiceCatalogController struct {
	catalogService services.ServiceCatalogServiceInterface
	logger         *zap.Logger
}

func NewServiceCatalogController(catalogService services.ServiceCatalogServiceInterface, logger *zap.Logger) *ServiceCatalogController {
	return &ServiceCatalogController{catalogService: catalogService, logger: logger}
}

func (c *ServiceCatalogController) GetServices(ctx echo.Context) error {
	list, err := c.catalogService.List(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, list, "Список услуг получен", http.StatusOK, uint64(len(list)))
}

func (c *ServiceCatalogController) CreateService(ctx echo.Context) error {
	var payload dto.CreateServiceDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	service, err := c.catalogService.Create(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, service, "Услуга успешно создана", http.StatusCreated)
}

type TechnicianController struct {
	technicianService services.TechnicianServiceInterface
	logger            *zap.Logger
}

func NewTechnicianController(technicianService services.TechnicianServiceInterface, logger *zap.Logger) *TechnicianController {
	return &TechnicianController{technicianService: technicianService, logger: logger}
}

// GetTechnicians: ?specialty=Installation оставляет только техников этой специализации.
func (c *TechnicianController) GetTechnicians(ctx echo.Context) error {
	list, err := c.technicianService.List(ctx.Request().Context(), ctx.QueryParam("specialty"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, list, "Список техников получен", http.StatusOK, uint64(len(list)))
}

func (c *TechnicianController) CreateTechnician(ctx echo.Context) error {
	var payload dto.CreateTechnicianDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	technician, err := c.technicianService.Create(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, technician, "Техник успешно создан", http.StatusCreated)
}
