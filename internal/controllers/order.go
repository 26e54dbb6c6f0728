package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fiber-service/internal/dto"
	"fiber-service/internal/services"
	apperrors "fiber-service/pkg/errors"
	"fiber-service/pkg/utils"
)

type OrderController struct {
	orderService services.OrderServiceInterface
	logger       *zap.Logger
}

func NewOrderController(orderService services.OrderServiceInterface, logger *zap.Logger) *OrderController {
	return &OrderController{orderService: orderService, logger: logger}
}

func (c *OrderController) GetOrders(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	rows, err := c.orderService.ListOrders(ctx.Request().Context(), dto.OrderFilterDTO{
		Search:       filter.Search,
		Statuses:     utils.FilterValues(filter, "status"),
		Priorities:   utils.FilterValues(filter, "priority"),
		ServiceTypes: utils.FilterValues(filter, "service_type"),
		Regions:      utils.FilterValues(filter, "region"),
	})
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, utils.Paginate(rows, filter), "Список ордеров получен", http.StatusOK, uint64(len(rows)))
}

func (c *OrderController) FindOrder(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	row, err := c.orderService.FindOrder(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, row, "Ордер найден", http.StatusOK)
}

func (c *OrderController) FindByNumber(ctx echo.Context) error {
	row, err := c.orderService.FindByNumber(ctx.Request().Context(), ctx.Param("number"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, row, "Ордер найден", http.StatusOK)
}

func (c *OrderController) CreateOrder(ctx echo.Context) error {
	var payload dto.CreateOrderDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	order, err := c.orderService.CreateOrder(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, order, "Ордер успешно создан", http.StatusCreated)
}

func (c *OrderController) UpdateStatus(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateStatusDTO
	if err := bindAndValidate(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	order, err := c.orderService.UpdateStatus(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, order, "Статус ордера обновлён", http.StatusOK)
}

// DeleteOrder удаляет ордер только при ?confirm=true.
func (c *OrderController) DeleteOrder(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	confirm := false
	if raw := ctx.QueryParam("confirm"); raw != "" {
		confirm, err = strconv.ParseBool(raw)
		if err != nil {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusBadRequest, "Параметр confirm должен быть true или false", err, nil),
				c.logger,
			)
		}
	}

	deleted, err := c.orderService.DeleteOrder(ctx.Request().Context(), id, confirm)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.DeleteResultDTO{Deleted: deleted}, "Запрос на удаление обработан", http.StatusOK)
}
