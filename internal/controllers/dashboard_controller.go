package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fiber-service/internal/services"
	apperrors "fiber-service/pkg/errors"
	"fiber-service/pkg/types"
	"fiber-service/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	calendarService  services.CalendarServiceInterface
	now              func() time.Time
	logger           *zap.Logger
}

func NewDashboardController(
	dashboardService services.DashboardServiceInterface,
	calendarService services.CalendarServiceInterface,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		calendarService:  calendarService,
		now:              time.Now,
		logger:           logger,
	}
}

// GetDashboard: ?date=YYYY-MM-DD задаёт "сегодня", по умолчанию текущая дата.
func (c *DashboardController) GetDashboard(ctx echo.Context) error {
	today := types.DateOf(c.now())
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := types.ParseDate(raw)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверная дата", err, nil), c.logger)
		}
		today = parsed
	}

	dashboard, err := c.dashboardService.GetDashboard(ctx.Request().Context(), today)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dashboard, "Данные дашборда получены", http.StatusOK)
}

func (c *DashboardController) GetCalendar(ctx echo.Context) error {
	now := c.now()
	year, err := intQueryParam(ctx, "year", now.Year())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	month, err := intQueryParam(ctx, "month", int(now.Month()))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	calendar, err := c.calendarService.GetMonth(ctx.Request().Context(), year, month, ctx.QueryParam("group_by"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, calendar, "Календарь получен", http.StatusOK)
}

func intQueryParam(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "Параметр "+name+" должен быть числом", err, nil)
	}
	return v, nil
}
