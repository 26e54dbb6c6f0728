package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"fiber-service/internal/entities"
	"fiber-service/internal/services"
	apperrors "fiber-service/pkg/errors"
	"fiber-service/pkg/types"
	"fiber-service/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetReport(ctx echo.Context) error {
	start, err := types.ParseDate(ctx.QueryParam("start_date"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверная дата начала периода", err, nil), c.logger)
	}
	end, err := types.ParseDate(ctx.QueryParam("end_date"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверная дата конца периода", err, nil), c.logger)
	}
	format := strings.ToLower(ctx.QueryParam("format"))
	c.logger.Debug("Запрос на отчет", zap.Stringer("start", start), zap.Stringer("end", end), zap.String("format", format))

	report, err := c.reportService.BuildReport(ctx.Request().Context(), start, end)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, report)
	}
	return utils.SuccessResponse(ctx, report, "Отчет успешно сформирован", http.StatusOK)
}

type reportSheet struct {
	name    string
	headers []string
	rows    [][]interface{}
}

func buildReportSheets(r *entities.PeriodReport) []reportSheet {
	summary := reportSheet{
		name:    "Resumo",
		headers: []string{"Período", "Total", "Concluídas", "Taxa de conclusão (%)", "Receita", "Ticket médio", "Satisfação média"},
		rows: [][]interface{}{{
			r.StartDate.String() + " - " + r.EndDate.String(),
			r.Summary.TotalOrders, r.Summary.CompletedOrders, r.Summary.CompletionRate,
			r.Summary.Revenue, r.Summary.AverageTicket, r.Summary.AverageSatisfaction,
		}},
	}

	byService := reportSheet{
		name:    "Tipos de serviço",
		headers: []string{"Categoria", "Total", "Concluídas", "Pendentes", "Receita", "Taxa de conclusão (%)"},
	}
	for _, s := range r.ByService {
		byService.rows = append(byService.rows, []interface{}{s.Category, s.Total, s.Completed, s.Pending, s.Revenue, s.CompletionRate})
	}

	byTechnician := reportSheet{
		name:    "Técnicos",
		headers: []string{"Técnico", "Região", "Total", "Concluídas", "Receita", "Instalações", "Reparos", "Taxa de conclusão (%)", "Receita média"},
	}
	for _, t := range r.ByTechnician {
		byTechnician.rows = append(byTechnician.rows, []interface{}{
			t.Name, t.Region, t.Total, t.Completed, t.Revenue, t.Installations, t.Repairs, t.CompletionRate, t.AverageRevenue,
		})
	}

	byRegion := reportSheet{
		name:    "Regiões",
		headers: []string{"Região", "Total", "Instalações", "Reparos", "Outros"},
	}
	for _, reg := range r.ByRegion {
		byRegion.rows = append(byRegion.rows, []interface{}{reg.Region, reg.Total, reg.Installations, reg.Repairs, reg.Other})
	}

	byDay := reportSheet{name: "Por dia", headers: []string{"Data", "Ordens"}}
	for _, d := range r.ByDay {
		byDay.rows = append(byDay.rows, []interface{}{d.Date.String(), d.Count})
	}

	return []reportSheet{summary, byService, byTechnician, byRegion, byDay}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, report *entities.PeriodReport) error {
	f := excelize.NewFile()
	defer f.Close()

	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, sheet := range buildReportSheets(report) {
		if i == 0 {
			f.SetSheetName("Sheet1", sheet.name)
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return utils.ErrorResponse(ctx, fmt.Errorf("создание листа %s: %w", sheet.name, err), c.logger)
		}

		f.SetSheetRow(sheet.name, "A1", &sheet.headers)
		lastCol, _ := excelize.CoordinatesToCellName(len(sheet.headers), 1)
		f.SetCellStyle(sheet.name, "A1", lastCol, style)

		for j, row := range sheet.rows {
			cell, _ := excelize.CoordinatesToCellName(1, j+2)
			f.SetSheetRow(sheet.name, cell, &row)
		}
		f.SetColWidth(sheet.name, "A", "A", 25)
	}

	fileName := fmt.Sprintf("relatorio_%s_%s.xlsx", report.StartDate, report.EndDate)
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
