package controllers

import (
	"fmt"
	"net/http"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/services"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	reportSheetKPIs     = "KPIs"
	reportSheetFailures = "Failures by Category"
	reportSheetStatus   = "Status Distribution"
	xlsxContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetReport(ctx echo.Context) error {
	period := ctx.QueryParam("period")
	c.logger.Debug("report requested", zap.String("period", period))

	data, err := c.reportService.GetReport(ctx.Request().Context(), period)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not build report"), c.logger)
	}
	return utils.SuccessResponse(ctx, data, "report built", http.StatusOK)
}

func (c *ReportController) ExportReport(ctx echo.Context) error {
	data, err := c.reportService.GetReport(ctx.Request().Context(), ctx.QueryParam("period"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not build report"), c.logger)
	}

	f, err := buildReportWorkbook(data)
	if err != nil {
		c.logger.Error("failed to build report workbook", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.FromError(err, "could not export report"), c.logger)
	}
	defer f.Close()

	fileName := fmt.Sprintf("maintenance_report_%s_%s.xlsx", data.Period, time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

// buildReportWorkbook lays the report out as one sheet per section.
func buildReportWorkbook(report *dto.ReportDTO) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", reportSheetKPIs); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	kpiRows := [][]interface{}{{"Period", report.PeriodLabel}, {}, {"Metric", "Value", "Trend", "Direction"}}
	for _, k := range report.KPIs {
		kpiRows = append(kpiRows, []interface{}{k.Label, k.Value, k.Trend, k.Direction})
	}
	if err := writeSheet(f, reportSheetKPIs, kpiRows, bold, 3); err != nil {
		return nil, err
	}

	failureRows := [][]interface{}{{"Category", "Share", "Failures"}}
	for _, row := range report.FailuresByCategory {
		failureRows = append(failureRows, []interface{}{row.Label, row.Percent, row.Value})
	}
	if _, err := f.NewSheet(reportSheetFailures); err != nil {
		return nil, err
	}
	if err := writeSheet(f, reportSheetFailures, failureRows, bold, 1); err != nil {
		return nil, err
	}

	statusRows := [][]interface{}{{"Stage", "Percent"}}
	for _, share := range report.StatusDistribution.Shares {
		statusRows = append(statusRows, []interface{}{share.Stage, share.Percent})
	}
	statusRows = append(statusRows, []interface{}{"Total requests", report.StatusDistribution.Total})
	if _, err := f.NewSheet(reportSheetStatus); err != nil {
		return nil, err
	}
	if err := writeSheet(f, reportSheetStatus, statusRows, bold, 1); err != nil {
		return nil, err
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}, headerStyle, headerRow int) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetRowStyle(sheet, headerRow, headerRow, headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "A", 28)
}
