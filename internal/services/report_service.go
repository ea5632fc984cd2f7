package services

import (
	"context"
	"strings"

	"maintenance-system/internal/dto"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"

	"go.uber.org/zap"
)

const (
	PeriodLast30Days    = "last_30_days"
	PeriodLastQuarter   = "last_quarter"
	PeriodYearToDate    = "year_to_date"
	DefaultReportPeriod = PeriodLast30Days
)

var periodLabels = map[string]string{
	PeriodLast30Days:  "Last 30 Days",
	PeriodLastQuarter: "Last Quarter",
	PeriodYearToDate:  "Year to Date",
}

type ReportServiceInterface interface {
	GetReport(ctx context.Context, period string) (*dto.ReportDTO, error)
}

// ReportService serves the maintenance analysis page. Figures are fixed
// sample values and do not depend on the period.
type ReportService struct {
	logger *zap.Logger
}

func NewReportService(logger *zap.Logger) *ReportService {
	return &ReportService{logger: logger}
}

func (s *ReportService) GetReport(_ context.Context, period string) (*dto.ReportDTO, error) {
	if period == "" {
		period = DefaultReportPeriod
	}
	label, ok := periodLabels[period]
	if !ok {
		return nil, apperrors.ErrInvalidPeriod
	}

	return &dto.ReportDTO{
		Period:      period,
		PeriodLabel: label,
		KPIs: []dto.ReportKPIDTO{
			reportKPI("Mean Time to Repair", "2h 15m", "-12%"),
			reportKPI("Equipment Availability", "98.5%", "+2.1%"),
			reportKPI("Total Costs", "$4,250", "+5%"),
			reportKPI("Critical Failures", "3", "0%"),
		},
		FailuresByCategory: []dto.CategoryFailureDTO{
			{Label: "Computers", Percent: "75%", Value: "12"},
			{Label: "Machinery", Percent: "45%", Value: "8"},
			{Label: "Printers", Percent: "30%", Value: "5"},
			{Label: "Vehicles", Percent: "20%", Value: "3"},
		},
		StatusDistribution: dto.StatusDistributionDTO{
			Total: 42,
			Shares: []dto.StatusShareDTO{
				{Stage: constants.StageNewRequest, Percent: 40, Color: constants.StageColor(constants.StageNewRequest)},
				{Stage: constants.StageInProgress, Percent: 35, Color: constants.StageColor(constants.StageInProgress)},
				{Stage: constants.StageRepaired, Percent: 25, Color: constants.StageColor(constants.StageRepaired)},
			},
		},
	}, nil
}

// reportKPI marks a trend "up" only when it starts with "+".
func reportKPI(label, value, trend string) dto.ReportKPIDTO {
	direction := "flat"
	if strings.HasPrefix(trend, "+") {
		direction = "up"
	} else if strings.HasPrefix(trend, "-") {
		direction = "down"
	}
	return dto.ReportKPIDTO{Label: label, Value: value, Trend: trend, Direction: direction}
}
