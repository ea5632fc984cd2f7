package services

import (
	"context"
	"unicode/utf8"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/constants"
	"maintenance-system/pkg/types"
	"maintenance-system/pkg/utils"

	"go.uber.org/zap"
)

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context, filter types.Filter) (*dto.DashboardDTO, uint64, error)
}

type DashboardService struct {
	requestRepo repositories.RequestRepositoryInterface
	logger      *zap.Logger
}

func NewDashboardService(requestRepo repositories.RequestRepositoryInterface, logger *zap.Logger) *DashboardService {
	return &DashboardService{requestRepo: requestRepo, logger: logger}
}

// The KPI cards are fixed figures.
var dashboardCards = []dto.KPICardDTO{
	{Title: "Critical Equipment", Value: "5 Units", Subtitle: "(Health < 30%)", Tone: "red"},
	{Title: "Technician Load", Value: "85% Utilized", Subtitle: "(Assign Carefully)", Tone: "blue"},
	{Title: "Open Requests", Value: "12 Pending", Subtitle: "3 Overdue", Tone: "emerald"},
}

// GetDashboard returns the KPI cards and the request table. The table
// honours the same search, filter and sort parameters as the request list.
func (s *DashboardService) GetDashboard(ctx context.Context, filter types.Filter) (*dto.DashboardDTO, uint64, error) {
	all, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]entities.Request, 0, len(all))
	for _, r := range all {
		if matchesRequestFilter(r, filter) {
			filtered = append(filtered, r)
		}
	}
	sortRequests(filtered, filter.Sort)

	rows := make([]dto.DashboardRequestRowDTO, 0, len(filtered))
	for _, r := range utils.Paginate(filtered, filter) {
		rows = append(rows, dashboardRow(r))
	}

	cards := make([]dto.KPICardDTO, len(dashboardCards))
	copy(cards, dashboardCards)
	return &dto.DashboardDTO{Cards: cards, Requests: rows}, uint64(len(filtered)), nil
}

func dashboardRow(r entities.Request) dto.DashboardRequestRowDTO {
	row := dto.DashboardRequestRowDTO{
		ID:                r.ID,
		Subject:           r.Subject,
		Employee:          orDefault(r.CreatedBy, "N/A"),
		Technician:        orDefault(r.Technician, "Unassigned"),
		TechnicianInitial: "?",
		Category:          orDefault(r.Category, "Uncategorized"),
		Stage:             r.Stage,
		StageColor:        dashboardStageColor(r.Stage),
		Company:           r.Company,
	}
	if first, size := utf8.DecodeRuneInString(r.Technician); size > 0 {
		row.TechnicianInitial = string(first)
	}
	return row
}

// dashboardStageColor has no red badge: Repaired and Scrap share emerald.
func dashboardStageColor(stage string) string {
	switch stage {
	case constants.StageNewRequest:
		return "purple"
	case constants.StageInProgress:
		return "blue"
	}
	return "emerald"
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
