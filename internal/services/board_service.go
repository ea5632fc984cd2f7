package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"

	"go.uber.org/zap"
)

type BoardServiceInterface interface {
	GetBoard(ctx context.Context) (*dto.BoardDTO, error)
	GetCalendar(ctx context.Context, month string) (*dto.CalendarDTO, error)
}

type BoardService struct {
	requestRepo repositories.RequestRepositoryInterface
	logger      *zap.Logger
	month       func() string
}

func NewBoardService(requestRepo repositories.RequestRepositoryInterface, logger *zap.Logger) *BoardService {
	return &BoardService{requestRepo: requestRepo, logger: logger, month: utils.CurrentMonth}
}

// GetBoard groups requests into one kanban column per stage, in pipeline
// order. Requests with an unknown stage are left off the board.
func (s *BoardService) GetBoard(ctx context.Context) (*dto.BoardDTO, error) {
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, err
	}

	columns := make([]dto.BoardColumnDTO, 0, len(constants.Stages))
	index := make(map[string]int, len(constants.Stages))
	for i, stage := range constants.Stages {
		index[stage] = i
		columns = append(columns, dto.BoardColumnDTO{
			Title: stage,
			Color: constants.StageColor(stage),
			Cards: []dto.BoardCardDTO{},
		})
	}

	for _, r := range requests {
		i, ok := index[r.Stage]
		if !ok {
			s.logger.Warn("request has unknown stage", zap.Uint64("id", r.ID), zap.String("stage", r.Stage))
			continue
		}
		columns[i].Cards = append(columns[i].Cards, boardCard(r))
		columns[i].Count++
	}

	return &dto.BoardDTO{Columns: columns}, nil
}

func boardCard(r entities.Request) dto.BoardCardDTO {
	user := r.Technician
	if user == "" {
		user = r.CreatedBy
	}
	return dto.BoardCardDTO{
		ID:        r.ID,
		Title:     r.Subject,
		Equipment: r.TargetID,
		Priority:  constants.PriorityLabel(r.Priority),
		User:      firstWord(user),
	}
}

func firstWord(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// GetCalendar lists the requests dated within month (YYYY-MM), grouped by
// day. An empty month means the current one.
func (s *BoardService) GetCalendar(ctx context.Context, month string) (*dto.CalendarDTO, error) {
	if month == "" {
		month = s.month()
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, apperrors.ErrInvalidMonth
	}

	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]entities.Request)
	for _, r := range requests {
		if _, err := time.Parse(utils.DateLayout, r.RequestDate); err != nil {
			continue
		}
		if strings.HasPrefix(r.RequestDate, month+"-") {
			byDay[r.RequestDate] = append(byDay[r.RequestDate], r)
		}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	out := &dto.CalendarDTO{Month: month, Days: make([]dto.CalendarDayDTO, 0, len(days))}
	for _, day := range days {
		out.Days = append(out.Days, dto.CalendarDayDTO{Date: day, Requests: requestsToDTO(byDay[day])})
	}
	return out, nil
}
