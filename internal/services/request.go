package services

import (
	"context"
	"sort"
	"strings"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/events"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/eventbus"
	"maintenance-system/pkg/types"
	"maintenance-system/pkg/utils"

	"go.uber.org/zap"
)

// EventPublisher is the part of the event bus services publish through.
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event)
}

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]dto.RequestDTO, uint64, error)
	GetRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error)
	NewRequestForm(ctx context.Context) (*dto.RequestFormDTO, error)
	GetRequestForm(ctx context.Context, id uint64) (*dto.RequestFormDTO, error)
	CreateRequest(ctx context.Context, form dto.RequestFormDTO) (*dto.RequestDTO, error)
	SaveRequest(ctx context.Context, id uint64, form dto.RequestFormDTO) (*dto.RequestDTO, error)
	PatchRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error)
	UpdateRequestStage(ctx context.Context, id uint64, stage string) (*dto.RequestDTO, error)
}

type RequestService struct {
	requestRepo repositories.RequestRepositoryInterface
	userRepo    repositories.UserRepositoryInterface
	publisher   EventPublisher
	logger      *zap.Logger
	today       func() string
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	publisher EventPublisher,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		logger:      logger,
		today:       utils.Today,
	}
}

// sortable columns for sort[...] in the list query
var requestSorters = map[string]func(a, b entities.Request) int{
	"id":           func(a, b entities.Request) int { return compareUint(a.ID, b.ID) },
	"subject":      func(a, b entities.Request) int { return strings.Compare(strings.ToLower(a.Subject), strings.ToLower(b.Subject)) },
	"request_date": func(a, b entities.Request) int { return strings.Compare(a.RequestDate, b.RequestDate) },
	"priority":     func(a, b entities.Request) int { return a.Priority - b.Priority },
}

// filter[...] keys and the request field each one matches
var requestFilters = map[string]func(r entities.Request) string{
	"stage":           func(r entities.Request) string { return r.Stage },
	"maintenance_for": func(r entities.Request) string { return r.MaintenanceFor },
	"team":            func(r entities.Request) string { return r.Team },
	"technician":      func(r entities.Request) string { return r.Technician },
}

func (s *RequestService) GetRequests(ctx context.Context, filter types.Filter) ([]dto.RequestDTO, uint64, error) {
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]entities.Request, 0, len(requests))
	for _, r := range requests {
		if matchesRequestFilter(r, filter) {
			filtered = append(filtered, r)
		}
	}
	sortRequests(filtered, filter.Sort)

	total := uint64(len(filtered))
	return requestsToDTO(utils.Paginate(filtered, filter)), total, nil
}

func matchesRequestFilter(r entities.Request, filter types.Filter) bool {
	if filter.Search != "" && !containsFold(filter.Search, r.Subject, r.Technician, r.Category, r.CreatedBy) {
		return false
	}
	for field, get := range requestFilters {
		if want := filter.FilterValue(field); want != "" && !equalsAnyFold(want, get(r)) {
			return false
		}
	}
	return true
}

// sortRequests orders by the requested columns in a fixed precedence; the
// stable sort keeps insertion order for ties.
func sortRequests(requests []entities.Request, sortBy map[string]string) {
	if len(sortBy) == 0 {
		return
	}
	fields := make([]string, 0, len(sortBy))
	for field := range sortBy {
		if _, ok := requestSorters[field]; ok {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)

	sort.SliceStable(requests, func(i, j int) bool {
		for _, field := range fields {
			c := requestSorters[field](requests[i], requests[j])
			if sortBy[field] == "desc" {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (s *RequestService) GetRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error) {
	request, err := s.requestRepo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	res := requestToDTO(*request)
	return &res, nil
}

func (s *RequestService) NewRequestForm(ctx context.Context) (*dto.RequestFormDTO, error) {
	_, name := currentUserName(ctx, s.userRepo, s.logger)
	form := blankRequestForm(name, s.today())
	return &form, nil
}

func (s *RequestService) GetRequestForm(ctx context.Context, id uint64) (*dto.RequestFormDTO, error) {
	request, err := s.requestRepo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	_, name := currentUserName(ctx, s.userRepo, s.logger)
	form := requestToForm(*request, name)
	return &form, nil
}

// CreateRequest saves a new request. The author is always the current user
// when one is known, and the id is assigned by the store.
func (s *RequestService) CreateRequest(ctx context.Context, form dto.RequestFormDTO) (*dto.RequestDTO, error) {
	if !hasSubject(form) {
		return nil, apperrors.ErrSubjectRequired
	}
	applyFormDefaults(&form, s.today())

	actorID, name := currentUserName(ctx, s.userRepo, s.logger)
	request := formToRequest(form, name)
	if name != "" {
		request.CreatedBy = name
	}
	request.ID = 0

	logger := utils.LoggerFromCtx(ctx, s.logger)
	created, err := s.requestRepo.AddRequest(ctx, request)
	if err != nil {
		logger.Error("failed to create request", zap.Error(err))
		return nil, err
	}
	logger.Info("request created", zap.Uint64("id", created.ID), zap.String("subject", created.Subject))

	s.publisher.Publish(ctx, events.RequestCreatedEvent{Request: *created, ActorID: actorID})
	res := requestToDTO(*created)
	return &res, nil
}

// SaveRequest overwrites an existing request from the form, keeping its
// original author.
func (s *RequestService) SaveRequest(ctx context.Context, id uint64, form dto.RequestFormDTO) (*dto.RequestDTO, error) {
	if !hasSubject(form) {
		return nil, apperrors.ErrSubjectRequired
	}
	existing, err := s.requestRepo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	applyFormDefaults(&form, s.today())

	actorID, name := currentUserName(ctx, s.userRepo, s.logger)
	request := formToRequest(form, name)
	request.CreatedBy = existing.CreatedBy

	updated, err := s.requestRepo.UpdateRequest(ctx, id, fullRequestPatch(request))
	if err != nil {
		utils.LoggerFromCtx(ctx, s.logger).Error("failed to save request", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	s.publishUpdate(ctx, *existing, *updated, actorID)
	res := requestToDTO(*updated)
	return &res, nil
}

func (s *RequestService) PatchRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	existing, err := s.requestRepo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := entities.RequestPatch{
		Subject:        payload.Subject.Ptr(),
		MaintenanceFor: payload.MaintenanceFor.Ptr(),
		TargetID:       payload.TargetID.Ptr(),
		Technician:     payload.Technician.Ptr(),
		Category:       payload.Category.Ptr(),
		Priority:       payload.Priority.Ptr(),
		Stage:          payload.Stage.Ptr(),
		Company:        payload.Company.Ptr(),
		Team:           payload.Team.Ptr(),
		Type:           payload.Type.Ptr(),
		RequestDate:    payload.RequestDate.Ptr(),
	}

	updated, err := s.requestRepo.UpdateRequest(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	actorID, _ := utils.GetUserIDFromCtx(ctx)
	s.publishUpdate(ctx, *existing, *updated, actorID)
	res := requestToDTO(*updated)
	return &res, nil
}

// UpdateRequestStage moves a request to another pipeline stage.
func (s *RequestService) UpdateRequestStage(ctx context.Context, id uint64, stage string) (*dto.RequestDTO, error) {
	if !constants.IsValidStage(stage) {
		return nil, apperrors.ErrInvalidStage
	}
	existing, err := s.requestRepo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := s.requestRepo.UpdateRequestStage(ctx, id, stage)
	if err != nil {
		return nil, err
	}
	actorID, _ := utils.GetUserIDFromCtx(ctx)
	s.publishUpdate(ctx, *existing, *updated, actorID)
	res := requestToDTO(*updated)
	return &res, nil
}

func (s *RequestService) publishUpdate(ctx context.Context, before, after entities.Request, actorID uint64) {
	if before.Stage != after.Stage {
		s.publisher.Publish(ctx, events.RequestStageChangedEvent{
			Request:       after,
			PreviousStage: before.Stage,
			ActorID:       actorID,
		})
		return
	}
	s.publisher.Publish(ctx, events.RequestUpdatedEvent{Request: after, ActorID: actorID})
}

func fullRequestPatch(r entities.Request) entities.RequestPatch {
	return entities.RequestPatch{
		Subject:        &r.Subject,
		MaintenanceFor: &r.MaintenanceFor,
		TargetID:       &r.TargetID,
		Technician:     &r.Technician,
		Category:       &r.Category,
		Priority:       &r.Priority,
		Stage:          &r.Stage,
		Company:        &r.Company,
		Team:           &r.Team,
		Type:           &r.Type,
		RequestDate:    &r.RequestDate,
		CreatedBy:      &r.CreatedBy,
	}
}
