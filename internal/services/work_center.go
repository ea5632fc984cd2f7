package services

import (
	"context"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"

	"go.uber.org/zap"
)

type WorkCenterServiceInterface interface {
	GetWorkCenters(ctx context.Context) ([]dto.WorkCenterDTO, error)
	GetWorkCenter(ctx context.Context, id uint64) (*dto.WorkCenterDetailDTO, error)
	NewWorkCenterForm(ctx context.Context) (*dto.WorkCenterDetailDTO, error)
	AddWorkCenter(ctx context.Context, form dto.WorkCenterFormDTO) (*dto.WorkCenterDTO, error)
	SaveWorkCenter(ctx context.Context, id uint64, form dto.WorkCenterFormDTO) (*dto.WorkCenterDTO, error)
	UpdateWorkCenter(ctx context.Context, id uint64, payload dto.UpdateWorkCenterDTO) (*dto.WorkCenterDTO, error)
}

type WorkCenterService struct {
	workCenterRepo repositories.WorkCenterRepositoryInterface
	requestRepo    repositories.RequestRepositoryInterface
	logger         *zap.Logger
}

func NewWorkCenterService(
	workCenterRepo repositories.WorkCenterRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	logger *zap.Logger,
) *WorkCenterService {
	return &WorkCenterService{
		workCenterRepo: workCenterRepo,
		requestRepo:    requestRepo,
		logger:         logger,
	}
}

func (s *WorkCenterService) GetWorkCenters(ctx context.Context) ([]dto.WorkCenterDTO, error) {
	workCenters, err := s.workCenterRepo.GetWorkCenters(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkCenterDTO, 0, len(workCenters))
	for _, w := range workCenters {
		out = append(out, workCenterToDTO(w))
	}
	return out, nil
}

// GetWorkCenter returns the work center with the requests raised against it.
func (s *WorkCenterService) GetWorkCenter(ctx context.Context, id uint64) (*dto.WorkCenterDetailDTO, error) {
	workCenter, err := s.workCenterRepo.GetWorkCenter(ctx, id)
	if err != nil {
		return nil, err
	}
	related, err := s.requestRepo.FindByTarget(ctx, constants.MaintenanceForWorkCenter, workCenter.Name)
	if err != nil {
		return nil, err
	}
	return &dto.WorkCenterDetailDTO{
		WorkCenterDTO:   workCenterToDTO(*workCenter),
		RelatedRequests: requestsToDTO(related),
	}, nil
}

// NewWorkCenterForm is the blank form; an unsaved work center has no requests.
func (s *WorkCenterService) NewWorkCenterForm(_ context.Context) (*dto.WorkCenterDetailDTO, error) {
	return &dto.WorkCenterDetailDTO{RelatedRequests: []dto.RequestDTO{}}, nil
}

func (s *WorkCenterService) AddWorkCenter(ctx context.Context, form dto.WorkCenterFormDTO) (*dto.WorkCenterDTO, error) {
	if isBlank(form.Name) {
		return nil, apperrors.ErrWorkCenterNameRequired
	}
	created, err := s.workCenterRepo.AddWorkCenter(ctx, entities.WorkCenter{
		ID:   0,
		Name: form.Name,
		Code: form.Code,
		Tag:  form.Tag,
	})
	if err != nil {
		s.logger.Error("failed to add work center", zap.Error(err))
		return nil, err
	}
	s.logger.Info("work center added", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	res := workCenterToDTO(*created)
	return &res, nil
}

// SaveWorkCenter writes every form field over the stored work center.
func (s *WorkCenterService) SaveWorkCenter(ctx context.Context, id uint64, form dto.WorkCenterFormDTO) (*dto.WorkCenterDTO, error) {
	if isBlank(form.Name) {
		return nil, apperrors.ErrWorkCenterNameRequired
	}
	updated, err := s.workCenterRepo.UpdateWorkCenter(ctx, id, entities.WorkCenterPatch{
		Name: &form.Name,
		Code: &form.Code,
		Tag:  &form.Tag,
	})
	if err != nil {
		return nil, err
	}
	res := workCenterToDTO(*updated)
	return &res, nil
}

func (s *WorkCenterService) UpdateWorkCenter(ctx context.Context, id uint64, payload dto.UpdateWorkCenterDTO) (*dto.WorkCenterDTO, error) {
	if payload.Name.Valid && isBlank(payload.Name.String) {
		return nil, apperrors.ErrWorkCenterNameRequired
	}
	updated, err := s.workCenterRepo.UpdateWorkCenter(ctx, id, entities.WorkCenterPatch{
		Name: payload.Name.Ptr(),
		Code: payload.Code.Ptr(),
		Tag:  payload.Tag.Ptr(),
	})
	if err != nil {
		return nil, err
	}
	res := workCenterToDTO(*updated)
	return &res, nil
}

func workCenterToDTO(w entities.WorkCenter) dto.WorkCenterDTO {
	return dto.WorkCenterDTO{ID: w.ID, Name: w.Name, Code: w.Code, Tag: w.Tag}
}
