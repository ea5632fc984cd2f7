package repositories

import (
	"context"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/seeders"

	"go.uber.org/zap"
)

type WorkCenterRepositoryInterface interface {
	GetWorkCenters(ctx context.Context) ([]entities.WorkCenter, error)
	GetWorkCenter(ctx context.Context, id uint64) (*entities.WorkCenter, error)
	AddWorkCenter(ctx context.Context, workCenter entities.WorkCenter) (*entities.WorkCenter, error)
	UpdateWorkCenter(ctx context.Context, id uint64, patch entities.WorkCenterPatch) (*entities.WorkCenter, error)
}

type WorkCenterRepository struct {
	workCenters *Collection[entities.WorkCenter]
}

func NewWorkCenterRepository(ctx context.Context, storage StorageInterface, logger *zap.Logger) (WorkCenterRepositoryInterface, error) {
	workCenters, err := LoadCollection(ctx, storage, logger, CollectionOptions[entities.WorkCenter]{
		Key:      constants.StorageKeyWorkCenters,
		Defaults: seeders.DefaultWorkCenters,
		IDOf:     func(w entities.WorkCenter) uint64 { return w.ID },
		WithID: func(w entities.WorkCenter, id uint64) entities.WorkCenter {
			w.ID = id
			return w
		},
	})
	if err != nil {
		return nil, err
	}
	return &WorkCenterRepository{workCenters: workCenters}, nil
}

func (r *WorkCenterRepository) GetWorkCenters(_ context.Context) ([]entities.WorkCenter, error) {
	return r.workCenters.All(), nil
}

func (r *WorkCenterRepository) GetWorkCenter(_ context.Context, id uint64) (*entities.WorkCenter, error) {
	workCenter, ok := r.workCenters.Find(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &workCenter, nil
}

func (r *WorkCenterRepository) AddWorkCenter(ctx context.Context, workCenter entities.WorkCenter) (*entities.WorkCenter, error) {
	created, err := r.workCenters.Add(ctx, workCenter)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *WorkCenterRepository) UpdateWorkCenter(ctx context.Context, id uint64, patch entities.WorkCenterPatch) (*entities.WorkCenter, error) {
	updated, ok, err := r.workCenters.Update(ctx, id, patch.Apply)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &updated, nil
}
