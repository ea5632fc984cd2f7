package repositories

import (
	"context"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/seeders"

	"go.uber.org/zap"
)

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context) ([]entities.Request, error)
	GetRequest(ctx context.Context, id uint64) (*entities.Request, error)
	AddRequest(ctx context.Context, request entities.Request) (*entities.Request, error)
	UpdateRequest(ctx context.Context, id uint64, patch entities.RequestPatch) (*entities.Request, error)
	UpdateRequestStage(ctx context.Context, id uint64, stage string) (*entities.Request, error)
	FindByTarget(ctx context.Context, maintenanceFor, target string) ([]entities.Request, error)
}

type RequestRepository struct {
	requests *Collection[entities.Request]
}

func NewRequestRepository(ctx context.Context, storage StorageInterface, logger *zap.Logger) (RequestRepositoryInterface, error) {
	requests, err := LoadCollection(ctx, storage, logger, CollectionOptions[entities.Request]{
		Key:      constants.StorageKeyRequests,
		Defaults: seeders.DefaultRequests,
		IDOf:     func(r entities.Request) uint64 { return r.ID },
		WithID: func(r entities.Request, id uint64) entities.Request {
			r.ID = id
			return r
		},
	})
	if err != nil {
		return nil, err
	}
	return &RequestRepository{requests: requests}, nil
}

func (r *RequestRepository) GetRequests(_ context.Context) ([]entities.Request, error) {
	return r.requests.All(), nil
}

func (r *RequestRepository) GetRequest(_ context.Context, id uint64) (*entities.Request, error) {
	request, ok := r.requests.Find(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &request, nil
}

// AddRequest stores request; an id of 0 is assigned max+1.
func (r *RequestRepository) AddRequest(ctx context.Context, request entities.Request) (*entities.Request, error) {
	created, err := r.requests.Add(ctx, request)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *RequestRepository) UpdateRequest(ctx context.Context, id uint64, patch entities.RequestPatch) (*entities.Request, error) {
	updated, ok, err := r.requests.Update(ctx, id, patch.Apply)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &updated, nil
}

func (r *RequestRepository) UpdateRequestStage(ctx context.Context, id uint64, stage string) (*entities.Request, error) {
	return r.UpdateRequest(ctx, id, entities.RequestPatch{Stage: &stage})
}

// FindByTarget returns requests raised against the named equipment or work center.
func (r *RequestRepository) FindByTarget(_ context.Context, maintenanceFor, target string) ([]entities.Request, error) {
	return r.requests.Filter(func(req entities.Request) bool {
		return req.MaintenanceFor == maintenanceFor && req.TargetID == target
	}), nil
}
