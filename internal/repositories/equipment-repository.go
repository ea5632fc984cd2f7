package repositories

import (
	"context"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/seeders"

	"go.uber.org/zap"
)

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	GetEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, patch entities.EquipmentPatch) (*entities.Equipment, error)
}

type EquipmentRepository struct {
	equipments *Collection[entities.Equipment]
}

func NewEquipmentRepository(ctx context.Context, storage StorageInterface, logger *zap.Logger) (EquipmentRepositoryInterface, error) {
	equipments, err := LoadCollection(ctx, storage, logger, CollectionOptions[entities.Equipment]{
		Key:      constants.StorageKeyEquipments,
		Defaults: seeders.DefaultEquipments,
		IDOf:     func(e entities.Equipment) uint64 { return e.ID },
		WithID: func(e entities.Equipment, id uint64) entities.Equipment {
			e.ID = id
			return e
		},
	})
	if err != nil {
		return nil, err
	}
	return &EquipmentRepository{equipments: equipments}, nil
}

func (r *EquipmentRepository) GetEquipments(_ context.Context) ([]entities.Equipment, error) {
	return r.equipments.All(), nil
}

func (r *EquipmentRepository) GetEquipment(_ context.Context, id uint64) (*entities.Equipment, error) {
	equipment, ok := r.equipments.Find(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &equipment, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	created, err := r.equipments.Add(ctx, equipment)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, patch entities.EquipmentPatch) (*entities.Equipment, error) {
	updated, ok, err := r.equipments.Update(ctx, id, patch.Apply)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &updated, nil
}
