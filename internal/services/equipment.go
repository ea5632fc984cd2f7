package services

import (
	"context"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/types"
	"maintenance-system/pkg/utils"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error)
	GetEquipment(ctx context.Context, id uint64) (*dto.EquipmentDetailDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	requestRepository   repositories.RequestRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	requestRepository repositories.RequestRepositoryInterface,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		requestRepository:   requestRepository,
		logger:              logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	equipments, err := s.equipmentRepository.GetEquipments(ctx)
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]entities.Equipment, 0, len(equipments))
	for _, e := range equipments {
		if filter.Search != "" && !containsFold(filter.Search, e.Name, e.Category, e.Serial, e.Employee, e.Department) {
			continue
		}
		if c := filter.FilterValue("category"); c != "" && !equalsAnyFold(c, e.Category) {
			continue
		}
		filtered = append(filtered, e)
	}

	out := make([]dto.EquipmentDTO, 0, len(filtered))
	for _, e := range utils.Paginate(filtered, filter) {
		out = append(out, equipmentToDTO(e))
	}
	return out, uint64(len(filtered)), nil
}

// GetEquipment returns the equipment form with its maintenance history.
func (s *EquipmentService) GetEquipment(ctx context.Context, id uint64) (*dto.EquipmentDetailDTO, error) {
	equipment, err := s.equipmentRepository.GetEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	related, err := s.requestRepository.FindByTarget(ctx, constants.MaintenanceForEquipment, equipment.Name)
	if err != nil {
		return nil, err
	}

	return &dto.EquipmentDetailDTO{
		EquipmentDTO:     equipmentToDTO(*equipment),
		Company:          constants.DefaultCompany,
		MaintenanceCount: len(related),
		RelatedRequests:  requestsToDTO(related),
	}, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	created, err := s.equipmentRepository.CreateEquipment(ctx, entities.Equipment{
		Name:       payload.Name,
		Category:   payload.Category,
		Serial:     payload.Serial,
		Employee:   payload.Employee,
		Department: payload.Department,
	})
	if err != nil {
		s.logger.Error("failed to create equipment", zap.Error(err))
		return nil, err
	}
	s.logger.Info("equipment created", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	res := equipmentToDTO(*created)
	return &res, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	if payload.Name.Valid && isBlank(payload.Name.String) {
		return nil, apperrors.ErrNameRequired
	}
	updated, err := s.equipmentRepository.UpdateEquipment(ctx, id, entities.EquipmentPatch{
		Name:       payload.Name.Ptr(),
		Category:   payload.Category.Ptr(),
		Serial:     payload.Serial.Ptr(),
		Employee:   payload.Employee.Ptr(),
		Department: payload.Department.Ptr(),
	})
	if err != nil {
		return nil, err
	}
	res := equipmentToDTO(*updated)
	return &res, nil
}

func equipmentToDTO(e entities.Equipment) dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:         e.ID,
		Name:       e.Name,
		Category:   e.Category,
		Serial:     e.Serial,
		Employee:   e.Employee,
		Department: e.Department,
	}
}
