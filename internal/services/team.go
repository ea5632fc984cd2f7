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

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]dto.TeamDTO, error)
	GetTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error)
	UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*dto.TeamDTO, error)
}

type TeamService struct {
	teamRepo repositories.TeamRepositoryInterface
	logger   *zap.Logger
}

func NewTeamService(teamRepo repositories.TeamRepositoryInterface, logger *zap.Logger) *TeamService {
	return &TeamService{teamRepo: teamRepo, logger: logger}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	teams, err := s.teamRepo.GetTeams(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TeamDTO, 0, len(teams))
	for _, t := range teams {
		out = append(out, teamToDTO(t))
	}
	return out, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error) {
	team, err := s.teamRepo.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	res := teamToDTO(*team)
	return &res, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error) {
	if isBlank(payload.Name) {
		return nil, apperrors.ErrNameRequired
	}
	company := payload.Company
	if company == "" {
		company = constants.DefaultCompany
	}
	created, err := s.teamRepo.CreateTeam(ctx, entities.Team{
		Name:    payload.Name,
		Members: payload.Members,
		Company: company,
	})
	if err != nil {
		s.logger.Error("failed to create team", zap.Error(err))
		return nil, err
	}
	res := teamToDTO(*created)
	return &res, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*dto.TeamDTO, error) {
	if payload.Name.Valid && isBlank(payload.Name.String) {
		return nil, apperrors.ErrNameRequired
	}
	updated, err := s.teamRepo.UpdateTeam(ctx, id, entities.TeamPatch{
		Name:    payload.Name.Ptr(),
		Members: payload.Members,
		Company: payload.Company.Ptr(),
	})
	if err != nil {
		return nil, err
	}
	res := teamToDTO(*updated)
	return &res, nil
}

func teamToDTO(t entities.Team) dto.TeamDTO {
	members := t.Members
	if members == nil {
		members = []string{}
	}
	return dto.TeamDTO{ID: t.ID, Name: t.Name, Members: members, Company: t.Company}
}
