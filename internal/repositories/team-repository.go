package repositories

import (
	"context"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/seeders"

	"go.uber.org/zap"
)

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]entities.Team, error)
	GetTeam(ctx context.Context, id uint64) (*entities.Team, error)
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id uint64, patch entities.TeamPatch) (*entities.Team, error)
}

type TeamRepository struct {
	teams *Collection[entities.Team]
}

func NewTeamRepository(ctx context.Context, storage StorageInterface, logger *zap.Logger) (TeamRepositoryInterface, error) {
	teams, err := LoadCollection(ctx, storage, logger, CollectionOptions[entities.Team]{
		Key:      constants.StorageKeyTeams,
		Defaults: seeders.DefaultTeams,
		IDOf:     func(t entities.Team) uint64 { return t.ID },
		WithID: func(t entities.Team, id uint64) entities.Team {
			t.ID = id
			return t
		},
	})
	if err != nil {
		return nil, err
	}
	return &TeamRepository{teams: teams}, nil
}

func (r *TeamRepository) GetTeams(_ context.Context) ([]entities.Team, error) {
	return r.teams.All(), nil
}

func (r *TeamRepository) GetTeam(_ context.Context, id uint64) (*entities.Team, error) {
	team, ok := r.teams.Find(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &team, nil
}

func (r *TeamRepository) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	if team.Members == nil {
		team.Members = []string{}
	}
	created, err := r.teams.Add(ctx, team)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *TeamRepository) UpdateTeam(ctx context.Context, id uint64, patch entities.TeamPatch) (*entities.Team, error) {
	updated, ok, err := r.teams.Update(ctx, id, patch.Apply)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &updated, nil
}
