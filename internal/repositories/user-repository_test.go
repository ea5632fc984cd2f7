package repositories

import (
	"context"
	"testing"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	repo, err := NewUserRepository(ctx, storage, zap.NewNop())
	require.NoError(t, err)

	first, err := repo.CreateUser(ctx, entities.PortalUser{ID: 50, Name: "Mitchell Admin", Email: "admin@example.com", Password: "hash"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), first.ID)

	second, err := repo.CreateUser(ctx, entities.PortalUser{Name: "Marc Demo", Email: "marc@example.com", Password: "hash"})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second.ID)

	_, err = repo.CreateUser(ctx, entities.PortalUser{Name: "Again", Email: "admin@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)

	found, err := repo.FindUserByEmail(ctx, "marc@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Marc Demo", found.Name)

	_, err = repo.FindUserByEmail(ctx, "MARC@example.com")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotExist)

	byID, err := repo.FindUserByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", byID.Email)

	_, err = repo.FindUserByID(ctx, 9)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	raw, found2, err := storage.Get(ctx, constants.StorageKeyPortalUsers)
	require.NoError(t, err)
	require.True(t, found2)
	assert.Contains(t, raw, `"email":"marc@example.com"`)
}

func TestRequestRepository_DefaultsAndUpdates(t *testing.T) {
	ctx := context.Background()
	repo, err := NewRequestRepository(ctx, NewMemoryStorage(), zap.NewNop())
	require.NoError(t, err)

	all, err := repo.GetRequests(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Test activity", all[0].Subject)

	created, err := repo.AddRequest(ctx, entities.Request{Subject: "Belt slipping", MaintenanceFor: constants.MaintenanceForWorkCenter, TargetID: "Drill 1"})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), created.ID)

	moved, err := repo.UpdateRequestStage(ctx, created.ID, constants.StageRepaired)
	require.NoError(t, err)
	assert.Equal(t, constants.StageRepaired, moved.Stage)
	assert.Equal(t, "Belt slipping", moved.Subject)

	_, err = repo.UpdateRequestStage(ctx, 77, constants.StageScrap)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.GetRequest(ctx, 77)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	related, err := repo.FindByTarget(ctx, constants.MaintenanceForWorkCenter, "Drill 1")
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, created.ID, related[0].ID)

	none, err := repo.FindByTarget(ctx, constants.MaintenanceForEquipment, "Drill 1")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTeamRepository_UpdateMembers(t *testing.T) {
	ctx := context.Background()
	repo, err := NewTeamRepository(ctx, NewMemoryStorage(), zap.NewNop())
	require.NoError(t, err)

	members := []string{"Aka Foster"}
	updated, err := repo.UpdateTeam(ctx, 2, entities.TeamPatch{Members: &members})
	require.NoError(t, err)
	assert.Equal(t, "Metrology", updated.Name)
	assert.Equal(t, []string{"Aka Foster"}, updated.Members)
}
