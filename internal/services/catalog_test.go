package services

import (
	"context"
	"net/url"
	"testing"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEquipmentService_DetailCountsRelatedRequests(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	_, err := repos.requests.AddRequest(ctx, entities.Request{Subject: "Keyboard", MaintenanceFor: constants.MaintenanceForEquipment, TargetID: "Acer Laptop/LP/203/19281928"})
	require.NoError(t, err)
	_, err = repos.requests.AddRequest(ctx, entities.Request{Subject: "Same name, other kind", MaintenanceFor: constants.MaintenanceForWorkCenter, TargetID: "Acer Laptop/LP/203/19281928"})
	require.NoError(t, err)

	svc := NewEquipmentService(repos.equipment, repos.requests, zap.NewNop())

	detail, err := svc.GetEquipment(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Acer Laptop/LP/203/19281928", detail.Name)
	assert.Equal(t, 2, detail.MaintenanceCount)
	assert.Len(t, detail.RelatedRequests, 2)
	assert.Equal(t, constants.DefaultCompany, detail.Company)

	_, err = svc.GetEquipment(ctx, 9)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEquipmentService_CreateUpdateAndSearch(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	svc := NewEquipmentService(repos.equipment, repos.requests, zap.NewNop())

	created, err := svc.CreateEquipment(ctx, dto.CreateEquipmentDTO{Name: "Forklift", Category: "Vehicles"})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), created.ID)

	updated, err := svc.UpdateEquipment(ctx, created.ID, dto.UpdateEquipmentDTO{Serial: null.StringFrom("FL-7")})
	require.NoError(t, err)
	assert.Equal(t, "Forklift", updated.Name)
	assert.Equal(t, "FL-7", updated.Serial)

	_, err = svc.UpdateEquipment(ctx, created.ID, dto.UpdateEquipmentDTO{Name: null.StringFrom(" ")})
	assert.ErrorIs(t, err, apperrors.ErrNameRequired)

	list, total, err := svc.GetEquipments(ctx, utils.ParseFilterFromQuery(url.Values{"filter[category]": {"vehicles"}}))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	assert.Equal(t, "Forklift", list[0].Name)
}

func TestWorkCenterService(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	_, err := repos.requests.AddRequest(ctx, entities.Request{Subject: "Drill bit", MaintenanceFor: constants.MaintenanceForWorkCenter, TargetID: "Drill 1"})
	require.NoError(t, err)

	svc := NewWorkCenterService(repos.workCenter, repos.requests, zap.NewNop())

	detail, err := svc.GetWorkCenter(ctx, 2)
	require.NoError(t, err)
	require.Len(t, detail.RelatedRequests, 1)
	assert.Equal(t, "Drill bit", detail.RelatedRequests[0].Subject)

	blank, err := svc.NewWorkCenterForm(ctx)
	require.NoError(t, err)
	assert.Empty(t, blank.RelatedRequests)

	_, err = svc.AddWorkCenter(ctx, dto.WorkCenterFormDTO{Name: "  "})
	assert.ErrorIs(t, err, apperrors.ErrWorkCenterNameRequired)

	added, err := svc.AddWorkCenter(ctx, dto.WorkCenterFormDTO{ID: 10, Name: "Paint booth", Code: "PB001"})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), added.ID)

	saved, err := svc.SaveWorkCenter(ctx, added.ID, dto.WorkCenterFormDTO{Name: "Paint booth 2"})
	require.NoError(t, err)
	assert.Equal(t, "Paint booth 2", saved.Name)
	assert.Empty(t, saved.Code)

	patched, err := svc.UpdateWorkCenter(ctx, added.ID, dto.UpdateWorkCenterDTO{Tag: null.StringFrom("Finishing")})
	require.NoError(t, err)
	assert.Equal(t, "Paint booth 2", patched.Name)
	assert.Equal(t, "Finishing", patched.Tag)

	_, err = svc.SaveWorkCenter(ctx, 99, dto.WorkCenterFormDTO{Name: "Ghost"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTeamService(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)
	svc := NewTeamService(repos.teams, zap.NewNop())

	teams, err := svc.GetTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, constants.DefaultTeam, teams[0].Name)

	created, err := svc.CreateTeam(ctx, dto.CreateTeamDTO{Name: "Electrical"})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), created.ID)
	assert.Equal(t, constants.DefaultCompany, created.Company)
	assert.Equal(t, []string{}, created.Members)

	_, err = svc.CreateTeam(ctx, dto.CreateTeamDTO{Name: ""})
	assert.ErrorIs(t, err, apperrors.ErrNameRequired)

	members := []string{"Marc Demo"}
	updated, err := svc.UpdateTeam(ctx, created.ID, dto.UpdateTeamDTO{Members: &members})
	require.NoError(t, err)
	assert.Equal(t, "Electrical", updated.Name)
	assert.Equal(t, []string{"Marc Demo"}, updated.Members)

	_, err = svc.GetTeam(ctx, 40)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
