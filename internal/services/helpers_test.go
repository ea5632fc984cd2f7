package services

import (
	"context"
	"sync"
	"testing"

	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/contextkeys"
	"maintenance-system/pkg/eventbus"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testRepos struct {
	storage    *repositories.MemoryStorage
	requests   repositories.RequestRepositoryInterface
	users      repositories.UserRepositoryInterface
	equipment  repositories.EquipmentRepositoryInterface
	workCenter repositories.WorkCenterRepositoryInterface
	teams      repositories.TeamRepositoryInterface
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()
	storage := repositories.NewMemoryStorage()

	requests, err := repositories.NewRequestRepository(ctx, storage, logger)
	require.NoError(t, err)
	users, err := repositories.NewUserRepository(ctx, storage, logger)
	require.NoError(t, err)
	equipment, err := repositories.NewEquipmentRepository(ctx, storage, logger)
	require.NoError(t, err)
	workCenter, err := repositories.NewWorkCenterRepository(ctx, storage, logger)
	require.NoError(t, err)
	teams, err := repositories.NewTeamRepository(ctx, storage, logger)
	require.NoError(t, err)

	return &testRepos{
		storage:    storage,
		requests:   requests,
		users:      users,
		equipment:  equipment,
		workCenter: workCenter,
		teams:      teams,
	}
}

// withUser registers a portal user and returns a context authenticated as them.
func (r *testRepos) withUser(t *testing.T, name string) context.Context {
	t.Helper()
	user, err := r.users.CreateUser(context.Background(), entities.PortalUser{Name: name, Email: name + "@example.com", Password: "x"})
	require.NoError(t, err)
	return context.WithValue(context.Background(), contextkeys.UserIDKey, user.ID)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event eventbus.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Name())
	}
	return out
}
