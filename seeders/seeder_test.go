package seeders

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mapStore struct {
	data   map[string]string
	setErr error
}

func newMapStore() *mapStore { return &mapStore{data: map[string]string{}} }

func (s *mapStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *mapStore) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

func (s *mapStore) Remove(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func TestSeed_WritesEveryCollection(t *testing.T) {
	store := newMapStore()

	res, err := Seed(context.Background(), store, zap.NewNop(), Options{})
	require.NoError(t, err)
	assert.ElementsMatch(t, constants.AllStorageKeys, res.Written)
	assert.Empty(t, res.Skipped)

	var requests []entities.Request
	require.NoError(t, json.Unmarshal([]byte(store.data[constants.StorageKeyRequests]), &requests))
	require.Len(t, requests, 1)
	assert.Equal(t, "Test activity", requests[0].Subject)

	assert.Equal(t, "[]", store.data[constants.StorageKeyPortalUsers])
}

func TestSeed_SkipsPopulatedKeysUnlessReset(t *testing.T) {
	store := newMapStore()
	store.data[constants.StorageKeyTeams] = `[{"id":9,"name":"Mine"}]`

	res, err := Seed(context.Background(), store, zap.NewNop(), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{constants.StorageKeyTeams}, res.Skipped)
	assert.Equal(t, `[{"id":9,"name":"Mine"}]`, store.data[constants.StorageKeyTeams])

	store.data["unrelated"] = "kept"
	res, err = Seed(context.Background(), store, zap.NewNop(), Options{Reset: true})
	require.NoError(t, err)
	assert.Empty(t, res.Skipped)
	assert.Len(t, res.Written, len(constants.AllStorageKeys))
	assert.Equal(t, "kept", store.data["unrelated"])

	var teams []entities.Team
	require.NoError(t, json.Unmarshal([]byte(store.data[constants.StorageKeyTeams]), &teams))
	assert.Equal(t, constants.DefaultTeam, teams[0].Name)
}

func TestSeed_WriteError(t *testing.T) {
	store := newMapStore()
	store.setErr = errors.New("read-only")

	_, err := Seed(context.Background(), store, zap.NewNop(), Options{})
	assert.ErrorContains(t, err, "read-only")
}

func TestDefaults_ReturnFreshSlices(t *testing.T) {
	a := DefaultEquipments()
	a[0].Name = "changed"
	assert.NotEqual(t, "changed", DefaultEquipments()[0].Name)
}
