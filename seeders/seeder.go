package seeders

import (
	"context"
	"encoding/json"
	"fmt"

	"maintenance-system/pkg/constants"

	"go.uber.org/zap"
)

// keyValueStore is the subset of the storage shim the seeder needs.
type keyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type Options struct {
	// Reset removes every application key before writing the defaults.
	Reset bool
}

// Result reports which keys were written and which were left alone.
type Result struct {
	Written []string
	Skipped []string
}

type seed struct {
	key  string
	data func() interface{}
}

func seeds() []seed {
	return []seed{
		{constants.StorageKeyTeams, func() interface{} { return DefaultTeams() }},
		{constants.StorageKeyEquipments, func() interface{} { return DefaultEquipments() }},
		{constants.StorageKeyWorkCenters, func() interface{} { return DefaultWorkCenters() }},
		{constants.StorageKeyRequests, func() interface{} { return DefaultRequests() }},
		{constants.StorageKeyPortalUsers, func() interface{} { return DefaultPortalUsers() }},
	}
}

// Seed writes the default collections. Keys that already hold data are
// skipped unless opts.Reset is set.
func Seed(ctx context.Context, store keyValueStore, logger *zap.Logger, opts Options) (Result, error) {
	var res Result

	if opts.Reset {
		for _, key := range constants.AllStorageKeys {
			if err := store.Remove(ctx, key); err != nil {
				return res, fmt.Errorf("reset %s: %w", key, err)
			}
		}
		logger.Info("storage keys removed", zap.Strings("keys", constants.AllStorageKeys))
	}

	for _, s := range seeds() {
		if !opts.Reset {
			existing, found, err := store.Get(ctx, s.key)
			if err != nil {
				return res, fmt.Errorf("check %s: %w", s.key, err)
			}
			if found && existing != "" {
				logger.Info("key already populated, skipping", zap.String("key", s.key))
				res.Skipped = append(res.Skipped, s.key)
				continue
			}
		}

		payload, err := json.Marshal(s.data())
		if err != nil {
			return res, fmt.Errorf("encode %s: %w", s.key, err)
		}
		if err := store.Set(ctx, s.key, string(payload)); err != nil {
			return res, fmt.Errorf("write %s: %w", s.key, err)
		}
		logger.Info("key seeded", zap.String("key", s.key))
		res.Written = append(res.Written, s.key)
	}

	return res, nil
}
