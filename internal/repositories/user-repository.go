package repositories

import (
	"context"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/seeders"

	"go.uber.org/zap"
)

type UserRepositoryInterface interface {
	FindUserByEmail(ctx context.Context, email string) (*entities.PortalUser, error)
	FindUserByID(ctx context.Context, id uint64) (*entities.PortalUser, error)
	CreateUser(ctx context.Context, user entities.PortalUser) (*entities.PortalUser, error)
}

type UserRepository struct {
	users *Collection[entities.PortalUser]
}

func NewUserRepository(ctx context.Context, storage StorageInterface, logger *zap.Logger) (UserRepositoryInterface, error) {
	users, err := LoadCollection(ctx, storage, logger, CollectionOptions[entities.PortalUser]{
		Key:      constants.StorageKeyPortalUsers,
		Defaults: seeders.DefaultPortalUsers,
		IDOf:     func(u entities.PortalUser) uint64 { return u.ID },
		WithID: func(u entities.PortalUser, id uint64) entities.PortalUser {
			u.ID = id
			return u
		},
	})
	if err != nil {
		return nil, err
	}
	return &UserRepository{users: users}, nil
}

// FindUserByEmail matches emails exactly, as they were entered at signup.
func (r *UserRepository) FindUserByEmail(_ context.Context, email string) (*entities.PortalUser, error) {
	matches := r.users.Filter(func(u entities.PortalUser) bool { return u.Email == email })
	if len(matches) == 0 {
		return nil, apperrors.ErrAccountNotExist
	}
	return &matches[0], nil
}

func (r *UserRepository) FindUserByID(_ context.Context, id uint64) (*entities.PortalUser, error) {
	user, ok := r.users.Find(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

// CreateUser rejects a duplicate email and assigns max+1 as the id. The check
// and the insert happen under the same lock.
func (r *UserRepository) CreateUser(ctx context.Context, user entities.PortalUser) (*entities.PortalUser, error) {
	user.ID = 0
	created, err := r.users.Insert(ctx, user, func(existing []entities.PortalUser) error {
		for _, u := range existing {
			if u.Email == user.Email {
				return apperrors.ErrDuplicateEmail
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

