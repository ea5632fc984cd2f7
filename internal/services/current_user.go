package services

import (
	"context"

	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/utils"

	"go.uber.org/zap"
)

// currentUserName resolves the display name of the authenticated user, or ""
// when the request carries no user or the account is gone.
func currentUserName(ctx context.Context, userRepo repositories.UserRepositoryInterface, logger *zap.Logger) (uint64, string) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return 0, ""
	}
	user, err := userRepo.FindUserByID(ctx, userID)
	if err != nil {
		logger.Warn("authenticated user not found", zap.Uint64("userID", userID), zap.Error(err))
		return userID, ""
	}
	return userID, user.Name
}
