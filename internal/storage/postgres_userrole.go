package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/observer"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// GetUserRole fetches the role row for one identity-provider user ID.
// ErrNotFound when the user has never been granted a role.
func (r *PostgresRepo) GetUserRole(ctx context.Context, userID string) (*model.UserRole, error) {
	var role model.UserRole
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&role).Error
	observer.ObserveDbOperationDuration("get", "user_role", time.Since(startTime), err)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no role for user %s", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("%w: failed to get role for user %s: %w", apperrors.ErrDatabase, userID, err)
	}
	return &role, nil
}

// ListUserRoles returns every role grant ordered by email.
func (r *PostgresRepo) ListUserRoles(ctx context.Context) ([]model.UserRole, error) {
	var roles []model.UserRole
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Order("email asc").Find(&roles).Error
	observer.ObserveDbOperationDuration("list", "user_role", time.Since(startTime), err)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list user roles: %w", apperrors.ErrDatabase, err)
	}
	return roles, nil
}

// UpsertUserRole grants or changes a user's role, keyed by user_id.
func (r *PostgresRepo) UpsertUserRole(ctx context.Context, role model.UserRole) error {
	startTime := utils.Now()
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "role"}),
		}).
		Create(&role).Error
	observer.ObserveDbOperationDuration("upsert", "user_role", time.Since(startTime), err)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to upsert user role",
			zap.String("user_id", role.UserID), zap.String("role", role.Role), zap.Error(err))
		return checkConstraintViolation(err)
	}
	return nil
}

// DeleteUserRole revokes a user's role grant, dropping them back to viewer.
func (r *PostgresRepo) DeleteUserRole(ctx context.Context, userID string) error {
	startTime := utils.Now()
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.UserRole{})
	observer.ObserveDbOperationDuration("delete", "user_role", time.Since(startTime), result.Error)
	if result.Error != nil {
		logger.FromContext(ctx).Error("Failed to delete user role", zap.String("user_id", userID), zap.Error(result.Error))
		return checkConstraintViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: no role for user %s", apperrors.ErrNotFound, userID)
	}
	return nil
}
