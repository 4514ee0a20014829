package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/observer"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// ListProspects returns every prospect ordered by name.
func (r *PostgresRepo) ListProspects(ctx context.Context) ([]model.Prospect, error) {
	var prospects []model.Prospect
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Order("name asc").Find(&prospects).Error
	observer.ObserveDbOperationDuration("list", "prospect", time.Since(startTime), err)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list prospects: %w", apperrors.ErrDatabase, err)
	}
	return prospects, nil
}

// GetProspect fetches one prospect by primary key.
func (r *PostgresRepo) GetProspect(ctx context.Context, id int64) (*model.Prospect, error) {
	var prospect model.Prospect
	startTime := utils.Now()
	err := r.db.WithContext(ctx).First(&prospect, id).Error
	observer.ObserveDbOperationDuration("get", "prospect", time.Since(startTime), err)
	if err != nil {
		return nil, checkConstraintViolation(err)
	}
	return &prospect, nil
}

// InsertProspect creates a prospect, filling its generated ID.
func (r *PostgresRepo) InsertProspect(ctx context.Context, prospect *model.Prospect) error {
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Create(prospect).Error
	observer.ObserveDbOperationDuration("insert", "prospect", time.Since(startTime), err)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to insert prospect", zap.String("name", prospect.Name), zap.Error(err))
		return checkConstraintViolation(err)
	}
	return nil
}

// UpdateProspect overwrites the editable columns of an existing prospect.
func (r *PostgresRepo) UpdateProspect(ctx context.Context, prospect model.Prospect) error {
	startTime := utils.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Prospect{}).
		Where("id = ?", prospect.ID).
		Select(model.ProspectUpdateColumns()).
		Updates(prospect)
	observer.ObserveDbOperationDuration("update", "prospect", time.Since(startTime), result.Error)
	if result.Error != nil {
		logger.FromContext(ctx).Error("Failed to update prospect", zap.Int64("id", prospect.ID), zap.Error(result.Error))
		return checkConstraintViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: prospect %d not found", apperrors.ErrNotFound, prospect.ID)
	}
	return nil
}

// DeleteProspect removes a prospect and everything hanging off it: contacts
// and their change log, documents, and routes. Drivers linked to the deleted
// routes are unlinked, not deleted; a candidate outlives the account. One
// transaction, all or nothing.
func (r *PostgresRepo) DeleteProspect(ctx context.Context, id int64) error {
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.RouteDriver{}).
			Where("prospect_route_id IN (?)",
				tx.Model(&model.ProspectRoute{}).Select("id").Where("prospect_id = ?", id)).
			Update("prospect_route_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("prospect_id = ?", id).Delete(&model.ProspectRoute{}).Error; err != nil {
			return err
		}
		if err := tx.Where("prospect_id = ?", id).Delete(&model.Document{}).Error; err != nil {
			return err
		}
		if err := tx.Where("prospect_id = ?", id).Delete(&model.ContactChange{}).Error; err != nil {
			return err
		}
		if err := tx.Where("prospect_id = ?", id).Delete(&model.Contact{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Prospect{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: prospect %d not found", apperrors.ErrNotFound, id)
		}
		return nil
	})
	observer.ObserveDbOperationDuration("delete", "prospect", time.Since(startTime), err)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to delete prospect", zap.Int64("id", id), zap.Error(err))
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return checkConstraintViolation(err)
	}
	return nil
}
