package storage

import (
	"context"
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

// Option rows live in eleven structurally identical tables, so every method
// takes the taxonomy and scopes the query with Table().

// ListOptions returns a taxonomy's rows in sort order.
func (r *PostgresRepo) ListOptions(ctx context.Context, tax model.Taxonomy) ([]model.Option, error) {
	var options []model.Option
	startTime := utils.Now()
	err := r.db.WithContext(ctx).
		Table(string(tax)).
		Order("sort_order asc, id asc").
		Find(&options).Error
	observer.ObserveDbOperationDuration("list", string(tax), time.Since(startTime), err)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list %s: %w", apperrors.ErrDatabase, tax, err)
	}
	return options, nil
}

// MaxSortOrder returns the highest sort_order in a taxonomy, zero when empty.
func (r *PostgresRepo) MaxSortOrder(ctx context.Context, tax model.Taxonomy) (int, error) {
	var max *int
	startTime := utils.Now()
	err := r.db.WithContext(ctx).
		Table(string(tax)).
		Select("max(sort_order)").
		Scan(&max).Error
	observer.ObserveDbOperationDuration("max_sort_order", string(tax), time.Since(startTime), err)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get max sort order for %s: %w", apperrors.ErrDatabase, tax, err)
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// InsertOption creates an option row, filling its generated ID.
func (r *PostgresRepo) InsertOption(ctx context.Context, tax model.Taxonomy, option *model.Option) error {
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Table(string(tax)).Create(option).Error
	observer.ObserveDbOperationDuration("insert", string(tax), time.Since(startTime), err)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to insert option",
			zap.String("taxonomy", string(tax)), zap.String("name", option.Name), zap.Error(err))
		return checkConstraintViolation(err)
	}
	return nil
}

// UpdateOption renames an option row or toggles its slot-filler flag.
func (r *PostgresRepo) UpdateOption(ctx context.Context, tax model.Taxonomy, option model.Option) error {
	columns := map[string]interface{}{"name": option.Name}
	if tax.HasSlotFiller() && option.IsSlotFiller != nil {
		columns["is_slot_filler"] = *option.IsSlotFiller
	}

	startTime := utils.Now()
	result := r.db.WithContext(ctx).
		Table(string(tax)).
		Where("id = ?", option.ID).
		Updates(columns)
	observer.ObserveDbOperationDuration("update", string(tax), time.Since(startTime), result.Error)
	if result.Error != nil {
		logger.FromContext(ctx).Error("Failed to update option",
			zap.String("taxonomy", string(tax)), zap.Int64("id", option.ID), zap.Error(result.Error))
		return checkConstraintViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: option %d not found in %s", apperrors.ErrNotFound, option.ID, tax)
	}
	return nil
}

// DeleteOption removes an option row.
func (r *PostgresRepo) DeleteOption(ctx context.Context, tax model.Taxonomy, id int64) error {
	startTime := utils.Now()
	result := r.db.WithContext(ctx).
		Table(string(tax)).
		Where("id = ?", id).
		Delete(&model.Option{})
	observer.ObserveDbOperationDuration("delete", string(tax), time.Since(startTime), result.Error)
	if result.Error != nil {
		logger.FromContext(ctx).Error("Failed to delete option",
			zap.String("taxonomy", string(tax)), zap.Int64("id", id), zap.Error(result.Error))
		return checkConstraintViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: option %d not found in %s", apperrors.ErrNotFound, id, tax)
	}
	return nil
}

// UpdateSortOrders rewrites the sort_order of every listed option in one
// transaction, so a reorder lands fully or not at all.
func (r *PostgresRepo) UpdateSortOrders(ctx context.Context, tax model.Taxonomy, options []model.Option) error {
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, opt := range options {
			result := tx.Table(string(tax)).
				Where("id = ?", opt.ID).
				Update("sort_order", opt.SortOrder)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: option %d not found in %s", apperrors.ErrNotFound, opt.ID, tax)
			}
		}
		return nil
	})
	observer.ObserveDbOperationDuration("reorder", string(tax), time.Since(startTime), err)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to update sort orders",
			zap.String("taxonomy", string(tax)), zap.Int("count", len(options)), zap.Error(err))
		if apperrors.IsNotFoundError(err) {
			return err
		}
		return checkConstraintViolation(err)
	}
	return nil
}
