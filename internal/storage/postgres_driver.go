package storage

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/observer"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// ListDrivers returns every route driver ordered by name.
func (r *PostgresRepo) ListDrivers(ctx context.Context) ([]model.RouteDriver, error) {
	var drivers []model.RouteDriver
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Order("driver_name asc").Find(&drivers).Error
	observer.ObserveDbOperationDuration("list", "driver", time.Since(startTime), err)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list drivers: %w", apperrors.ErrDatabase, err)
	}
	return drivers, nil
}

// ListDriversByRoute returns the drivers linked to one route.
func (r *PostgresRepo) ListDriversByRoute(ctx context.Context, routeID int64) ([]model.RouteDriver, error) {
	var drivers []model.RouteDriver
	startTime := utils.Now()
	err := r.db.WithContext(ctx).
		Where("prospect_route_id = ?", routeID).
		Order("driver_name asc").
		Find(&drivers).Error
	observer.ObserveDbOperationDuration("list_by_route", "driver", time.Since(startTime), err)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list drivers for route %d: %w", apperrors.ErrDatabase, routeID, err)
	}
	return drivers, nil
}

// GetDriver fetches one driver by primary key.
func (r *PostgresRepo) GetDriver(ctx context.Context, id int64) (*model.RouteDriver, error) {
	var driver model.RouteDriver
	startTime := utils.Now()
	err := r.db.WithContext(ctx).First(&driver, id).Error
	observer.ObserveDbOperationDuration("get", "driver", time.Since(startTime), err)
	if err != nil {
		return nil, checkConstraintViolation(err)
	}
	return &driver, nil
}

// InsertDriver creates a driver, filling its generated ID.
func (r *PostgresRepo) InsertDriver(ctx context.Context, driver *model.RouteDriver) error {
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Create(driver).Error
	observer.ObserveDbOperationDuration("insert", "driver", time.Since(startTime), err)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to insert driver", zap.Error(err))
		return checkConstraintViolation(err)
	}
	return nil
}

// UpdateDriver overwrites the editable columns of an existing driver,
// including the audit triple and derived day counts the driver service fills.
func (r *PostgresRepo) UpdateDriver(ctx context.Context, driver model.RouteDriver) error {
	startTime := utils.Now()
	result := r.db.WithContext(ctx).
		Model(&model.RouteDriver{}).
		Where("id = ?", driver.ID).
		Select(model.DriverUpdateColumns()).
		Updates(driver)
	observer.ObserveDbOperationDuration("update", "driver", time.Since(startTime), result.Error)
	if result.Error != nil {
		logger.FromContext(ctx).Error("Failed to update driver", zap.Int64("id", driver.ID), zap.Error(result.Error))
		return checkConstraintViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: driver %d not found", apperrors.ErrNotFound, driver.ID)
	}
	return nil
}

// DeleteDriver removes a driver row.
func (r *PostgresRepo) DeleteDriver(ctx context.Context, id int64) error {
	startTime := utils.Now()
	result := r.db.WithContext(ctx).Delete(&model.RouteDriver{}, id)
	observer.ObserveDbOperationDuration("delete", "driver", time.Since(startTime), result.Error)
	if result.Error != nil {
		logger.FromContext(ctx).Error("Failed to delete driver", zap.Int64("id", id), zap.Error(result.Error))
		return checkConstraintViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: driver %d not found", apperrors.ErrNotFound, id)
	}
	return nil
}

// ReassignDrivers moves every driver on one route to another in a single
// statement. Used to park a deleted route's drivers on the sentinel.
func (r *PostgresRepo) ReassignDrivers(ctx context.Context, fromRouteID, toRouteID int64) (int64, error) {
	startTime := utils.Now()
	result := r.db.WithContext(ctx).
		Model(&model.RouteDriver{}).
		Where("prospect_route_id = ?", fromRouteID).
		Update("prospect_route_id", toRouteID)
	observer.ObserveDbOperationDuration("reassign", "driver", time.Since(startTime), result.Error)
	if result.Error != nil {
		logger.FromContext(ctx).Error("Failed to reassign drivers",
			zap.Int64("from_route", fromRouteID), zap.Int64("to_route", toRouteID), zap.Error(result.Error))
		return 0, checkConstraintViolation(result.Error)
	}
	return result.RowsAffected, nil
}
