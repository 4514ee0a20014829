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

// ListRoutes returns every route ordered by name.
func (r *PostgresRepo) ListRoutes(ctx context.Context) ([]model.ProspectRoute, error) {
	var routes []model.ProspectRoute
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Order("route_id_name asc").Find(&routes).Error
	observer.ObserveDbOperationDuration("list", "route", time.Since(startTime), err)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list routes: %w", apperrors.ErrDatabase, err)
	}
	return routes, nil
}

// ListRoutesByProspect returns one prospect's routes ordered by name.
func (r *PostgresRepo) ListRoutesByProspect(ctx context.Context, prospectID int64) ([]model.ProspectRoute, error) {
	var routes []model.ProspectRoute
	startTime := utils.Now()
	err := r.db.WithContext(ctx).
		Where("prospect_id = ?", prospectID).
		Order("route_id_name asc").
		Find(&routes).Error
	observer.ObserveDbOperationDuration("list_by_prospect", "route", time.Since(startTime), err)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list routes for prospect %d: %w", apperrors.ErrDatabase, prospectID, err)
	}
	return routes, nil
}

// GetRoute fetches one route by primary key.
func (r *PostgresRepo) GetRoute(ctx context.Context, id int64) (*model.ProspectRoute, error) {
	var route model.ProspectRoute
	startTime := utils.Now()
	err := r.db.WithContext(ctx).First(&route, id).Error
	observer.ObserveDbOperationDuration("get", "route", time.Since(startTime), err)
	if err != nil {
		return nil, checkConstraintViolation(err)
	}
	return &route, nil
}

// InsertRoute creates a route, filling its generated ID.
func (r *PostgresRepo) InsertRoute(ctx context.Context, route *model.ProspectRoute) error {
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Create(route).Error
	observer.ObserveDbOperationDuration("insert", "route", time.Since(startTime), err)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to insert route",
			zap.String("route", route.RouteIDName), zap.Error(err))
		return checkConstraintViolation(err)
	}
	return nil
}

// UpdateRoute overwrites the editable columns of an existing route.
func (r *PostgresRepo) UpdateRoute(ctx context.Context, route model.ProspectRoute) error {
	startTime := utils.Now()
	result := r.db.WithContext(ctx).
		Model(&model.ProspectRoute{}).
		Where("id = ?", route.ID).
		Select(model.RouteUpdateColumns()).
		Updates(route)
	observer.ObserveDbOperationDuration("update", "route", time.Since(startTime), result.Error)
	if result.Error != nil {
		logger.FromContext(ctx).Error("Failed to update route", zap.Int64("id", route.ID), zap.Error(result.Error))
		return checkConstraintViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: route %d not found", apperrors.ErrNotFound, route.ID)
	}
	return nil
}

// DeleteRoute removes a route row. Callers must park its drivers on the
// Unassigned sentinel first.
func (r *PostgresRepo) DeleteRoute(ctx context.Context, id int64) error {
	startTime := utils.Now()
	result := r.db.WithContext(ctx).Delete(&model.ProspectRoute{}, id)
	observer.ObserveDbOperationDuration("delete", "route", time.Since(startTime), result.Error)
	if result.Error != nil {
		logger.FromContext(ctx).Error("Failed to delete route", zap.Int64("id", id), zap.Error(result.Error))
		return checkConstraintViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: route %d not found", apperrors.ErrNotFound, id)
	}
	return nil
}

// EnsureUnassignedRoute finds the Unassigned sentinel route, creating it on
// first use, and returns its ID. The sentinel parks drivers that have no real
// route assignment.
func (r *PostgresRepo) EnsureUnassignedRoute(ctx context.Context, prospectID int64) (int64, error) {
	var route model.ProspectRoute
	startTime := utils.Now()
	err := r.db.WithContext(ctx).
		Where("route_id_name = ?", model.UnassignedRouteName).
		First(&route).Error
	if err == nil {
		observer.ObserveDbOperationDuration("ensure_sentinel", "route", time.Since(startTime), nil)
		return route.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		observer.ObserveDbOperationDuration("ensure_sentinel", "route", time.Since(startTime), err)
		return 0, fmt.Errorf("%w: failed to look up sentinel route: %w", apperrors.ErrDatabase, err)
	}

	route = model.ProspectRoute{ProspectID: prospectID, RouteIDName: model.UnassignedRouteName}
	createErr := r.db.WithContext(ctx).Create(&route).Error
	observer.ObserveDbOperationDuration("ensure_sentinel", "route", time.Since(startTime), createErr)
	if createErr != nil {
		logger.FromContext(ctx).Error("Failed to create sentinel route", zap.Error(createErr))
		return 0, checkConstraintViolation(createErr)
	}
	logger.FromContext(ctx).Info("Created sentinel route", zap.Int64("route_id", route.ID))
	return route.ID, nil
}
