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

// GetHelpContent fetches the help copy for one page. ErrNotFound when the
// page has no copy yet.
func (r *PostgresRepo) GetHelpContent(ctx context.Context, pageID string) (*model.HelpContent, error) {
	var help model.HelpContent
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Where("page_id = ?", pageID).First(&help).Error
	observer.ObserveDbOperationDuration("get", "help_content", time.Since(startTime), err)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: help content for page %s", apperrors.ErrNotFound, pageID)
		}
		return nil, fmt.Errorf("%w: failed to get help content for page %s: %w", apperrors.ErrDatabase, pageID, err)
	}
	return &help, nil
}

// SaveHelpContent writes the help copy for one page: update first, insert
// when no row matched. Update-then-insert keeps the common path to one
// statement.
func (r *PostgresRepo) SaveHelpContent(ctx context.Context, pageID, content string) error {
	startTime := utils.Now()
	result := r.db.WithContext(ctx).
		Model(&model.HelpContent{}).
		Where("page_id = ?", pageID).
		Update("content", content)
	if result.Error != nil {
		observer.ObserveDbOperationDuration("save", "help_content", time.Since(startTime), result.Error)
		logger.FromContext(ctx).Error("Failed to update help content", zap.String("page_id", pageID), zap.Error(result.Error))
		return checkConstraintViolation(result.Error)
	}
	if result.RowsAffected > 0 {
		observer.ObserveDbOperationDuration("save", "help_content", time.Since(startTime), nil)
		return nil
	}

	help := model.HelpContent{PageID: pageID, Content: content}
	createErr := r.db.WithContext(ctx).Create(&help).Error
	observer.ObserveDbOperationDuration("save", "help_content", time.Since(startTime), createErr)
	if createErr != nil {
		logger.FromContext(ctx).Error("Failed to insert help content", zap.String("page_id", pageID), zap.Error(createErr))
		return checkConstraintViolation(createErr)
	}
	return nil
}
