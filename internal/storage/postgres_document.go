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

// ListDocuments returns every document record, newest first.
func (r *PostgresRepo) ListDocuments(ctx context.Context) ([]model.Document, error) {
	var documents []model.Document
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&documents).Error
	observer.ObserveDbOperationDuration("list", "document", time.Since(startTime), err)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list documents: %w", apperrors.ErrDatabase, err)
	}
	return documents, nil
}

// GetDocument fetches one document record by primary key.
func (r *PostgresRepo) GetDocument(ctx context.Context, id int64) (*model.Document, error) {
	var document model.Document
	startTime := utils.Now()
	err := r.db.WithContext(ctx).First(&document, id).Error
	observer.ObserveDbOperationDuration("get", "document", time.Since(startTime), err)
	if err != nil {
		return nil, checkConstraintViolation(err)
	}
	return &document, nil
}

// InsertDocument creates a document record, filling its generated ID.
func (r *PostgresRepo) InsertDocument(ctx context.Context, document *model.Document) error {
	startTime := utils.Now()
	err := r.db.WithContext(ctx).Create(document).Error
	observer.ObserveDbOperationDuration("insert", "document", time.Since(startTime), err)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to insert document",
			zap.String("file_name", document.FileName), zap.Error(err))
		return checkConstraintViolation(err)
	}
	return nil
}

// UpdateDocument overwrites the editable columns of an existing document
// record. The file columns change only when a replacement blob was uploaded.
func (r *PostgresRepo) UpdateDocument(ctx context.Context, document model.Document, withFile bool) error {
	startTime := utils.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Document{}).
		Where("id = ?", document.ID).
		Select(model.DocumentUpdateColumns(withFile)).
		Updates(document)
	observer.ObserveDbOperationDuration("update", "document", time.Since(startTime), result.Error)
	if result.Error != nil {
		logger.FromContext(ctx).Error("Failed to update document", zap.Int64("id", document.ID), zap.Error(result.Error))
		return checkConstraintViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: document %d not found", apperrors.ErrNotFound, document.ID)
	}
	return nil
}

// DeleteDocument removes a document record. The blob in the object store is
// deleted separately by the document service.
func (r *PostgresRepo) DeleteDocument(ctx context.Context, id int64) error {
	startTime := utils.Now()
	result := r.db.WithContext(ctx).Delete(&model.Document{}, id)
	observer.ObserveDbOperationDuration("delete", "document", time.Since(startTime), result.Error)
	if result.Error != nil {
		logger.FromContext(ctx).Error("Failed to delete document", zap.Int64("id", id), zap.Error(result.Error))
		return checkConstraintViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: document %d not found", apperrors.ErrNotFound, id)
	}
	return nil
}
