package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/filestore"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/storage"
	"gitlab.com/fleetops/api/pipeline-admin/internal/validator"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
)

// DocumentService implements the document commands. Records live in the
// database; blobs live in the object store under generated names. Create
// requires a file; update may carry a replacement file or none.
type DocumentService struct {
	documents storage.DocumentRepo
	files     filestore.Store
}

// NewDocumentService creates a DocumentService.
func NewDocumentService(documents storage.DocumentRepo, files filestore.Store) *DocumentService {
	return &DocumentService{documents: documents, files: files}
}

// DocumentView is a document record plus its browser-facing blob URL.
type DocumentView struct {
	model.Document
	FileURL string `json:"file_url"`
}

// List returns every document record with its public URL attached.
func (s *DocumentService) List(ctx context.Context) ([]DocumentView, error) {
	documents, err := s.documents.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]DocumentView, 0, len(documents))
	for _, d := range documents {
		views = append(views, DocumentView{Document: d, FileURL: s.files.PublicURL(d.StoragePath)})
	}
	return views, nil
}

// Create uploads the blob and inserts the record. A create without a file is
// rejected before anything is transmitted. When the insert fails after the
// upload succeeded, the orphaned blob is removed best-effort.
func (s *DocumentService) Create(ctx context.Context, form model.DocumentForm, fileName, contentType string, data []byte) (*model.Document, error) {
	user, err := requireWrite(ctx)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(form); err != nil {
		return nil, err
	}
	record, ok := form.ToRecord()
	if !ok {
		return nil, fmt.Errorf("%w: prospect and document type references must be numeric", apperrors.ErrValidation)
	}
	if len(data) == 0 || fileName == "" {
		return nil, fmt.Errorf("%w: a document upload requires a file", apperrors.ErrValidation)
	}

	storagePath, err := s.files.Upload(ctx, fileName, contentType, data)
	if err != nil {
		return nil, err
	}
	record.FileName = fileName
	record.StoragePath = storagePath

	if err := s.documents.Insert(ctx, &record); err != nil {
		if delErr := s.files.Delete(ctx, storagePath); delErr != nil {
			logger.FromContext(ctx).Warn("Failed to remove orphaned blob after insert failure",
				zap.String("storage_path", storagePath), zap.Error(delErr))
		}
		return nil, err
	}

	logger.FromContext(ctx).Info("Created document",
		zap.Int64("document_id", record.ID),
		zap.Int64("prospect_id", record.ProspectID),
		zap.String("user_id", user.ID))
	return &record, nil
}

// Update edits a document record. When a replacement file is supplied, the
// new blob is uploaded first, the record repointed, and the old blob removed
// best-effort after the record write succeeds.
func (s *DocumentService) Update(ctx context.Context, id int64, form model.DocumentForm, fileName, contentType string, data []byte) (*model.Document, error) {
	user, err := requireWrite(ctx)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(form); err != nil {
		return nil, err
	}
	record, ok := form.ToRecord()
	if !ok {
		return nil, fmt.Errorf("%w: prospect and document type references must be numeric", apperrors.ErrValidation)
	}
	record.ID = id

	existing, err := s.documents.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	withFile := len(data) > 0 && fileName != ""
	if withFile {
		storagePath, err := s.files.Upload(ctx, fileName, contentType, data)
		if err != nil {
			return nil, err
		}
		record.FileName = fileName
		record.StoragePath = storagePath
	}

	if err := s.documents.Update(ctx, record, withFile); err != nil {
		if withFile {
			if delErr := s.files.Delete(ctx, record.StoragePath); delErr != nil {
				logger.FromContext(ctx).Warn("Failed to remove orphaned blob after update failure",
					zap.String("storage_path", record.StoragePath), zap.Error(delErr))
			}
		}
		return nil, err
	}
	if withFile && existing.StoragePath != "" && existing.StoragePath != record.StoragePath {
		if delErr := s.files.Delete(ctx, existing.StoragePath); delErr != nil {
			logger.FromContext(ctx).Warn("Failed to remove replaced blob",
				zap.String("storage_path", existing.StoragePath), zap.Error(delErr))
		}
	}

	logger.FromContext(ctx).Info("Updated document",
		zap.Int64("document_id", id), zap.Bool("with_file", withFile), zap.String("user_id", user.ID))
	return &record, nil
}

// Delete removes a document record and then its blob. A blob delete failure
// is logged, not surfaced; the record is already gone and the blob is
// unreachable without it.
func (s *DocumentService) Delete(ctx context.Context, id int64) error {
	if _, err := requireDelete(ctx); err != nil {
		return err
	}

	existing, err := s.documents.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.documents.Delete(ctx, id); err != nil {
		return err
	}
	if existing.StoragePath != "" {
		if delErr := s.files.Delete(ctx, existing.StoragePath); delErr != nil {
			logger.FromContext(ctx).Warn("Failed to remove blob for deleted document",
				zap.Int64("document_id", id), zap.Error(delErr))
		}
	}
	return nil
}
