package usecase

import (
	"context"

	"go.uber.org/zap"

	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/storage"
	"gitlab.com/fleetops/api/pipeline-admin/internal/validator"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
)

// ProspectService implements the prospect commands.
type ProspectService struct {
	prospects storage.ProspectRepo
}

// NewProspectService creates a ProspectService.
func NewProspectService(prospects storage.ProspectRepo) *ProspectService {
	return &ProspectService{prospects: prospects}
}

// List returns every prospect ordered by name.
func (s *ProspectService) List(ctx context.Context) ([]model.Prospect, error) {
	return s.prospects.List(ctx)
}

// Get returns one prospect by id.
func (s *ProspectService) Get(ctx context.Context, id int64) (*model.Prospect, error) {
	return s.prospects.Get(ctx, id)
}

// Save creates or updates a prospect from its edit form. A zero ID means
// create; the returned record carries the generated ID.
func (s *ProspectService) Save(ctx context.Context, form model.ProspectForm) (*model.Prospect, error) {
	user, err := requireWrite(ctx)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(form); err != nil {
		return nil, err
	}

	record := form.ToRecord()
	if record.ID > 0 {
		if err := s.prospects.Update(ctx, record); err != nil {
			return nil, err
		}
	} else {
		if err := s.prospects.Insert(ctx, &record); err != nil {
			return nil, err
		}
	}

	logger.FromContext(ctx).Info("Saved prospect",
		zap.Int64("prospect_id", record.ID), zap.String("user_id", user.ID))
	return &record, nil
}

// Delete removes a prospect. The store cascades to its contacts, documents,
// and routes.
func (s *ProspectService) Delete(ctx context.Context, id int64) error {
	user, err := requireDelete(ctx)
	if err != nil {
		return err
	}
	if err := s.prospects.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Deleted prospect",
		zap.Int64("prospect_id", id), zap.String("user_id", user.ID))
	return nil
}
