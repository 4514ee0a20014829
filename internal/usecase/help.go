package usecase

import (
	"context"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/storage"
)

// HelpService implements the help-content commands. Content is raw HTML
// served verbatim; only admins can write it.
type HelpService struct {
	help storage.HelpRepo
}

// NewHelpService creates a HelpService.
func NewHelpService(help storage.HelpRepo) *HelpService {
	return &HelpService{help: help}
}

// Get returns the help copy for one page. A page without copy yet returns
// an empty record rather than an error.
func (s *HelpService) Get(ctx context.Context, pageID string) (*model.HelpContent, error) {
	content, err := s.help.Get(ctx, pageID)
	if apperrors.IsNotFoundError(err) {
		return &model.HelpContent{PageID: pageID}, nil
	}
	if err != nil {
		return nil, err
	}
	return content, nil
}

// Save writes the help copy for one page.
func (s *HelpService) Save(ctx context.Context, pageID, content string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	return s.help.Save(ctx, pageID, content)
}
