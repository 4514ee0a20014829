package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/storage"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
)

// OptionService implements the taxonomy commands. Reading options is open
// to every role (forms need them); managing them is an admin surface.
type OptionService struct {
	options storage.OptionRepo
}

// NewOptionService creates an OptionService.
func NewOptionService(options storage.OptionRepo) *OptionService {
	return &OptionService{options: options}
}

// List returns one taxonomy's options in sort order.
func (s *OptionService) List(ctx context.Context, tax model.Taxonomy) ([]model.Option, error) {
	return s.options.List(ctx, tax)
}

// ListAll returns every taxonomy's options, keyed by table name.
func (s *OptionService) ListAll(ctx context.Context) (map[model.Taxonomy][]model.Option, error) {
	all := make(map[model.Taxonomy][]model.Option, len(model.Taxonomies()))
	for _, tax := range model.Taxonomies() {
		options, err := s.options.List(ctx, tax)
		if err != nil {
			return nil, err
		}
		all[tax] = options
	}
	return all, nil
}

// Add appends a new option at the end of the taxonomy's order.
func (s *OptionService) Add(ctx context.Context, tax model.Taxonomy, name string) (*model.Option, error) {
	user, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: option name is required", apperrors.ErrValidation)
	}

	maxOrder, err := s.options.MaxSortOrder(ctx, tax)
	if err != nil {
		return nil, err
	}
	option := model.Option{Name: name, SortOrder: maxOrder + 1}
	if err := s.options.Insert(ctx, tax, &option); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Added option",
		zap.String("taxonomy", string(tax)), zap.String("name", name), zap.String("user_id", user.ID))
	return &option, nil
}

// Update renames an option, and for the driver-status taxonomy may toggle
// its slot-filler flag.
func (s *OptionService) Update(ctx context.Context, tax model.Taxonomy, option model.Option) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	option.Name = strings.TrimSpace(option.Name)
	if option.Name == "" {
		return fmt.Errorf("%w: option name is required", apperrors.ErrValidation)
	}
	return s.options.Update(ctx, tax, option)
}

// Delete removes an option. Records referencing the option by name keep the
// dangling text value; no dependency check is performed.
func (s *OptionService) Delete(ctx context.Context, tax model.Taxonomy, id int64) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	return s.options.Delete(ctx, tax, id)
}

// Reorder persists a new ordering for the whole taxonomy. The ids must be a
// permutation of the current rows; sort_order is rewritten sequentially as
// 1..N so no gaps or duplicate ranks ever reach the store.
func (s *OptionService) Reorder(ctx context.Context, tax model.Taxonomy, orderedIDs []int64) ([]model.Option, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	current, err := s.options.List(ctx, tax)
	if err != nil {
		return nil, err
	}
	if len(orderedIDs) != len(current) {
		return nil, fmt.Errorf("%w: reorder must list all %d options, got %d",
			apperrors.ErrBadRequest, len(current), len(orderedIDs))
	}

	byID := make(map[int64]model.Option, len(current))
	for _, opt := range current {
		byID[opt.ID] = opt
	}

	reordered := make([]model.Option, 0, len(orderedIDs))
	for i, id := range orderedIDs {
		opt, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: option %d not found in %s", apperrors.ErrBadRequest, id, tax)
		}
		delete(byID, id)
		opt.SortOrder = i + 1
		reordered = append(reordered, opt)
	}

	if err := s.options.UpdateSortOrders(ctx, tax, reordered); err != nil {
		return nil, err
	}
	return reordered, nil
}
