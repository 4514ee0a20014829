package usecase

import (
	"context"

	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/storage"
)

// Snapshot is the full working set in one payload. Clients load it on
// startup and refetch it after a partially applied batch instead of
// patching local state.
type Snapshot struct {
	Prospects []model.Prospect                  `json:"prospects"`
	Contacts  []model.Contact                   `json:"contacts"`
	Documents []DocumentView                    `json:"documents"`
	Routes    []model.ProspectRoute             `json:"routes"`
	Drivers   []model.RouteDriver               `json:"drivers"`
	Options   map[model.Taxonomy][]model.Option `json:"options"`
}

// SnapshotService assembles the snapshot from every collection.
type SnapshotService struct {
	prospects storage.ProspectRepo
	contacts  storage.ContactRepo
	routes    storage.RouteRepo
	drivers   storage.DriverRepo
	documents *DocumentService
	options   *OptionService
}

// NewSnapshotService creates a SnapshotService.
func NewSnapshotService(
	prospects storage.ProspectRepo,
	contacts storage.ContactRepo,
	routes storage.RouteRepo,
	drivers storage.DriverRepo,
	documents *DocumentService,
	options *OptionService,
) *SnapshotService {
	return &SnapshotService{
		prospects: prospects,
		contacts:  contacts,
		routes:    routes,
		drivers:   drivers,
		documents: documents,
		options:   options,
	}
}

// Load fetches every collection. Any single fetch failure fails the whole
// snapshot; a half-loaded working set is worse than an error.
func (s *SnapshotService) Load(ctx context.Context) (*Snapshot, error) {
	prospects, err := s.prospects.List(ctx)
	if err != nil {
		return nil, err
	}
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, err
	}
	documents, err := s.documents.List(ctx)
	if err != nil {
		return nil, err
	}
	routes, err := s.routes.List(ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := s.drivers.List(ctx)
	if err != nil {
		return nil, err
	}
	options, err := s.options.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Prospects: prospects,
		Contacts:  contacts,
		Documents: documents,
		Routes:    routes,
		Drivers:   drivers,
		Options:   options,
	}, nil
}
