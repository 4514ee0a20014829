package storage

import (
	"context"

	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
)

// ProspectRepo defines prospect storage operations
type ProspectRepo interface {
	List(ctx context.Context) ([]model.Prospect, error)
	Get(ctx context.Context, id int64) (*model.Prospect, error)
	Insert(ctx context.Context, prospect *model.Prospect) error
	Update(ctx context.Context, prospect model.Prospect) error
	Delete(ctx context.Context, id int64) error
}

// ContactRepo defines contact storage operations, including the append-only
// change log written alongside edits.
type ContactRepo interface {
	List(ctx context.Context) ([]model.Contact, error)
	ListByProspect(ctx context.Context, prospectID int64) ([]model.Contact, error)
	Get(ctx context.Context, id int64) (*model.Contact, error)
	Insert(ctx context.Context, contact *model.Contact) error
	Update(ctx context.Context, contact model.Contact) error
	Delete(ctx context.Context, id int64) error
	InsertChanges(ctx context.Context, changes []model.ContactChange) error
	ListChanges(ctx context.Context, contactID int64) ([]model.ContactChange, error)
}

// DocumentRepo defines document record storage operations
type DocumentRepo interface {
	List(ctx context.Context) ([]model.Document, error)
	Get(ctx context.Context, id int64) (*model.Document, error)
	Insert(ctx context.Context, document *model.Document) error
	Update(ctx context.Context, document model.Document, withFile bool) error
	Delete(ctx context.Context, id int64) error
}

// RouteRepo defines route storage operations
type RouteRepo interface {
	List(ctx context.Context) ([]model.ProspectRoute, error)
	ListByProspect(ctx context.Context, prospectID int64) ([]model.ProspectRoute, error)
	Get(ctx context.Context, id int64) (*model.ProspectRoute, error)
	Insert(ctx context.Context, route *model.ProspectRoute) error
	Update(ctx context.Context, route model.ProspectRoute) error
	Delete(ctx context.Context, id int64) error
	EnsureUnassigned(ctx context.Context, prospectID int64) (int64, error)
}

// DriverRepo defines route driver storage operations
type DriverRepo interface {
	List(ctx context.Context) ([]model.RouteDriver, error)
	ListByRoute(ctx context.Context, routeID int64) ([]model.RouteDriver, error)
	Get(ctx context.Context, id int64) (*model.RouteDriver, error)
	Insert(ctx context.Context, driver *model.RouteDriver) error
	Update(ctx context.Context, driver model.RouteDriver) error
	Delete(ctx context.Context, id int64) error
	Reassign(ctx context.Context, fromRouteID, toRouteID int64) (int64, error)
}

// OptionRepo defines taxonomy option storage operations
type OptionRepo interface {
	List(ctx context.Context, tax model.Taxonomy) ([]model.Option, error)
	MaxSortOrder(ctx context.Context, tax model.Taxonomy) (int, error)
	Insert(ctx context.Context, tax model.Taxonomy, option *model.Option) error
	Update(ctx context.Context, tax model.Taxonomy, option model.Option) error
	Delete(ctx context.Context, tax model.Taxonomy, id int64) error
	UpdateSortOrders(ctx context.Context, tax model.Taxonomy, options []model.Option) error
}

// HelpRepo defines help content storage operations
type HelpRepo interface {
	Get(ctx context.Context, pageID string) (*model.HelpContent, error)
	Save(ctx context.Context, pageID, content string) error
}

// UserRoleRepo defines role grant storage operations
type UserRoleRepo interface {
	Get(ctx context.Context, userID string) (*model.UserRole, error)
	List(ctx context.Context) ([]model.UserRole, error)
	Upsert(ctx context.Context, role model.UserRole) error
	Delete(ctx context.Context, userID string) error
}
