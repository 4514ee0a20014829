package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
)

// --- ProspectRepo Mock ---

// ProspectRepoMock mocks the ProspectRepo interface
type ProspectRepoMock struct {
	mock.Mock
}

func (m *ProspectRepoMock) List(ctx context.Context) ([]model.Prospect, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Prospect), args.Error(1)
}

func (m *ProspectRepoMock) Get(ctx context.Context, id int64) (*model.Prospect, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Prospect), args.Error(1)
}

func (m *ProspectRepoMock) Insert(ctx context.Context, prospect *model.Prospect) error {
	args := m.Called(ctx, prospect)
	return args.Error(0)
}

func (m *ProspectRepoMock) Update(ctx context.Context, prospect model.Prospect) error {
	args := m.Called(ctx, prospect)
	return args.Error(0)
}

func (m *ProspectRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- ContactRepo Mock ---

// ContactRepoMock mocks the ContactRepo interface
type ContactRepoMock struct {
	mock.Mock
}

func (m *ContactRepoMock) List(ctx context.Context) ([]model.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *ContactRepoMock) ListByProspect(ctx context.Context, prospectID int64) ([]model.Contact, error) {
	args := m.Called(ctx, prospectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *ContactRepoMock) Get(ctx context.Context, id int64) (*model.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *ContactRepoMock) Insert(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *ContactRepoMock) Update(ctx context.Context, contact model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *ContactRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ContactRepoMock) InsertChanges(ctx context.Context, changes []model.ContactChange) error {
	args := m.Called(ctx, changes)
	return args.Error(0)
}

func (m *ContactRepoMock) ListChanges(ctx context.Context, contactID int64) ([]model.ContactChange, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactChange), args.Error(1)
}

// --- DocumentRepo Mock ---

// DocumentRepoMock mocks the DocumentRepo interface
type DocumentRepoMock struct {
	mock.Mock
}

func (m *DocumentRepoMock) List(ctx context.Context) ([]model.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *DocumentRepoMock) Get(ctx context.Context, id int64) (*model.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *DocumentRepoMock) Insert(ctx context.Context, document *model.Document) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *DocumentRepoMock) Update(ctx context.Context, document model.Document, withFile bool) error {
	args := m.Called(ctx, document, withFile)
	return args.Error(0)
}

func (m *DocumentRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- RouteRepo Mock ---

// RouteRepoMock mocks the RouteRepo interface
type RouteRepoMock struct {
	mock.Mock
}

func (m *RouteRepoMock) List(ctx context.Context) ([]model.ProspectRoute, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProspectRoute), args.Error(1)
}

func (m *RouteRepoMock) ListByProspect(ctx context.Context, prospectID int64) ([]model.ProspectRoute, error) {
	args := m.Called(ctx, prospectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProspectRoute), args.Error(1)
}

func (m *RouteRepoMock) Get(ctx context.Context, id int64) (*model.ProspectRoute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProspectRoute), args.Error(1)
}

func (m *RouteRepoMock) Insert(ctx context.Context, route *model.ProspectRoute) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *RouteRepoMock) Update(ctx context.Context, route model.ProspectRoute) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *RouteRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RouteRepoMock) EnsureUnassigned(ctx context.Context, prospectID int64) (int64, error) {
	args := m.Called(ctx, prospectID)
	return args.Get(0).(int64), args.Error(1)
}

// --- DriverRepo Mock ---

// DriverRepoMock mocks the DriverRepo interface
type DriverRepoMock struct {
	mock.Mock
}

func (m *DriverRepoMock) List(ctx context.Context) ([]model.RouteDriver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RouteDriver), args.Error(1)
}

func (m *DriverRepoMock) ListByRoute(ctx context.Context, routeID int64) ([]model.RouteDriver, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RouteDriver), args.Error(1)
}

func (m *DriverRepoMock) Get(ctx context.Context, id int64) (*model.RouteDriver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RouteDriver), args.Error(1)
}

func (m *DriverRepoMock) Insert(ctx context.Context, driver *model.RouteDriver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}

func (m *DriverRepoMock) Update(ctx context.Context, driver model.RouteDriver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}

func (m *DriverRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *DriverRepoMock) Reassign(ctx context.Context, fromRouteID, toRouteID int64) (int64, error) {
	args := m.Called(ctx, fromRouteID, toRouteID)
	return args.Get(0).(int64), args.Error(1)
}

// --- OptionRepo Mock ---

// OptionRepoMock mocks the OptionRepo interface
type OptionRepoMock struct {
	mock.Mock
}

func (m *OptionRepoMock) List(ctx context.Context, tax model.Taxonomy) ([]model.Option, error) {
	args := m.Called(ctx, tax)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Option), args.Error(1)
}

func (m *OptionRepoMock) MaxSortOrder(ctx context.Context, tax model.Taxonomy) (int, error) {
	args := m.Called(ctx, tax)
	return args.Int(0), args.Error(1)
}

func (m *OptionRepoMock) Insert(ctx context.Context, tax model.Taxonomy, option *model.Option) error {
	args := m.Called(ctx, tax, option)
	return args.Error(0)
}

func (m *OptionRepoMock) Update(ctx context.Context, tax model.Taxonomy, option model.Option) error {
	args := m.Called(ctx, tax, option)
	return args.Error(0)
}

func (m *OptionRepoMock) Delete(ctx context.Context, tax model.Taxonomy, id int64) error {
	args := m.Called(ctx, tax, id)
	return args.Error(0)
}

func (m *OptionRepoMock) UpdateSortOrders(ctx context.Context, tax model.Taxonomy, options []model.Option) error {
	args := m.Called(ctx, tax, options)
	return args.Error(0)
}

// --- HelpRepo Mock ---

// HelpRepoMock mocks the HelpRepo interface
type HelpRepoMock struct {
	mock.Mock
}

func (m *HelpRepoMock) Get(ctx context.Context, pageID string) (*model.HelpContent, error) {
	args := m.Called(ctx, pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HelpContent), args.Error(1)
}

func (m *HelpRepoMock) Save(ctx context.Context, pageID, content string) error {
	args := m.Called(ctx, pageID, content)
	return args.Error(0)
}

// --- UserRoleRepo Mock ---

// UserRoleRepoMock mocks the UserRoleRepo interface
type UserRoleRepoMock struct {
	mock.Mock
}

func (m *UserRoleRepoMock) Get(ctx context.Context, userID string) (*model.UserRole, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserRole), args.Error(1)
}

func (m *UserRoleRepoMock) List(ctx context.Context) ([]model.UserRole, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserRole), args.Error(1)
}

func (m *UserRoleRepoMock) Upsert(ctx context.Context, role model.UserRole) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *UserRoleRepoMock) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
