package storage

import (
	"context"

	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
)

// ProspectRepoAdapter adapts the PostgresRepo to the ProspectRepo interface
type ProspectRepoAdapter struct {
	postgres *PostgresRepo
}

// NewProspectRepoAdapter creates a new prospect repository adapter
func NewProspectRepoAdapter(postgres *PostgresRepo) ProspectRepo {
	return &ProspectRepoAdapter{postgres: postgres}
}

func (a *ProspectRepoAdapter) List(ctx context.Context) ([]model.Prospect, error) {
	return a.postgres.ListProspects(ctx)
}

func (a *ProspectRepoAdapter) Get(ctx context.Context, id int64) (*model.Prospect, error) {
	return a.postgres.GetProspect(ctx, id)
}

func (a *ProspectRepoAdapter) Insert(ctx context.Context, prospect *model.Prospect) error {
	return a.postgres.InsertProspect(ctx, prospect)
}

func (a *ProspectRepoAdapter) Update(ctx context.Context, prospect model.Prospect) error {
	return a.postgres.UpdateProspect(ctx, prospect)
}

func (a *ProspectRepoAdapter) Delete(ctx context.Context, id int64) error {
	return a.postgres.DeleteProspect(ctx, id)
}

// ContactRepoAdapter adapts the PostgresRepo to the ContactRepo interface
type ContactRepoAdapter struct {
	postgres *PostgresRepo
}

// NewContactRepoAdapter creates a new contact repository adapter
func NewContactRepoAdapter(postgres *PostgresRepo) ContactRepo {
	return &ContactRepoAdapter{postgres: postgres}
}

func (a *ContactRepoAdapter) List(ctx context.Context) ([]model.Contact, error) {
	return a.postgres.ListContacts(ctx)
}

func (a *ContactRepoAdapter) ListByProspect(ctx context.Context, prospectID int64) ([]model.Contact, error) {
	return a.postgres.ListContactsByProspect(ctx, prospectID)
}

func (a *ContactRepoAdapter) Get(ctx context.Context, id int64) (*model.Contact, error) {
	return a.postgres.GetContact(ctx, id)
}

func (a *ContactRepoAdapter) Insert(ctx context.Context, contact *model.Contact) error {
	return a.postgres.InsertContact(ctx, contact)
}

func (a *ContactRepoAdapter) Update(ctx context.Context, contact model.Contact) error {
	return a.postgres.UpdateContact(ctx, contact)
}

func (a *ContactRepoAdapter) Delete(ctx context.Context, id int64) error {
	return a.postgres.DeleteContact(ctx, id)
}

func (a *ContactRepoAdapter) InsertChanges(ctx context.Context, changes []model.ContactChange) error {
	return a.postgres.InsertContactChanges(ctx, changes)
}

func (a *ContactRepoAdapter) ListChanges(ctx context.Context, contactID int64) ([]model.ContactChange, error) {
	return a.postgres.ListContactChanges(ctx, contactID)
}

// DocumentRepoAdapter adapts the PostgresRepo to the DocumentRepo interface
type DocumentRepoAdapter struct {
	postgres *PostgresRepo
}

// NewDocumentRepoAdapter creates a new document repository adapter
func NewDocumentRepoAdapter(postgres *PostgresRepo) DocumentRepo {
	return &DocumentRepoAdapter{postgres: postgres}
}

func (a *DocumentRepoAdapter) List(ctx context.Context) ([]model.Document, error) {
	return a.postgres.ListDocuments(ctx)
}

func (a *DocumentRepoAdapter) Get(ctx context.Context, id int64) (*model.Document, error) {
	return a.postgres.GetDocument(ctx, id)
}

func (a *DocumentRepoAdapter) Insert(ctx context.Context, document *model.Document) error {
	return a.postgres.InsertDocument(ctx, document)
}

func (a *DocumentRepoAdapter) Update(ctx context.Context, document model.Document, withFile bool) error {
	return a.postgres.UpdateDocument(ctx, document, withFile)
}

func (a *DocumentRepoAdapter) Delete(ctx context.Context, id int64) error {
	return a.postgres.DeleteDocument(ctx, id)
}

// RouteRepoAdapter adapts the PostgresRepo to the RouteRepo interface
type RouteRepoAdapter struct {
	postgres *PostgresRepo
}

// NewRouteRepoAdapter creates a new route repository adapter
func NewRouteRepoAdapter(postgres *PostgresRepo) RouteRepo {
	return &RouteRepoAdapter{postgres: postgres}
}

func (a *RouteRepoAdapter) List(ctx context.Context) ([]model.ProspectRoute, error) {
	return a.postgres.ListRoutes(ctx)
}

func (a *RouteRepoAdapter) ListByProspect(ctx context.Context, prospectID int64) ([]model.ProspectRoute, error) {
	return a.postgres.ListRoutesByProspect(ctx, prospectID)
}

func (a *RouteRepoAdapter) Get(ctx context.Context, id int64) (*model.ProspectRoute, error) {
	return a.postgres.GetRoute(ctx, id)
}

func (a *RouteRepoAdapter) Insert(ctx context.Context, route *model.ProspectRoute) error {
	return a.postgres.InsertRoute(ctx, route)
}

func (a *RouteRepoAdapter) Update(ctx context.Context, route model.ProspectRoute) error {
	return a.postgres.UpdateRoute(ctx, route)
}

func (a *RouteRepoAdapter) Delete(ctx context.Context, id int64) error {
	return a.postgres.DeleteRoute(ctx, id)
}

func (a *RouteRepoAdapter) EnsureUnassigned(ctx context.Context, prospectID int64) (int64, error) {
	return a.postgres.EnsureUnassignedRoute(ctx, prospectID)
}

// DriverRepoAdapter adapts the PostgresRepo to the DriverRepo interface
type DriverRepoAdapter struct {
	postgres *PostgresRepo
}

// NewDriverRepoAdapter creates a new driver repository adapter
func NewDriverRepoAdapter(postgres *PostgresRepo) DriverRepo {
	return &DriverRepoAdapter{postgres: postgres}
}

func (a *DriverRepoAdapter) List(ctx context.Context) ([]model.RouteDriver, error) {
	return a.postgres.ListDrivers(ctx)
}

func (a *DriverRepoAdapter) ListByRoute(ctx context.Context, routeID int64) ([]model.RouteDriver, error) {
	return a.postgres.ListDriversByRoute(ctx, routeID)
}

func (a *DriverRepoAdapter) Get(ctx context.Context, id int64) (*model.RouteDriver, error) {
	return a.postgres.GetDriver(ctx, id)
}

func (a *DriverRepoAdapter) Insert(ctx context.Context, driver *model.RouteDriver) error {
	return a.postgres.InsertDriver(ctx, driver)
}

func (a *DriverRepoAdapter) Update(ctx context.Context, driver model.RouteDriver) error {
	return a.postgres.UpdateDriver(ctx, driver)
}

func (a *DriverRepoAdapter) Delete(ctx context.Context, id int64) error {
	return a.postgres.DeleteDriver(ctx, id)
}

func (a *DriverRepoAdapter) Reassign(ctx context.Context, fromRouteID, toRouteID int64) (int64, error) {
	return a.postgres.ReassignDrivers(ctx, fromRouteID, toRouteID)
}

// OptionRepoAdapter adapts the PostgresRepo to the OptionRepo interface
type OptionRepoAdapter struct {
	postgres *PostgresRepo
}

// NewOptionRepoAdapter creates a new option repository adapter
func NewOptionRepoAdapter(postgres *PostgresRepo) OptionRepo {
	return &OptionRepoAdapter{postgres: postgres}
}

func (a *OptionRepoAdapter) List(ctx context.Context, tax model.Taxonomy) ([]model.Option, error) {
	return a.postgres.ListOptions(ctx, tax)
}

func (a *OptionRepoAdapter) MaxSortOrder(ctx context.Context, tax model.Taxonomy) (int, error) {
	return a.postgres.MaxSortOrder(ctx, tax)
}

func (a *OptionRepoAdapter) Insert(ctx context.Context, tax model.Taxonomy, option *model.Option) error {
	return a.postgres.InsertOption(ctx, tax, option)
}

func (a *OptionRepoAdapter) Update(ctx context.Context, tax model.Taxonomy, option model.Option) error {
	return a.postgres.UpdateOption(ctx, tax, option)
}

func (a *OptionRepoAdapter) Delete(ctx context.Context, tax model.Taxonomy, id int64) error {
	return a.postgres.DeleteOption(ctx, tax, id)
}

func (a *OptionRepoAdapter) UpdateSortOrders(ctx context.Context, tax model.Taxonomy, options []model.Option) error {
	return a.postgres.UpdateSortOrders(ctx, tax, options)
}

// HelpRepoAdapter adapts the PostgresRepo to the HelpRepo interface
type HelpRepoAdapter struct {
	postgres *PostgresRepo
}

// NewHelpRepoAdapter creates a new help content repository adapter
func NewHelpRepoAdapter(postgres *PostgresRepo) HelpRepo {
	return &HelpRepoAdapter{postgres: postgres}
}

func (a *HelpRepoAdapter) Get(ctx context.Context, pageID string) (*model.HelpContent, error) {
	return a.postgres.GetHelpContent(ctx, pageID)
}

func (a *HelpRepoAdapter) Save(ctx context.Context, pageID, content string) error {
	return a.postgres.SaveHelpContent(ctx, pageID, content)
}

// UserRoleRepoAdapter adapts the PostgresRepo to the UserRoleRepo interface
type UserRoleRepoAdapter struct {
	postgres *PostgresRepo
}

// NewUserRoleRepoAdapter creates a new role grant repository adapter
func NewUserRoleRepoAdapter(postgres *PostgresRepo) UserRoleRepo {
	return &UserRoleRepoAdapter{postgres: postgres}
}

func (a *UserRoleRepoAdapter) Get(ctx context.Context, userID string) (*model.UserRole, error) {
	return a.postgres.GetUserRole(ctx, userID)
}

func (a *UserRoleRepoAdapter) List(ctx context.Context) ([]model.UserRole, error) {
	return a.postgres.ListUserRoles(ctx)
}

func (a *UserRoleRepoAdapter) Upsert(ctx context.Context, role model.UserRole) error {
	return a.postgres.UpsertUserRole(ctx, role)
}

func (a *UserRoleRepoAdapter) Delete(ctx context.Context, userID string) error {
	return a.postgres.DeleteUserRole(ctx, userID)
}
