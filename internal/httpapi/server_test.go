package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/config"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	storagemock "gitlab.com/fleetops/api/pipeline-admin/internal/storage/mock"
	"gitlab.com/fleetops/api/pipeline-admin/internal/usecase"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

// testEnv wires a server over repository mocks and a stubbed role store.
type testEnv struct {
	handler   http.Handler
	prospects *storagemock.ProspectRepoMock
	contacts  *storagemock.ContactRepoMock
	documents *storagemock.DocumentRepoMock
	routes    *storagemock.RouteRepoMock
	drivers   *storagemock.DriverRepoMock
	options   *storagemock.OptionRepoMock
	help      *storagemock.HelpRepoMock
	roles     *storagemock.UserRoleRepoMock
}

type noopStore struct{}

func (noopStore) Upload(_ context.Context, name, _ string, _ []byte) (string, error) { return name, nil }
func (noopStore) Delete(_ context.Context, _ string) error                           { return nil }
func (noopStore) PublicURL(path string) string                                       { return "https://files.example.com/" + path }

func newTestEnv() *testEnv {
	env := &testEnv{
		prospects: new(storagemock.ProspectRepoMock),
		contacts:  new(storagemock.ContactRepoMock),
		documents: new(storagemock.DocumentRepoMock),
		routes:    new(storagemock.RouteRepoMock),
		drivers:   new(storagemock.DriverRepoMock),
		options:   new(storagemock.OptionRepoMock),
		help:      new(storagemock.HelpRepoMock),
		roles:     new(storagemock.UserRoleRepoMock),
	}

	cfg := &config.Config{}
	roleService := usecase.NewRoleService(env.roles, cfg)
	documentService := usecase.NewDocumentService(env.documents, noopStore{})
	optionService := usecase.NewOptionService(env.options)

	server := NewServer("0", Services{
		Prospects: usecase.NewProspectService(env.prospects),
		Contacts:  usecase.NewContactService(env.contacts),
		Documents: documentService,
		Routes:    usecase.NewRouteService(env.routes, env.drivers),
		Drivers:   usecase.NewDriverService(env.drivers, env.routes),
		Options:   optionService,
		Help:      usecase.NewHelpService(env.help),
		Roles:     roleService,
		Reports:   usecase.NewReportService(env.prospects, env.contacts, env.routes, env.drivers, env.options),
		Snapshot:  usecase.NewSnapshotService(env.prospects, env.contacts, env.routes, env.drivers, documentService, optionService),
	}, zap.NewNop())
	env.handler = server.Handler()
	return env
}

// grantRole stubs the role resolution for the test identity.
func (env *testEnv) grantRole(role string) {
	env.roles.On("Get", mock.Anything, "u-1").Return(&model.UserRole{
		UserID: "u-1",
		Email:  "user@example.com",
		Role:   role,
	}, nil)
}

func (env *testEnv) do(method, path, role string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if role != "" {
		req.Header.Set(headerUserID, "u-1")
		req.Header.Set(headerUserEmail, "user@example.com")
		env.grantRole(role)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

func TestMissingIdentityIsUnauthorized(t *testing.T) {
	env := newTestEnv()
	rec := env.do(http.MethodGet, "/api/prospects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDispatcherCannotSeeOpportunities(t *testing.T) {
	env := newTestEnv()
	rec := env.do(http.MethodGet, "/api/prospects", "dispatcher", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDispatcherCanSeeDrivers(t *testing.T) {
	env := newTestEnv()
	env.drivers.On("List", mock.Anything).Return([]model.RouteDriver{}, nil)

	rec := env.do(http.MethodGet, "/api/drivers", "dispatcher", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestViewerContactsAreRedacted(t *testing.T) {
	env := newTestEnv()
	margin := 55.0
	env.contacts.On("List", mock.Anything).Return([]model.Contact{{
		ID:               1,
		ProspectID:       2,
		ContactName:      "Jordan",
		Status:           "Quoted",
		Forecast:         "120000",
		GrossMargin:      40,
		FinalGrossMargin: &margin,
	}}, nil)

	rec := env.do(http.MethodGet, "/api/contacts", "viewer", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var contacts []model.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
	require.Len(t, contacts, 1)
	assert.Empty(t, contacts[0].Forecast)
	assert.Zero(t, contacts[0].GrossMargin)
	assert.Nil(t, contacts[0].FinalGrossMargin)
	assert.Equal(t, "Jordan", contacts[0].ContactName)
}

func TestEditorContactsKeepFinancials(t *testing.T) {
	env := newTestEnv()
	env.contacts.On("List", mock.Anything).Return([]model.Contact{{
		ID:          1,
		ProspectID:  2,
		ContactName: "Jordan",
		Status:      "Quoted",
		Forecast:    "120000",
	}}, nil)

	rec := env.do(http.MethodGet, "/api/contacts", "editor", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var contacts []model.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
	assert.Equal(t, "120000", contacts[0].Forecast)
}

func TestSaveProspectRoundTrip(t *testing.T) {
	env := newTestEnv()
	env.prospects.On("Insert", mock.Anything, mock.AnythingOfType("*model.Prospect")).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Prospect).ID = 9 }).
		Return(nil)

	body, _ := json.Marshal(model.ProspectForm{Name: "Acme"})
	rec := env.do(http.MethodPost, "/api/prospects", "editor", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var saved model.Prospect
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, int64(9), saved.ID)
}

func TestDeleteProspectRequiresAdmin(t *testing.T) {
	env := newTestEnv()
	rec := env.do(http.MethodDelete, "/api/prospects/7", "editor", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestNotFoundErrorMapsTo404(t *testing.T) {
	env := newTestEnv()
	env.prospects.On("Get", mock.Anything, int64(404)).Return(nil, apperrors.ErrNotFound)

	rec := env.do(http.MethodGet, "/api/prospects/404", "editor", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownTaxonomyIsBadRequest(t *testing.T) {
	env := newTestEnv()
	rec := env.do(http.MethodGet, "/api/options/made_up_options", "editor", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportOpportunitiesCSV(t *testing.T) {
	env := newTestEnv()
	env.prospects.On("List", mock.Anything).Return([]model.Prospect{{ID: 1, Name: "Acme"}}, nil)
	env.contacts.On("List", mock.Anything).Return([]model.Contact{}, nil)

	rec := env.do(http.MethodGet, "/api/export/opportunities?format=csv", "editor", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Opportunity Name,Status"))
	assert.Contains(t, rec.Body.String(), "Acme")
}

func TestExportForbiddenForViewer(t *testing.T) {
	env := newTestEnv()
	rec := env.do(http.MethodGet, "/api/export/opportunities", "viewer", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouteBatchPartialFailureIsMultiStatus(t *testing.T) {
	env := newTestEnv()
	env.routes.On("ListByProspect", mock.Anything, int64(3)).Return([]model.ProspectRoute{}, nil)
	env.routes.On("Insert", mock.Anything, mock.AnythingOfType("*model.ProspectRoute")).Return(nil)

	body, _ := json.Marshal(routeBatchRequest{Routes: []model.RouteForm{
		{ID: -1, RouteIDName: "RT-OK"},
		{ID: -2, RouteIDName: ""},
	}})
	rec := env.do(http.MethodPost, "/api/prospects/3/routes", "dispatcher", body)
	require.Equal(t, http.StatusMultiStatus, rec.Code)

	var result usecase.RouteBatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, 1, result.Failed)
}

func (env *testEnv) stubSnapshot(prospects []model.Prospect, contacts []model.Contact) {
	env.prospects.On("List", mock.Anything).Return(prospects, nil)
	env.contacts.On("List", mock.Anything).Return(contacts, nil)
	env.documents.On("List", mock.Anything).Return([]model.Document{}, nil)
	env.routes.On("List", mock.Anything).Return([]model.ProspectRoute{}, nil)
	env.drivers.On("List", mock.Anything).Return([]model.RouteDriver{}, nil)
	env.options.On("List", mock.Anything, mock.Anything).Return([]model.Option{}, nil)
}

func TestSnapshotForDispatcherOmitsOpportunities(t *testing.T) {
	env := newTestEnv()
	env.stubSnapshot(
		[]model.Prospect{{ID: 1, Name: "Acme"}},
		[]model.Contact{{ID: 1, ProspectID: 1, Forecast: "50000"}},
	)

	rec := env.do(http.MethodGet, "/api/snapshot", "dispatcher", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var snap usecase.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Empty(t, snap.Prospects)
	assert.Empty(t, snap.Contacts)
	assert.Len(t, snap.Options, len(model.Taxonomies()))
}

func TestSnapshotForViewerRedactsFinancials(t *testing.T) {
	env := newTestEnv()
	env.stubSnapshot(
		[]model.Prospect{{ID: 1, Name: "Acme"}},
		[]model.Contact{{ID: 1, ProspectID: 1, Forecast: "50000"}},
	)

	rec := env.do(http.MethodGet, "/api/snapshot", "viewer", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var snap usecase.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.Len(t, snap.Prospects, 1)
	require.Len(t, snap.Contacts, 1)
	assert.Empty(t, snap.Contacts[0].Forecast)
}

func TestRequestIDEchoedInResponse(t *testing.T) {
	env := newTestEnv()
	env.drivers.On("List", mock.Anything).Return([]model.RouteDriver{}, nil)

	rec := env.do(http.MethodGet, "/api/drivers", "viewer", nil)
	assert.NotEmpty(t, rec.Header().Get(headerRequestID))
}
