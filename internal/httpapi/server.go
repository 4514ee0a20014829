// Package httpapi exposes the service over HTTP/JSON. Every route funnels
// into one usecase command; the layer itself only decodes payloads, applies
// the session middleware chain, and maps errors to statuses.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"gitlab.com/fleetops/api/pipeline-admin/internal/usecase"
)

// Services bundles the usecase services the API serves.
type Services struct {
	Prospects *usecase.ProspectService
	Contacts  *usecase.ContactService
	Documents *usecase.DocumentService
	Routes    *usecase.RouteService
	Drivers   *usecase.DriverService
	Options   *usecase.OptionService
	Help      *usecase.HelpService
	Roles     *usecase.RoleService
	Reports   *usecase.ReportService
	Snapshot  *usecase.SnapshotService
}

// Server is the API HTTP server.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger

	prospects *usecase.ProspectService
	contacts  *usecase.ContactService
	documents *usecase.DocumentService
	routes    *usecase.RouteService
	drivers   *usecase.DriverService
	options   *usecase.OptionService
	help      *usecase.HelpService
	roles     *usecase.RoleService
	reports   *usecase.ReportService
	snapshot  *usecase.SnapshotService
}

// NewServer creates the API server and registers every route.
func NewServer(port string, services Services, logger *zap.Logger) *Server {
	s := &Server{
		logger:    logger,
		prospects: services.Prospects,
		contacts:  services.Contacts,
		documents: services.Documents,
		routes:    services.Routes,
		drivers:   services.Drivers,
		options:   services.Options,
		help:      services.Help,
		roles:     services.Roles,
		reports:   services.Reports,
		snapshot:  services.Snapshot,
	}

	s.httpServer = &http.Server{
		Addr:              ":" + port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler builds the routed handler with the full middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Opportunities.
	mux.HandleFunc("GET /api/prospects", requireOpportunityAccess(s.handleListProspects))
	mux.HandleFunc("POST /api/prospects", requireOpportunityAccess(s.handleSaveProspect))
	mux.HandleFunc("GET /api/prospects/{id}", requireOpportunityAccess(s.handleGetProspect))
	mux.HandleFunc("DELETE /api/prospects/{id}", requireOpportunityAccess(s.handleDeleteProspect))

	mux.HandleFunc("GET /api/contacts", requireOpportunityAccess(s.handleListContacts))
	mux.HandleFunc("POST /api/contacts", requireOpportunityAccess(s.handleSaveContact))
	mux.HandleFunc("GET /api/contacts/{id}/changes", requireOpportunityAccess(s.handleListContactChanges))
	mux.HandleFunc("DELETE /api/contacts/{id}", requireOpportunityAccess(s.handleDeleteContact))

	// Full working-set snapshot.
	mux.HandleFunc("GET /api/snapshot", s.handleSnapshot)

	// Documents.
	mux.HandleFunc("GET /api/documents", s.handleListDocuments)
	mux.HandleFunc("POST /api/documents", s.handleCreateDocument)
	mux.HandleFunc("PUT /api/documents/{id}", s.handleUpdateDocument)
	mux.HandleFunc("DELETE /api/documents/{id}", s.handleDeleteDocument)

	// Routes and drivers.
	mux.HandleFunc("GET /api/routes", s.handleListRoutes)
	mux.HandleFunc("POST /api/prospects/{id}/routes", s.handleBatchSaveRoutes)
	mux.HandleFunc("GET /api/drivers", s.handleListDrivers)
	mux.HandleFunc("POST /api/drivers", s.handleSaveDriver)
	mux.HandleFunc("DELETE /api/drivers/{id}", s.handleDeleteDriver)
	mux.HandleFunc("POST /api/drivers/{id}/assign", s.handleAssignDriver)
	mux.HandleFunc("POST /api/drivers/{id}/unassign", s.handleUnassignDriver)

	// Taxonomies.
	mux.HandleFunc("GET /api/options", s.handleListAllOptions)
	mux.HandleFunc("GET /api/options/{taxonomy}", s.handleListOptions)
	mux.HandleFunc("POST /api/options/{taxonomy}", s.handleAddOption)
	mux.HandleFunc("PUT /api/options/{taxonomy}/order", s.handleReorderOptions)
	mux.HandleFunc("PUT /api/options/{taxonomy}/{id}", s.handleUpdateOption)
	mux.HandleFunc("DELETE /api/options/{taxonomy}/{id}", s.handleDeleteOption)

	// Help and role grants.
	mux.HandleFunc("GET /api/help/{page}", s.handleGetHelp)
	mux.HandleFunc("PUT /api/help/{page}", s.handleSaveHelp)
	mux.HandleFunc("GET /api/roles", s.handleListRoles)
	mux.HandleFunc("PUT /api/roles", s.handleGrantRole)
	mux.HandleFunc("DELETE /api/roles/{user}", s.handleRevokeRole)

	// Reports and export.
	mux.HandleFunc("GET /api/reports/sales", requireOpportunityAccess(s.handleSalesReport))
	mux.HandleFunc("GET /api/reports/management", requireOpportunityAccess(s.handleManagementReport))
	mux.HandleFunc("GET /api/reports/monthly", requireOpportunityAccess(s.handleMonthlyReport))
	mux.HandleFunc("GET /api/reports/recruiting", s.handleRecruitingReport)
	mux.HandleFunc("GET /api/reports/routes", s.handleRouteCards)
	mux.HandleFunc("GET /api/export/opportunities", requireOpportunityAccess(s.handleExportOpportunities))

	var handler http.Handler = mux
	handler = s.withIdentity(handler)
	handler = withObservability(handler)
	handler = withRequestID(handler)
	handler = withRecovery(handler)
	return handler
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	go func() {
		s.logger.Info("Starting API server", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("API server error", zap.Error(err))
		}
	}()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping API server")
	return s.httpServer.Shutdown(ctx)
}
