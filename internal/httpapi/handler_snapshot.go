package httpapi

import (
	"net/http"

	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/session"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// handleSnapshot serves the full working set. Dispatchers get the snapshot
// without the opportunity collections; viewers get financial fields blanked.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.snapshot.Load(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if user, err := session.FromContext(r.Context()); err == nil && user.Role == session.RoleDispatcher {
		snapshot.Prospects = []model.Prospect{}
		snapshot.Contacts = []model.Contact{}
	}
	snapshot.Contacts = redactContacts(r.Context(), snapshot.Contacts)
	snapshot.Routes = redactRoutes(r.Context(), snapshot.Routes)

	utils.WriteJSONResponse(w, http.StatusOK, snapshot)
}
