package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

func (s *Server) handleListProspects(w http.ResponseWriter, r *http.Request) {
	prospects, err := s.prospects.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, prospects)
}

func (s *Server) handleGetProspect(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	prospect, err := s.prospects.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, prospect)
}

func (s *Server) handleSaveProspect(w http.ResponseWriter, r *http.Request) {
	var form model.ProspectForm
	if err := utils.DecodeJSONBody(r, &form); err != nil {
		writeError(w, fmt.Errorf("%w: %w", apperrors.ErrBadRequest, err))
		return
	}
	prospect, err := s.prospects.Save(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, prospect)
}

func (s *Server) handleDeleteProspect(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.prospects.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	var (
		contacts []model.Contact
		err      error
	)
	if raw := r.URL.Query().Get("prospect_id"); raw != "" {
		prospectID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			writeError(w, fmt.Errorf("%w: prospect_id must be numeric", apperrors.ErrBadRequest))
			return
		}
		contacts, err = s.contacts.ListByProspect(r.Context(), prospectID)
	} else {
		contacts, err = s.contacts.List(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, redactContacts(r.Context(), contacts))
}

func (s *Server) handleSaveContact(w http.ResponseWriter, r *http.Request) {
	var form model.ContactForm
	if err := utils.DecodeJSONBody(r, &form); err != nil {
		writeError(w, fmt.Errorf("%w: %w", apperrors.ErrBadRequest, err))
		return
	}
	contact, err := s.contacts.Save(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, contact)
}

func (s *Server) handleListContactChanges(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	changes, err := s.contacts.ListChanges(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, changes)
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.contacts.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
