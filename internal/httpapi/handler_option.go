package httpapi

import (
	"fmt"
	"net/http"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

func pathTaxonomy(r *http.Request) (model.Taxonomy, error) {
	tax, err := model.ParseTaxonomy(r.PathValue("taxonomy"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrBadRequest, err)
	}
	return tax, nil
}

func (s *Server) handleListAllOptions(w http.ResponseWriter, r *http.Request) {
	all, err := s.options.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, all)
}

func (s *Server) handleListOptions(w http.ResponseWriter, r *http.Request) {
	tax, err := pathTaxonomy(r)
	if err != nil {
		writeError(w, err)
		return
	}
	options, err := s.options.List(r.Context(), tax)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, options)
}

type addOptionRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleAddOption(w http.ResponseWriter, r *http.Request) {
	tax, err := pathTaxonomy(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req addOptionRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		writeError(w, fmt.Errorf("%w: %w", apperrors.ErrBadRequest, err))
		return
	}
	option, err := s.options.Add(r.Context(), tax, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, option)
}

func (s *Server) handleUpdateOption(w http.ResponseWriter, r *http.Request) {
	tax, err := pathTaxonomy(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var option model.Option
	if err := utils.DecodeJSONBody(r, &option); err != nil {
		writeError(w, fmt.Errorf("%w: %w", apperrors.ErrBadRequest, err))
		return
	}
	option.ID = id
	if err := s.options.Update(r.Context(), tax, option); err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, option)
}

func (s *Server) handleDeleteOption(w http.ResponseWriter, r *http.Request) {
	tax, err := pathTaxonomy(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.options.Delete(r.Context(), tax, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reorderRequest struct {
	IDs []int64 `json:"ids"`
}

func (s *Server) handleReorderOptions(w http.ResponseWriter, r *http.Request) {
	tax, err := pathTaxonomy(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req reorderRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		writeError(w, fmt.Errorf("%w: %w", apperrors.ErrBadRequest, err))
		return
	}
	options, err := s.options.Reorder(r.Context(), tax, req.IDs)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, options)
}

func (s *Server) handleGetHelp(w http.ResponseWriter, r *http.Request) {
	content, err := s.help.Get(r.Context(), r.PathValue("page"))
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, content)
}

type helpRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleSaveHelp(w http.ResponseWriter, r *http.Request) {
	var req helpRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		writeError(w, fmt.Errorf("%w: %w", apperrors.ErrBadRequest, err))
		return
	}
	if err := s.help.Save(r.Context(), r.PathValue("page"), req.Content); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListRoles(w http.ResponseWriter, r *http.Request) {
	grants, err := s.roles.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, grants)
}

func (s *Server) handleGrantRole(w http.ResponseWriter, r *http.Request) {
	var grant model.UserRole
	if err := utils.DecodeJSONBody(r, &grant); err != nil {
		writeError(w, fmt.Errorf("%w: %w", apperrors.ErrBadRequest, err))
		return
	}
	if err := s.roles.Grant(r.Context(), grant); err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, grant)
}

func (s *Server) handleRevokeRole(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user")
	if userID == "" {
		writeError(w, fmt.Errorf("%w: user id is required", apperrors.ErrBadRequest))
		return
	}
	if err := s.roles.Revoke(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
