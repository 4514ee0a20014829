package httpapi

import (
	"fmt"
	"net/http"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

func (s *Server) handleListRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := s.routes.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, redactRoutes(r.Context(), routes))
}

type routeBatchRequest struct {
	Routes []model.RouteForm `json:"routes"`
}

func (s *Server) handleBatchSaveRoutes(w http.ResponseWriter, r *http.Request) {
	prospectID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req routeBatchRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		writeError(w, fmt.Errorf("%w: %w", apperrors.ErrBadRequest, err))
		return
	}
	result, err := s.routes.BatchSave(r.Context(), prospectID, req.Routes)
	if err != nil {
		writeError(w, err)
		return
	}
	status := http.StatusOK
	if result.Failed > 0 {
		status = http.StatusMultiStatus
	}
	utils.WriteJSONResponse(w, status, result)
}

func (s *Server) handleListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := s.drivers.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, drivers)
}

func (s *Server) handleSaveDriver(w http.ResponseWriter, r *http.Request) {
	var form model.DriverForm
	if err := utils.DecodeJSONBody(r, &form); err != nil {
		writeError(w, fmt.Errorf("%w: %w", apperrors.ErrBadRequest, err))
		return
	}
	driver, err := s.drivers.Save(r.Context(), form)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, driver)
}

func (s *Server) handleDeleteDriver(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.drivers.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type assignRequest struct {
	RouteID int64 `json:"route_id"`
}

func (s *Server) handleAssignDriver(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req assignRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		writeError(w, fmt.Errorf("%w: %w", apperrors.ErrBadRequest, err))
		return
	}
	if req.RouteID <= 0 {
		writeError(w, fmt.Errorf("%w: route_id is required", apperrors.ErrBadRequest))
		return
	}
	driver, err := s.drivers.Assign(r.Context(), id, req.RouteID)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, driver)
}

func (s *Server) handleUnassignDriver(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	driver, err := s.drivers.Unassign(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, driver)
}
