package httpapi

import (
	"net/http"
	"strconv"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps an application error to its HTTP status. The error text
// is surfaced verbatim; callers show it to the user as a blocking message.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsValidationError(err), apperrors.IsBadRequestError(err):
		status = http.StatusBadRequest
	case apperrors.IsUnauthorizedError(err):
		status = http.StatusUnauthorized
	case apperrors.IsForbiddenError(err):
		status = http.StatusForbidden
	case apperrors.IsNotFoundError(err):
		status = http.StatusNotFound
	case apperrors.IsDuplicateError(err):
		status = http.StatusConflict
	}
	utils.WriteJSONResponse(w, status, errorResponse{Error: err.Error()})
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrBadRequest
	}
	return id, nil
}
