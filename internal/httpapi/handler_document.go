package httpapi

import (
	"fmt"
	"io"
	"net/http"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// Document saves arrive as multipart forms: the record fields plus an
// optional "file" part.
const maxUploadBytes = 25 << 20

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	documents, err := s.documents.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, documents)
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	form, fileName, contentType, data, err := parseDocumentForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	document, err := s.documents.Create(r.Context(), form, fileName, contentType, data)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, document)
}

func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	form, fileName, contentType, data, err := parseDocumentForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	document, err := s.documents.Update(r.Context(), id, form, fileName, contentType, data)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, document)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.documents.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseDocumentForm(r *http.Request) (model.DocumentForm, string, string, []byte, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return model.DocumentForm{}, "", "", nil,
			fmt.Errorf("%w: expected multipart form: %w", apperrors.ErrBadRequest, err)
	}

	form := model.DocumentForm{
		ProspectID:     r.FormValue("prospect_id"),
		DocumentTypeID: r.FormValue("document_type_id"),
		Description:    r.FormValue("description"),
		Notes:          r.FormValue("notes"),
	}

	file, header, err := r.FormFile("file")
	if err == http.ErrMissingFile {
		return form, "", "", nil, nil
	}
	if err != nil {
		return model.DocumentForm{}, "", "", nil,
			fmt.Errorf("%w: failed to read file part: %w", apperrors.ErrBadRequest, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return model.DocumentForm{}, "", "", nil,
			fmt.Errorf("%w: failed to read upload: %w", apperrors.ErrBadRequest, err)
	}
	return form, header.Filename, header.Header.Get("Content-Type"), data, nil
}
