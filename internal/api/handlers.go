package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/roach88/orbitr/internal/payload"
	"github.com/roach88/orbitr/internal/rso"
	"github.com/roach88/orbitr/internal/store"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Response messages.
const (
	msgBodyRequired     = "A JSON body is required for this request."
	msgBodyNotObject    = "JSON payload must be an object."
	msgValidationFailed = "Validation failed."
	msgKeyMismatch      = "SatCat number in body must match the URL segment."
	msgKeyReassigned    = "SatCat number cannot be reassigned."
	msgInternal         = "Internal server error."
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	n, err := s.store.Len()
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"rso_count": n,
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List()
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog())
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, ok := readPayload(w, r)
	if !ok {
		return
	}
	fields, errs := rso.Validate(body, false)
	if len(errs) > 0 {
		writeBadRequest(w, msgValidationFailed, errs)
		return
	}
	rec, err := fields.Record()
	if err != nil {
		writeBadRequest(w, msgValidationFailed, fieldErrors(err))
		return
	}

	created, err := s.store.Create(rec)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	satcat := r.PathValue("satcat")
	rec, found, err := s.store.Get(satcat)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	if !found {
		writeNotFound(w, satcat)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleReplace(w http.ResponseWriter, r *http.Request) {
	satcat := r.PathValue("satcat")
	body, ok := readPayload(w, r)
	if !ok {
		return
	}
	fields, errs := rso.Validate(body, false)
	if len(errs) > 0 {
		writeBadRequest(w, msgValidationFailed, errs)
		return
	}
	rec, err := fields.Record()
	if err != nil {
		writeBadRequest(w, msgValidationFailed, fieldErrors(err))
		return
	}
	if rec.SatcatNumber != satcat {
		writeBadRequest(w, msgKeyMismatch, nil)
		return
	}

	updated, err := s.store.Replace(satcat, rec)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	satcat := r.PathValue("satcat")
	body, ok := readPayload(w, r)
	if !ok {
		return
	}
	fields, errs := rso.Validate(body, true)
	if len(errs) > 0 {
		writeBadRequest(w, msgValidationFailed, errs)
		return
	}
	if fields.SatcatNumber != nil && *fields.SatcatNumber != satcat {
		writeBadRequest(w, msgKeyReassigned, nil)
		return
	}

	existing, found, err := s.store.Get(satcat)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	if !found {
		writeNotFound(w, satcat)
		return
	}

	updated, err := s.store.Replace(satcat, fields.Apply(existing))
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.PathValue("satcat")); err != nil {
		s.storeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// readPayload decodes the request body into an object, writing a 400 and
// returning false if it cannot.
func readPayload(w http.ResponseWriter, r *http.Request) (payload.Object, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgBodyRequired)
		return nil, false
	}
	obj, err := payload.DecodeObject(data)
	switch {
	case errors.Is(err, payload.ErrNotObject):
		writeError(w, http.StatusBadRequest, msgBodyNotObject)
		return nil, false
	case err != nil:
		writeError(w, http.StatusBadRequest, msgBodyRequired)
		return nil, false
	}
	return obj, true
}

// storeError translates a store error into a response.
func (s *Server) storeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case store.IsNotFound(err):
		writeError(w, http.StatusNotFound, store.Message(err))
	case store.IsDuplicateKey(err):
		writeError(w, http.StatusConflict, store.Message(err))
	case store.IsInvalidInput(err):
		writeBadRequest(w, store.Message(err), nil)
	default:
		s.logger.Error("store operation failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFrom(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

func fieldErrors(err error) rso.FieldErrors {
	var fe rso.FieldErrors
	if errors.As(err, &fe) {
		return fe
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}

func writeBadRequest(w http.ResponseWriter, message string, fields rso.FieldErrors) {
	if fields == nil {
		fields = rso.FieldErrors{}
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":  message,
		"fields": fields,
	})
}

func writeNotFound(w http.ResponseWriter, satcat string) {
	writeError(w, http.StatusNotFound, store.NotFoundMessage(satcat))
}
