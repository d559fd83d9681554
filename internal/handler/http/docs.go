package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-eka-mr/internal/logger"
	"github.com/MKhiriev/go-eka-mr/internal/store"
	"github.com/MKhiriev/go-eka-mr/internal/utils"
	"github.com/MKhiriev/go-eka-mr/models"
)

// maxUploadSize bounds the multipart form kept in memory (32 MiB).
const maxUploadSize = 32 << 20

// Sample payloads returned for completed documents. Shaped like the real
// service's output for a lab report: a FHIR bundle plus a flat extraction.
var (
	sampleFHIR = json.RawMessage(`{"resourceType":"Bundle","type":"collection","entry":[{"resource":{"resourceType":"Observation","code":{"text":"Hemoglobin"},"valueQuantity":{"value":13.5,"unit":"g/dL"}}},{"resource":{"resourceType":"Observation","code":{"text":"Glucose"},"valueQuantity":{"value":92,"unit":"mg/dL"}}}]}`)
	sampleOut  = json.RawMessage(`{"tests":[{"name":"Hemoglobin","value":"13.5","unit":"g/dL","range":"12.0-15.5"},{"name":"Glucose","value":"92","unit":"mg/dL","range":"70-100"}]}`)
)

// submitDocument handles POST /mr/api/v2/docs.
//
// Query parameters follow the real service: dt carries the document type and
// task appears once ("smart" or "pii") or twice (the client-side expansion
// of "both"). A literal task=both is rejected the way the real service
// rejects it.
func (h *Handler) submitDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	clientID, ok := utils.GetClientIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no client id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tasks := r.URL.Query()["task"]
	if len(tasks) == 0 || len(tasks) > 2 {
		http.Error(w, "task parameter required", http.StatusBadRequest)
		return
	}
	for _, task := range tasks {
		if task != string(models.TaskSmart) && task != string(models.TaskPII) {
			http.Error(w, "unsupported task value: "+task, http.StatusBadRequest)
			return
		}
	}

	docType := r.URL.Query().Get("dt")
	if docType == "" {
		http.Error(w, "dt parameter required", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("file field missing")
		http.Error(w, "file field required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rec := h.docs.Create(clientID, header.Filename, docType, tasks)
	log.Info().
		Str("document_id", rec.DocumentID).
		Str("file", header.Filename).
		Strs("tasks", tasks).
		Msg("document accepted")

	resp := models.DocumentSubmission{DocumentID: rec.DocumentID, Status: "queued"}
	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing submit response")
	}
}

// documentResult handles GET /mr/api/v1/docs/{document_id}/result.
//
// A document stays "pending" with an empty data object until the configured
// processing delay elapses, then reports "completed" with both payloads (or
// "failed" when the mock is configured to fail everything).
func (h *Handler) documentResult(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	documentID := chi.URLParam(r, "document_id")

	rec, err := h.docs.Get(documentID)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error loading document record")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	result := models.DocumentResult{Status: models.StatusPending}
	if time.Since(rec.SubmittedAt) >= h.cfg.ProcessingDelay {
		if h.cfg.FailDocuments {
			result.Status = models.StatusFailed
		} else {
			result.Status = models.StatusCompleted
			result.Data = models.ResultData{FHIR: sampleFHIR, Output: sampleOut}
		}
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing result response")
	}
}
