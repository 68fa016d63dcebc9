package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetContent returns the stored job record for a job id.
func (a *App) GetContent(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobId")
	rec, ok := a.Store.Get(jobID)
	if !ok {
		a.json(w, http.StatusNotFound, map[string]any{
			"error": "Content not found",
			"jobId": jobID,
		})
		return
	}
	a.json(w, http.StatusOK, rec)
}

// ListContent returns every stored record in insertion order.
func (a *App) ListContent(w http.ResponseWriter, r *http.Request) {
	records := a.Store.List()
	a.json(w, http.StatusOK, map[string]any{
		"total":   len(records),
		"content": records,
	})
}
