package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"relay/internal/content"
	"relay/internal/store"
)

// LegacyWebhook is the backward-compatible n8n webhook: a bare prompt, an
// optional type (default both), and optional user/session identifiers.
func (a *App) LegacyWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		a.json(w, http.StatusBadRequest, map[string]any{
			"error":    "Invalid request body",
			"received": nil,
		})
		return
	}
	a.Log.Debug().Interface("body", body).Msg("legacy webhook received")

	prompt := stringField(body, "prompt")
	if prompt == "" {
		a.json(w, http.StatusBadRequest, map[string]any{
			"error":    "Prompt is required",
			"received": body,
		})
		return
	}

	kind, err := content.ParseKind(stringField(body, "type"), content.KindBoth)
	if err != nil {
		a.json(w, http.StatusBadRequest, map[string]any{
			"error":    "Invalid type",
			"received": body,
		})
		return
	}

	result, err := a.Generator.Generate(r.Context(), prompt, kind)
	if err != nil {
		a.Log.Error().Err(err).Msg("legacy webhook generation failed")
		a.json(w, http.StatusInternalServerError, map[string]any{
			"error":     "Internal server error",
			"message":   err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	jobID := uuid.NewString()
	timestamp := time.Now().UTC().Format(time.RFC3339)
	userID := stringField(body, "userId")
	if userID == "" {
		userID = "anonymous"
	}
	sessionID := stringField(body, "sessionId")
	if sessionID == "" {
		sessionID = jobID
	}
	rec := store.Record{
		JobID:     jobID,
		Timestamp: timestamp,
		Prompt:    prompt,
		Type:      string(kind),
		UserID:    userID,
		SessionID: sessionID,
		Result:    *result,
		Status:    "completed",
		Source:    "legacy-webhook",
	}
	a.Store.Put(rec)

	a.json(w, http.StatusOK, map[string]any{
		"success":   true,
		"jobId":     jobID,
		"timestamp": timestamp,
		"data":      rec,
	})
}
