package handlers

import (
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"relay/internal/content"
	"relay/internal/forward"
	"relay/internal/infra"
	"relay/internal/n8n"
	"relay/internal/store"
)

// newTestApp builds an App with fast generator delays and a discarded
// logger. Tests adjust cfg for the forwarding paths.
func newTestApp(cfg *infra.Config) *App {
	if cfg == nil {
		cfg = &infra.Config{}
	}
	logger := infra.Logger(zerolog.New(io.Discard))
	gen := content.NewGenerator(content.Options{
		ImageDelay:   time.Millisecond,
		CaptionDelay: time.Millisecond,
		Rand:         rand.New(rand.NewSource(1)),
	})
	att := forward.NewAttempter(forward.Options{
		SharedSecret:   cfg.FormSharedSecret,
		RequestTimeout: 500 * time.Millisecond,
		Logger:         &logger,
	})
	client := n8n.NewClient(n8n.Options{BaseURL: cfg.N8NBaseURL, APIKey: cfg.N8NAPIKey, Logger: &logger})
	return NewApp(cfg, logger, store.NewMemoryStore(), gen, att, client, forward.EncodingJSON)
}

// newTestRouter wires just enough routes for handler tests without pulling
// in the full router package.
func newTestRouter(app *App) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", app.Health)
	r.Get("/form-test/{formId}", app.FormSchema)
	r.Post("/form-test/{formId}", app.SubmitForm)
	r.Post("/api/n8n/webhook", app.LegacyWebhook)
	r.Post("/api/forward-form", app.ForwardForm)
	r.Post("/api/trigger-n8n", app.TriggerN8N)
	r.Get("/api/content", app.ListContent)
	r.Get("/api/content/{jobId}", app.GetContent)
	return r
}
