package httpapi

import (
	stdhttp "net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"relay/internal/http/handlers"
	appmw "relay/internal/middleware"
)

// NewRouter assembles the chi router with the middleware chain and every
// relay route.
func NewRouter(app *handlers.App) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		appmw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		appmw.Logger(app.Log),
		appmw.CORS(nil),
	)

	r.Get("/health", app.Health)

	r.Route("/form-test/{formId}", func(r chi.Router) {
		r.Get("/", app.FormSchema)
		r.Post("/", app.SubmitForm)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/n8n/webhook", app.LegacyWebhook)
		r.Post("/forward-form", app.ForwardForm)
		r.Post("/trigger-n8n", app.TriggerN8N)
		r.Get("/content", app.ListContent)
		r.Get("/content/{jobId}", app.GetContent)
		r.Get("/docs", app.Docs)
	})

	// The browser form is served from ./public when it is deployed next to
	// the binary.
	if info, err := os.Stat("public"); err == nil && info.IsDir() {
		r.Handle("/*", stdhttp.FileServer(stdhttp.Dir("public")))
	}

	return r
}
