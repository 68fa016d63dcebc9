package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"relay/internal/content"
	"relay/internal/forward"
	"relay/internal/infra"
	"relay/internal/n8n"
	"relay/internal/store"
)

// App bundles the handler dependencies. Everything is injected so tests can
// swap the store, generator, and outbound clients.
type App struct {
	Cfg       *infra.Config
	Log       infra.Logger
	Store     store.Store
	Generator *content.Generator
	Attempter *forward.Attempter
	N8N       *n8n.Client
	Encoding  forward.Encoding
}

// NewApp wires an App container from its collaborators.
func NewApp(cfg *infra.Config, log infra.Logger, st store.Store, gen *content.Generator, att *forward.Attempter, client *n8n.Client, enc forward.Encoding) *App {
	return &App{
		Cfg:       cfg,
		Log:       log,
		Store:     st,
		Generator: gen,
		Attempter: att,
		N8N:       client,
		Encoding:  enc,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeBody reads a JSON or urlencoded-form request body into a generic
// map. The browser form posts JSON, but n8n nodes are configured with either.
func decodeBody(r *http.Request) (map[string]any, error) {
	mediaType := r.Header.Get("Content-Type")
	if mediaType != "" {
		if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
			mediaType = parsed
		}
	}
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		body := make(map[string]any, len(r.PostForm))
		for key, values := range r.PostForm {
			if len(values) > 0 {
				body[key] = values[0]
			}
		}
		return body, nil
	}

	body := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return body, nil
}

func stringField(body map[string]any, key string) string {
	if v, ok := body[key].(string); ok {
		return v
	}
	return ""
}
