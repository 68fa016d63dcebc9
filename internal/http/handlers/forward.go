package handlers

import (
	"errors"
	"net/http"

	"relay/internal/forward"
)

// ForwardForm relays an arbitrary submission to the configured n8n form
// endpoint: fan the fields out to every alias, encode under the configured
// wire format, then try the delivery targets in order.
func (a *App) ForwardForm(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		a.json(w, http.StatusBadRequest, map[string]any{
			"ok":      false,
			"error":   "invalid_body",
			"message": err.Error(),
		})
		return
	}

	direct := forward.Target{URL: a.Cfg.FormTargetURL, Role: forward.RoleDirect}
	proxy := forward.Target{URL: a.Cfg.FormProxyURL, Role: forward.RoleProxy}
	targets := forward.OrderTargets(direct, proxy, r.URL.Query().Get("mode"))

	normalized := forward.Normalize(body)
	contentType, payload, err := forward.Encode(normalized, a.Encoding)
	if err != nil {
		a.Log.Error().Err(err).Msg("forward encoding failed")
		a.json(w, http.StatusInternalServerError, map[string]any{
			"ok":      false,
			"error":   "internal_error",
			"message": err.Error(),
		})
		return
	}

	res, err := a.Attempter.Fallback(r.Context(), targets, contentType, payload)
	if err == nil {
		a.json(w, http.StatusOK, map[string]any{
			"ok":     true,
			"status": res.Status,
			"body":   res.Body,
			"target": res.Target,
		})
		return
	}

	if errors.Is(err, forward.ErrNoTargets) {
		a.json(w, http.StatusInternalServerError, map[string]any{
			"ok":      false,
			"error":   "configuration_error",
			"message": "FORM_TARGET_URL is not configured",
		})
		return
	}

	var last *forward.AttemptError
	if !errors.As(err, &last) || last == nil {
		a.json(w, http.StatusInternalServerError, map[string]any{
			"ok":      false,
			"error":   "internal_error",
			"message": err.Error(),
		})
		return
	}
	if last.Kind == forward.KindHTTPError {
		a.json(w, http.StatusBadGateway, map[string]any{
			"ok":     false,
			"error":  "upstream_error",
			"status": last.Status,
			"body":   last.Body,
		})
		return
	}
	a.json(w, http.StatusBadGateway, map[string]any{
		"ok":      false,
		"error":   "proxy_failed",
		"message": last.Error(),
	})
}

// TriggerN8N forwards an arbitrary JSON payload to the configured legacy
// webhook and relays the n8n response verbatim.
func (a *App) TriggerN8N(w http.ResponseWriter, r *http.Request) {
	webhookURL := a.Cfg.WebhookURL()
	if webhookURL == "" {
		a.json(w, http.StatusInternalServerError, map[string]any{
			"error": "N8N_WEBHOOK_URL is not configured",
		})
		return
	}

	body, err := decodeBody(r)
	if err != nil {
		a.json(w, http.StatusBadRequest, map[string]any{
			"error": "invalid request body: " + err.Error(),
		})
		return
	}

	res, err := a.N8N.TriggerWebhook(r.Context(), webhookURL, body)
	if err != nil {
		a.Log.Error().Err(err).Str("url", webhookURL).Msg("n8n trigger failed")
		a.json(w, http.StatusInternalServerError, map[string]any{
			"error": err.Error(),
		})
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"ok":        res.Success,
		"n8nStatus": res.Status,
		"n8nBody":   res.Data,
	})
}
