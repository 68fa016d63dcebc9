package handlers

import "net/http"

// Docs lists the HTTP surface for quick manual discovery.
func (a *App) Docs(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	baseURL := scheme + "://" + r.Host

	a.json(w, http.StatusOK, map[string]any{
		"title":   "Image & Caption Generator API",
		"version": "1.0.0",
		"endpoints": map[string]any{
			"health": map[string]any{
				"method":      "GET",
				"url":         "/health",
				"description": "Health check endpoint",
			},
			"n8nForm": map[string]any{
				"method":      "POST",
				"url":         "/form-test/{formId}",
				"description": "n8n form submission endpoint",
				"example":     baseURL + "/form-test/1bc429ed-c5a2-4783-9dd8-40eaac8a59f1",
				"body": map[string]any{
					"accountName": "account selection (required)",
					"category":    "category selection (required)",
					"prompt":      "generation prompt (required)",
					"type":        "image|caption|both (optional, default: image)",
				},
			},
			"legacyWebhook": map[string]any{
				"method":      "POST",
				"url":         "/api/n8n/webhook",
				"description": "Legacy webhook endpoint (backward compatibility)",
			},
			"forwardForm": map[string]any{
				"method":      "POST",
				"url":         "/api/forward-form",
				"description": "Forward a submission to the configured n8n form endpoint",
			},
			"triggerN8N": map[string]any{
				"method":      "POST",
				"url":         "/api/trigger-n8n",
				"description": "Trigger the configured n8n webhook with an arbitrary payload",
			},
			"getContent": map[string]any{
				"method":      "GET",
				"url":         "/api/content/{jobId}",
				"description": "Retrieve generated content by job ID",
			},
			"listContent": map[string]any{
				"method":      "GET",
				"url":         "/api/content",
				"description": "List all generated content",
			},
		},
	})
}
