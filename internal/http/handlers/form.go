package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"relay/internal/content"
	"relay/internal/forward"
	"relay/internal/store"
)

// The form exposes closed option sets; submissions outside them are rejected
// before any generation happens.
var validAccountNames = []string{
	"nia_dhanii",
	"budi_hartono26",
	"hendra_wijaya_brave",
	"tikaamelia30",
	"mama_yuni_53",
	"raka_pradanaaa.a",
}

var validCategories = []string{
	"Lifestyle",
	"Health",
	"Nutrition",
	"Fitness",
	"Medical",
	"Mental Health",
	"Routines",
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

// SubmitForm handles n8n form submissions: validate, generate, store.
func (a *App) SubmitForm(w http.ResponseWriter, r *http.Request) {
	formID := chi.URLParam(r, "formId")
	body, err := decodeBody(r)
	if err != nil {
		a.json(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Invalid request body",
			"message": err.Error(),
			"formId":  formID,
		})
		return
	}
	a.Log.Debug().Str("form_id", formID).Interface("body", body).Msg("form submission received")

	// The form may deliver any of the field aliases depending on how the
	// n8n node was configured.
	accountName := forward.Field(body, "accountName")
	category := forward.Field(body, "category")
	prompt := forward.Field(body, "prompt")

	if accountName == "" {
		a.json(w, http.StatusBadRequest, map[string]any{
			"success":      false,
			"error":        "Account Name is required",
			"message":      "Please provide an accountName field in the request body",
			"formId":       formID,
			"validOptions": validAccountNames,
			"received":     body,
		})
		return
	}
	if category == "" {
		a.json(w, http.StatusBadRequest, map[string]any{
			"success":      false,
			"error":        "Category is required",
			"message":      "Please provide a category field in the request body",
			"formId":       formID,
			"validOptions": validCategories,
			"received":     body,
		})
		return
	}
	if prompt == "" {
		a.json(w, http.StatusBadRequest, map[string]any{
			"success":  false,
			"error":    "Prompt is required",
			"message":  "Please provide a prompt field in the request body",
			"formId":   formID,
			"received": body,
		})
		return
	}
	if !contains(validAccountNames, accountName) {
		a.json(w, http.StatusBadRequest, map[string]any{
			"success":      false,
			"error":        "Invalid Account Name",
			"message":      "Account Name must be one of: " + strings.Join(validAccountNames, ", "),
			"formId":       formID,
			"provided":     accountName,
			"validOptions": validAccountNames,
		})
		return
	}
	if !contains(validCategories, category) {
		a.json(w, http.StatusBadRequest, map[string]any{
			"success":      false,
			"error":        "Invalid Category",
			"message":      "Category must be one of: " + strings.Join(validCategories, ", "),
			"formId":       formID,
			"provided":     category,
			"validOptions": validCategories,
		})
		return
	}
	if len(formID) < 10 {
		a.json(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Invalid form ID",
			"message": "Form ID must be provided and valid",
			"formId":  formID,
		})
		return
	}

	kind, err := content.ParseKind(stringField(body, "type"), content.KindImage)
	if err != nil {
		a.json(w, http.StatusBadRequest, map[string]any{
			"success":      false,
			"error":        "Invalid type",
			"message":      "type must be one of image, caption, both",
			"formId":       formID,
			"provided":     stringField(body, "type"),
			"validOptions": []string{"image", "caption", "both"},
		})
		return
	}

	result, err := a.Generator.Generate(r.Context(), prompt, kind)
	if err != nil {
		a.Log.Error().Err(err).Str("form_id", formID).Msg("form generation failed")
		a.json(w, http.StatusInternalServerError, map[string]any{
			"success":   false,
			"error":     "Internal server error",
			"message":   err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"formId":    formID,
		})
		return
	}

	jobID := uuid.NewString()
	timestamp := time.Now().UTC().Format(time.RFC3339)
	rec := store.Record{
		JobID:       jobID,
		FormID:      formID,
		Timestamp:   timestamp,
		AccountName: accountName,
		Category:    category,
		Prompt:      prompt,
		Type:        string(kind),
		Result:      *result,
		Status:      "completed",
		Source:      "n8n-form",
	}
	a.Store.Put(rec)

	a.json(w, http.StatusOK, map[string]any{
		"success":   true,
		"jobId":     jobID,
		"formId":    formID,
		"timestamp": timestamp,
		"message":   "Image generated successfully",
		"data": map[string]any{
			"accountName": accountName,
			"category":    category,
			"prompt":      prompt,
			"type":        string(kind),
			"result":      result,
			"metadata": map[string]any{
				"jobId":       jobID,
				"formId":      formID,
				"accountName": accountName,
				"category":    category,
				"processedAt": timestamp,
			},
		},
	})
}

// FormSchema describes the expected form fields for a GET probe of the
// endpoint.
func (a *App) FormSchema(w http.ResponseWriter, r *http.Request) {
	formID := chi.URLParam(r, "formId")
	a.json(w, http.StatusOK, map[string]any{
		"success":     true,
		"formId":      formID,
		"title":       "Image generation",
		"description": "This form will allow you to generate images",
		"message":     "Form endpoint is active",
		"instructions": map[string]any{
			"method":         "POST",
			"url":            "/form-test/" + formID,
			"requiredFields": []string{"accountName", "category", "prompt"},
			"optionalFields": []string{"type"},
			"defaultType":    "image",
		},
		"formFields": map[string]any{
			"accountName": map[string]any{
				"label":    "Account Name",
				"type":     "select",
				"required": true,
				"options":  validAccountNames,
			},
			"category": map[string]any{
				"label":    "Category",
				"type":     "select",
				"required": true,
				"options":  validCategories,
			},
			"prompt": map[string]any{
				"label":       "Prompt",
				"type":        "textarea",
				"required":    false,
				"placeholder": "Input your prompt or image idea",
			},
		},
		"example": map[string]any{
			"accountName": "nia_dhanii",
			"category":    "Lifestyle",
			"prompt":      "A beautiful sunset over mountains",
			"type":        "image",
		},
	})
}
