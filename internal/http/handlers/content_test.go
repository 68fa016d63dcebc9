package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetContentAfterGeneration(t *testing.T) {
	app := newTestApp(nil)
	router := newTestRouter(app)

	rec := postJSON(t, router, "/form-test/"+testFormID, map[string]any{
		"accountName": "nia_dhanii",
		"category":    "Lifestyle",
		"prompt":      "A beautiful sunset over mountains",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("generation status = %d", rec.Code)
	}
	jobID := decodeJSON(t, rec)["jobId"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/content/"+jobID, nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, req)

	if getRec.Code != http.StatusOK {
		t.Fatalf("status = %d", getRec.Code)
	}
	record := decodeJSON(t, getRec)
	if record["jobId"] != jobID {
		t.Fatalf("jobId = %v, want %q", record["jobId"], jobID)
	}
	if record["status"] != "completed" {
		t.Fatalf("status = %v", record["status"])
	}
	image := record["result"].(map[string]any)["image"].(map[string]any)
	if image["width"] != float64(512) || image["height"] != float64(512) || image["format"] != "png" {
		t.Fatalf("image = %#v", image)
	}
}

func TestGetContentNotFound(t *testing.T) {
	app := newTestApp(nil)
	router := newTestRouter(app)

	req := httptest.NewRequest(http.MethodGet, "/api/content/does-not-exist", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeJSON(t, rec)
	if resp["error"] != "Content not found" || resp["jobId"] != "does-not-exist" {
		t.Fatalf("resp = %#v", resp)
	}
}

func TestListContent(t *testing.T) {
	app := newTestApp(nil)
	router := newTestRouter(app)

	prompts := []string{"first", "second", "third"}
	for _, prompt := range prompts {
		rec := postJSON(t, router, "/api/n8n/webhook", map[string]any{
			"prompt": prompt,
			"type":   "caption",
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("generation status = %d", rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeJSON(t, rec)
	if resp["total"] != float64(3) {
		t.Fatalf("total = %v", resp["total"])
	}
	records := resp["content"].([]any)
	for i, prompt := range prompts {
		rec := records[i].(map[string]any)
		if rec["prompt"] != prompt {
			t.Fatalf("content[%d].prompt = %v, want insertion order", i, rec["prompt"])
		}
	}
}
