package forward

import "testing"

func TestNormalizeFansOutAliases(t *testing.T) {
	body := map[string]any{
		"accountName": "nia_dhanii",
		"category":    "Lifestyle",
		"prompt":      "A beautiful sunset over mountains",
	}

	got := Normalize(body)

	expect := map[string]string{
		"accountName":  "nia_dhanii",
		"Account Name": "nia_dhanii",
		"account_name": "nia_dhanii",
		"category":     "Lifestyle",
		"Category":     "Lifestyle",
		"prompt":       "A beautiful sunset over mountains",
		"Prompt":       "A beautiful sunset over mountains",
		"text":         "A beautiful sunset over mountains",
		"message":      "A beautiful sunset over mountains",
	}
	for key, want := range expect {
		if got[key] != want {
			t.Fatalf("normalized[%q] = %v, want %q", key, got[key], want)
		}
	}
	if got["submittedAt"] == nil || got["submittedAt"] == "" {
		t.Fatalf("submittedAt not stamped: %v", got["submittedAt"])
	}
}

func TestNormalizeKeepsExtras(t *testing.T) {
	body := map[string]any{
		"accountName": "nia_dhanii",
		"campaign":    "spring-launch",
		"retries":     3,
	}

	got := Normalize(body)

	if got["campaign"] != "spring-launch" {
		t.Fatalf("extra key dropped: %v", got["campaign"])
	}
	if got["retries"] != 3 {
		t.Fatalf("extra key altered: %v", got["retries"])
	}
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	body := map[string]any{"accountName": "nia_dhanii"}
	Normalize(body)
	if len(body) != 1 {
		t.Fatalf("input map modified: %#v", body)
	}
}

func TestNormalizePreservesSubmittedAt(t *testing.T) {
	body := map[string]any{"submittedAt": "2024-01-01T00:00:00Z"}
	got := Normalize(body)
	if got["submittedAt"] != "2024-01-01T00:00:00Z" {
		t.Fatalf("submittedAt replaced: %v", got["submittedAt"])
	}
}

func TestNormalizeResolvesFromAlias(t *testing.T) {
	body := map[string]any{"Account Name": "nia_dhanii"}
	got := Normalize(body)
	if got["accountName"] != "nia_dhanii" || got["account_name"] != "nia_dhanii" {
		t.Fatalf("alias not resolved to all outputs: %#v", got)
	}
}

func TestField(t *testing.T) {
	body := map[string]any{
		"account_name": "budi_hartono26",
		"message":      "hello",
	}
	if got := Field(body, "accountName"); got != "budi_hartono26" {
		t.Fatalf("Field(accountName) = %q", got)
	}
	if got := Field(body, "prompt"); got != "hello" {
		t.Fatalf("Field(prompt) = %q", got)
	}
	if got := Field(body, "category"); got != "" {
		t.Fatalf("Field(category) = %q, want empty", got)
	}
}

func TestFieldSkipsEmptyValues(t *testing.T) {
	body := map[string]any{
		"prompt": "",
		"text":   "fallback wins",
	}
	if got := Field(body, "prompt"); got != "fallback wins" {
		t.Fatalf("Field(prompt) = %q, want fallback value", got)
	}
}
