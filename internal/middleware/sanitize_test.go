package middleware

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
)

func TestSanitizeStrings(t *testing.T) {
	policy := bluemonday.StrictPolicy()

	body := map[string]any{
		"title":       "<script>alert(1)</script>My Album",
		"description": "<b>bold</b> plans",
		"fundingGoal": "1000.00",
		"maxClaims":   float64(5),
		"publish":     true,
	}

	sanitizeStrings(body, policy)

	if body["title"] != "My Album" {
		t.Errorf("title = %q, want %q", body["title"], "My Album")
	}
	if body["description"] != "bold plans" {
		t.Errorf("description = %q, want %q", body["description"], "bold plans")
	}
	if body["fundingGoal"] != "1000.00" {
		t.Errorf("fundingGoal = %q, want untouched", body["fundingGoal"])
	}
	if body["maxClaims"] != float64(5) {
		t.Errorf("maxClaims changed: %v", body["maxClaims"])
	}
	if body["publish"] != true {
		t.Errorf("publish changed: %v", body["publish"])
	}
}
