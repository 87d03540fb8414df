package ocrspell

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCorrectHandler(t *testing.T) {
	Active = New(
		&stubSuggester{sugs: map[string][]string{"teh": {"the"}}},
		WithSubstitutions(map[string]string{"Moog": "Moog Inc."}),
	)
	defer func() { Active = nil }()

	body := `{"tokens": ["teh", "[", "Moog", "fine"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/correct", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CorrectHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var resp CorrectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := []TokenResult{
		{Token: "teh", Corrected: "the", Changed: true},
		{Token: "[", Corrected: "I", Changed: true},
		{Token: "Moog", Corrected: "Moog Inc.", Changed: true},
		{Token: "fine", Corrected: "fine", Changed: false},
	}
	if len(resp.Results) != len(want) {
		t.Fatalf("got %d results, want %d", len(resp.Results), len(want))
	}
	for i, w := range want {
		if resp.Results[i] != w {
			t.Fatalf("results[%d] = %+v, want %+v", i, resp.Results[i], w)
		}
	}
	// "Moog" resolved via substitutions, so only 3 tokens were cached.
	if resp.CacheSize != 3 {
		t.Fatalf("cacheSize = %d, want 3", resp.CacheSize)
	}
}

func TestCorrectHandler_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/correct", nil)
	rec := httptest.NewRecorder()

	CorrectHandler(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestCorrectHandler_NoChecker(t *testing.T) {
	Active = nil
	req := httptest.NewRequest(http.MethodPost, "/v1/correct",
		strings.NewReader(`{"tokens": ["x"]}`))
	rec := httptest.NewRecorder()

	CorrectHandler(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestCorrectHandler_EmptyTokens(t *testing.T) {
	Active = New(&stubSuggester{})
	defer func() { Active = nil }()

	req := httptest.NewRequest(http.MethodPost, "/v1/correct",
		strings.NewReader(`{"tokens": []}`))
	rec := httptest.NewRecorder()

	CorrectHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	HealthHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("body = %q, want ok status", rec.Body.String())
	}
}
