package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleValidate_MethodNotAllowed(t *testing.T) {
	g := New()
	methods := []string{http.MethodPut, http.MethodDelete, http.MethodPatch}

	for _, method := range methods {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/v1/validate", nil)
			w := httptest.NewRecorder()

			g.HandleValidate(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
			}
			if allow := w.Header().Get("Allow"); allow != "GET, POST" {
				t.Errorf("expected Allow header GET, POST, got %s", allow)
			}
		})
	}
}

func TestHandleValidate_Query(t *testing.T) {
	g := New()

	url := "/v1/validate?text_line_1=Kirjasto&text_line_2=Library" +
		"&plate_length=160&plate_width=80&plate_thickness=7&letter_depth=4&text_size=25"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()

	g.HandleValidate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var rep Report
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	if !rep.IsValid {
		t.Errorf("expected valid report, got errors %v", rep.Errors)
	}
	if rep.Score != 100 {
		t.Errorf("score = %d, want 100", rep.Score)
	}
}

func TestHandleValidate_InvalidQuery(t *testing.T) {
	g := New()

	tests := []struct {
		name  string
		query string
	}{
		{"unknown parameter", "?plate_lenght=160"},
		{"non-numeric dimension", "?plate_length=long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/validate"+tt.query, nil)
			w := httptest.NewRecorder()

			g.HandleValidate(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestHandleValidate_UnknownParameterSuggestion(t *testing.T) {
	g := New()

	req := httptest.NewRequest(http.MethodGet, "/v1/validate?plate_lenght=160", nil)
	w := httptest.NewRecorder()

	g.HandleValidate(w, req)

	if !strings.Contains(w.Body.String(), "plate_length") {
		t.Errorf("expected closest-field suggestion in body: %s", w.Body.String())
	}
}

func TestHandleValidate_PostBody(t *testing.T) {
	g := New()

	body := `{"text_line_1": "Room", "text_line_2": "101", "plate_length": 100,
		"plate_width": 40, "plate_thickness": 5, "letter_depth": 10}`
	req := httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader(body))
	w := httptest.NewRecorder()

	g.HandleValidate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var rep Report
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	if rep.IsValid {
		t.Error("letter depth exceeding thickness must be invalid")
	}
}

func TestHandleValidate_MalformedBody(t *testing.T) {
	g := New()

	req := httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader("{broken"))
	w := httptest.NewRecorder()

	g.HandleValidate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestHandleScore(t *testing.T) {
	g := New()

	url := "/v1/score?text_line_1=Kirjasto&text_line_2=Library" +
		"&plate_length=160&plate_width=80&plate_thickness=7&letter_depth=4"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()

	g.HandleScore(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Score   int  `json:"score"`
		IsValid bool `json:"is_valid"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.IsValid {
		t.Error("expected valid design")
	}
	if resp.Score != 100 {
		t.Errorf("score = %d, want 100", resp.Score)
	}
}
