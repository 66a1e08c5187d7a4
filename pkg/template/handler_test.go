package template

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleTemplates_List(t *testing.T) {
	s := newTestStore(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/templates", nil)
	w := httptest.NewRecorder()
	s.HandleTemplates(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Templates []Template `json:"templates"`
		Count     int        `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 5 || len(resp.Templates) != 5 {
		t.Fatalf("count = %d, templates = %d", resp.Count, len(resp.Templates))
	}
}

func TestHandleTemplates_Filters(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"by category", "?category=Signage", 3},
		{"by pattern", "?pattern=*Sign", 2},
		{"category misses", "?category=Nope", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/templates"+tt.query, nil)
			w := httptest.NewRecorder()
			s.HandleTemplates(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			var resp struct {
				Count int `json:"count"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Count != tt.want {
				t.Errorf("count = %d, want %d", resp.Count, tt.want)
			}
		})
	}
}

func TestHandleTemplates_ByName(t *testing.T) {
	s := newTestStore(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/templates?name=Door+Plate", nil)
	w := httptest.NewRecorder()
	s.HandleTemplates(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var tpl Template
	if err := json.Unmarshal(w.Body.Bytes(), &tpl); err != nil {
		t.Fatal(err)
	}
	if tpl.Name != "Door Plate" {
		t.Errorf("name = %q", tpl.Name)
	}
}

func TestHandleTemplates_UnknownName(t *testing.T) {
	s := newTestStore(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/templates?name=Missing", nil)
	w := httptest.NewRecorder()
	s.HandleTemplates(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestHandleTemplates_MethodNotAllowed(t *testing.T) {
	s := newTestStore(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/templates", nil)
	w := httptest.NewRecorder()
	s.HandleTemplates(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
	if allow := w.Header().Get("Allow"); allow != http.MethodGet {
		t.Errorf("Allow = %q, want GET", allow)
	}
}
