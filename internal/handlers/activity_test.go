package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"matchboard/internal/models"
	"matchboard/internal/service"
)

func TestActivityHandler_FiltersAndAuth(t *testing.T) {
	auth := &mockAuth{parseIdent: &service.Identity{ID: 4, Username: "alice"}}
	al := &mockActivityLog{
		resp: []models.ActivityEvent{
			{EventID: "e1", Type: models.ActivityProjectCreated, Message: "project 2 created"},
			{EventID: "e2", Type: models.ActivityHelpRequested, Message: "help requested on project 2"},
		},
	}
	s := &service.Service{Authorization: auth, ActivityLog: al}
	r := newTestRouter(s)

	// token required
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/activity", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}

	// filters are parsed and forwarded
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet,
		"/api/activity?from=2026-08-27T10:00:00Z&to=2026-08-27T12:00:00Z&type=project_created", nil)
	req.Header = authHeader("valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("activity status=%d, body=%s", w.Code, w.Body.String())
	}
	wantFrom := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	if !al.lastFilter.From.Equal(wantFrom) {
		t.Fatalf("from: got %v, want %v", al.lastFilter.From, wantFrom)
	}
	if al.lastFilter.Type != models.ActivityProjectCreated {
		t.Fatalf("type not normalized: %q", al.lastFilter.Type)
	}
	var resp struct {
		Count  int                    `json:"count"`
		Events []models.ActivityEvent `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 2 || len(resp.Events) != 2 {
		t.Fatalf("unexpected payload: %+v", resp)
	}

	// date-only 'to' is extended to end of day
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/activity?to=2026-08-27", nil)
	req.Header = authHeader("valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("activity status=%d, body=%s", w.Code, w.Body.String())
	}
	to := al.lastFilter.To
	if to.Year() != 2026 || to.Month() != time.August || to.Day() != 27 || to.Hour() != 23 || to.Minute() != 59 {
		t.Fatalf("date-only 'to' not extended to end of day: %v", to)
	}
}

func TestActivityHandler_BadQueries(t *testing.T) {
	auth := &mockAuth{parseIdent: &service.Identity{ID: 4}}
	al := &mockActivityLog{}
	s := &service.Service{Authorization: auth, ActivityLog: al}
	r := newTestRouter(s)

	cases := []struct {
		name  string
		query string
	}{
		{name: "garbage from", query: "?from=yesterday"},
		{name: "garbage to", query: "?to=27/08/2026"},
		{name: "inverted range", query: "?from=2026-08-27&to=2026-08-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/activity"+tc.query, nil)
			req.Header = authHeader("valid")
			r.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (body=%s)", w.Code, w.Body.String())
			}
		})
	}
}
