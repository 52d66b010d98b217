package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"matchboard/internal/models"
	"matchboard/internal/service"
)

func TestUserHandlers_OwnViews(t *testing.T) {
	auth := &mockAuth{parseIdent: &service.Identity{ID: 5, Username: "bob"}}
	pm := &mockProjectManager{
		byOwnerResp: []models.Project{{ID: 3, Title: "Bob's own project", UserID: 5}},
	}
	hd := &mockHelpDesk{
		forUserResp: []models.UserHelp{
			{HelpID: 1, Status: models.HelpStatusPending, ProjectID: 2, ProjectTitle: "Build a shed", OwnerName: "alice"},
			{HelpID: 2, Status: models.HelpStatusMatched, ProjectID: 4, ProjectTitle: "Paint a fence", OwnerName: "carol"},
		},
		matchesResp: []models.UserHelp{
			{HelpID: 2, Status: models.HelpStatusMatched, ProjectID: 4, ProjectTitle: "Paint a fence", OwnerName: "carol"},
		},
	}
	s := &service.Service{Authorization: auth, ProjectManager: pm, HelpDesk: hd}
	r := newTestRouter(s)

	// all three views require a token
	for _, path := range []string{"/api/users/me/projects", "/api/users/me/helps", "/api/users/me/matches"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without auth, got %d", path, w.Code)
		}
	}

	// own projects
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me/projects", nil)
	req.Header = authHeader("valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("projects status=%d, body=%s", w.Code, w.Body.String())
	}
	var projResp struct {
		Projects []models.Project `json:"projects"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &projResp)
	if len(projResp.Projects) != 1 || projResp.Projects[0].ID != 3 {
		t.Fatalf("unexpected projects: %+v", projResp.Projects)
	}

	// own applications, all statuses
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/users/me/helps", nil)
	req.Header = authHeader("valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("helps status=%d, body=%s", w.Code, w.Body.String())
	}
	var helpsResp struct {
		Helps []models.UserHelp `json:"helps"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &helpsResp)
	if len(helpsResp.Helps) != 2 {
		t.Fatalf("expected 2 helps, got %+v", helpsResp.Helps)
	}

	// matches only
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/users/me/matches", nil)
	req.Header = authHeader("valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("matches status=%d, body=%s", w.Code, w.Body.String())
	}
	var matchResp struct {
		Matches []models.UserHelp `json:"matches"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &matchResp)
	if len(matchResp.Matches) != 1 || matchResp.Matches[0].Status != models.HelpStatusMatched {
		t.Fatalf("unexpected matches: %+v", matchResp.Matches)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["status"] != "ok" {
		t.Fatalf("unexpected health body: %s", w.Body.String())
	}
}
