package handlers

import (
	"context"
	"net/http"

	"matchboard/internal/models"
	"matchboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginUser    *models.User
	loginToken   string
	loginCreated bool
	loginErr     error

	parseIdent *service.Identity
	parseErr   error

	currentUser *models.User
	currentErr  error

	lastLoginUsername string
	lastLoginPassword string
	lastParseToken    string
}

func (m *mockAuth) Login(_ context.Context, username, password string) (*models.User, string, bool, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginUser, m.loginToken, m.loginCreated, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (*service.Identity, error) {
	m.lastParseToken = token
	return m.parseIdent, m.parseErr
}

func (m *mockAuth) CurrentUser(_ context.Context, id int) (*models.User, error) {
	return m.currentUser, m.currentErr
}

type mockProjectManager struct {
	listResp    []models.Project
	listErr     error
	byOwnerResp []models.Project
	byOwnerErr  error
	getResp     *models.Project
	getErr      error
	createResp  *models.Project
	createErr   error
	updateResp  *models.Project
	updateErr   error
	deleteErr   error

	lastCreateTitle string
	lastCreateDesc  string
	lastPatch       service.ProjectPatch
	lastRequester   int
	deleteCalls     int
}

func (m *mockProjectManager) List(_ context.Context) ([]models.Project, error) {
	return m.listResp, m.listErr
}

func (m *mockProjectManager) ListByOwner(_ context.Context, userID int) ([]models.Project, error) {
	return m.byOwnerResp, m.byOwnerErr
}

func (m *mockProjectManager) Get(_ context.Context, id int) (*models.Project, error) {
	return m.getResp, m.getErr
}

func (m *mockProjectManager) Create(_ context.Context, title, description string, ownerID int) (*models.Project, error) {
	m.lastCreateTitle = title
	m.lastCreateDesc = description
	m.lastRequester = ownerID
	return m.createResp, m.createErr
}

func (m *mockProjectManager) Update(_ context.Context, id int, patch service.ProjectPatch, requesterID int) (*models.Project, error) {
	m.lastPatch = patch
	m.lastRequester = requesterID
	return m.updateResp, m.updateErr
}

func (m *mockProjectManager) Delete(_ context.Context, id, requesterID int) error {
	m.deleteCalls++
	m.lastRequester = requesterID
	return m.deleteErr
}

type mockHelpDesk struct {
	applyResp     *models.Help
	applyCreated  bool
	applyErr      error
	listResp      []models.HelpApplicant
	listErr       error
	setResp       *models.Help
	setErr        error
	forUserResp   []models.UserHelp
	forUserErr    error
	matchesResp   []models.UserHelp
	matchesErr    error

	lastProjectID int
	lastHelpID    int
	lastStatus    string
	lastRequester int
}

func (m *mockHelpDesk) Apply(_ context.Context, projectID, applicantID int) (*models.Help, bool, error) {
	m.lastProjectID = projectID
	m.lastRequester = applicantID
	return m.applyResp, m.applyCreated, m.applyErr
}

func (m *mockHelpDesk) ListForProject(_ context.Context, projectID, requesterID int) ([]models.HelpApplicant, error) {
	m.lastProjectID = projectID
	m.lastRequester = requesterID
	return m.listResp, m.listErr
}

func (m *mockHelpDesk) SetStatus(_ context.Context, projectID, helpID int, status string, requesterID int) (*models.Help, error) {
	m.lastProjectID = projectID
	m.lastHelpID = helpID
	m.lastStatus = status
	m.lastRequester = requesterID
	return m.setResp, m.setErr
}

func (m *mockHelpDesk) ListForUser(_ context.Context, userID int) ([]models.UserHelp, error) {
	return m.forUserResp, m.forUserErr
}

func (m *mockHelpDesk) ListMatchesForUser(_ context.Context, userID int) ([]models.UserHelp, error) {
	return m.matchesResp, m.matchesErr
}

type mockActivityLog struct {
	resp []models.ActivityEvent
	err  error

	lastFilter service.ActivityFilter
}

func (m *mockActivityLog) ListEvents(_ context.Context, f service.ActivityFilter) ([]models.ActivityEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes(Options{})
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
