package service

import (
	"context"
	"time"

	"matchboard/internal/models"
)

// Lightweight func-based mocks for the repository interfaces.

type mockUsers struct {
	CreateFn        func(username, password string) (int, error)
	GetByIDFn       func(id int) (*models.User, error)
	GetByUsernameFn func(username string) (*models.User, error)

	createCalls []struct{ username, password string }
}

func (m *mockUsers) Create(_ context.Context, username, password string) (int, error) {
	m.createCalls = append(m.createCalls, struct{ username, password string }{username, password})
	return m.CreateFn(username, password)
}

func (m *mockUsers) GetByID(_ context.Context, id int) (*models.User, error) {
	return m.GetByIDFn(id)
}

func (m *mockUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return m.GetByUsernameFn(username)
}

type mockProjects struct {
	ListFn        func() ([]models.Project, error)
	ListByOwnerFn func(userID int) ([]models.Project, error)
	GetByIDFn     func(id int) (*models.Project, error)
	CreateFn      func(title, description, status string, ownerID int) (int, error)
	UpdateFn      func(id int, title, description, status string) error
	DeleteFn      func(id int) error

	updateCalls []struct{ title, description, status string }
	deleteCalls []int
}

func (m *mockProjects) List(_ context.Context) ([]models.Project, error) { return m.ListFn() }

func (m *mockProjects) ListByOwner(_ context.Context, userID int) ([]models.Project, error) {
	return m.ListByOwnerFn(userID)
}

func (m *mockProjects) GetByID(_ context.Context, id int) (*models.Project, error) {
	return m.GetByIDFn(id)
}

func (m *mockProjects) Create(_ context.Context, title, description, status string, ownerID int) (int, error) {
	return m.CreateFn(title, description, status, ownerID)
}

func (m *mockProjects) Update(_ context.Context, id int, title, description, status string) error {
	m.updateCalls = append(m.updateCalls, struct{ title, description, status string }{title, description, status})
	return m.UpdateFn(id, title, description, status)
}

func (m *mockProjects) Delete(_ context.Context, id int) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.DeleteFn(id)
}

type mockHelps struct {
	CreateFn              func(projectID, userID int) (int, bool, error)
	GetByProjectAndUserFn func(projectID, userID int) (*models.Help, error)
	ListByProjectFn       func(projectID int) ([]models.HelpApplicant, error)
	UpdateStatusFn        func(projectID, helpID int, status string) (*models.Help, error)
	ListByUserFn          func(userID int) ([]models.UserHelp, error)
	ListMatchedByUserFn   func(userID int) ([]models.UserHelp, error)
}

func (m *mockHelps) Create(_ context.Context, projectID, userID int) (int, bool, error) {
	return m.CreateFn(projectID, userID)
}

func (m *mockHelps) GetByProjectAndUser(_ context.Context, projectID, userID int) (*models.Help, error) {
	return m.GetByProjectAndUserFn(projectID, userID)
}

func (m *mockHelps) ListByProject(_ context.Context, projectID int) ([]models.HelpApplicant, error) {
	return m.ListByProjectFn(projectID)
}

func (m *mockHelps) UpdateStatus(_ context.Context, projectID, helpID int, status string) (*models.Help, error) {
	return m.UpdateStatusFn(projectID, helpID, status)
}

func (m *mockHelps) ListByUser(_ context.Context, userID int) ([]models.UserHelp, error) {
	return m.ListByUserFn(userID)
}

func (m *mockHelps) ListMatchedByUser(_ context.Context, userID int) ([]models.UserHelp, error) {
	return m.ListMatchedByUserFn(userID)
}

// mockActivity records appended events; List replays them and captures the filter.
type mockActivity struct {
	appended []models.ActivityEvent
	listErr  error

	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockActivity) Append(_ context.Context, e models.ActivityEvent) error {
	m.appended = append(m.appended, e)
	return nil
}

func (m *mockActivity) List(_ context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error) {
	m.lastFrom, m.lastTo, m.lastType = from, to, typ
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.appended, nil
}
