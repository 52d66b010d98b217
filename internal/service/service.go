package service

import (
	"context"

	"matchboard/internal/models"
	"matchboard/internal/repository"
)

// Authorization covers login (with auto-registration), token parsing and
// current-user lookup.
type Authorization interface {
	// Login returns the user, a signed token, and whether the user was just created.
	Login(ctx context.Context, username, password string) (*models.User, string, bool, error)
	ParseToken(accessToken string) (*Identity, error)
	CurrentUser(ctx context.Context, id int) (*models.User, error)
}

// ProjectManager covers project CRUD with ownership enforcement.
type ProjectManager interface {
	List(ctx context.Context) ([]models.Project, error)
	ListByOwner(ctx context.Context, userID int) ([]models.Project, error)
	Get(ctx context.Context, id int) (*models.Project, error)
	Create(ctx context.Context, title, description string, ownerID int) (*models.Project, error)
	Update(ctx context.Context, id int, patch ProjectPatch, requesterID int) (*models.Project, error)
	Delete(ctx context.Context, id, requesterID int) error
}

// HelpDesk covers the help-request lifecycle: apply, list, status transitions.
type HelpDesk interface {
	// Apply returns the help row and whether it was newly created.
	Apply(ctx context.Context, projectID, applicantID int) (*models.Help, bool, error)
	ListForProject(ctx context.Context, projectID, requesterID int) ([]models.HelpApplicant, error)
	SetStatus(ctx context.Context, projectID, helpID int, status string, requesterID int) (*models.Help, error)
	ListForUser(ctx context.Context, userID int) ([]models.UserHelp, error)
	ListMatchesForUser(ctx context.Context, userID int) ([]models.UserHelp, error)
}

// ActivityLog exposes the append-only audit trail with filtering.
type ActivityLog interface {
	ListEvents(ctx context.Context, f ActivityFilter) ([]models.ActivityEvent, error)
}

type Service struct {
	Authorization
	ProjectManager
	HelpDesk
	ActivityLog
}

func NewService(repos *repository.Repository, authCfg AuthConfig) *Service {
	return &Service{
		Authorization:  NewAuthService(repos.Users, authCfg),
		ProjectManager: NewProjectService(repos.Projects, repos.Activity),
		HelpDesk:       NewHelpService(repos.Projects, repos.Helps, repos.Activity),
		ActivityLog:    NewActivityService(repos.Activity),
	}
}
