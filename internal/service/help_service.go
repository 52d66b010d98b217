package service

import (
	"context"
	"fmt"

	"matchboard/internal/models"
	"matchboard/internal/repository"
)

// HelpService implements the help-request lifecycle and its permission rules:
// anyone but the owner may apply once per project, only the owner may list
// applicants or move a request out of pending.
type HelpService struct {
	projects repository.Projects
	helps    repository.Helps
	activity repository.Activity
}

func NewHelpService(projects repository.Projects, helps repository.Helps, activity repository.Activity) *HelpService {
	return &HelpService{projects: projects, helps: helps, activity: activity}
}

var _ HelpDesk = (*HelpService)(nil)

// Apply files a pending help request for applicantID on projectID. Applying
// again for the same pair returns the existing row with created=false; the
// uniqueness lives in the schema, so concurrent duplicates collapse into one.
func (s *HelpService) Apply(ctx context.Context, projectID, applicantID int) (*models.Help, bool, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, false, err
	}
	if project == nil {
		return nil, false, ErrProjectNotFound
	}
	if project.UserID == applicantID {
		return nil, false, ErrOwnHelp
	}

	id, inserted, err := s.helps.Create(ctx, projectID, applicantID)
	if err != nil {
		return nil, false, err
	}

	help, err := s.helps.GetByProjectAndUser(ctx, projectID, applicantID)
	if err != nil {
		return nil, false, err
	}
	if help == nil {
		// The row vanished between insert and read; treat as a storage fault.
		return nil, false, fmt.Errorf("help row missing after insert (project %d, user %d, id %d)", projectID, applicantID, id)
	}

	if inserted {
		s.record(ctx, models.ActivityHelpRequested,
			fmt.Sprintf("help requested on project %q", project.Title),
			map[string]any{"project_id": projectID, "user_id": applicantID, "help_id": help.ID})
	}
	return help, inserted, nil
}

func (s *HelpService) ListForProject(ctx context.Context, projectID, requesterID int) ([]models.HelpApplicant, error) {
	if err := s.requireOwner(ctx, projectID, requesterID); err != nil {
		return nil, err
	}
	return s.helps.ListByProject(ctx, projectID)
}

// SetStatus moves one help request to the given status. The update is scoped
// to projectID, so a helpId belonging to another project reports not found.
func (s *HelpService) SetStatus(ctx context.Context, projectID, helpID int, status string, requesterID int) (*models.Help, error) {
	if !models.ValidHelpStatus(status) {
		return nil, ErrInvalidHelpStatus
	}

	if err := s.requireOwner(ctx, projectID, requesterID); err != nil {
		return nil, err
	}

	help, err := s.helps.UpdateStatus(ctx, projectID, helpID, status)
	if err != nil {
		return nil, err
	}
	if help == nil {
		return nil, ErrHelpNotFound
	}

	s.record(ctx, models.ActivityHelpStatusChanged,
		fmt.Sprintf("help request %d set to %s", helpID, status),
		map[string]any{"project_id": projectID, "help_id": helpID, "status": status, "user_id": requesterID})
	return help, nil
}

func (s *HelpService) ListForUser(ctx context.Context, userID int) ([]models.UserHelp, error) {
	return s.helps.ListByUser(ctx, userID)
}

func (s *HelpService) ListMatchesForUser(ctx context.Context, userID int) ([]models.UserHelp, error) {
	return s.helps.ListMatchedByUser(ctx, userID)
}

func (s *HelpService) requireOwner(ctx context.Context, projectID, requesterID int) error {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrProjectNotFound
	}
	if project.UserID != requesterID {
		return ErrNotOwner
	}
	return nil
}

// record appends an activity entry; the audit trail is best-effort and never
// fails the caller's operation.
func (s *HelpService) record(ctx context.Context, typ, message string, meta map[string]any) {
	_ = s.activity.Append(ctx, models.ActivityEvent{Type: typ, Message: message, Metadata: meta})
}
