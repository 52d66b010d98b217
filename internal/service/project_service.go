package service

import (
	"context"
	"fmt"
	"strings"

	"matchboard/internal/models"
	"matchboard/internal/repository"
)

// ProjectService implements project CRUD plus the owner-only mutation rules.
type ProjectService struct {
	projects repository.Projects
	activity repository.Activity
}

func NewProjectService(projects repository.Projects, activity repository.Activity) *ProjectService {
	return &ProjectService{projects: projects, activity: activity}
}

var _ ProjectManager = (*ProjectService)(nil)

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectService) ListByOwner(ctx context.Context, userID int) ([]models.Project, error) {
	return s.projects.ListByOwner(ctx, userID)
}

func (s *ProjectService) Get(ctx context.Context, id int) (*models.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProjectNotFound
	}
	return p, nil
}

func (s *ProjectService) Create(ctx context.Context, title, description string, ownerID int) (*models.Project, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	id, err := s.projects.Create(ctx, title, description, models.ProjectStatusOpen, ownerID)
	if err != nil {
		return nil, err
	}

	created, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.record(ctx, models.ActivityProjectCreated,
		fmt.Sprintf("project %q posted", created.Title),
		map[string]any{"project_id": created.ID, "user_id": ownerID})
	return created, nil
}

// Update merges the patch over the stored row: title/status only replace when
// supplied non-empty, description replaces whenever the field is present.
func (s *ProjectService) Update(ctx context.Context, id int, patch ProjectPatch, requesterID int) (*models.Project, error) {
	existing, err := s.ownedProject(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	title := existing.Title
	if patch.Title != nil && *patch.Title != "" {
		title = *patch.Title
	}
	description := existing.Description
	if patch.Description != nil {
		description = *patch.Description
	}
	status := existing.Status
	if patch.Status != nil && *patch.Status != "" {
		status = *patch.Status
	}

	if err := s.projects.Update(ctx, id, title, description, status); err != nil {
		return nil, err
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.record(ctx, models.ActivityProjectUpdated,
		fmt.Sprintf("project %q updated", updated.Title),
		map[string]any{"project_id": id, "user_id": requesterID})
	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, id, requesterID int) error {
	existing, err := s.ownedProject(ctx, id, requesterID)
	if err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, models.ActivityProjectDeleted,
		fmt.Sprintf("project %q deleted", existing.Title),
		map[string]any{"project_id": id, "user_id": requesterID})
	return nil
}

// ownedProject loads a project and checks that requesterID owns it.
func (s *ProjectService) ownedProject(ctx context.Context, id, requesterID int) (*models.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != requesterID {
		return nil, ErrNotOwner
	}
	return p, nil
}

// record appends an activity entry; the audit trail is best-effort and never
// fails the caller's operation.
func (s *ProjectService) record(ctx context.Context, typ, message string, meta map[string]any) {
	_ = s.activity.Append(ctx, models.ActivityEvent{Type: typ, Message: message, Metadata: meta})
}
