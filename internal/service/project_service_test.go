package service

import (
	"context"
	"testing"

	"matchboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProjectService_Create(t *testing.T) {
	t.Run("blank title rejected before storage", func(t *testing.T) {
		projects := &mockProjects{
			CreateFn: func(string, string, string, int) (int, error) {
				t.Fatal("Create must not be called for a blank title")
				return 0, nil
			},
		}
		svc := NewProjectService(projects, &mockActivity{})

		_, err := svc.Create(context.Background(), "   ", "desc", 4)
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("defaults status to open and records activity", func(t *testing.T) {
		stored := models.Project{ID: 11, Title: "Build a shed", Status: models.ProjectStatusOpen, UserID: 4, CreatorName: "alice"}
		projects := &mockProjects{
			CreateFn: func(title, description, status string, ownerID int) (int, error) {
				assert.Equal(t, models.ProjectStatusOpen, status)
				assert.Equal(t, "", description)
				return 11, nil
			},
			GetByIDFn: func(id int) (*models.Project, error) { return &stored, nil },
		}
		activity := &mockActivity{}
		svc := NewProjectService(projects, activity)

		p, err := svc.Create(context.Background(), "Build a shed", "", 4)
		require.NoError(t, err)
		assert.Equal(t, 11, p.ID)
		assert.Equal(t, "alice", p.CreatorName)

		require.Len(t, activity.appended, 1)
		assert.Equal(t, models.ActivityProjectCreated, activity.appended[0].Type)
	})
}

func TestProjectService_Update_MergeSemantics(t *testing.T) {
	existing := models.Project{
		ID: 7, Title: "Old title", Description: "old desc", Status: models.ProjectStatusOpen, UserID: 4,
	}

	tests := []struct {
		name     string
		patch    ProjectPatch
		wantT    string
		wantD    string
		wantS    string
	}{
		{
			name:  "empty patch keeps everything",
			patch: ProjectPatch{},
			wantT: "Old title", wantD: "old desc", wantS: "open",
		},
		{
			name:  "empty title keeps current title",
			patch: ProjectPatch{Title: strPtr("")},
			wantT: "Old title", wantD: "old desc", wantS: "open",
		},
		{
			name:  "explicit empty description overwrites",
			patch: ProjectPatch{Description: strPtr("")},
			wantT: "Old title", wantD: "", wantS: "open",
		},
		{
			name:  "all fields supplied",
			patch: ProjectPatch{Title: strPtr("New"), Description: strPtr("d"), Status: strPtr("closed")},
			wantT: "New", wantD: "d", wantS: "closed",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			projects := &mockProjects{
				GetByIDFn: func(int) (*models.Project, error) { cp := existing; return &cp, nil },
				UpdateFn:  func(int, string, string, string) error { return nil },
			}
			svc := NewProjectService(projects, &mockActivity{})

			_, err := svc.Update(context.Background(), 7, tt.patch, 4)
			require.NoError(t, err)

			require.Len(t, projects.updateCalls, 1)
			got := projects.updateCalls[0]
			assert.Equal(t, tt.wantT, got.title)
			assert.Equal(t, tt.wantD, got.description)
			assert.Equal(t, tt.wantS, got.status)
		})
	}
}

func TestProjectService_OwnershipGates(t *testing.T) {
	owned := models.Project{ID: 7, Title: "t", UserID: 4}
	projects := &mockProjects{
		GetByIDFn: func(id int) (*models.Project, error) {
			if id == 7 {
				cp := owned
				return &cp, nil
			}
			return nil, nil
		},
		UpdateFn: func(int, string, string, string) error { return nil },
		DeleteFn: func(int) error { return nil },
	}
	svc := NewProjectService(projects, &mockActivity{})
	ctx := context.Background()

	_, err := svc.Update(ctx, 99, ProjectPatch{}, 4)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	_, err = svc.Update(ctx, 7, ProjectPatch{}, 5)
	assert.ErrorIs(t, err, ErrNotOwner)

	err = svc.Delete(ctx, 7, 5)
	assert.ErrorIs(t, err, ErrNotOwner)

	err = svc.Delete(ctx, 7, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, projects.deleteCalls)
}
