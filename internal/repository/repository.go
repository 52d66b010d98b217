package repository

import (
	"context"
	"database/sql"
	"time"

	"matchboard/internal/models"
	"matchboard/internal/repository/db"
)

type Users interface {
	Create(ctx context.Context, username, password string) (int, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type Projects interface {
	List(ctx context.Context) ([]models.Project, error)
	ListByOwner(ctx context.Context, userID int) ([]models.Project, error)
	GetByID(ctx context.Context, id int) (*models.Project, error)
	Create(ctx context.Context, title, description, status string, ownerID int) (int, error)
	Update(ctx context.Context, id int, title, description, status string) error
	Delete(ctx context.Context, id int) error
}

type Helps interface {
	Create(ctx context.Context, projectID, userID int) (int, bool, error)
	GetByProjectAndUser(ctx context.Context, projectID, userID int) (*models.Help, error)
	ListByProject(ctx context.Context, projectID int) ([]models.HelpApplicant, error)
	UpdateStatus(ctx context.Context, projectID, helpID int, status string) (*models.Help, error)
	ListByUser(ctx context.Context, userID int) ([]models.UserHelp, error)
	ListMatchedByUser(ctx context.Context, userID int) ([]models.UserHelp, error)
}

type Activity interface {
	Append(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error)
}

type Repository struct {
	Users    Users
	Projects Projects
	Helps    Helps
	Activity Activity
}

func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserSQLite(database),
		Projects: NewProjectSQLite(database),
		Helps:    NewHelpSQLite(database),
		Activity: NewActivitySQLite(database),
	}
}

// InitDB opens the SQLite file and prepares schema; forwards to the db subpackage.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
