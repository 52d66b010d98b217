package models

import "time"

// Help statuses. pending is the initial state; matched and rejected are
// terminal and may only be set by the project owner.
const (
	HelpStatusPending  = "pending"
	HelpStatusMatched  = "matched"
	HelpStatusRejected = "rejected"
)

// ValidHelpStatus reports whether s is one of the three known statuses.
func ValidHelpStatus(s string) bool {
	switch s {
	case HelpStatusPending, HelpStatusMatched, HelpStatusRejected:
		return true
	}
	return false
}

// Help is one user's application to assist with another user's project.
type Help struct {
	ID        int       `json:"id"`
	ProjectID int       `json:"project_id"`
	UserID    int       `json:"user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HelpApplicant is a help row joined with the applicant's username, as shown
// to the project owner.
type HelpApplicant struct {
	HelpID    int       `json:"help_id"`
	Status    string    `json:"help_status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
}

// UserHelp is a help row joined with its project and the project owner, as
// shown to the applicant (own applications and matches).
type UserHelp struct {
	HelpID             int    `json:"help_id"`
	Status             string `json:"help_status"`
	ProjectID          int    `json:"project_id"`
	ProjectTitle       string `json:"project_title"`
	ProjectDescription string `json:"project_description"`
	ProjectStatus      string `json:"project_status"`
	OwnerID            int    `json:"user_id"`
	OwnerName          string `json:"username"`
}
