package models

import "time"

// ProjectStatusOpen is the only status the API sets itself; updates accept
// free-text status values, matching the loose data-layer contract.
const ProjectStatusOpen = "open"

// Project is a posted engagement owned by one user. CreatorName is filled by
// the join in the repository queries, not stored on the projects table.
type Project struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	UserID      int       `json:"user_id"`
	CreatorName string    `json:"creator_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
