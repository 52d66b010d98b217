package models

import "time"

// Activity event types recorded by the services.
const (
	ActivityProjectCreated    = "PROJECT_CREATED"
	ActivityProjectUpdated    = "PROJECT_UPDATED"
	ActivityProjectDeleted    = "PROJECT_DELETED"
	ActivityHelpRequested     = "HELP_REQUESTED"
	ActivityHelpStatusChanged = "HELP_STATUS_CHANGED"
)

// ActivityEvent is a single append-only audit entry.
type ActivityEvent struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	Metadata   any       `json:"metadata,omitempty"`
}
