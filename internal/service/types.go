package service

import "time"

// AuthConfig carries token signing settings from configuration into AuthService.
type AuthConfig struct {
	SigningKey      string
	TokenTTL        time.Duration
	VerifyPasswords bool
}

// Identity is the decoded token payload attached to authenticated requests.
type Identity struct {
	ID       int
	Username string
}

// ProjectPatch is a partial update. Nil fields keep the current value;
// Title and Status also keep the current value when set to the empty string,
// while an explicitly supplied empty Description overwrites.
type ProjectPatch struct {
	Title       *string
	Description *string
	Status      *string
}

// ActivityFilter narrows activity listing by inclusive time range and type.
type ActivityFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", or one of the models.Activity* constants
}
