package models

import "time"

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // never exposed; empty unless verification is enabled
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicUser is the shape returned by auth endpoints.
type PublicUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Public strips everything except the externally visible fields.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}
