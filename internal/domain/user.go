package domain

import "time"

// User represents a registered account. PasswordHash is only populated on
// lookups that need it for credential checks and is never rendered as JSON.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
