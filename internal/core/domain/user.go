package domain

import "time"

// User represents a registered user of the bank.
// Users are created once via registration and never mutated or deleted.
type User struct {
	Username     string    `json:"username"` // Unique, case-sensitive identifier
	PasswordHash string    `json:"-"`        // bcrypt hash, never exposed
	FullName     string    `json:"fullName"` // Optional display name
	CreatedAt    time.Time `json:"createdAt"`
}
