package domain

import "time"

// User is the domain model for registered accounts.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
