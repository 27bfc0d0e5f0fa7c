package domain

import "time"

// Accountant is the domain model for registered accountant users.
type Accountant struct {
	ID           int64
	FirstName    string
	LastName     string
	Username     string
	PasswordHash string
	Email        string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
