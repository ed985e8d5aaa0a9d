package domain

import "time"

type ID string

// User is the identity and credential holder. Users are created at
// registration and never updated or deleted afterwards.
type User struct {
	ID           ID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
