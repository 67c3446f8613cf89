package entity

import "time"

// User is the aggregate root for the credential domain.
// PasswordHash holds a bcrypt hash and must never be serialized.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
