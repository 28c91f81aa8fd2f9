package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles assignable to a user. The role gates access to the audit view.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`             // Primary key
	Username     string    `json:"username" db:"username"`           // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`             // bcrypt hash
	Role         string    `json:"role" db:"role"`                   // "admin" or "staff"
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
}
