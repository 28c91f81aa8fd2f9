package models

import (
	"time"

	"github.com/google/uuid"
)

// Action describes the kind of state change an audit record documents.
type Action string

const (
	ActionLogin  Action = "LOGIN"
	ActionLogout Action = "LOGOUT"
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// AuditRecord is an append-only log entry describing one state-changing
// action and its actor. Records are never updated or deleted.
type AuditRecord struct {
	RecordID  int64      `json:"record_id" db:"record_id"`   // Primary key
	UserID    *uuid.UUID `json:"user_id" db:"user_id"`       // Actor; nil when unknown
	Action    Action     `json:"action" db:"action"`
	TableName string     `json:"table_name" db:"table_name"` // Entity table the action touched
	SubjectID int64      `json:"subject_id" db:"subject_id"` // Entity row id; 0 for login/logout
	Detail    string     `json:"detail" db:"detail"`         // Free-text description
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
