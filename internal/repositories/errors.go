package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Typed storage errors surfaced to services and handlers.
var (
	// ErrNotFound is returned when an update or delete matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrReferentialConflict is returned when a write would violate the
	// appointment -> doctor/patient foreign keys, either inserting a
	// dangling reference or deleting a referenced row.
	ErrReferentialConflict = errors.New("referential conflict")

	// ErrDuplicateUsername is returned when an insert collides with the
	// unique username constraint.
	ErrDuplicateUsername = errors.New("username already exists")
)

// Postgres error codes translated into the sentinels above.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
