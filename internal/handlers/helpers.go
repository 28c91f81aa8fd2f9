package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"clinicrecords/internal/middlewares"
)

// actorID returns the authenticated user's id from the request context,
// or nil when the request carries no session.
func actorID(r *http.Request) *uuid.UUID {
	sess := middlewares.GetSessionFromContext(r.Context())
	if sess == nil {
		return nil
	}
	return &sess.UserID
}

// formInt64 parses a required numeric form field.
func formInt64(r *http.Request, field string) (int64, error) {
	return strconv.ParseInt(r.PostFormValue(field), 10, 64)
}
