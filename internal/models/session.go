package models

import (
	"time"

	"github.com/google/uuid"
)

// Session binds an opaque token to an authenticated identity. Sessions live
// only in process memory and are destroyed at logout or after their TTL.
type Session struct {
	Token     string    // Opaque, unguessable token carried in the cookie
	UserID    uuid.UUID // Authenticated user
	Username  string
	Role      string
	CreatedAt time.Time
	ExpiresAt time.Time // Fixed TTL from login; no sliding renewal
}
