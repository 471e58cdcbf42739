package repository

import (
	"context"
	"time"

	"givehub-admin/internal/auth/domain/model"
)

// SessionStore persists dashboard sessions between requests.
type SessionStore interface {
	// Save stores the session under its ID for at most ttl. A ttl of zero
	// stores the session without expiry.
	Save(ctx context.Context, session *model.Session, ttl time.Duration) error

	// Update rewrites an existing session without disturbing its remaining
	// TTL. Updating a session that no longer exists yields
	// errors.ErrSessionNotFound.
	Update(ctx context.Context, session *model.Session) error

	// Load returns the session stored under id. Missing or unreadable
	// entries yield errors.ErrSessionNotFound; unreadable entries are
	// purged so the next login starts clean.
	Load(ctx context.Context, id string) (*model.Session, error)

	// Delete removes the session. Deleting an absent session is not an
	// error.
	Delete(ctx context.Context, id string) error
}
