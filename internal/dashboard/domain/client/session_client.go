package client

import (
	"context"

	authModel "givehub-admin/internal/auth/domain/model"
)

// SessionClient lets dashboard operations read and patch the caller's
// server-side session, so profile edits show up without a re-login.
type SessionClient interface {
	CurrentSession(ctx context.Context, sessionID string) (*authModel.Session, error)
	UpdateSessionUser(ctx context.Context, sessionID string, user authModel.SessionUser) error
}
