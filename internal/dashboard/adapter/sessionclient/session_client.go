// Package sessionclient bridges the dashboard context to the session module.
// Dashboard usecases depend on the narrow SessionClient port; this adapter
// backs it with the session usecase so profile edits land in the live session.
package sessionclient

import (
	"context"

	authModel "givehub-admin/internal/auth/domain/model"
	authUsecase "givehub-admin/internal/auth/usecase"
	"givehub-admin/internal/dashboard/domain/client"
)

// Adapter satisfies the dashboard's SessionClient port.
type Adapter struct {
	sessions authUsecase.SessionUsecaseInterface
}

// New wraps the session usecase.
func New(sessions authUsecase.SessionUsecaseInterface) *Adapter {
	return &Adapter{sessions: sessions}
}

// CurrentSession returns the live session for the given id.
func (a *Adapter) CurrentSession(ctx context.Context, sessionID string) (*authModel.Session, error) {
	return a.sessions.CurrentSession(ctx, sessionID)
}

// UpdateSessionUser replaces the user snapshot stored in the session.
func (a *Adapter) UpdateSessionUser(ctx context.Context, sessionID string, user authModel.SessionUser) error {
	return a.sessions.UpdateSessionUser(ctx, sessionID, user)
}

var _ client.SessionClient = (*Adapter)(nil)
