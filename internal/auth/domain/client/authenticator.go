package client

import (
	"context"

	"givehub-admin/internal/auth/domain/model"
)

// Authenticator exchanges dashboard credentials for a platform access token.
// The dashboard module implements this against the platform API; the session
// module only depends on the port.
type Authenticator interface {
	Login(ctx context.Context, creds model.LoginCredentials) (*model.LoginResult, error)
}
