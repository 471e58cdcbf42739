package platformapi

import (
	"context"
	"net/http"

	authModel "givehub-admin/internal/auth/domain/model"
)

// Login exchanges credentials for a platform token. The bearer tripper stays
// idle here because the request context carries no token yet.
func (c *Client) Login(ctx context.Context, credentials authModel.LoginCredentials) (*authModel.LoginResult, error) {
	var result authModel.LoginResult
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/login", credentials, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
