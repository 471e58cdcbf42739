package platformapi

import (
	"context"
	"net/http"
	"net/url"

	"givehub-admin/internal/dashboard/domain/model"
)

// ListUsers returns the platform's user directory.
func (c *Client) ListUsers(ctx context.Context) ([]model.DirectoryUser, error) {
	var users []model.DirectoryUser
	if err := c.getJSON(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserRole assigns a platform role to a user.
func (c *Client) UpdateUserRole(ctx context.Context, userID, role string) error {
	payload := model.RoleChangeRequest{Role: role}
	path := "/api/users/" + url.PathEscape(userID) + "/role"
	return c.sendJSON(ctx, http.MethodPatch, path, payload, nil)
}
