package platformapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"givehub-admin/internal/dashboard/domain/model"
)

// ListProjects returns every project visible to the caller.
func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := c.getJSON(ctx, "/api/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ListProjectsByCategory returns the projects filed under one category.
func (c *Client) ListProjectsByCategory(ctx context.Context, categoryID string) ([]model.Project, error) {
	var projects []model.Project
	path := "/api/categories/" + url.PathEscape(categoryID) + "/projects"
	if err := c.getJSON(ctx, path, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject fetches a single project by id.
func (c *Client) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	var project model.Project
	if err := c.getJSON(ctx, "/api/projects/"+url.PathEscape(projectID), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a project and returns the platform's view of it.
func (c *Client) CreateProject(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error) {
	req.CurrencyCode = normalizeCurrency(req.CurrencyCode)
	req.Addresses = completeAddresses(req.Addresses)

	var project model.Project
	if err := c.sendJSON(ctx, http.MethodPost, "/api/projects", req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject overwrites a project's editable fields.
func (c *Client) UpdateProject(ctx context.Context, projectID string, req model.UpdateProjectRequest) (*model.Project, error) {
	req.CurrencyCode = normalizeCurrency(req.CurrencyCode)
	req.Addresses = completeAddresses(req.Addresses)

	var project model.Project
	path := "/api/projects/" + url.PathEscape(projectID)
	if err := c.sendJSON(ctx, http.MethodPut, path, req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return c.delete(ctx, "/api/projects/"+url.PathEscape(projectID))
}

// SetProjectApproval flips the moderation flag on a project.
func (c *Client) SetProjectApproval(ctx context.Context, projectID string, approved bool) error {
	payload := struct {
		IsApproved bool `json:"isApproved"`
	}{IsApproved: approved}
	path := "/api/projects/" + url.PathEscape(projectID) + "/approval"
	return c.sendJSON(ctx, http.MethodPatch, path, payload, nil)
}

func normalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// completeAddresses drops addresses missing a required field. The platform
// rejects whole payloads over one bad address, so they never leave here.
func completeAddresses(addresses []model.ProjectAddress) []model.ProjectAddress {
	if len(addresses) == 0 {
		return addresses
	}
	kept := make([]model.ProjectAddress, 0, len(addresses))
	for _, a := range addresses {
		if a.IsComplete() {
			kept = append(kept, a)
		}
	}
	return kept
}
