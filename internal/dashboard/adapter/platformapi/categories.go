package platformapi

import (
	"context"

	"givehub-admin/internal/dashboard/domain/model"
)

// ListCategories returns every project category the platform knows about.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.getJSON(ctx, "/api/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
