package usecase

import (
	"context"
	"sort"

	"givehub-admin/internal/dashboard/domain/model"

	"golang.org/x/sync/errgroup"
)

// ProjectOverview builds the aggregated landing view: one project list per
// category fetched concurrently, merged without duplicates, newest first.
// Any sub-request failure fails the whole aggregate; the dashboard never
// shows a silently incomplete overview.
func (uc *DashboardUsecase) ProjectOverview(ctx context.Context) ([]model.Project, error) {
	categories, err := uc.platform.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return []model.Project{}, nil
	}

	results := make([][]model.Project, len(categories))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, category := range categories {
		i, category := i, category
		group.Go(func() error {
			projects, err := uc.platform.ListProjectsByCategory(groupCtx, category.ID)
			if err != nil {
				return err
			}
			results[i] = projects
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// Merge in category order so dedupe is deterministic: the first category
	// listing a project keeps it.
	merged := make([]model.Project, 0)
	seen := make(map[string]struct{})
	for i, projects := range results {
		category := categories[i]
		for _, project := range projects {
			if _, dup := seen[project.ID]; dup {
				continue
			}
			seen[project.ID] = struct{}{}

			if project.Category == nil {
				attached := category
				project.Category = &attached
			}
			if project.CategoryID == "" {
				project.CategoryID = category.ID
			}
			merged = append(merged, project)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].EffectiveCreatedAt().After(merged[j].EffectiveCreatedAt())
	})

	uc.log.WithContext(ctx).WithFields(map[string]interface{}{
		"categories": len(categories),
		"projects":   len(merged),
	}).Debug("Project overview assembled")

	return merged, nil
}
