package usecase

import (
	"context"
	"fmt"

	"givehub-admin/internal/dashboard/domain/model"
	"givehub-admin/internal/shared/eventbus"
)

// ListProjects lists projects, optionally narrowed to one category.
func (uc *DashboardUsecase) ListProjects(ctx context.Context, categoryID string) ([]model.Project, error) {
	if categoryID != "" {
		return uc.platform.ListProjectsByCategory(ctx, categoryID)
	}
	return uc.platform.ListProjects(ctx)
}

// GetProject fetches one project.
func (uc *DashboardUsecase) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	if projectID == "" {
		return nil, fmt.Errorf("project id cannot be empty")
	}
	return uc.platform.GetProject(ctx, projectID)
}

// CreateProject creates a project on the platform. Field validation is the
// platform's job; its validation answers surface through the error mapping.
func (uc *DashboardUsecase) CreateProject(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error) {
	project, err := uc.platform.CreateProject(ctx, req)
	if err != nil {
		return nil, err
	}

	uc.publishAudit(ctx, eventbus.EventTypeProjectCreated, map[string]interface{}{
		"subjectId": project.ID,
		"title":     project.Title,
	})
	return project, nil
}

// UpdateProject overwrites a project's editable fields on the platform.
func (uc *DashboardUsecase) UpdateProject(ctx context.Context, projectID string, req model.UpdateProjectRequest) (*model.Project, error) {
	if projectID == "" {
		return nil, fmt.Errorf("project id cannot be empty")
	}

	project, err := uc.platform.UpdateProject(ctx, projectID, req)
	if err != nil {
		return nil, err
	}

	uc.publishAudit(ctx, eventbus.EventTypeProjectUpdated, map[string]interface{}{
		"subjectId": project.ID,
		"title":     project.Title,
	})
	return project, nil
}

// DeleteProject removes a project from the platform.
func (uc *DashboardUsecase) DeleteProject(ctx context.Context, projectID string) error {
	if projectID == "" {
		return fmt.Errorf("project id cannot be empty")
	}

	if err := uc.platform.DeleteProject(ctx, projectID); err != nil {
		return err
	}

	uc.publishAudit(ctx, eventbus.EventTypeProjectDeleted, map[string]interface{}{
		"subjectId": projectID,
	})
	return nil
}

// SetProjectApproval flips a project's moderation flag.
func (uc *DashboardUsecase) SetProjectApproval(ctx context.Context, projectID string, approved bool) error {
	if projectID == "" {
		return fmt.Errorf("project id cannot be empty")
	}

	if err := uc.platform.SetProjectApproval(ctx, projectID, approved); err != nil {
		return err
	}

	uc.publishAudit(ctx, eventbus.EventTypeProjectApproval, map[string]interface{}{
		"subjectId": projectID,
		"approved":  approved,
	})
	return nil
}

// AttachProjectMedia uploads files to a project.
func (uc *DashboardUsecase) AttachProjectMedia(ctx context.Context, projectID string, files []model.FileUpload) (*model.Project, error) {
	if projectID == "" {
		return nil, fmt.Errorf("project id cannot be empty")
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to attach")
	}

	project, err := uc.platform.AttachProjectMedia(ctx, projectID, files)
	if err != nil {
		return nil, err
	}

	uc.publishAudit(ctx, eventbus.EventTypeProjectMediaSet, map[string]interface{}{
		"subjectId": projectID,
		"files":     len(files),
	})
	return project, nil
}

// RemoveProjectMedia deletes one uploaded file from a project.
func (uc *DashboardUsecase) RemoveProjectMedia(ctx context.Context, projectID, mediaID string) error {
	if projectID == "" || mediaID == "" {
		return fmt.Errorf("project id and media id cannot be empty")
	}

	if err := uc.platform.RemoveProjectMedia(ctx, projectID, mediaID); err != nil {
		return err
	}

	uc.publishAudit(ctx, eventbus.EventTypeProjectMediaRemoved, map[string]interface{}{
		"subjectId": projectID,
		"mediaId":   mediaID,
	})
	return nil
}
