package client

import (
	"context"

	authModel "givehub-admin/internal/auth/domain/model"
	"givehub-admin/internal/dashboard/domain/model"
)

// PlatformAPI is the dashboard's view of the GiveHub platform REST API.
// Implementations attach the caller's bearer token from the request context
// and normalize transport and HTTP failures into shared API errors.
type PlatformAPI interface {
	// Login exchanges credentials for a platform token. It is the only
	// operation that runs without a bearer token on the wire.
	Login(ctx context.Context, credentials authModel.LoginCredentials) (*authModel.LoginResult, error)

	ListCategories(ctx context.Context) ([]model.Category, error)

	ListProjects(ctx context.Context) ([]model.Project, error)
	ListProjectsByCategory(ctx context.Context, categoryID string) ([]model.Project, error)
	GetProject(ctx context.Context, projectID string) (*model.Project, error)
	CreateProject(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error)
	UpdateProject(ctx context.Context, projectID string, req model.UpdateProjectRequest) (*model.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	SetProjectApproval(ctx context.Context, projectID string, approved bool) error
	AttachProjectMedia(ctx context.Context, projectID string, files []model.FileUpload) (*model.Project, error)
	RemoveProjectMedia(ctx context.Context, projectID, mediaID string) error

	ListUsers(ctx context.Context) ([]model.DirectoryUser, error)
	UpdateUserRole(ctx context.Context, userID, role string) error

	UpdateProfile(ctx context.Context, req model.ProfileUpdateRequest) (*model.DirectoryUser, error)
}
