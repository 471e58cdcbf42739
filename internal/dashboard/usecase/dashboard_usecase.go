package usecase

import (
	"context"

	authModel "givehub-admin/internal/auth/domain/model"
	"givehub-admin/internal/dashboard/config"
	"givehub-admin/internal/dashboard/domain/client"
	"givehub-admin/internal/dashboard/domain/model"
	"givehub-admin/internal/dashboard/domain/repository"
	apperrors "givehub-admin/internal/shared/errors"
	"givehub-admin/internal/shared/eventbus"
	"givehub-admin/internal/shared/logger"
	"givehub-admin/internal/shared/utils"
)

// DashboardUsecaseInterface defines the contract for every dashboard
// operation behind the HTTP layer.
type DashboardUsecaseInterface interface {
	// Overview
	ProjectOverview(ctx context.Context) ([]model.Project, error)

	// Projects
	ListProjects(ctx context.Context, categoryID string) ([]model.Project, error)
	GetProject(ctx context.Context, projectID string) (*model.Project, error)
	CreateProject(ctx context.Context, req model.CreateProjectRequest) (*model.Project, error)
	UpdateProject(ctx context.Context, projectID string, req model.UpdateProjectRequest) (*model.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	SetProjectApproval(ctx context.Context, projectID string, approved bool) error
	AttachProjectMedia(ctx context.Context, projectID string, files []model.FileUpload) (*model.Project, error)
	RemoveProjectMedia(ctx context.Context, projectID, mediaID string) error

	// Categories
	ListCategories(ctx context.Context) ([]model.Category, error)

	// Users
	ListUsers(ctx context.Context) ([]model.DirectoryUser, error)
	ChangeUserRole(ctx context.Context, userID, role string) error

	// Profile
	UpdateProfile(ctx context.Context, req model.ProfileUpdateRequest) (*authModel.SessionUser, error)

	// Bank details
	GetBankDetails(ctx context.Context) (model.BankDetails, error)
	SaveBankDetails(ctx context.Context, details model.BankDetails) error

	// Audit trail
	ListAuditEvents(ctx context.Context) ([]model.AuditEvent, error)
}

// DashboardUsecase implements the dashboard operations over the platform API
// and the dashboard's own storage.
type DashboardUsecase struct {
	platform    client.PlatformAPI
	sessions    client.SessionClient
	bankDetails repository.BankDetailsRepository
	auditLog    repository.AuditLogRepository
	config      *config.Config
	events      eventbus.EventBusInterface
	log         logger.Logger
}

// NewDashboardUsecase creates a new instance of DashboardUsecase.
func NewDashboardUsecase(
	platform client.PlatformAPI,
	sessions client.SessionClient,
	bankDetails repository.BankDetailsRepository,
	auditLog repository.AuditLogRepository,
	cfg *config.Config,
	events eventbus.EventBusInterface,
	log logger.Logger,
) *DashboardUsecase {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &DashboardUsecase{
		platform:    platform,
		sessions:    sessions,
		bankDetails: bankDetails,
		auditLog:    auditLog,
		config:      cfg,
		events:      events,
		log:         log.WithComponent("dashboard_usecase"),
	}
}

// ListCategories passes the platform's category list through.
func (uc *DashboardUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.platform.ListCategories(ctx)
}

// currentUserID pulls the authenticated user's id out of the request context.
// The session middleware puts it there, so a miss means the call bypassed it.
func (uc *DashboardUsecase) currentUserID(ctx context.Context) (string, error) {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// publishAudit emits an audit event enriched with the acting user. Fire and
// forget; a lost audit entry never fails the action itself.
func (uc *DashboardUsecase) publishAudit(ctx context.Context, eventType string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	if actorID, err := utils.GetUserIDFromContext(ctx); err == nil {
		data["actorId"] = actorID
	}
	if actorEmail, err := utils.GetUserEmailFromContext(ctx); err == nil {
		data["actorEmail"] = actorEmail
	}

	uc.events.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(eventType, data, "dashboard_usecase"))
}

// Ensure DashboardUsecase implements the interface
var _ DashboardUsecaseInterface = (*DashboardUsecase)(nil)
