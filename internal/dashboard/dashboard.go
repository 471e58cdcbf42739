package dashboard

import (
	"fmt"

	authhttp "givehub-admin/internal/auth/adapter/http"
	authUsecase "givehub-admin/internal/auth/usecase"
	dashboardhttp "givehub-admin/internal/dashboard/adapter/http"
	"givehub-admin/internal/dashboard/adapter/persistence/mongodb"
	"givehub-admin/internal/dashboard/adapter/sessionclient"
	"givehub-admin/internal/dashboard/config"
	"givehub-admin/internal/dashboard/domain/client"
	"givehub-admin/internal/dashboard/domain/repository"
	"givehub-admin/internal/dashboard/usecase"
	"givehub-admin/internal/shared/eventbus"
	"givehub-admin/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// DashboardModule bundles the dashboard operations: platform-backed project,
// category, user and profile management plus the dashboard's own bank details
// store and audit trail.
type DashboardModule struct {
	platform    client.PlatformAPI
	bankDetails repository.BankDetailsRepository
	auditLog    repository.AuditLogRepository
	usecase     usecase.DashboardUsecaseInterface
	handler     *dashboardhttp.DashboardHTTPHandler
	config      *config.Config
}

// NewDashboardModule creates a new dashboard module instance. The platform
// client is shared with the session module, which uses it as its
// authenticator; the session usecase comes back the other way so profile
// edits can refresh the live session.
func NewDashboardModule(
	db *mongo.Database,
	platform client.PlatformAPI,
	sessions authUsecase.SessionUsecaseInterface,
	cfg *config.Config,
	events eventbus.EventBusInterface,
	log logger.Logger,
) (*DashboardModule, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo database is required")
	}
	if platform == nil {
		return nil, fmt.Errorf("platform API client is required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session usecase is required")
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	bankDetails := mongodb.NewMongoBankDetailsRepository(db, log)
	auditLog, err := mongodb.NewMongoAuditLogRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize audit log repository: %w", err)
	}

	dashboardUsecase := usecase.NewDashboardUsecase(
		platform,
		sessionclient.New(sessions),
		bankDetails,
		auditLog,
		cfg,
		events,
		log,
	)
	dashboardUsecase.SubscribeAuditRecorder(events)

	handler := dashboardhttp.NewDashboardHTTPHandler(dashboardUsecase, log)

	return &DashboardModule{
		platform:    platform,
		bankDetails: bankDetails,
		auditLog:    auditLog,
		usecase:     dashboardUsecase,
		handler:     handler,
		config:      cfg,
	}, nil
}

// RegisterRoutes registers dashboard routes with the provided router. The
// session middleware is owned by the session module and passed through here.
func (dm *DashboardModule) RegisterRoutes(router fiber.Router, middleware *authhttp.SessionMiddleware) {
	dm.handler.SetupDashboardRoutes(router, middleware)
}

// GetUsecase returns the dashboard usecase for external access
func (dm *DashboardModule) GetUsecase() usecase.DashboardUsecaseInterface {
	return dm.usecase
}

// Stop performs cleanup when the module is shut down. The mongo client is
// owned by the container, so there is nothing to release here.
func (dm *DashboardModule) Stop() error {
	return nil
}
