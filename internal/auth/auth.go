package auth

import (
	"fmt"

	authhttp "givehub-admin/internal/auth/adapter/http"
	"givehub-admin/internal/auth/adapter/persistence"
	"givehub-admin/internal/auth/adapter/security"
	"givehub-admin/internal/auth/config"
	"givehub-admin/internal/auth/domain/client"
	"givehub-admin/internal/auth/domain/repository"
	"givehub-admin/internal/auth/usecase"
	"givehub-admin/internal/shared/eventbus"
	"givehub-admin/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// AuthModule represents the complete session module
type AuthModule struct {
	store   repository.SessionStore
	tokens  repository.TokenInspector
	usecase usecase.SessionUsecaseInterface
	handler *authhttp.SessionHTTPHandler
	config  *config.Config
}

// NewAuthModule creates a new session module instance. The platform
// authenticator is supplied by the dashboard module, which owns the platform
// API client.
func NewAuthModule(
	redisClient *redis.Client,
	authenticator client.Authenticator,
	cfg *config.Config,
	events eventbus.EventBusInterface,
	log logger.Logger,
) (*AuthModule, error) {
	if redisClient == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if authenticator == nil {
		return nil, fmt.Errorf("platform authenticator is required")
	}

	store := persistence.NewRedisSessionStore(redisClient, log)
	tokens := security.NewTokenInspector()

	sessionUsecase := usecase.NewSessionUsecase(authenticator, tokens, store, cfg, events, log)

	handler := authhttp.NewSessionHTTPHandler(sessionUsecase, cfg)

	return &AuthModule{
		store:   store,
		tokens:  tokens,
		usecase: sessionUsecase,
		handler: handler,
		config:  cfg,
	}, nil
}

// RegisterRoutes registers session routes with the provided router
func (am *AuthModule) RegisterRoutes(router fiber.Router) {
	middleware := am.GetMiddleware()
	am.handler.SetupSessionRoutes(router, middleware)
}

// GetUsecase returns the session usecase for external access
func (am *AuthModule) GetUsecase() usecase.SessionUsecaseInterface {
	return am.usecase
}

// GetMiddleware returns the session middleware
func (am *AuthModule) GetMiddleware() *authhttp.SessionMiddleware {
	return authhttp.NewSessionMiddleware(am.usecase, am.config.SessionCookieName)
}

// Stop performs cleanup when the module is shut down. The redis client is
// owned by the container, so there is nothing to release here.
func (am *AuthModule) Stop() error {
	return nil
}
