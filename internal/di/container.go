package di

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"givehub-admin/internal/auth"
	authConfig "givehub-admin/internal/auth/config"
	"givehub-admin/internal/dashboard"
	"givehub-admin/internal/dashboard/adapter/platformapi"
	dashboardConfig "givehub-admin/internal/dashboard/config"
	"givehub-admin/internal/shared/database"
	"givehub-admin/internal/shared/eventbus"
	"givehub-admin/internal/shared/logger"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container wires the dashboard's modules and owns the shared resources:
// the Redis session store, the MongoDB handle for local storage, the event
// bus and the platform API client.
type Container struct {
	mu        sync.RWMutex
	services  map[reflect.Type]interface{}
	factories map[reflect.Type]func() (interface{}, error)

	// Module instances
	AuthModule      *auth.AuthModule
	DashboardModule *dashboard.DashboardModule

	// Connections
	RedisClient *redis.Client
	MongoClient *mongo.Client
	MongoDB     *mongo.Database

	// Shared services
	EventBus eventbus.EventBusInterface
	Logger   logger.Logger

	// Configuration
	AuthConfig      *authConfig.Config
	DashboardConfig *dashboardConfig.Config
}

// NewContainer creates a new DI container
func NewContainer(log logger.Logger) *Container {
	if log == nil {
		log = logger.NewLogger()
	}
	return &Container{
		services:  make(map[reflect.Type]interface{}),
		factories: make(map[reflect.Type]func() (interface{}, error)),
		EventBus:  eventbus.NewEventBus(log),
		Logger:    log,
	}
}

// InitializeDatabases connects the Redis session store and the MongoDB
// database holding bank details and the audit trail. Both connections are
// verified with a ping before any module sees them.
func (c *Container) InitializeDatabases(ctx context.Context, authCfg *authConfig.Config, mongoCfg *database.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.AuthConfig = authCfg

	redisClient := authConfig.NewRedisClient(&authCfg.Redis)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return fmt.Errorf("failed to connect to Redis at %s: %w", authCfg.Redis.GetAddr(), err)
	}
	c.RedisClient = redisClient
	c.Logger.WithFields(map[string]interface{}{
		"addr": authCfg.Redis.GetAddr(),
	}).Info("Connected to Redis")

	mongoClient, mongoDB, err := database.Connect(ctx, mongoCfg, c.Logger)
	if err != nil {
		_ = redisClient.Close()
		c.RedisClient = nil
		return err
	}
	c.MongoClient = mongoClient
	c.MongoDB = mongoDB

	return nil
}

// InitializeModules builds the platform API client and assembles the session
// and dashboard modules around it. The client doubles as the session module's
// authenticator, so it is created first and shared.
func (c *Container) InitializeModules(dashCfg *dashboardConfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.RedisClient == nil || c.MongoDB == nil {
		return fmt.Errorf("databases must be initialized before the modules")
	}

	c.DashboardConfig = dashCfg

	platformClient := platformapi.NewClient(dashCfg, c.Logger)

	authModule, err := auth.NewAuthModule(c.RedisClient, platformClient, c.AuthConfig, c.EventBus, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create session module: %w", err)
	}

	dashboardModule, err := dashboard.NewDashboardModule(
		c.MongoDB,
		platformClient,
		authModule.GetUsecase(),
		dashCfg,
		c.EventBus,
		c.Logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create dashboard module: %w", err)
	}

	c.AuthModule = authModule
	c.DashboardModule = dashboardModule
	return nil
}

// Register registers a service instance
func (c *Container) Register(service interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	serviceType := reflect.TypeOf(service)
	if serviceType.Kind() == reflect.Ptr {
		serviceType = serviceType.Elem()
	}

	c.services[serviceType] = service
	return nil
}

// RegisterFactory registers a factory function for a service
func (c *Container) RegisterFactory(serviceType reflect.Type, factory func() (interface{}, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.factories[serviceType] = factory
	return nil
}

// Resolve resolves a service by type
func (c *Container) Resolve(serviceType reflect.Type) (interface{}, error) {
	c.mu.RLock()

	// Check if service instance exists
	if service, exists := c.services[serviceType]; exists {
		c.mu.RUnlock()
		return service, nil
	}

	// Check if factory exists
	if factory, exists := c.factories[serviceType]; exists {
		c.mu.RUnlock()

		// Create new instance using factory
		service, err := factory()
		if err != nil {
			return nil, fmt.Errorf("failed to create service: %w", err)
		}

		// Register the created instance
		c.mu.Lock()
		c.services[serviceType] = service
		c.mu.Unlock()

		return service, nil
	}

	c.mu.RUnlock()
	return nil, fmt.Errorf("service of type %v not registered", serviceType)
}

// GetService is a generic helper for resolving services
func GetService[T any](c *Container) (T, error) {
	var zero T
	serviceType := reflect.TypeOf(zero)

	service, err := c.Resolve(serviceType)
	if err != nil {
		return zero, err
	}

	if typedService, ok := service.(T); ok {
		return typedService, nil
	}

	return zero, fmt.Errorf("service is not of expected type %T", zero)
}

// GetAuthModule returns the session module instance
func (c *Container) GetAuthModule() *auth.AuthModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AuthModule
}

// GetDashboardModule returns the dashboard module instance
func (c *Container) GetDashboardModule() *dashboard.DashboardModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DashboardModule
}

// HealthCheck verifies the container's connections are still alive
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.RedisClient != nil {
		if err := c.RedisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis health check failed: %w", err)
		}
	}

	if c.MongoClient != nil {
		if err := c.MongoClient.Ping(ctx, nil); err != nil {
			return fmt.Errorf("mongodb health check failed: %w", err)
		}
	}

	return nil
}

// Cleanup releases registered services and connections in reverse order of
// initialization.
func (c *Container) Cleanup(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.DashboardModule != nil {
		if err := c.DashboardModule.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop dashboard module: %w", err))
		}
		c.DashboardModule = nil
	}

	if c.AuthModule != nil {
		if err := c.AuthModule.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop session module: %w", err))
		}
		c.AuthModule = nil
	}

	// Cleanup generic services
	for _, service := range c.services {
		if cleaner, ok := service.(interface{ Cleanup(context.Context) error }); ok {
			if err := cleaner.Cleanup(ctx); err != nil {
				errs = append(errs, fmt.Errorf("failed to cleanup service: %w", err))
			}
		}
	}

	if c.MongoClient != nil {
		if err := database.Disconnect(ctx, c.MongoClient, c.Logger); err != nil {
			errs = append(errs, err)
		}
		c.MongoClient = nil
		c.MongoDB = nil
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
		}
		c.RedisClient = nil
	}

	c.services = make(map[reflect.Type]interface{})
	c.factories = make(map[reflect.Type]func() (interface{}, error))

	if len(errs) > 0 {
		return fmt.Errorf("cleanup errors: %v", errs)
	}

	return nil
}

// Close gracefully shuts down all services in the container with a timeout
func (c *Container) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.Cleanup(ctx); err != nil {
		c.Logger.Warnf("Cleanup finished with errors: %v", err)
		return err
	}

	c.Logger.Info("Container resources closed")
	return nil
}
