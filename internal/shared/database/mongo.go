package database

import (
	"context"
	"fmt"
	"time"

	"givehub-admin/internal/shared/logger"

	"github.com/caarlos0/env/v6"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config holds MongoDB connection settings for the dashboard's local storage
// (bank details, audit trail).
type Config struct {
	URI            string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	DatabaseName   string        `env:"DATABASE_NAME" envDefault:"givehub_dashboard"`
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize    uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"10"`
	MinPoolSize    uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"2"`
}

// ConfigFromEnv loads the MongoDB configuration from environment variables
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse mongodb config: %w", err)
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when none is provided
func DefaultConfig() *Config {
	return &Config{
		URI:            "mongodb://localhost:27017",
		DatabaseName:   "givehub_dashboard",
		ConnectTimeout: 10 * time.Second,
		MaxPoolSize:    10,
		MinPoolSize:    2,
	}
}

// Connect opens a MongoDB client, verifies the connection with a ping and
// returns the handle for the dashboard database.
func Connect(ctx context.Context, cfg *Config, log logger.Logger) (*mongo.Client, *mongo.Database, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	if log != nil {
		log.WithFields(map[string]interface{}{
			"database": cfg.DatabaseName,
		}).Info("Connected to MongoDB")
	}

	return client, client.Database(cfg.DatabaseName), nil
}

// Disconnect closes the MongoDB client within the given context
func Disconnect(ctx context.Context, client *mongo.Client, log logger.Logger) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	if log != nil {
		log.Info("Disconnected from MongoDB")
	}
	return nil
}
