package mongodb

import (
	"context"
	"fmt"

	"givehub-admin/internal/dashboard/domain/model"
	"givehub-admin/internal/dashboard/domain/repository"
	"givehub-admin/internal/shared/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const auditEventsCollection = "audit_events"

const defaultAuditListLimit = 50

// MongoAuditLogRepository persists the admin audit trail.
type MongoAuditLogRepository struct {
	collection *mongo.Collection
	log        logger.Logger
}

// NewMongoAuditLogRepository creates the repository and its read index.
func NewMongoAuditLogRepository(db *mongo.Database, log logger.Logger) (*MongoAuditLogRepository, error) {
	repo := &MongoAuditLogRepository{
		collection: db.Collection(auditEventsCollection),
		log:        log.WithComponent("audit_log_repo"),
	}

	// Newest-first listing is the only read pattern.
	occurredAtIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "occurred_at", Value: -1}},
	}
	if _, err := repo.collection.Indexes().CreateOne(context.Background(), occurredAtIndex); err != nil {
		return nil, fmt.Errorf("failed to create audit index: %w", err)
	}

	return repo, nil
}

// Append stores one audit event, minting an id when the caller left it blank.
func (r *MongoAuditLogRepository) Append(ctx context.Context, event model.AuditEvent) error {
	if event.Action == "" {
		return fmt.Errorf("audit event action cannot be empty")
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to append audit event: %w", err)
	}
	return nil
}

// List returns the newest events first, at most limit of them.
func (r *MongoAuditLogRepository) List(ctx context.Context, limit int) ([]model.AuditEvent, error) {
	if limit <= 0 {
		limit = defaultAuditListLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "occurred_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	defer cursor.Close(ctx)

	events := make([]model.AuditEvent, 0, limit)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode audit events: %w", err)
	}
	return events, nil
}

var _ repository.AuditLogRepository = (*MongoAuditLogRepository)(nil)
