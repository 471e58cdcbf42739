package mongodb

import (
	"context"
	"fmt"
	"time"

	"givehub-admin/internal/dashboard/domain/model"
	"givehub-admin/internal/dashboard/domain/repository"
	"givehub-admin/internal/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bankDetailsCollection = "bank_details"

// bankDetailsDoc is the stored shape: one document per user, keyed by the
// platform user id.
type bankDetailsDoc struct {
	UserID    string            `bson:"_id"`
	Details   model.BankDetails `bson:"details"`
	UpdatedAt time.Time         `bson:"updated_at"`
}

// MongoBankDetailsRepository keeps payout details in the dashboard's own
// MongoDB. The platform API has no endpoint for these yet.
type MongoBankDetailsRepository struct {
	collection *mongo.Collection
	log        logger.Logger
}

// NewMongoBankDetailsRepository creates the repository. No indexes beyond the
// implicit _id one are needed.
func NewMongoBankDetailsRepository(db *mongo.Database, log logger.Logger) *MongoBankDetailsRepository {
	return &MongoBankDetailsRepository{
		collection: db.Collection(bankDetailsCollection),
		log:        log.WithComponent("bank_details_repo"),
	}
}

// Get loads the user's payout details. A missing or unreadable document comes
// back as the all-empty record, never an error; an unreadable document stays
// in place until the next Put overwrites it.
func (r *MongoBankDetailsRepository) Get(ctx context.Context, userID string) (model.BankDetails, error) {
	if userID == "" {
		return model.BankDetails{}, fmt.Errorf("user id cannot be empty")
	}

	raw, err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Raw()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return model.BankDetails{}, nil
		}
		return model.BankDetails{}, fmt.Errorf("failed to load bank details: %w", err)
	}

	var doc bankDetailsDoc
	if err := bson.Unmarshal(raw, &doc); err != nil {
		r.log.WithContext(ctx).Warnf("Unreadable bank details document for user %s: %v", userID, err)
		return model.BankDetails{}, nil
	}

	return doc.Details, nil
}

// Put overwrites the user's payout details in full. There is no merge; the
// dashboard always sends the complete record.
func (r *MongoBankDetailsRepository) Put(ctx context.Context, userID string, details model.BankDetails) error {
	if userID == "" {
		return fmt.Errorf("user id cannot be empty")
	}

	doc := bankDetailsDoc{
		UserID:    userID,
		Details:   details,
		UpdatedAt: time.Now().UTC(),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": userID}, doc, opts); err != nil {
		return fmt.Errorf("failed to store bank details: %w", err)
	}

	r.log.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id": userID,
	}).Debug("Bank details stored")

	return nil
}

var _ repository.BankDetailsRepository = (*MongoBankDetailsRepository)(nil)
