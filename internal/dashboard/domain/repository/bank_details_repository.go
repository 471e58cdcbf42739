package repository

import (
	"context"

	"givehub-admin/internal/dashboard/domain/model"
)

// BankDetailsRepository stores payout details keyed by user ID. Get returns
// an empty record, not an error, when the user has saved nothing yet.
type BankDetailsRepository interface {
	Get(ctx context.Context, userID string) (model.BankDetails, error)
	Put(ctx context.Context, userID string, details model.BankDetails) error
}
