package usecase

import (
	"context"

	"givehub-admin/internal/dashboard/domain/model"
	"givehub-admin/internal/shared/eventbus"
)

// GetBankDetails returns the signed-in user's payout details, or the
// all-empty record when none were saved yet.
func (uc *DashboardUsecase) GetBankDetails(ctx context.Context) (model.BankDetails, error) {
	userID, err := uc.currentUserID(ctx)
	if err != nil {
		return model.BankDetails{}, err
	}
	return uc.bankDetails.Get(ctx, userID)
}

// SaveBankDetails overwrites the signed-in user's payout details in full.
func (uc *DashboardUsecase) SaveBankDetails(ctx context.Context, details model.BankDetails) error {
	userID, err := uc.currentUserID(ctx)
	if err != nil {
		return err
	}

	if err := uc.bankDetails.Put(ctx, userID, details); err != nil {
		return err
	}

	uc.publishAudit(ctx, eventbus.EventTypeBankDetailsSaved, map[string]interface{}{
		"subjectId": userID,
	})
	return nil
}
