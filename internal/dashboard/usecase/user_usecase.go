package usecase

import (
	"context"
	"fmt"
	"strings"

	authModel "givehub-admin/internal/auth/domain/model"
	"givehub-admin/internal/dashboard/domain/model"
	apperrors "givehub-admin/internal/shared/errors"
	"givehub-admin/internal/shared/eventbus"
)

// ListUsers returns the platform's user directory.
func (uc *DashboardUsecase) ListUsers(ctx context.Context) ([]model.DirectoryUser, error) {
	return uc.platform.ListUsers(ctx)
}

// ChangeUserRole assigns a platform role to a user. Only the closed set of
// known roles is accepted; the blank-means-Donor parsing default does not
// apply to an explicit role change.
func (uc *DashboardUsecase) ChangeUserRole(ctx context.Context, userID, role string) error {
	if userID == "" {
		return fmt.Errorf("user id cannot be empty")
	}
	if strings.TrimSpace(role) == "" {
		return apperrors.ErrUnknownRole
	}

	parsed := authModel.ParseRole(role)
	if parsed == authModel.RoleUnknown {
		return apperrors.ErrUnknownRole
	}

	if err := uc.platform.UpdateUserRole(ctx, userID, parsed.String()); err != nil {
		return err
	}

	uc.publishAudit(ctx, eventbus.EventTypeUserRoleChanged, map[string]interface{}{
		"subjectId": userID,
		"role":      parsed.String(),
	})
	return nil
}
