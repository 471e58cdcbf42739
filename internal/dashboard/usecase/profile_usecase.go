package usecase

import (
	"context"

	authModel "givehub-admin/internal/auth/domain/model"
	"givehub-admin/internal/dashboard/domain/model"
	apperrors "givehub-admin/internal/shared/errors"
	"givehub-admin/internal/shared/eventbus"
	"givehub-admin/internal/shared/utils"
)

// UpdateProfile forwards the caller's profile edits to the platform and, on
// success, rewrites the user snapshot inside the live session so the change
// shows up without a re-login.
func (uc *DashboardUsecase) UpdateProfile(ctx context.Context, req model.ProfileUpdateRequest) (*authModel.SessionUser, error) {
	sessionID, err := utils.GetSessionIDFromContext(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	session, err := uc.sessions.CurrentSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated, err := uc.platform.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	user := session.User
	user.FirstName = updated.FirstName
	user.LastName = updated.LastName
	user.DisplayName = authModel.ComposeDisplayName(updated.DisplayName, updated.FirstName, updated.LastName)
	user.MobileNumber = updated.MobileNumber
	if updated.Email != "" {
		user.Email = updated.Email
	}
	if updated.AvatarPath != "" {
		user.AvatarPath = updated.AvatarPath
	}

	// The platform accepted the update; a session that vanished in between
	// only costs the in-place refresh, not the edit itself.
	if err := uc.sessions.UpdateSessionUser(ctx, sessionID, user); err != nil {
		uc.log.WithContext(ctx).Warnf("Profile updated but session refresh failed: %v", err)
	}

	uc.publishAudit(ctx, eventbus.EventTypeProfileUpdated, map[string]interface{}{
		"subjectId": user.ID,
	})

	return &user, nil
}
