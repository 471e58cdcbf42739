package platformapi

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"

	"givehub-admin/internal/dashboard/domain/model"
	apperrors "givehub-admin/internal/shared/errors"
)

// UpdateProfile sends the caller's own profile edits. The platform expects
// multipart even without an avatar, matching its upload-capable endpoint.
func (c *Client) UpdateProfile(ctx context.Context, req model.ProfileUpdateRequest) (*model.DirectoryUser, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"firstName":    req.FirstName,
		"lastName":     req.LastName,
		"displayName":  req.DisplayName,
		"mobileNumber": req.MobileNumber,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, &apperrors.APIError{Kind: apperrors.APIErrorKindOther, Message: apperrors.DefaultAPIErrorMessage}
		}
	}
	if req.Avatar != nil {
		if err := writeFilePart(writer, "avatar", *req.Avatar); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, &apperrors.APIError{Kind: apperrors.APIErrorKindOther, Message: apperrors.DefaultAPIErrorMessage}
	}

	var user model.DirectoryUser
	if err := c.do(ctx, http.MethodPut, "/api/profile", writer.FormDataContentType(), body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
