package platformapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"givehub-admin/internal/dashboard/domain/model"
	apperrors "givehub-admin/internal/shared/errors"
)

// AttachProjectMedia uploads files to a project and returns the platform's
// refreshed view of it.
func (c *Client) AttachProjectMedia(ctx context.Context, projectID string, files []model.FileUpload) (*model.Project, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, file := range files {
		if err := writeFilePart(writer, "files", file); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, &apperrors.APIError{Kind: apperrors.APIErrorKindOther, Message: apperrors.DefaultAPIErrorMessage}
	}

	var project model.Project
	path := "/api/projects/" + url.PathEscape(projectID) + "/media"
	if err := c.do(ctx, http.MethodPost, path, writer.FormDataContentType(), body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// RemoveProjectMedia deletes one uploaded file from a project.
func (c *Client) RemoveProjectMedia(ctx context.Context, projectID, mediaID string) error {
	path := "/api/projects/" + url.PathEscape(projectID) + "/media/" + url.PathEscape(mediaID)
	return c.delete(ctx, path)
}

// writeFilePart streams one upload into the form. multipart.CreateFormFile
// hardcodes application/octet-stream, so the part header is built by hand to
// keep the browser-reported content type.
func writeFilePart(writer *multipart.Writer, field string, file model.FileUpload) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(field), escapeQuotes(file.FileName)))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return &apperrors.APIError{Kind: apperrors.APIErrorKindOther, Message: apperrors.DefaultAPIErrorMessage}
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return &apperrors.APIError{Kind: apperrors.APIErrorKindOther, Message: "The uploaded file could not be read."}
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
