package platformapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	apperrors "givehub-admin/internal/shared/errors"
)

const timeoutMessage = "The platform API took too long to respond. Please try again."

// Error bodies larger than this are truncated before parsing.
const maxErrorBody = 64 * 1024

// normalizeTransportError classifies a failure that produced no HTTP
// response. Timeouts and unreachable hosts get fixed guidance text; the raw
// transport error never reaches the user.
func (c *Client) normalizeTransportError(err error) *apperrors.APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &apperrors.APIError{Kind: apperrors.APIErrorKindTimeout, Message: timeoutMessage}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &apperrors.APIError{Kind: apperrors.APIErrorKindTimeout, Message: timeoutMessage}
	}

	var urlErr *url.Error
	var opErr *net.OpError
	if errors.As(err, &urlErr) || errors.As(err, &opErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &apperrors.APIError{
			Kind: apperrors.APIErrorKindNetwork,
			Message: fmt.Sprintf(
				"Could not reach the GiveHub platform at %s. Check that the API is running and that the address and scheme are correct.",
				c.baseURL,
			),
		}
	}

	return &apperrors.APIError{Kind: apperrors.APIErrorKindOther, Message: apperrors.DefaultAPIErrorMessage}
}

// platformErrorBody matches the shapes the platform is known to answer with:
// ASP.NET problem details and field-keyed validation maps.
type platformErrorBody struct {
	Errors  map[string][]string `json:"errors"`
	Detail  string              `json:"detail"`
	Title   string              `json:"title"`
	Message string              `json:"message"`
}

// normalizeResponseError turns a non-2xx answer into an *APIError carrying
// whatever detail the body offers.
func normalizeResponseError(resp *http.Response) *apperrors.APIError {
	apiErr := &apperrors.APIError{
		Kind:       apperrors.APIErrorKindHTTP,
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("The platform answered with status %d.", resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	if isJSONContentType(resp.Header.Get("Content-Type")) {
		var parsed platformErrorBody
		if jsonErr := json.Unmarshal(body, &parsed); jsonErr == nil {
			apiErr.Fields = parsed.Errors
			apiErr.Detail = parsed.Detail
			apiErr.Title = parsed.Title
			if apiErr.Detail == "" && parsed.Message != "" {
				apiErr.Detail = parsed.Message
			}
			return apiErr
		}
		// Some endpoints answer with a bare JSON string.
		var text string
		if json.Unmarshal(body, &text) == nil {
			apiErr.RawBody = text
			return apiErr
		}
	}

	apiErr.RawBody = string(body)
	return apiErr
}

func isJSONContentType(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return strings.Contains(contentType, "application/json") || strings.Contains(contentType, "+json")
}
