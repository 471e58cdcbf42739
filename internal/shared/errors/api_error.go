package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// APIErrorKind classifies how a platform API call failed.
type APIErrorKind string

const (
	// APIErrorKindHTTP means the platform answered with a non-2xx status.
	APIErrorKindHTTP APIErrorKind = "http"
	// APIErrorKindTimeout means the call exceeded its deadline.
	APIErrorKindTimeout APIErrorKind = "timeout"
	// APIErrorKindNetwork means the platform could not be reached at all.
	APIErrorKindNetwork APIErrorKind = "network"
	// APIErrorKindOther covers everything else.
	APIErrorKindOther APIErrorKind = "other"
)

// DefaultAPIErrorMessage is shown when a failure carries no usable detail.
const DefaultAPIErrorMessage = "Something went wrong. Please try again later."

// APIError is the normalized form of every platform API failure. The
// platform client fills it once at the transport boundary; handlers only
// translate it to a response.
type APIError struct {
	Kind       APIErrorKind
	StatusCode int
	// Message carries the fixed guidance text for transport failures or a
	// generic description for HTTP failures without a parseable body.
	Message string
	// Fields holds a validation-error map as sent by the platform
	// ({"errors": {"email": ["..."]}}).
	Fields map[string][]string
	Detail string
	Title  string
	// RawBody keeps a non-JSON response body verbatim.
	RawBody string
}

func (e *APIError) Error() string {
	if e.Kind == APIErrorKindHTTP {
		return fmt.Sprintf("platform api: status %d: %s", e.StatusCode, e.UserMessage())
	}
	return fmt.Sprintf("platform api: %s: %s", e.Kind, e.UserMessage())
}

// HTTPStatus maps the failure onto the status the dashboard should answer
// with. HTTP failures keep the upstream status; everything else is a bad
// gateway.
func (e *APIError) HTTPStatus() int {
	if e.Kind == APIErrorKindHTTP && e.StatusCode != 0 {
		return e.StatusCode
	}
	return http.StatusBadGateway
}

// UserMessage picks the most specific human-readable message the failure
// carries: the first message of the alphabetically first validation field,
// then detail, title, a plain-text body, the error's own message, and
// finally a fixed fallback.
func (e *APIError) UserMessage() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if len(e.Fields[k]) > 0 && e.Fields[k][0] != "" {
				return e.Fields[k][0]
			}
		}
	}
	if e.Detail != "" {
		return e.Detail
	}
	if e.Title != "" {
		return e.Title
	}
	if body := strings.TrimSpace(e.RawBody); body != "" {
		return body
	}
	if e.Message != "" {
		return e.Message
	}
	return DefaultAPIErrorMessage
}

// IsAPIError checks if the error is a platform APIError
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// AsAPIError extracts the APIError from an error chain, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
