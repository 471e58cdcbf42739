package httpx

import (
	"net/http"
	"time"

	"givehub-admin/internal/shared/contextkeys"
	"givehub-admin/internal/shared/logger"
)

// BearerFromContext returns a constructor that copies the session's access
// token out of the request context into the Authorization header. Requests
// without a token in context (login, health probes) pass through untouched.
func BearerFromContext() Constructor {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			token, _ := req.Context().Value(contextkeys.TokenKey).(string)
			if token == "" {
				return next.RoundTrip(req)
			}

			// RoundTrippers must not mutate the caller's request.
			out := req.Clone(req.Context())
			out.Header.Set("Authorization", "Bearer "+token)
			return next.RoundTrip(out)
		})
	}
}

// LogRequests returns a constructor that records every outbound call with
// its method, URL, status and duration.
func LogRequests(log logger.Logger) Constructor {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)

			fields := map[string]interface{}{
				"method":      req.Method,
				"url":         req.URL.String(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			entry := log.WithContext(req.Context()).WithFields(fields)

			if err != nil {
				entry.Warnf("outbound request failed: %v", err)
				return nil, err
			}

			entry.WithFields(map[string]interface{}{"status": resp.StatusCode}).Debug("outbound request")
			return resp, nil
		})
	}
}
