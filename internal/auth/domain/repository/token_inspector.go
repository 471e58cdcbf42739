package repository

import "givehub-admin/internal/auth/domain/model"

// TokenInspector reads access tokens issued by the platform API without
// verifying their signature. The dashboard never holds the platform's
// signing key; every proxied call is re-validated upstream, so locally the
// token is only a source of identity claims and an expiry.
type TokenInspector interface {
	// DecodePayload extracts the claims from the token's payload segment.
	// It fails with errors.ErrMalformedToken when the token has fewer than
	// two segments or the payload is not base64url-encoded JSON.
	DecodePayload(token string) (*model.TokenPayload, error)

	// Validate decodes the token and checks that it carries a subject and
	// has not expired.
	Validate(token string) (*model.TokenPayload, error)
}
