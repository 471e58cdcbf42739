package security

import (
	"encoding/json"
	"strings"
	"time"

	"givehub-admin/internal/auth/domain/model"
	"givehub-admin/internal/auth/domain/repository"
	apperrors "givehub-admin/internal/shared/errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInspector decodes platform-issued JWTs without verifying signatures.
// The dashboard is a pure client of the platform API: it does not hold the
// signing key, and the platform re-validates the token on every proxied
// call. Locally the token only supplies identity claims and an expiry.
type TokenInspector struct {
	parser *jwt.Parser
}

// NewTokenInspector creates a new token inspector
func NewTokenInspector() *TokenInspector {
	return &TokenInspector{
		// Tokens from older platform versions pad their base64 segments.
		parser: jwt.NewParser(jwt.WithPaddingAllowed()),
	}
}

// DecodePayload extracts the claims from the token's payload segment. It
// splits on "." itself instead of running a full JWT parse so that unsigned
// two-segment tokens from older platform versions still decode.
func (ti *TokenInspector) DecodePayload(token string) (*model.TokenPayload, error) {
	segments := strings.Split(token, ".")
	if len(segments) < 2 || segments[1] == "" {
		return nil, apperrors.ErrMalformedToken
	}

	raw, err := ti.parser.DecodeSegment(segments[1])
	if err != nil {
		return nil, apperrors.ErrMalformedToken
	}

	payload := &model.TokenPayload{}
	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, apperrors.ErrMalformedToken
	}

	return payload, nil
}

// Validate decodes the token and checks that it carries a subject and has
// not expired.
func (ti *TokenInspector) Validate(token string) (*model.TokenPayload, error) {
	payload, err := ti.DecodePayload(token)
	if err != nil {
		return nil, err
	}

	if payload.SubjectID() == "" {
		return nil, apperrors.ErrMissingSubject
	}
	if payload.IsExpired(time.Now()) {
		return nil, apperrors.ErrTokenExpired
	}

	return payload, nil
}

// Ensure TokenInspector implements the domain port
var _ repository.TokenInspector = (*TokenInspector)(nil)
