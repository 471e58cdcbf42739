package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claim URIs from the WS-* identity schema the platform API still emits
// alongside the short JWT claim names.
const (
	ClaimNameIdentifier = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	ClaimRole           = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	ClaimEmailAddress   = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
)

// TokenPayload is the decoded, unverified payload of a platform access
// token. Depending on the platform version a claim may arrive under its
// short name, its legacy schema URI, or both.
type TokenPayload struct {
	Subject  string           `json:"sub"`
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Role     string           `json:"role"`
	Expiry   *jwt.NumericDate `json:"exp"`
	IssuedAt *jwt.NumericDate `json:"iat"`

	LegacyNameID string `json:"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"`
	LegacyRole   string `json:"http://schemas.microsoft.com/ws/2008/06/identity/claims/role"`
	LegacyEmail  string `json:"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"`
}

// SubjectID returns the stable user id, preferring the legacy claim when the
// platform sends both.
func (p *TokenPayload) SubjectID() string {
	if p.LegacyNameID != "" {
		return p.LegacyNameID
	}
	return p.Subject
}

// RoleClaim returns the raw role claim, preferring the legacy claim.
func (p *TokenPayload) RoleClaim() string {
	if p.LegacyRole != "" {
		return p.LegacyRole
	}
	return p.Role
}

// EmailClaim returns the email claim, preferring the legacy claim.
func (p *TokenPayload) EmailClaim() string {
	if p.LegacyEmail != "" {
		return p.LegacyEmail
	}
	return p.Email
}

// IsExpired reports whether the exp claim lies before now. Payloads without
// an exp claim never expire.
func (p *TokenPayload) IsExpired(now time.Time) bool {
	if p.Expiry == nil {
		return false
	}
	return p.Expiry.Before(now)
}

// ExpiresAt returns the expiry as a time.Time, or the zero time when the
// token carries no exp claim.
func (p *TokenPayload) ExpiresAt() time.Time {
	if p.Expiry == nil {
		return time.Time{}
	}
	return p.Expiry.Time
}
