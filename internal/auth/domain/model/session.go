package model

import (
	"strings"
	"time"
)

// UserRole is the platform role carried inside the access token.
type UserRole string

const (
	RoleAdmin   UserRole = "Admin"
	RoleNpo     UserRole = "Npo"
	RoleDonor   UserRole = "Donor"
	RoleUnknown UserRole = "Unknown"
)

// ParseRole maps a raw role claim onto a UserRole. Tokens without a role
// claim belong to donors; anything unrecognized becomes RoleUnknown so that
// role checks fail closed.
func ParseRole(raw string) UserRole {
	switch {
	case raw == "":
		return RoleDonor
	case strings.EqualFold(raw, string(RoleAdmin)):
		return RoleAdmin
	case strings.EqualFold(raw, string(RoleNpo)):
		return RoleNpo
	case strings.EqualFold(raw, string(RoleDonor)):
		return RoleDonor
	default:
		return RoleUnknown
	}
}

// String returns the role as sent over the wire
func (r UserRole) String() string {
	return string(r)
}

// Session is the server-side record of a signed-in dashboard user.
type Session struct {
	ID        string      `json:"id"`
	Token     string      `json:"token"`
	User      SessionUser `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// SessionUser is the identity snapshot decoded from the access token,
// enriched with profile fields the platform returns at login. Profile
// updates keep this snapshot in sync without forcing a re-login.
type SessionUser struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	FirstName    string   `json:"firstName,omitempty"`
	LastName     string   `json:"lastName,omitempty"`
	DisplayName  string   `json:"displayName,omitempty"`
	MobileNumber string   `json:"mobileNumber,omitempty"`
	AvatarPath   string   `json:"avatarPath,omitempty"`
	Role         UserRole `json:"role"`
}

// ComposeDisplayName picks the display name for a session user: the provided
// one when the platform sent it, otherwise first and last name joined.
func ComposeDisplayName(displayName, firstName, lastName string) string {
	if trimmed := strings.TrimSpace(displayName); trimmed != "" {
		return trimmed
	}
	return strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
}

// IsExpired reports whether the session's token has passed its expiry.
// Sessions without an expiry never expire on their own.
func (s *Session) IsExpired() bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(s.ExpiresAt)
}

// TTL returns the session's remaining lifetime, or fallback when the token
// carries no expiry.
func (s *Session) TTL(fallback time.Duration) time.Duration {
	if s.ExpiresAt.IsZero() {
		return fallback
	}
	return time.Until(s.ExpiresAt)
}
