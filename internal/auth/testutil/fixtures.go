package testutil

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"givehub-admin/internal/auth/domain/model"

	"github.com/golang-jwt/jwt/v5"
)

// TestSigningKey signs test tokens. The dashboard never verifies signatures,
// so the value only matters for producing structurally valid JWTs.
const TestSigningKey = "givehub-test-signing-key-0123456789"

// TokenFixture mints platform-style access tokens for tests
type TokenFixture struct{}

// NewTokenFixture creates a new TokenFixture instance
func NewTokenFixture() *TokenFixture {
	return &TokenFixture{}
}

// SignedToken returns an HS256-signed token carrying the given claims
func (f *TokenFixture) SignedToken(claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(TestSigningKey))
	if err != nil {
		panic(err)
	}
	return signed
}

// TokenForUser returns a signed token for userID with the given role,
// expiring in one hour.
func (f *TokenFixture) TokenForUser(userID, role string) string {
	return f.SignedToken(jwt.MapClaims{
		"sub":   userID,
		"role":  role,
		"email": userID + "@givehub.test",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
}

// AdminToken returns a signed token for an admin user
func (f *TokenFixture) AdminToken(userID string) string {
	return f.TokenForUser(userID, "Admin")
}

// LegacyToken returns a signed token carrying only the WS-* schema claim
// URIs, the way the oldest platform versions issue them.
func (f *TokenFixture) LegacyToken(userID, role, email string, exp time.Time) string {
	return f.SignedToken(jwt.MapClaims{
		model.ClaimNameIdentifier: userID,
		model.ClaimRole:           role,
		model.ClaimEmailAddress:   email,
		"exp":                     exp.Unix(),
	})
}

// ExpiredToken returns a signed token that expired an hour ago
func (f *TokenFixture) ExpiredToken(userID string) string {
	return f.SignedToken(jwt.MapClaims{
		"sub":   userID,
		"email": userID + "@givehub.test",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
}

// EternalToken returns a signed token without an exp claim
func (f *TokenFixture) EternalToken(userID string) string {
	return f.SignedToken(jwt.MapClaims{
		"sub":   userID,
		"email": userID + "@givehub.test",
	})
}

// UnsignedToken builds a two-segment header.payload token with no signature
// segment.
func (f *TokenFixture) UnsignedToken(claims map[string]interface{}) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	body, err := json.Marshal(claims)
	if err != nil {
		panic(err)
	}
	return header + "." + base64.RawURLEncoding.EncodeToString(body)
}

// SessionFixture provides test data for the Session model
type SessionFixture struct {
	Tokens *TokenFixture
}

// NewSessionFixture creates a new SessionFixture instance
func NewSessionFixture() *SessionFixture {
	return &SessionFixture{Tokens: NewTokenFixture()}
}

// ValidSession returns an admin session whose token expires in an hour
func (f *SessionFixture) ValidSession() *model.Session {
	return f.SessionForUser("test-user-id-123", model.RoleAdmin)
}

// SessionForUser returns a session for a specific user and role
func (f *SessionFixture) SessionForUser(userID string, role model.UserRole) *model.Session {
	return &model.Session{
		ID:    "session-for-" + userID,
		Token: f.Tokens.TokenForUser(userID, role.String()),
		User: model.SessionUser{
			ID:    userID,
			Email: userID + "@givehub.test",
			Role:  role,
		},
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// ExpiredSession returns a session whose token expired an hour ago
func (f *SessionFixture) ExpiredSession() *model.Session {
	return &model.Session{
		ID:    "expired-session-id",
		Token: f.Tokens.ExpiredToken("test-user-id"),
		User: model.SessionUser{
			ID:    "test-user-id",
			Email: "test-user-id@givehub.test",
			Role:  model.RoleDonor,
		},
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
}

// TestData provides all fixtures
type TestData struct {
	Tokens   *TokenFixture
	Sessions *SessionFixture
}

// NewTestData creates a new TestData instance with all fixtures
func NewTestData() *TestData {
	return &TestData{
		Tokens:   NewTokenFixture(),
		Sessions: NewSessionFixture(),
	}
}
