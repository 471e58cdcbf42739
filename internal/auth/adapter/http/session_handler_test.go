package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	authhttp "givehub-admin/internal/auth/adapter/http"
	"givehub-admin/internal/auth/config"
	"givehub-admin/internal/auth/domain/model"
	"givehub-admin/internal/auth/testutil"
	"givehub-admin/internal/auth/usecase"
	apperrors "givehub-admin/internal/shared/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// Mock session usecase
type mockSessionUsecase struct {
	mock.Mock
}

func (m *mockSessionUsecase) Login(ctx context.Context, req usecase.LoginRequest) (*model.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *mockSessionUsecase) SessionFromLogin(result *model.LoginResult) (*model.Session, error) {
	args := m.Called(result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *mockSessionUsecase) CurrentSession(ctx context.Context, sessionID string) (*model.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *mockSessionUsecase) UpdateSessionUser(ctx context.Context, sessionID string, user model.SessionUser) error {
	args := m.Called(ctx, sessionID, user)
	return args.Error(0)
}

func (m *mockSessionUsecase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type SessionHTTPTestSuite struct {
	suite.Suite
	app         *fiber.App
	mockUsecase *mockSessionUsecase
	config      *config.Config
	fixtures    *testutil.SessionFixture
}

func (suite *SessionHTTPTestSuite) SetupTest() {
	suite.mockUsecase = &mockSessionUsecase{}
	suite.config = config.DefaultConfig()
	suite.fixtures = testutil.NewSessionFixture()
	suite.app = fiber.New()

	handler := authhttp.NewSessionHTTPHandler(suite.mockUsecase, suite.config)
	middleware := authhttp.NewSessionMiddleware(suite.mockUsecase, suite.config.SessionCookieName)
	handler.SetupSessionRoutes(suite.app.Group("/api/v1/auth"), middleware)
}

func TestSessionHTTPTestSuite(t *testing.T) {
	suite.Run(t, new(SessionHTTPTestSuite))
}

func (suite *SessionHTTPTestSuite) loginRequest(body map[string]string) *http.Request {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func (suite *SessionHTTPTestSuite) TestLogin_Success() {
	// Arrange
	session := suite.fixtures.SessionForUser("u1", model.RoleAdmin)
	suite.mockUsecase.On("Login", mock.Anything, usecase.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret",
	}).Return(session, nil)

	// Act
	resp, err := suite.app.Test(suite.loginRequest(map[string]string{
		"email":    "admin@example.com",
		"password": "secret",
	}))

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	var response model.Session
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(suite.T(), "u1", response.User.ID)
	assert.Equal(suite.T(), session.Token, response.Token)

	cookies := resp.Cookies()
	require.Len(suite.T(), cookies, 1)
	assert.Equal(suite.T(), suite.config.SessionCookieName, cookies[0].Name)
	assert.Equal(suite.T(), session.ID, cookies[0].Value)
	assert.True(suite.T(), cookies[0].HttpOnly)

	suite.mockUsecase.AssertExpectations(suite.T())
}

func (suite *SessionHTTPTestSuite) TestLogin_InvalidBody() {
	// Act
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := suite.app.Test(req)

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
	suite.mockUsecase.AssertNotCalled(suite.T(), "Login")
}

func (suite *SessionHTTPTestSuite) TestLogin_ValidationError() {
	// Arrange
	suite.mockUsecase.On("Login", mock.Anything, mock.Anything).
		Return(nil, usecase.ErrInvalidEmailFormat)

	// Act
	resp, err := suite.app.Test(suite.loginRequest(map[string]string{
		"email":    "nope",
		"password": "pw",
	}))

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
}

func (suite *SessionHTTPTestSuite) TestLogin_PlatformRejectsCredentials() {
	// Arrange
	apiErr := &apperrors.APIError{
		Kind:       apperrors.APIErrorKindHTTP,
		StatusCode: http.StatusUnauthorized,
		Detail:     "Invalid email or password",
	}
	suite.mockUsecase.On("Login", mock.Anything, mock.Anything).Return(nil, apiErr)

	// Act
	resp, err := suite.app.Test(suite.loginRequest(map[string]string{
		"email":    "x@example.com",
		"password": "wrong",
	}))

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(suite.T(), "Invalid email or password", body["error"])
	assert.Empty(suite.T(), resp.Cookies())
}

func (suite *SessionHTTPTestSuite) TestLogin_PlatformUnreachable() {
	// Arrange
	apiErr := &apperrors.APIError{
		Kind:    apperrors.APIErrorKindNetwork,
		Message: "Unable to reach the platform API at http://localhost:5000.",
	}
	suite.mockUsecase.On("Login", mock.Anything, mock.Anything).Return(nil, apiErr)

	// Act
	resp, err := suite.app.Test(suite.loginRequest(map[string]string{
		"email":    "x@example.com",
		"password": "pw",
	}))

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadGateway, resp.StatusCode)

	var body map[string]string
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(suite.T(), body["error"], "Unable to reach the platform API")
}

func (suite *SessionHTTPTestSuite) TestLogout() {
	// Arrange
	session := suite.fixtures.ValidSession()
	suite.mockUsecase.On("CurrentSession", mock.Anything, session.ID).Return(session, nil)
	suite.mockUsecase.On("Logout", mock.Anything, session.ID).Return(nil)

	req := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: suite.config.SessionCookieName, Value: session.ID})

	// Act
	resp, err := suite.app.Test(req)

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	cookies := resp.Cookies()
	require.Len(suite.T(), cookies, 1)
	assert.Empty(suite.T(), cookies[0].Value, "logout must clear the session cookie")

	suite.mockUsecase.AssertExpectations(suite.T())
}

func (suite *SessionHTTPTestSuite) TestLogout_WithoutSession() {
	// Act
	resp, err := suite.app.Test(httptest.NewRequest("POST", "/api/v1/auth/logout", nil))

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusUnauthorized, resp.StatusCode)
	suite.mockUsecase.AssertNotCalled(suite.T(), "Logout")
}

func (suite *SessionHTTPTestSuite) TestCurrentUser_WithCookie() {
	// Arrange
	session := suite.fixtures.SessionForUser("u7", model.RoleNpo)
	suite.mockUsecase.On("CurrentSession", mock.Anything, session.ID).Return(session, nil)

	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: suite.config.SessionCookieName, Value: session.ID})

	// Act
	resp, err := suite.app.Test(req)

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	var body struct {
		User model.SessionUser `json:"user"`
	}
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(suite.T(), "u7", body.User.ID)
	assert.Equal(suite.T(), model.RoleNpo, body.User.Role)
}

func (suite *SessionHTTPTestSuite) TestCurrentUser_WithBearerSessionID() {
	// Arrange
	session := suite.fixtures.ValidSession()
	suite.mockUsecase.On("CurrentSession", mock.Anything, session.ID).Return(session, nil)

	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+session.ID)

	// Act
	resp, err := suite.app.Test(req)

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
}

func (suite *SessionHTTPTestSuite) TestCurrentUser_ExpiredSession() {
	// Arrange
	suite.mockUsecase.On("CurrentSession", mock.Anything, "stale").
		Return(nil, apperrors.ErrSessionExpired)

	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: suite.config.SessionCookieName, Value: "stale"})

	// Act
	resp, err := suite.app.Test(req)

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusUnauthorized, resp.StatusCode)
}
