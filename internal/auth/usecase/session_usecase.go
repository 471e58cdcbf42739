package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"givehub-admin/internal/auth/config"
	"givehub-admin/internal/auth/domain/client"
	"givehub-admin/internal/auth/domain/model"
	"givehub-admin/internal/auth/domain/repository"
	apperrors "givehub-admin/internal/shared/errors"
	"givehub-admin/internal/shared/eventbus"
	"givehub-admin/internal/shared/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordRequired   = errors.New("password is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SessionUsecaseInterface defines the contract for dashboard session
// management.
type SessionUsecaseInterface interface {
	Login(ctx context.Context, req LoginRequest) (*model.Session, error)
	SessionFromLogin(result *model.LoginResult) (*model.Session, error)
	CurrentSession(ctx context.Context, sessionID string) (*model.Session, error)
	UpdateSessionUser(ctx context.Context, sessionID string, user model.SessionUser) error
	Logout(ctx context.Context, sessionID string) error
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionUsecase implements the dashboard session logic. Credentials are
// verified by the platform API; this layer derives a session from the issued
// token and keeps it in the session store.
type SessionUsecase struct {
	authenticator client.Authenticator
	tokens        repository.TokenInspector
	sessions      repository.SessionStore
	config        *config.Config
	events        eventbus.EventBusInterface
	log           logger.Logger
}

// NewSessionUsecase creates a new instance of SessionUsecase.
func NewSessionUsecase(
	authenticator client.Authenticator,
	tokens repository.TokenInspector,
	sessions repository.SessionStore,
	cfg *config.Config,
	events eventbus.EventBusInterface,
	log logger.Logger,
) *SessionUsecase {
	return &SessionUsecase{
		authenticator: authenticator,
		tokens:        tokens,
		sessions:      sessions,
		config:        cfg,
		events:        events,
		log:           log.WithComponent("session_usecase"),
	}
}

// validateEmail validates email format
func (uc *SessionUsecase) validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmailFormat
	}
	return nil
}

// Login exchanges credentials for a platform token and opens a session.
func (uc *SessionUsecase) Login(ctx context.Context, req LoginRequest) (*model.Session, error) {
	if err := uc.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}

	creds := model.LoginCredentials{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: req.Password,
	}

	result, err := uc.authenticator.Login(ctx, creds)
	if err != nil {
		uc.log.WithFields(map[string]interface{}{"email": creds.Email}).
			Warnf("platform login failed: %v", err)
		return nil, err
	}

	session, err := uc.SessionFromLogin(result)
	if err != nil {
		return nil, err
	}
	if session.IsExpired() {
		return nil, apperrors.ErrTokenExpired
	}

	if err := uc.sessions.Save(ctx, session, session.TTL(uc.config.SessionTTL)); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	uc.events.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(
		eventbus.EventTypeUserLoggedIn,
		map[string]interface{}{
			"userId": session.User.ID,
			"email":  session.User.Email,
			"role":   session.User.Role.String(),
		},
		"session_usecase",
	))

	uc.log.WithFields(map[string]interface{}{
		"user_id": session.User.ID,
		"role":    session.User.Role,
	}).Info("session opened")

	return session, nil
}

// SessionFromLogin derives a session from a platform login response. The
// token payload supplies identity claims; profile fields come from the
// response body. A token without a usable subject id yields no session.
func (uc *SessionUsecase) SessionFromLogin(result *model.LoginResult) (*model.Session, error) {
	if result == nil || result.Token == "" {
		return nil, apperrors.ErrMalformedToken
	}

	payload, err := uc.tokens.DecodePayload(result.Token)
	if err != nil {
		return nil, err
	}

	subject := payload.SubjectID()
	if subject == "" {
		return nil, apperrors.ErrMissingSubject
	}

	email := payload.EmailClaim()
	if email == "" {
		email = result.Email
	}

	user := model.SessionUser{
		ID:           subject,
		Email:        email,
		FirstName:    result.FirstName,
		LastName:     result.LastName,
		DisplayName:  model.ComposeDisplayName(result.DisplayName, result.FirstName, result.LastName),
		MobileNumber: result.MobileNumber,
		AvatarPath:   result.AvatarPath,
		Role:         model.ParseRole(payload.RoleClaim()),
	}

	return &model.Session{
		ID:        uuid.New().String(),
		Token:     result.Token,
		User:      user,
		CreatedAt: time.Now(),
		ExpiresAt: payload.ExpiresAt(),
	}, nil
}

// CurrentSession loads and revalidates the session stored under sessionID.
// A stored token that is expired or no longer decodable purges the entry, so
// callers only ever see live sessions or a not-found/expired error.
func (uc *SessionUsecase) CurrentSession(ctx context.Context, sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, apperrors.ErrSessionNotFound
	}

	session, err := uc.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.tokens.Validate(session.Token); err != nil {
		uc.purge(ctx, sessionID)
		if errors.Is(err, apperrors.ErrTokenExpired) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrSessionNotFound
	}

	return session, nil
}

// UpdateSessionUser replaces the user snapshot of an existing session while
// keeping its remaining lifetime.
func (uc *SessionUsecase) UpdateSessionUser(ctx context.Context, sessionID string, user model.SessionUser) error {
	session, err := uc.sessions.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	session.User = user
	if err := uc.sessions.Update(ctx, session); err != nil {
		return fmt.Errorf("failed to update session user: %w", err)
	}
	return nil
}

// Logout closes the session. Logging out an unknown or already closed
// session is not an error.
func (uc *SessionUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	session, err := uc.sessions.Load(ctx, sessionID)
	if err != nil && !errors.Is(err, apperrors.ErrSessionNotFound) {
		return err
	}

	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if session != nil {
		uc.events.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(
			eventbus.EventTypeUserLoggedOut,
			map[string]interface{}{
				"userId": session.User.ID,
				"email":  session.User.Email,
			},
			"session_usecase",
		))
	}

	return nil
}

func (uc *SessionUsecase) purge(ctx context.Context, sessionID string) {
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		uc.log.Warnf("failed to purge invalid session %s: %v", sessionID, err)
	}
}

var _ SessionUsecaseInterface = (*SessionUsecase)(nil)
