package http

import (
	"errors"
	"time"

	"givehub-admin/internal/auth/config"
	"givehub-admin/internal/auth/usecase"
	apperrors "givehub-admin/internal/shared/errors"
	"givehub-admin/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

// SessionHTTPHandler handles HTTP requests for dashboard sessions
type SessionHTTPHandler struct {
	usecase usecase.SessionUsecaseInterface
	config  *config.Config
}

// NewSessionHTTPHandler creates a new session HTTP handler
func NewSessionHTTPHandler(uc usecase.SessionUsecaseInterface, cfg *config.Config) *SessionHTTPHandler {
	return &SessionHTTPHandler{
		usecase: uc,
		config:  cfg,
	}
}

// SetupSessionRoutes sets up session routes with middleware
func (h *SessionHTTPHandler) SetupSessionRoutes(router fiber.Router, middleware *SessionMiddleware) {
	// Public routes (no session required)
	router.Post("/login", middleware.RateLimiter(), h.Login)

	// Protected routes (session required)
	protected := router.Group("/", middleware.RequireSession())
	protected.Post("/logout", h.Logout)
	protected.Get("/me", h.CurrentUser)
}

// Login exchanges credentials for a dashboard session
func (h *SessionHTTPHandler) Login(c *fiber.Ctx) error {
	var req usecase.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := h.usecase.Login(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEmailFormat), errors.Is(err, usecase.ErrPasswordRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, apperrors.ErrMalformedToken),
			errors.Is(err, apperrors.ErrMissingSubject),
			errors.Is(err, apperrors.ErrTokenExpired):
			// The platform accepted the credentials but issued a token the
			// dashboard cannot derive a session from.
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Login succeeded but the platform returned an unusable token",
			})
		default:
			if apiErr, ok := apperrors.AsAPIError(err); ok {
				return c.Status(apiErr.HTTPStatus()).JSON(fiber.Map{
					"error": apiErr.UserMessage(),
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Login failed",
			})
		}
	}

	h.setCookie(c, session.ID, session.TTL(h.config.SessionTTL))

	return c.JSON(session)
}

// Logout closes the current session
func (h *SessionHTTPHandler) Logout(c *fiber.Ctx) error {
	sessionID, err := utils.GetSessionIDFromContext(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	if err := h.usecase.Logout(c.Context(), sessionID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.clearCookie(c)

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// CurrentUser returns the signed-in user of the current session
func (h *SessionHTTPHandler) CurrentUser(c *fiber.Ctx) error {
	sessionID, err := utils.GetSessionIDFromContext(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	session, err := h.usecase.CurrentSession(c.Context(), sessionID)
	if err != nil {
		h.clearCookie(c)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Session expired",
		})
	}

	return c.JSON(fiber.Map{
		"user":       session.User,
		"expires_at": session.ExpiresAt,
	})
}

// Helper methods

func (h *SessionHTTPHandler) setCookie(c *fiber.Ctx, sessionID string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     h.config.SessionCookieName,
		Value:    sessionID,
		Path:     h.config.CookiePath,
		Domain:   h.config.CookieDomain,
		MaxAge:   int(ttl.Seconds()),
		Secure:   h.config.CookieSecure,
		HTTPOnly: h.config.CookieHTTPOnly,
		SameSite: h.config.CookieSameSite,
		Expires:  time.Now().Add(ttl),
	})
}

func (h *SessionHTTPHandler) clearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.config.SessionCookieName,
		Value:    "",
		Path:     h.config.CookiePath,
		Domain:   h.config.CookieDomain,
		MaxAge:   -1,
		Secure:   h.config.CookieSecure,
		HTTPOnly: h.config.CookieHTTPOnly,
		SameSite: h.config.CookieSameSite,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
