package http

import (
	"strings"
	"time"

	"givehub-admin/internal/auth/domain/model"
	"givehub-admin/internal/auth/usecase"
	"givehub-admin/internal/shared/contextkeys"
	"givehub-admin/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// SessionMiddleware provides session middleware for Fiber
type SessionMiddleware struct {
	usecase    usecase.SessionUsecaseInterface
	cookieName string
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(uc usecase.SessionUsecaseInterface, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		usecase:    uc,
		cookieName: cookieName,
	}
}

// CORS middleware for browser clients of the dashboard
func (m *SessionMiddleware) CORS(allowOrigins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Requested-With",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	})
}

// SecurityHeaders adds security headers
func (m *SessionMiddleware) SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	}
}

// RateLimiter creates rate limiting middleware for the login endpoint
func (m *SessionMiddleware) RateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               10,              // 10 requests
		Expiration:        1 * time.Minute, // per minute
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.Get("X-Forwarded-For", c.IP())
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again later.",
			})
		},
	})
}

// RequestID middleware
func (m *SessionMiddleware) RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     "X-Request-ID",
		ContextKey: string(contextkeys.RequestIDKey),
	})
}

// RequireSession returns middleware that requires a live session
func (m *SessionMiddleware) RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := m.authenticate(c); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}
		return c.Next()
	}
}

// RequireRole returns middleware that requires the session user to hold a
// specific role. It authenticates on its own when RequireSession did not
// run earlier in the chain.
func (m *SessionMiddleware) RequireRole(role model.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, err := utils.GetUserRoleFromContext(c.UserContext())
		if err != nil {
			if err := m.authenticate(c); err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Authentication required",
				})
			}
			current, _ = utils.GetUserRoleFromContext(c.UserContext())
		}

		if model.ParseRole(current) != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Insufficient permissions",
			})
		}

		return c.Next()
	}
}

// OptionalSession loads the session when one is presented but never rejects
// the request.
func (m *SessionMiddleware) OptionalSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_ = m.authenticate(c)
		return c.Next()
	}
}

// authenticate resolves the presented session id to a live session and
// injects the caller's identity and platform token into the request context.
func (m *SessionMiddleware) authenticate(c *fiber.Ctx) error {
	sessionID, err := m.extractSessionID(c)
	if err != nil {
		return err
	}

	session, err := m.usecase.CurrentSession(c.Context(), sessionID)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	ctx = utils.WithSessionID(ctx, session.ID)
	ctx = utils.WithUserID(ctx, session.User.ID)
	ctx = utils.WithUserEmail(ctx, session.User.Email)
	ctx = utils.WithUserRole(ctx, session.User.Role.String())
	// The platform token rides along so outbound API calls can present it.
	ctx = utils.WithToken(ctx, session.Token)

	c.SetUserContext(ctx)
	return nil
}

func (m *SessionMiddleware) extractSessionID(c *fiber.Ctx) (string, error) {
	// Try Authorization header first (non-browser clients)
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		if strings.HasPrefix(authHeader, "Bearer ") {
			return strings.TrimPrefix(authHeader, "Bearer "), nil
		}
	}

	// Try cookie
	sessionID := c.Cookies(m.cookieName)
	if sessionID != "" {
		return sessionID, nil
	}

	return "", fiber.NewError(fiber.StatusUnauthorized, "No session found")
}
