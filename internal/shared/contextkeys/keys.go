package contextkeys

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "givehub-admin context key " + string(c)
}

// SessionIDKey is the key for the dashboard session id in context.Context
const SessionIDKey = contextKey("sessionID")

// UserIDKey is the key for the authenticated user's id in context.Context
const UserIDKey = contextKey("userID")

// UserEmailKey is the key for the authenticated user's email in context.Context
const UserEmailKey = contextKey("userEmail")

// UserRoleKey is the key for the authenticated user's role in context.Context
const UserRoleKey = contextKey("userRole")

// TokenKey is the key for the platform API bearer token in context.Context.
// The outbound client reads it when authorizing requests against the platform API.
const TokenKey = contextKey("platformToken")

// RequestIDKey is the key for the request id in context.Context
const RequestIDKey = contextKey("requestID")

// ComponentKey is the key for the logging component name in context.Context
const ComponentKey = contextKey("component")
