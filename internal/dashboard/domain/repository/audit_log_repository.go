package repository

import (
	"context"

	"givehub-admin/internal/dashboard/domain/model"
)

// AuditLogRepository persists the admin audit trail.
type AuditLogRepository interface {
	Append(ctx context.Context, event model.AuditEvent) error
	// List returns the newest events first, at most limit of them.
	List(ctx context.Context, limit int) ([]model.AuditEvent, error)
}
