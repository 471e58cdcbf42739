package usecase

import (
	"context"
	"fmt"

	"givehub-admin/internal/dashboard/domain/model"
	"givehub-admin/internal/shared/eventbus"
)

// auditedEventTypes lists every event the audit trail records.
var auditedEventTypes = []string{
	eventbus.EventTypeUserLoggedIn,
	eventbus.EventTypeUserLoggedOut,
	eventbus.EventTypeProjectCreated,
	eventbus.EventTypeProjectUpdated,
	eventbus.EventTypeProjectApproval,
	eventbus.EventTypeProjectDeleted,
	eventbus.EventTypeProjectMediaSet,
	eventbus.EventTypeProjectMediaRemoved,
	eventbus.EventTypeUserRoleChanged,
	eventbus.EventTypeProfileUpdated,
	eventbus.EventTypeBankDetailsSaved,
}

// SubscribeAuditRecorder wires the audit trail to the event bus. Called once
// during module assembly.
func (uc *DashboardUsecase) SubscribeAuditRecorder(bus eventbus.EventBusInterface) {
	for _, eventType := range auditedEventTypes {
		bus.Subscribe(eventType, uc.RecordAuditEvent)
	}
}

// RecordAuditEvent persists one bus event as an audit entry. It satisfies
// eventbus.Handler; the bus retries on error and gives up logging.
func (uc *DashboardUsecase) RecordAuditEvent(ctx context.Context, event eventbus.Event) error {
	data, _ := event.Data().(map[string]interface{})

	entry := model.AuditEvent{
		Action:     event.Type(),
		ActorID:    stringField(data, "actorId", "userId"),
		ActorEmail: stringField(data, "actorEmail", "email"),
		SubjectID:  stringField(data, "subjectId"),
		Details:    detailFields(data),
		OccurredAt: event.Timestamp(),
	}

	if err := uc.auditLog.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to record audit event %s: %w", event.Type(), err)
	}
	return nil
}

// ListAuditEvents returns the newest audit entries, capped by configuration.
func (uc *DashboardUsecase) ListAuditEvents(ctx context.Context) ([]model.AuditEvent, error) {
	return uc.auditLog.List(ctx, uc.config.AuditPageSize)
}

// stringField returns the first present string under any of the given keys.
// Session events say "userId"; dashboard events say "actorId".
func stringField(data map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value, ok := data[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// detailFields keeps everything that is not one of the well-known keys as a
// printable detail.
func detailFields(data map[string]interface{}) map[string]string {
	if len(data) == 0 {
		return nil
	}

	wellKnown := map[string]struct{}{
		"actorId": {}, "userId": {}, "actorEmail": {}, "email": {}, "subjectId": {},
	}
	details := make(map[string]string)
	for key, value := range data {
		if _, skip := wellKnown[key]; skip {
			continue
		}
		details[key] = fmt.Sprint(value)
	}
	if len(details) == 0 {
		return nil
	}
	return details
}
