package model

import "time"

// AuditEvent records one admin-relevant action for the audit trail.
type AuditEvent struct {
	ID         string            `json:"id" bson:"_id"`
	Action     string            `json:"action" bson:"action"`
	ActorID    string            `json:"actorId,omitempty" bson:"actor_id,omitempty"`
	ActorEmail string            `json:"actorEmail,omitempty" bson:"actor_email,omitempty"`
	SubjectID  string            `json:"subjectId,omitempty" bson:"subject_id,omitempty"`
	Details    map[string]string `json:"details,omitempty" bson:"details,omitempty"`
	OccurredAt time.Time         `json:"occurredAt" bson:"occurred_at"`
}
