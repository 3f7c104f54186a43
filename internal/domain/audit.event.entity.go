package domain

import "time"

type AuditEvent struct {
	ID         string
	ActorID    string
	Action     string
	TargetID   string
	Detail     string
	RecordedAt time.Time
}
