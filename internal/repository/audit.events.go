package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aldisptr/backoffice-api/internal/domain"
	"github.com/jmoiron/sqlx"
)

type AuditEventsRepository struct {
	db *sqlx.DB
}

func NewAuditEventsRepository(db *sqlx.DB) *AuditEventsRepository {
	return &AuditEventsRepository{db: db}
}

func (r *AuditEventsRepository) InsertAuditEvent(ctx context.Context, event domain.AuditEvent) error {
	if strings.TrimSpace(event.ID) == "" {
		return errors.New("repository: audit event id is required")
	}
	if strings.TrimSpace(event.Action) == "" {
		return errors.New("repository: audit event action is required")
	}

	const query = `
		INSERT INTO audit_events (id, actor_id, action, target_id, detail)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := r.db.ExecContext(ctx, query, event.ID, event.ActorID, event.Action, event.TargetID, event.Detail); err != nil {
		return fmt.Errorf("repository: insert audit event failed: %w", err)
	}

	return nil
}
