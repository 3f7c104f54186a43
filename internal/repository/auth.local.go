package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aldisptr/backoffice-api/internal/domain"
	"github.com/aldisptr/backoffice-api/internal/domain/vo"
	"github.com/jmoiron/sqlx"
)

type AuthLocalRepository struct {
	db *sqlx.DB
}

type operatorAuthRow struct {
	ID           string `db:"id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Status       string `db:"status"`
}

func NewAuthLocalRepository(db *sqlx.DB) *AuthLocalRepository {
	return &AuthLocalRepository{db: db}
}

func (r *AuthLocalRepository) GetOperatorAuthByEmail(ctx context.Context, email string) (domain.OperatorAuth, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(email))
	if normalizedEmail == "" {
		return domain.OperatorAuth{}, vo.ErrInvalidCredentials
	}

	const query = `
		SELECT id::text AS id, email, password_hash, status
		FROM operator_accounts
		WHERE lower(email) = $1
		LIMIT 1
	`

	var row operatorAuthRow
	if err := r.db.GetContext(ctx, &row, query, normalizedEmail); err != nil {
		if err == sql.ErrNoRows {
			return domain.OperatorAuth{}, vo.ErrInvalidCredentials
		}
		return domain.OperatorAuth{}, fmt.Errorf("repository: get operator auth by email failed: %w", err)
	}

	if row.Status != "active" {
		return domain.OperatorAuth{}, vo.ErrInvalidCredentials
	}

	return domain.OperatorAuth{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Status:       row.Status,
	}, nil
}
