package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aldisptr/backoffice-api/internal/domain"
	"github.com/aldisptr/backoffice-api/internal/domain/vo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

const pgUniqueViolation = "23505"

type UsersAdminRepository struct {
	db *sqlx.DB
}

type operatorAccountRow struct {
	ID        string       `db:"id"`
	Email     string       `db:"email"`
	FullName  string       `db:"full_name"`
	Role      string       `db:"role"`
	Status    string       `db:"status"`
	CreatedAt sql.NullTime `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

func NewUsersAdminRepository(db *sqlx.DB) *UsersAdminRepository {
	return &UsersAdminRepository{db: db}
}

func (r *UsersAdminRepository) CreateOperatorAccount(ctx context.Context, account domain.OperatorAccount, passwordHash string) (domain.OperatorAccount, error) {
	parsedID, err := uuid.Parse(account.ID)
	if err != nil {
		return domain.OperatorAccount{}, fmt.Errorf("repository: invalid operator id: %w", err)
	}

	const query = `
		INSERT INTO operator_accounts (id, email, full_name, role, password_hash, status)
		VALUES ($1, lower($2), $3, $4, $5, 'active')
		RETURNING id::text AS id, email, full_name, role, status, created_at, updated_at
	`

	var row operatorAccountRow
	if err := r.db.GetContext(ctx, &row, query, parsedID, account.Email, account.FullName, account.Role, passwordHash); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.OperatorAccount{}, vo.ErrEmailAlreadyUsed
		}
		return domain.OperatorAccount{}, fmt.Errorf("repository: create operator account failed: %w", err)
	}

	return row.toDomain(), nil
}

func (r *UsersAdminRepository) GetOperatorAccountByID(ctx context.Context, id string) (domain.OperatorAccount, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return domain.OperatorAccount{}, fmt.Errorf("repository: invalid operator id: %w", err)
	}

	const query = `
		SELECT id::text AS id, email, full_name, role, status, created_at, updated_at
		FROM operator_accounts
		WHERE id = $1
		LIMIT 1
	`

	var row operatorAccountRow
	if err := r.db.GetContext(ctx, &row, query, parsedID); err != nil {
		if err == sql.ErrNoRows {
			return domain.OperatorAccount{}, vo.ErrOperatorNotFound
		}
		return domain.OperatorAccount{}, fmt.Errorf("repository: get operator account by id failed: %w", err)
	}

	return row.toDomain(), nil
}

func (row operatorAccountRow) toDomain() domain.OperatorAccount {
	account := domain.OperatorAccount{
		ID:       row.ID,
		Email:    row.Email,
		FullName: row.FullName,
		Role:     row.Role,
		Status:   row.Status,
	}
	if row.CreatedAt.Valid {
		account.CreatedAt = row.CreatedAt.Time
	}
	if row.UpdatedAt.Valid {
		account.UpdatedAt = row.UpdatedAt.Time
	}
	return account
}
