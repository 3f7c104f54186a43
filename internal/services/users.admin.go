package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aldisptr/backoffice-api/internal/domain"
	"github.com/aldisptr/backoffice-api/internal/domain/vo"
	sharedhash "github.com/aldisptr/backoffice-api/internal/shared/hash"
	shareduid "github.com/aldisptr/backoffice-api/internal/shared/uid"
)

const minOperatorPasswordLength = 8

type UsersAdminRepository interface {
	CreateOperatorAccount(ctx context.Context, account domain.OperatorAccount, passwordHash string) (domain.OperatorAccount, error)
	GetOperatorAccountByID(ctx context.Context, id string) (domain.OperatorAccount, error)
}

type AuditRecorder interface {
	InsertAuditEvent(ctx context.Context, event domain.AuditEvent) error
}

type UsersAdminService struct {
	repository UsersAdminRepository
	audit      AuditRecorder
	hasher     sharedhash.Hasher
	accountIDs shareduid.UIDGenerator
	auditIDs   shareduid.UIDGenerator
}

func NewUsersAdminService(
	repository UsersAdminRepository,
	audit AuditRecorder,
	hasher sharedhash.Hasher,
	accountIDs shareduid.UIDGenerator,
	auditIDs shareduid.UIDGenerator,
) *UsersAdminService {
	return &UsersAdminService{
		repository: repository,
		audit:      audit,
		hasher:     hasher,
		accountIDs: accountIDs,
		auditIDs:   auditIDs,
	}
}

func (s *UsersAdminService) CreateOperator(ctx context.Context, actorID, email, fullName, role, password string) (vo.OperatorAccount, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(email))
	local, host, ok := strings.Cut(normalizedEmail, "@")
	if !ok || local == "" || host == "" {
		return vo.OperatorAccount{}, vo.ErrInvalidOperatorEmail
	}

	normalizedRole := strings.TrimSpace(strings.ToLower(role))
	switch normalizedRole {
	case "admin", "operator", "viewer":
	default:
		return vo.OperatorAccount{}, vo.ErrInvalidOperatorRole
	}

	if len(password) < minOperatorPasswordLength {
		return vo.OperatorAccount{}, vo.ErrWeakPassword
	}

	accountID, err := s.accountIDs.Generate(ctx)
	if err != nil {
		return vo.OperatorAccount{}, fmt.Errorf("service: failed to generate account id: %w", err)
	}

	passwordHash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return vo.OperatorAccount{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	created, err := s.repository.CreateOperatorAccount(ctx, domain.OperatorAccount{
		ID:       accountID,
		Email:    normalizedEmail,
		FullName: strings.TrimSpace(fullName),
		Role:     normalizedRole,
	}, passwordHash)
	if err != nil {
		return vo.OperatorAccount{}, err
	}

	if err := s.recordAudit(ctx, actorID, "operator.create", created.ID, created.Email); err != nil {
		return vo.OperatorAccount{}, err
	}

	return toOperatorAccountVO(created), nil
}

func (s *UsersAdminService) GetOperator(ctx context.Context, id string) (vo.OperatorAccount, error) {
	if strings.TrimSpace(id) == "" {
		return vo.OperatorAccount{}, vo.ErrOperatorNotFound
	}

	account, err := s.repository.GetOperatorAccountByID(ctx, id)
	if err != nil {
		return vo.OperatorAccount{}, err
	}

	return toOperatorAccountVO(account), nil
}

// recordAudit appends the action to the audit trail. A failed append fails
// the whole request: admin mutations must not outrun their audit record.
func (s *UsersAdminService) recordAudit(ctx context.Context, actorID, action, targetID, detail string) error {
	eventID, err := s.auditIDs.Generate(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to generate audit id: %w", err)
	}

	event := domain.AuditEvent{
		ID:       eventID,
		ActorID:  actorID,
		Action:   action,
		TargetID: targetID,
		Detail:   detail,
	}
	if err := s.audit.InsertAuditEvent(ctx, event); err != nil {
		return fmt.Errorf("service: failed to record audit event: %w", err)
	}

	return nil
}

func toOperatorAccountVO(account domain.OperatorAccount) vo.OperatorAccount {
	return vo.OperatorAccount{
		ID:        account.ID,
		Email:     account.Email,
		FullName:  account.FullName,
		Role:      account.Role,
		Status:    account.Status,
		CreatedAt: account.CreatedAt,
	}
}
