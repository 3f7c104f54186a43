package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/aldisptr/backoffice-api/internal/domain/vo"
)

type UsersCreateService interface {
	CreateOperator(ctx context.Context, actorID, email, fullName, role, password string) (vo.OperatorAccount, error)
}

type UsersCreateHandler struct {
	service UsersCreateService
	logger  *slog.Logger
}

type createOperatorRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

func NewUsersCreateHandler(service UsersCreateService, logger *slog.Logger) *UsersCreateHandler {
	return &UsersCreateHandler{service: service, logger: logger}
}

func (h *UsersCreateHandler) Register(router fiber.Router) {
	router.Post("/admin/users", h.Handle)
}

func (h *UsersCreateHandler) Handle(c fiber.Ctx) error {
	actorIDValue := c.Locals("user_id")
	actorID, ok := actorIDValue.(string)
	if !ok || actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authenticated user",
		})
	}

	var requestBody createOperatorRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if strings.TrimSpace(requestBody.Email) == "" ||
		strings.TrimSpace(requestBody.FullName) == "" ||
		strings.TrimSpace(requestBody.Password) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email, full_name and password are required",
		})
	}

	role := requestBody.Role
	if strings.TrimSpace(role) == "" {
		role = "operator"
	}

	created, err := h.service.CreateOperator(c.Context(), actorID, requestBody.Email, requestBody.FullName, role, requestBody.Password)
	if err != nil {
		switch {
		case errors.Is(err, vo.ErrInvalidOperatorEmail):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email is invalid"})
		case errors.Is(err, vo.ErrInvalidOperatorRole):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "role must be one of admin, operator, viewer"})
		case errors.Is(err, vo.ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "password must be at least 8 characters"})
		case errors.Is(err, vo.ErrEmailAlreadyUsed):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "email already used"})
		default:
			h.logger.Error("failed to create operator", "actor_id", actorID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
