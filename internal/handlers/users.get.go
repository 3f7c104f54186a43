package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aldisptr/backoffice-api/internal/domain/vo"
)

type UsersGetService interface {
	GetOperator(ctx context.Context, id string) (vo.OperatorAccount, error)
}

type UsersGetHandler struct {
	service UsersGetService
	logger  *slog.Logger
}

func NewUsersGetHandler(service UsersGetService, logger *slog.Logger) *UsersGetHandler {
	return &UsersGetHandler{service: service, logger: logger}
}

func (h *UsersGetHandler) Register(router fiber.Router) {
	router.Get("/admin/users/:id", h.Handle)
}

func (h *UsersGetHandler) Handle(c fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid operator id",
		})
	}

	account, err := h.service.GetOperator(c.Context(), id)
	if err != nil {
		if errors.Is(err, vo.ErrOperatorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "operator not found",
			})
		}

		h.logger.Error("failed to get operator", "operator_id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(account)
}
