package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/aldisptr/backoffice-api/internal/domain/vo"
	"github.com/aldisptr/backoffice-api/internal/shared/directory"
)

type DirectoryLookupService interface {
	LookupUser(ctx context.Context, username string) (vo.DirectoryUser, error)
}

type DirectoryLookupHandler struct {
	service DirectoryLookupService
	logger  *slog.Logger
}

func NewDirectoryLookupHandler(service DirectoryLookupService, logger *slog.Logger) *DirectoryLookupHandler {
	return &DirectoryLookupHandler{service: service, logger: logger}
}

func (h *DirectoryLookupHandler) Register(router fiber.Router) {
	router.Get("/directory/users/:username", h.Handle)
}

func (h *DirectoryLookupHandler) Handle(c fiber.Ctx) error {
	username := strings.TrimSpace(c.Params("username"))
	if username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "username is required",
		})
	}

	user, err := h.service.LookupUser(c.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, vo.ErrDirectoryUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "directory user not found",
			})
		case errors.Is(err, directory.ErrInvalidFilter):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid lookup request",
			})
		case errors.Is(err, vo.ErrDependencyUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "directory unavailable",
			})
		default:
			h.logger.Error("failed to look up directory user", "username", username, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
