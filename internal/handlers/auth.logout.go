package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/aldisptr/backoffice-api/internal/domain/vo"
	sharedjwt "github.com/aldisptr/backoffice-api/internal/shared/jwt"
)

type AuthLogoutService interface {
	Logout(ctx context.Context, claims *sharedjwt.Claims) error
}

type AuthLogoutHandler struct {
	service AuthLogoutService
	logger  *slog.Logger
}

func NewAuthLogoutHandler(service AuthLogoutService, logger *slog.Logger) *AuthLogoutHandler {
	return &AuthLogoutHandler{service: service, logger: logger}
}

func (h *AuthLogoutHandler) Register(router fiber.Router) {
	router.Post("/auth/logout", h.Handle)
}

func (h *AuthLogoutHandler) Handle(c fiber.Ctx) error {
	claims, ok := sharedjwt.GetClaims(c.Context())
	if !ok || claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authenticated user",
		})
	}

	if err := h.service.Logout(c.Context(), claims); err != nil {
		if errors.Is(err, vo.ErrTokenNotRevocable) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "token cannot be revoked",
			})
		}

		h.logger.Error("failed to logout", "user_id", claims.Subject, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}
