package middlewares

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"

	sharedjwt "github.com/aldisptr/backoffice-api/internal/shared/jwt"
	"github.com/aldisptr/backoffice-api/internal/shared/revocation"
)

func NewHTTPJWTMiddleware(tokenManager sharedjwt.TokenManager, revoker revocation.Store) fiber.Handler {
	return func(c fiber.Ctx) error {
		path := c.Path()
		if c.Method() == fiber.MethodPost && strings.Contains(path, "/auth/login") {
			return c.Next()
		}

		authorizationHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		parts := strings.SplitN(authorizationHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		claims, err := tokenManager.Verify(context.Background(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		if revoker != nil && claims.ID != "" {
			revoked, err := revoker.IsRevoked(c.Context(), claims.ID)
			if err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"error": "token verification unavailable",
				})
			}
			if revoked {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "token revoked",
				})
			}
		}

		c.SetContext(sharedjwt.SetClaims(c.Context(), claims))
		c.Locals("user_id", claims.Subject)
		return c.Next()
	}
}
