package middlewares

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	sharedidempotency "github.com/aldisptr/backoffice-api/internal/shared/idempotency"
	sharedmetrics "github.com/aldisptr/backoffice-api/internal/shared/metrics"
)

const IdempotencyKeyHeader = "X-Idempotency-Key"

// Keys must be v4 UUIDs so clients cannot smuggle unbounded or colliding
// identifiers into the store.
var idempotencyKeyPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

type IdempotencyConfig struct {
	Store sharedidempotency.Store

	// Scope prefixes the per-user idempotency namespace, so the same key
	// on different operations never collides.
	Scope string

	// TTL bounds how long a completed response stays replayable. Zero
	// uses the store default.
	TTL time.Duration

	Logger   *slog.Logger
	Recorder *sharedmetrics.Recorder
}

func NewHTTPIdempotencyMiddleware(cfg IdempotencyConfig) fiber.Handler {
	return func(c fiber.Ctx) error {
		if cfg.Store == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "idempotency store is not available"})
		}

		userIDValue := c.Locals("user_id")
		userID, ok := userIDValue.(string)
		if !ok || strings.TrimSpace(userID) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authenticated user"})
		}

		idempotencyKey := strings.TrimSpace(c.Get(IdempotencyKeyHeader))
		if idempotencyKey == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing idempotency key"})
		}
		if !idempotencyKeyPattern.MatchString(idempotencyKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "idempotency key must be a v4 uuid"})
		}

		requestBody := append([]byte(nil), c.BodyRaw()...)
		request := sharedidempotency.Request{
			Scope:       cfg.Scope + ":" + userID,
			Key:         idempotencyKey,
			RequestHash: sharedidempotency.Fingerprint(c.Method(), c.Path(), requestBody),
			TTL:         cfg.TTL,
		}

		for {
			decision, err := cfg.Store.Check(c.Context(), request)
			if err != nil {
				if cfg.Logger != nil {
					cfg.Logger.Error("idempotency check failed", "scope", request.Scope, "error", err)
				}
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to acquire idempotency key"})
			}

			cfg.Recorder.ObserveIdempotencyDecision(cfg.Scope, string(decision.Type))

			switch decision.Type {
			case sharedidempotency.DecisionReplay:
				if decision.ContentType != "" {
					c.Set(fiber.HeaderContentType, decision.ContentType)
				}
				if decision.StatusCode <= 0 {
					decision.StatusCode = fiber.StatusOK
				}

				return c.Status(decision.StatusCode).Send(decision.Body)

			case sharedidempotency.DecisionInProgress:
				if decision.Ready == nil {
					return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "request is already in progress"})
				}

				select {
				case <-decision.Ready:
					// Holder published or abandoned; re-check resolves the
					// final outcome.
					continue
				case <-c.Context().Done():
					return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "request is already in progress"})
				}

			case sharedidempotency.DecisionConflict:
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "idempotency key reused with different payload"})

			case sharedidempotency.DecisionAcquired:
				return runAcquiredRequest(c, cfg, request)

			default:
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "invalid idempotency state"})
			}
		}
	}
}

// runAcquiredRequest executes the handler chain while holding the key. The
// key is released unless a replayable response was published, so a waiter
// can take over after failures and panics.
func runAcquiredRequest(c fiber.Ctx, cfg IdempotencyConfig, request sharedidempotency.Request) error {
	published := false
	defer func() {
		if !published {
			if err := cfg.Store.Release(c.Context(), request); err != nil && cfg.Logger != nil {
				cfg.Logger.Error("idempotency release failed", "scope", request.Scope, "error", err)
			}
		}
	}()

	handlerErr := c.Next()

	statusCode := c.Response().StatusCode()
	if handlerErr != nil || statusCode >= fiber.StatusInternalServerError {
		return handlerErr
	}

	response := sharedidempotency.StoredResponse{
		StatusCode:  statusCode,
		Body:        append([]byte(nil), c.Response().Body()...),
		ContentType: string(c.Response().Header.ContentType()),
	}
	if err := cfg.Store.Store(c.Context(), request, response); err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("idempotency store failed", "scope", request.Scope, "error", err)
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to persist idempotency response"})
	}

	published = true
	return nil
}
