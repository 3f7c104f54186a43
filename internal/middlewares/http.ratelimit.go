package middlewares

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	sharedmetrics "github.com/aldisptr/backoffice-api/internal/shared/metrics"
	"github.com/aldisptr/backoffice-api/internal/shared/ratelimit"
)

type RateLimitConfig struct {
	Store ratelimit.Store

	// Route names the quota bucket; every request through this middleware
	// instance counts against it.
	Route string

	Policy   ratelimit.Policy
	Skipper  func(c fiber.Ctx) bool
	Logger   *slog.Logger
	Recorder *sharedmetrics.Recorder
}

func NewHTTPRateLimitMiddleware(cfg RateLimitConfig) fiber.Handler {
	if cfg.Store == nil {
		return func(c fiber.Ctx) error {
			return c.Next()
		}
	}

	if cfg.Skipper == nil {
		cfg.Skipper = func(c fiber.Ctx) bool { return false }
	}

	return func(c fiber.Ctx) error {
		if cfg.Skipper(c) {
			return c.Next()
		}

		key := rateLimitKey(c, cfg.Policy.KeyBy)

		result, err := cfg.Store.Record(c.Context(), cfg.Route, key, cfg.Policy)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Error("rate limit record failed", "route", cfg.Route, "key", key, "error", err)
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}

		c.Set("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		limited, err := cfg.Store.IsLimited(c.Context(), cfg.Route, key, cfg.Policy)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Error("rate limit check failed", "route", cfg.Route, "key", key, "error", err)
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}

		if limited {
			cfg.Recorder.ObserveRateLimited(cfg.Route)

			retryAfter := int(result.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Set("Retry-After", strconv.Itoa(retryAfter))

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter,
			})
		}

		return c.Next()
	}
}

func rateLimitKey(c fiber.Ctx, keyBy ratelimit.KeyBy) string {
	if keyBy == ratelimit.KeyBySubject {
		if userID := c.Locals("user_id"); userID != nil {
			if uid, ok := userID.(string); ok && uid != "" {
				return "user:" + uid
			}
		}
	}

	return "ip:" + c.IP()
}

func SkipHealthCheck(c fiber.Ctx) bool {
	return c.Path() == "/healthz"
}
