package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v3"

	sharedmetrics "github.com/aldisptr/backoffice-api/internal/shared/metrics"
)

// NewHTTPMetricsMiddleware times every request and records it against the
// matched route pattern, so path parameters do not explode label
// cardinality.
func NewHTTPMetricsMiddleware(recorder *sharedmetrics.Recorder) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		if route == "" {
			route = c.Path()
		}

		recorder.ObserveHTTPRequest(route, c.Method(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}
