package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/gofiber/fiber/v3"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/aldisptr/backoffice-api/internal/shared/config"
	"github.com/aldisptr/backoffice-api/internal/shared/directory"
	sharedidempotency "github.com/aldisptr/backoffice-api/internal/shared/idempotency"
	sharedratelimit "github.com/aldisptr/backoffice-api/internal/shared/ratelimit"
)

func registerLifecycle(
	lifecycle fx.Lifecycle,
	app *fiber.App,
	cfg config.ConfigProvider,
	logger *slog.Logger,
	closers lifecycleClosersIn,
) {
	port := cfg.GetInt("server.port")
	if port == 0 {
		port = 8080
	}
	address := fmt.Sprintf(":%d", port)
	var serveErrCh chan error

	lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			listener, err := net.Listen("tcp", address)
			if err != nil {
				return fmt.Errorf("app: failed to bind server address %s: %w", address, err)
			}

			serveErrCh = make(chan error, 1)
			go func() {
				err := app.Listener(listener)
				if err != nil && !errors.Is(err, net.ErrClosed) {
					logger.Error("fiber server stopped unexpectedly", "error", err)
				}
				serveErrCh <- err
			}()

			logger.Info("fiber server started", "address", address)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			var shutdownErrors []error

			if err := app.ShutdownWithContext(ctx); err != nil {
				shutdownErrors = append(shutdownErrors, err)
			}

			if serveErrCh != nil {
				select {
				case err := <-serveErrCh:
					if err != nil && !errors.Is(err, net.ErrClosed) {
						shutdownErrors = append(shutdownErrors, err)
					}
				case <-ctx.Done():
					shutdownErrors = append(shutdownErrors, ctx.Err())
				}
			}

			if closers.AdminDB != nil {
				if err := closers.AdminDB.Close(); err != nil {
					shutdownErrors = append(shutdownErrors, err)
				}
			}

			if closers.Redis != nil {
				if err := closers.Redis.Close(); err != nil {
					shutdownErrors = append(shutdownErrors, err)
				}
			}

			if closers.Directory != nil {
				if err := closers.Directory.Close(); err != nil {
					shutdownErrors = append(shutdownErrors, err)
				}
			}

			if closers.RateLimitStore != nil {
				if err := closers.RateLimitStore.Close(); err != nil {
					shutdownErrors = append(shutdownErrors, err)
				}
			}

			if closers.IdempotencyStore != nil {
				if err := closers.IdempotencyStore.Close(); err != nil {
					shutdownErrors = append(shutdownErrors, err)
				}
			}

			if len(shutdownErrors) > 0 {
				return errors.Join(shutdownErrors...)
			}

			logger.Info("fiber server shutdown completed")
			return nil
		},
	})
}

type lifecycleClosersIn struct {
	fx.In

	AdminDB          *sqlx.DB                `name:"db_admin" optional:"true"`
	Redis            *redis.Client           `optional:"true"`
	Directory        *directory.Client       `optional:"true"`
	RateLimitStore   sharedratelimit.Store   `optional:"true"`
	IdempotencyStore sharedidempotency.Store `name:"admin_idempotency_store" optional:"true"`
}
