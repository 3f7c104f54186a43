package app

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"go.uber.org/fx"

	"github.com/aldisptr/backoffice-api/internal/handlers"
	"github.com/aldisptr/backoffice-api/internal/middlewares"
	"github.com/aldisptr/backoffice-api/internal/shared/config"
	sharedidempotency "github.com/aldisptr/backoffice-api/internal/shared/idempotency"
	sharedjwt "github.com/aldisptr/backoffice-api/internal/shared/jwt"
	sharedmetrics "github.com/aldisptr/backoffice-api/internal/shared/metrics"
	sharedratelimit "github.com/aldisptr/backoffice-api/internal/shared/ratelimit"
	sharedrevocation "github.com/aldisptr/backoffice-api/internal/shared/revocation"
)

type routerGroupsOut struct {
	fx.Out
	Public    fiber.Router `name:"api_public"`
	Protected fiber.Router `name:"api_protected"`
}

func provideRouterGroups(
	app *fiber.App,
	logger *slog.Logger,
	recorder *sharedmetrics.Recorder,
	tokenManager sharedjwt.TokenManager,
	revoker sharedrevocation.Store,
) routerGroupsOut {
	app.Use(middlewares.NewHTTPRecoveryMiddleware())
	app.Use(middlewares.NewHTTPRequestIDMiddleware())
	app.Use(middlewares.NewHTTPCORSMiddleware())
	app.Use(middlewares.NewHTTPMetricsMiddleware(recorder))
	app.Use(middlewares.NewHTTPRequestResponseLogMiddleware(logger))

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(recorder.Handler()))

	api := app.Group("/api/v1")
	protected := api.Group("", middlewares.NewHTTPJWTMiddleware(tokenManager, revoker))

	return routerGroupsOut{
		Public:    api,
		Protected: protected,
	}
}

type authRoutesIn struct {
	fx.In
	Public         fiber.Router `name:"api_public"`
	Protected      fiber.Router `name:"api_protected"`
	Config         config.ConfigProvider
	RateLimitStore sharedratelimit.Store
	Logger         *slog.Logger
	Recorder       *sharedmetrics.Recorder
	LoginHandler   *handlers.AuthLoginHandler
	LogoutHandler  *handlers.AuthLogoutHandler
}

func registerAuthRoutes(in authRoutesIn) {
	loginPolicy := resolveRatePolicy(in.Config, "login", sharedratelimit.Policy{
		Max:    10,
		Window: time.Minute,
		KeyBy:  sharedratelimit.KeyByIP,
	})
	loginRateLimit := middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
		Store:    in.RateLimitStore,
		Route:    "login",
		Policy:   loginPolicy,
		Logger:   in.Logger,
		Recorder: in.Recorder,
	})

	loginRouter := in.Public.Group("", loginRateLimit)
	in.LoginHandler.Register(loginRouter)
	in.LogoutHandler.Register(in.Protected)
}

type directoryRoutesIn struct {
	fx.In
	Protected      fiber.Router `name:"api_protected"`
	Config         config.ConfigProvider
	RateLimitStore sharedratelimit.Store
	Logger         *slog.Logger
	Recorder       *sharedmetrics.Recorder
	Handler        *handlers.DirectoryLookupHandler
}

func registerDirectoryRoutes(in directoryRoutesIn) {
	lookupPolicy := resolveRatePolicy(in.Config, "directory_lookup", sharedratelimit.Policy{
		Max:    30,
		Window: time.Minute,
		KeyBy:  sharedratelimit.KeyBySubject,
	})
	lookupRateLimit := middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
		Store:    in.RateLimitStore,
		Route:    "directory_lookup",
		Policy:   lookupPolicy,
		Logger:   in.Logger,
		Recorder: in.Recorder,
	})

	lookupRouter := in.Protected.Group("", lookupRateLimit)
	in.Handler.Register(lookupRouter)
}

type usersRoutesIn struct {
	fx.In
	Protected        fiber.Router            `name:"api_protected"`
	Config           config.ConfigProvider
	RateLimitStore   sharedratelimit.Store
	IdempotencyStore sharedidempotency.Store `name:"admin_idempotency_store"`
	Logger           *slog.Logger
	Recorder         *sharedmetrics.Recorder
	CreateHandler    *handlers.UsersCreateHandler
	GetHandler       *handlers.UsersGetHandler
}

func registerUsersRoutes(in usersRoutesIn) {
	adminPolicy := resolveRatePolicy(in.Config, "admin_users", sharedratelimit.Policy{
		Max:    20,
		Window: time.Minute,
		KeyBy:  sharedratelimit.KeyBySubject,
	})
	adminRateLimit := middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
		Store:    in.RateLimitStore,
		Route:    "admin_users",
		Policy:   adminPolicy,
		Logger:   in.Logger,
		Recorder: in.Recorder,
	})

	idempotency := middlewares.NewHTTPIdempotencyMiddleware(middlewares.IdempotencyConfig{
		Store:    in.IdempotencyStore,
		Scope:    "admin-users",
		Logger:   in.Logger,
		Recorder: in.Recorder,
	})

	adminRouter := in.Protected.Group("", adminRateLimit)
	in.GetHandler.Register(adminRouter)
	in.CreateHandler.Register(adminRouter.Group("", idempotency))
}
