package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/aldisptr/backoffice-api/internal/handlers"
	"github.com/aldisptr/backoffice-api/internal/repository"
	"github.com/aldisptr/backoffice-api/internal/services"
	"github.com/aldisptr/backoffice-api/internal/shared/config"
	"github.com/aldisptr/backoffice-api/internal/shared/directory"
	sharedhash "github.com/aldisptr/backoffice-api/internal/shared/hash"
	sharedjwt "github.com/aldisptr/backoffice-api/internal/shared/jwt"
	sharedrevocation "github.com/aldisptr/backoffice-api/internal/shared/revocation"
	shareduid "github.com/aldisptr/backoffice-api/internal/shared/uid"
)

func AuthModule() fx.Option {
	return fx.Module("auth",
		fx.Provide(
			fx.Annotate(
				repository.NewAuthLocalRepository,
				fx.ParamTags(`name:"db_admin"`),
				fx.As(new(services.AuthLocalRepository)),
			),
			provideTokenRevoker,
			fx.Annotate(
				provideAuthLoginService,
				fx.ParamTags("", "", "", "", "", `name:"uid_uuid"`),
				fx.As(new(handlers.AuthLoginService)),
			),
			fx.Annotate(
				services.NewAuthLogoutService,
				fx.As(new(handlers.AuthLogoutService)),
			),
			handlers.NewAuthLoginHandler,
			handlers.NewAuthLogoutHandler,
		),
		fx.Invoke(registerAuthRoutes),
	)
}

func provideAuthLoginService(
	cfg config.ConfigProvider,
	directoryClient *directory.Client,
	repo services.AuthLocalRepository,
	hasher sharedhash.Hasher,
	tokenManager sharedjwt.TokenManager,
	tokenIDs shareduid.UIDGenerator,
) *services.AuthLoginService {
	strategy := services.LoginStrategyDirectory
	if services.LoginStrategy(cfg.GetString("security.login.strategy")) == services.LoginStrategyLocal {
		strategy = services.LoginStrategyLocal
	}

	tokenTTL := cfg.GetDuration("security.jwt.ttl")
	if tokenTTL <= 0 {
		tokenTTL = 15 * time.Minute
	}

	return services.NewAuthLoginService(directoryClient, repo, hasher, tokenManager, tokenIDs, strategy, tokenTTL)
}

func provideTokenRevoker(store sharedrevocation.Store) services.TokenRevoker {
	return store
}
