package app

import (
	"go.uber.org/fx"

	"github.com/aldisptr/backoffice-api/internal/handlers"
	"github.com/aldisptr/backoffice-api/internal/repository"
	"github.com/aldisptr/backoffice-api/internal/services"
	sharedidempotency "github.com/aldisptr/backoffice-api/internal/shared/idempotency"
)

func UsersModule() fx.Option {
	return fx.Module("users",
		fx.Provide(
			fx.Annotate(
				provideAdminIdempotencyStore,
				fx.ResultTags(`name:"admin_idempotency_store"`),
				fx.As(new(sharedidempotency.Store)),
			),
			fx.Annotate(
				repository.NewUsersAdminRepository,
				fx.ParamTags(`name:"db_admin"`),
				fx.As(new(services.UsersAdminRepository)),
			),
			fx.Annotate(
				repository.NewAuditEventsRepository,
				fx.ParamTags(`name:"db_admin"`),
				fx.As(new(services.AuditRecorder)),
			),
			fx.Annotate(
				services.NewUsersAdminService,
				fx.ParamTags("", "", "", `name:"uid_uuid"`, `name:"uid_snowflake"`),
				fx.As(new(handlers.UsersCreateService)),
				fx.As(new(handlers.UsersGetService)),
			),
			handlers.NewUsersCreateHandler,
			handlers.NewUsersGetHandler,
		),
		fx.Invoke(registerUsersRoutes),
	)
}
