package app

import (
	"go.uber.org/fx"

	"github.com/aldisptr/backoffice-api/internal/handlers"
	"github.com/aldisptr/backoffice-api/internal/services"
	"github.com/aldisptr/backoffice-api/internal/shared/directory"
)

func DirectoryModule() fx.Option {
	return fx.Module("directory",
		fx.Provide(
			provideDirectorySearcher,
			fx.Annotate(
				services.NewDirectoryLookupService,
				fx.As(new(handlers.DirectoryLookupService)),
			),
			handlers.NewDirectoryLookupHandler,
		),
		fx.Invoke(registerDirectoryRoutes),
	)
}

func provideDirectorySearcher(client *directory.Client) services.DirectorySearcher {
	return client
}
