package components

import (
	"flashsale-scheduler/internal/pkg/config"
	"flashsale-scheduler/internal/pkg/password"
	"flashsale-scheduler/internal/usecase/commands"
	"flashsale-scheduler/internal/usecase/queries"
	"flashsale-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	shared.NewAccountState,
	func(cfg config.Config) *password.Checker {
		return password.NewChecker(cfg.Auth.DemoPasswordHash)
	},
	commands.NewReconciler,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewScheduleUseCase,
		commands.NewCatalogUseCase,
		commands.NewAccountUseCase,
		commands.NewAdvisorUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(c commands.CatalogCommands) queries.ProcessingChecker { return c },
		queries.NewDashboardQueries,
	),
)
