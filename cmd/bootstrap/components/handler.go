package components

import (
	"flashsale-scheduler/internal/handler"
	"flashsale-scheduler/internal/handler/api"
	"flashsale-scheduler/internal/handler/middleware"
	"flashsale-scheduler/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(a commands.AccountCommands) middleware.TokenValidator { return a },
		middleware.NewAuthMiddleware,
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewScheduleHandler,
		api.NewNotificationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
