package bootstrap

import (
	"flashsale-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	StoreModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
