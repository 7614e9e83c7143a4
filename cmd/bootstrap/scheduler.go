package bootstrap

import (
	"context"
	"log/slog"

	"flashsale-scheduler/internal/pkg/config"
	"flashsale-scheduler/internal/scheduler"
	"flashsale-scheduler/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewRunner,
	),
	fx.Invoke(startRunner),
)

func NewRunner(reconciler commands.Reconciler, cfg config.Config, logger *slog.Logger) *scheduler.Runner {
	return scheduler.NewRunner(reconciler, cfg.Scheduler.TickInterval, logger)
}

func startRunner(lc fx.Lifecycle, runner *scheduler.Runner) {
	lc.Append(fx.Hook{
		// the start context is cancelled once startup finishes
		OnStart: func(_ context.Context) error {
			runner.Start(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return runner.Stop(ctx)
		},
	})
}
