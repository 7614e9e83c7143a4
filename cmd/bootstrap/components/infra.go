package components

import (
	"log/slog"

	"flashsale-scheduler/internal/handler/api"
	"flashsale-scheduler/internal/infra/advisor"
	"flashsale-scheduler/internal/infra/marketplace"
	"flashsale-scheduler/internal/infra/notifier"
	"flashsale-scheduler/internal/pkg/clock"
	"flashsale-scheduler/internal/pkg/config"
	"flashsale-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		NewNotificationHub,
		fx.Annotate(
			func(h *notifier.Hub) *notifier.Hub { return h },
			fx.As(new(shared.Notifier)),
			fx.As(new(api.NotificationFeed)),
		),
		NewCatalogSource,
		fx.Annotate(
			NewAdvisor,
			fx.As(new(shared.Advisor)),
		),
	),
)

func NewNotificationHub(cfg config.Config, clk clock.Clock, logger *slog.Logger) *notifier.Hub {
	return notifier.NewHub(cfg.Notification.Capacity, cfg.Notification.DisplayTTL, clk, logger)
}

// NewCatalogSource selects the marketplace adapter. Demo mode never leaves the process.
func NewCatalogSource(cfg config.Config, logger *slog.Logger) shared.CatalogSource {
	if cfg.Marketplace.Mode == config.MarketplaceModeLive {
		logger.Info("marketplace adapter: live", "api", cfg.Marketplace.APIBaseURL)
		return marketplace.NewClient(cfg.Marketplace, logger)
	}
	logger.Info("marketplace adapter: demo")
	return marketplace.NewDemoSource(cfg.Marketplace, logger)
}

func NewAdvisor(cfg config.Config, logger *slog.Logger) *advisor.GeminiAdvisor {
	return advisor.NewGeminiAdvisor(cfg.Advisor, logger)
}
