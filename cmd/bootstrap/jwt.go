package bootstrap

import (
	"flashsale-scheduler/internal/pkg/config"
	"flashsale-scheduler/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.JWT.Duration <= 0 {
		panic("invalid JWT_DURATION: must be positive")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}
