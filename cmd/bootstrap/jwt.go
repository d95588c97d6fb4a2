package bootstrap

import (
	"salon-backend/internal/handler/middleware"
	"salon-backend/internal/pkg/config"
	"salon-backend/internal/pkg/jwt"
	"salon-backend/internal/usecase/shared"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(fx.Self()),
			fx.As(new(shared.TokenIssuer)),
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}
