package bootstrap

import (
	"salon-backend/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	TelemetryModule,
	components.PersistenceModule,
	components.IntegrationModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.JobModule,
)
