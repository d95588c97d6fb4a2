package bootstrap

import (
	"context"
	"log/slog"

	"salon-backend/internal/handler"
	"salon-backend/internal/infra/metrics"
	"salon-backend/internal/infra/telemetry"
	"salon-backend/internal/pkg/config"
	"salon-backend/internal/usecase/shared"

	"go.uber.org/fx"
)

const metricsNamespace = "salon"

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		fx.Annotate(
			func() *metrics.Registry { return metrics.New(metricsNamespace) },
			fx.As(new(shared.Metrics)),
			fx.As(new(handler.Telemetry)),
		),
	),
	fx.Invoke(StartTracing),
)

func StartTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) {
	var shutdown telemetry.ShutdownFunc
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			fn, err := telemetry.Setup(ctx, cfg.App.Name, cfg.Telemetry)
			if err != nil {
				return err
			}
			shutdown = fn
			if cfg.Telemetry.Enabled {
				logger.Info("tracing enabled", "endpoint", cfg.Telemetry.OTLPEndpoint, "ratio", cfg.Telemetry.SampleRatio)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(ctx)
		},
	})
}
