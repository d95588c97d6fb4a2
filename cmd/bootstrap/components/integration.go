package components

import (
	"context"
	"log/slog"

	"salon-backend/internal/infra/notify"
	"salon-backend/internal/infra/payment"
	"salon-backend/internal/infra/ratelimit"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/pkg/config"
	"salon-backend/internal/usecase/shared"

	"go.uber.org/fx"
)

const rateLimitPrefix = "salon:rl:"

// IntegrationModule provides the adapters to external services. Each one runs
// in a log-only or in-memory mode when its configuration is empty.
var IntegrationModule = fx.Module("integration",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) shared.NotificationSender { return notify.NewEmailSender(cfg.SMTP) },
			fx.ResultTags(`group:"senders"`),
		),
		fx.Annotate(
			func(cfg config.Config) shared.NotificationSender { return notify.NewSMSSender(cfg.Twilio) },
			fx.ResultTags(`group:"senders"`),
		),
		fx.Annotate(
			newEventSender,
			fx.ResultTags(`group:"senders"`),
		),
		fx.Annotate(
			func(cfg config.Config) *payment.StripeGateway { return payment.NewStripeGateway(cfg.Stripe) },
			fx.As(new(shared.PaymentGateway)),
		),
		newLimiter,
	),
)

func newEventSender(lc fx.Lifecycle, cfg config.Config) shared.NotificationSender {
	sender := notify.NewEventSender(cfg.Kafka)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return sender.Close()
		},
	})
	return sender
}

// newLimiter shares counters across instances through Redis when REDIS_URL is set.
func newLimiter(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (ratelimit.Limiter, error) {
	if cfg.Redis.URL == "" {
		logger.Info("rate limiter: in-memory")
		return ratelimit.NewMemoryLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window, clk), nil
	}
	rdb, err := ratelimit.NewRedisClient(cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				// fail-open requests still pass while Redis is down
				logger.Warn("redis not reachable at startup", "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	logger.Info("rate limiter: redis")
	return ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window, rateLimitPrefix), nil
}
