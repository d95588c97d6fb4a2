package components

import (
	"context"
	"log/slog"
	"time"

	"salon-backend/internal/pkg/config"
	"salon-backend/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const jobTimeout = time.Minute

var JobModule = fx.Module("jobs",
	fx.Provide(newScheduler),
	fx.Invoke(registerJobs),
)

// cronLogger routes robfig/cron's own logging to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

func newScheduler(lc fx.Lifecycle, loc *time.Location, logger *slog.Logger) *cron.Cron {
	cl := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return c
}

func registerJobs(c *cron.Cron, cfg config.Config, notifications commands.NotificationCommands, logger *slog.Logger) error {
	if _, err := c.AddFunc(cfg.Notify.DispatchSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		res, err := notifications.DispatchDue(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "notification dispatch failed", "error", err)
			return
		}
		if res.Sent+res.Failed > 0 {
			logger.InfoContext(ctx, "notifications dispatched", "sent", res.Sent, "failed", res.Failed)
		}
	}); err != nil {
		return err
	}

	if _, err := c.AddFunc(cfg.Notify.ReminderSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		n, err := notifications.EnqueueReminders(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "reminder enqueue failed", "error", err)
			return
		}
		logger.InfoContext(ctx, "reminders enqueued", "count", n)
	}); err != nil {
		return err
	}
	return nil
}
