package commands

//go:generate mockgen -source=notification.go -destination=../../testutil/mock/commandsmock/notification.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"salon-backend/internal/domain/appointment"
	"salon-backend/internal/domain/notification"
	"salon-backend/internal/domain/schedule"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/pkg/config"
	"salon-backend/internal/pkg/errs"
	"salon-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNoSender = errs.New("no sender registered for notification kind")

type DispatchResult struct {
	Sent   int
	Failed int
}

type NotificationCommands interface {
	// DispatchDue sends one batch of due outbox jobs.
	DispatchDue(ctx context.Context) (DispatchResult, error)
	// EnqueueReminders queues reminders for tomorrow's confirmed appointments and returns how many.
	EnqueueReminders(ctx context.Context) (int, error)
}

type notificationCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	senders map[notification.Kind]shared.NotificationSender
	cfg     config.NotifyConfig
	loc     *time.Location
	metrics shared.Metrics
}

func NewNotificationCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	senders []shared.NotificationSender,
	cfg config.NotifyConfig,
	loc *time.Location,
	metrics shared.Metrics,
) NotificationCommands {
	byKind := make(map[notification.Kind]shared.NotificationSender, len(senders))
	for _, s := range senders {
		byKind[s.Kind()] = s
	}
	return &notificationCommandsImpl{
		uow:     uow,
		clock:   clk,
		senders: byKind,
		cfg:     cfg,
		loc:     loc,
		metrics: metrics,
	}
}

// DispatchDue leases a batch, sends it with no transaction open, then records
// each outcome. Delivery is at-least-once: a crash between send and record
// resends the job after its lease lapses.
func (uc *notificationCommandsImpl) DispatchDue(ctx context.Context) (DispatchResult, error) {
	var claimed []notification.Job
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, now, uc.cfg.BatchSize)
		if err != nil {
			return err
		}
		for i := range jobs {
			jobs[i].Lease(now, uc.cfg.Lease)
			if err := tx.Notifications().Update(ctx, jobs[i]); err != nil {
				return err
			}
		}
		claimed = jobs
		return nil
	})
	if err != nil {
		return DispatchResult{}, err
	}
	if len(claimed) == 0 {
		return DispatchResult{}, nil
	}

	for i := range claimed {
		uc.deliver(ctx, &claimed[i])
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, job := range claimed {
			if err := tx.Notifications().Update(ctx, job); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return DispatchResult{}, errs.Wrap(err, "record notification outcomes")
	}

	var res DispatchResult
	for _, job := range claimed {
		ok := job.Status == notification.StatusSent
		if ok {
			res.Sent++
		} else {
			res.Failed++
		}
		uc.metrics.NotificationDelivered(string(job.Kind), ok)
	}
	return res, nil
}

func (uc *notificationCommandsImpl) deliver(ctx context.Context, job *notification.Job) {
	sender, ok := uc.senders[job.Kind]
	var err error
	if !ok {
		err = errs.Wrapf(ErrNoSender, "kind %s", job.Kind)
	} else {
		err = sender.Send(ctx, *job)
	}

	now := uc.clock.Now()
	if err == nil {
		job.MarkSent(now)
		return
	}
	job.MarkAttemptFailed(err, now, uc.cfg.RetryBase, uc.cfg.MaxAttempts)
	slog.WarnContext(ctx, "notification attempt failed",
		"job_id", job.ID,
		"kind", job.Kind,
		"topic", job.Topic,
		"attempts", job.Attempts,
		"status", job.Status,
		"error", err,
	)
}

func (uc *notificationCommandsImpl) EnqueueReminders(ctx context.Context) (int, error) {
	now := uc.clock.Now()
	tomorrow := schedule.DateOf(now.In(uc.loc)).AddDays(1)
	from, to := tomorrow.In(uc.loc), tomorrow.AddDays(1).In(uc.loc)

	var count int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count = 0
		appts, err := tx.Appointments().ListByStatusBetween(ctx, appointment.StatusConfirmed, from, to)
		if err != nil {
			return err
		}

		zones := make(map[uuid.UUID]*time.Location)
		for _, a := range appts {
			loc, ok := zones[a.BranchID()]
			if !ok {
				b, err := tx.Branches().FindByID(ctx, a.BranchID())
				if err != nil {
					return orNotFound(err, ErrBranchNotFound)
				}
				loc = b.Location()
				zones[a.BranchID()] = loc
			}
			customer, err := tx.Accounts().FindByID(ctx, a.CustomerID())
			if err != nil {
				return orNotFound(err, ErrCustomerNotFound)
			}
			jobs, err := appointmentNotices(notification.TopicAppointmentReminder, a, customer, loc, now)
			if err != nil {
				return err
			}
			if err := tx.Notifications().Enqueue(ctx, jobs...); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	slog.InfoContext(ctx, "reminders enqueued", "date", tomorrow.String(), "appointments", count)
	return count, nil
}
