package components

import (
	"time"

	"salon-backend/internal/domain/leave"
	"salon-backend/internal/pkg/clock"
	"salon-backend/internal/pkg/config"
	"salon-backend/internal/usecase/commands"
	"salon-backend/internal/usecase/queries"
	"salon-backend/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAccountCommands,
		commands.NewAppointmentCommands,
		newLeaveCommands,
		newBranchCommands,
		commands.NewCatalogCommands,
		commands.NewReviewCommands,
		commands.NewTransactionCommands,
		commands.NewPromotionCommands,
		commands.NewDiscountCommands,
		commands.NewTeamCommands,
		newNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAccountQueries,
		queries.NewAppointmentQueries,
		queries.NewAvailabilityQueries,
		queries.NewLeaveQueries,
		queries.NewBranchQueries,
		queries.NewCatalogQueries,
		queries.NewReviewQueries,
		queries.NewTransactionQueries,
		queries.NewPromotionQueries,
		queries.NewDiscountQueries,
		queries.NewTeamQueries,
		queries.NewNotificationQueries,
	),
)

func newLeaveCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.LeaveCommands {
	return commands.NewLeaveCommands(uow, clk, leave.Allotment{
		Paid:   cfg.Leave.DefaultPaidDays,
		Unpaid: cfg.Leave.DefaultUnpaidDays,
	})
}

func newBranchCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.BranchCommands {
	return commands.NewBranchCommands(uow, clk, cfg.App.TimeZone)
}

type notificationParams struct {
	fx.In

	UoW     shared.UnitOfWork
	Clock   clock.Clock
	Config  config.Config
	Loc     *time.Location
	Metrics shared.Metrics
	Senders []shared.NotificationSender `group:"senders"`
}

func newNotificationCommands(p notificationParams) commands.NotificationCommands {
	return commands.NewNotificationCommands(p.UoW, p.Clock, p.Senders, p.Config.Notify, p.Loc, p.Metrics)
}
