package components

import (
	"salon-backend/internal/infra/readstore"
	"salon-backend/internal/infra/uow"
	"salon-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

// Write-side repositories are built per transaction by the unit of work, so only
// the read stores are provided here.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(readstore.NewAccountReadStore, fx.As(new(queries.AccountReadStore))),
		fx.Annotate(readstore.NewAppointmentReadStore, fx.As(new(queries.AppointmentReadStore))),
		fx.Annotate(readstore.NewLeaveReadStore, fx.As(new(queries.LeaveReadStore))),
		fx.Annotate(readstore.NewBranchReadStore, fx.As(new(queries.BranchReadStore))),
		fx.Annotate(readstore.NewHolidayReadStore, fx.As(new(queries.HolidayReadStore))),
		fx.Annotate(readstore.NewServiceReadStore, fx.As(new(queries.ServiceReadStore))),
		fx.Annotate(readstore.NewReviewReadStore, fx.As(new(queries.ReviewReadStore))),
		fx.Annotate(readstore.NewTransactionReadStore, fx.As(new(queries.TransactionReadStore))),
		fx.Annotate(readstore.NewPromotionReadStore, fx.As(new(queries.PromotionReadStore))),
		fx.Annotate(readstore.NewDiscountReadStore, fx.As(new(queries.DiscountReadStore))),
		fx.Annotate(readstore.NewTeamReadStore, fx.As(new(queries.TeamReadStore))),
		fx.Annotate(readstore.NewNotificationReadStore, fx.As(new(queries.NotificationReadStore))),
	),
)
