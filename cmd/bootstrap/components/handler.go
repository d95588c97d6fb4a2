package components

import (
	"database/sql"

	"salon-backend/internal/handler"
	"salon-backend/internal/handler/api"
	"salon-backend/internal/handler/middleware"
	"salon-backend/internal/infra/ratelimit"
	"salon-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAccountHandler,
		api.NewAppointmentHandler,
		api.NewLeaveHandler,
		api.NewBranchHandler,
		api.NewCatalogHandler,
		api.NewReviewHandler,
		api.NewTransactionHandler,
		api.NewPromotionHandler,
		api.NewDiscountHandler,
		api.NewTeamHandler,
		api.NewNotificationHandler,
		func(db *sql.DB) *api.HealthHandler { return api.NewHealthHandler(db) },
		middleware.NewAuthMiddleware,
		newRouterDeps,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newRouterDeps(
	cfg config.Config,
	logger *middleware.Logger,
	auth *middleware.AuthMiddleware,
	limiter ratelimit.Limiter,
	metrics handler.Telemetry,
) handler.RouterDeps {
	return handler.RouterDeps{
		Config:  cfg,
		Logger:  logger,
		Auth:    auth,
		Limiter: limiter,
		Metrics: metrics,
	}
}

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Account      *api.AccountHandler
	Appointment  *api.AppointmentHandler
	Leave        *api.LeaveHandler
	Branch       *api.BranchHandler
	Catalog      *api.CatalogHandler
	Review       *api.ReviewHandler
	Transaction  *api.TransactionHandler
	Promotion    *api.PromotionHandler
	Discount     *api.DiscountHandler
	Team         *api.TeamHandler
	Notification *api.NotificationHandler
	Health       *api.HealthHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:         p.Auth,
		Account:      p.Account,
		Appointment:  p.Appointment,
		Leave:        p.Leave,
		Branch:       p.Branch,
		Catalog:      p.Catalog,
		Review:       p.Review,
		Transaction:  p.Transaction,
		Promotion:    p.Promotion,
		Discount:     p.Discount,
		Team:         p.Team,
		Notification: p.Notification,
		Health:       p.Health,
	}
}
