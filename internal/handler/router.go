package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salon-backend/internal/domain/account"
	"salon-backend/internal/handler/api"
	"salon-backend/internal/handler/middleware"
	"salon-backend/internal/infra/ratelimit"
	"salon-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
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

// Telemetry is the metrics surface the router needs.
type Telemetry interface {
	middleware.HTTPObserver
	Handler() http.Handler
}

type RouterDeps struct {
	Config  config.Config
	Logger  *middleware.Logger
	Auth    *middleware.AuthMiddleware
	Limiter ratelimit.Limiter
	Metrics Telemetry
}

func NewRouter(engine *gin.Engine, deps RouterDeps, h Handlers) {
	setupMiddleware(engine, deps)
	setupRoutes(engine, deps, h)
}

func setupMiddleware(engine *gin.Engine, deps RouterDeps) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(deps.Config.CORS))
	engine.Use(deps.Logger.LoggingMiddleware())
	if deps.Metrics != nil {
		engine.Use(middleware.Metrics(deps.Metrics))
	}
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NotFound())
}

func setupRoutes(engine *gin.Engine, deps RouterDeps, h Handlers) {
	engine.GET("/health", h.Health.Live)
	engine.GET("/ready", h.Health.Ready)
	if deps.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	am := deps.Auth
	authed := []gin.HandlerFunc{am.RequireAuth()}
	adminOnly := []gin.HandlerFunc{am.RequireAuth(), am.RequireRole(account.RoleAdmin)}
	staff := []gin.HandlerFunc{am.RequireAuth(), am.RequireRole(account.RoleManager, account.RoleAdmin)}

	limit := func(scope string) gin.HandlerFunc {
		return middleware.RateLimit(deps.Limiter, deps.Config.RateLimit, scope)
	}

	apiGroup := engine.Group("/api")
	// Public reads still see the caller so owners get their private fields.
	apiGroup.Use(am.OptionalAuth())
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{limit("login")}},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: authed},
		})

		addRoutes(apiGroup.Group("/customers"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Account.CreateCustomer, Mw: []gin.HandlerFunc{limit("signup")}},
			{Method: http.MethodGet, Path: "", Handler: h.Account.ListCustomers, Mw: authed},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Account.GetCustomer, Mw: authed},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Account.UpdateCustomer, Mw: authed},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Account.DeleteCustomer, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/:id/appointments", Handler: h.Appointment.ListForCustomer, Mw: authed},
		})

		addRoutes(apiGroup.Group("/stylists"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Account.CreateStylist, Mw: staff},
			{Method: http.MethodGet, Path: "", Handler: h.Account.ListStylists},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Account.GetStylist},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Account.UpdateStylist, Mw: authed},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Account.DeleteStylist, Mw: staff},
			{Method: http.MethodGet, Path: "/:id/appointments", Handler: h.Appointment.ListForStylist, Mw: authed},
			{Method: http.MethodGet, Path: "/:id/available-slots", Handler: h.Appointment.AvailableSlots},
			{Method: http.MethodGet, Path: "/:id/leave-balance", Handler: h.Leave.Balance, Mw: authed},
			{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListByStylist},
			{Method: http.MethodGet, Path: "/:id/rating", Handler: h.Review.StylistRating},
		})

		addRoutes(apiGroup.Group("/admins"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Account.CreateAdmin, Mw: adminOnly},
			{Method: http.MethodGet, Path: "", Handler: h.Account.ListAdmins, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Account.GetAdmin, Mw: adminOnly},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Account.UpdateAdmin, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Account.DeleteAdmin, Mw: adminOnly},
		})

		addRoutes(apiGroup.Group("/appointments"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Appointment.Book, Mw: []gin.HandlerFunc{am.RequireAuth(), limit("booking")}},
			{Method: http.MethodGet, Path: "", Handler: h.Appointment.List, Mw: authed},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Appointment.Get, Mw: authed},
			{Method: http.MethodPatch, Path: "/:id/confirm", Handler: h.Appointment.Confirm, Mw: authed},
			{Method: http.MethodPatch, Path: "/:id/complete", Handler: h.Appointment.Complete, Mw: authed},
			{Method: http.MethodPatch, Path: "/:id/cancel", Handler: h.Appointment.Cancel, Mw: authed},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Appointment.Delete, Mw: adminOnly},
		})

		addRoutes(apiGroup.Group("/leave-requests"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Leave.Apply, Mw: authed},
			{Method: http.MethodGet, Path: "", Handler: h.Leave.List, Mw: authed},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Leave.Get, Mw: authed},
			{Method: http.MethodPatch, Path: "/:id/approve", Handler: h.Leave.Approve, Mw: staff},
			{Method: http.MethodPatch, Path: "/:id/reject", Handler: h.Leave.Reject, Mw: staff},
			{Method: http.MethodPatch, Path: "/:id/withdraw", Handler: h.Leave.Withdraw, Mw: authed},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Leave.Delete, Mw: adminOnly},
		})

		addRoutes(apiGroup.Group("/branches"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Branch.Create, Mw: adminOnly},
			{Method: http.MethodGet, Path: "", Handler: h.Branch.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Branch.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Branch.Update, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Branch.Delete, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/:id/stylists", Handler: h.Account.ListBranchStylists},
		})

		addRoutes(apiGroup.Group("/holidays"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Branch.CreateHoliday, Mw: adminOnly},
			{Method: http.MethodGet, Path: "", Handler: h.Branch.ListHolidays},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Branch.DeleteHoliday, Mw: adminOnly},
		})

		addRoutes(apiGroup.Group("/services"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateService, Mw: staff},
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListServices},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetService},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Catalog.UpdateService, Mw: staff},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteService, Mw: staff},
			{Method: http.MethodPost, Path: "/:id/rates", Handler: h.Catalog.AddRate, Mw: staff},
			{Method: http.MethodGet, Path: "/:id/rates", Handler: h.Catalog.ListRates},
			{Method: http.MethodDelete, Path: "/:id/rates/:rateId", Handler: h.Catalog.DeleteRate, Mw: staff},
		})

		addRoutes(apiGroup.Group("/reviews"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Review.Create, Mw: authed},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Review.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Review.Update, Mw: authed},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete, Mw: authed},
		})

		addRoutes(apiGroup.Group("/transactions"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Transaction.Record, Mw: staff},
			{Method: http.MethodPost, Path: "/online", Handler: h.Transaction.StartOnline, Mw: authed},
			{Method: http.MethodGet, Path: "", Handler: h.Transaction.List, Mw: authed},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Transaction.Get, Mw: authed},
			{Method: http.MethodPatch, Path: "/:id/refund", Handler: h.Transaction.Refund, Mw: staff},
		})

		addRoutes(apiGroup.Group("/promotions"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Promotion.Create, Mw: staff},
			{Method: http.MethodGet, Path: "", Handler: h.Promotion.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Promotion.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Promotion.Replace, Mw: staff},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Promotion.Delete, Mw: staff},
		})

		addRoutes(apiGroup.Group("/discounts"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Discount.Create, Mw: adminOnly},
			{Method: http.MethodGet, Path: "", Handler: h.Discount.List, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/code/:code", Handler: h.Discount.CheckCode},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Discount.Get, Mw: adminOnly},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Discount.Replace, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Discount.Delete, Mw: adminOnly},
		})

		addRoutes(apiGroup.Group("/teams"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Team.Create, Mw: staff},
			{Method: http.MethodGet, Path: "", Handler: h.Team.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Team.Get},
			{Method: http.MethodGet, Path: "/:id/members", Handler: h.Team.Members},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Team.Update, Mw: staff},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Team.Delete, Mw: staff},
		})

		addRoutes(apiGroup.Group("/notifications"), []route{
			{Method: http.MethodGet, Path: "/failed", Handler: h.Notification.ListFailed, Mw: adminOnly},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw[:len(r.Mw):len(r.Mw)], r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
