package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotelier/internal/domain/user"
	"hotelier/internal/handler/api"
	"hotelier/internal/handler/middleware"
	"hotelier/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Room        *api.RoomHandler
	Guest       *api.GuestHandler
	Reservation *api.ReservationHandler
	Billing     *api.BillingHandler
	Catalog     *api.CatalogHandler
	Message     *api.MessageHandler
	Dashboard   *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireStaff := authMiddleware.RequireStaff()
	// Voiding rewrites the books; receptionists record payments but cannot undo them.
	requireAccounting := authMiddleware.RequireRole(user.RoleAccountant, user.RoleManager, user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(requireAuth)
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.List},
				{Method: http.MethodGet, Path: "/available", Handler: h.Room.ListAvailable},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Room.Create, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Room.Update, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Room.OverrideStatus, Mw: []gin.HandlerFunc{requireStaff}},
			})
		}

		roomTypes := apiGroup.Group("/room-types")
		roomTypes.Use(requireAuth)
		{
			addRoutes(roomTypes, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.ListTypes},
				{Method: http.MethodPost, Path: "", Handler: h.Room.CreateType, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Room.UpdateType, Mw: []gin.HandlerFunc{requireStaff}},
			})
		}

		guests := apiGroup.Group("/guests")
		guests.Use(requireAuth)
		{
			addRoutes(guests, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Guest.Get},
				{Method: http.MethodGet, Path: "", Handler: h.Guest.Search, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodPost, Path: "", Handler: h.Guest.Create, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Guest.Update, Mw: []gin.HandlerFunc{requireStaff}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(requireAuth)
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Reservation.Transition},
			})
		}

		invoices := apiGroup.Group("/invoices")
		invoices.Use(requireAuth)
		{
			addRoutes(invoices, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Billing.Get},
				{Method: http.MethodGet, Path: "", Handler: h.Billing.List, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodPost, Path: "", Handler: h.Billing.Issue, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodPost, Path: "/:id/payments", Handler: h.Billing.RecordPayment, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodPost, Path: "/:id/void", Handler: h.Billing.Void, Mw: []gin.HandlerFunc{requireAccounting}},
			})
		}

		services := apiGroup.Group("/services")
		services.Use(requireAuth)
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListServices},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetService},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateService, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateService, Mw: []gin.HandlerFunc{requireStaff}},
			})
		}

		contracts := apiGroup.Group("/contracts")
		contracts.Use(requireAuth)
		{
			addRoutes(contracts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateContract},
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListContracts},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetContract},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Catalog.TransitionContract, Mw: []gin.HandlerFunc{requireStaff}},
			})
		}

		messages := apiGroup.Group("/messages")
		messages.Use(requireAuth)
		{
			addRoutes(messages, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Message.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Message.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Message.Get},
				{Method: http.MethodPost, Path: "/:id/reply", Handler: h.Message.Reply, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodPost, Path: "/:id/close", Handler: h.Message.Close, Mw: []gin.HandlerFunc{requireStaff}},
			})
		}

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(requireAuth, requireStaff)
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "/summary", Handler: h.Dashboard.Summary},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
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
