package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"loyalty-engine/internal/domain/user"
	"loyalty-engine/internal/handler/api"
	"loyalty-engine/internal/handler/middleware"
	"loyalty-engine/internal/pkg/config"
	"loyalty-engine/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Benefit  *api.BenefitHandler
	Client   *api.ClientHandler
	Order    *api.OrderHandler
	Settings *api.SettingsHandler
}

type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	Logger    *middleware.Logger
	RateLimit *middleware.IPRateLimiter
	Metrics   *metrics.Collector
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(mw.Metrics))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(mw.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := mw.Auth
	can := auth.RequirePermission
	limited := mw.RateLimit.Middleware()

	v1 := engine.Group("/api/v1")
	v1.Use(auth.RequireAuth())

	benefits := v1.Group("/benefits")
	{
		addRoutes(benefits, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Benefit.List, Mw: []gin.HandlerFunc{can(user.PermViewBenefits)}},
			{Method: http.MethodGet, Path: "/type/:type", Handler: h.Benefit.ListByType, Mw: []gin.HandlerFunc{can(user.PermViewBenefits)}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Benefit.Get, Mw: []gin.HandlerFunc{can(user.PermViewBenefits)}},
			{Method: http.MethodGet, Path: "/available/:points", Handler: h.Benefit.Available, Mw: []gin.HandlerFunc{can(user.PermViewBenefits)}},
			{Method: http.MethodPost, Path: "", Handler: h.Benefit.Create, Mw: []gin.HandlerFunc{can(user.PermManageBenefits), limited}},
			{Method: http.MethodPost, Path: "/check-duplicate", Handler: h.Benefit.CheckDuplicate, Mw: []gin.HandlerFunc{can(user.PermManageBenefits)}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Benefit.Delete, Mw: []gin.HandlerFunc{can(user.PermManageBenefits), limited}},
		})
	}

	client := v1.Group("/client")
	client.Use(can(user.PermViewOwnAccount))
	{
		addRoutes(client, []route{
			{Method: http.MethodGet, Path: "/points", Handler: h.Client.Points},
			{Method: http.MethodGet, Path: "/profile", Handler: h.Client.Profile},
			{Method: http.MethodGet, Path: "/points/transactions", Handler: h.Client.Transactions},
			{Method: http.MethodGet, Path: "/points/history", Handler: h.Client.Transactions},
			{Method: http.MethodGet, Path: "/orders", Handler: h.Client.Orders},
			{Method: http.MethodGet, Path: "/benefits", Handler: h.Client.Benefits},
		})
	}

	clients := v1.Group("/clients")
	clients.Use(can(user.PermViewClientPoints))
	{
		addRoutes(clients, []route{
			{Method: http.MethodGet, Path: "/:id/benefits/available", Handler: h.Benefit.AvailableForClient},
		})
	}

	orders := v1.Group("/orders")
	orders.Use(can(user.PermManageOrders))
	{
		addRoutes(orders, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Order.Create, Mw: []gin.HandlerFunc{limited}},
			{Method: http.MethodPost, Path: "/close", Handler: h.Order.Close, Mw: []gin.HandlerFunc{limited}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
		})
	}

	settings := v1.Group("/settings")
	{
		addRoutes(settings, []route{
			{Method: http.MethodGet, Path: "/points-conversion", Handler: h.Settings.GetConversionRate, Mw: []gin.HandlerFunc{can(user.PermViewConversion)}},
			{Method: http.MethodPut, Path: "/points-conversion", Handler: h.Settings.UpdateConversionRate, Mw: []gin.HandlerFunc{can(user.PermManageConversion), limited}},
			{Method: http.MethodGet, Path: "/points_conversion_rate/history", Handler: h.Settings.ConversionRateHistory, Mw: []gin.HandlerFunc{can(user.PermManageConversion)}},
		})
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
