package components

import (
	"context"

	"loyalty-engine/internal/handler"
	"loyalty-engine/internal/handler/api"
	"loyalty-engine/internal/handler/middleware"
	"loyalty-engine/internal/pkg/clock"
	"loyalty-engine/internal/pkg/config"
	"loyalty-engine/internal/pkg/metrics"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBenefitHandler,
		api.NewClientHandler,
		api.NewOrderHandler,
		api.NewSettingsHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) *middleware.IPRateLimiter {
	limiter := middleware.NewIPRateLimiter(cfg.RateLimit, clk)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go limiter.Run(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return limiter
}

func NewHandlers(
	benefit *api.BenefitHandler,
	client *api.ClientHandler,
	order *api.OrderHandler,
	settings *api.SettingsHandler,
) handler.Handlers {
	return handler.Handlers{
		Benefit:  benefit,
		Client:   client,
		Order:    order,
		Settings: settings,
	}
}

func NewMiddlewares(
	auth *middleware.AuthMiddleware,
	logger *middleware.Logger,
	limiter *middleware.IPRateLimiter,
	collector *metrics.Collector,
) handler.Middlewares {
	return handler.Middlewares{
		Auth:      auth,
		Logger:    logger,
		RateLimit: limiter,
		Metrics:   collector,
	}
}
