package app

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/joshuarp/settlement-engine/internal/handlers"
	"github.com/joshuarp/settlement-engine/internal/middlewares"
	"github.com/joshuarp/settlement-engine/internal/shared/config"
	sharedidempotency "github.com/joshuarp/settlement-engine/internal/shared/idempotency"
	sharedjwt "github.com/joshuarp/settlement-engine/internal/shared/jwt"
	sharedratelimit "github.com/joshuarp/settlement-engine/internal/shared/ratelimit"
)

type routerGroupsOut struct {
	fx.Out
	Protected fiber.Router `name:"api_protected"`
}

func provideRouterGroups(
	app *fiber.App,
	cfg config.ConfigProvider,
	logger *slog.Logger,
	gatherer prometheus.Gatherer,
	tokenManager sharedjwt.TokenManager,
) routerGroupsOut {
	app.Use(middlewares.NewHTTPRecoveryMiddleware(logger))
	app.Use(middlewares.NewHTTPRequestIDMiddleware())
	app.Use(middlewares.NewHTTPCORSMiddleware(splitList(cfg.GetString("server.cors_allow_origins"))))
	app.Use(middlewares.NewHTTPRequestResponseLogMiddleware(logger))

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := app.Group("/api/v1")
	protected := api.Group("", middlewares.NewHTTPJWTMiddleware(tokenManager, sharedjwt.ScopeOperate))

	return routerGroupsOut{
		Protected: protected,
	}
}

type opsRoutesIn struct {
	fx.In
	Protected        fiber.Router            `name:"api_protected"`
	IdempotencyStore sharedidempotency.Store `name:"ops_idempotency_store"`
	RateLimiter      sharedratelimit.Limiter `name:"ops_rate_limiter"`
	Logger           *slog.Logger

	ProcessDue *handlers.ProcessDueHandler
	Detail     *handlers.WithdrawalDetailHandler
	Reattach   *handlers.WithdrawalReattachHandler
	Abandon    *handlers.WithdrawalAbandonHandler
}

func registerOpsRoutes(in opsRoutesIn) {
	rateLimitMiddleware := middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
		Limiter:      in.RateLimiter,
		Logger:       in.Logger,
		Skipper:      middlewares.SkipHealthChecks,
		KeyExtractor: middlewares.PerOperatorKeyExtractor("ops"),
	})

	opsRouter := in.Protected.Group("", rateLimitMiddleware)
	in.Detail.Register(opsRouter)
	in.ProcessDue.Register(opsRouter)

	idempotency := middlewares.NewHTTPIdempotencyMiddleware(in.IdempotencyStore, in.Logger)
	in.Reattach.Register(opsRouter, idempotency)
	in.Abandon.Register(opsRouter, idempotency)
}
