package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/joshuarp/settlement-engine/internal/handlers"
	"github.com/joshuarp/settlement-engine/internal/services"
	"github.com/joshuarp/settlement-engine/internal/shared/config"
	sharedidempotency "github.com/joshuarp/settlement-engine/internal/shared/idempotency"
)

// OpsModule serves the operator API under /api/v1.
func OpsModule() fx.Option {
	return fx.Module("ops",
		fx.Provide(
			fx.Annotate(
				provideOpsRateLimiter,
				fx.ResultTags(`name:"ops_rate_limiter"`),
			),
			fx.Annotate(
				sharedidempotency.NewSQLXStore,
				fx.ResultTags(`name:"ops_idempotency_store"`),
				fx.As(new(sharedidempotency.Store)),
			),
			fx.Annotate(
				provideSettlementOperationsService,
				fx.As(new(handlers.SettlementOperationsService)),
			),
			handlers.NewProcessDueHandler,
			handlers.NewWithdrawalDetailHandler,
			handlers.NewWithdrawalReattachHandler,
			handlers.NewWithdrawalAbandonHandler,
		),
		fx.Invoke(registerOpsRoutes),
	)
}

func provideSettlementOperationsService(
	processor services.DueProcessor,
	repo services.SettlementRepository,
	registry services.ChainRegistry,
	tracker services.Tracker,
	metrics *services.SettlementMetrics,
	logger *slog.Logger,
	cfg config.ConfigProvider,
) *services.SettlementOperationsService {
	return services.NewSettlementOperationsService(processor, repo, registry, tracker, metrics, logger, services.OperationsOptions{
		BroadcastStuckAfter: cfg.GetDuration("settlement.broadcast_stuck_after"),
	})
}
