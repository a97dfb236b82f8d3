package app

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/joshuarp/settlement-engine/internal/domain/vo"
	"github.com/joshuarp/settlement-engine/internal/repository"
	"github.com/joshuarp/settlement-engine/internal/services"
	"github.com/joshuarp/settlement-engine/internal/shared/config"
	"github.com/joshuarp/settlement-engine/internal/shared/uid"
)

// EngineModule holds what both the worker and the ops API need: chain
// adapters, the order repository, the confirmation tracker and the
// orchestrator that finalizes tracked outcomes.
func EngineModule() fx.Option {
	return fx.Module("engine",
		fx.Provide(
			fx.Annotate(
				provideRPCRateLimiter,
				fx.ResultTags(`name:"rpc_rate_limiter"`),
			),
			fx.Annotate(
				provideChainRegistry,
				fx.As(new(services.ChainRegistry)),
			),
			provideUIDGenerator,
			services.NewSettlementMetrics,
			fx.Annotate(
				repository.NewSettlementOrderRepository,
				fx.As(new(services.SettlementRepository)),
			),
			fx.Annotate(
				provideConfirmationTracker,
				fx.As(new(services.Tracker)),
			),
			provideSettlementOrchestrator,
			func(orchestrator *services.SettlementOrchestrator) services.DueProcessor {
				return orchestrator
			},
		),
		fx.Invoke(registerEngineLifecycle),
	)
}

func provideUIDGenerator(cfg config.ConfigProvider) (uid.UIDGenerator, error) {
	return uid.New(uid.Options{
		Strategy: uid.Strategy(cfg.GetString("uid.strategy")),
		NodeID:   cfg.GetInt64("uid.node_id"),
		Prefix:   cfg.GetString("uid.prefix"),
	})
}

func trackerOptions(cfg config.ConfigProvider) services.TrackerOptions {
	return services.TrackerOptions{
		MinPollInterval: cfg.GetDuration("settlement.min_poll_interval"),
		MaxPollInterval: cfg.GetDuration("settlement.max_poll_interval"),
		SafetyFactor:    cfg.GetInt("settlement.timeout_safety_factor"),
		RPCTimeout:      cfg.GetDuration("settlement.rpc_timeout"),
	}
}

func orchestratorOptions(cfg config.ConfigProvider) services.OrchestratorOptions {
	return services.OrchestratorOptions{
		PoolSize:  cfg.GetInt("settlement.pool_size"),
		BatchSize: cfg.GetInt("settlement.batch_size"),
		Retry: vo.RetryPolicy{
			MaxRetries:  cfg.GetInt("settlement.max_retries"),
			BaseBackoff: cfg.GetDuration("settlement.retry_backoff"),
			MaxBackoff:  cfg.GetDuration("settlement.max_retry_backoff"),
		},
		TickTimeout:         cfg.GetDuration("settlement.tick_timeout"),
		ClaimTTL:            cfg.GetDuration("settlement.claim_ttl"),
		BroadcastStuckAfter: cfg.GetDuration("settlement.broadcast_stuck_after"),
		RPCTimeout:          cfg.GetDuration("settlement.rpc_timeout"),
	}
}

func provideConfirmationTracker(
	registry services.ChainRegistry,
	metrics *services.SettlementMetrics,
	logger *slog.Logger,
	cfg config.ConfigProvider,
) *services.ConfirmationTracker {
	return services.NewConfirmationTracker(registry, metrics, logger, trackerOptions(cfg))
}

func provideSettlementOrchestrator(
	repo services.SettlementRepository,
	registry services.ChainRegistry,
	tracker services.Tracker,
	metrics *services.SettlementMetrics,
	logger *slog.Logger,
	cfg config.ConfigProvider,
) (*services.SettlementOrchestrator, error) {
	opts := orchestratorOptions(cfg)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return services.NewSettlementOrchestrator(repo, registry, tracker, metrics, logger, opts), nil
}

type engineLifecycleIn struct {
	fx.In

	Lifecycle    fx.Lifecycle
	Orchestrator *services.SettlementOrchestrator
	Logger       *slog.Logger
}

// registerEngineLifecycle resumes tracking of in-flight attempts on start.
// On stop the tracker halts first and the outcomes it already produced are
// finalized before the database closes.
func registerEngineLifecycle(in engineLifecycleIn) {
	in.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			in.Orchestrator.Start(ctx)
			in.Logger.Info("settlement engine started")
			return nil
		},
		OnStop: func(_ context.Context) error {
			in.Orchestrator.Stop()
			in.Logger.Info("settlement engine stopped")
			return nil
		},
	})
}
