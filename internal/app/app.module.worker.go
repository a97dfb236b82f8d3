package app

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/joshuarp/settlement-engine/internal/domain/vo"
	"github.com/joshuarp/settlement-engine/internal/repository"
	"github.com/joshuarp/settlement-engine/internal/services"
	"github.com/joshuarp/settlement-engine/internal/shared/config"
	"github.com/joshuarp/settlement-engine/internal/shared/publisher"
	"github.com/joshuarp/settlement-engine/internal/shared/scheduler"
)

// WorkerModule is the Driver: it schedules ProcessDue per chain, tracker
// resume, stale-state recovery and the ledger credit outbox relay.
func WorkerModule() fx.Option {
	return fx.Module("worker",
		fx.Provide(
			fx.Annotate(
				repository.NewLedgerOutboxRepository,
				fx.As(new(services.LedgerOutboxRepository)),
			),
			provideLedgerPublisher,
			provideLedgerOutboxRelay,
			scheduler.New,
		),
		fx.Invoke(registerSettlementJobs),
	)
}

func relayOptions(cfg config.ConfigProvider) services.RelayOptions {
	return services.RelayOptions{
		BatchSize: cfg.GetInt("outbox.batch_size"),
		Lease:     cfg.GetDuration("outbox.lease"),
	}
}

func provideLedgerOutboxRelay(
	repo services.LedgerOutboxRepository,
	pub publisher.Publisher,
	metrics *services.SettlementMetrics,
	logger *slog.Logger,
	cfg config.ConfigProvider,
) *services.LedgerOutboxRelay {
	return services.NewLedgerOutboxRelay(repo, pub, metrics, logger, relayOptions(cfg))
}

type settlementRunner interface {
	ProcessDue(ctx context.Context, chainID string) (vo.ProcessSummary, error)
	ResumeAwaiting(ctx context.Context, chainID string) (int, error)
	RecoverStale(ctx context.Context, chainID string) error
}

type creditRelay interface {
	RelayPending(ctx context.Context) (vo.RelaySummary, error)
}

type settlementJob struct {
	name string
	spec string
	run  scheduler.Job
}

// settlementJobs builds one process, resume and recover job per chain plus a
// single outbox job. The orchestrator bounds each ProcessDue tick itself.
func settlementJobs(cfg config.ConfigProvider, chainIDs []string, runner settlementRunner, relay creditRelay, logger *slog.Logger) []settlementJob {
	jobs := make([]settlementJob, 0, len(chainIDs)*3+1)
	for _, chainID := range chainIDs {
		jobs = append(jobs,
			settlementJob{
				name: "process:" + chainID,
				spec: cfg.GetString("settlement.schedule.process"),
				run: func(ctx context.Context) error {
					summary, err := runner.ProcessDue(ctx, chainID)
					if err != nil {
						return err
					}
					if summary.Claimed > 0 {
						logger.Info("process due completed",
							"chain_id", chainID,
							"claimed", summary.Claimed,
							"broadcast", summary.Broadcast,
							"retried", summary.Retried,
							"failed", summary.Failed,
							"skipped", summary.Skipped,
							"unpersisted", summary.Unpersisted,
						)
					}
					return nil
				},
			},
			settlementJob{
				name: "resume:" + chainID,
				spec: cfg.GetString("settlement.schedule.resume"),
				run: func(ctx context.Context) error {
					_, err := runner.ResumeAwaiting(ctx, chainID)
					return err
				},
			},
			settlementJob{
				name: "recover:" + chainID,
				spec: cfg.GetString("settlement.schedule.recover"),
				run: func(ctx context.Context) error {
					return runner.RecoverStale(ctx, chainID)
				},
			},
		)
	}

	jobs = append(jobs, settlementJob{
		name: "outbox:ledger_credit",
		spec: cfg.GetString("settlement.schedule.outbox"),
		run: func(ctx context.Context) error {
			_, err := relay.RelayPending(ctx)
			return err
		},
	})
	return jobs
}

type settlementJobsIn struct {
	fx.In

	Lifecycle    fx.Lifecycle
	Config       config.ConfigProvider
	Logger       *slog.Logger
	Scheduler    *scheduler.Scheduler
	Registry     services.ChainRegistry
	Orchestrator *services.SettlementOrchestrator
	Relay        *services.LedgerOutboxRelay
}

func registerSettlementJobs(in settlementJobsIn) error {
	for _, job := range settlementJobs(in.Config, in.Registry.ChainIDs(), in.Orchestrator, in.Relay, in.Logger) {
		if err := in.Scheduler.Register(job.name, job.spec, job.run); err != nil {
			return err
		}
	}

	in.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			in.Scheduler.Start()
			return nil
		},
		OnStop: in.Scheduler.Stop,
	})
	return nil
}
