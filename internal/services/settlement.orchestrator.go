package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"

	"github.com/joshuarp/settlement-engine/internal/chains"
	"github.com/joshuarp/settlement-engine/internal/domain"
	"github.com/joshuarp/settlement-engine/internal/domain/vo"
)

type OrchestratorOptions struct {
	// PoolSize bounds concurrent orders per ProcessDue call.
	PoolSize int

	// BatchSize is the ClaimDue limit.
	BatchSize int

	Retry vo.RetryPolicy

	// TickTimeout bounds one ProcessDue call, from claim to the last
	// broadcast. ClaimTTL must leave room for it.
	TickTimeout time.Duration

	ClaimTTL            time.Duration
	BroadcastStuckAfter time.Duration
	RPCTimeout          time.Duration
}

func (o OrchestratorOptions) withDefaults() OrchestratorOptions {
	if o.PoolSize <= 0 {
		o.PoolSize = 5
	}
	if o.BatchSize <= 0 {
		o.BatchSize = 20
	}
	if o.ClaimTTL <= 0 {
		o.ClaimTTL = 5 * time.Minute
	}
	if o.BroadcastStuckAfter <= 0 {
		o.BroadcastStuckAfter = 10 * time.Minute
	}
	if o.RPCTimeout <= 0 {
		o.RPCTimeout = 15 * time.Second
	}
	if o.TickTimeout <= 0 {
		o.TickTimeout = 2 * time.Minute
	}
	return o
}

// Validate rejects a claim TTL that a slow but live ProcessDue could outrun.
// Released claims are fenced by their token either way; this keeps healthy
// workers from losing their claims.
func (o OrchestratorOptions) Validate() error {
	o = o.withDefaults()
	if o.ClaimTTL < 2*o.TickTimeout {
		return fmt.Errorf("settlement: claim_ttl %s must be at least twice tick_timeout %s", o.ClaimTTL, o.TickTimeout)
	}
	if o.TickTimeout <= o.RPCTimeout {
		return fmt.Errorf("settlement: tick_timeout %s must exceed rpc_timeout %s", o.TickTimeout, o.RPCTimeout)
	}
	return nil
}

type orderResult int

const (
	resultSkipped orderResult = iota
	resultBroadcast
	resultRetried
	resultFailed
	resultUnpersisted
)

// SettlementOrchestrator drives claimed orders to AwaitingConfirmation and
// finalizes them from the tracker's outcomes. It is safe to call ProcessDue
// concurrently, for the same chain or different ones: ClaimDue guarantees
// each order is handed to exactly one caller.
type SettlementOrchestrator struct {
	repo    SettlementRepository
	chains  ChainRegistry
	tracker Tracker
	metrics *SettlementMetrics
	logger  *slog.Logger
	opts    OrchestratorOptions
	now     func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSettlementOrchestrator(
	repo SettlementRepository,
	registry ChainRegistry,
	tracker Tracker,
	metrics *SettlementMetrics,
	logger *slog.Logger,
	opts OrchestratorOptions,
) *SettlementOrchestrator {
	if logger == nil {
		logger = slog.Default()
	}

	return &SettlementOrchestrator{
		repo:    repo,
		chains:  registry,
		tracker: tracker,
		metrics: metrics,
		logger:  logger.With("component", "settlement_orchestrator"),
		opts:    opts.withDefaults(),
		now:     time.Now,
	}
}

// ProcessDue claims a batch of due orders for chainID and runs each one up to
// AwaitingConfirmation on a bounded pool. A failing or panicking order never
// affects the others. The whole call is bounded by TickTimeout.
func (o *SettlementOrchestrator) ProcessDue(ctx context.Context, chainID string) (vo.ProcessSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, o.opts.TickTimeout)
	defer cancel()

	started := time.Now()
	defer func() { o.metrics.ObserveProcessDue(chainID, time.Since(started)) }()

	summary := vo.ProcessSummary{ChainID: chainID}

	adapter, err := o.chains.Adapter(chainID)
	if err != nil {
		return summary, err
	}
	cfg, err := o.chains.Config(chainID)
	if err != nil {
		return summary, err
	}

	orders, err := o.repo.ClaimDue(ctx, chainID, o.opts.BatchSize)
	if err != nil {
		return summary, fmt.Errorf("claim due orders for %s: %w", chainID, err)
	}
	summary.Claimed = len(orders)
	if len(orders) == 0 {
		return summary, nil
	}
	o.metrics.OrdersClaimed(chainID, len(orders))

	p := pool.NewWithResults[orderResult]().WithMaxGoroutines(o.opts.PoolSize)
	for _, order := range orders {
		p.Go(func() orderResult {
			return o.settleIsolated(ctx, adapter, cfg, order)
		})
	}

	for _, result := range p.Wait() {
		switch result {
		case resultBroadcast:
			summary.Broadcast++
		case resultRetried:
			summary.Retried++
		case resultFailed:
			summary.Failed++
		case resultUnpersisted:
			summary.Unpersisted++
		default:
			summary.Skipped++
		}
	}

	o.logger.Info("processed due orders",
		"chain_id", chainID,
		"claimed", summary.Claimed,
		"broadcast", summary.Broadcast,
		"retried", summary.Retried,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
		"unpersisted", summary.Unpersisted,
	)
	return summary, nil
}

func (o *SettlementOrchestrator) settleIsolated(ctx context.Context, adapter chains.Adapter, cfg domain.ChainConfig, order domain.WithdrawalOrder) orderResult {
	result := resultSkipped

	var catcher panics.Catcher
	catcher.Try(func() {
		result = o.settle(ctx, adapter, cfg, order)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		o.logger.Error("order settlement panicked",
			"chain_id", order.ChainID,
			"order_id", order.ID,
			"error", recovered.AsError(),
		)
		return resultSkipped
	}

	return result
}

// settle is phase one for a single claimed order: validate, check the hot
// wallet, broadcast, and persist the attempt before handing it to the tracker.
func (o *SettlementOrchestrator) settle(ctx context.Context, adapter chains.Adapter, cfg domain.ChainConfig, order domain.WithdrawalOrder) orderResult {
	log := o.logger.With("chain_id", order.ChainID, "order_id", order.ID)

	intent := vo.TransferIntent{
		OrderID: order.ID,
		To:      order.Destination,
		Amount:  order.Amount,
		Asset:   order.Asset,
	}

	if order.Amount == nil || order.Amount.Sign() <= 0 {
		return o.fail(ctx, log, order, domain.OrderStatusClaimed, vo.ReasonInvalidAmount)
	}
	if err := adapter.ValidateAddress(order.Destination); err != nil {
		log.Warn("destination rejected", "error", err)
		return o.fail(ctx, log, order, domain.OrderStatusClaimed, vo.ReasonInvalidAddress)
	}

	rpcCtx, cancel := context.WithTimeout(ctx, o.opts.RPCTimeout)
	defer cancel()

	fee, err := adapter.EstimateFee(rpcCtx, intent)
	if err != nil {
		return o.handleError(ctx, log, order, domain.OrderStatusClaimed, err)
	}

	if err := o.checkHotWallet(rpcCtx, adapter, cfg, intent, fee); err != nil {
		if errors.Is(err, vo.ErrInsufficientHotWalletBalance) {
			log.Warn("hot wallet cannot cover transfer", "error", err)
		}
		return o.handleError(ctx, log, order, domain.OrderStatusClaimed, err)
	}

	if err := o.repo.MarkBroadcasting(ctx, order.Claim()); err != nil {
		if errors.Is(err, vo.ErrStaleTransition) {
			log.Debug("order no longer claimed", "error", err)
		} else {
			log.Error("mark broadcasting failed", "error", err)
		}
		return resultSkipped
	}

	txHash, err := adapter.Broadcast(rpcCtx, intent, fee)
	if err != nil {
		o.metrics.Broadcast(order.ChainID, "error")
		log.Warn("broadcast failed", "error", err)
		return o.handleError(ctx, log, order, domain.OrderStatusBroadcasting, err)
	}
	o.metrics.Broadcast(order.ChainID, "ok")

	broadcastAt := o.now().UTC()
	log = log.With("tx_hash", txHash)

	// The transaction is on the wire; the attempt must be written even if
	// the caller has given up.
	persistCtx, cancelPersist := context.WithTimeout(context.WithoutCancel(ctx), o.opts.RPCTimeout)
	defer cancelPersist()

	attempt, err := o.repo.RecordAttempt(persistCtx, order.ID, txHash, fee.FeeCeiling, broadcastAt)
	if err != nil {
		log.Error("broadcast transaction not persisted, order needs operator reattach", "error", err)
		return resultUnpersisted
	}

	log.Info("transfer broadcast",
		"attempt_seq", attempt.AttemptSeq,
		"asset", order.Asset.Symbol,
		"amount", displayAmount(order.Amount, order.Asset.Decimals),
	)

	o.tracker.Track(vo.TrackRequest{
		OrderID:     order.ID,
		AttemptSeq:  attempt.AttemptSeq,
		ChainID:     order.ChainID,
		TxHash:      txHash,
		BroadcastAt: broadcastAt,
	})
	return resultBroadcast
}

// checkHotWallet is advisory: concurrent withdrawals may still drain the
// wallet, which then surfaces as a broadcast rejection.
func (o *SettlementOrchestrator) checkHotWallet(ctx context.Context, adapter chains.Adapter, cfg domain.ChainConfig, intent vo.TransferIntent, fee vo.FeeEstimate) error {
	native := domain.AssetRef{Symbol: cfg.NativeSymbol, Decimals: cfg.NativeDecimals}
	nativeBalance, err := adapter.GetBalance(ctx, adapter.HotWallet(), native)
	if err != nil {
		return err
	}

	if required := chains.TotalCost(intent, fee); nativeBalance.Cmp(required) < 0 {
		return fmt.Errorf("%w: %s balance %s below required %s", vo.ErrInsufficientHotWalletBalance,
			cfg.NativeSymbol, nativeBalance, required)
	}

	if intent.Asset.IsNative() {
		return nil
	}

	tokenBalance, err := adapter.GetBalance(ctx, adapter.HotWallet(), intent.Asset)
	if err != nil {
		return err
	}
	if tokenBalance.Cmp(intent.Amount) < 0 {
		return fmt.Errorf("%w: %s balance %s below amount %s", vo.ErrInsufficientHotWalletBalance,
			intent.Asset.Symbol, tokenBalance, intent.Amount)
	}
	return nil
}

func (o *SettlementOrchestrator) handleError(ctx context.Context, log *slog.Logger, order domain.WithdrawalOrder, from domain.OrderStatus, cause error) orderResult {
	reason := vo.ReasonFor(cause)
	if !vo.IsRetryable(cause) {
		return o.fail(ctx, log, order, from, reason)
	}

	retried, err := o.repo.ReleaseForRetry(ctx, order.Claim(), from, reason, o.opts.Retry)
	if err != nil {
		if errors.Is(err, vo.ErrStaleTransition) {
			log.Debug("retry release lost race", "error", err)
		} else {
			log.Error("release for retry failed", "error", err, "cause", cause)
		}
		return resultSkipped
	}

	if !retried {
		o.metrics.Terminal(order.ChainID, string(domain.OrderStatusFailed), string(reason))
		log.Warn("retries exhausted, order failed", "reason", reason, "cause", cause)
		return resultFailed
	}

	o.metrics.Retry(order.ChainID, string(reason))
	log.Info("order released for retry", "reason", reason, "retry", order.RetryCount+1, "cause", cause)
	return resultRetried
}

func (o *SettlementOrchestrator) fail(ctx context.Context, log *slog.Logger, order domain.WithdrawalOrder, from domain.OrderStatus, reason vo.ReasonCode) orderResult {
	if err := o.repo.FailOrder(ctx, order.Claim(), from, reason); err != nil {
		if errors.Is(err, vo.ErrStaleTransition) {
			log.Debug("fail order lost race", "error", err)
		} else {
			log.Error("fail order failed", "error", err, "reason", reason)
		}
		return resultSkipped
	}

	o.metrics.Terminal(order.ChainID, string(domain.OrderStatusFailed), string(reason))
	log.Warn("order failed", "reason", reason)
	return resultFailed
}

// ResumeAwaiting re-tracks every AwaitingConfirmation order of chainID from
// its persisted pending attempt. Attempts already tracked are skipped.
func (o *SettlementOrchestrator) ResumeAwaiting(ctx context.Context, chainID string) (int, error) {
	pending, err := o.repo.ListAwaiting(ctx, chainID)
	if err != nil {
		return 0, fmt.Errorf("list awaiting orders for %s: %w", chainID, err)
	}

	started := 0
	for _, attempt := range pending {
		if o.tracker.Track(vo.TrackRequest{
			OrderID:     attempt.OrderID,
			AttemptSeq:  attempt.AttemptSeq,
			ChainID:     attempt.ChainID,
			TxHash:      attempt.TxHash,
			BroadcastAt: attempt.BroadcastAt,
		}) {
			started++
		}
	}

	if started > 0 {
		o.logger.Info("resumed confirmation tracking", "chain_id", chainID, "count", started)
	}
	return started, nil
}

// RecoverStale returns expired claims to Approved and reports orders stuck in
// Broadcasting. Broadcasting orders are never retried automatically since
// their transaction may already be on chain.
func (o *SettlementOrchestrator) RecoverStale(ctx context.Context, chainID string) error {
	released, err := o.repo.ReleaseStaleClaims(ctx, chainID, o.opts.ClaimTTL)
	if err != nil {
		return err
	}
	if released > 0 {
		o.logger.Warn("released stale claims", "chain_id", chainID, "count", released)
	}

	stuck, err := o.repo.ListStuckBroadcasting(ctx, chainID, o.opts.BroadcastStuckAfter)
	if err != nil {
		return err
	}
	o.metrics.SetStuckBroadcasting(chainID, len(stuck))

	for _, order := range stuck {
		o.logger.Error("order stuck in broadcasting, operator must reattach or abandon",
			"chain_id", chainID,
			"order_id", order.ID,
			"since", order.UpdatedAt,
		)
	}
	return nil
}

// Finalize applies a tracker outcome. Applying the same outcome twice is a
// no-op.
func (o *SettlementOrchestrator) Finalize(ctx context.Context, outcome vo.TrackOutcome) error {
	log := o.logger.With("chain_id", outcome.ChainID, "order_id", outcome.OrderID, "attempt_seq", outcome.AttemptSeq, "tx_hash", outcome.TxHash)

	if err := o.repo.FinalizeAttempt(ctx, outcome); err != nil {
		if errors.Is(err, vo.ErrStaleTransition) {
			log.Debug("outcome already applied", "error", err)
			return nil
		}
		return err
	}

	status := domain.OrderStatusConfirmed
	if outcome.Outcome == domain.AttemptOutcomeFailed {
		status = domain.OrderStatusFailed
	}
	o.metrics.Terminal(outcome.ChainID, string(status), string(outcome.Reason))

	log.Info("order finalized",
		"status", status,
		"reason", outcome.Reason,
		"fee_paid", outcome.FeePaid,
		"block_number", outcome.BlockNumber,
	)
	return nil
}

// Start resumes tracking for every chain and begins applying tracker
// outcomes until Stop.
func (o *SettlementOrchestrator) Start(ctx context.Context) {
	o.mu.Lock()
	if o.cancel != nil {
		o.mu.Unlock()
		return
	}
	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	o.cancel, o.done = cancel, done
	o.mu.Unlock()

	for _, chainID := range o.chains.ChainIDs() {
		if _, err := o.ResumeAwaiting(ctx, chainID); err != nil {
			o.logger.Error("resume tracking failed", "chain_id", chainID, "error", err)
		}
	}

	go o.consume(loopCtx, done)
}

// Stop halts the tracker, applies outcomes it already delivered and ends
// the finalize loop.
func (o *SettlementOrchestrator) Stop() {
	o.tracker.Stop()

	o.mu.Lock()
	cancel, done := o.cancel, o.done
	o.cancel, o.done = nil, nil
	o.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (o *SettlementOrchestrator) consume(ctx context.Context, done chan struct{}) {
	defer close(done)

	results := o.tracker.Results()
	for {
		select {
		case outcome := <-results:
			o.finalizeLogged(outcome)
		case <-ctx.Done():
			for {
				select {
				case outcome := <-results:
					o.finalizeLogged(outcome)
				default:
					return
				}
			}
		}
	}
}

func (o *SettlementOrchestrator) finalizeLogged(outcome vo.TrackOutcome) {
	ctx, cancel := context.WithTimeout(context.Background(), o.opts.RPCTimeout)
	defer cancel()

	if err := o.Finalize(ctx, outcome); err != nil {
		o.logger.Error("finalize outcome failed, will retry on resume",
			"chain_id", outcome.ChainID,
			"order_id", outcome.OrderID,
			"attempt_seq", outcome.AttemptSeq,
			"error", err,
		)
	}
}

func displayAmount(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}
