package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/joshuarp/settlement-engine/internal/chains"
	"github.com/joshuarp/settlement-engine/internal/domain"
	"github.com/joshuarp/settlement-engine/internal/domain/vo"
)

type TrackerOptions struct {
	MinPollInterval time.Duration
	MaxPollInterval time.Duration

	// SafetyFactor multiplies blockTime x confirmations into the wait window
	// after which a transaction that was never seen is considered dropped.
	SafetyFactor int

	// RPCTimeout bounds each poll.
	RPCTimeout time.Duration

	ResultBuffer int
}

func (o TrackerOptions) withDefaults() TrackerOptions {
	if o.MinPollInterval <= 0 {
		o.MinPollInterval = time.Second
	}
	if o.MaxPollInterval < o.MinPollInterval {
		o.MaxPollInterval = o.MinPollInterval
	}
	if o.SafetyFactor <= 0 {
		o.SafetyFactor = 3
	}
	if o.RPCTimeout <= 0 {
		o.RPCTimeout = 15 * time.Second
	}
	if o.ResultBuffer <= 0 {
		o.ResultBuffer = 64
	}
	return o
}

var _ Tracker = (*ConfirmationTracker)(nil)

// ConfirmationTracker runs one polling goroutine per (orderId, attemptSeq).
// It holds no state that cannot be rebuilt from persisted attempts, so a
// stopped tracker loses nothing: undelivered outcomes are re-derived on resume.
type ConfirmationTracker struct {
	chains  ChainRegistry
	metrics *SettlementMetrics
	logger  *slog.Logger
	opts    TrackerOptions
	now     func() time.Time

	results chan vo.TrackOutcome

	mu      sync.Mutex
	active  map[vo.TrackKey]struct{}
	stopped bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      conc.WaitGroup
}

func NewConfirmationTracker(registry ChainRegistry, metrics *SettlementMetrics, logger *slog.Logger, opts TrackerOptions) *ConfirmationTracker {
	if logger == nil {
		logger = slog.Default()
	}
	opts = opts.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	return &ConfirmationTracker{
		chains:  registry,
		metrics: metrics,
		logger:  logger.With("component", "confirmation_tracker"),
		opts:    opts,
		now:     time.Now,
		results: make(chan vo.TrackOutcome, opts.ResultBuffer),
		active:  make(map[vo.TrackKey]struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Track starts following req unless the same attempt is already tracked or
// the tracker is stopped. It never blocks on the network.
func (t *ConfirmationTracker) Track(req vo.TrackRequest) bool {
	log := t.logger.With("chain_id", req.ChainID, "order_id", req.OrderID, "attempt_seq", req.AttemptSeq, "tx_hash", req.TxHash)

	adapter, err := t.chains.Adapter(req.ChainID)
	if err != nil {
		log.Error("cannot track transaction", "error", err)
		return false
	}
	cfg, err := t.chains.Config(req.ChainID)
	if err != nil {
		log.Error("cannot track transaction", "error", err)
		return false
	}

	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return false
	}
	key := req.Key()
	if _, exists := t.active[key]; exists {
		t.mu.Unlock()
		return false
	}
	t.active[key] = struct{}{}
	t.metrics.SetActiveTrackers(len(t.active))
	t.wg.Go(func() { t.run(req, adapter, cfg, log) })
	t.mu.Unlock()

	log.Debug("tracking transaction")
	return true
}

func (t *ConfirmationTracker) Results() <-chan vo.TrackOutcome {
	return t.results
}

func (t *ConfirmationTracker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active)
}

// Stop abandons every poll loop and waits for them to exit. Nothing is
// written on the way out.
func (t *ConfirmationTracker) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()

	t.cancel()
	if recovered := t.wg.WaitAndRecover(); recovered != nil {
		t.logger.Error("poll loop panicked", "panic", recovered.String())
	}
}

func (t *ConfirmationTracker) run(req vo.TrackRequest, adapter chains.Adapter, cfg domain.ChainConfig, log *slog.Logger) {
	defer t.release(req.Key())

	interval := t.pollInterval(cfg)
	deadline := req.BroadcastAt.Add(t.waitWindow(cfg, interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if outcome, done := t.poll(req, adapter, cfg, deadline, log); done {
			select {
			case t.results <- outcome:
				log.Info("transaction reached terminal outcome", "outcome", outcome.Outcome, "reason", outcome.Reason)
			case <-t.ctx.Done():
			}
			return
		}

		select {
		case <-t.ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (t *ConfirmationTracker) poll(req vo.TrackRequest, adapter chains.Adapter, cfg domain.ChainConfig, deadline time.Time, log *slog.Logger) (vo.TrackOutcome, bool) {
	ctx, cancel := context.WithTimeout(t.ctx, t.opts.RPCTimeout)
	defer cancel()

	outcome := vo.TrackOutcome{
		OrderID:    req.OrderID,
		AttemptSeq: req.AttemptSeq,
		ChainID:    req.ChainID,
		TxHash:     req.TxHash,
	}

	receipt, err := adapter.GetReceipt(ctx, req.TxHash)
	if err != nil {
		log.Warn("receipt poll failed", "error", err)
		return outcome, false
	}

	if receipt.Found {
		outcome.FeePaid = receipt.ActualFee
		outcome.BlockNumber = receipt.BlockNumber

		if !receipt.Success {
			outcome.Outcome = domain.AttemptOutcomeFailed
			outcome.Reason = vo.ReasonReverted
			return outcome, true
		}
		if receipt.Confirmations >= int64(requiredConfirmations(cfg)) {
			outcome.Outcome = domain.AttemptOutcomeConfirmed
			return outcome, true
		}
		return outcome, false
	}

	if t.now().Before(deadline) {
		return outcome, false
	}

	pending, err := adapter.IsPending(ctx, req.TxHash)
	if err != nil {
		log.Warn("pending pool check failed", "error", err)
		return outcome, false
	}
	if pending {
		log.Info("transaction past wait window but still pending")
		return outcome, false
	}

	timeout := fmt.Errorf("%w: %s neither mined nor pending since %s", vo.ErrConfirmationTimeout,
		req.TxHash, deadline.UTC().Format(time.RFC3339))
	log.Warn("transaction dropped", "error", timeout)

	outcome.Outcome = domain.AttemptOutcomeFailed
	outcome.Reason = vo.ReasonFor(timeout)
	return outcome, true
}

func (t *ConfirmationTracker) release(key vo.TrackKey) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.active, key)
	t.metrics.SetActiveTrackers(len(t.active))
}

// pollInterval is the chain's block time clamped to the configured bounds.
func (t *ConfirmationTracker) pollInterval(cfg domain.ChainConfig) time.Duration {
	interval := cfg.BlockTime
	if interval < t.opts.MinPollInterval {
		interval = t.opts.MinPollInterval
	}
	if interval > t.opts.MaxPollInterval {
		interval = t.opts.MaxPollInterval
	}
	return interval
}

func (t *ConfirmationTracker) waitWindow(cfg domain.ChainConfig, interval time.Duration) time.Duration {
	factor := time.Duration(t.opts.SafetyFactor)
	window := cfg.BlockTime * time.Duration(requiredConfirmations(cfg)) * factor
	if floor := interval * factor; window < floor {
		window = floor
	}
	return window
}

func requiredConfirmations(cfg domain.ChainConfig) int {
	if cfg.ConfirmNum < 1 {
		return 1
	}
	return cfg.ConfirmNum
}
