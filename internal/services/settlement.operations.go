package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joshuarp/settlement-engine/internal/domain"
	"github.com/joshuarp/settlement-engine/internal/domain/vo"
)

var ErrTxHashRequired = errors.New("tx hash is required")

type OperationsOptions struct {
	// BroadcastStuckAfter is how long an order must sit in Broadcasting
	// before an operator may resolve it. A younger order may still be inside
	// a worker's Broadcast call.
	BroadcastStuckAfter time.Duration
}

func (o OperationsOptions) withDefaults() OperationsOptions {
	if o.BroadcastStuckAfter <= 0 {
		o.BroadcastStuckAfter = 10 * time.Minute
	}
	return o
}

// SettlementOperationsService backs the operator API. Reattach and Abandon
// are the only ways an order leaves a stuck Broadcasting state.
type SettlementOperationsService struct {
	processor DueProcessor
	repo      SettlementRepository
	chains    ChainRegistry
	tracker   Tracker
	metrics   *SettlementMetrics
	logger    *slog.Logger
	opts      OperationsOptions
	now       func() time.Time
}

func NewSettlementOperationsService(
	processor DueProcessor,
	repo SettlementRepository,
	registry ChainRegistry,
	tracker Tracker,
	metrics *SettlementMetrics,
	logger *slog.Logger,
	opts OperationsOptions,
) *SettlementOperationsService {
	if logger == nil {
		logger = slog.Default()
	}

	return &SettlementOperationsService{
		processor: processor,
		repo:      repo,
		chains:    registry,
		tracker:   tracker,
		metrics:   metrics,
		logger:    logger.With("component", "settlement_operations"),
		opts:      opts.withDefaults(),
		now:       time.Now,
	}
}

func (s *SettlementOperationsService) ProcessDue(ctx context.Context, chainID string) (vo.ProcessSummary, error) {
	chainID = strings.TrimSpace(chainID)
	if _, err := s.chains.Config(chainID); err != nil {
		return vo.ProcessSummary{}, err
	}
	return s.processor.ProcessDue(ctx, chainID)
}

func (s *SettlementOperationsService) GetWithdrawal(ctx context.Context, orderID string) (vo.WithdrawalDetail, error) {
	return s.repo.GetWithdrawal(ctx, strings.TrimSpace(orderID))
}

// Reattach records txHash, found on chain by an operator, as the attempt of
// an order stuck in Broadcasting and starts tracking it. The hash must be
// known to the chain, mined or pending.
func (s *SettlementOperationsService) Reattach(ctx context.Context, orderID, txHash string) (vo.WithdrawalDetail, error) {
	txHash = strings.TrimSpace(txHash)
	if txHash == "" {
		return vo.WithdrawalDetail{}, ErrTxHashRequired
	}

	detail, err := s.repo.GetWithdrawal(ctx, strings.TrimSpace(orderID))
	if err != nil {
		return vo.WithdrawalDetail{}, err
	}
	order := detail.Order
	if err := s.ensureStuck(order); err != nil {
		return vo.WithdrawalDetail{}, err
	}

	adapter, err := s.chains.Adapter(order.ChainID)
	if err != nil {
		return vo.WithdrawalDetail{}, err
	}

	receipt, err := adapter.GetReceipt(ctx, txHash)
	if err != nil {
		return vo.WithdrawalDetail{}, err
	}
	if !receipt.Found {
		pending, err := adapter.IsPending(ctx, txHash)
		if err != nil {
			return vo.WithdrawalDetail{}, err
		}
		if !pending {
			return vo.WithdrawalDetail{}, fmt.Errorf("%w: %s", vo.ErrTransactionNotFound, txHash)
		}
	}

	broadcastAt := s.now().UTC()
	attempt, err := s.repo.RecordAttempt(ctx, order.ID, txHash, nil, broadcastAt)
	if err != nil {
		return vo.WithdrawalDetail{}, err
	}

	s.tracker.Track(vo.TrackRequest{
		OrderID:     order.ID,
		AttemptSeq:  attempt.AttemptSeq,
		ChainID:     order.ChainID,
		TxHash:      txHash,
		BroadcastAt: broadcastAt,
	})

	s.logger.Info("broadcast reattached",
		"chain_id", order.ChainID,
		"order_id", order.ID,
		"attempt_seq", attempt.AttemptSeq,
		"tx_hash", txHash,
	)
	return s.repo.GetWithdrawal(ctx, order.ID)
}

// Abandon fails an order stuck in Broadcasting whose transaction an operator
// verified never reached the chain. The compensating credit is emitted.
func (s *SettlementOperationsService) Abandon(ctx context.Context, orderID string) (vo.WithdrawalDetail, error) {
	orderID = strings.TrimSpace(orderID)

	detail, err := s.repo.GetWithdrawal(ctx, orderID)
	if err != nil {
		return vo.WithdrawalDetail{}, err
	}
	if err := s.ensureStuck(detail.Order); err != nil {
		return vo.WithdrawalDetail{}, err
	}

	if err := s.repo.FailOrder(ctx, detail.Order.Claim(), domain.OrderStatusBroadcasting, vo.ReasonBroadcastAbandoned); err != nil {
		return vo.WithdrawalDetail{}, err
	}
	s.metrics.Terminal(detail.Order.ChainID, string(domain.OrderStatusFailed), string(vo.ReasonBroadcastAbandoned))

	s.logger.Warn("broadcast abandoned", "chain_id", detail.Order.ChainID, "order_id", orderID)
	return s.repo.GetWithdrawal(ctx, orderID)
}

// ensureStuck admits only orders that have sat in Broadcasting for at least
// BroadcastStuckAfter, the same age at which RecoverStale reports them.
func (s *SettlementOperationsService) ensureStuck(order domain.WithdrawalOrder) error {
	if order.Status != domain.OrderStatusBroadcasting {
		return fmt.Errorf("%w: order %s is %s", vo.ErrStaleTransition, order.ID, order.Status)
	}
	if age := s.now().Sub(order.UpdatedAt); age < s.opts.BroadcastStuckAfter {
		return fmt.Errorf("%w: order %s entered broadcasting %s ago, wait %s", vo.ErrBroadcastInFlight,
			order.ID, age.Truncate(time.Second), s.opts.BroadcastStuckAfter)
	}
	return nil
}
