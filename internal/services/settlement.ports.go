package services

import (
	"context"
	"math/big"
	"time"

	"github.com/joshuarp/settlement-engine/internal/chains"
	"github.com/joshuarp/settlement-engine/internal/domain"
	"github.com/joshuarp/settlement-engine/internal/domain/vo"
)

type SettlementRepository interface {
	ClaimDue(ctx context.Context, chainID string, limit int) ([]domain.WithdrawalOrder, error)
	MarkBroadcasting(ctx context.Context, claim domain.Claim) error
	RecordAttempt(ctx context.Context, orderID, txHash string, feeEstimate *big.Int, broadcastAt time.Time) (domain.SettlementAttempt, error)
	ReleaseForRetry(ctx context.Context, claim domain.Claim, from domain.OrderStatus, reason vo.ReasonCode, policy vo.RetryPolicy) (bool, error)
	FailOrder(ctx context.Context, claim domain.Claim, from domain.OrderStatus, reason vo.ReasonCode) error
	FinalizeAttempt(ctx context.Context, outcome vo.TrackOutcome) error
	ListAwaiting(ctx context.Context, chainID string) ([]domain.PendingAttempt, error)
	ReleaseStaleClaims(ctx context.Context, chainID string, olderThan time.Duration) (int64, error)
	ListStuckBroadcasting(ctx context.Context, chainID string, olderThan time.Duration) ([]domain.WithdrawalOrder, error)
	GetWithdrawal(ctx context.Context, orderID string) (vo.WithdrawalDetail, error)
}

type LedgerOutboxRepository interface {
	LeasePending(ctx context.Context, limit int, lease time.Duration) ([]domain.LedgerCredit, error)
	MarkPublished(ctx context.Context, id string) error
	MarkPublishFailed(ctx context.Context, id string, cause error) error
}

// ChainRegistry resolves a chainId to its adapter and configuration.
type ChainRegistry interface {
	Adapter(chainID string) (chains.Adapter, error)
	Config(chainID string) (domain.ChainConfig, error)
	ChainIDs() []string
}

// Tracker follows broadcast transactions until they reach a terminal outcome.
type Tracker interface {
	Track(req vo.TrackRequest) bool
	Results() <-chan vo.TrackOutcome
	Active() int
	Stop()
}

type DueProcessor interface {
	ProcessDue(ctx context.Context, chainID string) (vo.ProcessSummary, error)
}
