package domain

import (
	"math/big"
	"time"
)

type AttemptOutcome string

const (
	AttemptOutcomePending   AttemptOutcome = "pending"
	AttemptOutcomeConfirmed AttemptOutcome = "confirmed"
	AttemptOutcomeFailed    AttemptOutcome = "failed"
)

type SettlementAttempt struct {
	OrderID       string         `json:"order_id"`
	AttemptSeq    int            `json:"attempt_seq"`
	TxHash        string         `json:"tx_hash"`
	FeeEstimate   *big.Int       `json:"fee_estimate,omitempty"`
	FeePaid       *big.Int       `json:"fee_paid,omitempty"`
	BlockNumber   *int64         `json:"block_number,omitempty"`
	BroadcastAt   time.Time      `json:"broadcast_at"`
	Outcome       AttemptOutcome `json:"outcome"`
	FailureReason string         `json:"failure_reason,omitempty"`
	FinalizedAt   *time.Time     `json:"finalized_at,omitempty"`
}

// PendingAttempt is an AwaitingConfirmation order joined with its open attempt,
// enough to rebuild a tracker after a restart.
type PendingAttempt struct {
	OrderID     string
	ChainID     string
	AttemptSeq  int
	TxHash      string
	BroadcastAt time.Time
}
