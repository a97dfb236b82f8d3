package domain

import (
	"math/big"
	"time"
)

type OrderStatus string

const (
	OrderStatusApproved             OrderStatus = "approved"
	OrderStatusClaimed              OrderStatus = "claimed"
	OrderStatusBroadcasting         OrderStatus = "broadcasting"
	OrderStatusAwaitingConfirmation OrderStatus = "awaiting_confirmation"
	OrderStatusConfirmed            OrderStatus = "confirmed"
	OrderStatusFailed               OrderStatus = "failed"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusConfirmed || s == OrderStatusFailed
}

// CanTransitionTo reports whether next is a legal forward step from s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusApproved:
		return next == OrderStatusClaimed
	case OrderStatusClaimed:
		return next == OrderStatusBroadcasting || next == OrderStatusApproved || next == OrderStatusFailed
	case OrderStatusBroadcasting:
		return next == OrderStatusAwaitingConfirmation || next == OrderStatusApproved || next == OrderStatusFailed
	case OrderStatusAwaitingConfirmation:
		return next == OrderStatusConfirmed || next == OrderStatusFailed
	default:
		return false
	}
}

type WithdrawalOrder struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	ChainID       string      `json:"chain_id"`
	Asset         AssetRef    `json:"asset"`
	Destination   string      `json:"destination"`
	Amount        *big.Int    `json:"amount"`
	Status        OrderStatus `json:"status"`
	FailureReason string      `json:"failure_reason,omitempty"`
	RetryCount    int         `json:"retry_count"`
	NextAttemptAt time.Time   `json:"next_attempt_at"`
	ClaimedAt     *time.Time  `json:"claimed_at,omitempty"`
	ClaimToken    string      `json:"-"`
	FeePaid       *big.Int    `json:"fee_paid,omitempty"`
	BlockNumber   *int64      `json:"block_number,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Claim names the hold one worker has on an order. ClaimDue issues a fresh
// token each time, so a holder whose claim was released and reissued to
// someone else no longer matches the row.
type Claim struct {
	OrderID string
	Token   string
}

func (o WithdrawalOrder) Claim() Claim {
	return Claim{OrderID: o.ID, Token: o.ClaimToken}
}
