package vo

import "errors"

var (
	ErrRPCUnavailable               = errors.New("rpc unavailable")
	ErrBroadcastRejected            = errors.New("broadcast rejected")
	ErrInsufficientHotWalletBalance = errors.New("insufficient hot wallet balance")
	ErrInvalidAddress               = errors.New("invalid address")
	ErrInvalidAmount                = errors.New("invalid amount")
	ErrConfirmationTimeout          = errors.New("confirmation timeout")
	ErrStaleTransition              = errors.New("order is not in the expected status")
	ErrOrderNotFound                = errors.New("withdrawal order not found")
	ErrUnknownChain                 = errors.New("unknown chain")
	ErrTransactionNotFound          = errors.New("transaction not found on chain")
	ErrBroadcastInFlight            = errors.New("broadcast may still be in flight")
)

// ReasonCode is the closed set of failure reasons persisted on orders and
// exposed to users.
type ReasonCode string

const (
	ReasonNone                         ReasonCode = ""
	ReasonRPCUnavailable               ReasonCode = "rpc_unavailable"
	ReasonBroadcastRejected            ReasonCode = "broadcast_rejected"
	ReasonInsufficientHotWalletBalance ReasonCode = "insufficient_hot_wallet_balance"
	ReasonInvalidAddress               ReasonCode = "invalid_address"
	ReasonInvalidAmount                ReasonCode = "invalid_amount"
	ReasonConfirmationTimeout          ReasonCode = "confirmation_timeout"
	ReasonReverted                     ReasonCode = "reverted"
	ReasonBroadcastAbandoned           ReasonCode = "broadcast_abandoned"
)

func ReasonFor(err error) ReasonCode {
	switch {
	case err == nil:
		return ReasonNone
	case errors.Is(err, ErrInsufficientHotWalletBalance):
		return ReasonInsufficientHotWalletBalance
	case errors.Is(err, ErrInvalidAddress):
		return ReasonInvalidAddress
	case errors.Is(err, ErrInvalidAmount):
		return ReasonInvalidAmount
	case errors.Is(err, ErrBroadcastRejected):
		return ReasonBroadcastRejected
	case errors.Is(err, ErrConfirmationTimeout):
		return ReasonConfirmationTimeout
	default:
		return ReasonRPCUnavailable
	}
}

// IsRetryable reports whether the order may go back to Approved after err.
// Anything not explicitly terminal is handled like a transient RPC failure.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, ErrInsufficientHotWalletBalance),
		errors.Is(err, ErrInvalidAddress),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrConfirmationTimeout):
		return false
	default:
		return true
	}
}
