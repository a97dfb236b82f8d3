// Package chains holds the uniform capability set every blockchain family
// implements, and the chainId -> adapter registry the settlement engine uses.
// The orchestrator and tracker never branch on chain family.
package chains

import (
	"context"
	"math/big"

	"github.com/joshuarp/settlement-engine/internal/domain"
	"github.com/joshuarp/settlement-engine/internal/domain/vo"
)

// Adapter is implemented once per chain family.
// Implementations must be safe for concurrent use.
type Adapter interface {
	// ChainID is the configured chain identifier the adapter serves.
	ChainID() string

	// Family reports the chain family, for logging only.
	Family() domain.ChainFamily

	// HotWallet is the address transfers are sent from.
	HotWallet() string

	// ValidateAddress fails with vo.ErrInvalidAddress for malformed addresses.
	ValidateAddress(addr string) error

	// GetBalance returns the native or token balance in the smallest unit.
	// Fails with vo.ErrRPCUnavailable or vo.ErrInvalidAddress.
	GetBalance(ctx context.Context, address string, asset domain.AssetRef) (*big.Int, error)

	// EstimateFee returns a best-effort estimate; overestimation is fine.
	EstimateFee(ctx context.Context, intent vo.TransferIntent) (vo.FeeEstimate, error)

	// Broadcast builds, signs and submits the transfer with the given fee
	// parameters, returning the pending transaction hash.
	// Fails with vo.ErrBroadcastRejected or vo.ErrRPCUnavailable.
	Broadcast(ctx context.Context, intent vo.TransferIntent, fee vo.FeeEstimate) (string, error)

	// GetReceipt is a single non-blocking poll. Found is false while the
	// transaction is pending or after it was dropped.
	GetReceipt(ctx context.Context, txHash string) (vo.Receipt, error)

	// IsPending reports whether the node still knows the transaction as
	// unmined.
	IsPending(ctx context.Context, txHash string) (bool, error)
}

// TotalCost is what a transfer needs from the hot wallet in the native coin:
// amount plus fee ceiling for native transfers, only the fee for tokens.
func TotalCost(intent vo.TransferIntent, fee vo.FeeEstimate) *big.Int {
	total := new(big.Int)
	if fee.FeeCeiling != nil {
		total.Set(fee.FeeCeiling)
	}
	if intent.Asset.IsNative() && intent.Amount != nil {
		total.Add(total, intent.Amount)
	}
	return total
}
