package vo

import (
	"math/big"

	"github.com/joshuarp/settlement-engine/internal/domain"
)

type TransferIntent struct {
	OrderID string
	To      string
	Amount  *big.Int
	Asset   domain.AssetRef
}

// FeeEstimate is chain-neutral: FeeLimit is gas units (EVM) or the fee limit in
// sun (TRON), FeePrice is the unit price, FeeCeiling the most the transfer may
// cost in the native coin's smallest unit.
type FeeEstimate struct {
	FeeLimit   *big.Int `json:"fee_limit"`
	FeePrice   *big.Int `json:"fee_price"`
	FeeCeiling *big.Int `json:"fee_ceiling"`
}

type Receipt struct {
	Found         bool
	Success       bool
	Confirmations int64
	BlockNumber   int64
	ActualFee     *big.Int
}
