package domain

import (
	"math/big"
	"time"
)

type LedgerCredit struct {
	ID             string    `json:"id"`
	IdempotencyKey string    `json:"idempotency_key"`
	OrderID        string    `json:"order_id"`
	UserID         string    `json:"user_id"`
	ChainID        string    `json:"chain_id"`
	Asset          AssetRef  `json:"asset"`
	Amount         *big.Int  `json:"amount"`
	Reason         string    `json:"reason"`
	Attempts       int       `json:"attempts"`
	CreatedAt      time.Time `json:"created_at"`
}
