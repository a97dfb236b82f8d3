package repository

import (
	"database/sql"
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joshuarp/settlement-engine/internal/domain"
)

const orderColumns = `id, user_id, chain_id, asset_symbol, token_contract, asset_decimals, destination, amount,
	status, failure_reason, retry_count, next_attempt_at, claimed_at, fee_paid, block_number, created_at, updated_at,
	claim_token`

const attemptColumns = `order_id, attempt_seq, tx_hash, fee_estimate, fee_paid, block_number, broadcast_at,
	outcome, failure_reason, finalized_at`

const creditColumns = `id, idempotency_key, order_id, user_id, chain_id, asset_symbol, token_contract, asset_decimals,
	amount, reason, attempts, created_at`

type orderRow struct {
	ID            string              `db:"id"`
	UserID        string              `db:"user_id"`
	ChainID       string              `db:"chain_id"`
	AssetSymbol   string              `db:"asset_symbol"`
	TokenContract sql.NullString      `db:"token_contract"`
	AssetDecimals int                 `db:"asset_decimals"`
	Destination   string              `db:"destination"`
	Amount        decimal.Decimal     `db:"amount"`
	Status        string              `db:"status"`
	FailureReason string              `db:"failure_reason"`
	RetryCount    int                 `db:"retry_count"`
	NextAttemptAt time.Time           `db:"next_attempt_at"`
	ClaimedAt     sql.NullTime        `db:"claimed_at"`
	FeePaid       decimal.NullDecimal `db:"fee_paid"`
	BlockNumber   sql.NullInt64       `db:"block_number"`
	CreatedAt     time.Time           `db:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at"`
	ClaimToken    sql.NullString      `db:"claim_token"`
}

func (r orderRow) toDomain() domain.WithdrawalOrder {
	order := domain.WithdrawalOrder{
		ID:      r.ID,
		UserID:  r.UserID,
		ChainID: r.ChainID,
		Asset: domain.AssetRef{
			Symbol:   r.AssetSymbol,
			Contract: r.TokenContract.String,
			Decimals: r.AssetDecimals,
		},
		Destination:   r.Destination,
		Amount:        r.Amount.BigInt(),
		Status:        domain.OrderStatus(r.Status),
		FailureReason: r.FailureReason,
		RetryCount:    r.RetryCount,
		NextAttemptAt: r.NextAttemptAt,
		FeePaid:       bigFromNull(r.FeePaid),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		ClaimToken:    r.ClaimToken.String,
	}
	if r.ClaimedAt.Valid {
		claimedAt := r.ClaimedAt.Time
		order.ClaimedAt = &claimedAt
	}
	if r.BlockNumber.Valid {
		block := r.BlockNumber.Int64
		order.BlockNumber = &block
	}
	return order
}

type attemptRow struct {
	OrderID       string              `db:"order_id"`
	AttemptSeq    int                 `db:"attempt_seq"`
	TxHash        string              `db:"tx_hash"`
	FeeEstimate   decimal.NullDecimal `db:"fee_estimate"`
	FeePaid       decimal.NullDecimal `db:"fee_paid"`
	BlockNumber   sql.NullInt64       `db:"block_number"`
	BroadcastAt   time.Time           `db:"broadcast_at"`
	Outcome       string              `db:"outcome"`
	FailureReason string              `db:"failure_reason"`
	FinalizedAt   sql.NullTime        `db:"finalized_at"`
}

func (r attemptRow) toDomain() domain.SettlementAttempt {
	attempt := domain.SettlementAttempt{
		OrderID:       r.OrderID,
		AttemptSeq:    r.AttemptSeq,
		TxHash:        r.TxHash,
		FeeEstimate:   bigFromNull(r.FeeEstimate),
		FeePaid:       bigFromNull(r.FeePaid),
		BroadcastAt:   r.BroadcastAt,
		Outcome:       domain.AttemptOutcome(r.Outcome),
		FailureReason: r.FailureReason,
	}
	if r.BlockNumber.Valid {
		block := r.BlockNumber.Int64
		attempt.BlockNumber = &block
	}
	if r.FinalizedAt.Valid {
		finalizedAt := r.FinalizedAt.Time
		attempt.FinalizedAt = &finalizedAt
	}
	return attempt
}

type creditRow struct {
	ID             string          `db:"id"`
	IdempotencyKey string          `db:"idempotency_key"`
	OrderID        string          `db:"order_id"`
	UserID         string          `db:"user_id"`
	ChainID        string          `db:"chain_id"`
	AssetSymbol    string          `db:"asset_symbol"`
	TokenContract  sql.NullString  `db:"token_contract"`
	AssetDecimals  int             `db:"asset_decimals"`
	Amount         decimal.Decimal `db:"amount"`
	Reason         string          `db:"reason"`
	Attempts       int             `db:"attempts"`
	CreatedAt      time.Time       `db:"created_at"`
}

func (r creditRow) toDomain() domain.LedgerCredit {
	return domain.LedgerCredit{
		ID:             r.ID,
		IdempotencyKey: r.IdempotencyKey,
		OrderID:        r.OrderID,
		UserID:         r.UserID,
		ChainID:        r.ChainID,
		Asset: domain.AssetRef{
			Symbol:   r.AssetSymbol,
			Contract: r.TokenContract.String,
			Decimals: r.AssetDecimals,
		},
		Amount:    r.Amount.BigInt(),
		Reason:    r.Reason,
		Attempts:  r.Attempts,
		CreatedAt: r.CreatedAt,
	}
}

func nullDecimalFrom(v *big.Int) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromBigInt(v, 0))
}

func bigFromNull(d decimal.NullDecimal) *big.Int {
	if !d.Valid {
		return nil
	}
	return d.Decimal.BigInt()
}

func nullInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v > 0}
}
