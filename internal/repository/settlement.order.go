package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/joshuarp/settlement-engine/internal/domain"
	"github.com/joshuarp/settlement-engine/internal/domain/vo"
	"github.com/joshuarp/settlement-engine/internal/shared/uid"
)

// SettlementOrderRepository owns withdrawal order state. Every status change
// is a conditional update on the expected current status, so a transition
// that lost a race matches zero rows and reports vo.ErrStaleTransition.
type SettlementOrderRepository struct {
	db  *sqlx.DB
	ids uid.UIDGenerator
}

func NewSettlementOrderRepository(db *sqlx.DB, ids uid.UIDGenerator) *SettlementOrderRepository {
	return &SettlementOrderRepository{db: db, ids: ids}
}

// ClaimDue moves up to limit due Approved orders of a chain to Claimed in a
// single statement. Rows locked by a concurrent claimer are skipped, so no
// order is ever returned to two callers. Each claimed row gets a new claim
// token that later transitions must present.
func (r *SettlementOrderRepository) ClaimDue(ctx context.Context, chainID string, limit int) ([]domain.WithdrawalOrder, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := `
UPDATE withdrawal_orders
SET status = 'claimed', claimed_at = now(), claim_token = gen_random_uuid()::text, updated_at = now()
WHERE id IN (
	SELECT id FROM withdrawal_orders
	WHERE chain_id = $1 AND status = 'approved' AND next_attempt_at <= now()
	ORDER BY next_attempt_at, created_at
	LIMIT $2
	FOR UPDATE SKIP LOCKED
)
AND status = 'approved'
RETURNING ` + orderColumns

	var rows []orderRow
	if err := r.db.SelectContext(ctx, &rows, query, chainID, limit); err != nil {
		return nil, fmt.Errorf("repository: claim due orders failed: %w", err)
	}

	orders := make([]domain.WithdrawalOrder, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toDomain())
	}
	return orders, nil
}

// MarkBroadcasting must commit before the adapter is asked to broadcast. It
// matches only while claim is still the order's current claim.
func (r *SettlementOrderRepository) MarkBroadcasting(ctx context.Context, claim domain.Claim) error {
	if claim.Token == "" {
		return fmt.Errorf("%w: order %s has no claim token", vo.ErrStaleTransition, claim.OrderID)
	}

	const query = `
UPDATE withdrawal_orders
SET status = 'broadcasting', updated_at = now()
WHERE id = $1 AND status = 'claimed' AND claim_token = $2`

	result, err := r.db.ExecContext(ctx, query, claim.OrderID, claim.Token)
	if err != nil {
		return fmt.Errorf("repository: mark broadcasting failed: %w", err)
	}
	return expectOneRow(result, claim.OrderID, domain.OrderStatusClaimed)
}

// RecordAttempt appends the attempt with the next sequence number and moves
// the order to AwaitingConfirmation in one transaction.
func (r *SettlementOrderRepository) RecordAttempt(ctx context.Context, orderID, txHash string, feeEstimate *big.Int, broadcastAt time.Time) (domain.SettlementAttempt, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.SettlementAttempt{}, fmt.Errorf("repository: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockOrder(ctx, tx, domain.Claim{OrderID: orderID}, domain.OrderStatusBroadcasting); err != nil {
		return domain.SettlementAttempt{}, err
	}

	const insertQuery = `
INSERT INTO settlement_attempts (order_id, attempt_seq, tx_hash, fee_estimate, broadcast_at, outcome)
SELECT $1, COALESCE(MAX(attempt_seq), 0) + 1, $2, $3, $4, 'pending'
FROM settlement_attempts
WHERE order_id = $1
RETURNING attempt_seq`

	var seq int
	if err := tx.GetContext(ctx, &seq, insertQuery, orderID, txHash, nullDecimalFrom(feeEstimate), broadcastAt.UTC()); err != nil {
		return domain.SettlementAttempt{}, fmt.Errorf("repository: insert settlement attempt failed: %w", err)
	}

	const updateQuery = `
UPDATE withdrawal_orders
SET status = 'awaiting_confirmation', updated_at = now()
WHERE id = $1 AND status = 'broadcasting'`

	if _, err := tx.ExecContext(ctx, updateQuery, orderID); err != nil {
		return domain.SettlementAttempt{}, fmt.Errorf("repository: mark awaiting confirmation failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.SettlementAttempt{}, fmt.Errorf("repository: failed to commit transaction: %w", err)
	}

	return domain.SettlementAttempt{
		OrderID:     orderID,
		AttemptSeq:  seq,
		TxHash:      txHash,
		FeeEstimate: feeEstimate,
		BroadcastAt: broadcastAt,
		Outcome:     domain.AttemptOutcomePending,
	}, nil
}

// ReleaseForRetry returns the order to Approved with a backoff, or fails it
// once the retry bound is spent. retried reports which one happened.
func (r *SettlementOrderRepository) ReleaseForRetry(ctx context.Context, claim domain.Claim, from domain.OrderStatus, reason vo.ReasonCode, policy vo.RetryPolicy) (retried bool, err error) {
	if !from.CanTransitionTo(domain.OrderStatusApproved) {
		return false, fmt.Errorf("%w: cannot retry from %s", vo.ErrStaleTransition, from)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("repository: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	order, err := lockOrder(ctx, tx, claim, from)
	if err != nil {
		return false, err
	}

	if order.RetryCount >= policy.MaxRetries {
		if err := r.failInTx(ctx, tx, order, reason, nil, 0); err != nil {
			return false, err
		}
	} else {
		retry := order.RetryCount + 1

		const updateQuery = `
UPDATE withdrawal_orders
SET status = 'approved', retry_count = $2, failure_reason = $3, next_attempt_at = $4, claimed_at = NULL, claim_token = NULL, updated_at = now()
WHERE id = $1`

		nextAttemptAt := time.Now().UTC().Add(policy.Backoff(retry))
		if _, err := tx.ExecContext(ctx, updateQuery, order.ID, retry, string(reason), nextAttemptAt); err != nil {
			return false, fmt.Errorf("repository: release for retry failed: %w", err)
		}
		retried = true
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("repository: failed to commit transaction: %w", err)
	}
	return retried, nil
}

// FailOrder moves the order to Failed and enqueues its compensating credit.
func (r *SettlementOrderRepository) FailOrder(ctx context.Context, claim domain.Claim, from domain.OrderStatus, reason vo.ReasonCode) error {
	if !from.CanTransitionTo(domain.OrderStatusFailed) {
		return fmt.Errorf("%w: cannot fail from %s", vo.ErrStaleTransition, from)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repository: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	order, err := lockOrder(ctx, tx, claim, from)
	if err != nil {
		return err
	}

	if err := r.failInTx(ctx, tx, order, reason, nil, 0); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("repository: failed to commit transaction: %w", err)
	}
	return nil
}

// FinalizeAttempt closes the pending attempt and the order with the tracker's
// verdict. Repeating it for an already finalized attempt is a stale transition.
func (r *SettlementOrderRepository) FinalizeAttempt(ctx context.Context, outcome vo.TrackOutcome) error {
	if outcome.Outcome != domain.AttemptOutcomeConfirmed && outcome.Outcome != domain.AttemptOutcomeFailed {
		return fmt.Errorf("repository: attempt outcome %q is not final", outcome.Outcome)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repository: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	order, err := lockOrder(ctx, tx, domain.Claim{OrderID: outcome.OrderID}, domain.OrderStatusAwaitingConfirmation)
	if err != nil {
		return err
	}

	const attemptQuery = `
UPDATE settlement_attempts
SET outcome = $3, fee_paid = $4, block_number = $5, failure_reason = $6, finalized_at = now()
WHERE order_id = $1 AND attempt_seq = $2 AND outcome = 'pending'`

	result, err := tx.ExecContext(ctx, attemptQuery,
		outcome.OrderID, outcome.AttemptSeq, string(outcome.Outcome),
		nullDecimalFrom(outcome.FeePaid), nullInt64(outcome.BlockNumber), string(outcome.Reason),
	)
	if err != nil {
		return fmt.Errorf("repository: finalize attempt failed: %w", err)
	}
	if err := expectOneRow(result, outcome.OrderID, domain.OrderStatusAwaitingConfirmation); err != nil {
		return err
	}

	if outcome.Outcome == domain.AttemptOutcomeFailed {
		if err := r.failInTx(ctx, tx, order, outcome.Reason, outcome.FeePaid, outcome.BlockNumber); err != nil {
			return err
		}
	} else {
		const confirmQuery = `
UPDATE withdrawal_orders
SET status = 'confirmed', failure_reason = '', fee_paid = $2, block_number = $3, updated_at = now()
WHERE id = $1`

		if _, err := tx.ExecContext(ctx, confirmQuery, outcome.OrderID, nullDecimalFrom(outcome.FeePaid), nullInt64(outcome.BlockNumber)); err != nil {
			return fmt.Errorf("repository: confirm order failed: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("repository: failed to commit transaction: %w", err)
	}
	return nil
}

func (r *SettlementOrderRepository) ListAwaiting(ctx context.Context, chainID string) ([]domain.PendingAttempt, error) {
	const query = `
SELECT o.id AS order_id, o.chain_id, a.attempt_seq, a.tx_hash, a.broadcast_at
FROM withdrawal_orders o
JOIN settlement_attempts a ON a.order_id = o.id AND a.outcome = 'pending'
WHERE o.chain_id = $1 AND o.status = 'awaiting_confirmation'
ORDER BY a.broadcast_at`

	var rows []struct {
		OrderID     string    `db:"order_id"`
		ChainID     string    `db:"chain_id"`
		AttemptSeq  int       `db:"attempt_seq"`
		TxHash      string    `db:"tx_hash"`
		BroadcastAt time.Time `db:"broadcast_at"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, chainID); err != nil {
		return nil, fmt.Errorf("repository: list awaiting confirmation failed: %w", err)
	}

	pending := make([]domain.PendingAttempt, 0, len(rows))
	for _, row := range rows {
		pending = append(pending, domain.PendingAttempt(row))
	}
	return pending, nil
}

// ReleaseStaleClaims returns orders stuck in Claimed to Approved. Nothing has
// been sent for a Claimed order, and clearing the token fences off the worker
// that held it, so releasing cannot double-pay. Age is measured on the
// database clock, the same clock that stamped claimed_at.
func (r *SettlementOrderRepository) ReleaseStaleClaims(ctx context.Context, chainID string, olderThan time.Duration) (int64, error) {
	const query = `
UPDATE withdrawal_orders
SET status = 'approved', claimed_at = NULL, claim_token = NULL, updated_at = now()
WHERE chain_id = $1 AND status = 'claimed' AND claimed_at < now() - $2 * interval '1 millisecond'`

	result, err := r.db.ExecContext(ctx, query, chainID, olderThan.Milliseconds())
	if err != nil {
		return 0, fmt.Errorf("repository: release stale claims failed: %w", err)
	}

	released, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("repository: failed to read affected rows: %w", err)
	}
	return released, nil
}

// ListStuckBroadcasting returns orders left in Broadcasting, where a
// transaction may or may not have reached the chain.
func (r *SettlementOrderRepository) ListStuckBroadcasting(ctx context.Context, chainID string, olderThan time.Duration) ([]domain.WithdrawalOrder, error) {
	query := `SELECT ` + orderColumns + `
FROM withdrawal_orders
WHERE chain_id = $1 AND status = 'broadcasting' AND updated_at < now() - $2 * interval '1 millisecond'
ORDER BY updated_at`

	var rows []orderRow
	if err := r.db.SelectContext(ctx, &rows, query, chainID, olderThan.Milliseconds()); err != nil {
		return nil, fmt.Errorf("repository: list stuck broadcasting failed: %w", err)
	}

	orders := make([]domain.WithdrawalOrder, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toDomain())
	}
	return orders, nil
}

func (r *SettlementOrderRepository) GetWithdrawal(ctx context.Context, orderID string) (vo.WithdrawalDetail, error) {
	var order orderRow
	query := `SELECT ` + orderColumns + ` FROM withdrawal_orders WHERE id = $1`
	if err := r.db.GetContext(ctx, &order, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vo.WithdrawalDetail{}, fmt.Errorf("%w: %s", vo.ErrOrderNotFound, orderID)
		}
		return vo.WithdrawalDetail{}, fmt.Errorf("repository: get withdrawal failed: %w", err)
	}

	var attempts []attemptRow
	attemptsQuery := `SELECT ` + attemptColumns + ` FROM settlement_attempts WHERE order_id = $1 ORDER BY attempt_seq`
	if err := r.db.SelectContext(ctx, &attempts, attemptsQuery, orderID); err != nil {
		return vo.WithdrawalDetail{}, fmt.Errorf("repository: list settlement attempts failed: %w", err)
	}

	detail := vo.WithdrawalDetail{
		Order:    order.toDomain(),
		Attempts: make([]domain.SettlementAttempt, 0, len(attempts)),
	}
	for _, attempt := range attempts {
		detail.Attempts = append(detail.Attempts, attempt.toDomain())
	}
	return detail, nil
}

// failInTx marks the locked order Failed and inserts its compensating credit.
// The credit is keyed by order id, so it exists at most once.
func (r *SettlementOrderRepository) failInTx(ctx context.Context, tx *sqlx.Tx, order orderRow, reason vo.ReasonCode, feePaid *big.Int, blockNumber int64) error {
	const failQuery = `
UPDATE withdrawal_orders
SET status = 'failed', failure_reason = $2, fee_paid = COALESCE($3, fee_paid), block_number = COALESCE($4, block_number), updated_at = now()
WHERE id = $1`

	if _, err := tx.ExecContext(ctx, failQuery, order.ID, string(reason), nullDecimalFrom(feePaid), nullInt64(blockNumber)); err != nil {
		return fmt.Errorf("repository: fail order failed: %w", err)
	}

	creditID, err := r.ids.Generate(ctx)
	if err != nil {
		return fmt.Errorf("repository: generate ledger credit id failed: %w", err)
	}

	const creditQuery = `
INSERT INTO ledger_credit_outbox (
	id, idempotency_key, order_id, user_id, chain_id, asset_symbol, token_contract, asset_decimals, amount, reason
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (idempotency_key) DO NOTHING`

	if _, err := tx.ExecContext(ctx, creditQuery,
		creditID, order.ID, order.ID, order.UserID, order.ChainID,
		order.AssetSymbol, order.TokenContract, order.AssetDecimals, order.Amount, string(reason),
	); err != nil {
		return fmt.Errorf("repository: enqueue ledger credit failed: %w", err)
	}
	return nil
}

// lockOrder row-locks the order and checks it is still in expected under the
// given claim. A Claimed order always needs the claim token; elsewhere the
// token is checked only when the caller has one.
func lockOrder(ctx context.Context, tx *sqlx.Tx, claim domain.Claim, expected domain.OrderStatus) (orderRow, error) {
	var order orderRow
	query := `SELECT ` + orderColumns + ` FROM withdrawal_orders WHERE id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &order, query, claim.OrderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return orderRow{}, fmt.Errorf("%w: %s", vo.ErrOrderNotFound, claim.OrderID)
		}
		return orderRow{}, fmt.Errorf("repository: lock order failed: %w", err)
	}

	if domain.OrderStatus(order.Status) != expected {
		return orderRow{}, fmt.Errorf("%w: order %s is %s, expected %s", vo.ErrStaleTransition, claim.OrderID, order.Status, expected)
	}
	if claim.Token == "" && expected == domain.OrderStatusClaimed {
		return orderRow{}, fmt.Errorf("%w: order %s has no claim token", vo.ErrStaleTransition, claim.OrderID)
	}
	if claim.Token != "" && order.ClaimToken.String != claim.Token {
		return orderRow{}, fmt.Errorf("%w: claim on order %s was reissued", vo.ErrStaleTransition, claim.OrderID)
	}
	return order, nil
}

func expectOneRow(result sql.Result, orderID string, expected domain.OrderStatus) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: order %s is no longer %s", vo.ErrStaleTransition, orderID, expected)
	}
	return nil
}
