package repository

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"

	"github.com/joshuarp/settlement-engine/internal/domain"
)

const maxLastErrorLength = 1024

// LedgerOutboxRepository hands out compensating credits for delivery. Rows
// are written by SettlementOrderRepository in the failing transaction.
type LedgerOutboxRepository struct {
	db *sqlx.DB
}

func NewLedgerOutboxRepository(db *sqlx.DB) *LedgerOutboxRepository {
	return &LedgerOutboxRepository{db: db}
}

// LeasePending reserves up to limit unpublished credits for lease. A credit
// whose lease ran out (relay crashed mid-publish) becomes visible again.
func (r *LedgerOutboxRepository) LeasePending(ctx context.Context, limit int, lease time.Duration) ([]domain.LedgerCredit, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := `
UPDATE ledger_credit_outbox
SET lease_until = now() + ($2 * interval '1 millisecond'), attempts = attempts + 1
WHERE id IN (
	SELECT id FROM ledger_credit_outbox
	WHERE status = 'pending' AND (lease_until IS NULL OR lease_until < now())
	ORDER BY created_at
	LIMIT $1
	FOR UPDATE SKIP LOCKED
)
RETURNING ` + creditColumns

	var rows []creditRow
	if err := r.db.SelectContext(ctx, &rows, query, limit, lease.Milliseconds()); err != nil {
		return nil, fmt.Errorf("repository: lease ledger credits failed: %w", err)
	}

	credits := make([]domain.LedgerCredit, 0, len(rows))
	for _, row := range rows {
		credits = append(credits, row.toDomain())
	}
	return credits, nil
}

func (r *LedgerOutboxRepository) MarkPublished(ctx context.Context, id string) error {
	const query = `
UPDATE ledger_credit_outbox
SET status = 'published', published_at = now(), lease_until = NULL, last_error = ''
WHERE id = $1 AND status = 'pending'`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("repository: mark ledger credit published failed: %w", err)
	}
	return nil
}

// MarkPublishFailed records cause and drops the lease so the next relay tick
// picks the credit up again.
func (r *LedgerOutboxRepository) MarkPublishFailed(ctx context.Context, id string, cause error) error {
	lastError := ""
	if cause != nil {
		lastError = cause.Error()
	}
	lastError = truncateUTF8(lastError, maxLastErrorLength)

	const query = `
UPDATE ledger_credit_outbox
SET last_error = $2, lease_until = NULL
WHERE id = $1 AND status = 'pending'`

	if _, err := r.db.ExecContext(ctx, query, id, lastError); err != nil {
		return fmt.Errorf("repository: mark ledger credit publish failed: %w", err)
	}
	return nil
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune; Postgres
// rejects TEXT that is not valid UTF-8.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
