package idempotency

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

const defaultLockTTL = 30 * time.Second

type SQLXStore struct {
	db *sqlx.DB
}

func NewSQLXStore(db *sqlx.DB) *SQLXStore {
	return &SQLXStore{db: db}
}

type idempotencyRow struct {
	RequestHash    string         `db:"request_hash"`
	Status         string         `db:"status"`
	ResponseStatus sql.NullInt64  `db:"response_status"`
	ResponseBody   []byte         `db:"response_body"`
	ResponseType   sql.NullString `db:"response_content_type"`
	LockedUntil    time.Time      `db:"locked_until"`
}

func normalize(request Request) (Request, error) {
	request.Scope = strings.TrimSpace(request.Scope)
	request.Key = strings.TrimSpace(request.Key)
	request.RequestHash = strings.TrimSpace(request.RequestHash)

	switch {
	case request.Scope == "":
		return request, errors.New("idempotency: scope is required")
	case request.Key == "":
		return request, errors.New("idempotency: key is required")
	case request.RequestHash == "":
		return request, errors.New("idempotency: request hash is required")
	}

	if request.LockTTL <= 0 {
		request.LockTTL = defaultLockTTL
	}
	return request, nil
}

func (s *SQLXStore) Acquire(ctx context.Context, request Request) (decision Decision, err error) {
	if s == nil || s.db == nil {
		return Decision{}, errors.New("idempotency: store is not initialized")
	}

	request, err = normalize(request)
	if err != nil {
		return Decision{}, err
	}

	now := time.Now().UTC()
	lockUntil := now.Add(request.LockTTL)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	const selectQuery = `
SELECT request_hash, status, response_status, response_body, response_content_type, locked_until
FROM settlement_idempotency
WHERE scope = $1 AND idempotency_key = $2
FOR UPDATE`

	var existing idempotencyRow
	err = tx.GetContext(ctx, &existing, selectQuery, request.Scope, request.Key)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		const insertQuery = `
INSERT INTO settlement_idempotency (scope, idempotency_key, request_hash, status, locked_until, created_at, updated_at)
VALUES ($1, $2, $3, 'in_progress', $4, now(), now())`

		if _, err := tx.ExecContext(ctx, insertQuery, request.Scope, request.Key, request.RequestHash, lockUntil); err != nil {
			return Decision{}, fmt.Errorf("idempotency: failed to insert key: %w", err)
		}
		decision = Decision{Type: DecisionAcquired}
	case err != nil:
		return Decision{}, fmt.Errorf("idempotency: failed to query key: %w", err)
	default:
		decision, err = s.decide(ctx, tx, request, existing, now, lockUntil)
		if err != nil {
			return Decision{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to commit %s: %w", decision.Type, err)
	}
	return decision, nil
}

func (s *SQLXStore) decide(ctx context.Context, tx *sqlx.Tx, request Request, existing idempotencyRow, now, lockUntil time.Time) (Decision, error) {
	if existing.RequestHash != request.RequestHash {
		return Decision{Type: DecisionConflict}, nil
	}

	if existing.Status == statusCompleted {
		decision := Decision{Type: DecisionReplay, Body: append([]byte(nil), existing.ResponseBody...)}
		if existing.ResponseStatus.Valid {
			decision.StatusCode = int(existing.ResponseStatus.Int64)
		}
		if existing.ResponseType.Valid {
			decision.ContentType = existing.ResponseType.String
		}
		return decision, nil
	}

	if existing.LockedUntil.After(now) {
		return Decision{Type: DecisionInProgress}, nil
	}

	// The previous holder's lock expired without completing.
	const reacquireQuery = `
UPDATE settlement_idempotency
SET status = 'in_progress', locked_until = $3, updated_at = now()
WHERE scope = $1 AND idempotency_key = $2`

	if _, err := tx.ExecContext(ctx, reacquireQuery, request.Scope, request.Key, lockUntil); err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to reacquire key: %w", err)
	}
	return Decision{Type: DecisionAcquired}, nil
}

func (s *SQLXStore) Complete(ctx context.Context, request Request, response StoredResponse) error {
	if s == nil || s.db == nil {
		return errors.New("idempotency: store is not initialized")
	}

	request, err := normalize(request)
	if err != nil {
		return err
	}

	const updateQuery = `
UPDATE settlement_idempotency
SET status = 'completed',
	response_status = $4,
	response_body = $5,
	response_content_type = $6,
	locked_until = now(),
	completed_at = now(),
	updated_at = now()
WHERE scope = $1 AND idempotency_key = $2 AND request_hash = $3`

	result, err := s.db.ExecContext(ctx, updateQuery,
		request.Scope, request.Key, request.RequestHash,
		response.StatusCode, response.Body, strings.TrimSpace(response.ContentType),
	)
	if err != nil {
		return fmt.Errorf("idempotency: failed to persist response: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("idempotency: failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return errors.New("idempotency: key not found for completion")
	}
	return nil
}

func (s *SQLXStore) Release(ctx context.Context, request Request) error {
	if s == nil || s.db == nil {
		return errors.New("idempotency: store is not initialized")
	}

	request, err := normalize(request)
	if err != nil {
		return err
	}

	const deleteQuery = `
DELETE FROM settlement_idempotency
WHERE scope = $1 AND idempotency_key = $2 AND request_hash = $3 AND status = 'in_progress'`

	if _, err := s.db.ExecContext(ctx, deleteQuery, request.Scope, request.Key, request.RequestHash); err != nil {
		return fmt.Errorf("idempotency: failed to release key: %w", err)
	}
	return nil
}
