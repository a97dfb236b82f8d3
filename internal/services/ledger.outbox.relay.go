package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"

	"github.com/joshuarp/settlement-engine/internal/domain"
	"github.com/joshuarp/settlement-engine/internal/domain/vo"
	"github.com/joshuarp/settlement-engine/internal/shared/publisher"
)

type RelayOptions struct {
	BatchSize int

	// Lease hides a credit from other relays while it is being published.
	Lease time.Duration
}

// creditMessage is the wire format the ledger service consumes. The ledger
// dedupes on IdempotencyKey, which is the order id.
type creditMessage struct {
	IdempotencyKey string    `json:"idempotency_key"`
	OrderID        string    `json:"order_id"`
	UserID         string    `json:"user_id"`
	ChainID        string    `json:"chain_id"`
	AssetSymbol    string    `json:"asset_symbol"`
	TokenContract  string    `json:"token_contract,omitempty"`
	AssetDecimals  int       `json:"asset_decimals"`
	Amount         string    `json:"amount"`
	Reason         string    `json:"reason"`
	CreatedAt      time.Time `json:"created_at"`
}

// LedgerOutboxRelay delivers compensating credits at least once.
type LedgerOutboxRelay struct {
	repo      LedgerOutboxRepository
	publisher publisher.Publisher
	metrics   *SettlementMetrics
	logger    *slog.Logger
	opts      RelayOptions
}

func NewLedgerOutboxRelay(repo LedgerOutboxRepository, pub publisher.Publisher, metrics *SettlementMetrics, logger *slog.Logger, opts RelayOptions) *LedgerOutboxRelay {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	if opts.Lease <= 0 {
		opts.Lease = time.Minute
	}

	return &LedgerOutboxRelay{
		repo:      repo,
		publisher: pub,
		metrics:   metrics,
		logger:    logger.With("component", "ledger_outbox_relay"),
		opts:      opts,
	}
}

func (r *LedgerOutboxRelay) RelayPending(ctx context.Context) (vo.RelaySummary, error) {
	var summary vo.RelaySummary

	credits, err := r.repo.LeasePending(ctx, r.opts.BatchSize, r.opts.Lease)
	if err != nil {
		return summary, err
	}
	summary.Leased = len(credits)
	if len(credits) == 0 {
		return summary, nil
	}

	messages := make([]publisher.Message, 0, len(credits))
	for _, credit := range credits {
		message, err := encodeCredit(credit)
		if err != nil {
			return summary, err
		}
		messages = append(messages, message)
	}

	publishErr := r.publisher.Publish(ctx, messages...)

	var batchErr *publisher.BatchError
	partial := errors.As(publishErr, &batchErr)

	var markErrors []error
	for i, credit := range credits {
		cause := publishErr
		if partial {
			cause = nil
			if batchErr.Failed(i) {
				cause = batchErr.Errs[i]
			}
		}

		if cause != nil {
			summary.Failed++
			r.metrics.OutboxPublish("failed")
			r.logger.Warn("ledger credit publish failed",
				"order_id", credit.OrderID,
				"credit_id", credit.ID,
				"attempts", credit.Attempts,
				"error", cause,
			)
			if err := r.repo.MarkPublishFailed(ctx, credit.ID, cause); err != nil {
				markErrors = append(markErrors, err)
			}
			continue
		}

		summary.Published++
		r.metrics.OutboxPublish("published")
		if err := r.repo.MarkPublished(ctx, credit.ID); err != nil {
			markErrors = append(markErrors, err)
		}
	}

	if summary.Published > 0 {
		r.logger.Info("ledger credits published", "count", summary.Published)
	}
	return summary, errors.Join(markErrors...)
}

func encodeCredit(credit domain.LedgerCredit) (publisher.Message, error) {
	amount := "0"
	if credit.Amount != nil {
		amount = credit.Amount.String()
	}

	payload, err := json.Marshal(creditMessage{
		IdempotencyKey: credit.IdempotencyKey,
		OrderID:        credit.OrderID,
		UserID:         credit.UserID,
		ChainID:        credit.ChainID,
		AssetSymbol:    credit.Asset.Symbol,
		TokenContract:  credit.Asset.Contract,
		AssetDecimals:  credit.Asset.Decimals,
		Amount:         amount,
		Reason:         credit.Reason,
		CreatedAt:      credit.CreatedAt.UTC(),
	})
	if err != nil {
		return publisher.Message{}, fmt.Errorf("encode ledger credit %s: %w", credit.ID, err)
	}

	return publisher.Message{
		Key:   credit.IdempotencyKey,
		Value: payload,
		Headers: map[string]string{
			publisher.HeaderIdempotencyKey: credit.IdempotencyKey,
		},
	}, nil
}
