package vo

import (
	"math/big"
	"time"

	"github.com/joshuarp/settlement-engine/internal/domain"
)

type TrackRequest struct {
	OrderID     string
	AttemptSeq  int
	ChainID     string
	TxHash      string
	BroadcastAt time.Time
}

func (r TrackRequest) Key() TrackKey {
	return TrackKey{OrderID: r.OrderID, AttemptSeq: r.AttemptSeq}
}

type TrackKey struct {
	OrderID    string
	AttemptSeq int
}

type TrackOutcome struct {
	OrderID     string
	AttemptSeq  int
	ChainID     string
	TxHash      string
	Outcome     domain.AttemptOutcome
	Reason      ReasonCode
	FeePaid     *big.Int
	BlockNumber int64
}

// RetryPolicy bounds how often an order returns to Approved.
type RetryPolicy struct {
	MaxRetries  int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

// Backoff returns the delay before the retry with the given (1-based) number.
func (p RetryPolicy) Backoff(retry int) time.Duration {
	if p.BaseBackoff <= 0 {
		return 0
	}

	delay := p.BaseBackoff
	for i := 1; i < retry; i++ {
		delay *= 2
		if p.MaxBackoff > 0 && delay >= p.MaxBackoff {
			return p.MaxBackoff
		}
	}

	if p.MaxBackoff > 0 && delay > p.MaxBackoff {
		return p.MaxBackoff
	}

	return delay
}
