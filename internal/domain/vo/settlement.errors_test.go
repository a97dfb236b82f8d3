package vo

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SettlementErrorsSuite struct{ suite.Suite }

func (s *SettlementErrorsSuite) TestReasonFor_TableDriven() {
	tests := []struct {
		name      string
		err       error
		reason    ReasonCode
		retryable bool
	}{
		{name: "nil", err: nil, reason: ReasonNone, retryable: false},
		{name: "wrapped rpc", err: fmt.Errorf("%w: dial tcp", ErrRPCUnavailable), reason: ReasonRPCUnavailable, retryable: true},
		{name: "rejected", err: fmt.Errorf("%w: nonce too low", ErrBroadcastRejected), reason: ReasonBroadcastRejected, retryable: true},
		{name: "hot wallet short", err: ErrInsufficientHotWalletBalance, reason: ReasonInsufficientHotWalletBalance, retryable: false},
		{name: "bad address", err: fmt.Errorf("%w: 0x12", ErrInvalidAddress), reason: ReasonInvalidAddress, retryable: false},
		{name: "bad amount", err: ErrInvalidAmount, reason: ReasonInvalidAmount, retryable: false},
		{name: "dropped transaction", err: fmt.Errorf("%w: 0xabc neither mined nor pending", ErrConfirmationTimeout), reason: ReasonConfirmationTimeout, retryable: false},
		{name: "unknown error is rpc", err: errors.New("boom"), reason: ReasonRPCUnavailable, retryable: true},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			assert.Equal(s.T(), tc.reason, ReasonFor(tc.err))
			assert.Equal(s.T(), tc.retryable, IsRetryable(tc.err))
		})
	}
}

func (s *SettlementErrorsSuite) TestRetryPolicyBackoff_TableDriven() {
	policy := RetryPolicy{MaxRetries: 5, BaseBackoff: 10 * time.Second, MaxBackoff: time.Minute}

	tests := []struct {
		name   string
		retry  int
		expect time.Duration
	}{
		{name: "first retry uses base", retry: 1, expect: 10 * time.Second},
		{name: "second retry doubles", retry: 2, expect: 20 * time.Second},
		{name: "third retry doubles again", retry: 3, expect: 40 * time.Second},
		{name: "capped at max", retry: 4, expect: time.Minute},
		{name: "stays capped", retry: 9, expect: time.Minute},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			assert.Equal(s.T(), tc.expect, policy.Backoff(tc.retry))
		})
	}

	assert.Zero(s.T(), RetryPolicy{}.Backoff(3))
}

func TestSettlementErrorsSuite(t *testing.T) {
	suite.Run(t, new(SettlementErrorsSuite))
}
