package services

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/settlement-engine/internal/domain"
	"github.com/joshuarp/settlement-engine/internal/domain/vo"
	chainmocks "github.com/joshuarp/settlement-engine/internal/mock/chains"
	servicemocks "github.com/joshuarp/settlement-engine/internal/mock/services"
)

type SettlementOperationsServiceSuite struct {
	suite.Suite

	processor *servicemocks.DueProcessor
	repo      *servicemocks.SettlementRepository
	registry  *servicemocks.ChainRegistry
	tracker   *servicemocks.Tracker
	adapter   *chainmocks.Adapter
	service   *SettlementOperationsService
}

var operationsNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func (s *SettlementOperationsServiceSuite) SetupTest() {
	s.processor = servicemocks.NewDueProcessor(s.T())
	s.repo = servicemocks.NewSettlementRepository(s.T())
	s.registry = servicemocks.NewChainRegistry(s.T())
	s.tracker = servicemocks.NewTracker(s.T())
	s.adapter = chainmocks.NewAdapter(s.T())
	s.service = NewSettlementOperationsService(s.processor, s.repo, s.registry, s.tracker,
		NewSettlementMetrics(prometheus.NewRegistry()), discardLogger(),
		OperationsOptions{BroadcastStuckAfter: 10 * time.Minute})
	s.service.now = func() time.Time { return operationsNow }
}

// detailWithStatus returns wd-1 last updated long enough ago to count as stuck.
func detailWithStatus(status domain.OrderStatus) vo.WithdrawalDetail {
	order := claimedOrder("wd-1", 100, nativeETH)
	order.Status = status
	order.UpdatedAt = operationsNow.Add(-15 * time.Minute)
	return vo.WithdrawalDetail{Order: order}
}

func recentBroadcast() vo.WithdrawalDetail {
	detail := detailWithStatus(domain.OrderStatusBroadcasting)
	detail.Order.UpdatedAt = operationsNow.Add(-30 * time.Second)
	return detail
}

func (s *SettlementOperationsServiceSuite) TestProcessDue() {
	s.Run("known chain", func() {
		s.SetupTest()
		s.registry.EXPECT().Config(testChain).Return(testChainConfig(), nil)
		s.processor.EXPECT().ProcessDue(mock.Anything, testChain).Return(vo.ProcessSummary{ChainID: testChain, Claimed: 2}, nil)

		summary, err := s.service.ProcessDue(context.Background(), " "+testChain+" ")
		require.NoError(s.T(), err)
		assert.Equal(s.T(), 2, summary.Claimed)
	})

	s.Run("unknown chain", func() {
		s.SetupTest()
		s.registry.EXPECT().Config("nope").Return(domain.ChainConfig{}, vo.ErrUnknownChain)

		_, err := s.service.ProcessDue(context.Background(), "nope")
		assert.ErrorIs(s.T(), err, vo.ErrUnknownChain)
	})
}

func (s *SettlementOperationsServiceSuite) TestReattach_TableDriven() {
	tests := []struct {
		name      string
		txHash    string
		setupMock func()
		assertion func(vo.WithdrawalDetail, error)
	}{
		{
			name:   "hash is required",
			txHash: "  ",
			assertion: func(_ vo.WithdrawalDetail, err error) {
				assert.ErrorIs(s.T(), err, ErrTxHashRequired)
			},
		},
		{
			name:   "only broadcasting orders can be reattached",
			txHash: "0xfound",
			setupMock: func() {
				s.repo.EXPECT().GetWithdrawal(mock.Anything, "wd-1").Return(detailWithStatus(domain.OrderStatusAwaitingConfirmation), nil)
			},
			assertion: func(_ vo.WithdrawalDetail, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrStaleTransition)
			},
		},
		{
			name:   "broadcast younger than the stuck threshold may still be in flight",
			txHash: "0xfound",
			setupMock: func() {
				s.repo.EXPECT().GetWithdrawal(mock.Anything, "wd-1").Return(recentBroadcast(), nil)
			},
			assertion: func(_ vo.WithdrawalDetail, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrBroadcastInFlight)
			},
		},
		{
			name:   "hash unknown to the chain is refused",
			txHash: "0xghost",
			setupMock: func() {
				s.repo.EXPECT().GetWithdrawal(mock.Anything, "wd-1").Return(detailWithStatus(domain.OrderStatusBroadcasting), nil)
				s.registry.EXPECT().Adapter(testChain).Return(s.adapter, nil)
				s.adapter.EXPECT().GetReceipt(mock.Anything, "0xghost").Return(vo.Receipt{Found: false}, nil)
				s.adapter.EXPECT().IsPending(mock.Anything, "0xghost").Return(false, nil)
			},
			assertion: func(_ vo.WithdrawalDetail, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrTransactionNotFound)
			},
		},
		{
			name:   "pending hash is recorded and tracked",
			txHash: "0xpending",
			setupMock: func() {
				s.repo.EXPECT().GetWithdrawal(mock.Anything, "wd-1").Return(detailWithStatus(domain.OrderStatusBroadcasting), nil).Once()
				s.registry.EXPECT().Adapter(testChain).Return(s.adapter, nil)
				s.adapter.EXPECT().GetReceipt(mock.Anything, "0xpending").Return(vo.Receipt{Found: false}, nil)
				s.adapter.EXPECT().IsPending(mock.Anything, "0xpending").Return(true, nil)
				s.repo.EXPECT().RecordAttempt(mock.Anything, "wd-1", "0xpending", (*big.Int)(nil), mock.Anything).
					Return(domain.SettlementAttempt{OrderID: "wd-1", AttemptSeq: 1, TxHash: "0xpending"}, nil)
				s.tracker.EXPECT().Track(mock.MatchedBy(func(req vo.TrackRequest) bool {
					return req.OrderID == "wd-1" && req.AttemptSeq == 1 && req.TxHash == "0xpending"
				})).Return(true)
				s.repo.EXPECT().GetWithdrawal(mock.Anything, "wd-1").Return(detailWithStatus(domain.OrderStatusAwaitingConfirmation), nil).Once()
			},
			assertion: func(detail vo.WithdrawalDetail, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), domain.OrderStatusAwaitingConfirmation, detail.Order.Status)
			},
		},
		{
			name:   "mined hash skips the pool check",
			txHash: "0xmined",
			setupMock: func() {
				s.repo.EXPECT().GetWithdrawal(mock.Anything, "wd-1").Return(detailWithStatus(domain.OrderStatusBroadcasting), nil).Once()
				s.registry.EXPECT().Adapter(testChain).Return(s.adapter, nil)
				s.adapter.EXPECT().GetReceipt(mock.Anything, "0xmined").Return(vo.Receipt{Found: true, Success: true, Confirmations: 1}, nil)
				s.repo.EXPECT().RecordAttempt(mock.Anything, "wd-1", "0xmined", (*big.Int)(nil), mock.Anything).
					Return(domain.SettlementAttempt{OrderID: "wd-1", AttemptSeq: 2, TxHash: "0xmined"}, nil)
				s.tracker.EXPECT().Track(mock.Anything).Return(true)
				s.repo.EXPECT().GetWithdrawal(mock.Anything, "wd-1").Return(detailWithStatus(domain.OrderStatusAwaitingConfirmation), nil).Once()
			},
			assertion: func(_ vo.WithdrawalDetail, err error) {
				require.NoError(s.T(), err)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			detail, err := s.service.Reattach(context.Background(), "wd-1", tc.txHash)
			tc.assertion(detail, err)
		})
	}
}

func (s *SettlementOperationsServiceSuite) TestAbandon() {
	s.Run("fails a stuck broadcast with a credit", func() {
		s.SetupTest()
		s.repo.EXPECT().GetWithdrawal(mock.Anything, "wd-1").Return(detailWithStatus(domain.OrderStatusBroadcasting), nil).Once()
		s.repo.EXPECT().FailOrder(mock.Anything, claimOf("wd-1"), domain.OrderStatusBroadcasting, vo.ReasonBroadcastAbandoned).Return(nil)
		failed := detailWithStatus(domain.OrderStatusFailed)
		failed.Order.FailureReason = string(vo.ReasonBroadcastAbandoned)
		s.repo.EXPECT().GetWithdrawal(mock.Anything, "wd-1").Return(failed, nil).Once()

		detail, err := s.service.Abandon(context.Background(), "wd-1")
		require.NoError(s.T(), err)
		assert.Equal(s.T(), domain.OrderStatusFailed, detail.Order.Status)
		assert.Equal(s.T(), "broadcast_abandoned", detail.Order.FailureReason)
	})

	s.Run("order in another state is stale", func() {
		s.SetupTest()
		s.repo.EXPECT().GetWithdrawal(mock.Anything, "wd-1").Return(detailWithStatus(domain.OrderStatusConfirmed), nil)

		_, err := s.service.Abandon(context.Background(), "wd-1")
		assert.ErrorIs(s.T(), err, vo.ErrStaleTransition)
	})

	s.Run("recent broadcast is left to its worker", func() {
		s.SetupTest()
		s.repo.EXPECT().GetWithdrawal(mock.Anything, "wd-1").Return(recentBroadcast(), nil)

		_, err := s.service.Abandon(context.Background(), "wd-1")
		assert.ErrorIs(s.T(), err, vo.ErrBroadcastInFlight)
		assert.NotErrorIs(s.T(), err, vo.ErrStaleTransition)
	})

	s.Run("worker finishing between read and write is stale", func() {
		s.SetupTest()
		s.repo.EXPECT().GetWithdrawal(mock.Anything, "wd-1").Return(detailWithStatus(domain.OrderStatusBroadcasting), nil)
		s.repo.EXPECT().FailOrder(mock.Anything, claimOf("wd-1"), domain.OrderStatusBroadcasting, vo.ReasonBroadcastAbandoned).Return(vo.ErrStaleTransition)

		_, err := s.service.Abandon(context.Background(), "wd-1")
		assert.ErrorIs(s.T(), err, vo.ErrStaleTransition)
	})

	s.Run("unknown order", func() {
		s.SetupTest()
		s.repo.EXPECT().GetWithdrawal(mock.Anything, "wd-404").Return(vo.WithdrawalDetail{}, vo.ErrOrderNotFound)

		_, err := s.service.Abandon(context.Background(), "wd-404")
		assert.ErrorIs(s.T(), err, vo.ErrOrderNotFound)
	})
}

func TestSettlementOperationsServiceSuite(t *testing.T) {
	suite.Run(t, new(SettlementOperationsServiceSuite))
}
