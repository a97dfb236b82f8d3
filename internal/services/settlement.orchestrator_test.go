package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/settlement-engine/internal/domain"
	"github.com/joshuarp/settlement-engine/internal/domain/vo"
	chainmocks "github.com/joshuarp/settlement-engine/internal/mock/chains"
	servicemocks "github.com/joshuarp/settlement-engine/internal/mock/services"
)

const testChain = "eth-sepolia"

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testChainConfig() domain.ChainConfig {
	return domain.ChainConfig{
		ID:             testChain,
		Family:         domain.ChainFamilyEVM,
		ConfirmNum:     3,
		NativeDecimals: 18,
		NativeSymbol:   "ETH",
		BlockTime:      12 * time.Second,
	}
}

var nativeETH = domain.AssetRef{Symbol: "ETH", Decimals: 18}

var usdt = domain.AssetRef{Symbol: "USDT", Contract: "0x7169D38820dfd117C3FA1f22a697dBA58d90BA06", Decimals: 6}

func claimedOrder(id string, amount int64, asset domain.AssetRef) domain.WithdrawalOrder {
	return domain.WithdrawalOrder{
		ID:          id,
		UserID:      "user-1",
		ChainID:     testChain,
		Asset:       asset,
		Destination: "0x1111111111111111111111111111111111111111",
		Amount:      big.NewInt(amount),
		Status:      domain.OrderStatusClaimed,
		ClaimToken:  "claim-" + id,
	}
}

func claimOf(id string) domain.Claim {
	return domain.Claim{OrderID: id, Token: "claim-" + id}
}

type SettlementOrchestratorSuite struct {
	suite.Suite

	repo     *servicemocks.SettlementRepository
	registry *servicemocks.ChainRegistry
	tracker  *servicemocks.Tracker
	adapter  *chainmocks.Adapter
	metrics  *SettlementMetrics
	policy   vo.RetryPolicy
	orch     *SettlementOrchestrator
}

func (s *SettlementOrchestratorSuite) SetupTest() {
	s.repo = servicemocks.NewSettlementRepository(s.T())
	s.registry = servicemocks.NewChainRegistry(s.T())
	s.tracker = servicemocks.NewTracker(s.T())
	s.adapter = chainmocks.NewAdapter(s.T())
	s.metrics = NewSettlementMetrics(prometheus.NewRegistry())
	s.policy = vo.RetryPolicy{MaxRetries: 3, BaseBackoff: time.Second, MaxBackoff: time.Minute}
	s.orch = NewSettlementOrchestrator(s.repo, s.registry, s.tracker, s.metrics, discardLogger(), OrchestratorOptions{
		PoolSize:  5,
		BatchSize: 10,
		Retry:     s.policy,
	})
}

func (s *SettlementOrchestratorSuite) expectChain() {
	s.registry.EXPECT().Adapter(testChain).Return(s.adapter, nil)
	s.registry.EXPECT().Config(testChain).Return(testChainConfig(), nil)
}

func (s *SettlementOrchestratorSuite) TestProcessDue_SingleOrder_TableDriven() {
	rpcErr := fmt.Errorf("%w: dial tcp: i/o timeout", vo.ErrRPCUnavailable)
	nativeFee := vo.FeeEstimate{FeeLimit: big.NewInt(21000), FeePrice: big.NewInt(10), FeeCeiling: big.NewInt(210000)}

	tests := []struct {
		name      string
		order     domain.WithdrawalOrder
		setupMock func(order domain.WithdrawalOrder)
		expect    vo.ProcessSummary
	}{
		{
			name:  "native transfer is broadcast persisted and tracked",
			order: claimedOrder("wd-1", 1_000_000, nativeETH),
			setupMock: func(order domain.WithdrawalOrder) {
				s.adapter.EXPECT().ValidateAddress(order.Destination).Return(nil)
				s.adapter.EXPECT().EstimateFee(mock.Anything, mock.Anything).Return(nativeFee, nil)
				s.adapter.EXPECT().HotWallet().Return("0xhot")
				s.adapter.EXPECT().GetBalance(mock.Anything, "0xhot", nativeETH).Return(big.NewInt(5_000_000), nil)
				s.repo.EXPECT().MarkBroadcasting(mock.Anything, claimOf("wd-1")).Return(nil)
				s.adapter.EXPECT().Broadcast(mock.Anything, mock.Anything, nativeFee).Return("0xtx1", nil)
				s.repo.EXPECT().RecordAttempt(mock.Anything, "wd-1", "0xtx1", nativeFee.FeeCeiling, mock.Anything).
					Return(domain.SettlementAttempt{OrderID: "wd-1", AttemptSeq: 1, TxHash: "0xtx1"}, nil)
				s.tracker.EXPECT().Track(mock.MatchedBy(func(req vo.TrackRequest) bool {
					return req.OrderID == "wd-1" && req.AttemptSeq == 1 && req.TxHash == "0xtx1" && req.ChainID == testChain
				})).Return(true)
			},
			expect: vo.ProcessSummary{ChainID: testChain, Claimed: 1, Broadcast: 1},
		},
		{
			name:  "hot wallet below amount plus fee fails without broadcast",
			order: claimedOrder("wd-2", 100, nativeETH),
			setupMock: func(order domain.WithdrawalOrder) {
				s.adapter.EXPECT().ValidateAddress(order.Destination).Return(nil)
				s.adapter.EXPECT().EstimateFee(mock.Anything, mock.Anything).Return(vo.FeeEstimate{FeeCeiling: big.NewInt(0)}, nil)
				s.adapter.EXPECT().HotWallet().Return("0xhot")
				s.adapter.EXPECT().GetBalance(mock.Anything, "0xhot", nativeETH).Return(big.NewInt(50), nil)
				s.repo.EXPECT().FailOrder(mock.Anything, claimOf("wd-2"), domain.OrderStatusClaimed, vo.ReasonInsufficientHotWalletBalance).Return(nil)
			},
			expect: vo.ProcessSummary{ChainID: testChain, Claimed: 1, Failed: 1},
		},
		{
			name:  "token transfer without enough native coin for the fee fails",
			order: claimedOrder("wd-3", 500, usdt),
			setupMock: func(order domain.WithdrawalOrder) {
				s.adapter.EXPECT().ValidateAddress(order.Destination).Return(nil)
				s.adapter.EXPECT().EstimateFee(mock.Anything, mock.Anything).Return(vo.FeeEstimate{FeeCeiling: big.NewInt(900)}, nil)
				s.adapter.EXPECT().HotWallet().Return("0xhot")
				s.adapter.EXPECT().GetBalance(mock.Anything, "0xhot", nativeETH).Return(big.NewInt(899), nil)
				s.repo.EXPECT().FailOrder(mock.Anything, claimOf("wd-3"), domain.OrderStatusClaimed, vo.ReasonInsufficientHotWalletBalance).Return(nil)
			},
			expect: vo.ProcessSummary{ChainID: testChain, Claimed: 1, Failed: 1},
		},
		{
			name:  "token balance below amount fails",
			order: claimedOrder("wd-4", 500, usdt),
			setupMock: func(order domain.WithdrawalOrder) {
				s.adapter.EXPECT().ValidateAddress(order.Destination).Return(nil)
				s.adapter.EXPECT().EstimateFee(mock.Anything, mock.Anything).Return(vo.FeeEstimate{FeeCeiling: big.NewInt(900)}, nil)
				s.adapter.EXPECT().HotWallet().Return("0xhot")
				s.adapter.EXPECT().GetBalance(mock.Anything, "0xhot", nativeETH).Return(big.NewInt(10_000), nil)
				s.adapter.EXPECT().GetBalance(mock.Anything, "0xhot", usdt).Return(big.NewInt(499), nil)
				s.repo.EXPECT().FailOrder(mock.Anything, claimOf("wd-4"), domain.OrderStatusClaimed, vo.ReasonInsufficientHotWalletBalance).Return(nil)
			},
			expect: vo.ProcessSummary{ChainID: testChain, Claimed: 1, Failed: 1},
		},
		{
			name:  "invalid destination fails before any rpc",
			order: claimedOrder("wd-5", 100, nativeETH),
			setupMock: func(order domain.WithdrawalOrder) {
				s.adapter.EXPECT().ValidateAddress(order.Destination).Return(vo.ErrInvalidAddress)
				s.repo.EXPECT().FailOrder(mock.Anything, claimOf("wd-5"), domain.OrderStatusClaimed, vo.ReasonInvalidAddress).Return(nil)
			},
			expect: vo.ProcessSummary{ChainID: testChain, Claimed: 1, Failed: 1},
		},
		{
			name:  "zero amount is invalid",
			order: claimedOrder("wd-6", 0, nativeETH),
			setupMock: func(domain.WithdrawalOrder) {
				s.repo.EXPECT().FailOrder(mock.Anything, claimOf("wd-6"), domain.OrderStatusClaimed, vo.ReasonInvalidAmount).Return(nil)
			},
			expect: vo.ProcessSummary{ChainID: testChain, Claimed: 1, Failed: 1},
		},
		{
			name:  "rpc outage during estimate is retried",
			order: claimedOrder("wd-7", 100, nativeETH),
			setupMock: func(order domain.WithdrawalOrder) {
				s.adapter.EXPECT().ValidateAddress(order.Destination).Return(nil)
				s.adapter.EXPECT().EstimateFee(mock.Anything, mock.Anything).Return(vo.FeeEstimate{}, rpcErr)
				s.repo.EXPECT().ReleaseForRetry(mock.Anything, claimOf("wd-7"), domain.OrderStatusClaimed, vo.ReasonRPCUnavailable, s.policy).Return(true, nil)
			},
			expect: vo.ProcessSummary{ChainID: testChain, Claimed: 1, Retried: 1},
		},
		{
			name:  "exhausted retries end failed",
			order: claimedOrder("wd-8", 100, nativeETH),
			setupMock: func(order domain.WithdrawalOrder) {
				s.adapter.EXPECT().ValidateAddress(order.Destination).Return(nil)
				s.adapter.EXPECT().EstimateFee(mock.Anything, mock.Anything).Return(vo.FeeEstimate{}, rpcErr)
				s.repo.EXPECT().ReleaseForRetry(mock.Anything, claimOf("wd-8"), domain.OrderStatusClaimed, vo.ReasonRPCUnavailable, s.policy).Return(false, nil)
			},
			expect: vo.ProcessSummary{ChainID: testChain, Claimed: 1, Failed: 1},
		},
		{
			name:  "rejected broadcast is released from broadcasting",
			order: claimedOrder("wd-9", 100, nativeETH),
			setupMock: func(order domain.WithdrawalOrder) {
				s.adapter.EXPECT().ValidateAddress(order.Destination).Return(nil)
				s.adapter.EXPECT().EstimateFee(mock.Anything, mock.Anything).Return(nativeFee, nil)
				s.adapter.EXPECT().HotWallet().Return("0xhot")
				s.adapter.EXPECT().GetBalance(mock.Anything, "0xhot", nativeETH).Return(big.NewInt(5_000_000), nil)
				s.repo.EXPECT().MarkBroadcasting(mock.Anything, claimOf("wd-9")).Return(nil)
				s.adapter.EXPECT().Broadcast(mock.Anything, mock.Anything, nativeFee).
					Return("", fmt.Errorf("%w: nonce too low", vo.ErrBroadcastRejected))
				s.repo.EXPECT().ReleaseForRetry(mock.Anything, claimOf("wd-9"), domain.OrderStatusBroadcasting, vo.ReasonBroadcastRejected, s.policy).Return(true, nil)
			},
			expect: vo.ProcessSummary{ChainID: testChain, Claimed: 1, Retried: 1},
		},
		{
			name:  "order taken by someone else is skipped",
			order: claimedOrder("wd-10", 100, nativeETH),
			setupMock: func(order domain.WithdrawalOrder) {
				s.adapter.EXPECT().ValidateAddress(order.Destination).Return(nil)
				s.adapter.EXPECT().EstimateFee(mock.Anything, mock.Anything).Return(nativeFee, nil)
				s.adapter.EXPECT().HotWallet().Return("0xhot")
				s.adapter.EXPECT().GetBalance(mock.Anything, "0xhot", nativeETH).Return(big.NewInt(5_000_000), nil)
				s.repo.EXPECT().MarkBroadcasting(mock.Anything, claimOf("wd-10")).Return(vo.ErrStaleTransition)
			},
			expect: vo.ProcessSummary{ChainID: testChain, Claimed: 1, Skipped: 1},
		},
		{
			name:  "broadcast that cannot be persisted is not tracked",
			order: claimedOrder("wd-11", 100, nativeETH),
			setupMock: func(order domain.WithdrawalOrder) {
				s.adapter.EXPECT().ValidateAddress(order.Destination).Return(nil)
				s.adapter.EXPECT().EstimateFee(mock.Anything, mock.Anything).Return(nativeFee, nil)
				s.adapter.EXPECT().HotWallet().Return("0xhot")
				s.adapter.EXPECT().GetBalance(mock.Anything, "0xhot", nativeETH).Return(big.NewInt(5_000_000), nil)
				s.repo.EXPECT().MarkBroadcasting(mock.Anything, claimOf("wd-11")).Return(nil)
				s.adapter.EXPECT().Broadcast(mock.Anything, mock.Anything, nativeFee).Return("0xtx11", nil)
				s.repo.EXPECT().RecordAttempt(mock.Anything, "wd-11", "0xtx11", nativeFee.FeeCeiling, mock.Anything).
					Return(domain.SettlementAttempt{}, errors.New("connection refused"))
			},
			expect: vo.ProcessSummary{ChainID: testChain, Claimed: 1, Unpersisted: 1},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.expectChain()
			s.repo.EXPECT().ClaimDue(mock.Anything, testChain, 10).Return([]domain.WithdrawalOrder{tc.order}, nil)
			tc.setupMock(tc.order)

			summary, err := s.orch.ProcessDue(context.Background(), testChain)
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.expect, summary)
		})
	}
}

func (s *SettlementOrchestratorSuite) TestProcessDue_NothingDue() {
	s.expectChain()
	s.repo.EXPECT().ClaimDue(mock.Anything, testChain, 10).Return(nil, nil)

	summary, err := s.orch.ProcessDue(context.Background(), testChain)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), vo.ProcessSummary{ChainID: testChain}, summary)
}

func (s *SettlementOrchestratorSuite) TestProcessDue_UnknownChain() {
	s.registry.EXPECT().Adapter("nope").Return(nil, vo.ErrUnknownChain)

	_, err := s.orch.ProcessDue(context.Background(), "nope")
	assert.ErrorIs(s.T(), err, vo.ErrUnknownChain)
}

func (s *SettlementOrchestratorSuite) TestProcessDue_ClaimErrorIsReturned() {
	claimErr := errors.New("too many connections")
	s.expectChain()
	s.repo.EXPECT().ClaimDue(mock.Anything, testChain, 10).Return(nil, claimErr)

	_, err := s.orch.ProcessDue(context.Background(), testChain)
	assert.ErrorIs(s.T(), err, claimErr)
}

func (s *SettlementOrchestratorSuite) TestProcessDue_PanickingOrderIsIsolated() {
	bad := claimedOrder("wd-panic", 100, nativeETH)
	bad.Destination = "0xpanic"
	zero := claimedOrder("wd-zero", 0, nativeETH)

	s.expectChain()
	s.repo.EXPECT().ClaimDue(mock.Anything, testChain, 10).Return([]domain.WithdrawalOrder{bad, zero}, nil)
	s.adapter.EXPECT().ValidateAddress("0xpanic").RunAndReturn(func(string) error {
		panic("decoder exploded")
	})
	s.repo.EXPECT().FailOrder(mock.Anything, claimOf("wd-zero"), domain.OrderStatusClaimed, vo.ReasonInvalidAmount).Return(nil)

	summary, err := s.orch.ProcessDue(context.Background(), testChain)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), vo.ProcessSummary{ChainID: testChain, Claimed: 2, Failed: 1, Skipped: 1}, summary)
}

func (s *SettlementOrchestratorSuite) TestFinalize_TableDriven() {
	dbErr := errors.New("deadlock detected")

	tests := []struct {
		name    string
		outcome vo.TrackOutcome
		repoErr error
		wantErr error
	}{
		{
			name:    "confirmed",
			outcome: vo.TrackOutcome{OrderID: "wd-1", AttemptSeq: 1, ChainID: testChain, Outcome: domain.AttemptOutcomeConfirmed, FeePaid: big.NewInt(21000)},
		},
		{
			name:    "duplicate outcome is a no-op",
			outcome: vo.TrackOutcome{OrderID: "wd-1", AttemptSeq: 1, ChainID: testChain, Outcome: domain.AttemptOutcomeFailed, Reason: vo.ReasonReverted},
			repoErr: vo.ErrStaleTransition,
		},
		{
			name:    "database error is returned",
			outcome: vo.TrackOutcome{OrderID: "wd-1", AttemptSeq: 1, ChainID: testChain, Outcome: domain.AttemptOutcomeConfirmed},
			repoErr: dbErr,
			wantErr: dbErr,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.repo.EXPECT().FinalizeAttempt(mock.Anything, tc.outcome).Return(tc.repoErr)

			err := s.orch.Finalize(context.Background(), tc.outcome)
			if tc.wantErr != nil {
				assert.ErrorIs(s.T(), err, tc.wantErr)
			} else {
				assert.NoError(s.T(), err)
			}
		})
	}
}

func (s *SettlementOrchestratorSuite) TestResumeAwaiting_CountsNewTrackers() {
	now := time.Now()
	s.repo.EXPECT().ListAwaiting(mock.Anything, testChain).Return([]domain.PendingAttempt{
		{OrderID: "wd-1", ChainID: testChain, AttemptSeq: 1, TxHash: "0xa", BroadcastAt: now},
		{OrderID: "wd-2", ChainID: testChain, AttemptSeq: 2, TxHash: "0xb", BroadcastAt: now},
	}, nil)
	s.tracker.EXPECT().Track(vo.TrackRequest{OrderID: "wd-1", AttemptSeq: 1, ChainID: testChain, TxHash: "0xa", BroadcastAt: now}).Return(true)
	s.tracker.EXPECT().Track(vo.TrackRequest{OrderID: "wd-2", AttemptSeq: 2, ChainID: testChain, TxHash: "0xb", BroadcastAt: now}).Return(false)

	started, err := s.orch.ResumeAwaiting(context.Background(), testChain)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, started)
}

func (s *SettlementOrchestratorSuite) TestRecoverStale_ReleasesClaimsAndReportsStuckBroadcasts() {
	s.repo.EXPECT().ReleaseStaleClaims(mock.Anything, testChain, 5*time.Minute).Return(int64(2), nil)
	s.repo.EXPECT().ListStuckBroadcasting(mock.Anything, testChain, 10*time.Minute).Return([]domain.WithdrawalOrder{
		{ID: "wd-stuck", ChainID: testChain, Status: domain.OrderStatusBroadcasting},
	}, nil)

	require.NoError(s.T(), s.orch.RecoverStale(context.Background(), testChain))
	assert.Equal(s.T(), float64(1), testutil.ToFloat64(s.metrics.stuckBroadcasting.WithLabelValues(testChain)))
}

func (s *SettlementOrchestratorSuite) TestStartAppliesTrackerOutcomesUntilStop() {
	results := make(chan vo.TrackOutcome, 1)
	outcome := vo.TrackOutcome{OrderID: "wd-1", AttemptSeq: 1, ChainID: testChain, Outcome: domain.AttemptOutcomeConfirmed}
	finalized := make(chan struct{})

	s.registry.EXPECT().ChainIDs().Return([]string{testChain})
	s.repo.EXPECT().ListAwaiting(mock.Anything, testChain).Return(nil, nil)
	s.tracker.EXPECT().Results().Return((<-chan vo.TrackOutcome)(results))
	s.repo.EXPECT().FinalizeAttempt(mock.Anything, outcome).
		Run(func(context.Context, vo.TrackOutcome) { close(finalized) }).
		Return(nil).Once()
	s.tracker.EXPECT().Stop().Return()

	s.orch.Start(context.Background())
	results <- outcome

	select {
	case <-finalized:
	case <-time.After(2 * time.Second):
		s.FailNow("outcome was not finalized")
	}

	s.orch.Stop()
}

func TestSettlementOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(SettlementOrchestratorSuite))
}

// memoryRepository claims atomically under a mutex, standing in for the
// single-statement claim of the SQL repository.
type memoryRepository struct {
	mu       sync.Mutex
	orders   map[string]*domain.WithdrawalOrder
	attempts map[string][]domain.SettlementAttempt
	credits  map[string]vo.ReasonCode
	claims   int
}

func newMemoryRepository(orders ...domain.WithdrawalOrder) *memoryRepository {
	repo := &memoryRepository{
		orders:   make(map[string]*domain.WithdrawalOrder),
		attempts: make(map[string][]domain.SettlementAttempt),
		credits:  make(map[string]vo.ReasonCode),
	}
	for _, order := range orders {
		order.Status = domain.OrderStatusApproved
		repo.orders[order.ID] = &order
	}
	return repo
}

func (m *memoryRepository) transition(claim domain.Claim, from, to domain.OrderStatus) error {
	order, ok := m.orders[claim.OrderID]
	if !ok {
		return vo.ErrOrderNotFound
	}
	if order.Status != from {
		return vo.ErrStaleTransition
	}
	if claim.Token != "" && claim.Token != order.ClaimToken {
		return vo.ErrStaleTransition
	}
	order.Status = to
	return nil
}

func (m *memoryRepository) ClaimDue(_ context.Context, chainID string, limit int) ([]domain.WithdrawalOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.orders))
	for id, order := range m.orders {
		if order.ChainID == chainID && order.Status == domain.OrderStatusApproved {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	var claimed []domain.WithdrawalOrder
	for _, id := range ids {
		if len(claimed) == limit {
			break
		}
		m.claims++
		m.orders[id].Status = domain.OrderStatusClaimed
		m.orders[id].ClaimToken = fmt.Sprintf("claim-%d", m.claims)
		claimed = append(claimed, *m.orders[id])
	}
	return claimed, nil
}

func (m *memoryRepository) MarkBroadcasting(_ context.Context, claim domain.Claim) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transition(claim, domain.OrderStatusClaimed, domain.OrderStatusBroadcasting)
}

func (m *memoryRepository) RecordAttempt(_ context.Context, orderID, txHash string, fee *big.Int, at time.Time) (domain.SettlementAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.transition(domain.Claim{OrderID: orderID}, domain.OrderStatusBroadcasting, domain.OrderStatusAwaitingConfirmation); err != nil {
		return domain.SettlementAttempt{}, err
	}
	attempt := domain.SettlementAttempt{
		OrderID: orderID, AttemptSeq: len(m.attempts[orderID]) + 1, TxHash: txHash,
		FeeEstimate: fee, BroadcastAt: at, Outcome: domain.AttemptOutcomePending,
	}
	m.attempts[orderID] = append(m.attempts[orderID], attempt)
	return attempt, nil
}

func (m *memoryRepository) ReleaseForRetry(_ context.Context, claim domain.Claim, from domain.OrderStatus, reason vo.ReasonCode, policy vo.RetryPolicy) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order := m.orders[claim.OrderID]
	if order.RetryCount >= policy.MaxRetries {
		if err := m.transition(claim, from, domain.OrderStatusFailed); err != nil {
			return false, err
		}
		m.credits[claim.OrderID] = reason
		return false, nil
	}
	if err := m.transition(claim, from, domain.OrderStatusApproved); err != nil {
		return false, err
	}
	order.RetryCount++
	order.ClaimToken = ""
	return true, nil
}

func (m *memoryRepository) FailOrder(_ context.Context, claim domain.Claim, from domain.OrderStatus, reason vo.ReasonCode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.transition(claim, from, domain.OrderStatusFailed); err != nil {
		return err
	}
	m.credits[claim.OrderID] = reason
	return nil
}

func (m *memoryRepository) FinalizeAttempt(context.Context, vo.TrackOutcome) error { return nil }

func (m *memoryRepository) ListAwaiting(context.Context, string) ([]domain.PendingAttempt, error) {
	return nil, nil
}

// ReleaseStaleClaims treats every Claimed order as expired.
func (m *memoryRepository) ReleaseStaleClaims(_ context.Context, chainID string, _ time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var released int64
	for _, order := range m.orders {
		if order.ChainID == chainID && order.Status == domain.OrderStatusClaimed {
			order.Status = domain.OrderStatusApproved
			order.ClaimToken = ""
			released++
		}
	}
	return released, nil
}

func (m *memoryRepository) ListStuckBroadcasting(context.Context, string, time.Duration) ([]domain.WithdrawalOrder, error) {
	return nil, nil
}

func (m *memoryRepository) GetWithdrawal(_ context.Context, orderID string) (vo.WithdrawalDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[orderID]
	if !ok {
		return vo.WithdrawalDetail{}, vo.ErrOrderNotFound
	}
	return vo.WithdrawalDetail{Order: *order, Attempts: m.attempts[orderID]}, nil
}

func (m *memoryRepository) totalAttempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0
	for _, attempts := range m.attempts {
		total += len(attempts)
	}
	return total
}

func (m *memoryRepository) status(orderID string) domain.OrderStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.orders[orderID].Status
}

type SettlementPropertiesSuite struct {
	suite.Suite

	registry *servicemocks.ChainRegistry
	tracker  *servicemocks.Tracker
	adapter  *chainmocks.Adapter
}

func (s *SettlementPropertiesSuite) SetupTest() {
	s.registry = servicemocks.NewChainRegistry(s.T())
	s.tracker = servicemocks.NewTracker(s.T())
	s.adapter = chainmocks.NewAdapter(s.T())

	s.registry.EXPECT().Adapter(testChain).Return(s.adapter, nil)
	s.registry.EXPECT().Config(testChain).Return(testChainConfig(), nil)
	s.adapter.EXPECT().ValidateAddress(mock.Anything).Return(nil).Maybe()
	s.adapter.EXPECT().HotWallet().Return("0xhot").Maybe()
	s.adapter.EXPECT().GetBalance(mock.Anything, "0xhot", nativeETH).Return(big.NewInt(1_000_000_000), nil).Maybe()
	s.tracker.EXPECT().Track(mock.Anything).Return(true).Maybe()
}

func (s *SettlementPropertiesSuite) newOrchestrator(repo SettlementRepository, policy vo.RetryPolicy) *SettlementOrchestrator {
	return NewSettlementOrchestrator(repo, s.registry, s.tracker, NewSettlementMetrics(prometheus.NewRegistry()), discardLogger(), OrchestratorOptions{
		PoolSize:  5,
		BatchSize: 5,
		Retry:     policy,
	})
}

func (s *SettlementPropertiesSuite) TestOverlappingTicksNeverDoubleBroadcast() {
	repo := newMemoryRepository(
		claimedOrder("wd-1", 10, nativeETH),
		claimedOrder("wd-2", 20, nativeETH),
		claimedOrder("wd-3", 30, nativeETH),
	)
	orch := s.newOrchestrator(repo, vo.RetryPolicy{MaxRetries: 3})

	var txSeq atomic.Int64
	s.adapter.EXPECT().EstimateFee(mock.Anything, mock.Anything).Return(vo.FeeEstimate{FeeCeiling: big.NewInt(1)}, nil)
	s.adapter.EXPECT().Broadcast(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, vo.TransferIntent, vo.FeeEstimate) (string, error) {
			return fmt.Sprintf("0xtx%d", txSeq.Add(1)), nil
		})

	var wg sync.WaitGroup
	summaries := make([]vo.ProcessSummary, 2)
	for i := range summaries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			summary, err := orch.ProcessDue(context.Background(), testChain)
			assert.NoError(s.T(), err)
			summaries[i] = summary
		}()
	}
	wg.Wait()

	assert.Equal(s.T(), 3, summaries[0].Claimed+summaries[1].Claimed)
	assert.Equal(s.T(), 3, summaries[0].Broadcast+summaries[1].Broadcast)
	assert.Equal(s.T(), 3, repo.totalAttempts())
	assert.EqualValues(s.T(), 3, txSeq.Load())
}

func (s *SettlementPropertiesSuite) TestTransientFailuresBelowBoundEventuallyBroadcast() {
	repo := newMemoryRepository(claimedOrder("wd-1", 10, nativeETH))
	orch := s.newOrchestrator(repo, vo.RetryPolicy{MaxRetries: 3})

	var estimates atomic.Int32
	s.adapter.EXPECT().EstimateFee(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, vo.TransferIntent) (vo.FeeEstimate, error) {
			if estimates.Add(1) <= 2 {
				return vo.FeeEstimate{}, vo.ErrRPCUnavailable
			}
			return vo.FeeEstimate{FeeCeiling: big.NewInt(1)}, nil
		})
	s.adapter.EXPECT().Broadcast(mock.Anything, mock.Anything, mock.Anything).Return("0xtx", nil)

	for range 3 {
		_, err := orch.ProcessDue(context.Background(), testChain)
		require.NoError(s.T(), err)
	}

	assert.Equal(s.T(), domain.OrderStatusAwaitingConfirmation, repo.status("wd-1"))
	assert.Equal(s.T(), 1, repo.totalAttempts())
}

func (s *SettlementPropertiesSuite) TestTransientFailuresBeyondBoundFail() {
	repo := newMemoryRepository(claimedOrder("wd-1", 10, nativeETH))
	orch := s.newOrchestrator(repo, vo.RetryPolicy{MaxRetries: 2})

	s.adapter.EXPECT().EstimateFee(mock.Anything, mock.Anything).Return(vo.FeeEstimate{}, vo.ErrRPCUnavailable)

	for range 4 {
		_, err := orch.ProcessDue(context.Background(), testChain)
		require.NoError(s.T(), err)
	}

	assert.Equal(s.T(), domain.OrderStatusFailed, repo.status("wd-1"))
	assert.Equal(s.T(), vo.ReasonRPCUnavailable, repo.credits["wd-1"])
	assert.Zero(s.T(), repo.totalAttempts())
}

func (s *SettlementPropertiesSuite) TestReclaimedOrderFencesStaleWorker() {
	repo := newMemoryRepository(claimedOrder("wd-1", 10, nativeETH))
	orch := s.newOrchestrator(repo, vo.RetryPolicy{MaxRetries: 3})

	stalled := []chan struct{}{make(chan struct{}), make(chan struct{})}
	resume := []chan struct{}{make(chan struct{}), make(chan struct{})}
	var estimates atomic.Int32
	s.adapter.EXPECT().EstimateFee(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, vo.TransferIntent) (vo.FeeEstimate, error) {
			n := estimates.Add(1) - 1
			close(stalled[n])
			<-resume[n]
			return vo.FeeEstimate{FeeCeiling: big.NewInt(1)}, nil
		})
	s.adapter.EXPECT().Broadcast(mock.Anything, mock.Anything, mock.Anything).Return("0xtx", nil).Once()

	run := func() <-chan vo.ProcessSummary {
		done := make(chan vo.ProcessSummary, 1)
		go func() {
			summary, err := orch.ProcessDue(context.Background(), testChain)
			assert.NoError(s.T(), err)
			done <- summary
		}()
		return done
	}

	stale := run()
	<-stalled[0]
	released, err := repo.ReleaseStaleClaims(context.Background(), testChain, 0)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 1, released)

	live := run()
	<-stalled[1]

	close(resume[0])
	assert.Equal(s.T(), vo.ProcessSummary{ChainID: testChain, Claimed: 1, Skipped: 1}, <-stale)
	assert.Equal(s.T(), domain.OrderStatusClaimed, repo.status("wd-1"))

	close(resume[1])
	assert.Equal(s.T(), vo.ProcessSummary{ChainID: testChain, Claimed: 1, Broadcast: 1}, <-live)
	assert.Equal(s.T(), domain.OrderStatusAwaitingConfirmation, repo.status("wd-1"))
	assert.Equal(s.T(), 1, repo.totalAttempts())
}

func TestOrchestratorOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    OrchestratorOptions
		wantErr string
	}{
		{
			name: "defaults are valid",
		},
		{
			name: "claim ttl comfortably above tick timeout",
			opts: OrchestratorOptions{ClaimTTL: 10 * time.Minute, TickTimeout: 3 * time.Minute, RPCTimeout: 20 * time.Second},
		},
		{
			name:    "claim ttl shorter than twice the tick timeout",
			opts:    OrchestratorOptions{ClaimTTL: 3 * time.Minute, TickTimeout: 2 * time.Minute},
			wantErr: "claim_ttl 3m0s must be at least twice tick_timeout 2m0s",
		},
		{
			name:    "tick timeout not above rpc timeout",
			opts:    OrchestratorOptions{TickTimeout: 10 * time.Second, RPCTimeout: 10 * time.Second},
			wantErr: "tick_timeout 10s must exceed rpc_timeout 10s",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func (s *SettlementOrchestratorSuite) TestProcessDue_TickIsBounded() {
	s.expectChain()
	s.repo.EXPECT().ClaimDue(mock.Anything, testChain, 10).
		RunAndReturn(func(ctx context.Context, _ string, _ int) ([]domain.WithdrawalOrder, error) {
			deadline, ok := ctx.Deadline()
			assert.True(s.T(), ok)
			assert.WithinDuration(s.T(), time.Now().Add(2*time.Minute), deadline, 5*time.Second)
			return nil, nil
		})

	_, err := s.orch.ProcessDue(context.Background(), testChain)
	require.NoError(s.T(), err)
}

func TestSettlementPropertiesSuite(t *testing.T) {
	suite.Run(t, new(SettlementPropertiesSuite))
}
