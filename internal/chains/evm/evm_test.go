package evm

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/settlement-engine/internal/domain"
	"github.com/joshuarp/settlement-engine/internal/domain/vo"
)

const (
	testDestination = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"
	testToken       = "0xdAC17F958D2ee523a2206206994597C13D831ec7"
)

type jsonRPCError struct {
	code    int
	message string
}

func (e jsonRPCError) Error() string  { return e.message }
func (e jsonRPCError) ErrorCode() int { return e.code }

type fakeRPC struct {
	mu sync.Mutex

	pendingNonce    uint64
	pendingNonceErr error
	nonceCalls      int

	balance      *big.Int
	tokenBalance *big.Int
	gasPrice     *big.Int
	estimateGas  uint64
	estimateErr  error

	sendErrs []error
	sent     []*types.Transaction

	receipt    *types.Receipt
	receiptErr error
	head       uint64

	knownTx    map[common.Hash]*types.Transaction
	byHashErr  error
	closeCalls int
}

func newFakeRPC() *fakeRPC {
	return &fakeRPC{knownTx: map[common.Hash]*types.Transaction{}}
}

func (f *fakeRPC) ChainID(context.Context) (*big.Int, error) { return big.NewInt(11155111), nil }

func (f *fakeRPC) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return f.balance, nil
}

func (f *fakeRPC) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	return erc20ABI.Methods["balanceOf"].Outputs.Pack(f.tokenBalance)
}

func (f *fakeRPC) SuggestGasPrice(context.Context) (*big.Int, error) { return f.gasPrice, nil }

func (f *fakeRPC) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return f.estimateGas, f.estimateErr
}

func (f *fakeRPC) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nonceCalls++
	return f.pendingNonce, f.pendingNonceErr
}

func (f *fakeRPC) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.sendErrs) > 0 {
		err := f.sendErrs[0]
		f.sendErrs = f.sendErrs[1:]
		if err != nil {
			return err
		}
	}

	f.sent = append(f.sent, tx)
	f.knownTx[tx.Hash()] = tx
	return nil
}

func (f *fakeRPC) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	return f.receipt, f.receiptErr
}

func (f *fakeRPC) TransactionByHash(_ context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.byHashErr != nil {
		return nil, false, f.byHashErr
	}
	tx, ok := f.knownTx[hash]
	if !ok {
		return nil, false, ethereum.NotFound
	}
	return tx, true, nil
}

func (f *fakeRPC) BlockNumber(context.Context) (uint64, error) { return f.head, nil }

func (f *fakeRPC) Close() { f.closeCalls++ }

type EVMAdapterSuite struct {
	suite.Suite

	rpc     *fakeRPC
	key     *ecdsa.PrivateKey
	adapter *Adapter
}

func (s *EVMAdapterSuite) SetupTest() {
	key, err := crypto.GenerateKey()
	require.NoError(s.T(), err)

	s.key = key
	s.rpc = newFakeRPC()
	s.rpc.gasPrice = big.NewInt(20_000_000_000)

	s.adapter, err = New(context.Background(), domain.ChainConfig{
		ID:           "sepolia",
		Family:       domain.ChainFamilyEVM,
		EVMChainID:   11155111,
		HotWalletKey: "0x" + hex.EncodeToString(crypto.FromECDSA(key)),
		MaxGasPrice:  big.NewInt(50_000_000_000),
	}, s.rpc, nil)
	require.NoError(s.T(), err)
}

func (s *EVMAdapterSuite) nativeIntent(amount int64) vo.TransferIntent {
	return vo.TransferIntent{
		OrderID: "order-1",
		To:      testDestination,
		Amount:  big.NewInt(amount),
		Asset:   domain.AssetRef{Symbol: "ETH", Decimals: 18},
	}
}

func (s *EVMAdapterSuite) TestHotWalletDerivedFromKey() {
	assert.Equal(s.T(), crypto.PubkeyToAddress(s.key.PublicKey).Hex(), s.adapter.HotWallet())
	assert.Equal(s.T(), "sepolia", s.adapter.ChainID())
	assert.Equal(s.T(), domain.ChainFamilyEVM, s.adapter.Family())
}

func (s *EVMAdapterSuite) TestValidateAddress_TableDriven() {
	tests := []struct {
		name    string
		address string
		valid   bool
	}{
		{name: "checksummed address", address: testDestination, valid: true},
		{name: "lowercase address", address: "0x8ba1f109551bd432803012645ac136ddd64dba72", valid: true},
		{name: "zero address", address: "0x0000000000000000000000000000000000000000", valid: false},
		{name: "too short", address: "0x1234", valid: false},
		{name: "tron address", address: "TJRabPrwbZy45sbavfcjinPJC18kjpRTv8", valid: false},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			err := s.adapter.ValidateAddress(tc.address)
			if tc.valid {
				assert.NoError(s.T(), err)
				return
			}
			assert.ErrorIs(s.T(), err, vo.ErrInvalidAddress)
		})
	}
}

func (s *EVMAdapterSuite) TestGetBalance_NativeAndToken() {
	s.rpc.balance = big.NewInt(5_000)
	s.rpc.tokenBalance = big.NewInt(42_000_000)

	native, err := s.adapter.GetBalance(context.Background(), s.adapter.HotWallet(), domain.AssetRef{Symbol: "ETH"})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(5_000), native.Int64())

	token, err := s.adapter.GetBalance(context.Background(), s.adapter.HotWallet(), domain.AssetRef{Symbol: "USDT", Contract: testToken})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(42_000_000), token.Int64())
}

func (s *EVMAdapterSuite) TestEstimateFee_TableDriven() {
	tests := []struct {
		name        string
		gasPrice    int64
		asset       domain.AssetRef
		estimateGas uint64
		estimateErr error
		expectLimit uint64
		expectPrice int64
	}{
		{
			name:        "native transfer uses fixed gas",
			gasPrice:    20_000_000_000,
			asset:       domain.AssetRef{Symbol: "ETH"},
			expectLimit: nativeTransferGas,
			expectPrice: 20_000_000_000,
		},
		{
			name:        "gas price capped",
			gasPrice:    90_000_000_000,
			asset:       domain.AssetRef{Symbol: "ETH"},
			expectLimit: nativeTransferGas,
			expectPrice: 50_000_000_000,
		},
		{
			name:        "token estimate padded",
			gasPrice:    10,
			asset:       domain.AssetRef{Symbol: "USDT", Contract: testToken},
			estimateGas: 50_000,
			expectLimit: 60_000,
			expectPrice: 10,
		},
		{
			name:        "token estimate falls back",
			gasPrice:    10,
			asset:       domain.AssetRef{Symbol: "USDT", Contract: testToken},
			estimateErr: errors.New("execution reverted"),
			expectLimit: tokenTransferGas,
			expectPrice: 10,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.rpc.gasPrice = big.NewInt(tc.gasPrice)
			s.rpc.estimateGas = tc.estimateGas
			s.rpc.estimateErr = tc.estimateErr

			intent := s.nativeIntent(100)
			intent.Asset = tc.asset

			fee, err := s.adapter.EstimateFee(context.Background(), intent)
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.expectLimit, fee.FeeLimit.Uint64())
			assert.Equal(s.T(), tc.expectPrice, fee.FeePrice.Int64())
			assert.Equal(s.T(), new(big.Int).Mul(fee.FeeLimit, fee.FeePrice), fee.FeeCeiling)
		})
	}
}

func (s *EVMAdapterSuite) TestBroadcast_ConcurrentSendsGetDistinctSequentialNonces() {
	s.rpc.pendingNonce = 7
	fee := vo.FeeEstimate{FeeLimit: big.NewInt(21000), FeePrice: big.NewInt(1), FeeCeiling: big.NewInt(21000)}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.adapter.Broadcast(context.Background(), s.nativeIntent(100), fee)
			assert.NoError(s.T(), err)
		}()
	}
	wg.Wait()

	require.Len(s.T(), s.rpc.sent, 10)
	for i, tx := range s.rpc.sent {
		assert.Equal(s.T(), uint64(7+i), tx.Nonce())
	}
	assert.Equal(s.T(), 1, s.rpc.nonceCalls)
}

func (s *EVMAdapterSuite) TestBroadcast_TokenTransferTargetsContract() {
	fee := vo.FeeEstimate{FeeLimit: big.NewInt(65000), FeePrice: big.NewInt(1), FeeCeiling: big.NewInt(65000)}
	intent := s.nativeIntent(1_000_000)
	intent.Asset = domain.AssetRef{Symbol: "USDT", Contract: testToken, Decimals: 6}

	hash, err := s.adapter.Broadcast(context.Background(), intent, fee)
	require.NoError(s.T(), err)
	require.Len(s.T(), s.rpc.sent, 1)

	tx := s.rpc.sent[0]
	assert.Equal(s.T(), tx.Hash().Hex(), hash)
	assert.Equal(s.T(), common.HexToAddress(testToken), *tx.To())
	assert.Zero(s.T(), tx.Value().Sign())

	expectedData, err := packTransfer(common.HexToAddress(testDestination), big.NewInt(1_000_000))
	require.NoError(s.T(), err)
	assert.Equal(s.T(), expectedData, tx.Data())
}

func (s *EVMAdapterSuite) TestBroadcast_ErrorClassification_TableDriven() {
	fee := vo.FeeEstimate{FeeLimit: big.NewInt(21000), FeePrice: big.NewInt(1), FeeCeiling: big.NewInt(21000)}

	tests := []struct {
		name      string
		sendErr   error
		expectErr error
	}{
		{name: "node rejects with json-rpc error", sendErr: jsonRPCError{code: -32000, message: "nonce too low"}, expectErr: vo.ErrBroadcastRejected},
		{name: "insufficient funds string", sendErr: errors.New("insufficient funds for gas * price + value"), expectErr: vo.ErrBroadcastRejected},
		{name: "transport failure", sendErr: errors.New("dial tcp: connection refused"), expectErr: vo.ErrRPCUnavailable},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.rpc.sendErrs = []error{tc.sendErr}

			_, err := s.adapter.Broadcast(context.Background(), s.nativeIntent(100), fee)
			require.Error(s.T(), err)
			assert.ErrorIs(s.T(), err, tc.expectErr)
		})
	}
}

func (s *EVMAdapterSuite) TestBroadcast_FailureForcesNonceResync() {
	fee := vo.FeeEstimate{FeeLimit: big.NewInt(21000), FeePrice: big.NewInt(1), FeeCeiling: big.NewInt(21000)}
	s.rpc.pendingNonce = 3
	s.rpc.sendErrs = []error{jsonRPCError{code: -32000, message: "nonce too low"}}

	_, err := s.adapter.Broadcast(context.Background(), s.nativeIntent(100), fee)
	require.ErrorIs(s.T(), err, vo.ErrBroadcastRejected)

	s.rpc.pendingNonce = 4
	_, err = s.adapter.Broadcast(context.Background(), s.nativeIntent(100), fee)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), 2, s.rpc.nonceCalls)
	assert.Equal(s.T(), uint64(4), s.rpc.sent[0].Nonce())
}

func (s *EVMAdapterSuite) TestBroadcast_AlreadyKnownIsSuccess() {
	fee := vo.FeeEstimate{FeeLimit: big.NewInt(21000), FeePrice: big.NewInt(1), FeeCeiling: big.NewInt(21000)}
	s.rpc.sendErrs = []error{jsonRPCError{code: -32000, message: "already known"}}

	hash, err := s.adapter.Broadcast(context.Background(), s.nativeIntent(100), fee)
	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), hash)
}

func (s *EVMAdapterSuite) TestBroadcast_RejectsInvalidInput() {
	fee := vo.FeeEstimate{FeeLimit: big.NewInt(21000), FeePrice: big.NewInt(1)}

	_, err := s.adapter.Broadcast(context.Background(), s.nativeIntent(0), fee)
	assert.ErrorIs(s.T(), err, vo.ErrInvalidAmount)

	intent := s.nativeIntent(10)
	intent.To = "not-an-address"
	_, err = s.adapter.Broadcast(context.Background(), intent, fee)
	assert.ErrorIs(s.T(), err, vo.ErrInvalidAddress)

	assert.Empty(s.T(), s.rpc.sent)
}

func (s *EVMAdapterSuite) TestGetReceipt_TableDriven() {
	tests := []struct {
		name       string
		receipt    *types.Receipt
		receiptErr error
		head       uint64
		assertion  func(vo.Receipt, error)
	}{
		{
			name:       "pending transaction not found",
			receiptErr: ethereum.NotFound,
			assertion: func(r vo.Receipt, err error) {
				require.NoError(s.T(), err)
				assert.False(s.T(), r.Found)
			},
		},
		{
			name:       "rpc failure",
			receiptErr: errors.New("503"),
			assertion: func(_ vo.Receipt, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrRPCUnavailable)
			},
		},
		{
			name: "successful receipt with confirmations and actual fee",
			receipt: &types.Receipt{
				Status:            types.ReceiptStatusSuccessful,
				BlockNumber:       big.NewInt(100),
				GasUsed:           21000,
				EffectiveGasPrice: big.NewInt(3),
			},
			head: 111,
			assertion: func(r vo.Receipt, err error) {
				require.NoError(s.T(), err)
				assert.True(s.T(), r.Found)
				assert.True(s.T(), r.Success)
				assert.Equal(s.T(), int64(12), r.Confirmations)
				assert.Equal(s.T(), int64(100), r.BlockNumber)
				assert.Equal(s.T(), int64(63000), r.ActualFee.Int64())
			},
		},
		{
			name: "reverted receipt",
			receipt: &types.Receipt{
				Status:            types.ReceiptStatusFailed,
				BlockNumber:       big.NewInt(100),
				GasUsed:           30000,
				EffectiveGasPrice: big.NewInt(2),
			},
			head: 100,
			assertion: func(r vo.Receipt, err error) {
				require.NoError(s.T(), err)
				assert.True(s.T(), r.Found)
				assert.False(s.T(), r.Success)
				assert.Equal(s.T(), int64(1), r.Confirmations)
				assert.Equal(s.T(), int64(60000), r.ActualFee.Int64())
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.rpc.receipt = tc.receipt
			s.rpc.receiptErr = tc.receiptErr
			s.rpc.head = tc.head

			receipt, err := s.adapter.GetReceipt(context.Background(), "0xabc")
			tc.assertion(receipt, err)
		})
	}
}

func (s *EVMAdapterSuite) TestIsPending_DroppedTransactionInvalidatesNonce() {
	fee := vo.FeeEstimate{FeeLimit: big.NewInt(21000), FeePrice: big.NewInt(1)}
	hash, err := s.adapter.Broadcast(context.Background(), s.nativeIntent(100), fee)
	require.NoError(s.T(), err)

	pending, err := s.adapter.IsPending(context.Background(), hash)
	require.NoError(s.T(), err)
	assert.True(s.T(), pending)

	pending, err = s.adapter.IsPending(context.Background(), "0xdeadbeef")
	require.NoError(s.T(), err)
	assert.False(s.T(), pending)

	_, err = s.adapter.Broadcast(context.Background(), s.nativeIntent(100), fee)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2, s.rpc.nonceCalls)

	s.rpc.byHashErr = errors.New("timeout")
	_, err = s.adapter.IsPending(context.Background(), hash)
	assert.ErrorIs(s.T(), err, vo.ErrRPCUnavailable)
}

func TestEVMAdapterSuite(t *testing.T) {
	suite.Run(t, new(EVMAdapterSuite))
}
