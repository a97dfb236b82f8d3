package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/joshuarp/settlement-engine/internal/chains"
	"github.com/joshuarp/settlement-engine/internal/domain"
	"github.com/joshuarp/settlement-engine/internal/domain/vo"
)

const (
	nativeTransferGas = uint64(21000)
	tokenTransferGas  = uint64(65000)
	lookupTimeout     = 5 * time.Second
)

// RPCClient is the subset of *ethclient.Client the adapter needs.
type RPCClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	BlockNumber(ctx context.Context) (uint64, error)
	Close()
}

var _ chains.Adapter = (*Adapter)(nil)

type Adapter struct {
	chainID     string
	rpc         RPCClient
	signer      types.Signer
	key         *ecdsa.PrivateKey
	from        common.Address
	nonces      *NonceManager
	maxGasPrice *big.Int
	logger      *slog.Logger
}

// Dial connects to the configured JSON-RPC endpoint.
func Dial(ctx context.Context, cfg domain.ChainConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCEndpoint)
	if err != nil {
		return nil, fmt.Errorf("evm(%s): failed to dial rpc: %w", cfg.ID, err)
	}

	adapter, err := New(ctx, cfg, client, logger)
	if err != nil {
		client.Close()
		return nil, err
	}
	return adapter, nil
}

func New(ctx context.Context, cfg domain.ChainConfig, client RPCClient, logger *slog.Logger) (*Adapter, error) {
	if logger == nil {
		logger = slog.Default()
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(cfg.HotWalletKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("evm(%s): invalid hot wallet key: %w", cfg.ID, err)
	}

	networkID := big.NewInt(cfg.EVMChainID)
	if cfg.EVMChainID == 0 {
		networkID, err = client.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("evm(%s): failed to read chain id: %w", cfg.ID, err)
		}
	}

	from := crypto.PubkeyToAddress(key.PublicKey)

	return &Adapter{
		chainID:     cfg.ID,
		rpc:         client,
		signer:      types.NewEIP155Signer(networkID),
		key:         key,
		from:        from,
		nonces:      NewNonceManager(from, client),
		maxGasPrice: cfg.MaxGasPrice,
		logger:      logger.With("chain_id", cfg.ID, "family", string(domain.ChainFamilyEVM)),
	}, nil
}

func (a *Adapter) ChainID() string { return a.chainID }

func (a *Adapter) Family() domain.ChainFamily { return domain.ChainFamilyEVM }

func (a *Adapter) HotWallet() string { return a.from.Hex() }

func (a *Adapter) Close() error {
	a.rpc.Close()
	return nil
}

func (a *Adapter) ValidateAddress(addr string) error {
	if !common.IsHexAddress(addr) {
		return fmt.Errorf("%w: %q is not a hex address", vo.ErrInvalidAddress, addr)
	}
	if common.HexToAddress(addr) == (common.Address{}) {
		return fmt.Errorf("%w: zero address", vo.ErrInvalidAddress)
	}
	return nil
}

func (a *Adapter) GetBalance(ctx context.Context, address string, asset domain.AssetRef) (*big.Int, error) {
	if err := a.ValidateAddress(address); err != nil {
		return nil, err
	}
	owner := common.HexToAddress(address)

	if asset.IsNative() {
		balance, err := a.rpc.BalanceAt(ctx, owner, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: balance of %s: %v", vo.ErrRPCUnavailable, address, err)
		}
		return balance, nil
	}

	if err := a.ValidateAddress(asset.Contract); err != nil {
		return nil, err
	}
	contract := common.HexToAddress(asset.Contract)

	data, err := packBalanceOf(owner)
	if err != nil {
		return nil, fmt.Errorf("evm: pack balanceOf: %w", err)
	}

	output, err := a.rpc.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s balanceOf %s: %v", vo.ErrRPCUnavailable, asset.Symbol, address, err)
	}

	balance, err := unpackBalanceOf(output)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s balance: %v", vo.ErrRPCUnavailable, asset.Symbol, err)
	}
	return balance, nil
}

func (a *Adapter) EstimateFee(ctx context.Context, intent vo.TransferIntent) (vo.FeeEstimate, error) {
	gasPrice, err := a.rpc.SuggestGasPrice(ctx)
	if err != nil {
		return vo.FeeEstimate{}, fmt.Errorf("%w: suggest gas price: %v", vo.ErrRPCUnavailable, err)
	}

	if a.maxGasPrice != nil && a.maxGasPrice.Sign() > 0 && gasPrice.Cmp(a.maxGasPrice) > 0 {
		a.logger.Warn("suggested gas price above cap", "suggested", gasPrice.String(), "cap", a.maxGasPrice.String())
		gasPrice = new(big.Int).Set(a.maxGasPrice)
	}

	gasLimit := nativeTransferGas
	if !intent.Asset.IsNative() {
		gasLimit = a.estimateTokenGas(ctx, intent)
	}

	limit := new(big.Int).SetUint64(gasLimit)
	return vo.FeeEstimate{
		FeeLimit:   limit,
		FeePrice:   gasPrice,
		FeeCeiling: new(big.Int).Mul(limit, gasPrice),
	}, nil
}

// estimateTokenGas pads the node estimate by 20% and falls back to a fixed
// budget when the node cannot simulate the call.
func (a *Adapter) estimateTokenGas(ctx context.Context, intent vo.TransferIntent) uint64 {
	if !common.IsHexAddress(intent.To) || !common.IsHexAddress(intent.Asset.Contract) || intent.Amount == nil {
		return tokenTransferGas
	}

	data, err := packTransfer(common.HexToAddress(intent.To), intent.Amount)
	if err != nil {
		return tokenTransferGas
	}

	contract := common.HexToAddress(intent.Asset.Contract)
	estimated, err := a.rpc.EstimateGas(ctx, ethereum.CallMsg{From: a.from, To: &contract, Data: data})
	if err != nil || estimated == 0 {
		a.logger.Debug("token gas estimate unavailable, using default", "order_id", intent.OrderID, "error", err)
		return tokenTransferGas
	}

	return estimated + estimated/5
}

func (a *Adapter) Broadcast(ctx context.Context, intent vo.TransferIntent, fee vo.FeeEstimate) (string, error) {
	if err := a.ValidateAddress(intent.To); err != nil {
		return "", err
	}
	if intent.Amount == nil || intent.Amount.Sign() <= 0 {
		return "", vo.ErrInvalidAmount
	}
	if fee.FeeLimit == nil || fee.FeePrice == nil {
		return "", fmt.Errorf("%w: missing fee parameters", vo.ErrBroadcastRejected)
	}

	to := common.HexToAddress(intent.To)
	recipient, value, data := to, intent.Amount, []byte(nil)
	if !intent.Asset.IsNative() {
		if err := a.ValidateAddress(intent.Asset.Contract); err != nil {
			return "", err
		}
		packed, err := packTransfer(to, intent.Amount)
		if err != nil {
			return "", fmt.Errorf("evm: pack transfer: %w", err)
		}
		recipient, value, data = common.HexToAddress(intent.Asset.Contract), new(big.Int), packed
	}

	var txHash common.Hash
	err := a.nonces.Use(ctx, func(nonce uint64) error {
		tx := types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			To:       &recipient,
			Value:    value,
			Gas:      fee.FeeLimit.Uint64(),
			GasPrice: fee.FeePrice,
			Data:     data,
		})

		signed, err := types.SignTx(tx, a.signer, a.key)
		if err != nil {
			return fmt.Errorf("evm: sign transaction: %w", err)
		}
		txHash = signed.Hash()

		sendErr := a.rpc.SendTransaction(ctx, signed)
		if sendErr == nil {
			return nil
		}

		classified := classifySendError(sendErr)
		if classified == nil {
			return nil
		}

		if errors.Is(classified, vo.ErrRPCUnavailable) && a.knownToNode(ctx, txHash) {
			a.logger.Warn("broadcast reported transport error but node knows the transaction",
				"order_id", intent.OrderID, "tx_hash", txHash.Hex(), "error", sendErr)
			return nil
		}

		return classified
	})
	if err != nil {
		return "", err
	}

	a.logger.Info("transaction broadcast", "order_id", intent.OrderID, "tx_hash", txHash.Hex(), "from", a.from.Hex(), "to", intent.To)
	return txHash.Hex(), nil
}

// knownToNode looks the hash up with a fresh deadline since the send context
// may be the one that just expired.
func (a *Adapter) knownToNode(ctx context.Context, hash common.Hash) bool {
	lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupTimeout)
	defer cancel()

	_, _, err := a.rpc.TransactionByHash(lookupCtx, hash)
	return err == nil
}

// classifySendError maps a SendTransaction failure onto the error taxonomy.
// A nil result means the node already holds this exact transaction.
func classifySendError(err error) error {
	message := strings.ToLower(err.Error())
	if strings.Contains(message, "already known") {
		return nil
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return fmt.Errorf("%w: %s", vo.ErrBroadcastRejected, err.Error())
	}

	for _, marker := range []string{
		"nonce too low",
		"nonce too high",
		"replacement transaction underpriced",
		"insufficient funds",
		"intrinsic gas too low",
		"exceeds block gas limit",
		"transaction underpriced",
		"max fee per gas less than block base fee",
	} {
		if strings.Contains(message, marker) {
			return fmt.Errorf("%w: %s", vo.ErrBroadcastRejected, err.Error())
		}
	}

	return fmt.Errorf("%w: send transaction: %v", vo.ErrRPCUnavailable, err)
}

func (a *Adapter) GetReceipt(ctx context.Context, txHash string) (vo.Receipt, error) {
	hash := common.HexToHash(txHash)

	receipt, err := a.rpc.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return vo.Receipt{Found: false}, nil
	}
	if err != nil {
		return vo.Receipt{}, fmt.Errorf("%w: receipt %s: %v", vo.ErrRPCUnavailable, txHash, err)
	}

	head, err := a.rpc.BlockNumber(ctx)
	if err != nil {
		return vo.Receipt{}, fmt.Errorf("%w: block number: %v", vo.ErrRPCUnavailable, err)
	}

	blockNumber := int64(0)
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Int64()
	}

	// The inclusion block counts as the first confirmation.
	confirmations := int64(head) - blockNumber + 1
	if confirmations < 0 {
		confirmations = 0
	}

	fee, err := a.actualFee(ctx, hash, receipt)
	if err != nil {
		return vo.Receipt{}, err
	}

	return vo.Receipt{
		Found:         true,
		Success:       receipt.Status == types.ReceiptStatusSuccessful,
		Confirmations: confirmations,
		BlockNumber:   blockNumber,
		ActualFee:     fee,
	}, nil
}

func (a *Adapter) actualFee(ctx context.Context, hash common.Hash, receipt *types.Receipt) (*big.Int, error) {
	gasUsed := new(big.Int).SetUint64(receipt.GasUsed)
	if receipt.EffectiveGasPrice != nil {
		return gasUsed.Mul(gasUsed, receipt.EffectiveGasPrice), nil
	}

	tx, _, err := a.rpc.TransactionByHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction %s: %v", vo.ErrRPCUnavailable, hash.Hex(), err)
	}
	return gasUsed.Mul(gasUsed, tx.GasPrice()), nil
}

// IsPending reports whether the node still knows the transaction, either in
// its pool or already mined. A transaction the node has forgotten frees its
// nonce, so the counter is re-synced.
func (a *Adapter) IsPending(ctx context.Context, txHash string) (bool, error) {
	_, _, err := a.rpc.TransactionByHash(ctx, common.HexToHash(txHash))
	if errors.Is(err, ethereum.NotFound) {
		a.nonces.Invalidate()
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: transaction %s: %v", vo.ErrRPCUnavailable, txHash, err)
	}
	return true, nil
}
