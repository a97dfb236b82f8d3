package tron

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fbsobreira/gotron-sdk/pkg/address"
	"github.com/fbsobreira/gotron-sdk/pkg/client"
	"github.com/fbsobreira/gotron-sdk/pkg/proto/api"
	"github.com/fbsobreira/gotron-sdk/pkg/proto/core"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/joshuarp/settlement-engine/internal/chains"
	"github.com/joshuarp/settlement-engine/internal/domain"
	"github.com/joshuarp/settlement-engine/internal/domain/vo"
)

const trc20TransferMethod = "transfer(address,uint256)"

// RPCClient is the subset of *client.GrpcClient the adapter needs.
type RPCClient interface {
	GetAccount(addr string) (*core.Account, error)
	GetAccountResource(addr string) (*api.AccountResourceMessage, error)
	TRC20ContractBalance(addr, contractAddress string) (*big.Int, error)
	TriggerConstantContract(from, contractAddress, method, jsonString string) (*api.TransactionExtention, error)
	Transfer(from, toAddress string, amount int64) (*api.TransactionExtention, error)
	TRC20Send(from, to, contract string, amount *big.Int, feeLimit int64) (*api.TransactionExtention, error)
	Broadcast(tx *core.Transaction) (*api.Return, error)
	GetTransactionInfoByID(id string) (*core.TransactionInfo, error)
	GetTransactionByID(id string) (*core.Transaction, error)
	GetNowBlock() (*api.BlockExtention, error)
	Stop()
}

var _ chains.Adapter = (*Adapter)(nil)

type Adapter struct {
	chainID  string
	rpc      RPCClient
	key      *ecdsa.PrivateKey
	from     string
	feeLimit int64
	logger   *slog.Logger

	// sendMu serializes build, sign and broadcast for the hot wallet.
	sendMu        sync.Mutex
	lastTimestamp int64
}

// Dial opens the gRPC connection to a TRON full node.
func Dial(cfg domain.ChainConfig, timeout time.Duration, logger *slog.Logger) (*Adapter, error) {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	grpcClient := client.NewGrpcClientWithTimeout(cfg.RPCEndpoint, timeout)
	if cfg.APIKey != "" {
		if err := grpcClient.SetAPIKey(cfg.APIKey); err != nil {
			return nil, fmt.Errorf("tron(%s): failed to set api key: %w", cfg.ID, err)
		}
	}

	if err := grpcClient.Start(grpc.WithTransportCredentials(insecure.NewCredentials())); err != nil {
		return nil, fmt.Errorf("tron(%s): failed to start grpc client: %w", cfg.ID, err)
	}

	adapter, err := New(cfg, grpcClient, logger)
	if err != nil {
		grpcClient.Stop()
		return nil, err
	}
	return adapter, nil
}

func New(cfg domain.ChainConfig, rpc RPCClient, logger *slog.Logger) (*Adapter, error) {
	if logger == nil {
		logger = slog.Default()
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(cfg.HotWalletKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("tron(%s): invalid hot wallet key: %w", cfg.ID, err)
	}

	feeLimit := cfg.FeeLimit
	if feeLimit <= 0 {
		feeLimit = defaultFeeLimitSun
	}

	return &Adapter{
		chainID:  cfg.ID,
		rpc:      rpc,
		key:      key,
		from:     address.PubkeyToAddress(key.PublicKey).String(),
		feeLimit: feeLimit,
		logger:   logger.With("chain_id", cfg.ID, "family", string(domain.ChainFamilyTRON)),
	}, nil
}

func (a *Adapter) ChainID() string { return a.chainID }

func (a *Adapter) Family() domain.ChainFamily { return domain.ChainFamilyTRON }

func (a *Adapter) HotWallet() string { return a.from }

func (a *Adapter) Close() error {
	a.rpc.Stop()
	return nil
}

func (a *Adapter) ValidateAddress(addr string) error {
	if len(addr) != 34 || !strings.HasPrefix(addr, "T") {
		return fmt.Errorf("%w: %q is not a base58 tron address", vo.ErrInvalidAddress, addr)
	}
	if _, err := address.Base58ToAddress(addr); err != nil {
		return fmt.Errorf("%w: %v", vo.ErrInvalidAddress, err)
	}
	return nil
}

func (a *Adapter) GetBalance(ctx context.Context, addr string, asset domain.AssetRef) (*big.Int, error) {
	if err := a.ValidateAddress(addr); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", vo.ErrRPCUnavailable, err)
	}

	if asset.IsNative() {
		account, err := a.rpc.GetAccount(addr)
		if err != nil {
			if isNotFound(err) {
				return new(big.Int), nil
			}
			return nil, fmt.Errorf("%w: account %s: %v", vo.ErrRPCUnavailable, addr, err)
		}
		return big.NewInt(account.GetBalance()), nil
	}

	if err := a.ValidateAddress(asset.Contract); err != nil {
		return nil, err
	}

	balance, err := a.rpc.TRC20ContractBalance(addr, asset.Contract)
	if err != nil {
		return nil, fmt.Errorf("%w: %s balance of %s: %v", vo.ErrRPCUnavailable, asset.Symbol, addr, err)
	}
	return balance, nil
}

func (a *Adapter) EstimateFee(ctx context.Context, intent vo.TransferIntent) (vo.FeeEstimate, error) {
	if err := ctx.Err(); err != nil {
		return vo.FeeEstimate{}, fmt.Errorf("%w: %v", vo.ErrRPCUnavailable, err)
	}

	resourceMsg, err := a.rpc.GetAccountResource(a.from)
	if err != nil {
		return vo.FeeEstimate{}, fmt.Errorf("%w: account resources: %v", vo.ErrRPCUnavailable, err)
	}
	resources := resourcesFrom(resourceMsg)

	if intent.Asset.IsNative() {
		fee := burnFee(0, nativeBandwidth, resources)
		if _, err := a.rpc.GetAccount(intent.To); err != nil && isNotFound(err) {
			fee += accountActivationFee
		}

		return vo.FeeEstimate{
			FeeLimit:   bigSun(fee),
			FeePrice:   bigSun(sunPerBandwidth),
			FeeCeiling: bigSun(fee),
		}, nil
	}

	energy := a.estimateTRC20Energy(intent)
	fee := maxInt64(burnFee(energy, trc20Bandwidth, resources), minTRC20FeeSun)

	return vo.FeeEstimate{
		FeeLimit:   bigSun(maxInt64(a.feeLimit, fee)),
		FeePrice:   bigSun(sunPerEnergy),
		FeeCeiling: bigSun(fee),
	}, nil
}

// estimateTRC20Energy simulates the transfer; a failed simulation falls back
// to the energy of a plain TRC-20 transfer to a fresh holder.
func (a *Adapter) estimateTRC20Energy(intent vo.TransferIntent) int64 {
	if intent.Amount == nil {
		return defaultTRC20Energy
	}

	params := fmt.Sprintf(`[{"address":"%s"},{"uint256":"%s"}]`, intent.To, intent.Amount.String())
	result, err := a.rpc.TriggerConstantContract(a.from, intent.Asset.Contract, trc20TransferMethod, params)
	if err != nil || result.GetEnergyUsed() <= 0 {
		a.logger.Debug("trc20 energy simulation unavailable, using default", "order_id", intent.OrderID, "error", err)
		return defaultTRC20Energy
	}
	return result.GetEnergyUsed()
}

func (a *Adapter) Broadcast(ctx context.Context, intent vo.TransferIntent, fee vo.FeeEstimate) (string, error) {
	if err := a.ValidateAddress(intent.To); err != nil {
		return "", err
	}
	if intent.Amount == nil || intent.Amount.Sign() <= 0 {
		return "", vo.ErrInvalidAmount
	}
	if !intent.Asset.IsNative() {
		if err := a.ValidateAddress(intent.Asset.Contract); err != nil {
			return "", err
		}
	}

	a.sendMu.Lock()
	defer a.sendMu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", vo.ErrRPCUnavailable, err)
	}

	built, err := a.build(intent, fee)
	if err != nil {
		return "", err
	}

	a.ensureUniqueTimestamp(built)

	txID, err := signTransaction(built, a.key)
	if err != nil {
		return "", err
	}

	result, broadcastErr := a.rpc.Broadcast(built)
	if classified := classifyBroadcast(result, broadcastErr); classified != nil {
		if errors.Is(classified, vo.ErrRPCUnavailable) && a.known(txID) {
			a.logger.Warn("broadcast reported transport error but node knows the transaction",
				"order_id", intent.OrderID, "tx_hash", txID, "error", broadcastErr)
		} else {
			return "", classified
		}
	}

	a.logger.Info("transaction broadcast", "order_id", intent.OrderID, "tx_hash", txID, "from", a.from, "to", intent.To)
	return txID, nil
}

func (a *Adapter) build(intent vo.TransferIntent, fee vo.FeeEstimate) (*core.Transaction, error) {
	var (
		ext *api.TransactionExtention
		err error
	)

	if intent.Asset.IsNative() {
		if !intent.Amount.IsInt64() {
			return nil, fmt.Errorf("%w: amount overflows int64 sun", vo.ErrInvalidAmount)
		}
		ext, err = a.rpc.Transfer(a.from, intent.To, intent.Amount.Int64())
	} else {
		feeLimit := a.feeLimit
		if fee.FeeLimit != nil && fee.FeeLimit.IsInt64() && fee.FeeLimit.Int64() > 0 {
			feeLimit = fee.FeeLimit.Int64()
		}
		ext, err = a.rpc.TRC20Send(a.from, intent.To, intent.Asset.Contract, intent.Amount, feeLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: build transaction: %v", vo.ErrRPCUnavailable, err)
	}

	if ext.GetResult() != nil && ext.GetResult().GetCode() != api.Return_SUCCESS {
		return nil, fmt.Errorf("%w: build transaction: %s", vo.ErrBroadcastRejected, string(ext.GetResult().GetMessage()))
	}
	if ext.GetTransaction() == nil || ext.GetTransaction().GetRawData() == nil {
		return nil, fmt.Errorf("%w: node returned an empty transaction", vo.ErrRPCUnavailable)
	}

	return ext.GetTransaction(), nil
}

// ensureUniqueTimestamp keeps raw-data timestamps strictly increasing, so two
// identical transfers built within the same millisecond still get distinct ids.
func (a *Adapter) ensureUniqueTimestamp(tx *core.Transaction) {
	raw := tx.GetRawData()
	if raw.Timestamp <= a.lastTimestamp {
		raw.Timestamp = a.lastTimestamp + 1
	}
	a.lastTimestamp = raw.Timestamp
}

func classifyBroadcast(result *api.Return, err error) error {
	if result != nil {
		switch result.GetCode() {
		case api.Return_SUCCESS:
			if result.GetResult() {
				return nil
			}
		case api.Return_DUP_TRANSACTION_ERROR:
			return nil
		case api.Return_SERVER_BUSY, api.Return_NO_CONNECTION, api.Return_NOT_ENOUGH_EFFECTIVE_CONNECTION:
			return fmt.Errorf("%w: %s: %s", vo.ErrRPCUnavailable, result.GetCode().String(), string(result.GetMessage()))
		default:
			return fmt.Errorf("%w: %s: %s", vo.ErrBroadcastRejected, result.GetCode().String(), string(result.GetMessage()))
		}
	}

	if err != nil {
		return fmt.Errorf("%w: broadcast: %v", vo.ErrRPCUnavailable, err)
	}
	if result == nil {
		return fmt.Errorf("%w: empty broadcast response", vo.ErrRPCUnavailable)
	}
	return fmt.Errorf("%w: broadcast returned false", vo.ErrBroadcastRejected)
}

func (a *Adapter) known(txID string) bool {
	tx, err := a.rpc.GetTransactionByID(txID)
	return err == nil && tx != nil
}

func (a *Adapter) GetReceipt(ctx context.Context, txHash string) (vo.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return vo.Receipt{}, fmt.Errorf("%w: %v", vo.ErrRPCUnavailable, err)
	}

	info, err := a.rpc.GetTransactionInfoByID(txHash)
	if err != nil {
		if isNotFound(err) {
			return vo.Receipt{Found: false}, nil
		}
		return vo.Receipt{}, fmt.Errorf("%w: transaction info %s: %v", vo.ErrRPCUnavailable, txHash, err)
	}
	if info == nil || info.GetBlockNumber() <= 0 {
		return vo.Receipt{Found: false}, nil
	}

	head, err := a.rpc.GetNowBlock()
	if err != nil {
		return vo.Receipt{}, fmt.Errorf("%w: now block: %v", vo.ErrRPCUnavailable, err)
	}

	confirmations := head.GetBlockHeader().GetRawData().GetNumber() - info.GetBlockNumber() + 1
	if confirmations < 0 {
		confirmations = 0
	}

	return vo.Receipt{
		Found:         true,
		Success:       receiptSucceeded(info),
		Confirmations: confirmations,
		BlockNumber:   info.GetBlockNumber(),
		ActualFee:     big.NewInt(info.GetFee()),
	}, nil
}

// receiptSucceeded treats DEFAULT as success: plain TRX transfers carry no
// contract result.
func receiptSucceeded(info *core.TransactionInfo) bool {
	if info.GetResult() != core.TransactionInfo_SUCESS {
		return false
	}

	switch info.GetReceipt().GetResult() {
	case core.Transaction_Result_DEFAULT, core.Transaction_Result_SUCCESS:
		return true
	default:
		return false
	}
}

// IsPending reports whether the transaction is known on chain. TRON
// transactions expire one minute after creation, so one that is absent once
// the tracker window has passed can no longer be included.
func (a *Adapter) IsPending(ctx context.Context, txHash string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %v", vo.ErrRPCUnavailable, err)
	}

	tx, err := a.rpc.GetTransactionByID(txHash)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: transaction %s: %v", vo.ErrRPCUnavailable, txHash, err)
	}
	return tx != nil, nil
}

func isNotFound(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "not found")
}
