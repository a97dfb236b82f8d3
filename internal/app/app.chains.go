package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sort"
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/joshuarp/settlement-engine/internal/chains"
	"github.com/joshuarp/settlement-engine/internal/chains/evm"
	"github.com/joshuarp/settlement-engine/internal/chains/tron"
	"github.com/joshuarp/settlement-engine/internal/domain"
	"github.com/joshuarp/settlement-engine/internal/shared/config"
	sharedratelimit "github.com/joshuarp/settlement-engine/internal/shared/ratelimit"
)

type chainRegistryIn struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Config     config.ConfigProvider
	Logger     *slog.Logger
	RPCLimiter sharedratelimit.Limiter `name:"rpc_rate_limiter"`
}

// provideChainRegistry dials every enabled chain under chains.<id>. A chain
// that fails to dial aborts startup: silently skipping it would leave its
// orders approved forever.
func provideChainRegistry(in chainRegistryIn) (*chains.Registry, error) {
	registry := chains.NewRegistry()
	in.Lifecycle.Append(fx.StopHook(registry.Close))

	dialTimeout := in.Config.GetDuration("settlement.rpc_timeout")
	if dialTimeout <= 0 {
		dialTimeout = 15 * time.Second
	}

	for _, chainID := range configuredChainIDs(in.Config) {
		cfg, enabled, err := chainConfigFrom(in.Config, chainID)
		if err != nil {
			return nil, err
		}
		if !enabled {
			in.Logger.Info("chain disabled, skipping", "chain_id", chainID)
			continue
		}

		adapter, err := dialChain(cfg, dialTimeout, in.Logger)
		if err != nil {
			return nil, err
		}

		if err := registry.Register(chains.NewThrottledAdapter(adapter, in.RPCLimiter), cfg); err != nil {
			return nil, err
		}
		in.Logger.Info("chain registered",
			"chain_id", cfg.ID,
			"family", string(cfg.Family),
			"hot_wallet", adapter.HotWallet(),
			"confirmations", cfg.ConfirmNum,
		)
	}

	return registry, nil
}

func dialChain(cfg domain.ChainConfig, timeout time.Duration, logger *slog.Logger) (chains.Adapter, error) {
	switch cfg.Family {
	case domain.ChainFamilyEVM:
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return evm.Dial(ctx, cfg, logger)
	case domain.ChainFamilyTRON:
		return tron.Dial(cfg, timeout, logger)
	default:
		return nil, fmt.Errorf("app: chain %s has unsupported family %q", cfg.ID, cfg.Family)
	}
}

func configuredChainIDs(cfg config.ConfigProvider) []string {
	declared := cfg.GetStringMap("chains")
	ids := make([]string, 0, len(declared))
	for id := range declared {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func chainConfigFrom(cfg config.ConfigProvider, chainID string) (domain.ChainConfig, bool, error) {
	key := func(field string) string {
		return fmt.Sprintf("chains.%s.%s", chainID, field)
	}

	if cfg.IsSet(key("enabled")) && !cfg.GetBool(key("enabled")) {
		return domain.ChainConfig{ID: chainID}, false, nil
	}

	family, ok := domain.ParseChainFamily(cfg.GetString(key("family")))
	if !ok {
		return domain.ChainConfig{}, false, fmt.Errorf("app: chain %s: unknown family %q", chainID, cfg.GetString(key("family")))
	}

	chainCfg := domain.ChainConfig{
		ID:             chainID,
		Family:         family,
		RPCEndpoint:    strings.TrimSpace(cfg.GetSecret(key("rpc_endpoint"))),
		APIKey:         cfg.GetSecret(key("api_key")),
		EVMChainID:     cfg.GetInt64(key("evm_chain_id")),
		ConfirmNum:     cfg.GetInt(key("confirmations")),
		NativeDecimals: cfg.GetInt(key("native_decimals")),
		NativeSymbol:   cfg.GetString(key("native_symbol")),
		BlockTime:      cfg.GetDuration(key("block_time")),
		HotWalletKey:   cfg.GetSecret(key("hot_wallet_key")),
		FeeLimit:       cfg.GetInt64(key("fee_limit")),
	}

	if chainCfg.RPCEndpoint == "" {
		return domain.ChainConfig{}, false, fmt.Errorf("app: chain %s: rpc_endpoint is required", chainID)
	}
	if chainCfg.HotWalletKey == "" {
		return domain.ChainConfig{}, false, fmt.Errorf("app: chain %s: hot_wallet_key is required", chainID)
	}
	if chainCfg.ConfirmNum <= 0 {
		chainCfg.ConfirmNum = 1
	}
	if chainCfg.NativeDecimals <= 0 {
		chainCfg.NativeDecimals = defaultNativeDecimals(family)
	}

	if raw := strings.TrimSpace(cfg.GetString(key("max_gas_price"))); raw != "" {
		maxGasPrice, ok := new(big.Int).SetString(raw, 10)
		if !ok || maxGasPrice.Sign() <= 0 {
			return domain.ChainConfig{}, false, fmt.Errorf("app: chain %s: invalid max_gas_price %q", chainID, raw)
		}
		chainCfg.MaxGasPrice = maxGasPrice
	}

	return chainCfg, true, nil
}

func defaultNativeDecimals(family domain.ChainFamily) int {
	if family == domain.ChainFamilyTRON {
		return 6
	}
	return 18
}
