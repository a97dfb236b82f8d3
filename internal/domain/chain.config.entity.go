package domain

import (
	"math/big"
	"strings"
	"time"
)

type ChainFamily string

const (
	ChainFamilyEVM  ChainFamily = "evm"
	ChainFamilyTRON ChainFamily = "tron"
)

func ParseChainFamily(value string) (ChainFamily, bool) {
	switch ChainFamily(strings.ToLower(strings.TrimSpace(value))) {
	case ChainFamilyEVM:
		return ChainFamilyEVM, true
	case ChainFamilyTRON:
		return ChainFamilyTRON, true
	default:
		return "", false
	}
}

type ChainConfig struct {
	ID             string
	Family         ChainFamily
	RPCEndpoint    string
	APIKey         string
	EVMChainID     int64
	ConfirmNum     int
	NativeDecimals int
	NativeSymbol   string
	BlockTime      time.Duration
	HotWalletKey   string
	MaxGasPrice    *big.Int
	FeeLimit       int64
}

// AssetRef identifies what an order moves. An empty Contract means the native coin.
type AssetRef struct {
	Symbol   string `json:"symbol"`
	Contract string `json:"contract,omitempty"`
	Decimals int    `json:"decimals"`
}

func (a AssetRef) IsNative() bool {
	return strings.TrimSpace(a.Contract) == ""
}
