package tron

import (
	"math/big"

	"github.com/fbsobreira/gotron-sdk/pkg/proto/api"
)

const (
	sunPerEnergy         = int64(420)
	sunPerBandwidth      = int64(1000)
	trc20Bandwidth       = int64(345)
	nativeBandwidth      = int64(300)
	defaultTRC20Energy   = int64(65000)
	minTRC20FeeSun       = int64(345_000)
	accountActivationFee = int64(1_100_000)
	defaultFeeLimitSun   = int64(100_000_000)
)

type accountResources struct {
	energyAvailable    int64
	bandwidthAvailable int64
}

func resourcesFrom(msg *api.AccountResourceMessage) accountResources {
	if msg == nil {
		return accountResources{}
	}

	energy := msg.GetEnergyLimit() - msg.GetEnergyUsed()
	bandwidth := (msg.GetFreeNetLimit() - msg.GetFreeNetUsed()) + (msg.GetNetLimit() - msg.GetNetUsed())
	if energy < 0 {
		energy = 0
	}
	if bandwidth < 0 {
		bandwidth = 0
	}
	return accountResources{energyAvailable: energy, bandwidthAvailable: bandwidth}
}

// burnFee is the TRX (in sun) burnt for whatever energy and bandwidth the
// hot wallet cannot cover from staked or free resources.
func burnFee(energyRequired, bandwidthRequired int64, resources accountResources) int64 {
	var fee int64
	if deficit := energyRequired - resources.energyAvailable; deficit > 0 {
		fee += deficit * sunPerEnergy
	}
	if resources.bandwidthAvailable < bandwidthRequired {
		fee += bandwidthRequired * sunPerBandwidth
	}
	return fee
}

func maxInt64(values ...int64) int64 {
	result := values[0]
	for _, v := range values[1:] {
		if v > result {
			result = v
		}
	}
	return result
}

func bigSun(value int64) *big.Int {
	return big.NewInt(value)
}
