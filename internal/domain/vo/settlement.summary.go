package vo

import "github.com/joshuarp/settlement-engine/internal/domain"

type ProcessSummary struct {
	ChainID     string `json:"chain_id"`
	Claimed     int    `json:"claimed"`
	Broadcast   int    `json:"broadcast"`
	Retried     int    `json:"retried"`
	Failed      int    `json:"failed"`
	Skipped     int    `json:"skipped"`
	Unpersisted int    `json:"unpersisted"`
}

type RelaySummary struct {
	Leased    int `json:"leased"`
	Published int `json:"published"`
	Failed    int `json:"failed"`
}

type WithdrawalDetail struct {
	Order    domain.WithdrawalOrder     `json:"order"`
	Attempts []domain.SettlementAttempt `json:"attempts"`
}
