package evm

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/joshuarp/settlement-engine/internal/domain/vo"
)

type pendingNonceSource interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
}

// NonceManager is the single authoritative nonce counter for one hot wallet.
// The lock is held from nonce reservation until the transaction has been
// handed to the node, so nonce order always equals submission order.
type NonceManager struct {
	mu      sync.Mutex
	address common.Address
	source  pendingNonceSource
	next    uint64
	synced  bool
}

func NewNonceManager(address common.Address, source pendingNonceSource) *NonceManager {
	return &NonceManager{address: address, source: source}
}

// Use runs send with the next nonce. The nonce is consumed only when send
// returns nil; any failure forces a re-sync from the node before the next use.
func (m *NonceManager) Use(ctx context.Context, send func(nonce uint64) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.synced {
		nonce, err := m.source.PendingNonceAt(ctx, m.address)
		if err != nil {
			return fmt.Errorf("%w: pending nonce for %s: %v", vo.ErrRPCUnavailable, m.address.Hex(), err)
		}
		m.next = nonce
		m.synced = true
	}

	if err := send(m.next); err != nil {
		m.synced = false
		return err
	}

	m.next++
	return nil
}

// Invalidate drops the cached counter, e.g. after a tracked transaction
// disappeared from the pool and its nonce became reusable.
func (m *NonceManager) Invalidate() {
	m.mu.Lock()
	m.synced = false
	m.mu.Unlock()
}
