package chains

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/joshuarp/settlement-engine/internal/domain"
	"github.com/joshuarp/settlement-engine/internal/domain/vo"
	"github.com/joshuarp/settlement-engine/internal/shared/ratelimit"
)

const maxThrottleWait = 5 * time.Second

var _ Adapter = (*ThrottledAdapter)(nil)

// ThrottledAdapter takes a token from a shared limiter before every RPC call,
// so all engine instances together stay under the provider's quota.
type ThrottledAdapter struct {
	next    Adapter
	limiter ratelimit.Limiter
	key     string
}

func NewThrottledAdapter(next Adapter, limiter ratelimit.Limiter) Adapter {
	if limiter == nil {
		return next
	}
	return &ThrottledAdapter{next: next, limiter: limiter, key: "rpc:" + next.ChainID()}
}

func (a *ThrottledAdapter) wait(ctx context.Context) error {
	for {
		result, err := a.limiter.AllowKey(ctx, a.key)
		if err != nil {
			// Limiter outages must not stall settlement.
			return nil
		}
		if result.Allowed {
			return nil
		}

		delay := result.RetryAfter
		if delay <= 0 {
			delay = 50 * time.Millisecond
		}
		if delay > maxThrottleWait {
			delay = maxThrottleWait
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w: throttled on %s: %v", vo.ErrRPCUnavailable, a.key, ctx.Err())
		case <-timer.C:
		}
	}
}

func (a *ThrottledAdapter) ChainID() string { return a.next.ChainID() }
func (a *ThrottledAdapter) Family() domain.ChainFamily { return a.next.Family() }
func (a *ThrottledAdapter) HotWallet() string { return a.next.HotWallet() }
func (a *ThrottledAdapter) ValidateAddress(addr string) error { return a.next.ValidateAddress(addr) }

func (a *ThrottledAdapter) GetBalance(ctx context.Context, address string, asset domain.AssetRef) (*big.Int, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	return a.next.GetBalance(ctx, address, asset)
}

func (a *ThrottledAdapter) EstimateFee(ctx context.Context, intent vo.TransferIntent) (vo.FeeEstimate, error) {
	if err := a.wait(ctx); err != nil {
		return vo.FeeEstimate{}, err
	}
	return a.next.EstimateFee(ctx, intent)
}

func (a *ThrottledAdapter) Broadcast(ctx context.Context, intent vo.TransferIntent, fee vo.FeeEstimate) (string, error) {
	if err := a.wait(ctx); err != nil {
		return "", err
	}
	return a.next.Broadcast(ctx, intent, fee)
}

func (a *ThrottledAdapter) GetReceipt(ctx context.Context, txHash string) (vo.Receipt, error) {
	if err := a.wait(ctx); err != nil {
		return vo.Receipt{}, err
	}
	return a.next.GetReceipt(ctx, txHash)
}

func (a *ThrottledAdapter) IsPending(ctx context.Context, txHash string) (bool, error) {
	if err := a.wait(ctx); err != nil {
		return false, err
	}
	return a.next.IsPending(ctx, txHash)
}

// Close forwards to the wrapped adapter so the registry can release it.
func (a *ThrottledAdapter) Close() error {
	if closer, ok := a.next.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
