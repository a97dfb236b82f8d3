package chains

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/joshuarp/settlement-engine/internal/domain"
	"github.com/joshuarp/settlement-engine/internal/domain/vo"
)

type registryEntry struct {
	adapter Adapter
	config  domain.ChainConfig
}

// Registry maps a chainId to its adapter and configuration.
type Registry struct {
	mu     sync.RWMutex
	chains map[string]registryEntry
}

func NewRegistry() *Registry {
	return &Registry{chains: make(map[string]registryEntry)}
}

func (r *Registry) Register(adapter Adapter, cfg domain.ChainConfig) error {
	if adapter == nil {
		return errors.New("chains: adapter is required")
	}
	if cfg.ID == "" {
		return errors.New("chains: chain id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.chains[cfg.ID]; exists {
		return fmt.Errorf("chains: chain %q already registered", cfg.ID)
	}

	r.chains[cfg.ID] = registryEntry{adapter: adapter, config: cfg}
	return nil
}

func (r *Registry) Adapter(chainID string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.chains[chainID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", vo.ErrUnknownChain, chainID)
	}
	return entry.adapter, nil
}

func (r *Registry) Config(chainID string) (domain.ChainConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.chains[chainID]
	if !ok {
		return domain.ChainConfig{}, fmt.Errorf("%w: %s", vo.ErrUnknownChain, chainID)
	}
	return entry.config, nil
}

// ChainIDs returns the registered chain ids in a stable order.
func (r *Registry) ChainIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.chains))
	for id := range r.chains {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Close releases adapters that hold connections.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var closeErrors []error
	for id, entry := range r.chains {
		closer, ok := entry.adapter.(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			closeErrors = append(closeErrors, fmt.Errorf("chains: close %s: %w", id, err))
		}
	}

	return errors.Join(closeErrors...)
}
