// Package uid generates row identifiers, e.g. ledger credit outbox ids.
package uid

import (
	"context"
	"fmt"
	"strings"
)

type Strategy string

const (
	StrategySnowflake Strategy = "snowflake"
	StrategyUUIDv7    Strategy = "uuidv7"
)

type Options struct {
	// Strategy defaults to uuidv7.
	Strategy Strategy

	// NodeID must be unique per engine instance (snowflake only, 0-1023).
	NodeID int64

	// Prefix is prepended as "<prefix>_<id>" when set.
	Prefix string
}

// UIDGenerator is safe for concurrent use.
type UIDGenerator interface {
	Generate(ctx context.Context) (string, error)
}

func New(opts Options) (UIDGenerator, error) {
	var (
		gen UIDGenerator
		err error
	)

	switch Strategy(strings.ToLower(strings.TrimSpace(string(opts.Strategy)))) {
	case "", StrategyUUIDv7:
		gen = uuidv7Generator{}
	case StrategySnowflake:
		gen, err = newSnowflake(opts.NodeID)
	default:
		return nil, fmt.Errorf("uid: unknown strategy %q", opts.Strategy)
	}
	if err != nil {
		return nil, err
	}

	if prefix := strings.TrimSpace(opts.Prefix); prefix != "" {
		return prefixed{next: gen, prefix: prefix + "_"}, nil
	}
	return gen, nil
}

type prefixed struct {
	next   UIDGenerator
	prefix string
}

func (p prefixed) Generate(ctx context.Context) (string, error) {
	id, err := p.next.Generate(ctx)
	if err != nil {
		return "", err
	}
	return p.prefix + id, nil
}
