// Package jwt verifies the bearer tokens operators present to the settlement
// ops API. Tokens are issued by the back-office identity service with a
// shared HMAC secret; Sign exists for tooling and tests.
package jwt

import (
	"context"
	"slices"
	"time"
)

// ScopeOperate allows mutating settlement state (reattach, abandon, manual runs).
const ScopeOperate = "settlement:operate"

type Options struct {
	// Secret must be at least 32 bytes.
	Secret []byte

	// Algorithm is HS256 (default), HS384 or HS512.
	Algorithm string

	// Issuer and Audience are stamped on signed tokens and, when set,
	// required on verified ones.
	Issuer   string
	Audience []string

	// TTL sets "exp" on signed tokens when the claims carry none.
	TTL time.Duration

	// Leeway tolerates clock skew between issuer and engine.
	Leeway time.Duration
}

type Claims struct {
	Subject   string
	Issuer    string
	Audience  []string
	Scopes    []string
	ExpiresAt time.Time
	IssuedAt  time.Time
	ID        string
}

func (c Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// TokenManager is safe for concurrent use.
type TokenManager interface {
	Sign(ctx context.Context, claims Claims) (string, error)
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

func New(opts Options) (TokenManager, error) {
	return NewHMAC(opts)
}
