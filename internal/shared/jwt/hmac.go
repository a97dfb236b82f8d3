package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var _ TokenManager = (*hmacManager)(nil)

type operatorClaims struct {
	Scope string `json:"scope,omitempty"`
	jwtlib.RegisteredClaims
}

type hmacManager struct {
	secret []byte
	method jwtlib.SigningMethod
	opts   Options
	parser *jwtlib.Parser
}

func NewHMAC(opts Options) (TokenManager, error) {
	if len(opts.Secret) < 32 {
		return nil, fmt.Errorf("jwt: HMAC secret must be at least 32 bytes, got %d", len(opts.Secret))
	}

	method, err := resolveHMACMethod(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	parserOpts := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{method.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithLeeway(opts.Leeway),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwtlib.WithIssuer(opts.Issuer))
	}
	if len(opts.Audience) > 0 {
		parserOpts = append(parserOpts, jwtlib.WithAudience(opts.Audience[0]))
	}

	return &hmacManager{
		secret: opts.Secret,
		method: method,
		opts:   opts,
		parser: jwtlib.NewParser(parserOpts...),
	}, nil
}

func resolveHMACMethod(alg string) (jwtlib.SigningMethod, error) {
	switch strings.ToUpper(strings.TrimSpace(alg)) {
	case "", "HS256":
		return jwtlib.SigningMethodHS256, nil
	case "HS384":
		return jwtlib.SigningMethodHS384, nil
	case "HS512":
		return jwtlib.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("jwt: unsupported HMAC algorithm %q", alg)
	}
}

func (m *hmacManager) Sign(_ context.Context, claims Claims) (string, error) {
	now := time.Now()

	registered := jwtlib.RegisteredClaims{
		Subject:  claims.Subject,
		ID:       claims.ID,
		Issuer:   firstNonEmpty(claims.Issuer, m.opts.Issuer),
		IssuedAt: jwtlib.NewNumericDate(now),
	}
	if len(claims.Audience) > 0 {
		registered.Audience = jwtlib.ClaimStrings(claims.Audience)
	} else if len(m.opts.Audience) > 0 {
		registered.Audience = jwtlib.ClaimStrings(m.opts.Audience)
	}
	if !claims.IssuedAt.IsZero() {
		registered.IssuedAt = jwtlib.NewNumericDate(claims.IssuedAt)
	}
	if !claims.ExpiresAt.IsZero() {
		registered.ExpiresAt = jwtlib.NewNumericDate(claims.ExpiresAt)
	} else if m.opts.TTL > 0 {
		registered.ExpiresAt = jwtlib.NewNumericDate(now.Add(m.opts.TTL))
	}

	token := jwtlib.NewWithClaims(m.method, operatorClaims{
		Scope:            strings.Join(claims.Scopes, " "),
		RegisteredClaims: registered,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *hmacManager) Verify(_ context.Context, tokenString string) (*Claims, error) {
	parsed := &operatorClaims{}
	_, err := m.parser.ParseWithClaims(tokenString, parsed, func(*jwtlib.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt: token validation failed: %w", err)
	}
	if strings.TrimSpace(parsed.Subject) == "" {
		return nil, errors.New("jwt: token has no subject")
	}

	claims := &Claims{
		Subject:  parsed.Subject,
		Issuer:   parsed.Issuer,
		Audience: []string(parsed.Audience),
		Scopes:   strings.Fields(parsed.Scope),
		ID:       parsed.ID,
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time
	}
	return claims, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
