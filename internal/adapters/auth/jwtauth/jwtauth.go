// Package jwtauth emite y verifica JWT firmados con HS256.
package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"dogs-registry/internal/ports/auth"
)

const (
	usernameClaim = "username"

	DefaultTTL    = 24 * time.Hour
	DefaultIssuer = "dogs-registry"
	minSecretLen  = 16
)

var (
	ErrWeakSecret   = errors.New("jwt secret must be at least 16 bytes")
	ErrInvalidToken = errors.New("invalid token")
)

type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Manager implementa auth.TokenIssuer y auth.AuthVerifier.
type Manager struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func New(cfg Config) (*Manager, error) {
	if len(cfg.Secret) < minSecretLen {
		return nil, ErrWeakSecret
	}
	m := &Manager{
		key:    []byte(cfg.Secret),
		issuer: strings.TrimSpace(cfg.Issuer),
		ttl:    cfg.TTL,
		now:    time.Now,
	}
	if m.issuer == "" {
		m.issuer = DefaultIssuer
	}
	if m.ttl <= 0 {
		m.ttl = DefaultTTL
	}
	return m, nil
}

func (m *Manager) Issue(ctx context.Context, claims auth.Claims) (auth.Token, error) {
	if strings.TrimSpace(claims.UserID) == "" {
		return auth.Token{}, errors.New("jwtauth: user id required")
	}

	now := m.now().UTC().Truncate(time.Second)
	exp := now.Add(m.ttl)

	tok, err := jwt.NewBuilder().
		Issuer(m.issuer).
		Subject(claims.UserID).
		IssuedAt(now).
		Expiration(exp).
		Claim(usernameClaim, claims.Username).
		Build()
	if err != nil {
		return auth.Token{}, fmt.Errorf("jwtauth: build token: %w", err)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, m.key))
	if err != nil {
		return auth.Token{}, fmt.Errorf("jwtauth: sign token: %w", err)
	}

	return auth.Token{Value: string(signed), ExpiresAt: exp}, nil
}

func (m *Manager) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	tok, err := jwt.Parse([]byte(token),
		jwt.WithKey(jwa.HS256, m.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.issuer),
		jwt.WithClock(jwt.ClockFunc(m.now)),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	sub := strings.TrimSpace(tok.Subject())
	if sub == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	claims := auth.Claims{UserID: sub}
	if v, ok := tok.Get(usernameClaim); ok {
		claims.Username, _ = v.(string)
	}
	return claims, nil
}
