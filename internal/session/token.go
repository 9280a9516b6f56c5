package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-backend/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrRevoked      = errors.New("token revoked")
)

// Claims are the JWT claims of an access token. The subject is the
// account id.
type Claims struct {
	Staff     bool `json:"staff"`
	Superuser bool `json:"superuser"`
	jwt.RegisteredClaims
}

func (c *Claims) AccountID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: subject %q", ErrInvalidToken, c.Subject)
	}
	return uint(id), nil
}

// Manager issues and verifies HS256 access tokens and keeps their ids in
// a Store.
type Manager struct {
	secret []byte
	ttl    time.Duration
	store  Store
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration, store Store) *Manager {
	if store == nil {
		store = Stateless{}
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		now:    time.Now,
	}
}

func (m *Manager) Issue(ctx context.Context, acct *models.Account) (string, error) {
	now := m.now()
	claims := Claims{
		Staff:     acct.IsStaff,
		Superuser: acct.IsSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(acct.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", err
	}

	if err := m.store.Register(ctx, claims.ID, acct.ID, m.ttl); err != nil {
		return "", fmt.Errorf("register session: %w", err)
	}
	return signed, nil
}

// Verify parses raw and checks the signature, expiry and session.
func (m *Manager) Verify(ctx context.Context, raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := claims.AccountID(); err != nil {
		return nil, err
	}

	active, err := m.store.Active(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	if !active {
		return nil, ErrRevoked
	}
	return claims, nil
}

func (m *Manager) Revoke(ctx context.Context, claims *Claims) error {
	return m.store.Revoke(ctx, claims.ID)
}
