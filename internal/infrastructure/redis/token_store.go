// Package redis implementa la lista de tokens revocados sobre Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MRMRMR033/pos-api/internal/application/auth"
	"github.com/MRMRMR033/pos-api/pkg/config"
)

const revokedPrefix = "pos:revoked:"

var (
	_ auth.TokenRevoker = (*TokenStore)(nil)
	_ auth.TokenRevoker = Noop{}
)

// NewClient abre el cliente y verifica la conexión con un ping.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return client, nil
}

// TokenStore guarda el jti de cada token revocado hasta que el token expira.
type TokenStore struct {
	client *goredis.Client
}

// NewTokenStore construye el store sobre un cliente ya abierto.
func NewTokenStore(client *goredis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Revoke marca el jti como revocado. Un ttl no positivo no deja rastro: el token ya expiró.
func (s *TokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis: revocar token: %w", err)
	}
	return nil
}

// IsRevoked indica si el jti está en la lista.
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	n, err := s.client.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("redis: consultar revocación: %w", err)
	}
	return n > 0, nil
}

// Noop se usa cuando REDIS_ADDR está vacío: logout no invalida el token antes de su expiración.
type Noop struct{}

func (Noop) Revoke(context.Context, string, time.Duration) error { return nil }

func (Noop) IsRevoked(context.Context, string) (bool, error) { return false, nil }
