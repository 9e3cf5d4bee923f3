package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/catalog-admin/internal/application/auth"
)

const revokedPrefix = "session:revoked:"

var _ auth.SessionRevoker = (*SessionRevoker)(nil)

// SessionRevoker guarda el jti de los tokens cerrados con logout hasta que expiran.
type SessionRevoker struct {
	client goredis.UniversalClient
}

// NewSessionRevoker construye el revocador sobre un cliente Redis.
func NewSessionRevoker(client goredis.UniversalClient) *SessionRevoker {
	return &SessionRevoker{client: client}
}

// Revoke marca el token como revocado durante ttl.
func (r *SessionRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, revokedPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// IsRevoked indica si el token fue revocado.
func (r *SessionRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}
