package auth

import (
	"context"
	"time"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
)

// TokenRevoker lista de tokens revocados (logout). La entrada expira junto con el token.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// SessionRecorder registra eventos LOGIN/LOGOUT. Lo implementa *usecase.SessionEventUseCase.
type SessionRecorder interface {
	Record(ctx context.Context, userID int64, kind string, ts time.Time) (*dto.SessionEventResponse, error)
}
