package auth

import (
	"context"
	"time"
)

// TokenRepository persists refresh tokens so they can be revoked server-side.
type TokenRepository interface {
	StoreRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error
	IsRefreshTokenValid(ctx context.Context, userID string, tokenHash string) (bool, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
