package token

import (
	"context"
	"errors"
	"time"

	"video_platform_service/pkg/database"
)

const revokedKeyPrefix = "auth:revoked:"

// RevocationList access token ids that were logged out before expiry
type RevocationList interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// RedisRevocationList keep revoked jti in redis until the token would expire anyway
type RedisRevocationList struct {
	repo database.RedisRepository[bool]
}

// NewRedisRevocationList create RedisRevocationList
func NewRedisRevocationList(repo database.RedisRepository[bool]) *RedisRevocationList {
	return &RedisRevocationList{repo: repo}
}

// Revoke mark jti revoked for ttl, an already expired token needs no entry
func (r *RedisRevocationList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	return r.repo.Set(ctx, revokedKeyPrefix+jti, true, ttl)
}

// IsRevoked check jti
func (r *RedisRevocationList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	revoked, err := r.repo.Get(ctx, revokedKeyPrefix+jti)
	if errors.Is(err, database.ErrRedisNil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return revoked, nil
}

// RemainingTTL time left before the claims expire
func RemainingTTL(claims *AccessClaims, now time.Time) time.Duration {
	if claims == nil || claims.ExpiresAt == nil {
		return 0
	}
	return claims.ExpiresAt.Time.Sub(now)
}
