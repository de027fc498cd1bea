package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Compile-time check to ensure redisTokenRepository implements TokenRepository
var _ TokenRepository = (*redisTokenRepository)(nil)

type redisTokenRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisTokenRepository creates a new Redis-backed TokenRepository.
func NewRedisTokenRepository(client *redis.Client, logger *zap.Logger) TokenRepository {
	return &redisTokenRepository{
		client: client,
		logger: logger.Named("RedisTokenRepo"),
	}
}

func revokedKey(jti string) string {
	return fmt.Sprintf("revoked_jti:%s", jti)
}

// Revoke stores the jti with a TTL matching the remaining token lifetime.
// The key expires on its own once the token would have expired anyway.
func (r *redisTokenRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to store.
		r.logger.Debug("Skipping revocation of expired token", zap.String("jti", jti))
		return nil
	}
	key := revokedKey(jti)
	if err := r.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		r.logger.Error("Failed to store revoked token in redis", zap.Error(err), zap.String("jti", jti))
		return fmt.Errorf("failed to store revoked token in redis: %w", err)
	}
	r.logger.Info("Token revoked", zap.String("jti", jti), zap.Duration("ttl", ttl))
	return nil
}

func (r *redisTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, err := r.client.Get(ctx, revokedKey(jti)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.logger.Error("Failed to check revoked token in redis", zap.Error(err), zap.String("jti", jti))
		return false, fmt.Errorf("failed to check revoked token in redis: %w", err)
	}
	return true, nil
}
