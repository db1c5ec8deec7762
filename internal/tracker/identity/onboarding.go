package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const onboardedKey = "gymtracker::onboarded"

// RedisOnboardingFlags keeps the "onboarding finished" flag across restarts.
type RedisOnboardingFlags struct {
	redisClient *redis.Client
}

func NewRedisOnboardingFlags(redisClient *redis.Client) *RedisOnboardingFlags {
	return &RedisOnboardingFlags{
		redisClient: redisClient,
	}
}

func (f *RedisOnboardingFlags) IsOnboarded(ctx context.Context) (bool, error) {
	val, err := f.redisClient.Get(ctx, onboardedKey).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get onboarded flag: %w", err)
	}
	return val == "true", nil
}

func (f *RedisOnboardingFlags) MarkOnboarded(ctx context.Context) error {
	if err := f.redisClient.Set(ctx, onboardedKey, "true", 0).Err(); err != nil {
		return fmt.Errorf("set onboarded flag: %w", err)
	}
	return nil
}
