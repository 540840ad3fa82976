package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/nbs-ai/agentic-rag/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	dialTimeout = 5 * time.Second
	opTimeout   = 3 * time.Second
	maxBackoff  = 30 * time.Second
)

// Connect opens the Redis client backing the short-term memory store
// and verifies it with pings, backing off exponentially between
// attempts. The same retry budget is threaded into the client's own
// per-command retries.
func Connect(ctx context.Context, cfg *config.Config, maxRetries int) (*redis.Client, error) {
	if maxRetries < 1 {
		maxRetries = 1
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           0,
		MaxRetries:   maxRetries,
		DialTimeout:  dialTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
	})

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Info().
			Int("attempt", attempt).
			Int("max_retries", maxRetries).
			Str("addr", cfg.RedisAddr).
			Msg("Connecting to Redis")

		lastErr = client.Ping(ctx).Err()
		if lastErr == nil {
			log.Info().Int("attempts_needed", attempt).Msg("Redis connected")
			return client, nil
		}

		log.Warn().Err(lastErr).Int("attempt", attempt).Msg("Redis ping failed")

		if attempt == maxRetries {
			break
		}

		backoff := retryBackoff(attempt)
		log.Info().Dur("backoff", backoff).Msg("Waiting before Redis retry")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", maxRetries, lastErr)
}

// retryBackoff doubles per attempt, capped so a long outage does not
// stretch the waits unboundedly.
func retryBackoff(attempt int) time.Duration {
	backoff := time.Second << uint(attempt-1)
	if backoff > maxBackoff {
		backoff = maxBackoff
	}
	return backoff
}
