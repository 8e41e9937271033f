package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"electric-system-backend/internal/delivery/http/response"
	"electric-system-backend/pkg/logger"
	"electric-system-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key extractor (default: forwarded-IP based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
	// Whether to reject when the limiter store errors
	FailClosed bool
	// Message returned with the 429
	Message string
}

// ContactRateLimitConfig bounds contact form submissions per client.
func ContactRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:contact:",
		FailClosed: false,
		KeyFunc:    ClientKey,
		Message:    "Trop de demandes. Veuillez réessayer dans une minute.",
	}
}

// ClientKey derives the best-effort client identity used for rate limiting:
// the first hop of X-Forwarded-For, then X-Real-IP, then "unknown". This is
// not authentication.
func ClientKey(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if rip := c.GetHeader("X-Real-IP"); rip != "" {
		return rip
	}
	return "unknown"
}

// Decision is the outcome of one limiter check.
type Decision struct {
	Allowed bool
	Count   int
	ResetAt time.Time
}

// Limiter bounds repeated requests per client key. Constructed once per
// process and injected, so the store can be swapped (in-memory vs Redis)
// without touching handler logic.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// maxTrackedKeys triggers the opportunistic sweep of expired in-memory
// records. A heuristic bound, not a precise eviction policy.
const maxTrackedKeys = 1000

type rateLimitRecord struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter keeps per-client counters in a process-local map. State does
// not survive restarts and is not shared across instances.
type MemoryLimiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	records map[string]*rateLimitRecord

	now func() time.Time
}

// NewMemoryLimiter creates an in-memory limiter.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		records: make(map[string]*rateLimitRecord),
		now:     time.Now,
	}
}

// Allow checks and updates the client's window. A rejected request does not
// consume a slot.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Amortized cleanup once the map grows past the housekeeping threshold.
	if len(l.records) > maxTrackedKeys {
		for k, rec := range l.records {
			if now.After(rec.resetAt) {
				delete(l.records, k)
			}
		}
	}

	rec, ok := l.records[key]
	if !ok || now.After(rec.resetAt) {
		rec = &rateLimitRecord{count: 1, resetAt: now.Add(l.window)}
		l.records[key] = rec
		return Decision{Allowed: true, Count: 1, ResetAt: rec.resetAt}, nil
	}

	if rec.count >= l.limit {
		return Decision{Allowed: false, Count: rec.count, ResetAt: rec.resetAt}, nil
	}

	rec.count++
	return Decision{Allowed: true, Count: rec.count, ResetAt: rec.resetAt}, nil
}

// Lua script for atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RedisLimiter shares one window across instances through an atomic
// INCR+EXPIRE script.
type RedisLimiter struct {
	client *goredis.Client
	limit  int
	window time.Duration
	prefix string
}

// NewRedisLimiter creates a Redis-backed limiter.
func NewRedisLimiter(client *goredis.Client, limit int, window time.Duration, prefix string) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window, prefix: prefix}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	ttlSeconds := int(l.window.Seconds())

	result, err := l.client.Eval(ctx, rateLimitLuaScript, []string{l.prefix + key}, ttlSeconds).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return Decision{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)
	resetAt := time.Now().Add(time.Duration(ttl) * time.Second)

	return Decision{
		Allowed: int(count) <= l.limit,
		Count:   int(count),
		ResetAt: resetAt,
	}, nil
}

// RateLimitMiddleware rejects requests over the client's window with a 429.
// A rejection is an expected outcome, not an error, so it is not logged as
// one.
func RateLimitMiddleware(limiter Limiter, config RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := config.KeyFunc(c)

		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			if config.FailClosed {
				response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.")
				c.Abort()
				return
			}
			// Fail open: a broken limiter store should not take the form down.
			logger.Log.Warn("rate limiter store unavailable", "error", err)
			c.Next()
			return
		}

		if !decision.Allowed {
			retryAfter := int(time.Until(decision.ResetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}

			c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", decision.ResetAt.Format(time.RFC3339))
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			metrics.IncrementContactSubmission("rate_limited")

			response.Error(c, http.StatusTooManyRequests, config.Message)
			c.Abort()
			return
		}

		remaining := config.Limit - decision.Count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", decision.ResetAt.Format(time.RFC3339))

		c.Next()
	}
}
