package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
)

// unlimitedPrefixes are never counted against a client's budget.
var unlimitedPrefixes = []string{"/api/v1/health", "/swagger"}

// RateLimiter counts requests per client IP in fixed Redis windows.
type RateLimiter struct {
	rdb     *redis.Client
	maxReqs int64
	window  time.Duration
}

// NewRateLimiter creates a rate limiter. A nil rdb or a non-positive maxReqs
// disables limiting.
func NewRateLimiter(rdb *redis.Client, maxReqs, windowSec int) *RateLimiter {
	return &RateLimiter{
		rdb:     rdb,
		maxReqs: int64(maxReqs),
		window:  time.Duration(windowSec) * time.Second,
	}
}

// Handler returns the fiber middleware.
func (rl *RateLimiter) Handler() fiber.Handler {
	return func(c fiber.Ctx) error {
		if rl.rdb == nil || rl.maxReqs <= 0 || exempt(c.Path()) {
			return c.Next()
		}

		ctx := c.Context()
		key := "ratelimit:gateway:" + c.IP()

		var incr *redis.IntCmd
		var ttlCmd *redis.DurationCmd
		_, err := rl.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			ttlCmd = pipe.TTL(ctx, key)
			return nil
		})
		if err != nil {
			// fail open
			return c.Next()
		}

		count := incr.Val()
		ttl := ttlCmd.Val()
		if ttl < 0 {
			// first hit of the window, or a key that lost its expiry
			rl.rdb.Expire(ctx, key, rl.window)
			ttl = rl.window
		}

		c.Set("X-RateLimit-Limit", strconv.FormatInt(rl.maxReqs, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(max(0, rl.maxReqs-count), 10))
		c.Set("X-RateLimit-Reset", strconv.Itoa(int(ttl.Seconds())))

		if count > rl.maxReqs {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(ttl.Seconds())))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "rate limit exceeded",
				"retry_after": int(ttl.Seconds()),
			})
		}

		return c.Next()
	}
}

func exempt(path string) bool {
	for _, prefix := range unlimitedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
