package middleware

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter caps report generation per client IP using a fixed one-minute
// window counted in Redis. When Redis is unreachable the limiter fails open
// so a cache outage cannot take down report generation.
type RateLimiter struct {
	rdb               *redis.Client
	logger            *zap.Logger
	requestsPerMinute int
}

func NewRateLimiter(rdb *redis.Client, requestsPerMinute int, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{rdb: rdb, logger: logger, requestsPerMinute: requestsPerMinute}
}

// Limit is middleware for the generation endpoint. Routes that only read
// history are not limited.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	if rl == nil || rl.rdb == nil || rl.requestsPerMinute <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		allowed, remaining, resetAt := rl.check(r, ip)

		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.requestsPerMinute))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetAt.Unix()))

		if !allowed {
			rl.logger.Warn("rate limit exceeded",
				zap.String("ip", ip),
				zap.String("path", r.URL.Path),
			)
			w.Header().Set("Retry-After", fmt.Sprintf("%d", resetAt.Unix()-time.Now().Unix()))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) check(r *http.Request, ip string) (allowed bool, remaining int, resetAt time.Time) {
	window := time.Now().Truncate(time.Minute)
	windowKey := fmt.Sprintf("ratelimit:ip:%s:%d", ip, window.Unix())
	resetAt = window.Add(time.Minute)

	pipe := rl.rdb.Pipeline()
	incr := pipe.Incr(r.Context(), windowKey)
	pipe.Expire(r.Context(), windowKey, time.Minute+time.Second)
	if _, err := pipe.Exec(r.Context()); err != nil {
		rl.logger.Warn("rate limit check failed, allowing request", zap.Error(err))
		return true, rl.requestsPerMinute, resetAt
	}

	count := incr.Val()
	remaining = rl.requestsPerMinute - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return count <= int64(rl.requestsPerMinute), remaining, resetAt
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
