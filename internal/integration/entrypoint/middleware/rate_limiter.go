package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
	"github.com/finance-tracker/reports-api/internal/integration/entrypoint/dto"
)

const (
	// DefaultMaxAttempts is the number of requests allowed per window.
	DefaultMaxAttempts = 5
	// DefaultWindow is the fixed window length.
	DefaultWindow = time.Minute
)

type window struct {
	count   int
	resetAt time.Time
}

// RateLimiter is a fixed-window limiter keyed by client IP.
type RateLimiter struct {
	mu          sync.Mutex
	windows     map[string]*window
	maxAttempts int
	length      time.Duration
	now         func() time.Time
}

// NewRateLimiter creates a limiter. Non-positive arguments use the defaults.
func NewRateLimiter(maxAttempts int, length time.Duration) *RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if length <= 0 {
		length = DefaultWindow
	}
	return &RateLimiter{
		windows:     make(map[string]*window),
		maxAttempts: maxAttempts,
		length:      length,
		now:         time.Now,
	}
}

// Middleware returns a Gin handler that rejects clients over the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if key == "" {
			key = c.Request.RemoteAddr
		}

		allowed, retryAfter := rl.allow(key)
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds()+0.5)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || !now.Before(w.resetAt) {
		rl.windows[key] = &window{count: 1, resetAt: now.Add(rl.length)}
		return true, 0
	}
	if w.count >= rl.maxAttempts {
		return false, w.resetAt.Sub(now)
	}
	w.count++
	return true, 0
}

// Sweep drops expired windows.
func (rl *RateLimiter) Sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, w := range rl.windows {
		if !now.Before(w.resetAt) {
			delete(rl.windows, key)
		}
	}
}

// RunSweeper calls Sweep once per window until ctx is cancelled.
func (rl *RateLimiter) RunSweeper(ctx context.Context) {
	ticker := time.NewTicker(rl.length)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Sweep()
		}
	}
}
