package auth

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/mrlokans/bookmarks/internal/rpc"
)

// RateLimiter is a token-bucket limiter keyed by client IP.
type RateLimiter struct {
	mu              sync.Mutex
	buckets         map[string]*bucket
	limit           rate.Limit
	burst           int
	ttl             time.Duration
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows perSecond calls per client with the given burst.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	rl := &RateLimiter{
		buckets:         make(map[string]*bucket),
		limit:           rate.Limit(perSecond),
		burst:           burst,
		ttl:             5 * time.Minute,
		cleanupInterval: time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	// Start background cleanup
	go rl.cleanupLoop()

	return rl
}

// Stop stops the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCleanup)
}

// Allow reports whether the client may make another call now.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = time.Now()
	rl.mu.Unlock()

	return b.lim.Allow()
}

// Middleware rejects callers over their budget with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			rpcErr := rpc.TooManyRequests("rate limit exceeded")
			c.AbortWithStatusJSON(rpcErr.HTTPStatus(), gin.H{"error": rpcErr})
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCleanup:
			return
		}
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) > rl.ttl {
			delete(rl.buckets, key)
		}
	}
}
