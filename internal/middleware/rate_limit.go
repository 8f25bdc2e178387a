package middleware

import (
	"sync"
	"time"

	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/contextutil"
	"go-logbook/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const minLimiterIdle = 10 * time.Minute

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter keeps one token bucket per key. Keys idle for longer
// than it takes a bucket to refill are evicted, since a fresh limiter is
// indistinguishable from a full one.
type KeyedRateLimiter struct {
	limiters  map[string]*keyedLimiter
	mu        *sync.Mutex
	r         rate.Limit
	b         int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	idle := minLimiterIdle
	if r != rate.Inf && r > 0 {
		if refill := time.Duration(float64(b) / float64(r) * float64(time.Second)); refill > idle {
			idle = refill
		}
	}
	return &KeyedRateLimiter{
		limiters:  make(map[string]*keyedLimiter),
		mu:        &sync.Mutex{},
		r:         r,
		b:         b,
		idle:      idle,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (k *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.Sub(k.lastSweep) >= k.idle {
		k.sweepLocked(now)
	}

	entry, exists := k.limiters[key]
	if !exists {
		entry = &keyedLimiter{limiter: rate.NewLimiter(k.r, k.b)}
		k.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter
}

// Sweep drops limiters not used within the idle window.
func (k *KeyedRateLimiter) Sweep() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.sweepLocked(k.now())
}

func (k *KeyedRateLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}

func (k *KeyedRateLimiter) sweepLocked(now time.Time) {
	for key, entry := range k.limiters {
		if now.Sub(entry.lastSeen) >= k.idle {
			delete(k.limiters, key)
		}
	}
	k.lastSweep = now
}

// PerMinute converts a requests-per-minute budget into a rate.Limit. A
// non-positive n disables limiting.
func PerMinute(n int) rate.Limit {
	if n <= 0 {
		return rate.Inf
	}
	return rate.Every(time.Minute / time.Duration(n))
}

// RateLimitByIP throttles anonymous endpoints such as login and password reset.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			response.AbortWithError(c, apperror.ErrRateLimited)
			return
		}
		c.Next()
	}
}

// RateLimitByUser: r = requests per second, b = burst
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString(contextutil.GinUserIDKey)
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(userID).Allow() {
			response.AbortWithError(c, apperror.ErrRateLimited)
			return
		}
		c.Next()
	}
}
