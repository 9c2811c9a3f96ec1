package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"smart-todo-assistant/pkg/response"
)

// clientLimiters holds one token bucket per client IP. Entries live for the
// lifetime of the process; parse traffic comes from a bounded set of app
// servers, so the map stays small.
type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (cl *clientLimiters) get(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	limiter, ok := cl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(cl.limit, cl.burst)
		cl.limiters[key] = limiter
	}
	return limiter
}

// RateLimit caps requests per client IP at perMin requests per minute with a
// burst of the same size. A non-positive perMin disables limiting.
func (m Middleware) RateLimit(perMin int) gin.HandlerFunc {
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	clients := &clientLimiters{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMin) / 60.0),
		burst:    perMin,
	}

	return func(c *gin.Context) {
		if !clients.get(c.ClientIP()).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s on %s", c.ClientIP(), c.FullPath())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
