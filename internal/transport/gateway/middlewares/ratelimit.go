package middlewares

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	apimw "github.com/fsdevblog/groph-bank/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	DefaultRequestsPerSecond = 10
	DefaultBurst             = 20
	defaultIdleTTL           = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter token bucket на каждый ip клиента.
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
}

func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &IPRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		idleTTL:  defaultIdleTTL,
	}
}

func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (l *IPRateLimiter) Burst() int {
	return l.burst
}

// Cleanup удаляет клиентов, от которых не было запросов дольше idleTTL.
func (l *IPRateLimiter) Cleanup(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.idleTTL {
			delete(l.visitors, ip)
		}
	}
}

// Run периодически чистит неактивных клиентов до отмены ctx.
func (l *IPRateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(l.idleTTL)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.Cleanup(now)
		}
	}
}

func RateLimit(l *IPRateLimiter) gin.HandlerFunc {
	limitHeader := strconv.Itoa(l.Burst())
	return func(c *gin.Context) {
		c.Header("X-RateLimit-Limit", limitHeader)
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apimw.NewErrorResponse(apimw.KindRateLimited, "too many requests"))
			return
		}
		c.Next()
	}
}
