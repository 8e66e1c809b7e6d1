package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MaxBytes caps the request body. 🛡️ OOM protection against clients
// streaming unbounded JSON.
func MaxBytes(n int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is an in-memory per-IP token bucket. Good enough for a
// single-instance marketing site; the form endpoint is the target.
type RateLimiter struct {
	visitors sync.Map // 🛡️ Thread-safe map, no global lock on the hot path
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	rl := &RateLimiter{rate: r, burst: burst}
	go rl.cleanupVisitors()
	return rl
}

// Handler rejects callers that exhausted their bucket with a 429.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// X-Real-IP for proxy compatibility, set upstream by RealIP
		ip := r.Header.Get("X-Real-IP")
		if ip == "" {
			ip = r.RemoteAddr
		}

		v, _ := rl.visitors.LoadOrStore(ip, &visitor{
			limiter: rate.NewLimiter(rl.rate, rl.burst),
		})
		vis := v.(*visitor)
		vis.lastSeen = time.Now()

		if !vis.limiter.Allow() {
			http.Error(w, `{"error": "Demasiadas solicitudes, intentá más tarde"}`, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// cleanupVisitors drops buckets idle for more than three minutes so the
// map cannot grow without bound.
func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)
		rl.visitors.Range(func(key, value any) bool {
			if v, ok := value.(*visitor); ok && time.Since(v.lastSeen) > 3*time.Minute {
				rl.visitors.Delete(key)
			}
			return true
		})
	}
}
