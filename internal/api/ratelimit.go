package api

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

const limiterMaxAge = 10 * time.Minute

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu    sync.Mutex
	store map[string]*limiterEntry
}

type limiterEntry struct {
	limiter *rate.Limiter
	updated time.Time
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		limit: rate.Limit(rps),
		burst: burst,
		store: make(map[string]*limiterEntry),
	}
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	if e, ok := rl.store[key]; ok {
		e.updated = now
		return e.limiter
	}

	lim := rate.NewLimiter(rl.limit, rl.burst)
	rl.store[key] = &limiterEntry{limiter: lim, updated: now}

	for k, e := range rl.store {
		if now.Sub(e.updated) > limiterMaxAge {
			delete(rl.store, k)
		}
	}

	return lim
}

// Limit answers 429 once the caller's IP spent its burst. Runs after WithIP.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !rl.get(entity.IPFromCtx(ctx)).Allow() {
			w.Header().Set("Retry-After", "1")
			sendErr(ctx, w, http.StatusTooManyRequests, errTooManyRequests, "Demasiadas solicitudes, intente más tarde")

			return
		}

		next.ServeHTTP(w, r)
	})
}
