package safety

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// RateGuard applies a per-session token bucket so one flooding visitor
// cannot starve the pipeline. Like the other safety checks it returns a
// verdict; the caller decides whether to reject.
type RateGuard struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	perMin   int
	burst    int
}

// NewRateGuard caps tracked sessions at maxSessions; least recently
// active sessions are evicted and start a fresh bucket on return.
func NewRateGuard(perMin, burst, maxSessions int) (*RateGuard, error) {
	if perMin <= 0 {
		perMin = 30
	}
	if burst <= 0 {
		burst = perMin
	}
	if maxSessions <= 0 {
		maxSessions = 10000
	}
	cache, err := lru.New[string, *rate.Limiter](maxSessions)
	if err != nil {
		return nil, err
	}
	return &RateGuard{limiters: cache, perMin: perMin, burst: burst}, nil
}

// Allow reports whether the session may submit another message now.
func (g *RateGuard) Allow(sessionKey string) bool {
	g.mu.Lock()
	limiter, ok := g.limiters.Get(sessionKey)
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(float64(g.perMin)/60.0), g.burst)
		g.limiters.Add(sessionKey, limiter)
	}
	g.mu.Unlock()
	return limiter.Allow()
}
