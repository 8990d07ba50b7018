// Package ratelimit throttles HTTP clients with one token bucket per
// client, route and method.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter manages rate limiting for multiple clients.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	config  *Config
	done    chan struct{}
	once    sync.Once
}

// NewLimiter creates a limiter. A nil config enables a lenient default of
// 1000 requests per minute.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		entries: make(map[string]*entry),
		config:  cfg,
		done:    make(chan struct{}),
	}

	if cfg.Enabled && cfg.CleanupInterval > 0 {
		go l.cleanupRoutine(cfg.CleanupInterval)
	}
	return l
}

// Allow reports whether a request from clientID to endpoint may proceed
// and returns the bucket state for response headers.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	ep := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if ep == nil {
		ep = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultBurst,
		}
	}
	if ep.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	burst := ep.Burst
	if burst <= 0 {
		burst = ep.Limit
	}
	window := ep.Window
	if window <= 0 {
		window = time.Minute
	}
	perSecond := float64(ep.Limit) / window.Seconds()

	now := time.Now()
	limiter := l.get(clientID+":"+endpoint+":"+method, rate.Limit(perSecond), burst, now)

	allowed := limiter.AllowN(now, 1)
	tokens := limiter.TokensAt(now)

	info := Info{
		Allowed:   allowed,
		Limit:     ep.Limit,
		Remaining: max(int(tokens), 0),
		ResetTime: now.Add(secondsToDuration((float64(burst) - tokens) / perSecond)),
	}
	if !allowed {
		info.RetryAfter = secondsToDuration((1 - tokens) / perSecond)
	}
	return allowed, info
}

func (l *Limiter) get(key string, r rate.Limit, burst int, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(r, burst)}
		l.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

// Len returns the number of live client buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Limiter) cleanupRoutine(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.evict(time.Now())
		case <-l.done:
			return
		}
	}
}

// evict drops buckets that have been idle longer than the idle timeout.
func (l *Limiter) evict(now time.Time) {
	idle := l.config.IdleTimeout
	if idle <= 0 {
		idle = time.Hour
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, e := range l.entries {
		if now.Sub(e.lastSeen) > idle {
			delete(l.entries, key)
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.done) })
}

func secondsToDuration(s float64) time.Duration {
	if s <= 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}
