package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonathan/resume-pdf/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/v1/templates", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/v1/templates", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Positive(t, info.RetryAfter)
	assert.True(t, info.ResetTime.After(time.Now()))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1", "/x", "GET")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1", "/x", "GET")
	assert.False(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.2", "/x", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 2, limiter.Len())
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	})
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/test", "GET")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.1": true},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("192.168.1.1", "/test", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/test", "GET")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(5, 5),
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("127.0.0.1", RenderPath, "POST")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 5, info.Limit)
	}

	allowed, info := limiter.Allow("127.0.0.1", RenderPath, "POST")
	assert.False(t, allowed)
	assert.Equal(t, 5, info.Limit)

	allowed, info = limiter.Allow("127.0.0.1", "/v1/resumes/validate", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLimiter_Burst(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/burst", Method: "POST", Limit: 10, Window: time.Minute, Burst: 5},
		},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/burst", "POST")
		require.True(t, allowed, "burst request %d", i+1)
	}
	allowed, _ := limiter.Allow("127.0.0.1", "/burst", "POST")
	assert.False(t, allowed)
}

func TestLimiter_Refill(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  20,
		DefaultWindow: time.Second,
		DefaultBurst:  1,
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("127.0.0.1", "/x", "GET")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("127.0.0.1", "/x", "GET")
	require.False(t, allowed)

	time.Sleep(100 * time.Millisecond)

	allowed, _ = limiter.Allow("127.0.0.1", "/x", "GET")
	assert.True(t, allowed)
}

func TestLimiter_UnlimitedRoutes(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/health", "GET")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
		allowed, _ = limiter.Allow("127.0.0.1", "/metrics", "GET")
		require.True(t, allowed)
	}
	assert.Zero(t, limiter.Len())
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Hour})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("127.0.0.1", "/test", "GET"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowedCount)
}

func TestLimiter_Evict(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		IdleTimeout:   time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/test", "GET")
	}
	require.Equal(t, 5, limiter.Len())

	limiter.evict(time.Now())
	assert.Equal(t, 5, limiter.Len(), "recently used buckets survive")

	limiter.evict(time.Now().Add(2 * time.Minute))
	assert.Zero(t, limiter.Len())
}

func TestLimiter_StopIsIdempotent(t *testing.T) {
	limiter := NewLimiter(nil)
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/test", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig(config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 120,
		Burst:             20,
		RenderPerMinute:   30,
		RenderBurst:       5,
	})
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 120, cfg.DefaultLimit)
	assert.Equal(t, 20, cfg.DefaultBurst)
	require.Len(t, cfg.EndpointConfigs, 1)
	assert.Equal(t, EndpointConfig{Path: RenderPath, Method: "POST", Limit: 30, Window: time.Minute, Burst: 5}, cfg.EndpointConfigs[0])

	assert.False(t, FromConfig(config.RateLimitConfig{Enabled: false}).Enabled)
}
