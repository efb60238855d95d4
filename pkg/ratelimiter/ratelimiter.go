// Package ratelimiter implements an in-memory token bucket keyed by string.
//
// Each key starts with Capacity tokens; RefillRate tokens are added every
// RefillInterval up to Capacity. A request costs one token and is denied
// once the bucket is empty.
//
//	lim, err := ratelimiter.New(cfg)
//	eg.Go(lim.Run(ctx)) // evicts idle buckets until ctx is done
//	res := lim.Allow(clientIP)
//	if !res.Allowed() { ... res.RetryAfter(time.Now()) ... }
package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrInvalidConfig is returned by New for a non-positive capacity, refill
// rate or refill interval.
var ErrInvalidConfig = errors.New("invalid rate limiter configuration")

// Config defines the bucket shape. Loaded from the environment.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"60"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1s"`
	// IdleTTL is how long an untouched bucket is kept before eviction.
	IdleTTL time.Duration `env:"RATE_LIMIT_IDLE_TTL" envDefault:"10m"`
}

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.RefillRate <= 0:
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	case c.RefillInterval <= 0:
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result describes the bucket after a request.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
	allowed   bool
}

// Allowed reports whether the request got a token.
func (r Result) Allowed() bool {
	return r.allowed
}

// RetryAfter is zero for allowed requests.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.allowed || !r.ResetAt.After(now) {
		return 0
	}
	return r.ResetAt.Sub(now)
}

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// Limiter is safe for concurrent use.
type Limiter struct {
	cfg Config
	now func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// New validates cfg and returns an empty limiter. A non-positive IdleTTL
// falls back to ten minutes.
func New(cfg Config, opts ...Option) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 10 * time.Minute
	}
	l := &Limiter{
		cfg:     cfg,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Allow takes one token from the bucket of key.
func (l *Limiter) Allow(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.cfg.Capacity, lastRefill: now}
		l.buckets[key] = b
	}

	// Cap the interval count so idle buckets cannot overflow.
	maxIntervals := int64(l.cfg.Capacity/l.cfg.RefillRate + 1)
	intervals := min(int64(now.Sub(b.lastRefill)/l.cfg.RefillInterval), maxIntervals)
	if intervals > 0 {
		b.tokens = min(b.tokens+int(intervals)*l.cfg.RefillRate, l.cfg.Capacity)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * l.cfg.RefillInterval)
		if b.tokens == l.cfg.Capacity {
			b.lastRefill = now
		}
	}
	b.lastAccess = now

	res := Result{
		Limit:   l.cfg.Capacity,
		ResetAt: b.lastRefill.Add(l.cfg.RefillInterval),
	}
	if b.tokens > 0 {
		b.tokens--
		res.allowed = true
	}
	res.Remaining = b.tokens
	return res
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Evict drops buckets idle for longer than IdleTTL.
func (l *Limiter) Evict() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, b := range l.buckets {
		if now.Sub(b.lastAccess) > l.cfg.IdleTTL {
			delete(l.buckets, key)
		}
	}
}

// Run evicts idle buckets every IdleTTL until ctx is done. It always
// returns nil so it can be passed to errgroup.Group.Go.
func (l *Limiter) Run(ctx context.Context) func() error {
	return func() error {
		ticker := time.NewTicker(l.cfg.IdleTTL)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				l.Evict()
			}
		}
	}
}
