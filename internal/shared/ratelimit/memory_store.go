package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	defaultWindow          = time.Minute
	defaultMaxKeysPerRoute = 10000
)

// MemoryStoreOptions configures a MemoryStore.
type MemoryStoreOptions struct {
	// DefaultWindow applies when a policy omits its window. Defaults to 1m.
	DefaultWindow time.Duration

	// MaxKeysPerRoute caps tracked windows per route bucket. Defaults to
	// 10000.
	MaxKeysPerRoute int

	// SweepInterval is how often expired windows are swept in the
	// background. Zero disables the sweeper; expired windows still reset
	// on the next Record and never limit.
	SweepInterval time.Duration

	// Clock overrides the time source. Defaults to time.Now.
	Clock func() time.Time
}

// MemoryStore is a process-local, volatile Store: windows are lost on
// restart and never shared across replicas. Safe for concurrent use.
type MemoryStore struct {
	opts MemoryStoreOptions

	mu     sync.Mutex
	routes map[string]*routeBucket

	done      chan struct{}
	closeOnce sync.Once
}

type routeBucket struct {
	windows map[string]*rateWindow
	order   []string // insertion order, oldest first
}

type rateWindow struct {
	count       int64
	windowStart time.Time
	window      time.Duration
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns a ready store and starts the background sweeper
// when SweepInterval is set. Callers own the lifecycle and must Close.
func NewMemoryStore(opts MemoryStoreOptions) *MemoryStore {
	if opts.DefaultWindow <= 0 {
		opts.DefaultWindow = defaultWindow
	}
	if opts.MaxKeysPerRoute <= 0 {
		opts.MaxKeysPerRoute = defaultMaxKeysPerRoute
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	store := &MemoryStore{
		opts:   opts,
		routes: make(map[string]*routeBucket),
		done:   make(chan struct{}),
	}
	if opts.SweepInterval > 0 {
		go store.sweeper()
	}
	return store
}

func (s *MemoryStore) Record(_ context.Context, route, key string, policy Policy) (Result, error) {
	if err := policy.Validate(); err != nil {
		return Result{}, err
	}

	now := s.opts.Clock()
	window := s.effectiveWindow(policy)

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.routes[route]
	if !ok {
		bucket = &routeBucket{windows: make(map[string]*rateWindow)}
		s.routes[route] = bucket
	}

	w, ok := bucket.windows[key]
	switch {
	case !ok:
		for len(bucket.windows) >= s.opts.MaxKeysPerRoute && len(bucket.order) > 0 {
			oldest := bucket.order[0]
			bucket.order = bucket.order[1:]
			delete(bucket.windows, oldest)
		}
		w = &rateWindow{count: 1, windowStart: now, window: window}
		bucket.windows[key] = w
		bucket.order = append(bucket.order, key)
	case expired(w, now):
		w.count = 1
		w.windowStart = now
		w.window = window
	default:
		w.count++
	}

	return buildResult(w, policy, now), nil
}

func (s *MemoryStore) IsLimited(_ context.Context, route, key string, policy Policy) (bool, error) {
	if err := policy.Validate(); err != nil {
		return false, err
	}

	now := s.opts.Clock()

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.routes[route]
	if !ok {
		return false, nil
	}
	w, ok := bucket.windows[key]
	if !ok || expired(w, now) {
		return false, nil
	}
	return w.count > policy.Max, nil
}

func (s *MemoryStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := 0
	for _, bucket := range s.routes {
		size += len(bucket.windows)
	}
	return Stats{Size: size, MaxSize: s.opts.MaxKeysPerRoute, Window: s.opts.DefaultWindow}
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes = make(map[string]*routeBucket)
}

// Close stops the sweeper. The store must not be used afterwards.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

func (s *MemoryStore) sweeper() {
	ticker := time.NewTicker(s.opts.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryStore) sweep() {
	now := s.opts.Clock()

	s.mu.Lock()
	defer s.mu.Unlock()

	for route, bucket := range s.routes {
		for key, w := range bucket.windows {
			if expired(w, now) {
				delete(bucket.windows, key)
				bucket.removeFromOrder(key)
			}
		}
		if len(bucket.windows) == 0 {
			delete(s.routes, route)
		}
	}
}

func (s *MemoryStore) effectiveWindow(policy Policy) time.Duration {
	if policy.Window > 0 {
		return policy.Window
	}
	return s.opts.DefaultWindow
}

func (b *routeBucket) removeFromOrder(key string) {
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			return
		}
	}
}

func expired(w *rateWindow, now time.Time) bool {
	return !now.Before(w.windowStart.Add(w.window))
}

func buildResult(w *rateWindow, policy Policy, now time.Time) Result {
	result := Result{
		Count:   w.count,
		Limit:   policy.Max,
		ResetAt: w.windowStart.Add(w.window),
	}
	if remaining := policy.Max - w.count; remaining > 0 {
		result.Remaining = remaining
	}
	if w.count > policy.Max {
		result.RetryAfter = result.ResetAt.Sub(now)
	}
	return result
}
