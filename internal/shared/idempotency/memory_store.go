package idempotency

import (
	"context"
	"errors"
	"sync"
	"time"
)

const (
	defaultTTL        = 5 * time.Minute
	defaultLockTTL    = 30 * time.Second
	defaultMaxEntries = 1000
)

// MemoryStoreOptions configures a MemoryStore.
type MemoryStoreOptions struct {
	// TTL is the default retention for stored responses. Defaults to 5m.
	TTL time.Duration

	// MaxEntries caps stored responses; inserting beyond the cap evicts
	// the oldest entry by insertion order. Defaults to 1000.
	MaxEntries int

	// LockTTL is the default lifetime of an in-flight marker before a
	// duplicate may take the key over. Defaults to 30s.
	LockTTL time.Duration

	// SweepInterval is how often expired entries and stale markers are
	// swept in the background. Zero disables the sweeper; expired entries
	// are still unreachable and are dropped lazily on Check.
	SweepInterval time.Duration

	// Clock overrides the time source. Defaults to time.Now.
	Clock func() time.Time
}

// MemoryStore is a process-local, volatile Store: state is lost on restart
// and never shared across replicas. Safe for concurrent use.
type MemoryStore struct {
	opts MemoryStoreOptions

	mu       sync.Mutex
	entries  map[string]*storedEntry
	order    []string // insertion order, oldest first
	inflight map[string]*inflightMarker

	done      chan struct{}
	closeOnce sync.Once
}

type storedEntry struct {
	requestHash string
	response    StoredResponse
	createdAt   time.Time
	ttl         time.Duration
}

type inflightMarker struct {
	requestHash string
	createdAt   time.Time
	lockTTL     time.Duration
	ready       chan struct{}
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns a ready store and starts the background sweeper
// when SweepInterval is set. Callers own the lifecycle and must Close.
func NewMemoryStore(opts MemoryStoreOptions) *MemoryStore {
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = defaultMaxEntries
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = defaultLockTTL
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	store := &MemoryStore{
		opts:     opts,
		entries:  make(map[string]*storedEntry),
		inflight: make(map[string]*inflightMarker),
		done:     make(chan struct{}),
	}
	if opts.SweepInterval > 0 {
		go store.sweeper()
	}
	return store
}

func (s *MemoryStore) Check(_ context.Context, request Request) (Decision, error) {
	if err := validateRequest(request); err != nil {
		return Decision{}, err
	}

	now := s.opts.Clock()
	key := storeKey(request)

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok {
		if now.After(entry.createdAt.Add(entry.ttl)) {
			delete(s.entries, key)
			s.removeFromOrderLocked(key)
		} else if entry.requestHash != request.RequestHash {
			return Decision{Type: DecisionConflict}, nil
		} else {
			return Decision{
				Type:        DecisionReplay,
				StatusCode:  entry.response.StatusCode,
				Body:        entry.response.Body,
				ContentType: entry.response.ContentType,
			}, nil
		}
	}

	if marker, ok := s.inflight[key]; ok {
		if now.After(marker.createdAt.Add(marker.lockTTL)) {
			// The holder went away without publishing; wake its waiters
			// and let this caller take the key over.
			close(marker.ready)
			delete(s.inflight, key)
		} else if marker.requestHash != request.RequestHash {
			return Decision{Type: DecisionConflict}, nil
		} else {
			return Decision{Type: DecisionInProgress, Ready: marker.ready}, nil
		}
	}

	s.inflight[key] = &inflightMarker{
		requestHash: request.RequestHash,
		createdAt:   now,
		lockTTL:     lockTTLFor(request, s.opts),
		ready:       make(chan struct{}),
	}
	return Decision{Type: DecisionAcquired}, nil
}

func (s *MemoryStore) Store(_ context.Context, request Request, response StoredResponse) error {
	if err := validateRequest(request); err != nil {
		return err
	}

	now := s.opts.Clock()
	key := storeKey(request)

	ttl := request.TTL
	if ttl <= 0 {
		ttl = s.opts.TTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists {
		for len(s.entries) >= s.opts.MaxEntries && len(s.order) > 0 {
			oldest := s.order[0]
			s.order = s.order[1:]
			delete(s.entries, oldest)
		}
		s.order = append(s.order, key)
	}

	s.entries[key] = &storedEntry{
		requestHash: request.RequestHash,
		response:    response,
		createdAt:   now,
		ttl:         ttl,
	}

	if marker, ok := s.inflight[key]; ok {
		close(marker.ready)
		delete(s.inflight, key)
	}
	return nil
}

func (s *MemoryStore) Release(_ context.Context, request Request) error {
	if err := validateRequest(request); err != nil {
		return err
	}

	key := storeKey(request)

	s.mu.Lock()
	defer s.mu.Unlock()

	if marker, ok := s.inflight[key]; ok {
		close(marker.ready)
		delete(s.inflight, key)
	}
	return nil
}

func (s *MemoryStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{Size: len(s.entries), MaxSize: s.opts.MaxEntries, TTL: s.opts.TTL}
}

// Clear wipes all entries and wakes every waiter. Intended for tests and
// operational resets.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, marker := range s.inflight {
		close(marker.ready)
		delete(s.inflight, key)
	}
	s.entries = make(map[string]*storedEntry)
	s.order = nil
}

// Close stops the sweeper and releases all waiters. The store must not be
// used afterwards.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	s.Clear()
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

	for key, entry := range s.entries {
		if now.After(entry.createdAt.Add(entry.ttl)) {
			delete(s.entries, key)
			s.removeFromOrderLocked(key)
		}
	}
	for key, marker := range s.inflight {
		if now.After(marker.createdAt.Add(marker.lockTTL)) {
			close(marker.ready)
			delete(s.inflight, key)
		}
	}
}

func (s *MemoryStore) removeFromOrderLocked(key string) {
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

func storeKey(request Request) string {
	return request.Scope + "|" + request.Key
}

func lockTTLFor(request Request, opts MemoryStoreOptions) time.Duration {
	if request.LockTTL > 0 {
		return request.LockTTL
	}
	return opts.LockTTL
}

func validateRequest(request Request) error {
	if request.Scope == "" {
		return errors.New("idempotency: scope is required")
	}
	if request.Key == "" {
		return errors.New("idempotency: key is required")
	}
	if request.RequestHash == "" {
		return errors.New("idempotency: request hash is required")
	}
	return nil
}
