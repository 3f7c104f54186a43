package idempotency

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type MemoryStoreSuite struct {
	suite.Suite

	clock *fakeClock
	store *MemoryStore
}

func (s *MemoryStoreSuite) SetupTest() {
	s.clock = newFakeClock()
	s.store = NewMemoryStore(MemoryStoreOptions{
		TTL:        time.Minute,
		MaxEntries: 3,
		LockTTL:    30 * time.Second,
		Clock:      s.clock.Now,
	})
}

func (s *MemoryStoreSuite) TearDownTest() {
	s.store.Close()
}

func storeRequest(key, hash string) Request {
	return Request{Scope: "admin:create_user", Key: key, RequestHash: hash}
}

func (s *MemoryStoreSuite) mustCheck(key, hash string) Decision {
	decision, err := s.store.Check(context.Background(), storeRequest(key, hash))
	require.NoError(s.T(), err)
	return decision
}

func (s *MemoryStoreSuite) mustStore(key, hash string, response StoredResponse) {
	require.NoError(s.T(), s.store.Store(context.Background(), storeRequest(key, hash), response))
}

func (s *MemoryStoreSuite) TestAcquireStoreReplay() {
	decision := s.mustCheck("key-1", "hash-1")
	require.Equal(s.T(), DecisionAcquired, decision.Type)

	s.mustStore("key-1", "hash-1", StoredResponse{StatusCode: 201, Body: []byte(`{"id":"42"}`), ContentType: "application/json"})

	replay := s.mustCheck("key-1", "hash-1")
	require.Equal(s.T(), DecisionReplay, replay.Type)
	assert.Equal(s.T(), 201, replay.StatusCode)
	assert.Equal(s.T(), []byte(`{"id":"42"}`), replay.Body)
	assert.Equal(s.T(), "application/json", replay.ContentType)
}

func (s *MemoryStoreSuite) TestConflictOnDifferentHash() {
	require.Equal(s.T(), DecisionAcquired, s.mustCheck("key-1", "hash-a").Type)
	s.mustStore("key-1", "hash-a", StoredResponse{StatusCode: 200})

	decision := s.mustCheck("key-1", "hash-b")
	assert.Equal(s.T(), DecisionConflict, decision.Type)
}

func (s *MemoryStoreSuite) TestConflictWhileInFlight() {
	require.Equal(s.T(), DecisionAcquired, s.mustCheck("key-1", "hash-a").Type)

	decision := s.mustCheck("key-1", "hash-b")
	assert.Equal(s.T(), DecisionConflict, decision.Type)
}

func (s *MemoryStoreSuite) TestDuplicateWaitsForHolderThenReplays() {
	require.Equal(s.T(), DecisionAcquired, s.mustCheck("key-1", "hash-1").Type)

	waiting := s.mustCheck("key-1", "hash-1")
	require.Equal(s.T(), DecisionInProgress, waiting.Type)
	require.NotNil(s.T(), waiting.Ready)

	select {
	case <-waiting.Ready:
		s.Fail("ready closed before the holder published")
	default:
	}

	s.mustStore("key-1", "hash-1", StoredResponse{StatusCode: 200, Body: []byte("done")})

	select {
	case <-waiting.Ready:
	case <-time.After(time.Second):
		s.Fail("ready not closed after store")
	}

	replay := s.mustCheck("key-1", "hash-1")
	require.Equal(s.T(), DecisionReplay, replay.Type)
	assert.Equal(s.T(), []byte("done"), replay.Body)
}

func (s *MemoryStoreSuite) TestReleaseLetsWaiterTakeOver() {
	require.Equal(s.T(), DecisionAcquired, s.mustCheck("key-1", "hash-1").Type)

	waiting := s.mustCheck("key-1", "hash-1")
	require.Equal(s.T(), DecisionInProgress, waiting.Type)

	require.NoError(s.T(), s.store.Release(context.Background(), storeRequest("key-1", "hash-1")))

	select {
	case <-waiting.Ready:
	case <-time.After(time.Second):
		s.Fail("ready not closed after release")
	}

	assert.Equal(s.T(), DecisionAcquired, s.mustCheck("key-1", "hash-1").Type)
}

func (s *MemoryStoreSuite) TestParallelDuplicatesSingleWinner() {
	const callers = 8

	results := make(chan DecisionType, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				decision, err := s.store.Check(context.Background(), storeRequest("key-1", "hash-1"))
				if !assert.NoError(s.T(), err) {
					results <- DecisionType("error")
					return
				}

				switch decision.Type {
				case DecisionAcquired:
					err := s.store.Store(context.Background(), storeRequest("key-1", "hash-1"), StoredResponse{StatusCode: 200})
					assert.NoError(s.T(), err)
					results <- DecisionAcquired
					return
				case DecisionReplay:
					results <- DecisionReplay
					return
				case DecisionInProgress:
					<-decision.Ready
				default:
					results <- decision.Type
					return
				}
			}
		}()
	}
	wg.Wait()
	close(results)

	acquired, replayed := 0, 0
	for decisionType := range results {
		switch decisionType {
		case DecisionAcquired:
			acquired++
		case DecisionReplay:
			replayed++
		}
	}
	assert.Equal(s.T(), 1, acquired)
	assert.Equal(s.T(), callers-1, replayed)
}

func (s *MemoryStoreSuite) TestEntryUnreachableAfterTTL() {
	require.Equal(s.T(), DecisionAcquired, s.mustCheck("key-1", "hash-1").Type)
	s.mustStore("key-1", "hash-1", StoredResponse{StatusCode: 200})

	s.clock.Advance(61 * time.Second)

	decision := s.mustCheck("key-1", "hash-1")
	assert.Equal(s.T(), DecisionAcquired, decision.Type)
}

func (s *MemoryStoreSuite) TestStaleMarkerTakenOver() {
	require.Equal(s.T(), DecisionAcquired, s.mustCheck("key-1", "hash-1").Type)

	waiting := s.mustCheck("key-1", "hash-1")
	require.Equal(s.T(), DecisionInProgress, waiting.Type)

	s.clock.Advance(31 * time.Second)

	assert.Equal(s.T(), DecisionAcquired, s.mustCheck("key-1", "hash-1").Type)

	select {
	case <-waiting.Ready:
	default:
		s.Fail("stale marker waiters were not woken")
	}
}

func (s *MemoryStoreSuite) TestEvictsOldestInsertedAtCapacity() {
	for i := 1; i <= 3; i++ {
		key := fmt.Sprintf("key-%d", i)
		require.Equal(s.T(), DecisionAcquired, s.mustCheck(key, "hash").Type)
		s.mustStore(key, "hash", StoredResponse{StatusCode: 200})
	}
	require.Equal(s.T(), 3, s.store.Stats().Size)

	require.Equal(s.T(), DecisionAcquired, s.mustCheck("key-4", "hash").Type)
	s.mustStore("key-4", "hash", StoredResponse{StatusCode: 200})

	assert.Equal(s.T(), 3, s.store.Stats().Size)
	assert.Equal(s.T(), DecisionReplay, s.mustCheck("key-2", "hash").Type)
	assert.Equal(s.T(), DecisionAcquired, s.mustCheck("key-1", "hash").Type)
}

func (s *MemoryStoreSuite) TestStoreOverwritesExistingEntry() {
	require.Equal(s.T(), DecisionAcquired, s.mustCheck("key-1", "hash-1").Type)
	s.mustStore("key-1", "hash-1", StoredResponse{StatusCode: 200, Body: []byte("first")})
	s.mustStore("key-1", "hash-1", StoredResponse{StatusCode: 200, Body: []byte("second")})

	require.Equal(s.T(), 1, s.store.Stats().Size)
	replay := s.mustCheck("key-1", "hash-1")
	require.Equal(s.T(), DecisionReplay, replay.Type)
	assert.Equal(s.T(), []byte("second"), replay.Body)
}

func (s *MemoryStoreSuite) TestClearReleasesWaitersAndResets() {
	require.Equal(s.T(), DecisionAcquired, s.mustCheck("key-1", "hash-1").Type)
	waiting := s.mustCheck("key-1", "hash-1")
	require.Equal(s.T(), DecisionInProgress, waiting.Type)
	s.mustStore("key-2", "hash-2", StoredResponse{StatusCode: 200})

	s.store.Clear()

	select {
	case <-waiting.Ready:
	default:
		s.Fail("clear did not wake waiters")
	}
	assert.Zero(s.T(), s.store.Stats().Size)
}

func (s *MemoryStoreSuite) TestValidation_TableDriven() {
	tests := []struct {
		name    string
		request Request
		wantErr string
	}{
		{name: "missing scope", request: Request{Key: "k", RequestHash: "h"}, wantErr: "scope is required"},
		{name: "missing key", request: Request{Scope: "s", RequestHash: "h"}, wantErr: "key is required"},
		{name: "missing hash", request: Request{Scope: "s", Key: "k"}, wantErr: "request hash is required"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := s.store.Check(context.Background(), tc.request)
			require.Error(s.T(), err)
			assert.ErrorContains(s.T(), err, tc.wantErr)
		})
	}
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func TestSweeperDropsExpiredEntries(t *testing.T) {
	store := NewMemoryStore(MemoryStoreOptions{
		TTL:           20 * time.Millisecond,
		SweepInterval: 10 * time.Millisecond,
	})
	defer store.Close()

	request := storeRequest("key-1", "hash-1")
	_, err := store.Check(context.Background(), request)
	require.NoError(t, err)
	require.NoError(t, store.Store(context.Background(), request, StoredResponse{StatusCode: 200}))
	require.Equal(t, 1, store.Stats().Size)

	require.Eventually(t, func() bool {
		return store.Stats().Size == 0
	}, time.Second, 10*time.Millisecond)
}

func TestFingerprint_TableDriven(t *testing.T) {
	base := Fingerprint("POST", "/api/v1/admin/users", []byte(`{"email":"a@b.c"}`))

	tests := []struct {
		name   string
		method string
		path   string
		body   []byte
		same   bool
	}{
		{name: "identical request", method: "POST", path: "/api/v1/admin/users", body: []byte(`{"email":"a@b.c"}`), same: true},
		{name: "method is case insensitive", method: "post", path: "/api/v1/admin/users", body: []byte(`{"email":"a@b.c"}`), same: true},
		{name: "different body", method: "POST", path: "/api/v1/admin/users", body: []byte(`{"email":"x@y.z"}`), same: false},
		{name: "different path", method: "POST", path: "/api/v1/admin/roles", body: []byte(`{"email":"a@b.c"}`), same: false},
		{name: "different method", method: "PUT", path: "/api/v1/admin/users", body: []byte(`{"email":"a@b.c"}`), same: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Fingerprint(tc.method, tc.path, tc.body)
			if tc.same {
				assert.Equal(t, base, got)
			} else {
				assert.NotEqual(t, base, got)
			}
		})
	}
}
