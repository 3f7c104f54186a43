package directory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/aldisptr/backoffice-api/internal/shared/breaker"
)

type stubConn struct {
	mu          sync.Mutex
	bindErr     error
	searchRes   []Entry
	searchErr   error
	searchDelay time.Duration
	binds       []string
	closed      bool
}

func (c *stubConn) Bind(username, _ string) error {
	c.mu.Lock()
	c.binds = append(c.binds, username)
	err := c.bindErr
	c.mu.Unlock()
	return err
}

func (c *stubConn) Search(SearchRequest) ([]Entry, error) {
	c.mu.Lock()
	delay := c.searchDelay
	res := c.searchRes
	err := c.searchErr
	c.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	return res, err
}

func (c *stubConn) SetTimeout(time.Duration) {}

func (c *stubConn) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

func (c *stubConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *stubConn) setSearch(res []Entry, err error) {
	c.mu.Lock()
	c.searchRes = res
	c.searchErr = err
	c.mu.Unlock()
}

func (c *stubConn) boundAs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.binds...)
}

type stubDialer struct {
	dials int32
	dial  func() (Conn, error)
}

func (d *stubDialer) Dial(context.Context, string) (Conn, error) {
	atomic.AddInt32(&d.dials, 1)
	return d.dial()
}

func (d *stubDialer) dialCount() int {
	return int(atomic.LoadInt32(&d.dials))
}

// sequenceDialer hands out the given connections in order, repeating the
// last one once the sequence is exhausted.
func sequenceDialer(conns ...*stubConn) *stubDialer {
	var next int32
	return &stubDialer{dial: func() (Conn, error) {
		i := int(atomic.AddInt32(&next, 1)) - 1
		if i >= len(conns) {
			i = len(conns) - 1
		}
		return conns[i], nil
	}}
}

type ClientSuite struct {
	suite.Suite
}

func (s *ClientSuite) newClient(d Dialer, mut func(*Config)) *Client {
	cfg := Config{
		URL:                 "ldap://dir.internal:389",
		BindDN:              "cn=service,dc=example,dc=org",
		BindPassword:        "service-secret",
		Timeout:             200 * time.Millisecond,
		MaxRetries:          2,
		BaseDelay:           time.Millisecond,
		FailureThreshold:    5,
		Cooldown:            10 * time.Second,
		HalfOpenMaxAttempts: 1,
		Dialer:              d,
	}
	if mut != nil {
		mut(&cfg)
	}

	client, err := New(cfg)
	require.NoError(s.T(), err)
	return client
}

func (s *ClientSuite) TestNewRequiresURL() {
	_, err := New(Config{})
	require.Error(s.T(), err)
	assert.ErrorContains(s.T(), err, "server url is required")
}

func (s *ClientSuite) TestAuthenticateBindsAndClosesDedicatedConnection() {
	conn := &stubConn{}
	dialer := sequenceDialer(conn)
	client := s.newClient(dialer, nil)

	err := client.Authenticate(context.Background(), "uid=jdoe,ou=people,dc=example,dc=org", "secret")

	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, dialer.dialCount())
	assert.Equal(s.T(), []string{"uid=jdoe,ou=people,dc=example,dc=org"}, conn.boundAs())
	assert.True(s.T(), conn.isClosed())
}

func (s *ClientSuite) TestAuthenticateInvalidCredentialsNotRetried() {
	conn := &stubConn{bindErr: ldap.NewError(ldap.LDAPResultInvalidCredentials, errors.New("invalid credentials"))}
	dialer := sequenceDialer(conn)
	client := s.newClient(dialer, nil)

	err := client.Authenticate(context.Background(), "uid=jdoe", "wrong")

	require.ErrorIs(s.T(), err, ErrInvalidCredentials)
	assert.Equal(s.T(), 1, dialer.dialCount())
}

func (s *ClientSuite) TestAuthenticateEmptySecretRejectedWithoutDialing() {
	dialer := sequenceDialer(&stubConn{})
	client := s.newClient(dialer, nil)

	err := client.Authenticate(context.Background(), "uid=jdoe", "")

	require.ErrorIs(s.T(), err, ErrInvalidCredentials)
	assert.Zero(s.T(), dialer.dialCount())
}

func (s *ClientSuite) TestAuthenticateNetworkFailureExhaustsRetries() {
	dialErr := errors.New("dial tcp: connection refused")
	dialer := &stubDialer{dial: func() (Conn, error) { return nil, dialErr }}
	client := s.newClient(dialer, nil)

	err := client.Authenticate(context.Background(), "uid=jdoe", "secret")

	require.ErrorIs(s.T(), err, ErrUnavailable)
	assert.NotErrorIs(s.T(), err, dialErr)
	assert.Equal(s.T(), 3, dialer.dialCount())
}

func (s *ClientSuite) TestBreakerOpensAndShortCircuits() {
	dialErr := errors.New("dial tcp: connection refused")
	dialer := &stubDialer{dial: func() (Conn, error) { return nil, dialErr }}
	client := s.newClient(dialer, func(cfg *Config) {
		cfg.MaxRetries = 0
		cfg.FailureThreshold = 2
	})

	for i := 0; i < 2; i++ {
		require.ErrorIs(s.T(), client.Authenticate(context.Background(), "uid=jdoe", "secret"), ErrUnavailable)
	}
	require.Equal(s.T(), breaker.StateOpen, client.BreakerState())

	err := client.Authenticate(context.Background(), "uid=jdoe", "secret")

	require.ErrorIs(s.T(), err, ErrUnavailable)
	assert.Equal(s.T(), 2, dialer.dialCount())
}

func (s *ClientSuite) TestSearchReusesSharedConnection() {
	entries := []Entry{{DN: "uid=jdoe,ou=people,dc=example,dc=org", Attributes: map[string][]string{"mail": {"jdoe@example.org"}}}}
	conn := &stubConn{searchRes: entries}
	dialer := sequenceDialer(conn)
	client := s.newClient(dialer, nil)

	req := SearchRequest{BaseDN: "ou=people,dc=example,dc=org", Filter: "(uid=jdoe)"}

	for i := 0; i < 2; i++ {
		found, err := client.Search(context.Background(), req)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), entries, found)
	}

	assert.Equal(s.T(), 1, dialer.dialCount())
	assert.Equal(s.T(), []string{"cn=service,dc=example,dc=org"}, conn.boundAs())
}

func (s *ClientSuite) TestSearchInvalidFilterKeepsConnection() {
	conn := &stubConn{searchErr: ldap.NewError(ldap.ErrorFilterCompile, errors.New("unbalanced parenthesis"))}
	dialer := sequenceDialer(conn)
	client := s.newClient(dialer, nil)

	_, err := client.Search(context.Background(), SearchRequest{BaseDN: "dc=example,dc=org", Filter: "(uid=jdoe"})
	require.ErrorIs(s.T(), err, ErrInvalidFilter)
	assert.False(s.T(), conn.isClosed())

	conn.setSearch([]Entry{{DN: "uid=jdoe"}}, nil)

	_, err = client.Search(context.Background(), SearchRequest{BaseDN: "dc=example,dc=org", Filter: "(uid=jdoe)"})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, dialer.dialCount())
}

func (s *ClientSuite) TestSearchRedialsAfterTransportFailure() {
	broken := &stubConn{searchErr: ldap.NewError(ldap.ErrorNetwork, errors.New("connection reset"))}
	healthy := &stubConn{searchRes: []Entry{{DN: "uid=jdoe"}}}
	dialer := sequenceDialer(broken, healthy)
	client := s.newClient(dialer, nil)

	found, err := client.Search(context.Background(), SearchRequest{BaseDN: "dc=example,dc=org", Filter: "(uid=jdoe)"})

	require.NoError(s.T(), err)
	assert.Equal(s.T(), []Entry{{DN: "uid=jdoe"}}, found)
	assert.Equal(s.T(), 2, dialer.dialCount())
	assert.True(s.T(), broken.isClosed())
}

func (s *ClientSuite) TestSearchTimeoutSurfacesUnavailable() {
	conn := &stubConn{searchDelay: 300 * time.Millisecond}
	dialer := sequenceDialer(conn)
	client := s.newClient(dialer, func(cfg *Config) {
		cfg.Timeout = 50 * time.Millisecond
		cfg.MaxRetries = 0
	})

	_, err := client.Search(context.Background(), SearchRequest{BaseDN: "dc=example,dc=org", Filter: "(uid=jdoe)"})

	require.ErrorIs(s.T(), err, ErrUnavailable)
	assert.True(s.T(), conn.isClosed())
}

func (s *ClientSuite) TestConnectTearsDownPreviousHandle() {
	first := &stubConn{}
	second := &stubConn{}
	dialer := sequenceDialer(first, second)
	client := s.newClient(dialer, nil)

	_, err := client.Search(context.Background(), SearchRequest{BaseDN: "dc=example,dc=org", Filter: "(uid=jdoe)"})
	require.NoError(s.T(), err)

	require.NoError(s.T(), client.Connect(context.Background()))

	assert.True(s.T(), first.isClosed())
	assert.False(s.T(), second.isClosed())
	assert.Equal(s.T(), 2, dialer.dialCount())
}

func (s *ClientSuite) TestCanceledContextPropagatesWithoutPenalty() {
	dialer := sequenceDialer(&stubConn{})
	client := s.newClient(dialer, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Authenticate(ctx, "uid=jdoe", "secret")

	require.ErrorIs(s.T(), err, context.Canceled)
	assert.NotErrorIs(s.T(), err, ErrUnavailable)
	assert.Zero(s.T(), dialer.dialCount())
	assert.Equal(s.T(), breaker.StateClosed, client.BreakerState())
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func TestClassify_TableDriven(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{
			name:   "invalid credentials",
			err:    ldap.NewError(ldap.LDAPResultInvalidCredentials, errors.New("80090308: LdapErr")),
			target: ErrInvalidCredentials,
		},
		{
			name:   "filter compile",
			err:    ldap.NewError(ldap.ErrorFilterCompile, errors.New("unbalanced parenthesis")),
			target: ErrInvalidFilter,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, classify(tc.err), tc.target)
		})
	}

	t.Run("network stays retryable", func(t *testing.T) {
		err := classify(ldap.NewError(ldap.ErrorNetwork, errors.New("connection reset")))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		assert.NotErrorIs(t, err, ErrInvalidFilter)
	})
}
